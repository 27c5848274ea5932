package ports

import (
	"context"

	"github.com/voyago/tourism-platform/go/internal/core/domain/chat"
)

// ChatService defines the AI assistant proxy logic.
type ChatService interface {
	SendMessage(ctx context.Context, req *chat.MessageRequest) (*chat.MessageResponse, error)
}
