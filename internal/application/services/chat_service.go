package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/voyago/tourism-platform/go/internal/core/domain/chat"
	"github.com/voyago/tourism-platform/go/internal/core/ports"
)

const maxChatMessageLen = 4000

type ChatService struct {
	client ports.ChatClient
	logger *logrus.Logger
}

func NewChatService(client ports.ChatClient, logger *logrus.Logger) ports.ChatService {
	return &ChatService{client: client, logger: logger}
}

// SendMessage proxies one turn to the assistant upstream. Replies are
// never cached: the same prompt can legitimately produce a new answer.
func (s *ChatService) SendMessage(ctx context.Context, req *chat.MessageRequest) (*chat.MessageResponse, error) {
	msg := strings.TrimSpace(req.Message)
	if msg == "" {
		return nil, fmt.Errorf("message is required")
	}
	if len(msg) > maxChatMessageLen {
		return nil, fmt.Errorf("message exceeds %d characters", maxChatMessageLen)
	}
	req.Message = msg

	resp, err := s.client.Send(ctx, req)
	if err != nil {
		return nil, err
	}
	s.logger.WithFields(logrus.Fields{
		"conversation_id": resp.ConversationID,
		"suggestions":     len(resp.Suggestions),
	}).Debug("Assistant reply received")
	return resp, nil
}
