package upstream

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/voyago/tourism-platform/go/internal/core/domain/chat"
	"github.com/voyago/tourism-platform/go/internal/core/ports"
)

// ChatClient implements ports.ChatClient over the AI assistant upstream.
type ChatClient struct {
	c *client
}

func NewChatClient(baseURL string, httpClient *http.Client, timeout time.Duration, logger *logrus.Logger) *ChatClient {
	return &ChatClient{c: newClient("chat", baseURL, httpClient, timeout, logger)}
}

func (cc *ChatClient) Send(ctx context.Context, req *chat.MessageRequest) (*chat.MessageResponse, error) {
	var out chat.MessageResponse
	if _, err := cc.c.do(ctx, http.MethodPost, "/chat/messages", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

var _ ports.ChatClient = (*ChatClient)(nil)
