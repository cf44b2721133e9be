package api

import (
	"context"
	"strings"

	http "github.com/bogdanfinn/fhttp"

	apierrors "github.com/diogo/helpline/internal/errors"
	"github.com/diogo/helpline/internal/models"
)

// SendChat posts a user message. A zero id asks the service to start a new
// conversation; the response carries the id the service assigned.
func (c *Client) SendChat(ctx context.Context, message string, id models.ConversationID) (*models.ChatResponse, error) {
	if strings.TrimSpace(message) == "" {
		return nil, apierrors.ErrEmptyMessage
	}

	data, err := c.do(ctx, "send chat", http.MethodPost, models.PathChat, models.ChatRequest{
		Message:        message,
		ConversationID: id,
	})
	if err != nil {
		return nil, err
	}

	var resp models.ChatResponse
	if err := decode(data, models.PathChat, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
