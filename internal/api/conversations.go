package api

import (
	"context"

	http "github.com/bogdanfinn/fhttp"

	apierrors "github.com/diogo/helpline/internal/errors"
	"github.com/diogo/helpline/internal/models"
)

// FetchAnalysis returns the service's risk analysis for a conversation
func (c *Client) FetchAnalysis(ctx context.Context, id models.ConversationID) (*models.Analysis, error) {
	if id.IsZero() {
		return nil, apierrors.ErrNoConversation
	}

	path := analysisPath(id)
	data, err := c.do(ctx, "fetch analysis", http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var analysis models.Analysis
	if err := decode(data, path, &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

// FetchTranscript returns the stored messages of a single conversation
func (c *Client) FetchTranscript(ctx context.Context, id models.ConversationID) (*models.Transcript, error) {
	if id.IsZero() {
		return nil, apierrors.ErrNoConversation
	}

	path := conversationPath(id)
	data, err := c.do(ctx, "fetch transcript", http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var transcript models.Transcript
	if err := decode(data, path, &transcript); err != nil {
		return nil, err
	}
	return &transcript, nil
}
