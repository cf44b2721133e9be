package api

import (
	"context"

	"github.com/diogo/helpline/internal/models"
)

// HelplineClientInterface defines the operations commands and the TUI need from the service client
type HelplineClientInterface interface {
	SendChat(ctx context.Context, message string, id models.ConversationID) (*models.ChatResponse, error)
	FetchAnalysis(ctx context.Context, id models.ConversationID) (*models.Analysis, error)
	FetchTranscript(ctx context.Context, id models.ConversationID) (*models.Transcript, error)
	FetchResources(ctx context.Context) ([]models.Resource, error)
	BaseURL() string
	Close()
	IsClosed() bool
}

// Ensure Client implements HelplineClientInterface
var _ HelplineClientInterface = (*Client)(nil)
