// Package conversation keeps one active conversation in step with what the user sees:
// the transcript, the risk analysis panel and the resource list.
package conversation

import (
	"context"

	"github.com/diogo/helpline/internal/models"
	"github.com/diogo/helpline/internal/present"
)

// Renderer is the display surface driven by the Controller. Implementations must
// treat every text they receive as literal text.
type Renderer interface {
	// AppendMessage adds one message at the end of the transcript and scrolls to it.
	AppendMessage(msg models.Message)
	// ResetInput clears the compose box and gives it focus.
	ResetInput()
	// FocusInput gives the compose box focus without clearing it.
	FocusInput()
	// ClearTranscript removes every message from the transcript.
	ClearTranscript()
	// SetPanel replaces the content of the analysis panel.
	SetPanel(panel present.Panel)
	// Recommend highlights resources the service suggested for the last message.
	Recommend(entries []present.ResourceEntry)
}

// ResourceRenderer displays the resource catalog.
type ResourceRenderer interface {
	SetResources(entries []present.ResourceEntry)
}

// ChatService sends user messages to the helpline service.
type ChatService interface {
	SendChat(ctx context.Context, message string, id models.ConversationID) (*models.ChatResponse, error)
}

// AnalysisService fetches the risk analysis of a conversation.
type AnalysisService interface {
	FetchAnalysis(ctx context.Context, id models.ConversationID) (*models.Analysis, error)
}

// Service is everything the Controller needs from the helpline service.
type Service interface {
	ChatService
	AnalysisService
}

// ResourceService lists the support resources.
type ResourceService interface {
	FetchResources(ctx context.Context) ([]models.Resource, error)
}
