package api

import (
	"fmt"
	"net/url"

	"github.com/diogo/helpline/internal/models"
)

// GJSON paths for extracting values from service responses.
const (
	PathErrorMessage = "error"
	PathResources    = "resources"
	PathResourceName = "name"
)

// analysisPath returns the analysis endpoint path for a conversation
func analysisPath(id models.ConversationID) string {
	return fmt.Sprintf(models.PathAnalysis, url.PathEscape(id.String()))
}

// conversationPath returns the transcript endpoint path for a conversation
func conversationPath(id models.ConversationID) string {
	return fmt.Sprintf(models.PathConversation, url.PathEscape(id.String()))
}
