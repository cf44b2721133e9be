package models

// ChatRequest is the body of the chat endpoint.
type ChatRequest struct {
	Message        string         `json:"message"`
	ConversationID ConversationID `json:"conversation_id"`
}

// ChatResponse is a successful chat reply. Only ConversationID and Response are
// required; the remaining fields are filled in by services that assess each message.
type ChatResponse struct {
	ConversationID       ConversationID `json:"conversation_id"`
	Response             string         `json:"response"`
	RiskLevel            RiskLevel      `json:"risk_level,omitempty"`
	Triggers             []string       `json:"triggers,omitempty"`
	RecommendedResources []Resource     `json:"recommended_resources,omitempty"`
}

// ErrorBody is the body the service returns with a non-2xx status
type ErrorBody struct {
	Error string `json:"error"`
}

// TranscriptMessage is one stored message of a conversation.
type TranscriptMessage struct {
	ID        MessageID `json:"id"`
	Sender    Sender    `json:"sender"`
	Text      string    `json:"text"`
	CreatedAt string    `json:"created_at"`
}

// Transcript is the stored history of a single conversation.
type Transcript struct {
	ID        ConversationID      `json:"id"`
	CreatedAt string              `json:"created_at"`
	RiskLevel RiskLevel           `json:"risk_level"`
	Messages  []TranscriptMessage `json:"messages"`
}
