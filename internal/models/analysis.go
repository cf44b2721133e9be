package models

// KeywordFlag is a user message the service matched against concerning trigger terms.
type KeywordFlag struct {
	MessageID     MessageID `json:"message_id"`
	Excerpt       string    `json:"excerpt"`
	Triggers      []string  `json:"triggers"`
	AssessedLevel RiskLevel `json:"assessed_level"`
}

// Analysis is the service's risk summary for one conversation.
// MessageCount is expected to equal UserMessageCount + BotMessageCount; the client
// does not recompute it.
type Analysis struct {
	ConversationID   ConversationID `json:"conversation_id"`
	CreatedAt        string         `json:"created_at,omitempty"`
	RiskLevel        RiskLevel      `json:"risk_level"`
	MessageCount     int            `json:"message_count"`
	UserMessageCount int            `json:"user_message_count"`
	BotMessageCount  int            `json:"bot_message_count"`
	KeywordFlags     []KeywordFlag  `json:"keyword_flags"`
	LastMessageAt    string         `json:"last_message_at"`
}
