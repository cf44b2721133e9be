package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ConversationID is the opaque token the service uses to scope a conversation.
// The zero value means there is no active conversation.
//
// The service currently hands out integers. The token remembers whether it was
// received as a JSON number or a JSON string so it is sent back in the same form.
type ConversationID struct {
	raw     string
	numeric bool
}

// NewConversationID builds a string-typed token.
func NewConversationID(s string) ConversationID {
	return ConversationID{raw: s}
}

// ParseConversationID builds a token from user input, such as a CLI argument.
// All-digit input is treated as a numeric token.
func ParseConversationID(s string) (ConversationID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ConversationID{}, fmt.Errorf("conversation id cannot be empty")
	}
	if _, err := strconv.ParseUint(s, 10, 64); err == nil {
		return ConversationID{raw: s, numeric: true}, nil
	}
	return ConversationID{raw: s}, nil
}

// IsZero reports whether the token is empty (no active conversation).
func (id ConversationID) IsZero() bool {
	return id.raw == ""
}

// String returns the token's text form.
func (id ConversationID) String() string {
	return id.raw
}

// MarshalJSON encodes the zero value as null and otherwise mirrors the received form.
func (id ConversationID) MarshalJSON() ([]byte, error) {
	switch {
	case id.raw == "":
		return []byte("null"), nil
	case id.numeric:
		return []byte(id.raw), nil
	default:
		return json.Marshal(id.raw)
	}
}

// UnmarshalJSON accepts null, a JSON number or a JSON string.
func (id *ConversationID) UnmarshalJSON(data []byte) error {
	raw, numeric, err := decodeToken(data)
	if err != nil {
		return fmt.Errorf("invalid conversation id: %w", err)
	}
	*id = ConversationID{raw: raw, numeric: numeric}
	return nil
}

// MessageID identifies a stored message. Like ConversationID it may arrive as a
// JSON number or a JSON string; it is only ever displayed, so it is kept as text.
type MessageID string

// String returns the id's text form.
func (id MessageID) String() string {
	return string(id)
}

// UnmarshalJSON accepts null, a JSON number or a JSON string.
func (id *MessageID) UnmarshalJSON(data []byte) error {
	raw, _, err := decodeToken(data)
	if err != nil {
		return fmt.Errorf("invalid message id: %w", err)
	}
	*id = MessageID(raw)
	return nil
}

// decodeToken reads an opaque identifier. null decodes to "".
func decodeToken(data []byte) (raw string, numeric bool, err error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return "", false, nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", false, err
		}
		return s, false, nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return "", false, fmt.Errorf("unexpected value %s", data)
	}
	return n.String(), true, nil
}

// Sender identifies who authored a transcript message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message is a single transcript entry as it is handed to a renderer.
type Message struct {
	Sender Sender
	Text   string
}

// UserMessage builds a user-authored message
func UserMessage(text string) Message {
	return Message{Sender: SenderUser, Text: text}
}

// BotMessage builds a bot-authored message
func BotMessage(text string) Message {
	return Message{Sender: SenderBot, Text: text}
}
