package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversationID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantZero bool
		wantText string
		wantJSON string
	}{
		{name: "null", input: `null`, wantZero: true, wantJSON: `null`},
		{name: "number", input: `42`, wantText: "42", wantJSON: `42`},
		{name: "string", input: `"c1"`, wantText: "c1", wantJSON: `"c1"`},
		{name: "numeric string stays a string", input: `"7"`, wantText: "7", wantJSON: `"7"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id ConversationID
			require.NoError(t, json.Unmarshal([]byte(tt.input), &id))

			assert.Equal(t, tt.wantZero, id.IsZero())
			assert.Equal(t, tt.wantText, id.String())

			out, err := json.Marshal(id)
			require.NoError(t, err)
			assert.JSONEq(t, tt.wantJSON, string(out))
		})
	}
}

func TestConversationID_UnmarshalInvalid(t *testing.T) {
	var id ConversationID
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &id))
	assert.Error(t, json.Unmarshal([]byte(`true`), &id))
}

func TestConversationID_Equality(t *testing.T) {
	var a, b ConversationID
	require.NoError(t, json.Unmarshal([]byte(`5`), &a))
	b, err := ParseConversationID("5")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, NewConversationID("5"))
	assert.Equal(t, ConversationID{}, ConversationID{})
}

func TestParseConversationID(t *testing.T) {
	_, err := ParseConversationID("   ")
	assert.Error(t, err)

	id, err := ParseConversationID(" 12 ")
	require.NoError(t, err)
	out, _ := json.Marshal(id)
	assert.Equal(t, "12", string(out))

	id, err = ParseConversationID("abc-1")
	require.NoError(t, err)
	out, _ = json.Marshal(id)
	assert.Equal(t, `"abc-1"`, string(out))
}

func TestChatRequest_MarshalNullConversation(t *testing.T) {
	out, err := json.Marshal(ChatRequest{Message: "hello"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"hello","conversation_id":null}`, string(out))
}

func TestRiskLevel(t *testing.T) {
	assert.Equal(t, "immediate danger", RiskImmediateDanger.Label())
	assert.Equal(t, "high", RiskHigh.Label())
	assert.Equal(t, "some new level", RiskLevel("some_new_level").Label())

	assert.True(t, RiskImmediateDanger.IsUrgent())
	for _, level := range []RiskLevel{RiskUnknown, RiskLow, RiskModerate, RiskHigh, "other"} {
		assert.False(t, level.IsUrgent(), level)
	}

	levels := KnownRiskLevels()
	for i := 1; i < len(levels); i++ {
		assert.Greater(t, levels[i].Severity(), levels[i-1].Severity())
	}
	assert.Equal(t, 0, RiskLevel("bogus").Severity())
}

func TestAnalysis_Decode(t *testing.T) {
	body := `{
		"conversation_id": 3,
		"created_at": "2024-05-01T10:00:00",
		"risk_level": "high",
		"message_count": 4,
		"user_message_count": 2,
		"bot_message_count": 2,
		"keyword_flags": [
			{"message_id": 5, "excerpt": "I feel trapped", "triggers": ["trapped", "scared"], "assessed_level": "high"}
		],
		"last_message_at": "2024-05-01T10:05:00"
	}`

	var a Analysis
	require.NoError(t, json.Unmarshal([]byte(body), &a))
	assert.Equal(t, "3", a.ConversationID.String())
	assert.Equal(t, RiskHigh, a.RiskLevel)
	require.Len(t, a.KeywordFlags, 1)
	assert.Equal(t, "5", a.KeywordFlags[0].MessageID.String())
	assert.Equal(t, []string{"trapped", "scared"}, a.KeywordFlags[0].Triggers)
}

func TestKeywordFlag_StringMessageID(t *testing.T) {
	body := `{
		"conversation_id": "c1",
		"risk_level": "moderate",
		"keyword_flags": [
			{"message_id": "m-1", "excerpt": "I can't sleep", "triggers": ["can't sleep"], "assessed_level": "moderate"},
			{"message_id": 7, "excerpt": "nobody cares", "triggers": ["nobody cares"], "assessed_level": "high"},
			{"message_id": null, "excerpt": "", "triggers": [], "assessed_level": "low"}
		]
	}`

	var a Analysis
	require.NoError(t, json.Unmarshal([]byte(body), &a))
	require.Len(t, a.KeywordFlags, 3)
	assert.Equal(t, "m-1", a.KeywordFlags[0].MessageID.String())
	assert.Equal(t, "7", a.KeywordFlags[1].MessageID.String())
	assert.Equal(t, "", a.KeywordFlags[2].MessageID.String())
}

func TestMessageID_UnmarshalJSON_Invalid(t *testing.T) {
	var id MessageID
	assert.Error(t, json.Unmarshal([]byte(`{"id": 1}`), &id))
	assert.Error(t, json.Unmarshal([]byte(`true`), &id))
}

func TestTranscript_DecodeStringMessageIDs(t *testing.T) {
	body := `{"id": 4, "messages": [{"id": "a1", "sender": "user", "text": "hi"}, {"id": 2, "sender": "bot", "text": "hello"}]}`

	var tr Transcript
	require.NoError(t, json.Unmarshal([]byte(body), &tr))
	require.Len(t, tr.Messages, 2)
	assert.Equal(t, MessageID("a1"), tr.Messages[0].ID)
	assert.Equal(t, MessageID("2"), tr.Messages[1].ID)
}
