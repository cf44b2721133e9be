package console

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/diogo/helpline/internal/models"
	"github.com/diogo/helpline/internal/present"
)

func TestPrinter_AppendMessage(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, 80)

	p.AppendMessage(models.UserMessage("I need help"))
	p.AppendMessage(models.BotMessage("I'm here to listen."))

	out := buf.String()
	assert.Contains(t, out, "You")
	assert.Contains(t, out, "I need help")
	assert.Contains(t, out, "Helpline")
	assert.Contains(t, out, "I'm here to listen.")
	assert.Less(t, strings.Index(out, "I need help"), strings.Index(out, "I'm here to listen."))
}

func TestPrinter_MessageTextIsLiteral(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, 80)

	p.AppendMessage(models.BotMessage("<b>bold</b> \x1b[2Jwiped"))

	out := buf.String()
	assert.Contains(t, out, "<b>bold</b>")
	assert.NotContains(t, out, "\x1b[2J")
	assert.Contains(t, out, "wiped")
}

func TestPrinter_InputCallsAreSilent(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, 80)

	p.ResetInput()
	p.FocusInput()
	p.ClearTranscript()

	assert.Empty(t, buf.String())
}

func TestFormatPanel_Placeholder(t *testing.T) {
	s := NewStyles(testTheme())
	out := FormatPanel(s, present.PlaceholderPanel(present.PlaceholderStart))
	assert.Equal(t, present.PlaceholderStart, out)
}

func TestFormatPanel_Analysis(t *testing.T) {
	s := NewStyles(testTheme())
	view := present.FormatAnalysis(models.Analysis{
		RiskLevel:        models.RiskImmediateDanger,
		MessageCount:     4,
		UserMessageCount: 2,
		BotMessageCount:  2,
		LastMessageAt:    "2024-05-01T10:05:00",
		KeywordFlags: []models.KeywordFlag{
			{MessageID: "7", Excerpt: "he has a gun", Triggers: []string{"gun", "kill"}, AssessedLevel: models.RiskImmediateDanger},
		},
	}, time.UTC)

	out := FormatPanel(s, present.AnalysisPanel(view))

	assert.Contains(t, out, "! Risk: immediate danger")
	assert.Contains(t, out, "Messages: 4 total (2 user, 2 bot)")
	assert.Contains(t, out, "Last activity: May 1, 2024 10:05 AM")
	assert.Contains(t, out, "Message #7")
	assert.Contains(t, out, "he has a gun")
	assert.Contains(t, out, "Triggers: gun, kill")
	assert.NotContains(t, out, present.NoKeywordsText)
}

func TestFormatPanel_RiskLevelsAreSanitized(t *testing.T) {
	s := NewStyles(testTheme())
	view := present.FormatAnalysis(models.Analysis{
		RiskLevel: models.RiskLevel("high\x1b]52;c;ZXZpbA==\x07\x1b[2J"),
		KeywordFlags: []models.KeywordFlag{
			{MessageID: "1", Excerpt: "x", Triggers: []string{"y"}, AssessedLevel: models.RiskLevel("x\x1b[31m")},
		},
	}, time.UTC)

	out := FormatPanel(s, present.AnalysisPanel(view))

	assert.Contains(t, out, "Risk: high")
	assert.Contains(t, out, "Level: x")
	assert.NotContains(t, out, "\x1b")
	assert.NotContains(t, out, "\a")
	assert.NotContains(t, out, "]52;")
}

func TestFormatBadge(t *testing.T) {
	s := NewStyles(testTheme())

	tests := []struct {
		name  string
		badge present.Badge
		want  string
	}{
		{"neutral", present.Badge{Label: "Risk: low"}, "Risk: low"},
		{"urgent", present.Badge{Label: "Risk: immediate danger", Urgent: true}, "! Risk: immediate danger"},
		{"escape sequences", present.Badge{Label: "Risk: \x1b[2Jodd\x1b]8;;http://x\x07"}, "Risk: odd"},
		{"newline", present.Badge{Label: "Risk: a\nb"}, "Risk: a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatBadge(s, tt.badge)
			assert.Contains(t, got, tt.want)
			assert.NotContains(t, got, "\x1b")
		})
	}
}

func TestPrinter_PrintTranscriptSanitizesRisk(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, 80)

	p.PrintTranscript(&models.Transcript{
		ID:        models.NewConversationID("9"),
		RiskLevel: models.RiskLevel("low\x1b[2J"),
	}, time.UTC)

	assert.Contains(t, buf.String(), "Risk: low")
	assert.NotContains(t, buf.String(), "\x1b")
}

func TestFormatPanel_NoKeywords(t *testing.T) {
	s := NewStyles(testTheme())
	view := present.FormatAnalysis(models.Analysis{RiskLevel: models.RiskLow}, time.UTC)

	out := FormatPanel(s, present.AnalysisPanel(view))

	assert.Contains(t, out, "Risk: low")
	assert.NotContains(t, out, "! Risk")
	assert.Contains(t, out, present.NoKeywordsText)
}

func TestFormatResources(t *testing.T) {
	s := NewStyles(testTheme())
	entries := present.FormatResources([]models.Resource{
		{Name: "Hotline", Phone: "1-800-799-7233", Notes: "24/7"},
		{Name: "Legal Aid", URL: "https://example.org"},
	})

	out := FormatResources(s, "Support resources", entries)

	assert.Contains(t, out, "Support resources")
	assert.Contains(t, out, "Hotline\nPhone: 1-800-799-7233\n24/7")
	assert.Contains(t, out, "Legal Aid\nMore info: https://example.org")
	assert.NotContains(t, out, "Chat:")
}

func TestPrinter_SetResourcesUnavailable(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, 80)

	p.SetResources(present.UnavailableResources())

	assert.Contains(t, buf.String(), present.ResourcesUnavailableText)
}

func TestPrinter_PrintTranscript(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, 80)
	id, _ := models.ParseConversationID("12")

	p.PrintTranscript(&models.Transcript{
		ID:        id,
		CreatedAt: "2024-05-01T10:00:00",
		RiskLevel: models.RiskModerate,
		Messages: []models.TranscriptMessage{
			{ID: "1", Sender: models.SenderUser, Text: "hello", CreatedAt: "2024-05-01T10:00:00"},
			{ID: "2", Sender: models.SenderBot, Text: "hi there", CreatedAt: "2024-05-01T10:00:05"},
		},
	}, time.UTC)

	out := buf.String()
	assert.Contains(t, out, "Conversation 12")
	assert.Contains(t, out, "Risk: moderate")
	assert.Contains(t, out, "Started May 1, 2024 10:00 AM")
	assert.Less(t, strings.Index(out, "hello"), strings.Index(out, "hi there"))
}
