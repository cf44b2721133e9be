// Package present turns service payloads into display-ready view models.
// Everything here is pure: no I/O and no mutation of the inputs. Painters are
// responsible for sanitizing the text fields before writing them to a terminal.
package present

import (
	"strings"
	"time"

	"github.com/diogo/helpline/internal/models"
)

// Placeholder texts shown in the analysis panel when there is no analysis to show.
const (
	PlaceholderStart          = "Start a new conversation to see insights."
	PlaceholderNoConversation = "No conversation selected."
	PlaceholderUnavailable    = "Analysis is not available at the moment."
)

// NoKeywordsText replaces the flag cards when nothing was flagged.
const NoKeywordsText = "No keywords detected in recent messages."

// TimestampLayout is the layout of the human-readable last activity time.
const TimestampLayout = "Jan 2, 2006 3:04 PM"

// Badge is a labelled risk level with its emphasis.
type Badge struct {
	Label  string
	Urgent bool
}

// Overview is the block always shown above the flag cards.
type Overview struct {
	MessageCount     int
	UserMessageCount int
	BotMessageCount  int
	LastActivity     string
	Risk             Badge
}

// FlagCard describes one flagged message.
type FlagCard struct {
	MessageID string
	Excerpt   string
	Triggers  string
	Level     Badge
}

// AnalysisView is the display form of an analysis.
type AnalysisView struct {
	Overview   Overview
	Flags      []FlagCard
	NoKeywords bool
}

// Panel is the content of the analysis panel: a placeholder or an analysis view.
type Panel struct {
	Placeholder string
	Analysis    *AnalysisView
}

// PlaceholderPanel returns a panel showing only placeholder text
func PlaceholderPanel(text string) Panel {
	return Panel{Placeholder: text}
}

// AnalysisPanel returns a panel showing an analysis view
func AnalysisPanel(view AnalysisView) Panel {
	return Panel{Analysis: &view}
}

// IsPlaceholder reports whether the panel shows placeholder text
func (p Panel) IsPlaceholder() bool {
	return p.Analysis == nil
}

// RiskBadge formats a risk level. Only immediate danger is urgent.
func RiskBadge(prefix string, level models.RiskLevel) Badge {
	return Badge{
		Label:  prefix + level.Label(),
		Urgent: level.IsUrgent(),
	}
}

// FormatAnalysis converts an analysis into its display form. Timestamps are
// shown in loc; a nil loc means the local zone.
func FormatAnalysis(a models.Analysis, loc *time.Location) AnalysisView {
	view := AnalysisView{
		Overview: Overview{
			MessageCount:     a.MessageCount,
			UserMessageCount: a.UserMessageCount,
			BotMessageCount:  a.BotMessageCount,
			LastActivity:     FormatTimestamp(a.LastMessageAt, loc),
			Risk:             RiskBadge("Risk: ", a.RiskLevel),
		},
	}

	if len(a.KeywordFlags) == 0 {
		view.NoKeywords = true
		return view
	}

	view.Flags = make([]FlagCard, 0, len(a.KeywordFlags))
	for _, flag := range a.KeywordFlags {
		view.Flags = append(view.Flags, FlagCard{
			MessageID: flag.MessageID.String(),
			Excerpt:   flag.Excerpt,
			Triggers:  strings.Join(flag.Triggers, ", "),
			Level:     RiskBadge("Level: ", flag.AssessedLevel),
		})
	}
	return view
}

// timestampLayouts are tried in order. Timestamps without a zone are UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
}

// FormatTimestamp renders a service timestamp for people. Values that cannot be
// parsed are returned unchanged.
func FormatTimestamp(raw string, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return t.In(loc).Format(TimestampLayout)
		}
	}
	return raw
}
