// Package console prints conversations, analyses and resources as plain
// terminal output for the one-shot commands.
package console

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/helpline/internal/render"
)

// Styles holds the lipgloss styles used by the printer
type Styles struct {
	UserLabel   lipgloss.Style
	UserBubble  lipgloss.Style
	BotLabel    lipgloss.Style
	BotBubble   lipgloss.Style
	Heading     lipgloss.Style
	Dim         lipgloss.Style
	Placeholder lipgloss.Style
	Badge       lipgloss.Style
	UrgentBadge lipgloss.Style
	Card        lipgloss.Style
	Name        lipgloss.Style
	Link        lipgloss.Style
	Error       lipgloss.Style
	Success     lipgloss.Style
}

// NewStyles builds styles from a color theme
func NewStyles(theme render.Theme) Styles {
	return Styles{
		UserLabel: lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true),
		UserBubble: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Secondary).
			Padding(0, 1),
		BotLabel: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),
		BotBubble: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary).
			Foreground(theme.Text).
			Padding(0, 1),
		Heading: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),
		Dim: lipgloss.NewStyle().
			Foreground(theme.TextDim),
		Placeholder: lipgloss.NewStyle().
			Foreground(theme.TextMute).
			Italic(true),
		Badge: lipgloss.NewStyle().
			Foreground(theme.Caution).
			Bold(true),
		UrgentBadge: lipgloss.NewStyle().
			Foreground(theme.Urgent).
			Bold(true).
			Underline(true),
		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(theme.Border).
			BorderLeft(true).
			PaddingLeft(1),
		Name: lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true),
		Link: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Underline(true),
		Error: lipgloss.NewStyle().
			Foreground(theme.Error),
		Success: lipgloss.NewStyle().
			Foreground(theme.Safe),
	}
}
