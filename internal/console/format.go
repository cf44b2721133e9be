package console

import (
	"fmt"
	"strings"

	"github.com/diogo/helpline/internal/models"
	"github.com/diogo/helpline/internal/present"
	"github.com/diogo/helpline/internal/render"
)

// FormatMessage renders one transcript message as a labelled bubble.
func FormatMessage(s Styles, msg models.Message, width int) string {
	text := render.Sanitize(msg.Text)
	if msg.Sender == models.SenderUser {
		return s.UserLabel.Render("▸ You") + "\n" + s.UserBubble.Width(bubbleWidth(width)).Render(text)
	}
	return s.BotLabel.Render("✦ Helpline") + "\n" + s.BotBubble.Width(bubbleWidth(width)).Render(text)
}

// FormatBadge renders a risk badge; urgent badges are emphasised. Levels the
// client does not know are shown verbatim, so the label is sanitized like any
// other service text.
func FormatBadge(s Styles, b present.Badge) string {
	label := render.SanitizeLine(b.Label)
	if b.Urgent {
		return s.UrgentBadge.Render("! " + label)
	}
	return s.Badge.Render(label)
}

// FormatPanel renders the analysis panel content.
func FormatPanel(s Styles, panel present.Panel) string {
	if panel.IsPlaceholder() {
		return s.Placeholder.Render(panel.Placeholder)
	}

	view := panel.Analysis
	var sb strings.Builder

	sb.WriteString(s.Heading.Render("Conversation insights"))
	sb.WriteString("\n")
	sb.WriteString(FormatBadge(s, view.Overview.Risk))
	sb.WriteString("\n")
	sb.WriteString(s.Dim.Render(fmt.Sprintf("Messages: %d total (%d user, %d bot)",
		view.Overview.MessageCount, view.Overview.UserMessageCount, view.Overview.BotMessageCount)))
	sb.WriteString("\n")
	sb.WriteString(s.Dim.Render("Last activity: " + render.SanitizeLine(view.Overview.LastActivity)))

	sb.WriteString("\n\n")
	sb.WriteString(s.Heading.Render("Flagged messages"))
	sb.WriteString("\n")

	if view.NoKeywords {
		sb.WriteString(s.Placeholder.Render(present.NoKeywordsText))
		return sb.String()
	}

	cards := make([]string, 0, len(view.Flags))
	for _, flag := range view.Flags {
		cards = append(cards, FormatFlagCard(s, flag))
	}
	sb.WriteString(strings.Join(cards, "\n"))
	return sb.String()
}

// FormatFlagCard renders one flagged message.
func FormatFlagCard(s Styles, card present.FlagCard) string {
	lines := []string{
		s.Name.Render("Message #"+render.SanitizeLine(card.MessageID)) + "  " + FormatBadge(s, card.Level),
		render.Sanitize(card.Excerpt),
		s.Dim.Render("Triggers: " + render.SanitizeLine(card.Triggers)),
	}
	return s.Card.Render(strings.Join(lines, "\n"))
}

// FormatResourceEntry renders one resource with its optional lines.
func FormatResourceEntry(s Styles, entry present.ResourceEntry) string {
	if entry.Unavailable {
		return s.Placeholder.Render(entry.Name)
	}

	lines := []string{s.Name.Render(render.SanitizeLine(entry.Name))}
	for _, line := range entry.Lines {
		text := render.SanitizeLine(line.Text)
		switch line.Kind {
		case present.LineNotes:
			lines = append(lines, s.Dim.Render(text))
		default:
			lines = append(lines, line.Label+": "+s.Link.Render(text))
		}
	}
	return strings.Join(lines, "\n")
}

// FormatResources renders a resource list under a heading.
func FormatResources(s Styles, heading string, entries []present.ResourceEntry) string {
	blocks := make([]string, 0, len(entries)+1)
	blocks = append(blocks, s.Heading.Render(heading))
	for _, e := range entries {
		blocks = append(blocks, FormatResourceEntry(s, e))
	}
	return strings.Join(blocks, "\n\n")
}

func bubbleWidth(width int) int {
	w := width - 4
	if w < 40 {
		w = 40
	}
	if w > 120 {
		w = 120
	}
	return w
}
