package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/helpline/internal/render"
)

const helpMarkdown = `# Helpline

Type a message and press **Enter** to send it. The conversation starts with
your first message; the insights pane then shows how the conversation is
being assessed and which messages were flagged.

| Key | Action |
|-----|--------|
| Enter | Send the message |
| Alt+Enter | Insert a new line |
| Ctrl+N | Start a new conversation |
| Ctrl+R | Refresh the insights |
| Ctrl+Y | Copy the last reply |
| Ctrl+K | Copy the resource list |
| Tab | Move between input, conversation, insights and resources |
| ↑ ↓ PgUp PgDn | Scroll the focused pane |
| F1 | Show or hide this help (also ? outside the input) |
| Esc | Quit |

> If you are in immediate danger, call your local emergency number.
`

// openHelp renders the help text with glamour into the help viewport
func (m *Model) openHelp() {
	width := m.width - 10
	if width < 40 {
		width = 40
	}
	height := m.height - 6
	if height < 5 {
		height = 5
	}

	rendered, err := render.Markdown(helpMarkdown, m.opts.Markdown.WithWidth(width))
	if err != nil {
		rendered = helpMarkdown
	}

	m.help = viewport.New(width, height)
	m.help.SetContent(strings.TrimRight(rendered, "\n"))
	m.showHelp = true
}

func (m Model) renderHelp() string {
	hint := hintStyle.Render("Esc, F1 or q to close  •  ↑↓ to scroll")
	return lipgloss.JoinVertical(lipgloss.Left,
		helpBoxStyle.Render(m.help.View()),
		hint,
	)
}
