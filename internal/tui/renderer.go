package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/diogo/helpline/internal/conversation"
	"github.com/diogo/helpline/internal/models"
	"github.com/diogo/helpline/internal/present"
)

// Messages delivered to the Update loop by the renderer adapter
type (
	appendMessageMsg struct {
		message models.Message
	}
	panelMsg struct {
		panel present.Panel
	}
	recommendMsg struct {
		entries []present.ResourceEntry
	}
	resourcesMsg struct {
		entries []present.ResourceEntry
	}
)

type (
	resetInputMsg      struct{}
	focusInputMsg      struct{}
	clearTranscriptMsg struct{}
)

// programRenderer forwards controller output to the bubbletea program so that
// every UI mutation happens on the Update loop. send is usually (*tea.Program).Send.
type programRenderer struct {
	send func(tea.Msg)
}

var (
	_ conversation.Renderer         = (*programRenderer)(nil)
	_ conversation.ResourceRenderer = (*programRenderer)(nil)
)

func (r *programRenderer) AppendMessage(msg models.Message) {
	r.send(appendMessageMsg{message: msg})
}

func (r *programRenderer) ResetInput() {
	r.send(resetInputMsg{})
}

func (r *programRenderer) FocusInput() {
	r.send(focusInputMsg{})
}

func (r *programRenderer) ClearTranscript() {
	r.send(clearTranscriptMsg{})
}

func (r *programRenderer) SetPanel(panel present.Panel) {
	r.send(panelMsg{panel: panel})
}

func (r *programRenderer) Recommend(entries []present.ResourceEntry) {
	r.send(recommendMsg{entries: entries})
}

func (r *programRenderer) SetResources(entries []present.ResourceEntry) {
	r.send(resourcesMsg{entries: entries})
}
