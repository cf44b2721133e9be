package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the chat key bindings
type keyMap struct {
	Send            key.Binding
	NewLine         key.Binding
	NewConversation key.Binding
	Refresh         key.Binding
	CopyReply       key.Binding
	CopyResources   key.Binding
	NextPane        key.Binding
	Help            key.Binding
	Quit            key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Send: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "Send"),
		),
		NewLine: key.NewBinding(
			key.WithKeys("alt+enter"),
			key.WithHelp("Alt+Enter", "New line"),
		),
		NewConversation: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("Ctrl+N", "New"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("Ctrl+R", "Refresh"),
		),
		CopyReply: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("Ctrl+Y", "Copy reply"),
		),
		CopyResources: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("Ctrl+K", "Copy resources"),
		),
		NextPane: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "Pane"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1", "?"),
			key.WithHelp("F1", "Help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("Esc", "Quit"),
		),
	}
}

// statusBindings are shown in the status bar, in order
func (k keyMap) statusBindings() []key.Binding {
	return []key.Binding{k.Send, k.NewConversation, k.Refresh, k.NextPane, k.Help, k.Quit}
}
