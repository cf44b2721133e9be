package render

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme is the color palette shared by the chat screen and the printed output.
type Theme struct {
	Name        string
	Description string

	Border lipgloss.Color

	// Primary marks the service's messages, Secondary the user's
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color

	// Risk colors: Caution for flagged messages, Urgent for immediate danger,
	// Safe for confirmations
	Caution lipgloss.Color
	Urgent  lipgloss.Color
	Safe    lipgloss.Color

	Text     lipgloss.Color
	TextDim  lipgloss.Color
	TextMute lipgloss.Color
}

// themes lists the built-in palettes; the first is the default.
var themes = []Theme{
	{
		Name:        "tokyonight",
		Description: "Dark blue, the default",
		Border:      "#414868",
		Primary:     "#7aa2f7",
		Secondary:   "#9ece6a",
		Accent:      "#bb9af7",
		Warning:     "#e0af68",
		Error:       "#f7768e",
		Caution:     "#e0af68",
		Urgent:      "#ff4f6d",
		Safe:        "#9ece6a",
		Text:        "#c0caf5",
		TextDim:     "#565f89",
		TextMute:    "#3b4261",
	},
	{
		Name:        "catppuccin",
		Description: "Soft pastels on a warm dark background",
		Border:      "#45475a",
		Primary:     "#89b4fa",
		Secondary:   "#a6e3a1",
		Accent:      "#cba6f7",
		Warning:     "#f9e2af",
		Error:       "#f38ba8",
		Caution:     "#fab387",
		Urgent:      "#f38ba8",
		Safe:        "#a6e3a1",
		Text:        "#cdd6f4",
		TextDim:     "#6c7086",
		TextMute:    "#45475a",
	},
	{
		Name:        "nord",
		Description: "Muted arctic blues",
		Border:      "#4c566a",
		Primary:     "#88c0d0",
		Secondary:   "#a3be8c",
		Accent:      "#b48ead",
		Warning:     "#ebcb8b",
		Error:       "#bf616a",
		Caution:     "#d08770",
		Urgent:      "#bf616a",
		Safe:        "#a3be8c",
		Text:        "#eceff4",
		TextDim:     "#7b88a1",
		TextMute:    "#4c566a",
	},
	{
		Name:        "dracula",
		Description: "Vivid colors on charcoal",
		Border:      "#6272a4",
		Primary:     "#8be9fd",
		Secondary:   "#50fa7b",
		Accent:      "#ff79c6",
		Warning:     "#f1fa8c",
		Error:       "#ff5555",
		Caution:     "#ffb86c",
		Urgent:      "#ff5555",
		Safe:        "#50fa7b",
		Text:        "#f8f8f2",
		TextDim:     "#6272a4",
		TextMute:    "#44475a",
	},
	{
		Name:        "contrast",
		Description: "High contrast for low vision or bright rooms",
		Border:      "#ffffff",
		Primary:     "#00ffff",
		Secondary:   "#00ff00",
		Accent:      "#ffff00",
		Warning:     "#ffff00",
		Error:       "#ff0000",
		Caution:     "#ffff00",
		Urgent:      "#ff0000",
		Safe:        "#00ff00",
		Text:        "#ffffff",
		TextDim:     "#d0d0d0",
		TextMute:    "#a0a0a0",
	},
}

var (
	activeMu sync.RWMutex
	active   = themes[0]
)

// ActiveTheme returns the palette in use.
func ActiveTheme() Theme {
	activeMu.RLock()
	defer activeMu.RUnlock()
	return active
}

// UseTheme makes the named theme active. Unknown names leave the current
// theme in place and report false.
func UseTheme(name string) bool {
	theme, ok := LookupTheme(name)
	if !ok {
		return false
	}
	activeMu.Lock()
	active = theme
	activeMu.Unlock()
	return true
}

// LookupTheme finds a built-in theme by name.
func LookupTheme(name string) (Theme, bool) {
	for _, t := range themes {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// Themes returns the built-in themes, default first.
func Themes() []Theme {
	return append([]Theme(nil), themes...)
}

// ThemeNames returns the names of the built-in themes, default first.
func ThemeNames() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}
