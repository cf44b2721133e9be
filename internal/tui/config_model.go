package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/helpline/internal/config"
	"github.com/diogo/helpline/internal/render"
)

// configView represents the current view in the config menu
type configView int

const (
	viewMain configView = iota
	viewChoice
)

// Menu item indices for main view
const (
	menuCopyToClipboard = iota
	menuLogLevel
	menuMarkdownStyle // Help screen markdown style
	menuTUITheme      // TUI color theme
	menuExit
	menuItemCount
)

// configChoice is one selectable value of a multi-valued setting
type configChoice struct {
	value       string
	description string
}

var logLevelChoices = []configChoice{
	{"debug", "Every request and response"},
	{"info", "Conversation events"},
	{"warn", "Service errors only"},
	{"error", "Connection failures only"},
}

var markdownStyleChoices = []configChoice{
	{"dark", "For dark terminals"},
	{"light", "For light terminals"},
	{"dracula", "Dracula colors"},
	{"tokyo-night", "Tokyo Night colors"},
	{"notty", "Plain text"},
	{"auto", "Detect from the terminal background"},
}

// feedbackClearMsg is sent to clear feedback messages
type feedbackClearMsg struct{}

// ConfigModel represents the config TUI state
type ConfigModel struct {
	config     config.Config
	configPath string
	save       func(config.Config) error

	// Navigation
	view         configView
	cursor       int
	choiceCursor int

	// Feedback
	feedback        string
	failed          bool
	feedbackTimeout time.Duration

	// Dimensions
	width  int
	height int
	ready  bool
}

// NewConfigModel creates a settings menu over cfg. Every change is persisted with save.
func NewConfigModel(cfg config.Config, configPath string, save func(config.Config) error) ConfigModel {
	if save == nil {
		save = config.SaveConfig
	}
	return ConfigModel{
		config:          cfg,
		configPath:      configPath,
		save:            save,
		view:            viewMain,
		feedbackTimeout: 2 * time.Second,
	}
}

// Config returns the settings as last saved
func (m ConfigModel) Config() config.Config {
	return m.config
}

// Init initializes the model
func (m ConfigModel) Init() tea.Cmd {
	return nil
}

// clearFeedback returns a command that clears the feedback message after a delay
func clearFeedback(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return feedbackClearMsg{}
	})
}

// Update handles messages and updates the model
func (m ConfigModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case feedbackClearMsg:
		m.feedback = ""
		m.failed = false

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			if m.view == viewChoice {
				m.view = viewMain
			} else {
				return m, tea.Quit
			}

		case "up", "k":
			if m.view == viewMain {
				m.cursor = cycle(m.cursor-1, menuItemCount)
			} else {
				m.choiceCursor = cycle(m.choiceCursor-1, len(m.choices(m.cursor)))
			}

		case "down", "j":
			if m.view == viewMain {
				m.cursor = cycle(m.cursor+1, menuItemCount)
			} else {
				m.choiceCursor = cycle(m.choiceCursor+1, len(m.choices(m.cursor)))
			}

		case "enter", " ":
			return m.handleSelect()
		}
	}

	return m, nil
}

func cycle(i, n int) int {
	if n == 0 {
		return 0
	}
	return (i%n + n) % n
}

// handleSelect handles menu item selection
func (m ConfigModel) handleSelect() (tea.Model, tea.Cmd) {
	if m.view == viewMain {
		switch m.cursor {
		case menuExit:
			return m, tea.Quit
		case menuCopyToClipboard:
			updated := m.config
			updated.CopyToClipboard = !updated.CopyToClipboard
			state := "disabled"
			if updated.CopyToClipboard {
				state = "enabled"
			}
			return m.commit(updated, "Copy to clipboard "+state)
		default:
			m.view = viewChoice
			m.choiceCursor = 0
			current := m.currentValue(m.cursor)
			for i, c := range m.choices(m.cursor) {
				if c.value == current {
					m.choiceCursor = i
					break
				}
			}
			return m, nil
		}
	}

	choices := m.choices(m.cursor)
	if len(choices) == 0 {
		m.view = viewMain
		return m, nil
	}
	value := choices[m.choiceCursor].value
	updated := m.config
	var label string
	switch m.cursor {
	case menuLogLevel:
		updated.LogLevel = value
		label = "Log level"
	case menuMarkdownStyle:
		updated.Markdown.Style = value
		label = "Markdown style"
	case menuTUITheme:
		updated.TUITheme = value
		label = "Theme"
	}
	m.view = viewMain

	next, cmd := m.commit(updated, fmt.Sprintf("%s set to %s", label, value))
	if nm := next.(ConfigModel); !nm.failed && m.cursor == menuTUITheme {
		// Apply the new TUI theme immediately
		render.UseTheme(value)
		UpdateTheme()
	}
	return next, cmd
}

// commit saves updated and keeps it only when the save succeeds
func (m ConfigModel) commit(updated config.Config, success string) (tea.Model, tea.Cmd) {
	if err := m.save(updated); err != nil {
		m.feedback = fmt.Sprintf("Error: %v", err)
		m.failed = true
	} else {
		m.config = updated
		m.feedback = success
		m.failed = false
	}
	return m, clearFeedback(m.feedbackTimeout)
}

// choices lists the values of a multi-valued menu item
func (m ConfigModel) choices(item int) []configChoice {
	switch item {
	case menuLogLevel:
		return logLevelChoices
	case menuMarkdownStyle:
		return markdownStyleChoices
	case menuTUITheme:
		themes := render.Themes()
		choices := make([]configChoice, len(themes))
		for i, t := range themes {
			choices[i] = configChoice{value: t.Name, description: t.Description}
		}
		return choices
	}
	return nil
}

func (m ConfigModel) currentValue(item int) string {
	switch item {
	case menuLogLevel:
		if m.config.LogLevel == "" {
			return "info"
		}
		return m.config.LogLevel
	case menuMarkdownStyle:
		if m.config.Markdown.Style == "" {
			return render.DefaultOptions().Style
		}
		return m.config.Markdown.Style
	case menuTUITheme:
		if m.config.TUITheme == "" {
			return "tokyonight"
		}
		return m.config.TUITheme
	}
	return ""
}

// View renders the TUI
func (m ConfigModel) View() string {
	if !m.ready {
		return loadingStyle.Render("  Initializing...")
	}

	var sections []string
	contentWidth := m.width - 4
	if contentWidth < 40 {
		contentWidth = 40
	}

	header := headerStyle.Width(contentWidth).Render(titleStyle.Render("✦ Settings"))
	sections = append(sections, header)

	paths := lipgloss.JoinVertical(lipgloss.Left,
		configSectionTitleStyle.Render("Files"),
		fmt.Sprintf("   Config:  %s", configPathStyle.Render(m.configPath)),
		fmt.Sprintf("   Service: %s", configPathStyle.Render(m.config.BaseURL)),
	)
	sections = append(sections, configPanelStyle.Width(contentWidth).Render(paths))

	var content string
	if m.view == viewMain {
		content = m.renderMainMenu()
	} else {
		content = m.renderChoices()
	}
	sections = append(sections, configPanelStyle.Width(contentWidth).Render(content))

	if m.feedback != "" {
		if m.failed {
			sections = append(sections, configErrorStyle.Render("✗ "+m.feedback))
		} else {
			sections = append(sections, configFeedbackStyle.Render("✓ "+m.feedback))
		}
	}

	sections = append(sections, m.renderStatusBar(contentWidth))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderMainMenu renders the main settings menu
func (m ConfigModel) renderMainMenu() string {
	rows := []struct {
		label string
		value string
	}{
		{"Copy replies to clipboard", m.renderBoolValue(m.config.CopyToClipboard)},
		{"Log level", configValueStyle.Render(m.currentValue(menuLogLevel))},
		{"Help markdown style", configValueStyle.Render(m.currentValue(menuMarkdownStyle))},
		{"Color theme", configValueStyle.Render(m.currentValue(menuTUITheme))},
		{"Exit", ""},
	}

	items := []string{configSectionTitleStyle.Render("Settings"), ""}
	for i, row := range rows {
		cursor := "  "
		style := configItemStyle
		if m.cursor == i {
			cursor = configCursorStyle.Render("▸ ")
			style = configSelectedStyle
		}
		line := cursor + style.Render(fmt.Sprintf("%-28s", row.label))
		if row.value != "" {
			line += row.value
		}
		items = append(items, line)
	}
	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

// renderChoices renders the values of the selected setting
func (m ConfigModel) renderChoices() string {
	titles := map[int]string{
		menuLogLevel:      "Select Log Level",
		menuMarkdownStyle: "Select Markdown Style",
		menuTUITheme:      "Select Color Theme",
	}

	current := m.currentValue(m.cursor)
	items := []string{configSectionTitleStyle.Render(titles[m.cursor]), ""}
	for i, c := range m.choices(m.cursor) {
		cursor := "  "
		style := configItemStyle
		if m.choiceCursor == i {
			cursor = configCursorStyle.Render("▸ ")
			style = configSelectedStyle
		}

		marker := ""
		if c.value == current {
			marker = configCurrentStyle.Render(" (current)")
		}
		items = append(items, cursor+style.Render(fmt.Sprintf("%s - %s", c.value, c.description))+marker)
	}
	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

// renderBoolValue renders a boolean value with appropriate styling
func (m ConfigModel) renderBoolValue(value bool) string {
	if value {
		return configCurrentStyle.Render("enabled")
	}
	return configPathStyle.Render("disabled")
}

// renderStatusBar renders the bottom status bar
func (m ConfigModel) renderStatusBar(width int) string {
	back := "Exit"
	if m.view == viewChoice {
		back = "Back"
	}
	shortcuts := []struct {
		key  string
		desc string
	}{
		{"↑↓", "Navigate"},
		{"Enter", "Select"},
		{"Esc", back},
	}

	var items []string
	for _, s := range shortcuts {
		items = append(items, statusKeyStyle.Render(s.key)+statusDescStyle.Render(" "+s.desc))
	}

	return statusBarStyle.Width(width).Align(lipgloss.Center).Render(strings.Join(items, "  │  "))
}

// RunConfig starts the settings menu over cfg, saving to the config file
func RunConfig(cfg config.Config) error {
	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		NewConfigModel(cfg, path, config.SaveConfig),
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
