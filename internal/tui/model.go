package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/helpline/internal/console"
	"github.com/diogo/helpline/internal/conversation"
	"github.com/diogo/helpline/internal/models"
	"github.com/diogo/helpline/internal/present"
	"github.com/diogo/helpline/internal/render"
)

// Animation tick message
type animationTickMsg time.Time

// Completion messages for commands run off the Update loop
type (
	submitDoneMsg  struct{}
	refreshDoneMsg struct{}
)

// copiedMsg reports the outcome of a clipboard write
type copiedMsg struct {
	what string
	err  error
}

// ConversationController is the part of conversation.Controller the chat model drives.
// Its methods paint through the renderer adapter, which needs the Update loop to be
// free, so they are only ever called from commands, never from Update or View.
type ConversationController interface {
	Submit(ctx context.Context, text string)
	Refresh(ctx context.Context)
	Reset()
}

// ResourceLoader fills the resource pane
type ResourceLoader interface {
	Load(ctx context.Context) []present.ResourceEntry
}

// ChatClient is the service client the chat TUI runs against
type ChatClient interface {
	conversation.Service
	conversation.ResourceService
}

// ChatOptions configures the chat TUI
type ChatOptions struct {
	// BaseURL is shown in the header
	BaseURL string

	// CopyReplies copies every reply to the clipboard as it arrives
	CopyReplies bool

	// Markdown controls how the help screen is rendered
	Markdown render.Options

	// Clipboard writes text to the clipboard; defaults to atotto/clipboard
	Clipboard func(string) error

	Logger *slog.Logger
}

type pane int

const (
	paneInput pane = iota
	paneTranscript
	paneAnalysis
	paneResources
	paneCount
)

func (p pane) next() pane {
	return (p + 1) % paneCount
}

// Layout constants
const (
	headerHeight = 4 // Header panel with border and margin
	inputHeight  = 6 // Input panel with border and margin
	statusHeight = 2 // Status bar with margin
	minBody      = 10
)

// Model represents the chat TUI state
type Model struct {
	ctx        context.Context
	controller ConversationController
	loader     ResourceLoader
	opts       ChatOptions
	keys       keyMap

	// UI components
	transcript viewport.Model
	analysis   viewport.Model
	resources  viewport.Model
	help       viewport.Model
	textarea   textarea.Model
	spinner    spinner.Model

	// Painted state
	messages     []models.Message
	lastReply    string
	panel        present.Panel
	resourceList []present.ResourceEntry
	recommended  []present.ResourceEntry

	// State
	focus          pane
	sending        bool
	refreshing     bool
	showHelp       bool
	status         string
	ready          bool
	animationFrame int

	// Dimensions
	width  int
	height int
}

// NewChatModel creates a new chat TUI model
func NewChatModel(ctx context.Context, controller ConversationController, loader ResourceLoader, opts ChatOptions) Model {
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}
	if opts.Markdown.Style == "" {
		opts.Markdown = render.DefaultOptions()
	}

	keys := defaultKeyMap()

	// Create textarea for input
	ta := textarea.New()
	ta.Placeholder = "Type your message here..."
	ta.CharLimit = 4000
	ta.ShowLineNumbers = false
	ta.SetHeight(2)
	ta.KeyMap.InsertNewline = keys.NewLine
	ta.Focus()

	// Style the textarea
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Base = lipgloss.NewStyle().Foreground(colorText)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(colorTextDim)
	ta.BlurredStyle = ta.FocusedStyle

	// Create spinner
	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = loadingStyle

	return Model{
		ctx:        ctx,
		controller: controller,
		loader:     loader,
		opts:       opts,
		keys:       keys,
		textarea:   ta,
		spinner:    s,
		panel:      present.PlaceholderPanel(present.PlaceholderStart),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.loadResources(),
	)
}

// animationTick returns a command that sends animation tick messages
func animationTick() tea.Cmd {
	return tea.Tick(time.Millisecond*80, func(t time.Time) tea.Msg {
		return animationTickMsg(t)
	})
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case appendMessageMsg:
		m.messages = append(m.messages, msg.message)
		if msg.message.Sender == models.SenderBot {
			m.lastReply = msg.message.Text
			if m.opts.CopyReplies {
				cmds = append(cmds, m.copyCmd("reply", msg.message.Text))
			}
		}
		m.updateTranscript()
		m.transcript.GotoBottom()

	case resetInputMsg:
		m.textarea.Reset()
		cmds = append(cmds, m.focusPane(paneInput))

	case focusInputMsg:
		cmds = append(cmds, m.focusPane(paneInput))

	case clearTranscriptMsg:
		m.messages = nil
		m.lastReply = ""
		m.recommended = nil
		m.updateTranscript()
		m.updateResources()

	case panelMsg:
		m.panel = msg.panel
		m.updateAnalysis()
		m.analysis.GotoTop()

	case recommendMsg:
		m.recommended = msg.entries
		m.updateResources()
		m.resources.GotoTop()

	case resourcesMsg:
		m.resourceList = msg.entries
		m.updateResources()

	case submitDoneMsg:
		m.sending = false

	case refreshDoneMsg:
		m.refreshing = false

	case copiedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Could not copy %s: %v", msg.what, msg.err)
		} else {
			m.status = "Copied " + msg.what + " to clipboard"
		}

	case spinner.TickMsg:
		if m.sending || m.refreshing {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case animationTickMsg:
		if m.sending {
			m.animationFrame++
			cmds = append(cmds, animationTick())
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	if m.showHelp {
		switch {
		case msg.String() == "ctrl+c":
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help), msg.String() == "esc", msg.String() == "q":
			m.showHelp = false
			return m, nil
		}
		var cmd tea.Cmd
		m.help, cmd = m.help.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	// "?" is a character while typing
	case key.Matches(msg, m.keys.Help) && (msg.String() != "?" || m.focus != paneInput):
		m.openHelp()
		return m, nil

	case key.Matches(msg, m.keys.NextPane):
		return m, m.focusPane(m.focus.next())

	case key.Matches(msg, m.keys.NewConversation):
		// A reply still in flight would adopt its conversation id again
		if m.sending {
			m.status = "Wait for the reply before starting a new conversation"
			return m, nil
		}
		return m, m.resetCmd()

	case key.Matches(msg, m.keys.Refresh):
		if m.refreshing {
			return m, nil
		}
		m.refreshing = true
		return m, tea.Batch(m.refreshCmd(), m.spinner.Tick)

	case key.Matches(msg, m.keys.CopyReply):
		if m.lastReply == "" {
			m.status = "No reply to copy yet"
			return m, nil
		}
		return m, m.copyCmd("reply", m.lastReply)

	case key.Matches(msg, m.keys.CopyResources):
		if len(m.resourceList) == 0 {
			m.status = "No resources to copy yet"
			return m, nil
		}
		return m, m.copyCmd("resources", present.PlainText(m.resourceList))

	case key.Matches(msg, m.keys.Send) && m.focus == paneInput:
		return m.send()
	}

	// Only the focused component sees the remaining keys
	var cmd tea.Cmd
	switch m.focus {
	case paneInput:
		if !m.sending {
			m.textarea, cmd = m.textarea.Update(msg)
		}
	case paneTranscript:
		m.transcript, cmd = m.transcript.Update(msg)
	case paneAnalysis:
		m.analysis, cmd = m.analysis.Update(msg)
	case paneResources:
		m.resources, cmd = m.resources.Update(msg)
	}
	return m, cmd
}

// send starts submitting the compose box content. The controller renders the
// user message and clears the input itself.
func (m Model) send() (tea.Model, tea.Cmd) {
	if m.sending {
		return m, nil
	}
	text := m.textarea.Value()
	if strings.TrimSpace(text) == "" {
		return m, nil
	}

	m.sending = true
	m.animationFrame = 0
	return m, tea.Batch(
		m.submitCmd(text),
		m.spinner.Tick,
		animationTick(),
	)
}

func (m Model) submitCmd(text string) tea.Cmd {
	ctx, controller := m.ctx, m.controller
	return func() tea.Msg {
		controller.Submit(ctx, text)
		return submitDoneMsg{}
	}
}

func (m Model) refreshCmd() tea.Cmd {
	ctx, controller := m.ctx, m.controller
	return func() tea.Msg {
		controller.Refresh(ctx)
		return refreshDoneMsg{}
	}
}

func (m Model) resetCmd() tea.Cmd {
	controller := m.controller
	return func() tea.Msg {
		controller.Reset()
		return nil
	}
}

func (m Model) loadResources() tea.Cmd {
	if m.loader == nil {
		return nil
	}
	ctx, loader := m.ctx, m.loader
	return func() tea.Msg {
		loader.Load(ctx)
		return nil
	}
}

func (m Model) copyCmd(what, text string) tea.Cmd {
	write := m.opts.Clipboard
	return func() tea.Msg {
		return copiedMsg{what: what, err: write(text)}
	}
}

// focusPane moves keyboard focus; only the input pane keeps the cursor
func (m *Model) focusPane(p pane) tea.Cmd {
	m.focus = p
	if p == paneInput {
		return m.textarea.Focus()
	}
	m.textarea.Blur()
	return nil
}

// layout sizes every component from the window dimensions
func (m *Model) layout() {
	bodyHeight := m.height - headerHeight - inputHeight - statusHeight
	if bodyHeight < minBody {
		bodyHeight = minBody
	}

	leftWidth, rightWidth := m.columnWidths()
	analysisHeight := bodyHeight / 2
	resourcesHeight := bodyHeight - analysisHeight

	// Each pane loses two columns to the border, two to padding and one row to its title
	sizes := []struct {
		vp            *viewport.Model
		width, height int
	}{
		{&m.transcript, leftWidth - 4, bodyHeight - 3},
		{&m.analysis, rightWidth - 4, analysisHeight - 3},
		{&m.resources, rightWidth - 4, resourcesHeight - 3},
	}
	for _, s := range sizes {
		if !m.ready {
			*s.vp = viewport.New(s.width, s.height)
			continue
		}
		s.vp.Width = s.width
		s.vp.Height = s.height
	}

	m.textarea.SetWidth(m.width - 10)
	m.ready = true

	m.updateTranscript()
	m.updateAnalysis()
	m.updateResources()
}

func (m Model) columnWidths() (int, int) {
	total := m.width - 2
	left := total * 3 / 5
	return left, total - left
}

// updateTranscript refreshes the transcript viewport with styled messages.
// Message text is shown literally.
func (m *Model) updateTranscript() {
	var content strings.Builder
	bubbleWidth := m.transcript.Width - 6
	if bubbleWidth < 10 {
		bubbleWidth = 10
	}

	for i, msg := range m.messages {
		if i > 0 {
			content.WriteString("\n")
		}

		text := render.Sanitize(msg.Text)
		if msg.Sender == models.SenderUser {
			label := userLabelStyle.Render("● You")
			bubble := userBubbleStyle.Width(bubbleWidth).Render(text)
			content.WriteString(label + "\n" + bubble)
		} else {
			label := botLabelStyle.Render("✦ Helpline")
			bubble := botBubbleStyle.Width(bubbleWidth).Render(text)
			content.WriteString(label + "\n" + bubble)
		}
		content.WriteString("\n")
	}

	m.transcript.SetContent(content.String())
}

func (m *Model) updateAnalysis() {
	m.analysis.SetContent(wrap(console.FormatPanel(panelStyles, m.panel), m.analysis.Width))
}

func (m *Model) updateResources() {
	var blocks []string
	if len(m.recommended) > 0 {
		blocks = append(blocks, console.FormatResources(panelStyles, "Recommended now", m.recommended))
	}
	if m.resourceList == nil {
		blocks = append(blocks, hintStyle.Render("Loading resources..."))
	} else {
		blocks = append(blocks, console.FormatResources(panelStyles, "Support resources", m.resourceList))
	}
	m.resources.SetContent(wrap(strings.Join(blocks, "\n\n"), m.resources.Width))
}

func wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return lipgloss.NewStyle().Width(width).Render(s)
}

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return loadingStyle.Render("  Initializing...")
	}

	if m.showHelp {
		return m.renderHelp()
	}

	contentWidth := m.width - 4

	// Header
	headerParts := []string{titleStyle.Render("✦ Helpline")}
	if m.opts.BaseURL != "" {
		headerParts = append(headerParts,
			hintStyle.Render("  •  "),
			subtitleStyle.Render(m.opts.BaseURL),
		)
	}
	header := headerStyle.Width(contentWidth).Render(lipgloss.JoinHorizontal(lipgloss.Center, headerParts...))

	// Panes
	leftWidth, rightWidth := m.columnWidths()

	var transcriptContent string
	if len(m.messages) == 0 {
		transcriptContent = m.renderWelcome()
	} else {
		transcriptContent = m.transcript.View()
	}

	insightsTitle := "Insights"
	if m.refreshing {
		insightsTitle += " " + m.spinner.View()
	}

	left := m.renderPane(paneTranscript, "Conversation", transcriptContent, leftWidth, m.transcript.Height)
	right := lipgloss.JoinVertical(lipgloss.Left,
		m.renderPane(paneAnalysis, insightsTitle, m.analysis.View(), rightWidth, m.analysis.Height),
		m.renderPane(paneResources, "Resources", m.resources.View(), rightWidth, m.resources.Height),
	)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	// Input
	var inputContent string
	if m.sending {
		inputContent = m.renderLoadingAnimation()
	} else {
		inputContent = lipgloss.JoinVertical(
			lipgloss.Left,
			inputLabelStyle.Render("You"),
			m.textarea.View(),
		)
	}
	input := m.stylePane(paneInput, inputPanelStyle).Width(contentWidth).Render(inputContent)

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		body,
		input,
		m.renderStatusBar(contentWidth),
	)
}

func (m Model) stylePane(p pane, base lipgloss.Style) lipgloss.Style {
	if m.focus == p {
		return base.BorderForeground(colorPrimary)
	}
	return base
}

func (m Model) renderPane(p pane, title, content string, outerWidth, innerHeight int) string {
	style := paneStyle
	if m.focus == p {
		style = focusedPaneStyle
	}
	body := paneTitleStyle.Render(title) + "\n" + content
	return style.Width(outerWidth - 2).Height(innerHeight + 1).Render(body)
}

// renderWelcome renders the welcome screen when no messages exist
func (m Model) renderWelcome() string {
	width := m.transcript.Width
	height := m.transcript.Height

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		welcomeIconStyle.Width(width).Render("✦"),
		"",
		welcomeTitleStyle.Width(width).Render("You're not alone"),
		"",
		welcomeStyle.Width(width).Render("Type a message below to start a conversation."),
		welcomeStyle.Width(width).Render("Support resources are listed on the right."),
	)

	// Center vertically
	topPadding := (height - lipgloss.Height(content)) / 2
	if topPadding < 0 {
		topPadding = 0
	}

	return strings.Repeat("\n", topPadding) + content
}

// renderLoadingAnimation renders a colorful animated loading indicator
func (m Model) renderLoadingAnimation() string {
	chars := []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}
	barChars := []string{"█", "█", "█", "█", "█", "█", "▓", "▒", "░"}

	frame := m.animationFrame

	spinIdx := frame % len(chars)
	spinColor := gradientColors[frame%len(gradientColors)]
	spin := lipgloss.NewStyle().Foreground(spinColor).Bold(true).Render(chars[spinIdx])

	barWidth := 20
	var bar strings.Builder
	for i := 0; i < barWidth; i++ {
		colorIdx := (i + frame) % len(gradientColors)
		charIdx := (i + frame/2) % len(barChars)
		style := lipgloss.NewStyle().Foreground(gradientColors[colorIdx])
		bar.WriteString(style.Render(barChars[charIdx]))
	}

	var dots strings.Builder
	numDots := (frame / 3) % 4
	for i := 0; i < 3; i++ {
		if i < numDots {
			dotColor := gradientColors[(frame+i)%len(gradientColors)]
			dots.WriteString(lipgloss.NewStyle().Foreground(dotColor).Render("●"))
		} else {
			dots.WriteString(lipgloss.NewStyle().Foreground(colorTextMute).Render("○"))
		}
	}

	text := lipgloss.NewStyle().Foreground(colorText).Render(" Sending ")

	return fmt.Sprintf("%s %s %s %s", spin, bar.String(), text, dots.String())
}

// renderStatusBar renders the bottom status bar with shortcuts
func (m Model) renderStatusBar(width int) string {
	if m.status != "" {
		return statusBarStyle.Width(width).Align(lipgloss.Center).Render(statusFlashStyle.Render(m.status))
	}

	var items []string
	for _, b := range m.keys.statusBindings() {
		h := b.Help()
		items = append(items, statusKeyStyle.Render(h.Key)+statusDescStyle.Render(" "+h.Desc))
	}

	return statusBarStyle.Width(width).Align(lipgloss.Center).Render(strings.Join(items, "  │  "))
}

// RunChat starts the chat TUI. It returns when the user quits or ctx is done.
func RunChat(ctx context.Context, client ChatClient, opts ChatOptions) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	renderer := &programRenderer{}
	controller := conversation.New(client, renderer, conversation.WithLogger(opts.Logger))
	loader := conversation.NewResourceLoader(client, renderer, conversation.WithLogger(opts.Logger))

	p := tea.NewProgram(
		NewChatModel(ctx, controller, loader, opts),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	renderer.send = p.Send

	_, err := p.Run()

	// Let in-flight analysis refreshes observe the cancellation before returning
	cancel()
	controller.Wait()

	return err
}
