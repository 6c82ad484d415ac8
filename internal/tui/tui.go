package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/nassimmaaoui/portfolio-terminal/internal/terminal"
	"github.com/nassimmaaoui/portfolio-terminal/pkg/models"
)

// header, status line, input and help footer
const chromeHeight = 4

type model struct {
	term     *terminal.Terminal
	updates  <-chan []models.Project
	input    textinput.Model
	viewport viewport.Model
	help     help.Model
	keys     keyMap
	renderer *glamour.TermRenderer
	progress *ProgressIndicator

	completion      terminal.Completion
	showSuggestions bool
	waiting         bool // a stepCmd is in flight
	spinning        bool
	lastLineID      int64

	ready  bool
	width  int
	height int
}

func initialModel(term *terminal.Terminal, updates <-chan []models.Project) model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(term.Prompt()) + " "
	ti.Placeholder = "type 'help' to get started"
	ti.Focus()

	keys := newKeyMap()
	return model{
		term:     term,
		updates:  updates,
		input:    ti,
		help:     help.New(),
		keys:     keys,
		progress: NewProgressIndicator(" running"),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForCatalog(m.updates))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		if !m.ready {
			m.viewport = viewport.New(msg.Width, 1)
			// Only page keys scroll; every other key belongs to the input.
			m.viewport.KeyMap = viewport.KeyMap{
				PageUp:   m.keys.pageUp,
				PageDown: m.keys.pageDown,
			}
			m.ready = true
		}
		m.viewport.Width = msg.Width
		m.help.Width = msg.Width
		m.input.Width = msg.Width - lipgloss.Width(m.input.Prompt) - 1
		m.renderer = newRenderer(msg.Width)
		m.layout()
		m.refresh(true)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case stepMsg:
		m.waiting = false
		if m.term.Step(msg.pending) {
			m.refresh(false)
		}
		cmds = append(cmds, m.schedule(), m.startSpinner())

	case catalogReloadedMsg:
		m.term.SetCatalog(msg.projects)
		cmds = append(cmds, waitForCatalog(m.updates))

	case catalogClosedMsg:
		m.updates = nil

	case spinner.TickMsg:
		if !m.term.Busy() {
			m.spinning = false
			return m, nil
		}
		m.progress.SetProgress(m.term.Progress())
		cmds = append(cmds, m.progress.Update(msg))
	}

	return m, tea.Batch(cmds...)
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.submit):
		value := m.input.Value()
		m.input.Reset()
		m.hideSuggestions()
		m.term.Submit(value)
		m.refresh(false)
		cmd := tea.Batch(m.schedule(), m.startSpinner())
		return m, cmd

	case key.Matches(msg, m.keys.complete):
		c := m.term.Complete(m.input.Value())
		m.input.SetValue(c.Filled)
		m.input.CursorEnd()
		m.completion = c
		m.showSuggestions = c.Visible()
		m.layout()
		return m, nil

	case key.Matches(msg, m.keys.prev):
		m.hideSuggestions()
		m.input.SetValue(m.term.History().Navigate(terminal.Up))
		m.input.CursorEnd()
		return m, nil

	case key.Matches(msg, m.keys.next):
		m.hideSuggestions()
		m.input.SetValue(m.term.History().Navigate(terminal.Down))
		m.input.CursorEnd()
		return m, nil

	case key.Matches(msg, m.keys.dismiss):
		m.hideSuggestions()
		return m, nil

	case key.Matches(msg, m.keys.pageUp, m.keys.pageDown):
		m.hideSuggestions()
		if !m.ready {
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	// Any other key edits the input and dismisses suggestions.
	m.hideSuggestions()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// schedule arms a timer for the next timed step unless one is in flight
func (m *model) schedule() tea.Cmd {
	if m.waiting {
		return nil
	}
	p, ok := m.term.Pending()
	if !ok {
		return nil
	}
	m.waiting = true
	return stepCmd(p)
}

func (m *model) startSpinner() tea.Cmd {
	if m.spinning || !m.term.Busy() {
		return nil
	}
	m.spinning = true
	m.progress.SetProgress(m.term.Progress())
	return m.progress.Start()
}

func (m *model) hideSuggestions() {
	if !m.showSuggestions {
		return
	}
	m.showSuggestions = false
	m.completion = terminal.Completion{}
	m.layout()
}

// layout gives the transcript whatever height the chrome leaves over
func (m *model) layout() {
	if !m.ready {
		return
	}
	height := m.height - chromeHeight
	if m.showSuggestions {
		height -= lipgloss.Height(m.renderSuggestions())
	}
	if height < 1 {
		height = 1
	}
	m.viewport.Height = height
}

// refresh re-renders the transcript and follows new output. force
// re-renders even when no line was added, e.g. after a resize.
func (m *model) refresh(force bool) {
	m.input.Prompt = promptStyle.Render(m.term.Prompt()) + " "
	if !m.ready {
		return
	}

	lines := m.term.Lines()
	var lastID int64
	if len(lines) > 0 {
		lastID = lines[len(lines)-1].ID
	}
	if !force && lastID == m.lastLineID {
		return
	}
	m.lastLineID = lastID
	m.viewport.SetContent(m.renderTranscript(lines))
	m.viewport.GotoBottom()
}

func (m model) renderTranscript(lines []terminal.Line) string {
	var s strings.Builder
	for i, line := range lines {
		s.WriteString(m.renderLine(line))
		if i < len(lines)-1 {
			s.WriteString("\n")
		}
	}
	return s.String()
}

func (m model) renderLine(line terminal.Line) string {
	if line.Markdown && m.renderer != nil {
		if out, err := m.renderer.Render(line.Content); err == nil {
			return strings.TrimRight(out, "\n")
		}
	}

	content := line.Content
	if line.Kind == terminal.KindCommand {
		content = "$ " + content
	}

	style := styleFor(line.Kind)
	if m.width > 0 {
		style = style.Width(m.width)
	}
	return style.Render(content)
}

func (m model) renderSuggestions() string {
	var s strings.Builder
	for i, suggestion := range m.completion.Suggestions {
		s.WriteString(suggestionStyle.Render(suggestion))
		if i < len(m.completion.Suggestions)-1 {
			s.WriteString("\n")
		}
	}
	if m.completion.Overflow > 0 {
		s.WriteString("\n" + overflowStyle.Render(fmt.Sprintf("... and %d more", m.completion.Overflow)))
	}
	return suggestionBoxStyle.Render(s.String())
}

func (m model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	parts := []string{m.renderHeader(), m.viewport.View()}
	if m.showSuggestions {
		parts = append(parts, m.renderSuggestions())
	}

	status := ""
	if m.term.Busy() {
		status = m.progress.View()
	}
	parts = append(parts, status, m.input.View(), m.help.View(m.keys))

	return strings.Join(parts, "\n")
}

func (m model) renderHeader() string {
	return headerStyle.Render(fmt.Sprintf("Portfolio Terminal - %s", m.term.Session().CurrentDirectory))
}

func newRenderer(width int) *glamour.TermRenderer {
	const glamourGutter = 2
	wrap := width - glamourGutter
	if wrap < 20 {
		wrap = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return nil
	}
	return r
}

// ShowTUI runs the interactive terminal until the user quits. Reloaded
// catalogs arriving on updates replace the terminal's catalog.
func ShowTUI(term *terminal.Terminal, updates <-chan []models.Project) error {
	p := tea.NewProgram(
		initialModel(term, updates),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
