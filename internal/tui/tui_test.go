package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nassimmaaoui/portfolio-terminal/internal/config"
	"github.com/nassimmaaoui/portfolio-terminal/internal/terminal"
	"github.com/nassimmaaoui/portfolio-terminal/pkg/models"
)

const cloneCmd = "git clone https://github.com/nassimmaaoui/cession-app.git"

func newTestModel(t *testing.T) model {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Timing.Seed = 7
	return initialModel(terminal.New(cfg), nil)
}

func update(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(model), cmd
}

func typeText(t *testing.T, m model, s string) model {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func submit(t *testing.T, m model, s string) (model, tea.Cmd) {
	t.Helper()
	m = typeText(t, m, s)
	return update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
}

// drive feeds step messages until the terminal has nothing pending
func drive(t *testing.T, m model) model {
	t.Helper()
	for i := 0; i < 100; i++ {
		p, ok := m.term.Pending()
		if !ok {
			return m
		}
		m, _ = update(t, m, stepMsg{pending: p})
	}
	t.Fatal("terminal never became idle")
	return m
}

func lastContent(m model) string {
	lines := m.term.Lines()
	return lines[len(lines)-1].Content
}

func hasContent(m model, substr string) bool {
	for _, l := range m.term.Lines() {
		if strings.Contains(l.Content, substr) {
			return true
		}
	}
	return false
}

// TestModelInitialization tests the initial model setup
func TestModelInitialization(t *testing.T) {
	m := newTestModel(t)

	if m.ready {
		t.Error("Model should not be ready before the first window size")
	}
	if m.View() != "\n  Initializing..." {
		t.Errorf("Unexpected view before ready: %q", m.View())
	}
	if !m.input.Focused() {
		t.Error("Input should be focused")
	}
	if !strings.Contains(m.input.Prompt, "nassim@portfolio:~/technical-portfolio$") {
		t.Errorf("Unexpected prompt: %q", m.input.Prompt)
	}
}

// TestViewportInitialization tests viewport setup
func TestViewportInitialization(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if !m.ready {
		t.Error("Model should be ready after window size is set")
	}
	if m.width != 100 || m.height != 40 {
		t.Error("Window dimensions not set correctly")
	}
	if m.viewport.Height != 40-chromeHeight {
		t.Errorf("Expected viewport height %d, got %d", 40-chromeHeight, m.viewport.Height)
	}
	if !strings.Contains(m.View(), "Welcome to nassim's technical portfolio terminal!") {
		t.Error("View should show the welcome banner")
	}
}

// TestSubmitRunsCommand tests that enter hands the input to the terminal
func TestSubmitRunsCommand(t *testing.T) {
	m := newTestModel(t)

	m, cmd := submit(t, m, "whoami")

	if m.input.Value() != "" {
		t.Errorf("Input should be cleared after submit, got %q", m.input.Value())
	}
	if lastContent(m) != "nassim" {
		t.Errorf("Expected whoami output, got %q", lastContent(m))
	}
	if m.waiting || m.spinning {
		t.Error("Instant commands should not schedule steps")
	}
	_ = cmd
}

// TestTabCompletion tests completion and the suggestions box
func TestTabCompletion(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	m = typeText(t, m, "cl")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.input.Value() != "clear" {
		t.Errorf("Expected single match to fill input, got %q", m.input.Value())
	}
	if m.showSuggestions {
		t.Error("Single match should not show suggestions")
	}

	m.input.Reset()
	m = typeText(t, m, "h")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.showSuggestions || len(m.completion.Suggestions) != 2 {
		t.Fatalf("Expected two suggestions, got %+v", m.completion)
	}
	if m.viewport.Height >= 40-chromeHeight {
		t.Error("Suggestions box should take room from the transcript")
	}
	if !strings.Contains(m.View(), "history") {
		t.Error("View should list the suggestions")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.showSuggestions {
		t.Error("Esc should hide suggestions")
	}
	if m.viewport.Height != 40-chromeHeight {
		t.Error("Transcript should regain its height")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "e")
	if m.showSuggestions {
		t.Error("Typing should hide suggestions")
	}
	if m.input.Value() != "he" {
		t.Errorf("Expected typed input to be kept, got %q", m.input.Value())
	}
}

// TestNavigationKeysHideSuggestions tests that history and scroll keys dismiss the box
func TestNavigationKeysHideSuggestions(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m, _ = submit(t, m, "pwd")

	for _, k := range []tea.KeyType{tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown} {
		m.input.Reset()
		m = typeText(t, m, "h")
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
		if !m.showSuggestions {
			t.Fatalf("%s: expected suggestions after tab", k)
		}

		m, _ = update(t, m, tea.KeyMsg{Type: k})
		if m.showSuggestions {
			t.Errorf("%s should hide suggestions", k)
		}
		if m.viewport.Height != 40-chromeHeight {
			t.Errorf("%s: transcript should regain its height", k)
		}
	}
}

// TestCompletionOverflow tests the overflow hint
func TestCompletionOverflow(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})

	if m.completion.Overflow == 0 {
		t.Fatalf("Empty input should overflow the suggestion limit: %+v", m.completion)
	}
	if !strings.Contains(m.renderSuggestions(), "more") {
		t.Error("Suggestions box should mention the overflow")
	}
}

// TestHistoryNavigation tests up and down arrows
func TestHistoryNavigation(t *testing.T) {
	m := newTestModel(t)
	m, _ = submit(t, m, "pwd")
	m, _ = submit(t, m, "whoami")

	steps := []struct {
		key  tea.KeyType
		want string
	}{
		{tea.KeyUp, "whoami"},
		{tea.KeyUp, "pwd"},
		{tea.KeyUp, "pwd"},
		{tea.KeyDown, "whoami"},
		{tea.KeyDown, ""},
	}
	for i, s := range steps {
		m, _ = update(t, m, tea.KeyMsg{Type: s.key})
		if m.input.Value() != s.want {
			t.Errorf("step %d: expected %q, got %q", i, s.want, m.input.Value())
		}
	}
}

// TestTimedStepsDriveThroughStepMsg tests that delayed steps run on stepMsg
func TestTimedStepsDriveThroughStepMsg(t *testing.T) {
	m := newTestModel(t)

	m, cmd := submit(t, m, cloneCmd)
	if cmd == nil {
		t.Fatal("Clone should schedule a timed step")
	}
	if !m.waiting || !m.spinning {
		t.Error("Model should wait for the first step and spin")
	}
	if lastContent(m) != "Cloning into 'cession-app'..." {
		t.Errorf("Unexpected first line: %q", lastContent(m))
	}

	m = drive(t, m)

	if m.waiting {
		t.Error("No step should be in flight once idle")
	}
	if m.term.Session().ClonedRepo != "cession-app" {
		t.Error("Clone should have completed")
	}
	if !strings.Contains(m.input.Prompt, "~/technical-portfolio$") {
		t.Errorf("Prompt should stay at the base directory, got %q", m.input.Prompt)
	}

	m, _ = update(t, m, spinner.TickMsg{})
	if m.spinning {
		t.Error("Spinner should stop once the terminal is idle")
	}
}

// TestStaleStepIgnored tests that a step for another run does nothing
func TestStaleStepIgnored(t *testing.T) {
	m := newTestModel(t)
	m, _ = submit(t, m, cloneCmd)
	before := len(m.term.Lines())

	m, _ = update(t, m, stepMsg{pending: terminal.Pending{RunID: "stale", Pos: 1}})

	if len(m.term.Lines()) != before {
		t.Error("Stale step should not append output")
	}
	if !m.waiting {
		t.Error("Model should re-arm the pending step")
	}
}

// TestCommandsQueuedWhileBusy tests input submitted during a clone
func TestCommandsQueuedWhileBusy(t *testing.T) {
	m := newTestModel(t)
	m, _ = submit(t, m, cloneCmd)
	m, _ = submit(t, m, "cd cession-app")

	if hasContent(m, "cd cession-app") {
		t.Error("Queued command should not be echoed yet")
	}

	m = drive(t, m)

	if !m.term.Session().IsInRepo {
		t.Error("Queued cd should run after the clone")
	}
	if !strings.Contains(m.input.Prompt, "~/technical-portfolio/cession-app$") {
		t.Errorf("Prompt should follow the directory, got %q", m.input.Prompt)
	}
}

// TestCatalogReload tests that reloaded catalogs reach the terminal
func TestCatalogReload(t *testing.T) {
	updates := make(chan []models.Project, 1)
	cfg := config.DefaultConfig()
	m := initialModel(terminal.New(cfg), updates)

	if m.Init() == nil {
		t.Error("Init should wait for catalog updates")
	}

	reloaded := []models.Project{{
		ID:        "cession-app",
		Name:      "Reloaded Cession",
		GitHubURL: "https://github.com/nassimmaaoui/cession-app",
	}}
	m, cmd := update(t, m, catalogReloadedMsg{projects: reloaded})
	if cmd == nil {
		t.Error("Model should keep listening for reloads")
	}

	m, _ = submit(t, m, cloneCmd)
	m = drive(t, m)
	m, _ = submit(t, m, "cd cession-app")
	m, _ = submit(t, m, "details")
	m = drive(t, m)

	if !hasContent(m, "Reloaded Cession") {
		t.Error("Details should use the reloaded catalog")
	}

	m, _ = update(t, m, catalogClosedMsg{})
	if m.updates != nil {
		t.Error("Closed channel should stop listening")
	}
}

// TestQuit tests ctrl+c
func TestQuit(t *testing.T) {
	m := newTestModel(t)

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("Ctrl+C should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Ctrl+C should quit")
	}
}

// TestRenderLine tests plain rendering by kind
func TestRenderLine(t *testing.T) {
	m := newTestModel(t)

	got := m.renderLine(terminal.Line{Kind: terminal.KindCommand, Content: "pwd"})
	if !strings.Contains(got, "$ pwd") {
		t.Errorf("Command lines should carry a $ prefix, got %q", got)
	}

	got = m.renderLine(terminal.Line{Kind: terminal.KindOutput, Content: "# Title", Markdown: true})
	if !strings.Contains(got, "# Title") {
		t.Errorf("Markdown without a renderer should fall back to plain text, got %q", got)
	}
}

// TestProgressIndicator tests the progress indicator
func TestProgressIndicator(t *testing.T) {
	indicator := NewProgressIndicator(" running")

	view := indicator.View()
	if !strings.Contains(view, "running") {
		t.Errorf("Indicator should show its label, got %q", view)
	}

	indicator.SetProgress(3, 6)
	if indicator.Percent() != 50 {
		t.Errorf("Expected 50%%, got %.0f", indicator.Percent())
	}
	withProgress := indicator.View()
	if !strings.Contains(withProgress, "3/6") {
		t.Errorf("Indicator should show step counts, got %q", withProgress)
	}

	tick, ok := indicator.Start()().(spinner.TickMsg)
	if !ok {
		t.Fatal("Start should produce a spinner tick")
	}
	if indicator.Update(tick) == nil {
		t.Error("A matching tick should schedule the next frame")
	}
	if indicator.View() == withProgress {
		t.Error("Spinner frame should advance on tick")
	}
}

// TestProgressBar tests progress bar rendering
func TestProgressBar(t *testing.T) {
	tests := []struct {
		progress float64
		width    int
	}{
		{0, 10},
		{50, 10},
		{100, 10},
		{150, 10}, // Over 100%
		{-10, 10}, // Negative
	}

	for _, tt := range tests {
		bar := renderProgressBar(tt.progress, tt.width)
		if len(bar) == 0 {
			t.Errorf("Progress bar should not be empty for progress %.0f", tt.progress)
		}
	}
}
