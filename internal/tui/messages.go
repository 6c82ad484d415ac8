package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nassimmaaoui/portfolio-terminal/internal/terminal"
	"github.com/nassimmaaoui/portfolio-terminal/pkg/models"
)

// Message types for timed and background work
type (
	// stepMsg fires once the delay of a pending step has elapsed
	stepMsg struct {
		pending terminal.Pending
	}

	// catalogReloadedMsg carries a catalog reloaded from disk
	catalogReloadedMsg struct {
		projects []models.Project
	}

	// catalogClosedMsg reports that the reload channel was closed
	catalogClosedMsg struct{}
)

// stepCmd waits out the delay of p before asking the terminal to run it
func stepCmd(p terminal.Pending) tea.Cmd {
	return tea.Tick(p.Delay, func(time.Time) tea.Msg {
		return stepMsg{pending: p}
	})
}

// waitForCatalog blocks until the next reloaded catalog arrives
func waitForCatalog(updates <-chan []models.Project) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		projects, ok := <-updates
		if !ok {
			return catalogClosedMsg{}
		}
		return catalogReloadedMsg{projects: projects}
	}
}
