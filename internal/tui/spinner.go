package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ProgressIndicator shows a spinner and how many steps of the running
// command have landed.
type ProgressIndicator struct {
	spinner spinner.Model
	label   string
	done    int
	total   int
}

// NewProgressIndicator creates an idle indicator with the given label
func NewProgressIndicator(label string) *ProgressIndicator {
	return &ProgressIndicator{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("212"))),
		),
		label: label,
	}
}

// Start returns the command that begins the animation
func (p *ProgressIndicator) Start() tea.Cmd {
	return p.spinner.Tick
}

// Update advances the animation for a tick that belongs to this spinner
func (p *ProgressIndicator) Update(msg spinner.TickMsg) tea.Cmd {
	var cmd tea.Cmd
	p.spinner, cmd = p.spinner.Update(msg)
	return cmd
}

// SetProgress records completed and total steps
func (p *ProgressIndicator) SetProgress(done, total int) {
	p.done = done
	p.total = total
}

// Percent returns progress in the range 0-100
func (p *ProgressIndicator) Percent() float64 {
	if p.total <= 0 {
		return 0
	}
	return float64(p.done) * 100 / float64(p.total)
}

func (p *ProgressIndicator) View() string {
	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("250"))

	if p.total == 0 {
		return p.spinner.View() + labelStyle.Render(p.label)
	}

	return fmt.Sprintf("%s%s %s %d/%d",
		p.spinner.View(),
		labelStyle.Render(p.label),
		renderProgressBar(p.Percent(), 20),
		p.done, p.total)
}

// renderProgressBar draws width cells, filled in proportion to progress
func renderProgressBar(progress float64, width int) string {
	progress = max(0, min(progress, 100))
	filled := int(float64(width) * progress / 100)

	barStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("42"))

	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("238"))

	return barStyle.Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", width-filled))
}
