package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/nassimmaaoui/portfolio-terminal/internal/terminal"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("63"))

	commandStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	outputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	suggestionBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("238")).
				Padding(0, 1)

	suggestionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	overflowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)
)

// styleFor maps a line kind to its color
func styleFor(kind terminal.Kind) lipgloss.Style {
	switch kind {
	case terminal.KindCommand:
		return commandStyle
	case terminal.KindError:
		return errorStyle
	case terminal.KindSuccess:
		return successStyle
	default:
		return outputStyle
	}
}
