package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("63")
	green  = lipgloss.Color("42")
	red    = lipgloss.Color("203")
)

// Theme groups the styles used by the picker screens.
type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Label    lipgloss.Style
	Answer   lipgloss.Style
	Error    lipgloss.Style
}

func DefaultTheme() Theme {
	faint := lipgloss.NewStyle().Faint(true)
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		Subtitle: faint,
		Help:     faint,
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(accent),
		Label:  faint.Width(10),
		Answer: lipgloss.NewStyle().Bold(true).Foreground(green),
		Error:  lipgloss.NewStyle().Foreground(red),
	}
}
