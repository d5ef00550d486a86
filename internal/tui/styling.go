package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const (
	lowCoverageThreshold  = 50.0
	goodCoverageThreshold = 80.0
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.ANSIColor(termenv.ANSIBrightWhite))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff0000")).
			Bold(true)

	LowCoverageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.ANSIColor(termenv.ANSIBrightRed))

	MidCoverageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.ANSIColor(termenv.ANSIBrightYellow))

	GoodCoverageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.ANSIColor(termenv.ANSIBrightGreen))

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#767676")).
			PaddingLeft(1)
)

// PercentageStyle picks the style for a coverage percentage band.
func PercentageStyle(percent float64) lipgloss.Style {
	switch {
	case percent < lowCoverageThreshold:
		return LowCoverageStyle
	case percent < goodCoverageThreshold:
		return MidCoverageStyle
	default:
		return GoodCoverageStyle
	}
}
