package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/heartmarshall/clicktionary-backend/internal/domain"
)

var (
	bandStyles = map[domain.Band]lipgloss.Style{
		domain.BandBasic:        lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50")),
		domain.BandIntermediate: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB300")),
		domain.BandAdvanced:     lipgloss.NewStyle().Foreground(lipgloss.Color("#E53935")),
	}

	plainStyle  = lipgloss.NewStyle()
	cursorStyle = lipgloss.NewStyle().Reverse(true).Bold(true)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E53935")).
			Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#666666")).
			Padding(0, 1)

	headwordStyle = lipgloss.NewStyle().Bold(true)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Italic(true)
)

func styleFor(seg domain.Segment) lipgloss.Style {
	if s, ok := bandStyles[seg.Band]; ok {
		return s
	}
	return plainStyle
}
