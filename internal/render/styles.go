// Package render turns readings into terminal panels and exportable
// documents.
package render

import "github.com/charmbracelet/lipgloss"

const panelWidth = 80

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F59E0B")).
			Background(lipgloss.Color("#1F2937")).
			Padding(0, 1).
			MarginBottom(1)

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FBBF24"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9CA3AF"))

	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#F59E0B")).
			Padding(1, 2).
			Width(panelWidth)

	poemStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("#FDE68A")).
			Align(lipgloss.Center).
			Width(panelWidth - 6)

	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#818CF8")).
			Bold(true)

	botStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FBBF24")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	errorStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#EF4444")).
			Foreground(lipgloss.Color("#EF4444")).
			Padding(0, 1).
			Width(panelWidth)

	gaugeHigh = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	gaugeMid  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	gaugeLow  = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
)
