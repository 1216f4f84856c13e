package rowview

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	primaryColor = lipgloss.Color("212")
	errorColor   = lipgloss.Color("196")
	cyanColor    = lipgloss.Color("45")
	warningColor = lipgloss.Color("214")
	mutedColor   = lipgloss.Color("241")
	borderNormal = lipgloss.Color("240")
)

// Box styles. Width is set per box from the layout, so these only carry the
// border and padding that layout.CellMetrics accounts for.
var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderNormal).
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)

	boxHoverStyle = boxStyle.
			BorderForeground(cyanColor)

	boxCursorStyle = boxStyle.
			BorderForeground(warningColor).
			Bold(true)

	boxEditingStyle = boxStyle.
			BorderForeground(primaryColor).
			Foreground(lipgloss.Color("255"))

	placeholderStyle = lipgloss.NewStyle().Foreground(mutedColor)
)

// Text styles
var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
	mutedText   = lipgloss.NewStyle().Foreground(mutedColor)
	statusStyle = lipgloss.NewStyle().Foreground(cyanColor)
	errorText   = lipgloss.NewStyle().Foreground(errorColor)
	findPrompt  = lipgloss.NewStyle().Foreground(warningColor).Bold(true)
)
