package tui

import "github.com/charmbracelet/lipgloss"

// Theme colors
const (
	ColorAccent    = "86"  // function keys
	ColorHighlight = "205" // selected key, display border
	ColorDanger    = "196" // error sentinel, clear key
	ColorEquals    = "208" // = key
	ColorMuted     = "241" // hints
	ColorText      = "252"
)

// keyWidth is the rendered width of one keypad cell.
const keyWidth = 7

// Styles contains the shared style definitions.
var Styles = struct {
	Display      lipgloss.Style
	DisplayError lipgloss.Style
	Key          lipgloss.Style
	Function     lipgloss.Style
	Clear        lipgloss.Style
	Equals       lipgloss.Style
	Selected     lipgloss.Style
	Hint         lipgloss.Style
}{
	Display: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Foreground(lipgloss.Color(ColorText)).
		Bold(true).
		Align(lipgloss.Right).
		Padding(0, 1),
	DisplayError: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Foreground(lipgloss.Color(ColorDanger)).
		Bold(true).
		Align(lipgloss.Right).
		Padding(0, 1),
	Key: lipgloss.NewStyle().
		Width(keyWidth).
		Align(lipgloss.Center).
		Foreground(lipgloss.Color(ColorText)),
	Function: lipgloss.NewStyle().
		Width(keyWidth).
		Align(lipgloss.Center).
		Foreground(lipgloss.Color(ColorAccent)),
	Clear: lipgloss.NewStyle().
		Width(keyWidth).
		Align(lipgloss.Center).
		Foreground(lipgloss.Color(ColorDanger)),
	Equals: lipgloss.NewStyle().
		Width(keyWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(lipgloss.Color(ColorEquals)),
	Selected: lipgloss.NewStyle().
		Width(keyWidth).
		Align(lipgloss.Center).
		Bold(true).
		Reverse(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
}
