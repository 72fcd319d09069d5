package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// Terminal styles shared by the demo drivers.
var (
	// Header styles section and demo titles
	Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")) // blue bold

	// StatusOK styles success indicators
	StatusOK = lipgloss.NewStyle().Foreground(lipgloss.Color("42")) // green

	// StatusWarn styles warning indicators
	StatusWarn = lipgloss.NewStyle().Foreground(lipgloss.Color("214")) // orange

	// StatusError styles error indicators
	StatusError = lipgloss.NewStyle().Foreground(lipgloss.Color("196")) // red

	// Muted styles secondary text such as token counts and durations
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("245")) // gray

	// Bold styles emphasized inline text
	Bold = lipgloss.NewStyle().Bold(true)
)

// Symbols for status indicators
const (
	SymbolOK    = "✓"
	SymbolWarn  = "⚠"
	SymbolError = "✗"
)

// RenderHeader renders a demo or section title.
func RenderHeader(title string) string {
	return Header.Render(title)
}

// RenderOK renders a success message with a green checkmark.
func RenderOK(msg string) string {
	return StatusOK.Render(SymbolOK) + " " + msg
}

// RenderWarn renders a warning message.
func RenderWarn(msg string) string {
	return StatusWarn.Render(SymbolWarn) + " " + msg
}

// RenderError renders an error message.
func RenderError(msg string) string {
	return StatusError.Render(SymbolError) + " " + msg
}

// RenderMuted renders secondary detail such as run statistics.
func RenderMuted(msg string) string {
	return Muted.Render(msg)
}
