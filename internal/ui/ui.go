// Package ui centralizes terminal styling for command output.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	boldStyle    = lipgloss.NewStyle().Bold(true)
)

// RenderOK styles a success marker or message.
func RenderOK(s string) string { return successStyle.Render(s) }

// RenderWarn styles a warning marker or message.
func RenderWarn(s string) string { return warnStyle.Render(s) }

// RenderErr styles an error marker or message.
func RenderErr(s string) string { return errorStyle.Render(s) }

// Dim styles secondary text such as file paths.
func Dim(s string) string { return dimStyle.Render(s) }

// Bold styles emphasized text such as task titles.
func Bold(s string) string { return boldStyle.Render(s) }

// Checkbox returns the display glyph for a checklist item's state.
func Checkbox(done bool) string {
	if done {
		return RenderOK("✓")
	}
	return dimStyle.Render("○")
}
