package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Times: cyan so the schedule scans vertically
	colorTime = color.New(color.FgCyan)

	// Overlaps and validation failures: bold red
	colorConflict = color.New(color.FgRed, color.Bold)

	// Reminders: yellow to make them pop
	colorReminder = color.New(color.FgYellow)

	// Success: green
	colorOK = color.New(color.FgGreen)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatTime formats a time span.
func formatTime(s string) string {
	return colorTime.Sprint(s)
}

// formatConflict formats overlap markers and errors.
func formatConflict(s string) string {
	return colorConflict.Sprint(s)
}

// formatReminder formats reminder messages.
func formatReminder(s string) string {
	return colorReminder.Sprint(s)
}

// formatOK formats success messages.
func formatOK(s string) string {
	return colorOK.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
