// Package tui hosts the primitives in Bubble Tea programs. Each model wraps
// a component's state store and logic layer, translates terminal keys into
// DOM-style key events through the keymap, and renders from state snapshots
// with the theme's styles.
package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// InitializeTUI prepares the terminal environment for TUI applications.
// It checks for environment variables that force color output
// (CLICOLOR_FORCE, COLORTERM) and sets the appropriate lipgloss color
// profile when present, so styling stays consistent in non-interactive or
// CI environments.
//
// Call this at the start of your TUI application's main function.
func InitializeTUI() {
	if os.Getenv("CLICOLOR_FORCE") == "1" || os.Getenv("COLORTERM") == "truecolor" {
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}
