// Package tui provides the bubbletea + lipgloss terminal UI for browsing and
// curating a collection: multi-select, undoable deletion, and export, with a
// single shortcut dispatcher interpreting key events for the whole program.
package tui

import "github.com/charmbracelet/lipgloss"

// defaultAccentColor is the default accent color (indigo).
const defaultAccentColor = "#7D56F4"

// Color palette shared across the TUI.
var (
	colorGray = lipgloss.Color("#888888")
)

// Styles that do not depend on the accent color. Accent-dependent styles
// live on Theme and are computed from the configured color at creation.
var (
	dimStyle = lipgloss.NewStyle().
		Foreground(colorGray)
)
