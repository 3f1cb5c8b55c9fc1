// Package shortcut routes normalized key events to the correct handler:
// undo/redo first, then bulk-selection operations, respecting text-input
// focus. A single Dispatcher instance owns key interpretation for the whole
// program; panels never install their own bindings for these keys.
package shortcut

import "strings"

// Event is a canonical key combination. Key is the lowercase key name
// ("z", "a", "escape", "delete", "backspace"); Ctrl and Meta are folded into
// one primary modifier by PrimaryModifier, treating Ctrl and Cmd as
// equivalent. Shift is tracked separately.
type Event struct {
	Key   string
	Ctrl  bool
	Meta  bool
	Shift bool
}

// PrimaryModifier reports whether Ctrl or Meta is held.
func (e Event) PrimaryModifier() bool {
	return e.Ctrl || e.Meta
}

// String returns a display form like "ctrl+shift+z", for status and debugging.
func (e Event) String() string {
	var parts []string
	if e.Ctrl {
		parts = append(parts, "ctrl")
	}
	if e.Meta {
		parts = append(parts, "meta")
	}
	if e.Shift {
		parts = append(parts, "shift")
	}
	parts = append(parts, e.Key)
	return strings.Join(parts, "+")
}
