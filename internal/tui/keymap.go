package tui

import (
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/LISSConsulting/LISSTech.Curator/internal/shortcut"
)

// GlobalKeyBindings lists the keys the root model handles itself after the
// shortcut dispatcher has declined the event. The dispatcher always sees the
// event first, so none of these may collide with its combinations; if a
// future binding overlaps, the dispatcher wins by registration order.
var GlobalKeyBindings = []string{"q", "ctrl+c", "tab", "shift+tab", "/", "enter"}

// IsGlobalKey reports whether key is a global keybinding (handled by the
// root model rather than the focused panel).
func IsGlobalKey(key string) bool {
	for _, k := range GlobalKeyBindings {
		if k == key {
			return true
		}
	}
	return false
}

// normalizeKey maps a bubbletea key message to the dispatcher's canonical
// event: modifier names are split off the key string, Ctrl and Cmd both land
// on the primary-modifier flags, and an uppercase rune is folded to its
// lowercase key plus Shift (the terminal reports shift+z as "Z").
func normalizeKey(msg tea.KeyMsg) shortcut.Event {
	var ev shortcut.Event

	parts := strings.Split(msg.String(), "+")
	key := parts[len(parts)-1]
	for _, mod := range parts[:len(parts)-1] {
		switch mod {
		case "ctrl":
			ev.Ctrl = true
		case "cmd", "meta", "super":
			ev.Meta = true
		case "shift":
			ev.Shift = true
		}
	}

	if r := []rune(key); len(r) == 1 && unicode.IsUpper(r[0]) {
		ev.Shift = true
		key = string(unicode.ToLower(r[0]))
	}
	if key == "esc" {
		key = "escape"
	}

	ev.Key = key
	return ev
}
