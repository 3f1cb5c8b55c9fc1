package panels

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.Curator/internal/shortcut"
)

var (
	footerStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	footerNoteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6BCB77"))
	footerErrStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
)

// FooterProps holds all data needed to render the footer bar.
type FooterProps struct {
	Focus    string // "list", "preview", "filter"
	Note     string // transient status from the last operation
	NoteErr  bool   // render the note as an error
	UndoRedo bool   // undo/redo tier enabled
	BulkOps  bool   // bulk-operations tier enabled
}

// RenderFooter renders the context-sensitive footer bar. Left side: the last
// operation's status. Right side: keybinding hints, built from the shortcut
// legend for the enabled tiers plus focus-local navigation keys.
func RenderFooter(props FooterProps, width int) string {
	left := props.Note

	hints := legendHints(props.UndoRedo, props.BulkOps)
	right := focusHints(props.Focus)
	if hints != "" {
		right = hints + "  " + right
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}

	noteStyle := footerNoteStyle
	if props.NoteErr {
		noteStyle = footerErrStyle
	}
	return footerStyle.Width(width).Render(
		noteStyle.Render(left) + strings.Repeat(" ", gap) + right,
	)
}

// legendHints compresses the published shortcut table into footer hints,
// omitting disabled tiers.
func legendHints(undoRedo, bulkOps bool) string {
	historyOps := map[string]bool{"undo": true, "redo": true}

	var parts []string
	for _, entry := range shortcut.Legend() {
		if historyOps[entry.Op] && !undoRedo {
			continue
		}
		if !historyOps[entry.Op] && !bulkOps {
			continue
		}
		parts = append(parts, strings.ToLower(entry.Keys)+":"+entry.Op)
	}
	return strings.Join(parts, "  ")
}

// focusHints returns the navigation hints for a given focus.
func focusHints(focus string) string {
	switch focus {
	case "list":
		return "j/k:move  space:mark  /:filter  tab:panel  q:quit"
	case "preview":
		return "j/k:scroll  tab:panel  q:quit"
	case "filter":
		return "enter:apply  esc:back"
	default:
		return "tab:panel  q:quit"
	}
}
