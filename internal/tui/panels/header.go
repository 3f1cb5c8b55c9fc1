package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HeaderProps holds all data needed to render the header bar.
type HeaderProps struct {
	CollectionName string
	Items          int
	Visible        int // items passing the current filter
	Selected       int
	UndoDepth      int
	RedoDepth      int
}

// RenderHeader renders the one-line header bar. Left side: collection
// identity and counts. Right side: undo/redo availability.
func RenderHeader(props HeaderProps, width int, accent lipgloss.Style) string {
	name := props.CollectionName
	if name == "" {
		name = "curator"
	}

	counts := fmt.Sprintf("%d items", props.Items)
	if props.Visible < props.Items {
		counts = fmt.Sprintf("%d/%d items", props.Visible, props.Items)
	}
	if props.Selected > 0 {
		counts += fmt.Sprintf("  %d selected", props.Selected)
	}
	left := fmt.Sprintf(" %s — %s", name, counts)

	right := fmt.Sprintf("undo:%d redo:%d ", props.UndoDepth, props.RedoDepth)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return accent.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
