// Package panels contains the individual view components composed by the
// root TUI model: item list, preview, header, and footer.
package panels

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.Curator/internal/item"
)

// ListRow pairs an item with its current selection state for rendering.
type ListRow struct {
	Item     item.Item
	Selected bool
}

// listEntry wraps a ListRow as a list.Item.
type listEntry struct {
	row ListRow
}

func (e listEntry) Title() string {
	mark := "  "
	if e.row.Selected {
		mark = "✓ "
	}
	return mark + e.row.Item.Title
}

func (e listEntry) Description() string {
	return strings.Join(e.row.Item.Tags, ", ")
}

func (e listEntry) FilterValue() string {
	return e.row.Item.Title
}

// listDelegate is a custom item delegate for compact single-line rows.
type listDelegate struct{}

func (d listDelegate) Height() int                             { return 1 }
func (d listDelegate) Spacing() int                            { return 0 }
func (d listDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d listDelegate) Render(w io.Writer, m list.Model, index int, li list.Item) {
	e, ok := li.(listEntry)
	if !ok {
		return
	}
	s := e.Title()
	if index == m.Index() {
		s = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")).Render("> " + s)
	} else {
		s = "  " + s
	}
	_, _ = fmt.Fprint(w, s)
}

// ListPanel displays the navigable, selectable item list.
type ListPanel struct {
	list   list.Model
	rows   []ListRow
	width  int
	height int
}

// NewListPanel creates a list panel over the given rows.
func NewListPanel(rows []ListRow, w, h int) ListPanel {
	l := list.New(toEntries(rows), listDelegate{}, w, h)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false) // filtering is the root model's filter input

	return ListPanel{list: l, rows: rows, width: w, height: h}
}

func toEntries(rows []ListRow) []list.Item {
	items := make([]list.Item, len(rows))
	for i, r := range rows {
		items[i] = listEntry{row: r}
	}
	return items
}

// SetRows replaces the visible rows, keeping the cursor on the same index
// where possible.
func (p ListPanel) SetRows(rows []ListRow) ListPanel {
	idx := p.list.Index()
	p.list.SetItems(toEntries(rows))
	p.rows = rows
	if idx >= len(rows) {
		idx = len(rows) - 1
	}
	if idx >= 0 {
		p.list.Select(idx)
	}
	return p
}

// CursorItem returns the item under the cursor, if any.
func (p ListPanel) CursorItem() (item.Item, bool) {
	if e, ok := p.list.SelectedItem().(listEntry); ok {
		return e.row.Item, true
	}
	return item.Item{}, false
}

// Len returns the number of visible rows.
func (p ListPanel) Len() int {
	return len(p.rows)
}

// SetSize resizes the panel.
func (p ListPanel) SetSize(w, h int) ListPanel {
	p.width = w
	p.height = h
	p.list.SetSize(w, h)
	return p
}

// Update handles navigation keys while the panel has focus.
func (p ListPanel) Update(msg tea.Msg) (ListPanel, tea.Cmd) {
	var cmd tea.Cmd
	p.list, cmd = p.list.Update(msg)
	return p, cmd
}

// View renders the panel.
func (p ListPanel) View() string {
	if len(p.rows) == 0 {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Render("(no items)")
	}
	return p.list.View()
}
