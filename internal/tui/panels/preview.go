package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.Curator/internal/item"
)

var (
	previewTitleStyle = lipgloss.NewStyle().Bold(true)
	previewMetaStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

// PreviewPanel renders the item under the list cursor: title, metadata, and
// a scrollable body.
type PreviewPanel struct {
	item   *item.Item
	offset int
	width  int
	height int
}

// NewPreviewPanel creates an empty preview panel.
func NewPreviewPanel(w, h int) PreviewPanel {
	return PreviewPanel{width: w, height: h}
}

// ShowItem displays it and resets the scroll position. Passing nil clears
// the panel.
func (p PreviewPanel) ShowItem(it *item.Item) PreviewPanel {
	p.item = it
	p.offset = 0
	return p
}

// SetSize resizes the panel.
func (p PreviewPanel) SetSize(w, h int) PreviewPanel {
	p.width = w
	p.height = h
	return p
}

// ScrollDown moves the body viewport down by n lines, clamped to content.
func (p PreviewPanel) ScrollDown(n int) PreviewPanel {
	max := len(p.bodyLines()) - p.bodyHeight()
	if max < 0 {
		max = 0
	}
	p.offset += n
	if p.offset > max {
		p.offset = max
	}
	return p
}

// ScrollUp moves the body viewport up by n lines.
func (p PreviewPanel) ScrollUp(n int) PreviewPanel {
	p.offset -= n
	if p.offset < 0 {
		p.offset = 0
	}
	return p
}

// bodyHeight is the rows available for the body under the two header lines.
func (p PreviewPanel) bodyHeight() int {
	h := p.height - 3
	if h < 1 {
		h = 1
	}
	return h
}

// bodyLines wraps the item body to the panel width.
func (p PreviewPanel) bodyLines() []string {
	if p.item == nil || p.item.Body == "" {
		return nil
	}
	wrapped := lipgloss.NewStyle().Width(p.width).Render(p.item.Body)
	return strings.Split(wrapped, "\n")
}

// View renders the panel.
func (p PreviewPanel) View() string {
	if p.item == nil {
		return previewMetaStyle.Render("(nothing to preview)")
	}

	meta := p.item.AddedAt.Format("2006-01-02")
	if len(p.item.Tags) > 0 {
		meta += "  " + strings.Join(p.item.Tags, ", ")
	}

	lines := []string{
		previewTitleStyle.Render(truncate(p.item.Title, p.width)),
		previewMetaStyle.Render(truncate(meta, p.width)),
		"",
	}

	body := p.bodyLines()
	end := p.offset + p.bodyHeight()
	if end > len(body) {
		end = len(body)
	}
	if p.offset < len(body) {
		lines = append(lines, body[p.offset:end]...)
	}

	return strings.Join(lines, "\n")
}

// truncate shortens s to at most width runes, appending an ellipsis.
func truncate(s string, width int) string {
	if width < 2 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return fmt.Sprintf("%s…", string(runes[:width-1]))
}
