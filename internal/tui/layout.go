package tui

// Rect represents a rectangular region of the terminal.
type Rect struct {
	X, Y, Width, Height int
}

// Layout holds the computed panel geometry for a given terminal size.
type Layout struct {
	Header, Footer Rect
	Filter         Rect
	List, Preview  Rect
	TooSmall       bool // true when terminal is below the minimum 80×24
}

// Calculate computes the panel layout for a terminal of the given dimensions.
// Returns a Layout with TooSmall=true if width < 80 or height < 24.
//
// Algorithm:
//   - Header: full width, 1 row at top
//   - Filter: full width, 1 row under the header
//   - Footer: full width, 1 row at bottom
//   - List: 40% of width, clamped to [30, 50], full body height (left)
//   - Preview: remaining width, full body height (right)
func Calculate(width, height int) Layout {
	if width < 80 || height < 24 {
		return Layout{TooSmall: true}
	}

	bodyH := height - 3 // subtract header + filter + footer rows

	listW := width * 40 / 100
	if listW < 30 {
		listW = 30
	}
	if listW > 50 {
		listW = 50
	}
	previewW := width - listW

	return Layout{
		Header:  Rect{X: 0, Y: 0, Width: width, Height: 1},
		Filter:  Rect{X: 0, Y: 1, Width: width, Height: 1},
		List:    Rect{X: 0, Y: 2, Width: listW, Height: bodyH},
		Preview: Rect{X: listW, Y: 2, Width: previewW, Height: bodyH},
		Footer:  Rect{X: 0, Y: height - 1, Width: width, Height: 1},
	}
}
