package tui

// FocusTarget identifies which panel currently holds keyboard focus.
type FocusTarget int

const (
	FocusList    FocusTarget = iota // left panel: item list
	FocusPreview                    // right panel: item preview
	FocusFilter                     // top row: filter text input
)

// Next returns the next focus target in forward tab order.
func (f FocusTarget) Next() FocusTarget {
	return (f + 1) % 3
}

// Prev returns the previous focus target in reverse tab order.
func (f FocusTarget) Prev() FocusTarget {
	return (f + 2) % 3 // equivalent to (f - 1 + 3) % 3
}

// IsTextEntry reports whether this focus target is a text-entry element.
// The shortcut dispatcher's bulk tier is out of scope while one is focused,
// so Delete/Backspace/Esc/Ctrl+A reach the input instead.
func (f FocusTarget) IsTextEntry() bool {
	return f == FocusFilter
}

// String returns the human-readable name of the focus target.
func (f FocusTarget) String() string {
	switch f {
	case FocusList:
		return "list"
	case FocusPreview:
		return "preview"
	case FocusFilter:
		return "filter"
	default:
		return "unknown"
	}
}
