package shortcut

// LegendEntry names one operation and the key chord that triggers it.
type LegendEntry struct {
	Op   string
	Keys string
}

// Legend is the shortcut table shown on help surfaces (footer, the
// `curator shortcuts` command). It is a read-only description and mirrors
// the Dispatcher's resolution table; TestLegendMatchesResolution keeps the
// two in sync.
func Legend() []LegendEntry {
	return []LegendEntry{
		{Op: "undo", Keys: "Ctrl+Z"},
		{Op: "redo", Keys: "Ctrl+Y"},
		{Op: "select all", Keys: "Ctrl+A"},
		{Op: "clear selection", Keys: "Esc"},
		{Op: "delete", Keys: "Delete"},
		{Op: "export", Keys: "Ctrl+E"},
	}
}
