package tui

import (
	"fmt"

	"github.com/LISSConsulting/LISSTech.Curator/internal/history"
	"github.com/LISSConsulting/LISSTech.Curator/internal/item"
	"github.com/LISSConsulting/LISSTech.Curator/internal/shortcut"
	"github.com/LISSConsulting/LISSTech.Curator/internal/store"
)

// session holds the long-lived interaction state shared across Model values:
// the collection, the undo/redo history, and the one shortcut dispatcher
// active for the program. Creating the session attaches the dispatcher
// exactly once; the bubbletea Update loop is its only caller, so none of
// this needs synchronization.
type session struct {
	coll *item.Collection
	hist *history.History
	disp *shortcut.Dispatcher

	exportPath string

	// inTextEntry mirrors the model's focus at dispatch time; the dispatcher
	// reads it through its focus-context query.
	inTextEntry bool

	// note is the transient status set by the most recent handler, consumed
	// by the footer.
	note    string
	noteErr bool
}

// exportFileFn is swapped out by tests to avoid touching the filesystem.
var exportFileFn = store.ExportFile

// newSession builds the collection, history, and dispatcher for one program
// run.
func newSession(items []item.Item, capacity int, opts shortcut.Options, exportPath string) *session {
	s := &session{
		coll:       item.NewCollection(items),
		hist:       history.New(capacity),
		exportPath: exportPath,
	}
	s.disp = shortcut.New(
		s.hist,
		shortcut.Handlers{
			SelectAll:      s.selectAll,
			ClearSelection: s.clearSelection,
			Delete:         s.deleteSelected,
			Export:         s.export,
		},
		func() bool { return s.inTextEntry },
		opts,
	)
	return s
}

// dispatch offers one normalized key event to the dispatcher. inTextEntry is
// the focus context at the moment the event arrived.
func (s *session) dispatch(ev shortcut.Event, inTextEntry bool) (bool, error) {
	s.inTextEntry = inTextEntry
	return s.disp.Dispatch(ev)
}

func (s *session) selectAll() {
	s.coll.SelectAll()
	s.setNote(fmt.Sprintf("selected %d items", s.coll.SelectionCount()))
}

func (s *session) clearSelection() {
	n := s.coll.SelectionCount()
	s.coll.ClearSelection()
	if n > 0 {
		s.setNote("selection cleared")
	}
}

// deleteSelected removes the selected items and records the removal as a
// reversible action: redo re-removes the same items by ID, undo restores
// them at their original positions.
func (s *session) deleteSelected() {
	removed := s.coll.RemoveSelected()
	if len(removed) == 0 {
		s.setNote("nothing selected")
		return
	}

	ids := make([]string, len(removed))
	for i, p := range removed {
		ids[i] = p.Item.ID
	}

	coll := s.coll
	s.hist.Record(history.Action{
		Name: fmt.Sprintf("delete %d items", len(removed)),
		Apply: func() error {
			coll.Remove(ids)
			return nil
		},
		Invert: func() error {
			coll.Restore(removed)
			return nil
		},
	})
	s.setNote(fmt.Sprintf("deleted %d items (ctrl+z to undo)", len(removed)))
}

// export writes the selected items (or the whole collection when nothing is
// selected) to the configured export path. The dispatcher does not wait on
// anything here; the write completes within the event turn.
func (s *session) export() {
	items := s.coll.Selected()
	if len(items) == 0 {
		items = s.coll.Items()
	}
	if err := exportFileFn(s.exportPath, items); err != nil {
		s.setError(fmt.Sprintf("export failed: %v", err))
		return
	}
	s.setNote(fmt.Sprintf("exported %d items to %s", len(items), s.exportPath))
}

func (s *session) setNote(text string) {
	s.note = text
	s.noteErr = false
}

func (s *session) setError(text string) {
	s.note = text
	s.noteErr = true
}
