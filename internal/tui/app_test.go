package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/LISSConsulting/LISSTech.Curator/internal/shortcut"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := New(Params{
		CollectionName:  "test",
		Items:           testItems(),
		HistoryCapacity: 10,
		Keys:            shortcut.DefaultOptions(),
		ExportPath:      "export.jsonl",
	})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(Model)
}

func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func pressRune(t *testing.T, m Model, r rune) Model {
	t.Helper()
	return press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func TestUpdateCtrlASelectsAll(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlA})

	if got := m.sess.coll.SelectionCount(); got != 3 {
		t.Errorf("SelectionCount = %d, want 3", got)
	}
}

func TestUpdateEscClearsSelection(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlA})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if got := m.sess.coll.SelectionCount(); got != 0 {
		t.Errorf("SelectionCount after esc = %d, want 0", got)
	}
}

func TestUpdateDeleteUndoRedoRoundTrip(t *testing.T) {
	m := newTestModel(t)

	// Mark the item under the cursor, delete it, then ride the history.
	m = pressRune(t, m, ' ')
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDelete})
	if got := m.sess.coll.Len(); got != 2 {
		t.Fatalf("after delete: %d items, want 2", got)
	}
	if got := m.listPanel.Len(); got != 2 {
		t.Fatalf("after delete: list shows %d rows, want 2", got)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlZ})
	if got := m.sess.coll.Len(); got != 3 {
		t.Fatalf("after undo: %d items, want 3", got)
	}
	if m.sess.coll.Items()[0].ID != "a" {
		t.Error("undo must restore the item at its original position")
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	if got := m.sess.coll.Len(); got != 2 {
		t.Errorf("after redo: %d items, want 2", got)
	}
}

func TestUpdateUndoKeyConsumedWhenHistoryEmpty(t *testing.T) {
	m := newTestModel(t)
	before := m.sess.coll.Len()

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlZ})
	if got := m.sess.coll.Len(); got != before {
		t.Errorf("empty undo changed the collection: %d items", got)
	}
	if undo, redo := m.sess.hist.Depth(); undo != 0 || redo != 0 {
		t.Errorf("history depth = %d/%d, want 0/0", undo, redo)
	}
}

func TestUpdateFilterFocusSuppressesBulkKeys(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlA})
	m = pressRune(t, m, '/')
	if m.focus != FocusFilter {
		t.Fatalf("focus = %v, want filter", m.focus)
	}

	// Delete reaches the text input, not the collection.
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDelete})
	if got := m.sess.coll.Len(); got != 3 {
		t.Errorf("delete in filter focus removed items: %d left", got)
	}

	// Esc falls through the dispatcher and leaves the input; the selection
	// survives because the clear-selection binding was out of scope.
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.focus != FocusList {
		t.Errorf("focus after esc = %v, want list", m.focus)
	}
	if got := m.sess.coll.SelectionCount(); got != 3 {
		t.Errorf("selection after esc in filter = %d, want 3", got)
	}
}

func TestUpdateUndoStaysActiveInFilterFocus(t *testing.T) {
	m := newTestModel(t)
	m = pressRune(t, m, ' ')
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDelete})
	m = pressRune(t, m, '/')

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlZ})
	if got := m.sess.coll.Len(); got != 3 {
		t.Errorf("ctrl+z in filter focus did not undo: %d items", got)
	}
}

func TestUpdateFilterNarrowsList(t *testing.T) {
	m := newTestModel(t)
	m = pressRune(t, m, '/')
	m = pressRune(t, m, 'b')
	m = pressRune(t, m, 'e')

	if got := m.listPanel.Len(); got != 1 {
		t.Fatalf("list shows %d rows for query %q, want 1", got, "be")
	}
	it, ok := m.listPanel.CursorItem()
	if !ok || it.ID != "b" {
		t.Errorf("cursor item = %+v, want Beta", it)
	}

	// Enter applies the query and returns focus to the list.
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.focus != FocusList {
		t.Errorf("focus after enter = %v, want list", m.focus)
	}
	if got := m.listPanel.Len(); got != 1 {
		t.Errorf("query dropped on enter: %d rows", got)
	}
}

func TestUpdateFilterMatchesTags(t *testing.T) {
	m := newTestModel(t)
	m = pressRune(t, m, '/')
	m = pressRune(t, m, 't')
	m = pressRune(t, m, 'u')
	m = pressRune(t, m, 'i')

	if got := m.listPanel.Len(); got != 2 {
		t.Errorf("list shows %d rows for tag query %q, want 2", got, "tui")
	}
}

func TestUpdateTabCyclesFocus(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != FocusPreview {
		t.Fatalf("focus = %v, want preview", m.focus)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != FocusFilter {
		t.Fatalf("focus = %v, want filter", m.focus)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != FocusList {
		t.Fatalf("focus = %v, want list", m.focus)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focus != FocusFilter {
		t.Errorf("focus after shift+tab = %v, want filter", m.focus)
	}
}

func TestUpdateSpaceTogglesCursorItem(t *testing.T) {
	m := newTestModel(t)

	m = pressRune(t, m, ' ')
	if !m.sess.coll.IsSelected("a") {
		t.Fatal("space did not mark the cursor item")
	}
	m = pressRune(t, m, ' ')
	if m.sess.coll.IsSelected("a") {
		t.Error("second space did not unmark the cursor item")
	}
}

func TestUpdateQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyCtrlC},
	} {
		m := newTestModel(t)
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Fatalf("%q produced no command, want quit", msg.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%q command = %T, want tea.QuitMsg", msg.String(), cmd())
		}
	}
}

func TestViewTooSmall(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	m = next.(Model)

	if !strings.Contains(m.View(), "too small") {
		t.Error("view for a 40x10 terminal must say the terminal is too small")
	}
}

func TestViewShowsCollectionState(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlA})

	view := m.View()
	if !strings.Contains(view, "test") {
		t.Error("view must include the collection name")
	}
	if !strings.Contains(view, "3 selected") {
		t.Error("view must include the selection count")
	}
	if !strings.Contains(view, "Alpha") {
		t.Error("view must list item titles")
	}
}

func TestItemsReflectsMutations(t *testing.T) {
	m := newTestModel(t)
	m = pressRune(t, m, ' ')
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDelete})

	if got := len(m.Items()); got != 2 {
		t.Errorf("Items() returned %d, want 2 after delete", got)
	}
}
