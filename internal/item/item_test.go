package item

import (
	"testing"
	"time"
)

func sample(ids ...string) []Item {
	items := make([]Item, len(ids))
	for i, id := range ids {
		items[i] = Item{ID: id, Title: "item " + id, AddedAt: time.Unix(int64(i), 0)}
	}
	return items
}

func ids(items []Item) []string { return IDs(items) }

func assertOrder(t *testing.T, c *Collection, want ...string) {
	t.Helper()
	got := ids(c.Items())
	if len(got) != len(want) {
		t.Fatalf("collection order = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("collection order = %v, want %v", got, want)
		}
	}
}

func TestSelection(t *testing.T) {
	c := NewCollection(sample("a", "b", "c"))

	c.Toggle("b")
	if !c.IsSelected("b") || c.SelectionCount() != 1 {
		t.Fatalf("after Toggle: selected(b)=%v count=%d", c.IsSelected("b"), c.SelectionCount())
	}

	c.Toggle("b")
	if c.IsSelected("b") {
		t.Fatal("Toggle twice left item selected")
	}

	c.SelectAll()
	if c.SelectionCount() != 3 {
		t.Fatalf("SelectAll count = %d, want 3", c.SelectionCount())
	}

	c.ClearSelection()
	if c.SelectionCount() != 0 {
		t.Fatalf("ClearSelection count = %d, want 0", c.SelectionCount())
	}
}

func TestSelected_PreservesOrder(t *testing.T) {
	c := NewCollection(sample("a", "b", "c", "d"))
	c.Toggle("d")
	c.Toggle("b")

	got := ids(c.Selected())
	if len(got) != 2 || got[0] != "b" || got[1] != "d" {
		t.Errorf("Selected() = %v, want [b d]", got)
	}
}

func TestRemoveSelected_Restore(t *testing.T) {
	c := NewCollection(sample("a", "b", "c", "d"))
	c.Toggle("b")
	c.Toggle("d")

	removed := c.RemoveSelected()
	if len(removed) != 2 {
		t.Fatalf("RemoveSelected removed %d items, want 2", len(removed))
	}
	assertOrder(t, c, "a", "c")
	if c.SelectionCount() != 0 {
		t.Errorf("selection not cleared after removal: count = %d", c.SelectionCount())
	}

	c.Restore(removed)
	assertOrder(t, c, "a", "b", "c", "d")
}

func TestRemoveSelected_Empty(t *testing.T) {
	c := NewCollection(sample("a"))
	if removed := c.RemoveSelected(); removed != nil {
		t.Errorf("RemoveSelected with no selection = %v, want nil", removed)
	}
	assertOrder(t, c, "a")
}

func TestRemove_ByID(t *testing.T) {
	c := NewCollection(sample("a", "b", "c"))
	c.Toggle("b")

	removed := c.Remove([]string{"b", "nope"})
	if len(removed) != 1 || removed[0].Item.ID != "b" || removed[0].Index != 1 {
		t.Fatalf("Remove = %+v, want one entry {1 b}", removed)
	}
	if c.IsSelected("b") {
		t.Error("removed item still selected")
	}
	assertOrder(t, c, "a", "c")
}

func TestRestore_AtEnds(t *testing.T) {
	c := NewCollection(sample("a", "b", "c"))
	c.Toggle("a")
	c.Toggle("c")

	removed := c.RemoveSelected()
	assertOrder(t, c, "b")

	c.Restore(removed)
	assertOrder(t, c, "a", "b", "c")
}

func TestRemoveRestore_RoundTripTwice(t *testing.T) {
	// Restore must be repeatable: remove, restore, remove again yields the
	// same placement data both times.
	c := NewCollection(sample("a", "b", "c"))
	c.Toggle("b")

	first := c.RemoveSelected()
	c.Restore(first)

	second := c.Remove([]string{"b"})
	if len(second) != 1 || second[0].Index != first[0].Index {
		t.Errorf("second removal = %+v, want index %d", second, first[0].Index)
	}
}
