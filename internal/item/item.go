// Package item defines the curated item record and the in-memory collection
// the TUI browses. The collection tracks a selection set and exposes
// removal/restore as an invertible pair so deletions can participate in
// undo/redo.
package item

import (
	"sort"
	"time"
)

// Item is one curated entry in the collection.
type Item struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Body    string    `json:"body,omitempty"`
	Tags    []string  `json:"tags,omitempty"`
	AddedAt time.Time `json:"added_at"`
}

// Placed is an item paired with its position in the collection, captured at
// removal time so Restore can put it back exactly where it was.
type Placed struct {
	Index int
	Item  Item
}

// Collection is an ordered list of items plus a selection set. It is owned
// by the TUI event loop and is not safe for concurrent use.
type Collection struct {
	items    []Item
	selected map[string]bool
}

// NewCollection creates a collection over the given items.
func NewCollection(items []Item) *Collection {
	return &Collection{
		items:    items,
		selected: make(map[string]bool),
	}
}

// Items returns the items in order. The returned slice is shared; callers
// must not mutate it.
func (c *Collection) Items() []Item {
	return c.items
}

// Len returns the number of items.
func (c *Collection) Len() int {
	return len(c.items)
}

// SelectAll marks every item selected.
func (c *Collection) SelectAll() {
	for _, it := range c.items {
		c.selected[it.ID] = true
	}
}

// ClearSelection unmarks every item.
func (c *Collection) ClearSelection() {
	c.selected = make(map[string]bool)
}

// Toggle flips the selection state of the item with the given ID.
func (c *Collection) Toggle(id string) {
	if c.selected[id] {
		delete(c.selected, id)
	} else {
		c.selected[id] = true
	}
}

// IsSelected reports whether the item with the given ID is selected.
func (c *Collection) IsSelected(id string) bool {
	return c.selected[id]
}

// SelectionCount returns the number of selected items.
func (c *Collection) SelectionCount() int {
	return len(c.selected)
}

// Selected returns the selected items in collection order.
func (c *Collection) Selected() []Item {
	var out []Item
	for _, it := range c.items {
		if c.selected[it.ID] {
			out = append(out, it)
		}
	}
	return out
}

// RemoveSelected removes all selected items and clears the selection. The
// removed items are returned with their original indices; passing them to
// Restore reverses the removal exactly.
func (c *Collection) RemoveSelected() []Placed {
	if len(c.selected) == 0 {
		return nil
	}

	var removed []Placed
	kept := c.items[:0:0]
	for i, it := range c.items {
		if c.selected[it.ID] {
			removed = append(removed, Placed{Index: i, Item: it})
		} else {
			kept = append(kept, it)
		}
	}
	c.items = kept
	c.selected = make(map[string]bool)
	return removed
}

// Remove removes the items with the given IDs regardless of selection state,
// returning them with their original indices. Unknown IDs are ignored.
func (c *Collection) Remove(ids []string) []Placed {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}

	var removed []Placed
	kept := c.items[:0:0]
	for i, it := range c.items {
		if want[it.ID] {
			removed = append(removed, Placed{Index: i, Item: it})
			delete(c.selected, it.ID)
		} else {
			kept = append(kept, it)
		}
	}
	c.items = kept
	return removed
}

// Restore re-inserts previously removed items at their original indices.
// Entries are applied in ascending index order so each lands where it was
// before the removal.
func (c *Collection) Restore(removed []Placed) {
	ordered := append([]Placed(nil), removed...)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Index < ordered[j].Index })

	for _, p := range ordered {
		idx := p.Index
		if idx > len(c.items) {
			idx = len(c.items)
		}
		c.items = append(c.items, Item{})
		copy(c.items[idx+1:], c.items[idx:])
		c.items[idx] = p.Item
	}
}

// IDs returns the IDs of the given items, preserving order.
func IDs(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}
