// Package history provides a bounded undo/redo stack of reversible actions.
//
// An Action pairs a forward effect with its inverse; any mutation that can
// produce its own inverse closure participates in undo/redo without a shared
// command hierarchy. History is owned by the TUI event loop and is not safe
// for concurrent use.
package history

// DefaultCapacity is the undo depth used when New is given a non-positive
// capacity.
const DefaultCapacity = 100

// Action is a reversible unit of work. Apply performs the mutation, Invert
// reverses it. Both are captured at the moment the mutation is made; an
// Action is immutable once recorded.
type Action struct {
	Name   string
	Apply  func() error
	Invert func() error
}

// History holds the undo and redo stacks. The most recently applied action
// sits at the tail of past; the most recently undone action at the tail of
// future.
type History struct {
	past     []Action
	future   []Action
	capacity int
}

// New creates a History that keeps at most capacity undoable actions.
// Exceeding the capacity evicts the oldest entry.
func New(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &History{capacity: capacity}
}

// Record appends an already-applied action to the undo stack and clears the
// redo stack: recording starts a new branch of history, invalidating any
// previously undone path.
func (h *History) Record(a Action) {
	h.past = append(h.past, a)
	h.future = nil

	if len(h.past) > h.capacity {
		excess := len(h.past) - h.capacity
		h.past = append(h.past[:0:0], h.past[excess:]...)
	}
}

// Undo reverses the most recent action. It reports false when there is
// nothing to undo; that is not an error. If the action's inverse effect
// fails, the error is returned and the action stays moved to the redo stack:
// a failed undo is not retried.
func (h *History) Undo() (bool, error) {
	if len(h.past) == 0 {
		return false, nil
	}

	a := h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	h.future = append(h.future, a)

	if a.Invert != nil {
		if err := a.Invert(); err != nil {
			return true, err
		}
	}
	return true, nil
}

// Redo re-applies the most recently undone action. It reports false when
// there is nothing to redo. Effect failures propagate the same way as Undo.
func (h *History) Redo() (bool, error) {
	if len(h.future) == 0 {
		return false, nil
	}

	a := h.future[len(h.future)-1]
	h.future = h.future[:len(h.future)-1]
	h.past = append(h.past, a)

	if a.Apply != nil {
		if err := a.Apply(); err != nil {
			return true, err
		}
	}
	return true, nil
}

// CanUndo reports whether at least one action is available to undo.
func (h *History) CanUndo() bool {
	return len(h.past) > 0
}

// CanRedo reports whether at least one undone action is available to redo.
func (h *History) CanRedo() bool {
	return len(h.future) > 0
}

// Depth returns the current undo and redo stack sizes, for status display.
func (h *History) Depth() (undo, redo int) {
	return len(h.past), len(h.future)
}

// Capacity returns the maximum number of undoable actions kept.
func (h *History) Capacity() int {
	return h.capacity
}

// Clear discards all undo and redo state.
func (h *History) Clear() {
	h.past = nil
	h.future = nil
}
