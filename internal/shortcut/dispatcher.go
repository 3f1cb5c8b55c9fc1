package shortcut

// Tier is the priority class of a binding. History bindings always outrank
// bulk bindings; within the table, registration order defines precedence
// (first registered wins).
type Tier int

const (
	// TierHistory covers undo/redo. Always in scope, regardless of focus.
	TierHistory Tier = iota
	// TierBulk covers select-all, clear-selection, delete, and export.
	// In scope only while the event target is not a text-entry element.
	TierBulk
)

// Historian is the slice of the history manager the dispatcher consumes.
type Historian interface {
	CanUndo() bool
	CanRedo() bool
	Undo() (bool, error)
	Redo() (bool, error)
}

// Handlers holds the optional bulk-operation callbacks. A nil handler is not
// an error: the matching event is still consumed, nothing executes.
type Handlers struct {
	SelectAll      func()
	ClearSelection func()
	Delete         func()
	Export         func()
}

// Options enables or disables whole binding tiers. Disabling one tier never
// affects the other.
type Options struct {
	UndoRedo       bool
	BulkOperations bool
}

// DefaultOptions enables both tiers.
func DefaultOptions() Options {
	return Options{UndoRedo: true, BulkOperations: true}
}

// binding is one row of the resolution table: a key-combination predicate
// plus the effect to run when it matches. Rows are evaluated in order and
// the first match consumes the event.
type binding struct {
	tier  Tier
	match func(Event) bool
	fire  func() error
}

// Dispatcher resolves key events against its binding table. Exactly one
// Dispatcher is active per program; the TUI offers every key event to it
// before delegating to focused components.
type Dispatcher struct {
	hist             Historian
	handlers         Handlers
	opts             Options
	textEntryFocused func() bool
	bindings         []binding
}

// New creates a Dispatcher. textEntryFocused reports whether the current
// focus target is a text-entry element; nil means "never", keeping bulk
// bindings always in scope.
func New(hist Historian, handlers Handlers, textEntryFocused func() bool, opts Options) *Dispatcher {
	d := &Dispatcher{hist: hist, textEntryFocused: textEntryFocused}
	d.Rebind(handlers, opts)
	return d
}

// Rebind replaces the handler set and options, rebuilding the binding table.
// Calling it repeatedly is idempotent: there is one table, never duplicate
// bindings for the same combination.
func (d *Dispatcher) Rebind(handlers Handlers, opts Options) {
	d.handlers = handlers
	d.opts = opts
	d.bindings = d.buildTable()
}

// Options returns the currently active tier options.
func (d *Dispatcher) Options() Options {
	return d.opts
}

// buildTable assembles the resolution table in strict priority order:
// history tier first, then the bulk tier. The combinations are mutually
// exclusive by construction, so no two rows can match the same event.
func (d *Dispatcher) buildTable() []binding {
	var rows []binding

	if d.opts.UndoRedo {
		rows = append(rows,
			binding{
				tier:  TierHistory,
				match: func(e Event) bool { return e.PrimaryModifier() && e.Key == "z" && !e.Shift },
				fire: func() error {
					_, err := d.hist.Undo()
					return err
				},
			},
			binding{
				tier: TierHistory,
				match: func(e Event) bool {
					return e.PrimaryModifier() && (e.Key == "y" || (e.Key == "z" && e.Shift))
				},
				fire: func() error {
					_, err := d.hist.Redo()
					return err
				},
			},
		)
	}

	if d.opts.BulkOperations {
		rows = append(rows,
			binding{
				tier:  TierBulk,
				match: func(e Event) bool { return e.PrimaryModifier() && e.Key == "a" },
				fire:  invoke(d.handlers.SelectAll),
			},
			binding{
				tier:  TierBulk,
				match: func(e Event) bool { return e.Key == "escape" },
				fire:  invoke(d.handlers.ClearSelection),
			},
			binding{
				tier:  TierBulk,
				match: func(e Event) bool { return e.Key == "delete" || e.Key == "backspace" },
				fire:  invoke(d.handlers.Delete),
			},
			binding{
				tier:  TierBulk,
				match: func(e Event) bool { return e.PrimaryModifier() && e.Key == "e" },
				fire:  invoke(d.handlers.Export),
			},
		)
	}

	return rows
}

// invoke wraps an optional handler slot: absent handlers are a configuration
// gap, not a fault, so the event is consumed and nothing runs.
func invoke(h func()) func() error {
	return func() error {
		if h != nil {
			h()
		}
		return nil
	}
}

// Dispatch resolves a single key event. It reports whether the event was
// consumed; a consumed event must not be forwarded to focused components.
// A matching history binding consumes the event even when the stack is empty,
// so the key never falls through to a component's own undo. The bulk tier is
// skipped entirely while a text-entry element is focused, leaving those keys
// to the focused input. An action-effect failure from undo/redo is returned
// for the caller to report; the event still counts as consumed.
func (d *Dispatcher) Dispatch(ev Event) (bool, error) {
	for _, b := range d.bindings {
		if b.tier == TierBulk && d.inTextEntry() {
			// Tiers are ordered, so every remaining row is bulk.
			return false, nil
		}
		if b.match(ev) {
			return true, b.fire()
		}
	}
	return false, nil
}

func (d *Dispatcher) inTextEntry() bool {
	return d.textEntryFocused != nil && d.textEntryFocused()
}
