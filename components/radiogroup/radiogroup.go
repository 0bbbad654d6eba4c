// Package radiogroup coordinates a set of radios sharing a name: selecting
// one value unchecks every sibling. The single radio primitive stays
// uncoordinated on its own; this aggregate is the external coordinator.
package radiogroup

import (
	"github.com/sirupsen/logrus"

	"github.com/grovetools/headless/dom"
	"github.com/grovetools/headless/logic"
	"github.com/grovetools/headless/store"
)

// Part names for a11y and interaction lookups.
const (
	PartRoot  logic.Part = "root"
	PartRadio logic.Part = "radio"
)

// Semantic events.
const (
	EventSelect logic.EventName = "select"
)

// Entry is one radio in the group.
type Entry struct {
	Value    string
	Label    string
	Disabled bool
}

// State is the group snapshot. Value holds the selected entry's value, or
// the empty string when nothing is selected.
type State struct {
	Entries  []Entry
	Value    string
	Name     string
	Disabled bool
	Required bool
}

// Options configures a new radio group.
type Options struct {
	Entries  []Entry
	Value    string
	Name     string
	Disabled bool
	Required bool

	// OnChange fires when the selected value actually changes.
	OnChange func(value string)

	FocusController logic.FocusController
	Logger          logrus.FieldLogger
}

// StateStore wraps the generic store with group setters.
type StateStore struct {
	store *store.Store[State]
}

// NewState creates the group state store.
func NewState(opts Options) *StateStore {
	value := opts.Value
	if find(opts.Entries, value) == nil {
		value = ""
	}
	state := State{
		Entries:  opts.Entries,
		Value:    value,
		Name:     opts.Name,
		Disabled: opts.Disabled,
		Required: opts.Required,
	}
	return &StateStore{store: store.New(state)}
}

// Store exposes the underlying store for logic-layer binding.
func (s *StateStore) Store() *store.Store[State] {
	return s.store
}

// Get returns the current snapshot.
func (s *StateStore) Get() State {
	return s.store.Get()
}

// Subscribe registers a listener for full snapshots.
func (s *StateStore) Subscribe(fn func(State)) func() {
	return s.store.Subscribe(fn)
}

// Select picks the entry with the given value. No-op when the group or the
// entry is disabled, the value is unknown, or it is already selected.
func (s *StateStore) Select(value string) (changed bool) {
	s.store.Update(func(prev State) State {
		if prev.Disabled || prev.Value == value {
			return prev
		}
		entry := find(prev.Entries, value)
		if entry == nil || entry.Disabled {
			return prev
		}
		prev.Value = value
		changed = true
		return prev
	})
	return changed
}

// SetDisabled enables or disables the whole group.
func (s *StateStore) SetDisabled(disabled bool) {
	s.store.Update(func(prev State) State {
		prev.Disabled = disabled
		return prev
	})
}

// NewLogic builds the group behavior layer and binds it to state.
func NewLogic(state *StateStore, opts Options) *logic.Layer[State] {
	choose := func(ctx logic.Context, s State, value string) logic.Result {
		if !state.Select(value) {
			return logic.Unhandled()
		}
		ctx.Focus(value)
		if opts.OnChange != nil {
			opts.OnChange(value)
		}
		return logic.Handled(EventSelect)
	}

	builder := logic.NewBuilder[State]().
		WithFocusController(opts.FocusController).
		WithLogger(opts.Logger)

	builder.OnEvent(EventSelect, func(ctx logic.Context, s State, payload any) logic.Result {
		value, ok := payload.(string)
		if !ok {
			return logic.Unhandled()
		}
		return choose(ctx, s, value)
	})

	builder.WithA11y(PartRoot, func(s State) logic.Props {
		p := logic.Props{"role": "radiogroup"}
		p.SetState("aria-disabled", s.Disabled)
		p.SetState("aria-required", s.Required)
		return p
	})

	builder.WithItemA11y(PartRadio, func(s State, value string) logic.Props {
		entry := find(s.Entries, value)
		if entry == nil {
			return nil
		}
		selected := s.Value == value
		p := logic.Props{
			"role":         "radio",
			"name":         s.Name,
			"data-item-id": value,
		}
		p.SetFlag("aria-checked", selected)
		disabled := s.Disabled || entry.Disabled
		p.SetState("aria-disabled", disabled)
		// Roving tabindex: the selection, or the first enabled entry when
		// nothing is selected yet.
		focusable := selected || (s.Value == "" && firstEnabled(s.Entries) == value)
		if focusable && !disabled {
			p["tabIndex"] = 0
		} else {
			p["tabIndex"] = -1
		}
		return p
	})

	builder.WithInteraction(PartRadio, dom.OnClick, func(ctx logic.Context, s State, e *dom.Event, args ...string) logic.Result {
		if len(args) == 0 {
			return logic.Unhandled()
		}
		return choose(ctx, s, args[0])
	})

	builder.WithInteraction(PartRadio, dom.OnKeyDown, func(ctx logic.Context, s State, e *dom.Event, args ...string) logic.Result {
		if len(s.Entries) == 0 {
			return logic.Unhandled()
		}
		switch e.Key {
		case dom.KeySpace:
			if len(args) == 0 {
				return logic.Unhandled()
			}
			e.PreventDefault()
			return choose(ctx, s, args[0])
		case dom.KeyArrowDown, dom.KeyArrowRight:
			e.PreventDefault()
			return choose(ctx, s, wrapNext(s.Entries, s.Value))
		case dom.KeyArrowUp, dom.KeyArrowLeft:
			e.PreventDefault()
			return choose(ctx, s, wrapPrev(s.Entries, s.Value))
		}
		return logic.Unhandled()
	})

	layer := builder.Build()
	layer.Connect(state.Store())
	return layer
}

// New creates a fully wired radio group: state store plus initialized logic.
func New(opts Options) (*StateStore, *logic.Layer[State]) {
	state := NewState(opts)
	layer := NewLogic(state, opts)
	layer.Initialize()
	return state, layer
}

func find(entries []Entry, value string) *Entry {
	for i := range entries {
		if entries[i].Value == value {
			return &entries[i]
		}
	}
	return nil
}

func indexOf(entries []Entry, value string) int {
	for i := range entries {
		if entries[i].Value == value {
			return i
		}
	}
	return -1
}

func firstEnabled(entries []Entry) string {
	for _, e := range entries {
		if !e.Disabled {
			return e.Value
		}
	}
	return ""
}

// wrapNext finds the next enabled entry after the current value, wrapping.
func wrapNext(entries []Entry, value string) string {
	n := len(entries)
	start := indexOf(entries, value)
	for offset := 1; offset <= n; offset++ {
		e := entries[(start+offset+n)%n]
		if !e.Disabled {
			return e.Value
		}
	}
	return ""
}

// wrapPrev finds the previous enabled entry before the current value,
// wrapping.
func wrapPrev(entries []Entry, value string) string {
	n := len(entries)
	start := indexOf(entries, value)
	if start < 0 {
		start = 0
	}
	for offset := 1; offset <= n; offset++ {
		e := entries[((start-offset)%n+n)%n]
		if !e.Disabled {
			return e.Value
		}
	}
	return ""
}
