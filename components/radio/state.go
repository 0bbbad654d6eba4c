// Package radio implements a single headless radio button. A radio checks
// on interaction and never unchecks itself; mutual exclusivity across a
// shared name is coordinated externally (see the radiogroup package).
package radio

import (
	"github.com/sirupsen/logrus"

	"github.com/grovetools/headless/store"
)

// State is the radio snapshot.
type State struct {
	Checked      bool
	Disabled     bool
	Focused      bool
	Required     bool
	Error        bool
	ErrorMessage string
	Value        string
	Name         string
}

// Options configures a new radio.
type Options struct {
	Checked  bool
	Disabled bool
	Required bool
	Value    string
	Name     string

	// OnChange fires when the radio becomes checked. It never fires for a
	// click on an already-checked radio.
	OnChange func(value string)

	Logger logrus.FieldLogger
}

// StateStore wraps the generic store with radio setters.
type StateStore struct {
	store *store.Store[State]
}

// NewState creates the radio state store.
func NewState(opts Options) *StateStore {
	state := State{
		Checked:  opts.Checked,
		Disabled: opts.Disabled,
		Required: opts.Required,
		Value:    opts.Value,
		Name:     opts.Name,
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

// Check marks the radio checked. No-op when disabled or already checked.
func (s *StateStore) Check() (changed bool) {
	s.store.Update(func(prev State) State {
		if prev.Disabled || prev.Checked {
			return prev
		}
		prev.Checked = true
		changed = true
		return prev
	})
	return changed
}

// SetChecked writes the checked flag directly. This is the external
// coordination path a group wrapper uses to uncheck siblings; user
// interaction goes through Check and can never uncheck.
func (s *StateStore) SetChecked(checked bool) {
	s.store.Update(func(prev State) State {
		prev.Checked = checked
		return prev
	})
}

// SetFocused records keyboard focus.
func (s *StateStore) SetFocused(focused bool) {
	s.store.Update(func(prev State) State {
		prev.Focused = focused
		return prev
	})
}

// SetDisabled enables or disables the radio.
func (s *StateStore) SetDisabled(disabled bool) {
	s.store.Update(func(prev State) State {
		prev.Disabled = disabled
		return prev
	})
}

// SetError records a validation state for consumers to render.
func (s *StateStore) SetError(message string) {
	s.store.Update(func(prev State) State {
		prev.Error = message != ""
		prev.ErrorMessage = message
		return prev
	})
}
