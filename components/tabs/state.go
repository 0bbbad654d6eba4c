// Package tabs implements the headless tabs primitive. Keyboard navigation
// wraps around both ends, unlike the accordion's bounded focus movement.
package tabs

import (
	"github.com/sirupsen/logrus"

	"github.com/grovetools/headless/logic"
	"github.com/grovetools/headless/store"
)

// Activation modes.
const (
	// ActivationAutomatic activates a tab as focus moves to it.
	ActivationAutomatic = "automatic"
	// ActivationManual moves focus only; Enter or Space activates.
	ActivationManual = "manual"
)

// Orientations.
const (
	Horizontal = "horizontal"
	Vertical   = "vertical"
)

// Tab is one selectable tab.
type Tab struct {
	ID       string
	Label    string
	Disabled bool
}

// State is the tabs snapshot. ActiveTab defaults to the first tab's id when
// unset and tabs are present.
type State struct {
	ActiveTab      string
	Tabs           []Tab
	Disabled       bool
	Orientation    string
	FocusedIndex   int
	ActivationMode string
}

// Options configures a new tabs instance.
type Options struct {
	Tabs           []Tab
	ActiveTab      string
	Disabled       bool
	Orientation    string // defaults to horizontal
	ActivationMode string // defaults to automatic

	// ID prefixes the generated tab/panel element ids, enabling the
	// aria-controls / aria-labelledby cross-references.
	ID string // defaults to "tabs"

	// OnChange fires when the active tab actually changes.
	OnChange func(tabID string)

	FocusController logic.FocusController
	Logger          logrus.FieldLogger
}

// StateStore wraps the generic store with tabs setters.
type StateStore struct {
	store *store.Store[State]
}

// NewState creates the tabs state store.
func NewState(opts Options) *StateStore {
	orientation := opts.Orientation
	if orientation != Vertical {
		orientation = Horizontal
	}
	mode := opts.ActivationMode
	if mode != ActivationManual {
		mode = ActivationAutomatic
	}

	active := opts.ActiveTab
	if findTab(opts.Tabs, active) == nil {
		active = ""
	}
	if active == "" && len(opts.Tabs) > 0 {
		active = opts.Tabs[0].ID
	}

	focused := indexOf(opts.Tabs, active)
	if focused < 0 {
		focused = 0
	}

	state := State{
		ActiveTab:      active,
		Tabs:           opts.Tabs,
		Disabled:       opts.Disabled,
		Orientation:    orientation,
		FocusedIndex:   focused,
		ActivationMode: mode,
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

// SetActiveTab activates the tab. No-op when the tabs or the tab are
// disabled, the id is unknown, or the tab is already active.
func (s *StateStore) SetActiveTab(id string) (active string, changed bool) {
	s.store.Update(func(prev State) State {
		active = prev.ActiveTab
		if prev.Disabled || prev.ActiveTab == id {
			return prev
		}
		tab := findTab(prev.Tabs, id)
		if tab == nil || tab.Disabled {
			return prev
		}
		prev.ActiveTab = id
		prev.FocusedIndex = indexOf(prev.Tabs, id)
		active = id
		changed = true
		return prev
	})
	return active, changed
}

// SetFocusedIndex records which tab holds keyboard focus.
func (s *StateStore) SetFocusedIndex(index int) {
	s.store.Update(func(prev State) State {
		if index < 0 || index >= len(prev.Tabs) {
			return prev
		}
		prev.FocusedIndex = index
		return prev
	})
}

// SetDisabled enables or disables the whole tab list.
func (s *StateStore) SetDisabled(disabled bool) {
	s.store.Update(func(prev State) State {
		prev.Disabled = disabled
		return prev
	})
}

func findTab(tabs []Tab, id string) *Tab {
	for i := range tabs {
		if tabs[i].ID == id {
			return &tabs[i]
		}
	}
	return nil
}

func indexOf(tabs []Tab, id string) int {
	for i := range tabs {
		if tabs[i].ID == id {
			return i
		}
	}
	return -1
}
