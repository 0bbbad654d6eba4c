// Package accordion implements the headless accordion primitive: a set of
// expandable items with single- or multi-expansion semantics.
package accordion

import (
	"github.com/sirupsen/logrus"

	"github.com/grovetools/headless/logic"
	"github.com/grovetools/headless/store"
)

// Item is one expandable section.
type Item struct {
	ID       string
	Title    string
	Content  string
	Disabled bool
	Expanded bool
}

// State is the accordion snapshot. ExpandedItems is authoritative; every
// item's Expanded flag is rewritten to match it on each mutation.
type State struct {
	Items         []Item
	ExpandedItems []string
	Multiple      bool
	FocusedItem   string
	Disabled      bool
}

// Options configures a new accordion.
type Options struct {
	Items         []Item
	ExpandedItems []string
	Multiple      bool
	Disabled      bool

	// Collapsible controls whether the only expanded item may be collapsed
	// by user interaction. Defaults to true.
	Collapsible *bool

	// OnItemToggle fires synchronously when one item toggles.
	OnItemToggle func(itemID string, expanded bool)

	// OnExpandedChange fires at the end of the dispatch that changed the
	// expanded set, after state has settled.
	OnExpandedChange func(expanded []string)

	FocusController logic.FocusController
	Logger          logrus.FieldLogger
}

// StateStore wraps the generic store with accordion setters and guards.
type StateStore struct {
	store *store.Store[State]
}

// NewState creates the accordion state store. Initial expansion is the union
// of Options.ExpandedItems and items flagged Expanded, reduced to at most one
// entry when Multiple is false.
func NewState(opts Options) *StateStore {
	expanded := make([]string, 0, len(opts.ExpandedItems))
	seen := make(map[string]bool)
	add := func(id string) {
		if !seen[id] && findItem(opts.Items, id) != nil {
			seen[id] = true
			expanded = append(expanded, id)
		}
	}
	for _, id := range opts.ExpandedItems {
		add(id)
	}
	for _, item := range opts.Items {
		if item.Expanded {
			add(item.ID)
		}
	}
	if !opts.Multiple && len(expanded) > 1 {
		expanded = expanded[:1]
	}

	state := State{
		Items:         opts.Items,
		Multiple:      opts.Multiple,
		Disabled:      opts.Disabled,
		ExpandedItems: expanded,
	}
	state = withExpanded(state, expanded)
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

// ToggleItem flips the item's expansion. No-op if the accordion or the item
// is disabled, or the id is unknown. Returns the resulting expanded set and
// whether anything changed.
func (s *StateStore) ToggleItem(id string) (expanded []string, changed bool) {
	if isExpanded(s.store.Get().ExpandedItems, id) {
		return s.CollapseItem(id)
	}
	return s.ExpandItem(id)
}

// ExpandItem expands the item. With Multiple false the new set replaces any
// previously expanded item; with Multiple true it appends.
func (s *StateStore) ExpandItem(id string) (expanded []string, changed bool) {
	s.store.Update(func(prev State) State {
		if !s.allowed(prev, id) || isExpanded(prev.ExpandedItems, id) {
			expanded = prev.ExpandedItems
			return prev
		}
		var next []string
		if prev.Multiple {
			next = append(append([]string{}, prev.ExpandedItems...), id)
		} else {
			next = []string{id}
		}
		expanded = next
		changed = true
		return withExpanded(prev, next)
	})
	return expanded, changed
}

// CollapseItem collapses the item, with the same guards as ExpandItem.
func (s *StateStore) CollapseItem(id string) (expanded []string, changed bool) {
	s.store.Update(func(prev State) State {
		if !s.allowed(prev, id) || !isExpanded(prev.ExpandedItems, id) {
			expanded = prev.ExpandedItems
			return prev
		}
		next := make([]string, 0, len(prev.ExpandedItems)-1)
		for _, cur := range prev.ExpandedItems {
			if cur != id {
				next = append(next, cur)
			}
		}
		expanded = next
		changed = true
		return withExpanded(prev, next)
	})
	return expanded, changed
}

// ExpandAll expands every enabled item. No-op unless Multiple is true.
func (s *StateStore) ExpandAll() (expanded []string, changed bool) {
	s.store.Update(func(prev State) State {
		if prev.Disabled || !prev.Multiple {
			expanded = prev.ExpandedItems
			return prev
		}
		next := make([]string, 0, len(prev.Items))
		for _, item := range prev.Items {
			if !item.Disabled {
				next = append(next, item.ID)
			}
		}
		if equalIDs(next, prev.ExpandedItems) {
			expanded = prev.ExpandedItems
			return prev
		}
		expanded = next
		changed = true
		return withExpanded(prev, next)
	})
	return expanded, changed
}

// CollapseAll collapses everything.
func (s *StateStore) CollapseAll() (expanded []string, changed bool) {
	s.store.Update(func(prev State) State {
		if prev.Disabled || len(prev.ExpandedItems) == 0 {
			expanded = prev.ExpandedItems
			return prev
		}
		expanded = []string{}
		changed = true
		return withExpanded(prev, nil)
	})
	return expanded, changed
}

// SetFocusedItem records which item holds keyboard focus.
func (s *StateStore) SetFocusedItem(id string) {
	s.store.Update(func(prev State) State {
		prev.FocusedItem = id
		return prev
	})
}

// SetDisabled enables or disables the whole accordion.
func (s *StateStore) SetDisabled(disabled bool) {
	s.store.Update(func(prev State) State {
		prev.Disabled = disabled
		return prev
	})
}

func (s *StateStore) allowed(state State, id string) bool {
	if state.Disabled {
		return false
	}
	item := findItem(state.Items, id)
	return item != nil && !item.Disabled
}

// withExpanded rewrites every item's Expanded flag to match the new set.
func withExpanded(state State, expanded []string) State {
	if expanded == nil {
		expanded = []string{}
	}
	members := make(map[string]bool, len(expanded))
	for _, id := range expanded {
		members[id] = true
	}
	items := make([]Item, len(state.Items))
	for i, item := range state.Items {
		item.Expanded = members[item.ID]
		items[i] = item
	}
	state.Items = items
	state.ExpandedItems = expanded
	return state
}

func findItem(items []Item, id string) *Item {
	for i := range items {
		if items[i].ID == id {
			return &items[i]
		}
	}
	return nil
}

func isExpanded(expanded []string, id string) bool {
	for _, cur := range expanded {
		if cur == id {
			return true
		}
	}
	return false
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
