// Package menu implements the headless menu primitive: a dropdown with
// nested submenus, disabled-item skipping and timestamp-windowed type-ahead.
//
// Submenu navigation is modeled as a stack of item ids; CurrentItems walks
// the stack from the root list to the active nested list.
package menu

import (
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/grovetools/headless/logic"
	"github.com/grovetools/headless/store"
)

// DefaultTypeaheadWindow is the gap after which an accumulated type-ahead
// query resets.
const DefaultTypeaheadWindow = 500 * time.Millisecond

// Item is one menu entry; entries with nested Items open a submenu instead
// of selecting.
type Item struct {
	ID       string
	Label    string
	Disabled bool
	Items    []Item

	// OnSelect is the item-level callback, invoked before the global one.
	OnSelect func(item Item)
}

// State is the menu snapshot.
type State struct {
	Open         bool
	ActiveIndex  int
	Items        []Item
	SearchQuery  string
	SearchTime   time.Time
	Focused      bool
	SelectedID   string
	SubmenuStack []string
}

// CurrentItems resolves the item list at the tip of the submenu stack.
// A stale stack entry yields the deepest list that still resolves.
func (s State) CurrentItems() []Item {
	items := s.Items
	for _, id := range s.SubmenuStack {
		next := findItem(items, id)
		if next == nil || len(next.Items) == 0 {
			return items
		}
		items = next.Items
	}
	return items
}

// ActiveItem returns the item under the active index, if any.
func (s State) ActiveItem() *Item {
	items := s.CurrentItems()
	if s.ActiveIndex < 0 || s.ActiveIndex >= len(items) {
		return nil
	}
	return &items[s.ActiveIndex]
}

// Options configures a new menu.
type Options struct {
	Items []Item

	// CloseOnSelect controls whether selecting a leaf closes the menu.
	// Defaults to true.
	CloseOnSelect *bool

	// TypeaheadWindow is the keystroke gap that keeps an accumulated
	// search query alive. Defaults to DefaultTypeaheadWindow.
	TypeaheadWindow time.Duration

	// OnSelect is the global selection callback, invoked after any
	// item-level callback.
	OnSelect func(item Item)

	// OnOpenChange fires when the menu opens or closes.
	OnOpenChange func(open bool)

	// Now supplies timestamps for the type-ahead window. Defaults to
	// time.Now.
	Now func() time.Time

	FocusController logic.FocusController
	Logger          logrus.FieldLogger
}

// StateStore wraps the generic store with menu setters.
type StateStore struct {
	store *store.Store[State]
}

// NewState creates the menu state store.
func NewState(opts Options) *StateStore {
	state := State{
		Items:       opts.Items,
		ActiveIndex: -1,
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

// SetOpen opens or closes the menu. Closing clears the submenu stack, the
// active index and any accumulated search query.
func (s *StateStore) SetOpen(open bool) (changed bool) {
	s.store.Update(func(prev State) State {
		if prev.Open == open {
			return prev
		}
		prev.Open = open
		if !open {
			prev.SubmenuStack = nil
			prev.ActiveIndex = -1
			prev.SearchQuery = ""
		}
		changed = true
		return prev
	})
	return changed
}

// NavigateDown moves the active index to the next enabled item in the
// current list. Stops at the end; no-op when no enabled item follows.
func (s *StateStore) NavigateDown() (int, bool) {
	return s.navigate(func(items []Item, cur int) int {
		for i := cur + 1; i < len(items); i++ {
			if !items[i].Disabled {
				return i
			}
		}
		return -1
	})
}

// NavigateUp moves the active index to the previous enabled item.
func (s *StateStore) NavigateUp() (int, bool) {
	return s.navigate(func(items []Item, cur int) int {
		if cur < 0 {
			cur = len(items)
		}
		for i := cur - 1; i >= 0; i-- {
			if !items[i].Disabled {
				return i
			}
		}
		return -1
	})
}

// NavigateToFirst moves to the first enabled item of the current list.
func (s *StateStore) NavigateToFirst() (int, bool) {
	return s.navigate(func(items []Item, cur int) int {
		return firstEnabled(items)
	})
}

// NavigateToLast moves to the last enabled item of the current list.
func (s *StateStore) NavigateToLast() (int, bool) {
	return s.navigate(func(items []Item, cur int) int {
		return lastEnabled(items)
	})
}

// SetActiveIndex moves the active index directly; disabled targets are
// rejected.
func (s *StateStore) SetActiveIndex(index int) (changed bool) {
	s.store.Update(func(prev State) State {
		items := prev.CurrentItems()
		if index < 0 || index >= len(items) || items[index].Disabled || prev.ActiveIndex == index {
			return prev
		}
		prev.ActiveIndex = index
		changed = true
		return prev
	})
	return changed
}

// EnterSubmenu pushes the item onto the submenu stack and moves the active
// index to its first enabled child, whose id is returned for focusing.
// No-op unless the item is an enabled member of the current list with
// children.
func (s *StateStore) EnterSubmenu(id string) (focusID string, changed bool) {
	s.store.Update(func(prev State) State {
		items := prev.CurrentItems()
		item := findItem(items, id)
		if item == nil || item.Disabled || len(item.Items) == 0 {
			return prev
		}
		stack := append(append([]string{}, prev.SubmenuStack...), id)
		prev.SubmenuStack = stack
		prev.ActiveIndex = firstEnabled(item.Items)
		if prev.ActiveIndex >= 0 {
			focusID = item.Items[prev.ActiveIndex].ID
		}
		prev.SearchQuery = ""
		changed = true
		return prev
	})
	return focusID, changed
}

// ExitSubmenu pops the submenu stack, restoring the active index to the
// parent item that was entered and returning its id for focusing.
func (s *StateStore) ExitSubmenu() (focusID string, changed bool) {
	s.store.Update(func(prev State) State {
		if len(prev.SubmenuStack) == 0 {
			return prev
		}
		parentID := prev.SubmenuStack[len(prev.SubmenuStack)-1]
		prev.SubmenuStack = prev.SubmenuStack[:len(prev.SubmenuStack)-1]
		prev.ActiveIndex = indexOf(prev.CurrentItems(), parentID)
		focusID = parentID
		prev.SearchQuery = ""
		changed = true
		return prev
	})
	return focusID, changed
}

// SetSelected records the selected leaf item id.
func (s *StateStore) SetSelected(id string) {
	s.store.Update(func(prev State) State {
		prev.SelectedID = id
		return prev
	})
}

// SetFocused records whether the menu holds focus.
func (s *StateStore) SetFocused(focused bool) {
	s.store.Update(func(prev State) State {
		prev.Focused = focused
		return prev
	})
}

// TypeAhead feeds one typed character at the given instant. Within window of
// the previous keystroke the character extends the query; otherwise the
// query resets to it. A fresh single-character query scans forward from the
// item after the active index, wrapping once, so repeats cycle through
// same-letter items. An accumulated query checks the active item first:
// while it still prefix-matches the growing query, focus stays put.
func (s *StateStore) TypeAhead(ch string, now time.Time, window time.Duration) (index int, matched bool) {
	index = -1
	s.store.Update(func(prev State) State {
		query := ch
		accumulated := false
		if !prev.SearchTime.IsZero() && now.Sub(prev.SearchTime) <= window {
			query = prev.SearchQuery + ch
			accumulated = true
		}
		prev.SearchQuery = query
		prev.SearchTime = now

		items := prev.CurrentItems()
		n := len(items)
		start := 1
		if accumulated {
			start = 0
		}
		for offset := start; offset < start+n; offset++ {
			i := (prev.ActiveIndex + offset + n) % n
			if items[i].Disabled {
				continue
			}
			if strings.HasPrefix(strings.ToLower(items[i].Label), strings.ToLower(query)) {
				prev.ActiveIndex = i
				index = i
				matched = true
				break
			}
		}
		return prev
	})
	return index, matched
}

func (s *StateStore) navigate(pick func(items []Item, cur int) int) (index int, changed bool) {
	index = -1
	s.store.Update(func(prev State) State {
		items := prev.CurrentItems()
		next := pick(items, prev.ActiveIndex)
		if next < 0 || next == prev.ActiveIndex {
			index = prev.ActiveIndex
			return prev
		}
		prev.ActiveIndex = next
		index = next
		changed = true
		return prev
	})
	return index, changed
}

func findItem(items []Item, id string) *Item {
	for i := range items {
		if items[i].ID == id {
			return &items[i]
		}
	}
	return nil
}

func indexOf(items []Item, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

func firstEnabled(items []Item) int {
	for i := range items {
		if !items[i].Disabled {
			return i
		}
	}
	return -1
}

func lastEnabled(items []Item) int {
	for i := len(items) - 1; i >= 0; i-- {
		if !items[i].Disabled {
			return i
		}
	}
	return -1
}
