// Package pagination implements the headless pagination primitive. The one
// invariant: 1 <= CurrentPage <= TotalPages, enforced by every setter.
package pagination

import (
	"github.com/sirupsen/logrus"

	"github.com/grovetools/headless/store"
)

// State is the pagination snapshot.
type State struct {
	CurrentPage  int
	TotalItems   int
	ItemsPerPage int
	TotalPages   int
	SiblingCount int
	Disabled     bool
}

// Options configures a new pagination instance.
type Options struct {
	CurrentPage  int
	TotalItems   int
	ItemsPerPage int // defaults to 10
	SiblingCount int // defaults to 1
	Disabled     bool

	// OnPageChange fires when the current page actually changes.
	OnPageChange func(page int)

	Logger logrus.FieldLogger
}

// StateStore wraps the generic store with pagination setters.
type StateStore struct {
	store *store.Store[State]
}

// NewState creates the pagination state store with clamped initial values.
func NewState(opts Options) *StateStore {
	perPage := opts.ItemsPerPage
	if perPage <= 0 {
		perPage = 10
	}
	siblings := opts.SiblingCount
	if siblings < 0 {
		siblings = 0
	}
	if opts.SiblingCount == 0 {
		siblings = 1
	}
	total := totalPages(opts.TotalItems, perPage)

	state := State{
		CurrentPage:  clamp(opts.CurrentPage, 1, total),
		TotalItems:   maxInt(opts.TotalItems, 0),
		ItemsPerPage: perPage,
		TotalPages:   total,
		SiblingCount: siblings,
		Disabled:     opts.Disabled,
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

// SetCurrentPage moves to page, clamped to [1, TotalPages]. Returns the page
// landed on and whether it changed.
func (s *StateStore) SetCurrentPage(page int) (current int, changed bool) {
	s.store.Update(func(prev State) State {
		current = prev.CurrentPage
		if prev.Disabled {
			return prev
		}
		next := clamp(page, 1, prev.TotalPages)
		if next == prev.CurrentPage {
			return prev
		}
		prev.CurrentPage = next
		current = next
		changed = true
		return prev
	})
	return current, changed
}

// GoToPage is SetCurrentPage under its external-contract name.
func (s *StateStore) GoToPage(page int) (int, bool) {
	return s.SetCurrentPage(page)
}

// SetTotalItems recomputes TotalPages and re-clamps the current page.
func (s *StateStore) SetTotalItems(total int) {
	s.store.Update(func(prev State) State {
		prev.TotalItems = maxInt(total, 0)
		prev.TotalPages = totalPages(prev.TotalItems, prev.ItemsPerPage)
		prev.CurrentPage = clamp(prev.CurrentPage, 1, prev.TotalPages)
		return prev
	})
}

// SetItemsPerPage recomputes TotalPages and re-clamps the current page.
// Non-positive values are ignored.
func (s *StateStore) SetItemsPerPage(perPage int) {
	if perPage <= 0 {
		return
	}
	s.store.Update(func(prev State) State {
		prev.ItemsPerPage = perPage
		prev.TotalPages = totalPages(prev.TotalItems, perPage)
		prev.CurrentPage = clamp(prev.CurrentPage, 1, prev.TotalPages)
		return prev
	})
}

// SetDisabled enables or disables the pagination.
func (s *StateStore) SetDisabled(disabled bool) {
	s.store.Update(func(prev State) State {
		prev.Disabled = disabled
		return prev
	})
}

func totalPages(totalItems, perPage int) int {
	if totalItems <= 0 {
		return 1
	}
	pages := (totalItems + perPage - 1) / perPage
	if pages < 1 {
		return 1
	}
	return pages
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
