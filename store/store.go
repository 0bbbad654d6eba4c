// Package store provides the observable state container that every headless
// primitive is built on. A Store holds a single immutable snapshot value;
// mutations go through Set or Update, and every subscriber is notified
// synchronously with the complete new snapshot.
//
// Stores are owned by exactly one primitive instance and are not safe for
// concurrent use; callers that share a store across goroutines must
// serialize access themselves.
package store

// Store is a generic observable container for a component state snapshot.
type Store[S any] struct {
	state  S
	subs   []subscriber[S]
	nextID int
}

type subscriber[S any] struct {
	id int
	fn func(S)
}

// New creates a Store holding the given initial snapshot.
func New[S any](initial S) *Store[S] {
	return &Store[S]{state: initial}
}

// Get returns the current snapshot. Callers must not mutate the returned
// value, and must never call Get from inside a subscriber or a logic-layer
// handler: the dispatch machinery passes the current snapshot in as a
// parameter, and re-reading it mid-callback is how update cycles start.
func (s *Store[S]) Get() S {
	return s.state
}

// Set replaces the state wholesale and notifies all subscribers in
// subscription order with the new snapshot.
func (s *Store[S]) Set(next S) {
	s.state = next
	s.notify()
}

// Update applies fn to the previous snapshot to compute the next one. This is
// the only safe way to change a subset of fields: the updater receives the
// full previous state and must return a full next state.
func (s *Store[S]) Update(fn func(prev S) S) {
	s.Set(fn(s.state))
}

// Subscribe registers a listener invoked synchronously after every state
// change with the complete new snapshot. The returned function removes the
// listener and is safe to call more than once.
func (s *Store[S]) Subscribe(fn func(S)) func() {
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscriber[S]{id: id, fn: fn})

	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *Store[S]) notify() {
	snapshot := s.state
	// Copy so a listener unsubscribing mid-notify doesn't shift the slice
	// under us.
	subs := make([]subscriber[S], len(s.subs))
	copy(subs, s.subs)
	for _, sub := range subs {
		sub.fn(snapshot)
	}
}
