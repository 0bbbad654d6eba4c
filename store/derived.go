package store

// Derived is a read-only projection of a Store computed by a selector.
type Derived[T any] struct {
	get       func() T
	subscribe func(func(T)) func()
}

// Derive builds a projection over s. Get recomputes lazily from the latest
// base snapshot; Subscribe notifies on every base-state change, whether or
// not the derived value actually differs.
func Derive[S, T any](s *Store[S], selector func(S) T) *Derived[T] {
	return &Derived[T]{
		get: func() T {
			return selector(s.state)
		},
		subscribe: func(fn func(T)) func() {
			return s.Subscribe(func(next S) {
				fn(selector(next))
			})
		},
	}
}

// Get returns the derived value computed from the current base snapshot.
func (d *Derived[T]) Get() T {
	return d.get()
}

// Subscribe registers a listener for derived values; returns an unsubscribe
// function.
func (d *Derived[T]) Subscribe(fn func(T)) func() {
	return d.subscribe(fn)
}
