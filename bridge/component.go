// Package bridge exposes wired primitives to an out-of-process renderer over
// a websocket. The renderer receives state snapshots and a11y props as JSON
// and sends back native-style input events, which the bridge decodes and
// feeds through the same dispatch path a local host would use. The bridge is
// an adapter around the logic layer; no primitive knows it exists.
package bridge

import (
	"github.com/grovetools/headless/dom"
	"github.com/grovetools/headless/logic"
	"github.com/grovetools/headless/store"
)

// Component is the type-erased surface the bridge needs from a wired
// primitive: a snapshot to serialize, props per part, event dispatch, and
// change notification.
type Component interface {
	// Snapshot returns the current state for serialization.
	Snapshot() any

	// Props returns the a11y props for a part. Keyed parts take the item
	// identifier as the single argument.
	Props(part string, args ...string) logic.Props

	// Dispatch routes a decoded host event to the part's bound handler.
	// The boolean reports whether any handler was registered for the pair.
	Dispatch(part, eventType string, event *dom.Event, args ...string) (logic.Result, bool)

	// Subscribe registers a change listener and returns its unsubscribe.
	Subscribe(fn func()) func()
}

// wrapped adapts a concrete store/layer pair to the Component surface.
type wrapped[S any] struct {
	store *store.Store[S]
	layer *logic.Layer[S]
}

// Wrap erases the state type of a wired primitive so the bridge can host
// primitives of different shapes in one registry.
func Wrap[S any](st *store.Store[S], layer *logic.Layer[S]) Component {
	return &wrapped[S]{store: st, layer: layer}
}

func (w *wrapped[S]) Snapshot() any {
	return w.store.Get()
}

func (w *wrapped[S]) Props(part string, args ...string) logic.Props {
	return w.layer.A11y(logic.Part(part), args...)
}

func (w *wrapped[S]) Dispatch(part, eventType string, event *dom.Event, args ...string) (logic.Result, bool) {
	handlers := w.layer.Handlers(logic.Part(part))
	if handlers == nil {
		return logic.Unhandled(), false
	}
	handler, ok := handlers[eventType]
	if !ok {
		return logic.Unhandled(), false
	}
	return handler(event, args...), true
}

func (w *wrapped[S]) Subscribe(fn func()) func() {
	return w.store.Subscribe(func(S) { fn() })
}
