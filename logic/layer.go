package logic

import (
	"github.com/sirupsen/logrus"

	"github.com/grovetools/headless/dom"
	"github.com/grovetools/headless/store"
)

// Layer is a stateless description of a primitive's behavior, bound to
// exactly one store via Connect. Unknown parts, unknown events and use
// before Connect are silent no-ops: invalid calls in a UI are usually stale
// closures in the host, not bugs worth crashing on.
type Layer[S any] struct {
	events       map[EventName]EventHandler[S]
	a11y         map[Part]a11yEntry[S]
	interactions map[Part]map[string]InteractionFunc[S]
	inits        []InitFunc[S]
	focus        FocusController
	log          logrus.FieldLogger

	store       *store.Store[S]
	cleanups    []func()
	initialized bool

	queue []func()
	depth int
}

// Connect binds the layer to its store. Must be called once before use.
func (l *Layer[S]) Connect(st *store.Store[S]) {
	l.store = st
}

// Initialize runs the registered setup hooks once. It is idempotent and
// returns the cleanup function; Cleanup may equivalently be called directly.
func (l *Layer[S]) Initialize() func() {
	if l.store != nil && !l.initialized {
		l.initialized = true
		for _, fn := range l.inits {
			if cleanup := fn(l.store); cleanup != nil {
				l.cleanups = append(l.cleanups, cleanup)
			}
		}
	}
	return l.Cleanup
}

// Cleanup tears down whatever Initialize set up. Safe to call repeatedly.
func (l *Layer[S]) Cleanup() {
	for _, fn := range l.cleanups {
		fn()
	}
	l.cleanups = nil
	l.initialized = false
}

// HandleEvent dispatches a semantic event to its registered handler with the
// current state snapshot and the payload. Hosts use it to forward semantic
// events; tests use it to drive behavior directly.
func (l *Layer[S]) HandleEvent(name EventName, payload any) Result {
	if l.store == nil {
		return Unhandled()
	}
	fn, ok := l.events[name]
	if !ok {
		l.trace("event", string(name), "no handler registered")
		return Unhandled()
	}
	return l.dispatch(func(ctx Context, state S) Result {
		return fn(ctx, state, payload)
	})
}

// A11y resolves the prop generator registered for part against the current
// state. Per-item parts take the item id as the first arg; a keyed part
// called without args, or an unregistered part, yields nil.
func (l *Layer[S]) A11y(part Part, args ...string) Props {
	if l.store == nil {
		return nil
	}
	entry, ok := l.a11y[part]
	if !ok {
		return nil
	}
	state := l.store.Get()
	if entry.keyed != nil {
		if len(args) == 0 {
			return nil
		}
		return entry.keyed(state, args[0])
	}
	return entry.flat(state)
}

// Handlers returns the bound interaction handlers for part, keyed by host
// event name (dom.OnClick, dom.OnKeyDown, ...). Each handler captures the
// state snapshot at invocation time and runs through the same dispatch path
// as HandleEvent.
func (l *Layer[S]) Handlers(part Part) map[string]Handler {
	fns, ok := l.interactions[part]
	if !ok {
		return nil
	}
	out := make(map[string]Handler, len(fns))
	for eventType, fn := range fns {
		fn := fn
		out[eventType] = func(event *dom.Event, args ...string) Result {
			if l.store == nil {
				return Unhandled()
			}
			return l.dispatch(func(ctx Context, state S) Result {
				return fn(ctx, state, event, args...)
			})
		}
	}
	return out
}

// dispatch captures the state snapshot exactly once, runs the handler with
// it, and flushes deferred tasks when the outermost dispatch unwinds. A task
// that dispatches again nests; its own deferrals join the same queue and run
// in FIFO order.
func (l *Layer[S]) dispatch(run func(Context, S) Result) Result {
	snapshot := l.store.Get()
	ctx := Context{
		enqueue: func(fn func()) { l.queue = append(l.queue, fn) },
		focus:   l.focus,
	}

	l.depth++
	result := run(ctx, snapshot)
	l.depth--

	if l.depth == 0 {
		for len(l.queue) > 0 {
			task := l.queue[0]
			l.queue = l.queue[1:]
			task()
		}
	}
	return result
}

func (l *Layer[S]) trace(kind, name, msg string) {
	if l.log != nil {
		l.log.WithField(kind, name).Debug(msg)
	}
}
