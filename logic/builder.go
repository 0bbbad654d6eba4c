// Package logic implements the behavior layer shared by every headless
// primitive: a fluent builder that accumulates semantic event handlers,
// accessibility-prop generators and host interaction handlers keyed by part
// name, and the immutable Layer it produces.
//
// The one discipline this package exists to enforce: handlers never read
// state from the store. The dispatch machinery captures a snapshot exactly
// once per dispatch and passes it in as a parameter. Naive implementations
// that re-fetch state inside a reactive callback recurse into their own
// notifications; the API here makes that mistake inexpressible.
package logic

import (
	"github.com/sirupsen/logrus"

	"github.com/grovetools/headless/dom"
	"github.com/grovetools/headless/store"
)

type (
	// EventHandler responds to a semantic event dispatched via HandleEvent.
	EventHandler[S any] func(ctx Context, state S, payload any) Result

	// A11yFunc derives rendering props for a single-instance part.
	A11yFunc[S any] func(state S) Props

	// ItemA11yFunc derives rendering props for a per-item part, keyed by
	// item id. The flat/keyed split replaces runtime shape sniffing: a part
	// is registered as one or the other, and A11y resolves accordingly.
	ItemA11yFunc[S any] func(state S, itemID string) Props

	// InteractionFunc responds to a raw host event on a part. Extra args
	// identify the item for multi-item parts; hosts supply them out-of-band
	// since the event alone doesn't carry the item id.
	InteractionFunc[S any] func(ctx Context, state S, event *dom.Event, args ...string) Result

	// Handler is a bound interaction handler as returned by Handlers.
	Handler func(event *dom.Event, args ...string) Result

	// InitFunc runs once at Initialize with the connected store; it may
	// subscribe internal listeners and return their cleanup.
	InitFunc[S any] func(st *store.Store[S]) func()
)

type a11yEntry[S any] struct {
	flat  A11yFunc[S]
	keyed ItemA11yFunc[S]
}

// Builder accumulates a primitive's behavior registrations. All maps become
// immutable once Build is called.
type Builder[S any] struct {
	events       map[EventName]EventHandler[S]
	a11y         map[Part]a11yEntry[S]
	interactions map[Part]map[string]InteractionFunc[S]
	inits        []InitFunc[S]
	focus        FocusController
	log          logrus.FieldLogger
}

// NewBuilder creates an empty Builder.
func NewBuilder[S any]() *Builder[S] {
	return &Builder[S]{
		events:       make(map[EventName]EventHandler[S]),
		a11y:         make(map[Part]a11yEntry[S]),
		interactions: make(map[Part]map[string]InteractionFunc[S]),
	}
}

// OnEvent registers the handler for a semantic event.
func (b *Builder[S]) OnEvent(name EventName, fn EventHandler[S]) *Builder[S] {
	b.events[name] = fn
	return b
}

// WithA11y registers a flat prop generator for part.
func (b *Builder[S]) WithA11y(part Part, fn A11yFunc[S]) *Builder[S] {
	b.a11y[part] = a11yEntry[S]{flat: fn}
	return b
}

// WithItemA11y registers a per-item prop generator for part.
func (b *Builder[S]) WithItemA11y(part Part, fn ItemA11yFunc[S]) *Builder[S] {
	b.a11y[part] = a11yEntry[S]{keyed: fn}
	return b
}

// WithInteraction registers a handler for a host event type on part. The
// event type uses DOM handler naming (dom.OnClick, dom.OnKeyDown, ...).
func (b *Builder[S]) WithInteraction(part Part, eventType string, fn InteractionFunc[S]) *Builder[S] {
	m, ok := b.interactions[part]
	if !ok {
		m = make(map[string]InteractionFunc[S])
		b.interactions[part] = m
	}
	m[eventType] = fn
	return b
}

// OnInitialize registers setup run when the layer is initialized.
func (b *Builder[S]) OnInitialize(fn InitFunc[S]) *Builder[S] {
	b.inits = append(b.inits, fn)
	return b
}

// WithFocusController injects the host's focus mechanism.
func (b *Builder[S]) WithFocusController(fc FocusController) *Builder[S] {
	b.focus = fc
	return b
}

// WithLogger enables dispatch tracing through the given logger.
func (b *Builder[S]) WithLogger(log logrus.FieldLogger) *Builder[S] {
	b.log = log
	return b
}

// Build produces the immutable Layer. The builder must not be reused after.
func (b *Builder[S]) Build() *Layer[S] {
	focus := b.focus
	if focus == nil {
		focus = NopFocus
	}
	return &Layer[S]{
		events:       b.events,
		a11y:         b.a11y,
		interactions: b.interactions,
		inits:        b.inits,
		focus:        focus,
		log:          b.log,
	}
}
