package radio

import (
	"github.com/grovetools/headless/dom"
	"github.com/grovetools/headless/logic"
)

// Part names for a11y and interaction lookups.
const (
	PartRoot logic.Part = "root"
)

// Semantic events.
const (
	EventCheck logic.EventName = "check"
)

// NewLogic builds the radio behavior layer and binds it to state.
func NewLogic(state *StateStore, opts Options) *logic.Layer[State] {
	check := func(s State) logic.Result {
		if s.Disabled {
			return logic.Unhandled()
		}
		if !state.Check() {
			return logic.Unhandled()
		}
		if opts.OnChange != nil {
			opts.OnChange(s.Value)
		}
		return logic.Handled(EventCheck)
	}

	builder := logic.NewBuilder[State]().
		WithLogger(opts.Logger)

	builder.OnEvent(EventCheck, func(ctx logic.Context, s State, payload any) logic.Result {
		return check(s)
	})

	builder.WithA11y(PartRoot, func(s State) logic.Props {
		p := logic.Props{
			"role": "radio",
			"name": s.Name,
		}
		p.SetFlag("aria-checked", s.Checked)
		p.SetState("aria-disabled", s.Disabled)
		p.SetState("aria-required", s.Required)
		p.SetState("aria-invalid", s.Error)
		if s.Disabled {
			p["tabIndex"] = -1
		} else {
			p["tabIndex"] = 0
		}
		return p
	})

	builder.WithInteraction(PartRoot, dom.OnClick, func(ctx logic.Context, s State, e *dom.Event, args ...string) logic.Result {
		return check(s)
	})

	builder.WithInteraction(PartRoot, dom.OnKeyDown, func(ctx logic.Context, s State, e *dom.Event, args ...string) logic.Result {
		if e.Key != dom.KeySpace {
			return logic.Unhandled()
		}
		e.PreventDefault()
		return check(s)
	})

	builder.WithInteraction(PartRoot, dom.OnFocus, func(ctx logic.Context, s State, e *dom.Event, args ...string) logic.Result {
		state.SetFocused(true)
		return logic.Unhandled()
	})

	builder.WithInteraction(PartRoot, dom.OnBlur, func(ctx logic.Context, s State, e *dom.Event, args ...string) logic.Result {
		state.SetFocused(false)
		return logic.Unhandled()
	})

	layer := builder.Build()
	layer.Connect(state.Store())
	return layer
}

// New creates a fully wired radio: state store plus initialized logic.
func New(opts Options) (*StateStore, *logic.Layer[State]) {
	state := NewState(opts)
	layer := NewLogic(state, opts)
	layer.Initialize()
	return state, layer
}
