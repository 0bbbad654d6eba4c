package pagination

import (
	"strconv"

	"github.com/grovetools/headless/dom"
	"github.com/grovetools/headless/logic"
)

// Part names for a11y and interaction lookups.
const (
	PartRoot     logic.Part = "root"
	PartPage     logic.Part = "page"
	PartPrevious logic.Part = "previous"
	PartNext     logic.Part = "next"
)

// Semantic events.
const (
	EventNavigate   logic.EventName = "navigate"
	EventPageChange logic.EventName = "pageChange"
)

// Navigation directions for NavigatePayload.
const (
	DirectionFirst    = "first"
	DirectionLast     = "last"
	DirectionNext     = "next"
	DirectionPrevious = "previous"
)

// NavigatePayload is the payload for EventNavigate.
type NavigatePayload struct {
	Direction string
}

// NewLogic builds the pagination behavior layer and binds it to state.
func NewLogic(state *StateStore, opts Options) *logic.Layer[State] {
	goTo := func(s State, page int) logic.Result {
		if s.Disabled {
			return logic.Unhandled()
		}
		current, changed := state.SetCurrentPage(page)
		if !changed {
			return logic.Unhandled()
		}
		if opts.OnPageChange != nil {
			opts.OnPageChange(current)
		}
		return logic.Handled(EventPageChange)
	}

	navigate := func(s State, direction string) logic.Result {
		switch direction {
		case DirectionFirst:
			return goTo(s, 1)
		case DirectionLast:
			return goTo(s, s.TotalPages)
		case DirectionNext:
			return goTo(s, s.CurrentPage+1)
		case DirectionPrevious:
			return goTo(s, s.CurrentPage-1)
		}
		return logic.Unhandled()
	}

	builder := logic.NewBuilder[State]().
		WithLogger(opts.Logger)

	builder.OnEvent(EventNavigate, func(ctx logic.Context, s State, payload any) logic.Result {
		p, ok := payload.(NavigatePayload)
		if !ok {
			if pp, okp := payload.(*NavigatePayload); okp {
				p = *pp
			} else {
				return logic.Unhandled()
			}
		}
		return navigate(s, p.Direction)
	})

	builder.OnEvent(EventPageChange, func(ctx logic.Context, s State, payload any) logic.Result {
		page, ok := payload.(int)
		if !ok {
			return logic.Unhandled()
		}
		return goTo(s, page)
	})

	builder.WithA11y(PartRoot, func(s State) logic.Props {
		p := logic.Props{
			"role":       "navigation",
			"aria-label": "Pagination",
		}
		p.SetState("aria-disabled", s.Disabled)
		return p
	})

	builder.WithItemA11y(PartPage, func(s State, pageID string) logic.Props {
		page, err := strconv.Atoi(pageID)
		if err != nil {
			return nil
		}
		p := logic.Props{
			"aria-label": "Go to page " + pageID,
			"tabIndex":   0,
		}
		if page == s.CurrentPage {
			p["aria-current"] = "page"
		}
		p.SetState("aria-disabled", s.Disabled)
		return p
	})

	builder.WithA11y(PartPrevious, func(s State) logic.Props {
		p := logic.Props{"aria-label": "Go to previous page"}
		p.SetState("aria-disabled", s.Disabled || s.CurrentPage <= 1)
		return p
	})

	builder.WithA11y(PartNext, func(s State) logic.Props {
		p := logic.Props{"aria-label": "Go to next page"}
		p.SetState("aria-disabled", s.Disabled || s.CurrentPage >= s.TotalPages)
		return p
	})

	builder.WithInteraction(PartPage, dom.OnClick, func(ctx logic.Context, s State, e *dom.Event, args ...string) logic.Result {
		if len(args) == 0 {
			return logic.Unhandled()
		}
		page, err := strconv.Atoi(args[0])
		if err != nil {
			return logic.Unhandled()
		}
		return goTo(s, page)
	})

	builder.WithInteraction(PartPrevious, dom.OnClick, func(ctx logic.Context, s State, e *dom.Event, args ...string) logic.Result {
		return navigate(s, DirectionPrevious)
	})

	builder.WithInteraction(PartNext, dom.OnClick, func(ctx logic.Context, s State, e *dom.Event, args ...string) logic.Result {
		return navigate(s, DirectionNext)
	})

	builder.WithInteraction(PartRoot, dom.OnKeyDown, func(ctx logic.Context, s State, e *dom.Event, args ...string) logic.Result {
		switch e.Key {
		case dom.KeyArrowLeft:
			if s.CurrentPage <= 1 {
				return logic.Unhandled()
			}
			e.PreventDefault()
			return navigate(s, DirectionPrevious)
		case dom.KeyArrowRight:
			if s.CurrentPage >= s.TotalPages {
				return logic.Unhandled()
			}
			e.PreventDefault()
			return navigate(s, DirectionNext)
		case dom.KeyHome:
			e.PreventDefault()
			return navigate(s, DirectionFirst)
		case dom.KeyEnd:
			e.PreventDefault()
			return navigate(s, DirectionLast)
		}
		return logic.Unhandled()
	})

	layer := builder.Build()
	layer.Connect(state.Store())
	return layer
}

// New creates a fully wired pagination: state store plus initialized logic.
func New(opts Options) (*StateStore, *logic.Layer[State]) {
	state := NewState(opts)
	layer := NewLogic(state, opts)
	layer.Initialize()
	return state, layer
}
