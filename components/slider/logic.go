package slider

import (
	"math"

	"github.com/grovetools/headless/dom"
	"github.com/grovetools/headless/logic"
)

// Part names for a11y and interaction lookups. PartThumb serves single mode;
// PartThumbMin and PartThumbMax are the dedicated range-mode thumbs.
const (
	PartRoot     logic.Part = "root"
	PartTrack    logic.Part = "track"
	PartThumb    logic.Part = "thumb"
	PartThumbMin logic.Part = "thumbMin"
	PartThumbMax logic.Part = "thumbMax"
)

// Semantic events.
const (
	EventChange    logic.EventName = "change"
	EventDragStart logic.EventName = "dragStart"
	EventDragEnd   logic.EventName = "dragEnd"
)

// NewLogic builds the slider behavior layer and binds it to state.
func NewLogic(state *StateStore, opts Options) *logic.Layer[State] {
	write := func(s State, thumb int, v float64) logic.Result {
		if s.Disabled {
			return logic.Unhandled()
		}
		values, changed := state.SetThumbValue(thumb, v)
		if !changed {
			return logic.Unhandled()
		}
		if opts.OnChange != nil {
			opts.OnChange(values)
		}
		return logic.Handled(EventChange)
	}

	// handleKey implements the shared keyboard protocol for a thumb.
	handleKey := func(ctx logic.Context, s State, e *dom.Event, thumb int) logic.Result {
		if s.Disabled || thumb >= len(s.Values) {
			return logic.Unhandled()
		}
		cur := s.Values[thumb]
		span := s.Max - s.Min

		switch e.Key {
		case dom.KeyArrowLeft, dom.KeyArrowDown:
			e.PreventDefault()
			return write(s, thumb, cur-s.Step)
		case dom.KeyArrowRight, dom.KeyArrowUp:
			e.PreventDefault()
			return write(s, thumb, cur+s.Step)
		case dom.KeyPageDown:
			e.PreventDefault()
			return write(s, thumb, cur-span*s.PageFraction)
		case dom.KeyPageUp:
			e.PreventDefault()
			return write(s, thumb, cur+span*s.PageFraction)
		case dom.KeyHome:
			e.PreventDefault()
			return write(s, thumb, s.Min)
		case dom.KeyEnd:
			e.PreventDefault()
			return write(s, thumb, s.Max)
		}
		return logic.Unhandled()
	}

	// trackValue maps a pointer position on the track to a raw value,
	// accounting for orientation. Vertical tracks measure bottom-to-top.
	trackValue := func(s State, e *dom.Event) (float64, bool) {
		if e.CurrentTarget == nil {
			return 0, false
		}
		rect := e.CurrentTarget.Bounds()
		var pct float64
		if s.Orientation == Vertical {
			if rect.Height <= 0 {
				return 0, false
			}
			pct = (rect.Y + rect.Height - e.Y) / rect.Height
		} else {
			if rect.Width <= 0 {
				return 0, false
			}
			pct = (e.X - rect.X) / rect.Width
		}
		if pct < 0 {
			pct = 0
		}
		if pct > 1 {
			pct = 1
		}
		return s.Min + pct*(s.Max-s.Min), true
	}

	trackPress := func(ctx logic.Context, s State, e *dom.Event, args ...string) logic.Result {
		if s.Disabled {
			return logic.Unhandled()
		}
		v, ok := trackValue(s, e)
		if !ok {
			return logic.Unhandled()
		}
		thumb := 0
		if s.IsRange {
			// The click goes to whichever thumb is numerically closer.
			if diff(v, s.Values[ThumbUpper]) < diff(v, s.Values[ThumbLower]) {
				thumb = ThumbUpper
			}
		}
		return write(s, thumb, v)
	}

	thumbA11y := func(thumb int) logic.A11yFunc[State] {
		return func(s State) logic.Props {
			if thumb >= len(s.Values) {
				return nil
			}
			p := logic.Props{
				"role":             "slider",
				"aria-valuemin":    s.Min,
				"aria-valuemax":    s.Max,
				"aria-valuenow":    s.Values[thumb],
				"aria-orientation": s.Orientation,
			}
			p.SetState("aria-disabled", s.Disabled)
			if s.Disabled {
				p["tabIndex"] = -1
			} else {
				p["tabIndex"] = 0
			}
			return p
		}
	}

	thumbInteractions := func(builder *logic.Builder[State], part logic.Part, thumb int) {
		builder.WithInteraction(part, dom.OnKeyDown, func(ctx logic.Context, s State, e *dom.Event, args ...string) logic.Result {
			return handleKey(ctx, s, e, thumb)
		})
		builder.WithInteraction(part, dom.OnMouseDown, func(ctx logic.Context, s State, e *dom.Event, args ...string) logic.Result {
			if s.Disabled {
				return logic.Unhandled()
			}
			state.SetDragging(true)
			return logic.Handled(EventDragStart)
		})
		builder.WithInteraction(part, dom.OnFocus, func(ctx logic.Context, s State, e *dom.Event, args ...string) logic.Result {
			state.SetFocused(true)
			return logic.Unhandled()
		})
		builder.WithInteraction(part, dom.OnBlur, func(ctx logic.Context, s State, e *dom.Event, args ...string) logic.Result {
			state.SetFocused(false)
			return logic.Unhandled()
		})
	}

	builder := logic.NewBuilder[State]().
		WithFocusController(opts.FocusController).
		WithLogger(opts.Logger)

	builder.OnEvent(EventChange, func(ctx logic.Context, s State, payload any) logic.Result {
		switch v := payload.(type) {
		case float64:
			return write(s, 0, v)
		case int:
			return write(s, 0, float64(v))
		case []float64:
			if len(v) != len(s.Values) {
				return logic.Unhandled()
			}
			res := logic.Unhandled()
			for i, val := range v {
				if r := write(s, i, val); isHandled(r) {
					res = r
				}
			}
			return res
		}
		return logic.Unhandled()
	})

	builder.OnEvent(EventDragEnd, func(ctx logic.Context, s State, payload any) logic.Result {
		if !s.Dragging {
			return logic.Unhandled()
		}
		state.SetDragging(false)
		return logic.Handled(EventDragEnd)
	})

	builder.WithA11y(PartRoot, func(s State) logic.Props {
		p := logic.Props{
			"role":             "group",
			"aria-orientation": s.Orientation,
		}
		p.SetState("aria-disabled", s.Disabled)
		return p
	})

	builder.WithA11y(PartTrack, func(s State) logic.Props {
		return logic.Props{"data-orientation": s.Orientation}
	})

	builder.WithA11y(PartThumb, thumbA11y(0))
	builder.WithA11y(PartThumbMin, thumbA11y(ThumbLower))
	builder.WithA11y(PartThumbMax, thumbA11y(ThumbUpper))

	builder.WithInteraction(PartTrack, dom.OnClick, trackPress)
	builder.WithInteraction(PartTrack, dom.OnMouseDown, trackPress)

	thumbInteractions(builder, PartThumb, 0)
	thumbInteractions(builder, PartThumbMin, ThumbLower)
	thumbInteractions(builder, PartThumbMax, ThumbUpper)

	layer := builder.Build()
	layer.Connect(state.Store())
	return layer
}

// New creates a fully wired slider: state store plus initialized logic.
func New(opts Options) (*StateStore, *logic.Layer[State]) {
	state := NewState(opts)
	layer := NewLogic(state, opts)
	layer.Initialize()
	return state, layer
}

func diff(a, b float64) float64 {
	return math.Abs(a - b)
}

func isHandled(r logic.Result) bool {
	_, ok := r.Event()
	return ok
}
