package accordion

import (
	"github.com/grovetools/headless/dom"
	"github.com/grovetools/headless/logic"
)

// Part names for a11y and interaction lookups.
const (
	PartRoot    logic.Part = "root"
	PartTrigger logic.Part = "trigger"
	PartPanel   logic.Part = "panel"
)

// Semantic events.
const (
	EventItemToggle logic.EventName = "itemToggle"
	EventNavigate   logic.EventName = "navigate"
)

// TogglePayload is the payload for EventItemToggle.
type TogglePayload struct {
	ItemID   string
	Expanded bool
}

// NewLogic builds the accordion behavior layer and binds it to state.
func NewLogic(state *StateStore, opts Options) *logic.Layer[State] {
	collapsible := opts.Collapsible == nil || *opts.Collapsible

	// toggle runs the full toggle protocol against the snapshot: guards,
	// the collapsible constraint, state mutation through setters, the
	// synchronous per-item callback and the deferred aggregate callback.
	toggle := func(ctx logic.Context, s State, itemID string, expand bool) logic.Result {
		if s.Disabled {
			return logic.Unhandled()
		}
		item := findItem(s.Items, itemID)
		if item == nil || item.Disabled {
			return logic.Unhandled()
		}
		if !expand && !collapsible && len(s.ExpandedItems) == 1 && isExpanded(s.ExpandedItems, itemID) {
			return logic.Unhandled()
		}

		var next []string
		var changed bool
		if expand {
			next, changed = state.ExpandItem(itemID)
		} else {
			next, changed = state.CollapseItem(itemID)
		}
		if !changed {
			return logic.Unhandled()
		}

		if opts.OnItemToggle != nil {
			opts.OnItemToggle(itemID, expand)
		}
		if opts.OnExpandedChange != nil {
			ctx.Defer(func() {
				opts.OnExpandedChange(next)
			})
		}
		return logic.Handled(EventItemToggle)
	}

	navigate := func(ctx logic.Context, s State, target string) logic.Result {
		if target == "" {
			return logic.Unhandled()
		}
		state.SetFocusedItem(target)
		ctx.Focus(target)
		return logic.Handled(EventNavigate)
	}

	builder := logic.NewBuilder[State]().
		WithFocusController(opts.FocusController).
		WithLogger(opts.Logger)

	builder.OnEvent(EventItemToggle, func(ctx logic.Context, s State, payload any) logic.Result {
		p, ok := payload.(TogglePayload)
		if !ok {
			if pp, okp := payload.(*TogglePayload); okp {
				p = *pp
			} else {
				return logic.Unhandled()
			}
		}
		return toggle(ctx, s, p.ItemID, p.Expanded)
	})

	builder.WithA11y(PartRoot, func(s State) logic.Props {
		p := logic.Props{"role": "region"}
		p.SetState("aria-disabled", s.Disabled)
		return p
	})

	builder.WithItemA11y(PartTrigger, func(s State, itemID string) logic.Props {
		item := findItem(s.Items, itemID)
		if item == nil {
			return nil
		}
		p := logic.Props{
			"role":          "button",
			"id":            "trigger-" + itemID,
			"aria-controls": "panel-" + itemID,
			"data-item-id":  itemID,
		}
		p.SetFlag("aria-expanded", isExpanded(s.ExpandedItems, itemID))
		disabled := s.Disabled || item.Disabled
		p.SetState("aria-disabled", disabled)
		if disabled {
			p["tabIndex"] = -1
		} else {
			p["tabIndex"] = 0
		}
		return p
	})

	builder.WithItemA11y(PartPanel, func(s State, itemID string) logic.Props {
		p := logic.Props{
			"role":            "region",
			"id":              "panel-" + itemID,
			"aria-labelledby": "trigger-" + itemID,
		}
		p.SetState("aria-hidden", !isExpanded(s.ExpandedItems, itemID))
		return p
	})

	builder.WithInteraction(PartTrigger, dom.OnClick, func(ctx logic.Context, s State, e *dom.Event, args ...string) logic.Result {
		if len(args) == 0 {
			return logic.Unhandled()
		}
		itemID := args[0]
		return toggle(ctx, s, itemID, !isExpanded(s.ExpandedItems, itemID))
	})

	builder.WithInteraction(PartTrigger, dom.OnKeyDown, func(ctx logic.Context, s State, e *dom.Event, args ...string) logic.Result {
		if len(args) == 0 {
			return logic.Unhandled()
		}
		itemID := args[0]

		switch e.Key {
		case dom.KeyEnter, dom.KeySpace:
			e.PreventDefault()
			return toggle(ctx, s, itemID, !isExpanded(s.ExpandedItems, itemID))
		case dom.KeyArrowDown:
			e.PreventDefault()
			return navigate(ctx, s, nextEnabled(s.Items, itemID))
		case dom.KeyArrowUp:
			e.PreventDefault()
			return navigate(ctx, s, prevEnabled(s.Items, itemID))
		case dom.KeyHome:
			e.PreventDefault()
			return navigate(ctx, s, firstEnabled(s.Items))
		case dom.KeyEnd:
			e.PreventDefault()
			return navigate(ctx, s, lastEnabled(s.Items))
		}
		return logic.Unhandled()
	})

	layer := builder.Build()
	layer.Connect(state.Store())
	return layer
}

// New creates a fully wired accordion: state store plus initialized logic.
func New(opts Options) (*StateStore, *logic.Layer[State]) {
	state := NewState(opts)
	layer := NewLogic(state, opts)
	layer.Initialize()
	return state, layer
}

// Focus movement stops at the ends rather than wrapping.

func nextEnabled(items []Item, fromID string) string {
	for i := indexOf(items, fromID) + 1; i < len(items); i++ {
		if i >= 0 && !items[i].Disabled {
			return items[i].ID
		}
	}
	return ""
}

func prevEnabled(items []Item, fromID string) string {
	for i := indexOf(items, fromID) - 1; i >= 0; i-- {
		if !items[i].Disabled {
			return items[i].ID
		}
	}
	return ""
}

func firstEnabled(items []Item) string {
	for _, item := range items {
		if !item.Disabled {
			return item.ID
		}
	}
	return ""
}

func lastEnabled(items []Item) string {
	for i := len(items) - 1; i >= 0; i-- {
		if !items[i].Disabled {
			return items[i].ID
		}
	}
	return ""
}

func indexOf(items []Item, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}
