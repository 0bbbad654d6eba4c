package tabs

import (
	"github.com/grovetools/headless/dom"
	"github.com/grovetools/headless/logic"
)

// Part names for a11y and interaction lookups.
const (
	PartRoot  logic.Part = "root"
	PartTab   logic.Part = "tab"
	PartPanel logic.Part = "panel"
)

// Semantic events.
const (
	EventTabChange logic.EventName = "tabChange"
	EventNavigate  logic.EventName = "navigate"
)

// NewLogic builds the tabs behavior layer and binds it to state.
func NewLogic(state *StateStore, opts Options) *logic.Layer[State] {
	rootID := opts.ID
	if rootID == "" {
		rootID = "tabs"
	}
	tabElemID := func(id string) string { return rootID + "-tab-" + id }
	panelElemID := func(id string) string { return rootID + "-panel-" + id }

	activate := func(s State, id string) logic.Result {
		if s.Disabled {
			return logic.Unhandled()
		}
		active, changed := state.SetActiveTab(id)
		if !changed {
			return logic.Unhandled()
		}
		if opts.OnChange != nil {
			opts.OnChange(active)
		}
		return logic.Handled(EventTabChange)
	}

	// moveFocus wraps around both ends and skips disabled tabs. In
	// automatic mode the focused tab also becomes active.
	moveFocus := func(ctx logic.Context, s State, target int) logic.Result {
		if s.Disabled || target < 0 || target >= len(s.Tabs) {
			return logic.Unhandled()
		}
		tab := s.Tabs[target]
		state.SetFocusedIndex(target)
		ctx.Focus(tab.ID)
		if s.ActivationMode == ActivationAutomatic {
			// No-op when focus lands back on the already-active tab.
			activate(s, tab.ID)
		}
		return logic.Handled(EventNavigate)
	}

	builder := logic.NewBuilder[State]().
		WithFocusController(opts.FocusController).
		WithLogger(opts.Logger)

	builder.OnEvent(EventTabChange, func(ctx logic.Context, s State, payload any) logic.Result {
		id, ok := payload.(string)
		if !ok {
			return logic.Unhandled()
		}
		return activate(s, id)
	})

	builder.WithA11y(PartRoot, func(s State) logic.Props {
		p := logic.Props{
			"role":             "tablist",
			"aria-orientation": s.Orientation,
		}
		p.SetState("aria-disabled", s.Disabled)
		return p
	})

	builder.WithItemA11y(PartTab, func(s State, tabID string) logic.Props {
		tab := findTab(s.Tabs, tabID)
		if tab == nil {
			return nil
		}
		selected := s.ActiveTab == tabID
		p := logic.Props{
			"role":          "tab",
			"id":            tabElemID(tabID),
			"aria-controls": panelElemID(tabID),
			"data-item-id":  tabID,
		}
		p.SetFlag("aria-selected", selected)
		disabled := s.Disabled || tab.Disabled
		p.SetState("aria-disabled", disabled)
		if selected && !disabled {
			p["tabIndex"] = 0
		} else {
			p["tabIndex"] = -1
		}
		return p
	})

	builder.WithItemA11y(PartPanel, func(s State, tabID string) logic.Props {
		p := logic.Props{
			"role":            "tabpanel",
			"id":              panelElemID(tabID),
			"aria-labelledby": tabElemID(tabID),
		}
		p.SetState("aria-hidden", s.ActiveTab != tabID)
		return p
	})

	builder.WithInteraction(PartTab, dom.OnClick, func(ctx logic.Context, s State, e *dom.Event, args ...string) logic.Result {
		if len(args) == 0 {
			return logic.Unhandled()
		}
		return activate(s, args[0])
	})

	builder.WithInteraction(PartTab, dom.OnKeyDown, func(ctx logic.Context, s State, e *dom.Event, args ...string) logic.Result {
		if len(s.Tabs) == 0 {
			return logic.Unhandled()
		}

		prevKey, nextKey := dom.KeyArrowLeft, dom.KeyArrowRight
		if s.Orientation == Vertical {
			prevKey, nextKey = dom.KeyArrowUp, dom.KeyArrowDown
		}

		switch e.Key {
		case nextKey:
			e.PreventDefault()
			return moveFocus(ctx, s, wrapNext(s.Tabs, s.FocusedIndex))
		case prevKey:
			e.PreventDefault()
			return moveFocus(ctx, s, wrapPrev(s.Tabs, s.FocusedIndex))
		case dom.KeyHome:
			e.PreventDefault()
			return moveFocus(ctx, s, firstEnabled(s.Tabs))
		case dom.KeyEnd:
			e.PreventDefault()
			return moveFocus(ctx, s, lastEnabled(s.Tabs))
		case dom.KeyEnter, dom.KeySpace:
			if s.ActivationMode != ActivationManual {
				return logic.Unhandled()
			}
			e.PreventDefault()
			if s.FocusedIndex < 0 || s.FocusedIndex >= len(s.Tabs) {
				return logic.Unhandled()
			}
			return activate(s, s.Tabs[s.FocusedIndex].ID)
		}
		return logic.Unhandled()
	})

	layer := builder.Build()
	layer.Connect(state.Store())
	return layer
}

// New creates a fully wired tabs instance: state store plus initialized logic.
func New(opts Options) (*StateStore, *logic.Layer[State]) {
	state := NewState(opts)
	layer := NewLogic(state, opts)
	layer.Initialize()
	return state, layer
}

// wrapNext finds the next enabled tab after index, wrapping past the end.
func wrapNext(tabs []Tab, index int) int {
	n := len(tabs)
	for offset := 1; offset <= n; offset++ {
		i := (index + offset) % n
		if !tabs[i].Disabled {
			return i
		}
	}
	return -1
}

// wrapPrev finds the previous enabled tab before index, wrapping past the
// start.
func wrapPrev(tabs []Tab, index int) int {
	n := len(tabs)
	for offset := 1; offset <= n; offset++ {
		i := ((index-offset)%n + n) % n
		if !tabs[i].Disabled {
			return i
		}
	}
	return -1
}

func firstEnabled(tabs []Tab) int {
	for i := range tabs {
		if !tabs[i].Disabled {
			return i
		}
	}
	return -1
}

func lastEnabled(tabs []Tab) int {
	for i := len(tabs) - 1; i >= 0; i-- {
		if !tabs[i].Disabled {
			return i
		}
	}
	return -1
}
