package menu

import (
	"time"
	"unicode/utf8"

	"github.com/grovetools/headless/dom"
	"github.com/grovetools/headless/logic"
)

// Part names for a11y and interaction lookups.
const (
	PartTrigger logic.Part = "trigger"
	PartMenu    logic.Part = "menu"
	PartItem    logic.Part = "item"
)

// Semantic events.
const (
	EventOpenChange  logic.EventName = "openChange"
	EventNavigate    logic.EventName = "navigate"
	EventSelect      logic.EventName = "select"
	EventSubmenuOpen logic.EventName = "submenuOpen"
	EventSubmenuBack logic.EventName = "submenuBack"
	EventTypeahead   logic.EventName = "typeahead"
)

// NewLogic builds the menu behavior layer and binds it to state.
func NewLogic(state *StateStore, opts Options) *logic.Layer[State] {
	closeOnSelect := true
	if opts.CloseOnSelect != nil {
		closeOnSelect = *opts.CloseOnSelect
	}
	window := opts.TypeaheadWindow
	if window <= 0 {
		window = DefaultTypeaheadWindow
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	setOpen := func(open bool) logic.Result {
		if !state.SetOpen(open) {
			return logic.Unhandled()
		}
		if opts.OnOpenChange != nil {
			opts.OnOpenChange(open)
		}
		return logic.Handled(EventOpenChange)
	}

	// moveTo focuses the item a navigation setter landed on. The index
	// comes from the setter's return, and the list from the dispatch
	// snapshot: plain navigation never changes the current list.
	moveTo := func(ctx logic.Context, items []Item, index int, changed bool) logic.Result {
		if !changed {
			return logic.Unhandled()
		}
		ctx.Focus(itemID(items, index))
		return logic.Handled(EventNavigate)
	}

	openAnd := func(ctx logic.Context, items []Item, pick func() (int, bool)) logic.Result {
		res := setOpen(true)
		index, _ := pick()
		if index >= 0 {
			ctx.Focus(itemID(items, index))
		}
		if _, ok := res.Event(); ok {
			return res
		}
		return logic.Handled(EventNavigate)
	}

	// selectItem runs the leaf protocol: item callback, then the global
	// one, record the selection, then close unless configured otherwise.
	// Items with children descend instead.
	selectItem := func(ctx logic.Context, item Item) logic.Result {
		if item.Disabled {
			return logic.Unhandled()
		}
		if len(item.Items) > 0 {
			focusID, changed := state.EnterSubmenu(item.ID)
			if !changed {
				return logic.Unhandled()
			}
			ctx.Focus(focusID)
			return logic.Handled(EventSubmenuOpen)
		}
		if item.OnSelect != nil {
			item.OnSelect(item)
		}
		if opts.OnSelect != nil {
			opts.OnSelect(item)
		}
		state.SetSelected(item.ID)
		if closeOnSelect {
			setOpen(false)
		}
		return logic.Handled(EventSelect)
	}

	builder := logic.NewBuilder[State]().
		WithFocusController(opts.FocusController).
		WithLogger(opts.Logger)

	builder.OnEvent(EventOpenChange, func(ctx logic.Context, s State, payload any) logic.Result {
		open, ok := payload.(bool)
		if !ok {
			return logic.Unhandled()
		}
		return setOpen(open)
	})

	builder.OnEvent(EventSelect, func(ctx logic.Context, s State, payload any) logic.Result {
		id, ok := payload.(string)
		if !ok {
			return logic.Unhandled()
		}
		item := findItem(s.CurrentItems(), id)
		if item == nil {
			return logic.Unhandled()
		}
		return selectItem(ctx, *item)
	})

	builder.WithA11y(PartTrigger, func(s State) logic.Props {
		p := logic.Props{
			"role":          "button",
			"aria-haspopup": "menu",
			"tabIndex":      0,
		}
		p.SetFlag("aria-expanded", s.Open)
		return p
	})

	builder.WithA11y(PartMenu, func(s State) logic.Props {
		p := logic.Props{
			"role":     "menu",
			"tabIndex": -1,
		}
		p.SetState("aria-hidden", !s.Open)
		return p
	})

	builder.WithItemA11y(PartItem, func(s State, itemID string) logic.Props {
		item := findItem(s.CurrentItems(), itemID)
		if item == nil {
			return nil
		}
		p := logic.Props{
			"role":         "menuitem",
			"data-item-id": itemID,
			"tabIndex":     -1,
		}
		p.SetState("aria-disabled", item.Disabled)
		if len(item.Items) > 0 {
			p["aria-haspopup"] = "menu"
			p.SetFlag("aria-expanded", stackContains(s.SubmenuStack, itemID))
		}
		return p
	})

	builder.WithInteraction(PartTrigger, dom.OnClick, func(ctx logic.Context, s State, e *dom.Event, args ...string) logic.Result {
		return setOpen(!s.Open)
	})

	builder.WithInteraction(PartTrigger, dom.OnKeyDown, func(ctx logic.Context, s State, e *dom.Event, args ...string) logic.Result {
		switch e.Key {
		case dom.KeyArrowDown, dom.KeyEnter, dom.KeySpace:
			e.PreventDefault()
			return openAnd(ctx, s.CurrentItems(), state.NavigateToFirst)
		case dom.KeyArrowUp:
			e.PreventDefault()
			return openAnd(ctx, s.CurrentItems(), state.NavigateToLast)
		}
		return logic.Unhandled()
	})

	builder.WithInteraction(PartMenu, dom.OnKeyDown, func(ctx logic.Context, s State, e *dom.Event, args ...string) logic.Result {
		switch e.Key {
		case dom.KeyArrowDown:
			e.PreventDefault()
			index, changed := state.NavigateDown()
			return moveTo(ctx, s.CurrentItems(), index, changed)
		case dom.KeyArrowUp:
			e.PreventDefault()
			index, changed := state.NavigateUp()
			return moveTo(ctx, s.CurrentItems(), index, changed)
		case dom.KeyHome:
			e.PreventDefault()
			index, changed := state.NavigateToFirst()
			return moveTo(ctx, s.CurrentItems(), index, changed)
		case dom.KeyEnd:
			e.PreventDefault()
			index, changed := state.NavigateToLast()
			return moveTo(ctx, s.CurrentItems(), index, changed)
		case dom.KeyArrowRight:
			item := s.ActiveItem()
			if item == nil || len(item.Items) == 0 {
				return logic.Unhandled()
			}
			e.PreventDefault()
			return selectItem(ctx, *item)
		case dom.KeyArrowLeft:
			focusID, changed := state.ExitSubmenu()
			if !changed {
				return logic.Unhandled()
			}
			e.PreventDefault()
			ctx.Focus(focusID)
			return logic.Handled(EventSubmenuBack)
		case dom.KeyEnter, dom.KeySpace:
			item := s.ActiveItem()
			if item == nil {
				return logic.Unhandled()
			}
			e.PreventDefault()
			return selectItem(ctx, *item)
		case dom.KeyEscape:
			return setOpen(false)
		}
		if ch := printable(e.Key); ch != "" {
			index, matched := state.TypeAhead(ch, now(), window)
			if !matched {
				return logic.Unhandled()
			}
			ctx.Focus(itemID(s.CurrentItems(), index))
			return logic.Handled(EventTypeahead)
		}
		return logic.Unhandled()
	})

	// Closing on blur only applies when focus leaves the menu subtree, so a
	// focus hop between items stays open.
	builder.WithInteraction(PartMenu, dom.OnBlur, func(ctx logic.Context, s State, e *dom.Event, args ...string) logic.Result {
		state.SetFocused(false)
		if e.CurrentTarget != nil && e.RelatedTarget != nil && e.CurrentTarget.Contains(e.RelatedTarget) {
			return logic.Unhandled()
		}
		return setOpen(false)
	})

	builder.WithInteraction(PartMenu, dom.OnFocus, func(ctx logic.Context, s State, e *dom.Event, args ...string) logic.Result {
		state.SetFocused(true)
		return logic.Unhandled()
	})

	builder.WithInteraction(PartItem, dom.OnClick, func(ctx logic.Context, s State, e *dom.Event, args ...string) logic.Result {
		if len(args) == 0 {
			return logic.Unhandled()
		}
		item := findItem(s.CurrentItems(), args[0])
		if item == nil {
			return logic.Unhandled()
		}
		return selectItem(ctx, *item)
	})

	builder.WithInteraction(PartItem, dom.OnMouseEnter, func(ctx logic.Context, s State, e *dom.Event, args ...string) logic.Result {
		if len(args) == 0 {
			return logic.Unhandled()
		}
		index := indexOf(s.CurrentItems(), args[0])
		if index < 0 || !state.SetActiveIndex(index) {
			return logic.Unhandled()
		}
		return logic.Handled(EventNavigate)
	})

	layer := builder.Build()
	layer.Connect(state.Store())
	return layer
}

// New creates a fully wired menu instance: state store plus initialized logic.
func New(opts Options) (*StateStore, *logic.Layer[State]) {
	state := NewState(opts)
	layer := NewLogic(state, opts)
	layer.Initialize()
	return state, layer
}

// itemID resolves the element id to focus after a navigation lands on index.
func itemID(items []Item, index int) string {
	if index < 0 || index >= len(items) {
		return ""
	}
	return items[index].ID
}

func stackContains(stack []string, id string) bool {
	for _, s := range stack {
		if s == id {
			return true
		}
	}
	return false
}

// printable reports the key as a type-ahead character when it encodes a
// single printable rune.
func printable(key string) string {
	if utf8.RuneCountInString(key) != 1 {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(key)
	if r < ' ' {
		return ""
	}
	return key
}
