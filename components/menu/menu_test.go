package menu

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/headless/dom"
	"github.com/grovetools/headless/testutil"
)

func fileMenu() []Item {
	return []Item{
		{ID: "new", Label: "New"},
		{ID: "open", Label: "Open"},
		{ID: "recent", Label: "Open Recent", Items: []Item{
			{ID: "r1", Label: "notes.txt"},
			{ID: "r2", Label: "draft.md", Disabled: true},
			{ID: "r3", Label: "report.pdf"},
		}},
		{ID: "print", Label: "Print", Disabled: true},
		{ID: "save", Label: "Save"},
	}
}

func TestTriggerClickToggles(t *testing.T) {
	var opens []bool
	state, layer := New(Options{
		Items:        fileMenu(),
		OnOpenChange: func(open bool) { opens = append(opens, open) },
	})
	click := layer.Handlers(PartTrigger)[dom.OnClick]

	res := click(dom.ClickEvent(0, 0))
	name, ok := res.Event()
	require.True(t, ok)
	assert.Equal(t, EventOpenChange, name)
	assert.True(t, state.Get().Open)

	click(dom.ClickEvent(0, 0))
	assert.False(t, state.Get().Open)
	assert.Equal(t, []bool{true, false}, opens)
}

func TestTriggerArrowsOpenAndFocusEnds(t *testing.T) {
	focus := &testutil.FocusRecorder{}
	state, layer := New(Options{Items: fileMenu(), FocusController: focus})
	keydown := layer.Handlers(PartTrigger)[dom.OnKeyDown]

	keydown(dom.KeyEvent(dom.KeyArrowDown))
	assert.True(t, state.Get().Open)
	assert.Equal(t, 0, state.Get().ActiveIndex)

	state.SetOpen(false)
	keydown(dom.KeyEvent(dom.KeyArrowUp))
	assert.Equal(t, 4, state.Get().ActiveIndex, "last enabled item")

	assert.Equal(t, []string{"new", "save"}, focus.IDs)
}

func TestNavigationSkipsDisabledAndStopsAtEnds(t *testing.T) {
	state, layer := New(Options{Items: fileMenu()})
	state.SetOpen(true)
	state.NavigateToFirst()
	keydown := layer.Handlers(PartMenu)[dom.OnKeyDown]

	keydown(dom.KeyEvent(dom.KeyArrowDown)) // new -> open
	keydown(dom.KeyEvent(dom.KeyArrowDown)) // open -> recent
	keydown(dom.KeyEvent(dom.KeyArrowDown)) // recent -> save, skipping print
	assert.Equal(t, 4, state.Get().ActiveIndex)

	res := keydown(dom.KeyEvent(dom.KeyArrowDown))
	_, ok := res.Event()
	assert.False(t, ok, "no wrap at the bottom")
	assert.Equal(t, 4, state.Get().ActiveIndex)

	keydown(dom.KeyEvent(dom.KeyHome))
	assert.Equal(t, 0, state.Get().ActiveIndex)
	res = keydown(dom.KeyEvent(dom.KeyArrowUp))
	_, ok = res.Event()
	assert.False(t, ok, "no wrap at the top")
}

func TestLeafSelectionFiresCallbacksAndCloses(t *testing.T) {
	var order []string
	items := fileMenu()
	items[1].OnSelect = func(item Item) { order = append(order, "item:"+item.ID) }

	state, layer := New(Options{
		Items:    items,
		OnSelect: func(item Item) { order = append(order, "global:"+item.ID) },
	})
	state.SetOpen(true)
	click := layer.Handlers(PartItem)[dom.OnClick]

	res := click(dom.ClickEvent(0, 0), "open")
	name, ok := res.Event()
	require.True(t, ok)
	assert.Equal(t, EventSelect, name)

	assert.Equal(t, []string{"item:open", "global:open"}, order, "item callback before global")
	s := state.Get()
	assert.Equal(t, "open", s.SelectedID)
	assert.False(t, s.Open, "closes on select by default")
}

func TestCloseOnSelectFalseKeepsMenuOpen(t *testing.T) {
	stayOpen := false
	state, layer := New(Options{Items: fileMenu(), CloseOnSelect: &stayOpen})
	state.SetOpen(true)
	click := layer.Handlers(PartItem)[dom.OnClick]

	click(dom.ClickEvent(0, 0), "save")
	s := state.Get()
	assert.Equal(t, "save", s.SelectedID)
	assert.True(t, s.Open)
}

func TestDisabledItemSelectionIsNoOp(t *testing.T) {
	var selected []string
	state, layer := New(Options{
		Items:    fileMenu(),
		OnSelect: func(item Item) { selected = append(selected, item.ID) },
	})
	state.SetOpen(true)
	click := layer.Handlers(PartItem)[dom.OnClick]

	res := click(dom.ClickEvent(0, 0), "print")
	_, ok := res.Event()
	assert.False(t, ok)
	assert.Empty(t, selected)
	assert.True(t, state.Get().Open)
}

func TestSubmenuDescendAndBack(t *testing.T) {
	focus := &testutil.FocusRecorder{}
	state, layer := New(Options{Items: fileMenu(), FocusController: focus})
	state.SetOpen(true)
	state.SetActiveIndex(2) // recent
	keydown := layer.Handlers(PartMenu)[dom.OnKeyDown]

	res := keydown(dom.KeyEvent(dom.KeyArrowRight))
	name, ok := res.Event()
	require.True(t, ok)
	assert.Equal(t, EventSubmenuOpen, name)

	s := state.Get()
	assert.Equal(t, []string{"recent"}, s.SubmenuStack)
	assert.Equal(t, 0, s.ActiveIndex, "first enabled child")
	assert.Equal(t, "r1", s.CurrentItems()[s.ActiveIndex].ID)

	res = keydown(dom.KeyEvent(dom.KeyArrowLeft))
	name, ok = res.Event()
	require.True(t, ok)
	assert.Equal(t, EventSubmenuBack, name)

	s = state.Get()
	assert.Empty(t, s.SubmenuStack)
	assert.Equal(t, 2, s.ActiveIndex, "back on the parent item")
	assert.Equal(t, []string{"r1", "recent"}, focus.IDs)
}

func TestSelectingNestedItemDescendsInsteadOfSelecting(t *testing.T) {
	var selected []string
	state, layer := New(Options{
		Items:    fileMenu(),
		OnSelect: func(item Item) { selected = append(selected, item.ID) },
	})
	state.SetOpen(true)
	click := layer.Handlers(PartItem)[dom.OnClick]

	click(dom.ClickEvent(0, 0), "recent")
	assert.Empty(t, selected)
	assert.Equal(t, []string{"recent"}, state.Get().SubmenuStack)

	click(dom.ClickEvent(0, 0), "r3")
	assert.Equal(t, []string{"r3"}, selected)
	s := state.Get()
	assert.False(t, s.Open)
	assert.Empty(t, s.SubmenuStack, "closing clears the stack")
}

func TestEscapeCloses(t *testing.T) {
	state, layer := New(Options{Items: fileMenu()})
	state.SetOpen(true)
	keydown := layer.Handlers(PartMenu)[dom.OnKeyDown]

	res := keydown(dom.KeyEvent(dom.KeyEscape))
	name, ok := res.Event()
	require.True(t, ok)
	assert.Equal(t, EventOpenChange, name)
	assert.False(t, state.Get().Open)
}

func TestTypeaheadAccumulatesWithinWindow(t *testing.T) {
	clock := testutil.NewClock()
	state, layer := New(Options{Items: fileMenu(), Now: clock.Now})
	state.SetOpen(true)
	state.NavigateToFirst()
	keydown := layer.Handlers(PartMenu)[dom.OnKeyDown]

	res := keydown(dom.KeyEvent("o"))
	name, ok := res.Event()
	require.True(t, ok)
	assert.Equal(t, EventTypeahead, name)
	assert.Equal(t, 1, state.Get().ActiveIndex, "Open")

	clock.Advance(200 * time.Millisecond)
	keydown(dom.KeyEvent("p"))
	assert.Equal(t, 1, state.Get().ActiveIndex, `still matching "op"`)
	assert.Equal(t, "op", state.Get().SearchQuery)

	// Once the active item stops matching, the scan moves forward.
	for _, ch := range []string{"e", "n", " "} {
		clock.Advance(100 * time.Millisecond)
		keydown(dom.KeyEvent(ch))
	}
	assert.Equal(t, "open ", state.Get().SearchQuery)
	assert.Equal(t, 2, state.Get().ActiveIndex, "Open Recent")
}

func TestTypeaheadResetsAfterWindow(t *testing.T) {
	clock := testutil.NewClock()
	state, layer := New(Options{Items: fileMenu(), Now: clock.Now})
	state.SetOpen(true)
	state.NavigateToFirst()
	keydown := layer.Handlers(PartMenu)[dom.OnKeyDown]

	keydown(dom.KeyEvent("o"))
	clock.Advance(DefaultTypeaheadWindow + time.Millisecond)
	keydown(dom.KeyEvent("s"))

	s := state.Get()
	assert.Equal(t, "s", s.SearchQuery, "stale query dropped")
	assert.Equal(t, 4, s.ActiveIndex, "Save")
}

func TestTypeaheadScansForwardWithWrap(t *testing.T) {
	clock := testutil.NewClock()
	items := []Item{
		{ID: "alpha", Label: "Alpha"},
		{ID: "beta", Label: "Beta"},
		{ID: "apricot", Label: "Apricot"},
	}
	state, layer := New(Options{Items: items, Now: clock.Now})
	state.SetOpen(true)
	state.SetActiveIndex(0)
	keydown := layer.Handlers(PartMenu)[dom.OnKeyDown]

	keydown(dom.KeyEvent("a"))
	assert.Equal(t, 2, state.Get().ActiveIndex, "scan starts after the active item")

	clock.Advance(time.Second)
	keydown(dom.KeyEvent("a"))
	assert.Equal(t, 0, state.Get().ActiveIndex, "wraps past the end")
}

func TestTypeaheadSkipsDisabledAndMissesAreUnhandled(t *testing.T) {
	clock := testutil.NewClock()
	state, layer := New(Options{Items: fileMenu(), Now: clock.Now})
	state.SetOpen(true)
	keydown := layer.Handlers(PartMenu)[dom.OnKeyDown]

	keydown(dom.KeyEvent("p")) // Print is disabled
	assert.Equal(t, -1, state.Get().ActiveIndex)

	clock.Advance(time.Second)
	res := keydown(dom.KeyEvent("z"))
	_, ok := res.Event()
	assert.False(t, ok)
	assert.Equal(t, "z", state.Get().SearchQuery, "query still recorded on a miss")
}

func TestBlurClosesOnlyWhenFocusLeaves(t *testing.T) {
	state, layer := New(Options{Items: fileMenu()})
	state.SetOpen(true)
	blur := layer.Handlers(PartMenu)[dom.OnBlur]

	root := dom.NewNode("menu", dom.Rect{})
	inside := root.AppendChild(dom.NewNode("item", dom.Rect{}))
	outside := dom.NewNode("elsewhere", dom.Rect{})

	res := blur(&dom.Event{Type: "blur", CurrentTarget: root, RelatedTarget: inside})
	_, ok := res.Event()
	assert.False(t, ok)
	assert.True(t, state.Get().Open, "focus moved within the menu")

	blur(&dom.Event{Type: "blur", CurrentTarget: root, RelatedTarget: outside})
	assert.False(t, state.Get().Open)
}

func TestCloseClearsNavigationState(t *testing.T) {
	state, _ := New(Options{Items: fileMenu()})
	state.SetOpen(true)
	state.SetActiveIndex(2)
	state.EnterSubmenu("recent")

	state.SetOpen(false)
	s := state.Get()
	assert.Empty(t, s.SubmenuStack)
	assert.Equal(t, -1, s.ActiveIndex)
	assert.Equal(t, "", s.SearchQuery)
}

func TestA11yProps(t *testing.T) {
	state, layer := New(Options{Items: fileMenu()})

	trigger := layer.A11y(PartTrigger)
	assert.Equal(t, "menu", trigger["aria-haspopup"])
	assert.Equal(t, "false", trigger["aria-expanded"])

	menuProps := layer.A11y(PartMenu)
	assert.Equal(t, "menu", menuProps["role"])
	assert.Equal(t, "true", menuProps["aria-hidden"])

	state.SetOpen(true)
	assert.Equal(t, "true", layer.A11y(PartTrigger)["aria-expanded"])
	_, present := layer.A11y(PartMenu)["aria-hidden"]
	assert.False(t, present)

	item := layer.A11y(PartItem, "recent")
	assert.Equal(t, "menuitem", item["role"])
	assert.Equal(t, "menu", item["aria-haspopup"])
	assert.Equal(t, "false", item["aria-expanded"])

	disabled := layer.A11y(PartItem, "print")
	assert.Equal(t, "true", disabled["aria-disabled"])

	state.EnterSubmenu("recent")
	child := layer.A11y(PartItem, "r1")
	require.NotNil(t, child)
	assert.Equal(t, "r1", child["data-item-id"])
	assert.Nil(t, layer.A11y(PartItem, "new"), "parent list items unresolvable inside a submenu")
}

func TestMouseEnterMovesActiveIndex(t *testing.T) {
	state, layer := New(Options{Items: fileMenu()})
	state.SetOpen(true)
	enter := layer.Handlers(PartItem)[dom.OnMouseEnter]

	enter(&dom.Event{Type: "mouseenter"}, "open")
	assert.Equal(t, 1, state.Get().ActiveIndex)

	res := enter(&dom.Event{Type: "mouseenter"}, "print")
	_, ok := res.Event()
	assert.False(t, ok, "disabled items never become active")
	assert.Equal(t, 1, state.Get().ActiveIndex)
}
