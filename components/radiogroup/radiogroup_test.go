package radiogroup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/headless/dom"
)

func colorEntries() []Entry {
	return []Entry{
		{Value: "red", Label: "Red"},
		{Value: "green", Label: "Green", Disabled: true},
		{Value: "blue", Label: "Blue"},
	}
}

func TestSelectIsMutuallyExclusive(t *testing.T) {
	state, layer := New(Options{Entries: colorEntries(), Name: "color"})

	layer.Handlers(PartRadio)[dom.OnClick](dom.ClickEvent(0, 0), "red")
	assert.Equal(t, "red", state.Get().Value)
	assert.Equal(t, "true", layer.A11y(PartRadio, "red")["aria-checked"])

	layer.Handlers(PartRadio)[dom.OnClick](dom.ClickEvent(0, 0), "blue")
	assert.Equal(t, "blue", state.Get().Value)
	assert.Equal(t, "false", layer.A11y(PartRadio, "red")["aria-checked"], "previous selection unchecked")
}

func TestReselectingIsNoOp(t *testing.T) {
	calls := 0
	_, layer := New(Options{
		Entries:  colorEntries(),
		Value:    "red",
		OnChange: func(string) { calls++ },
	})

	_, ok := layer.Handlers(PartRadio)[dom.OnClick](dom.ClickEvent(0, 0), "red").Event()
	assert.False(t, ok)
	assert.Zero(t, calls)
}

func TestArrowKeysWrapAndSkipDisabled(t *testing.T) {
	var changes []string
	state, layer := New(Options{
		Entries:  colorEntries(),
		Value:    "red",
		OnChange: func(v string) { changes = append(changes, v) },
	})
	keydown := layer.Handlers(PartRadio)[dom.OnKeyDown]

	keydown(dom.KeyEvent(dom.KeyArrowDown), "red")
	assert.Equal(t, "blue", state.Get().Value, "skips the disabled entry")

	keydown(dom.KeyEvent(dom.KeyArrowDown), "blue")
	assert.Equal(t, "red", state.Get().Value, "wraps past the end")

	keydown(dom.KeyEvent(dom.KeyArrowUp), "red")
	assert.Equal(t, "blue", state.Get().Value, "wraps past the start")

	assert.Equal(t, []string{"blue", "red", "blue"}, changes)
}

func TestDisabledGuards(t *testing.T) {
	calls := 0
	state, layer := New(Options{
		Entries:  colorEntries(),
		Disabled: true,
		OnChange: func(string) { calls++ },
	})

	_, ok := layer.Handlers(PartRadio)[dom.OnClick](dom.ClickEvent(0, 0), "red").Event()
	assert.False(t, ok)
	assert.Equal(t, "", state.Get().Value)
	assert.Zero(t, calls)

	state.SetDisabled(false)
	res := layer.HandleEvent(EventSelect, "red")
	_, ok = res.Event()
	require.True(t, ok)
	assert.Equal(t, "red", state.Get().Value)
}

func TestRovingTabIndex(t *testing.T) {
	_, layer := New(Options{Entries: colorEntries()})

	// Nothing selected: the first enabled entry is focusable.
	assert.Equal(t, 0, layer.A11y(PartRadio, "red")["tabIndex"])
	assert.Equal(t, -1, layer.A11y(PartRadio, "blue")["tabIndex"])

	layer.HandleEvent(EventSelect, "blue")
	assert.Equal(t, -1, layer.A11y(PartRadio, "red")["tabIndex"])
	assert.Equal(t, 0, layer.A11y(PartRadio, "blue")["tabIndex"])
}

func TestRootA11y(t *testing.T) {
	_, layer := New(Options{Entries: colorEntries(), Required: true})

	props := layer.A11y(PartRoot)
	assert.Equal(t, "radiogroup", props["role"])
	assert.Equal(t, "true", props["aria-required"])
}
