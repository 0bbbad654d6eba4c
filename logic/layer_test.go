package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/headless/dom"
	"github.com/grovetools/headless/store"
)

type toggleState struct {
	On    bool
	Count int
}

func TestHandleEventDispatchesWithSnapshot(t *testing.T) {
	st := store.New(toggleState{On: true})

	layer := NewBuilder[toggleState]().
		OnEvent("toggle", func(ctx Context, s toggleState, payload any) Result {
			assert.True(t, s.On, "handler receives the snapshot at dispatch time")
			st.Update(func(prev toggleState) toggleState {
				prev.On = !prev.On
				return prev
			})
			return Handled("toggle")
		}).
		Build()
	layer.Connect(st)

	res := layer.HandleEvent("toggle", nil)
	name, ok := res.Event()
	require.True(t, ok)
	assert.Equal(t, EventName("toggle"), name)
	assert.False(t, st.Get().On)
}

func TestHandleEventUnknownNameIsNoOp(t *testing.T) {
	st := store.New(toggleState{})
	layer := NewBuilder[toggleState]().Build()
	layer.Connect(st)

	_, ok := layer.HandleEvent("missing", nil).Event()
	assert.False(t, ok)
}

func TestUnconnectedLayerIsNoOp(t *testing.T) {
	layer := NewBuilder[toggleState]().
		OnEvent("toggle", func(Context, toggleState, any) Result {
			t.Fatal("handler must not run before Connect")
			return Unhandled()
		}).
		WithA11y("root", func(toggleState) Props { return Props{"role": "group"} }).
		Build()

	_, ok := layer.HandleEvent("toggle", nil).Event()
	assert.False(t, ok)
	assert.Nil(t, layer.A11y("root"))
}

func TestA11yFlatAndKeyed(t *testing.T) {
	st := store.New(toggleState{On: true})
	layer := NewBuilder[toggleState]().
		WithA11y("root", func(s toggleState) Props {
			p := Props{"role": "group"}
			p.SetState("aria-disabled", !s.On)
			return p
		}).
		WithItemA11y("item", func(s toggleState, itemID string) Props {
			return Props{"id": "item-" + itemID}
		}).
		Build()
	layer.Connect(st)

	root := layer.A11y("root")
	assert.Equal(t, "group", root["role"])
	_, present := root["aria-disabled"]
	assert.False(t, present, "boolean states are absent when off")

	item := layer.A11y("item", "a")
	assert.Equal(t, "item-a", item["id"])

	assert.Nil(t, layer.A11y("item"), "keyed part without an id yields nil")
	assert.Nil(t, layer.A11y("missing"))
}

func TestHandlersBindSnapshotPerInvocation(t *testing.T) {
	st := store.New(toggleState{})
	var seen []int

	layer := NewBuilder[toggleState]().
		WithInteraction("button", dom.OnClick, func(ctx Context, s toggleState, e *dom.Event, args ...string) Result {
			seen = append(seen, s.Count)
			st.Update(func(prev toggleState) toggleState {
				prev.Count++
				return prev
			})
			return Handled("pressed")
		}).
		Build()
	layer.Connect(st)

	handlers := layer.Handlers("button")
	require.Contains(t, handlers, dom.OnClick)

	handlers[dom.OnClick](dom.ClickEvent(0, 0))
	handlers[dom.OnClick](dom.ClickEvent(0, 0))

	assert.Equal(t, []int{0, 1}, seen, "each invocation captures a fresh snapshot")
	assert.Nil(t, layer.Handlers("missing"))
}

func TestDeferRunsAfterDispatchInOrder(t *testing.T) {
	st := store.New(toggleState{})
	var order []string

	layer := NewBuilder[toggleState]().
		OnEvent("go", func(ctx Context, s toggleState, payload any) Result {
			ctx.Defer(func() { order = append(order, "deferred-1") })
			order = append(order, "immediate")
			ctx.Defer(func() { order = append(order, "deferred-2") })
			return Handled("go")
		}).
		Build()
	layer.Connect(st)

	layer.HandleEvent("go", nil)
	assert.Equal(t, []string{"immediate", "deferred-1", "deferred-2"}, order)
}

func TestDeferredTaskMayDispatchAgain(t *testing.T) {
	st := store.New(toggleState{})
	var order []string

	var layer *Layer[toggleState]
	layer = NewBuilder[toggleState]().
		OnEvent("outer", func(ctx Context, s toggleState, payload any) Result {
			order = append(order, "outer")
			ctx.Defer(func() {
				layer.HandleEvent("inner", nil)
			})
			return Handled("outer")
		}).
		OnEvent("inner", func(ctx Context, s toggleState, payload any) Result {
			order = append(order, "inner")
			ctx.Defer(func() { order = append(order, "inner-deferred") })
			return Handled("inner")
		}).
		Build()
	layer.Connect(st)

	layer.HandleEvent("outer", nil)
	assert.Equal(t, []string{"outer", "inner", "inner-deferred"}, order)
}

func TestInitializeIdempotentAndCleanup(t *testing.T) {
	st := store.New(toggleState{})
	inits := 0
	cleanups := 0

	layer := NewBuilder[toggleState]().
		OnInitialize(func(s *store.Store[toggleState]) func() {
			inits++
			unsub := s.Subscribe(func(toggleState) {})
			return func() {
				cleanups++
				unsub()
			}
		}).
		Build()
	layer.Connect(st)

	cleanup := layer.Initialize()
	layer.Initialize()
	assert.Equal(t, 1, inits)

	cleanup()
	layer.Cleanup()
	assert.Equal(t, 1, cleanups)
}

func TestFocusControllerReceivesNavigationTarget(t *testing.T) {
	st := store.New(toggleState{})
	var focused []string

	layer := NewBuilder[toggleState]().
		WithFocusController(FocusFunc(func(id string) { focused = append(focused, id) })).
		OnEvent("focus", func(ctx Context, s toggleState, payload any) Result {
			ctx.Focus(payload.(string))
			return Handled("focus")
		}).
		Build()
	layer.Connect(st)

	layer.HandleEvent("focus", "item2")
	assert.Equal(t, []string{"item2"}, focused)
}

func TestResultZeroValueIsUnhandled(t *testing.T) {
	var r Result
	_, ok := r.Event()
	assert.False(t, ok)

	name, ok := Handled("select").Event()
	assert.True(t, ok)
	assert.Equal(t, EventName("select"), name)
}
