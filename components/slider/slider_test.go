package slider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/headless/dom"
)

func TestSetValueClampsAndRoundsToStep(t *testing.T) {
	state := NewState(Options{Min: 0, Max: 100, Step: 10})

	tests := []struct {
		in   float64
		want float64
	}{
		{25, 30},
		{24, 20},
		{150, 100},
		{-50, 0},
		{55, 60},
	}
	for _, tt := range tests {
		state.SetValue(tt.in)
		assert.Equal(t, tt.want, state.Get().Values[0], "setValue(%v)", tt.in)
	}
}

func TestStepRelativeToMin(t *testing.T) {
	state := NewState(Options{Min: 3, Max: 23, Step: 5, Value: 3})

	state.SetValue(10)
	assert.Equal(t, 8.0, state.Get().Values[0], "steps are offsets from min")
}

func TestRangeOrderingInvariant(t *testing.T) {
	state := NewState(Options{Values: []float64{20, 80}, Min: 0, Max: 100, Step: 10})

	// Push the lower thumb past the upper: clamps to the upper.
	state.SetThumbValue(ThumbLower, 95)
	s := state.Get()
	assert.Equal(t, []float64{80, 80}, s.Values)

	// Push the upper below the lower: clamps to the lower.
	state.SetThumbValue(ThumbUpper, 10)
	s = state.Get()
	assert.Equal(t, []float64{80, 80}, s.Values)

	// Arbitrary increment/decrement sequences preserve ordering.
	state.SetThumbValue(ThumbLower, 20)
	for i := 0; i < 12; i++ {
		state.Increment(ThumbLower)
		state.Decrement(ThumbUpper)
		cur := state.Get()
		require.LessOrEqual(t, cur.Values[0], cur.Values[1])
	}
}

func TestRangeModeFixedAtCreation(t *testing.T) {
	single := NewState(Options{Min: 0, Max: 10})
	assert.False(t, single.Get().IsRange)
	assert.Len(t, single.Get().Values, 1)

	ranged := NewState(Options{Values: []float64{8, 2}, Min: 0, Max: 10})
	assert.True(t, ranged.Get().IsRange)
	assert.Equal(t, []float64{2, 8}, ranged.Get().Values, "initial values are ordered")
}

func TestKeyboard(t *testing.T) {
	var changes [][]float64
	state, layer := New(Options{
		Min: 0, Max: 100, Step: 10, Value: 50,
		OnChange: func(v []float64) { changes = append(changes, v) },
	})
	keydown := layer.Handlers(PartThumb)[dom.OnKeyDown]

	keydown(dom.KeyEvent(dom.KeyArrowRight))
	assert.Equal(t, 60.0, state.Get().Values[0])
	keydown(dom.KeyEvent(dom.KeyArrowDown))
	assert.Equal(t, 50.0, state.Get().Values[0])

	keydown(dom.KeyEvent(dom.KeyPageUp))
	assert.Equal(t, 60.0, state.Get().Values[0], "PageUp moves 10% of the span")
	keydown(dom.KeyEvent(dom.KeyHome))
	assert.Equal(t, 0.0, state.Get().Values[0])
	keydown(dom.KeyEvent(dom.KeyEnd))
	assert.Equal(t, 100.0, state.Get().Values[0])

	assert.Len(t, changes, 5)

	_, ok := keydown(dom.KeyEvent(dom.KeyArrowUp)).Event()
	assert.False(t, ok, "already at max, nothing changes")
	assert.Len(t, changes, 5)
}

func TestConfiguredPageFraction(t *testing.T) {
	state, layer := New(Options{Min: 0, Max: 100, Value: 50, PageFraction: 0.25})
	keydown := layer.Handlers(PartThumb)[dom.OnKeyDown]

	keydown(dom.KeyEvent(dom.KeyPageUp))
	assert.Equal(t, 75.0, state.Get().Values[0])
	keydown(dom.KeyEvent(dom.KeyPageDown))
	assert.Equal(t, 50.0, state.Get().Values[0])

	bad := NewState(Options{Min: 0, Max: 100, PageFraction: 0.9})
	assert.Equal(t, 0.1, bad.Get().PageFraction, "out-of-range fraction falls back")
}

func TestRangeThumbKeyboardRestrictedToOwnIndex(t *testing.T) {
	state, layer := New(Options{Values: []float64{40, 60}, Min: 0, Max: 100, Step: 10})

	layer.Handlers(PartThumbMin)[dom.OnKeyDown](dom.KeyEvent(dom.KeyArrowRight))
	assert.Equal(t, []float64{50, 60}, state.Get().Values)

	layer.Handlers(PartThumbMax)[dom.OnKeyDown](dom.KeyEvent(dom.KeyArrowLeft))
	assert.Equal(t, []float64{50, 50}, state.Get().Values)

	// End on the lower thumb clamps against the upper thumb, not max.
	layer.Handlers(PartThumbMin)[dom.OnKeyDown](dom.KeyEvent(dom.KeyEnd))
	assert.Equal(t, []float64{50, 50}, state.Get().Values)
}

func TestTrackClickHorizontal(t *testing.T) {
	state, layer := New(Options{Min: 0, Max: 100, Step: 10})

	track := dom.NewNode("track", dom.Rect{X: 100, Width: 200, Height: 10})
	e := dom.ClickEvent(150, 5) // a quarter along the track
	e.CurrentTarget = track

	res := layer.Handlers(PartTrack)[dom.OnClick](e)
	name, ok := res.Event()
	require.True(t, ok)
	assert.Equal(t, EventChange, name)
	assert.Equal(t, 30.0, state.Get().Values[0], "25% of span snapped to step")
}

func TestTrackClickVerticalMeasuresBottomToTop(t *testing.T) {
	state, layer := New(Options{Min: 0, Max: 100, Step: 1, Orientation: Vertical})

	track := dom.NewNode("track", dom.Rect{Y: 100, Width: 10, Height: 200})
	e := dom.ClickEvent(5, 150) // 150 is 75% up from the bottom at 300
	e.CurrentTarget = track

	layer.Handlers(PartTrack)[dom.OnClick](e)
	assert.Equal(t, 75.0, state.Get().Values[0])
}

func TestTrackClickRangePicksNearestThumb(t *testing.T) {
	state, layer := New(Options{Values: []float64{20, 80}, Min: 0, Max: 100, Step: 10})

	track := dom.NewNode("track", dom.Rect{X: 0, Width: 100, Height: 10})

	e := dom.ClickEvent(90, 0) // near the upper thumb
	e.CurrentTarget = track
	layer.Handlers(PartTrack)[dom.OnClick](e)
	assert.Equal(t, []float64{20, 90}, state.Get().Values)

	e = dom.ClickEvent(10, 0) // near the lower thumb
	e.CurrentTarget = track
	layer.Handlers(PartTrack)[dom.OnClick](e)
	assert.Equal(t, []float64{10, 90}, state.Get().Values)
}

func TestDragLifecycle(t *testing.T) {
	state, layer := New(Options{Min: 0, Max: 100})

	res := layer.Handlers(PartThumb)[dom.OnMouseDown](&dom.Event{Type: "mousedown"})
	name, ok := res.Event()
	require.True(t, ok)
	assert.Equal(t, EventDragStart, name)
	assert.True(t, state.Get().Dragging)

	res = layer.HandleEvent(EventDragEnd, nil)
	name, ok = res.Event()
	require.True(t, ok)
	assert.Equal(t, EventDragEnd, name)
	assert.False(t, state.Get().Dragging)

	_, ok = layer.HandleEvent(EventDragEnd, nil).Event()
	assert.False(t, ok, "not dragging")
}

func TestDisabledGuards(t *testing.T) {
	calls := 0
	state, layer := New(Options{
		Min: 0, Max: 100, Step: 10, Value: 50, Disabled: true,
		OnChange: func([]float64) { calls++ },
	})

	_, ok := layer.Handlers(PartThumb)[dom.OnKeyDown](dom.KeyEvent(dom.KeyArrowRight)).Event()
	assert.False(t, ok)
	_, ok = layer.Handlers(PartThumb)[dom.OnMouseDown](&dom.Event{}).Event()
	assert.False(t, ok)

	track := dom.NewNode("track", dom.Rect{Width: 100, Height: 10})
	e := dom.ClickEvent(75, 0)
	e.CurrentTarget = track
	_, ok = layer.Handlers(PartTrack)[dom.OnClick](e).Event()
	assert.False(t, ok)

	assert.Equal(t, 50.0, state.Get().Values[0])
	assert.Zero(t, calls)
}

func TestA11yProps(t *testing.T) {
	_, layer := New(Options{Min: 10, Max: 90, Step: 5, Value: 40})

	thumb := layer.A11y(PartThumb)
	assert.Equal(t, "slider", thumb["role"])
	assert.Equal(t, 10.0, thumb["aria-valuemin"])
	assert.Equal(t, 90.0, thumb["aria-valuemax"])
	assert.Equal(t, 40.0, thumb["aria-valuenow"])
	assert.Equal(t, Horizontal, thumb["aria-orientation"])
	assert.Equal(t, 0, thumb["tabIndex"])

	root := layer.A11y(PartRoot)
	assert.Equal(t, "group", root["role"])
}

func TestChangeEventPayloads(t *testing.T) {
	state, layer := New(Options{Min: 0, Max: 100, Step: 10})

	layer.HandleEvent(EventChange, 42)
	assert.Equal(t, 40.0, state.Get().Values[0])

	layer.HandleEvent(EventChange, 77.0)
	assert.Equal(t, 80.0, state.Get().Values[0])

	ranged, rlayer := New(Options{Values: []float64{0, 100}, Min: 0, Max: 100, Step: 10})
	rlayer.HandleEvent(EventChange, []float64{30, 70})
	assert.Equal(t, []float64{30, 70}, ranged.Get().Values)
}
