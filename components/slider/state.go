// Package slider implements the headless slider primitive in single and
// range mode. Every value write is clamped to [Min, Max] and rounded to the
// nearest Step relative to Min; range values additionally keep
// Values[0] <= Values[1] by clamping each thumb against the other.
package slider

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/grovetools/headless/logic"
	"github.com/grovetools/headless/store"
)

// Orientations.
const (
	Horizontal = "horizontal"
	Vertical   = "vertical"
)

// Thumb indexes for range sliders.
const (
	ThumbLower = 0
	ThumbUpper = 1
)

// State is the slider snapshot. Values has one entry in single mode and two
// in range mode; the mode is fixed at creation.
type State struct {
	Values      []float64
	Min         float64
	Max         float64
	Step        float64
	Disabled    bool
	Focused     bool
	Dragging    bool
	Orientation string
	IsRange     bool

	// PageFraction is the share of the span a PageUp/PageDown press moves.
	PageFraction float64
}

// Options configures a new slider. Range mode is selected by supplying two
// initial values.
type Options struct {
	Value  float64   // initial value for single mode
	Values []float64 // two entries select range mode
	Min    float64
	Max    float64 // defaults to 100 when Min == Max == 0
	Step   float64 // defaults to 1
	Disabled    bool
	Orientation string // defaults to horizontal

	// PageFraction is the share of the span a PageUp/PageDown press moves.
	// Defaults to 0.1.
	PageFraction float64

	// OnChange fires when any value actually changes, with the full value
	// slice (one entry in single mode, two in range mode).
	OnChange func(values []float64)

	FocusController logic.FocusController
	Logger          logrus.FieldLogger
}

// StateStore wraps the generic store with slider setters.
type StateStore struct {
	store *store.Store[State]
}

// NewState creates the slider state store. Initial values are snapped like
// any other write.
func NewState(opts Options) *StateStore {
	min, max := opts.Min, opts.Max
	if min == 0 && max == 0 {
		max = 100
	}
	if max < min {
		min, max = max, min
	}
	step := opts.Step
	if step <= 0 {
		step = 1
	}
	orientation := opts.Orientation
	if orientation != Vertical {
		orientation = Horizontal
	}
	pageFraction := opts.PageFraction
	if pageFraction <= 0 || pageFraction > 0.5 {
		pageFraction = 0.1
	}

	isRange := len(opts.Values) >= 2
	var values []float64
	if isRange {
		lo := snap(opts.Values[0], min, max, step)
		hi := snap(opts.Values[1], min, max, step)
		if lo > hi {
			lo, hi = hi, lo
		}
		values = []float64{lo, hi}
	} else {
		initial := opts.Value
		if len(opts.Values) == 1 {
			initial = opts.Values[0]
		}
		values = []float64{snap(initial, min, max, step)}
	}

	state := State{
		Values:      values,
		Min:         min,
		Max:         max,
		Step:        step,
		Disabled:    opts.Disabled,
		Orientation: orientation,
		IsRange:     isRange,

		PageFraction: pageFraction,
	}
	return &StateStore{store: store.New(state)}
}

// Store exposes the underlying store for logic-layer binding.
func (s *StateStore) Store() *store.Store[State] {
	return s.store
}

// Get returns the current snapshot.
func (s *StateStore) Get() State {
	return s.store.Get()
}

// Subscribe registers a listener for full snapshots.
func (s *StateStore) Subscribe(fn func(State)) func() {
	return s.store.Subscribe(fn)
}

// SetValue writes the single-mode value, snapped. No-op in range mode or
// when disabled.
func (s *StateStore) SetValue(v float64) (values []float64, changed bool) {
	return s.SetThumbValue(0, v)
}

// SetThumbValue writes one thumb's value, snapped and clamped against the
// other thumb in range mode.
func (s *StateStore) SetThumbValue(thumb int, v float64) (values []float64, changed bool) {
	s.store.Update(func(prev State) State {
		values = prev.Values
		if prev.Disabled || thumb < 0 || thumb >= len(prev.Values) {
			return prev
		}
		next := snap(v, prev.Min, prev.Max, prev.Step)
		if prev.IsRange {
			if thumb == ThumbLower && next > prev.Values[ThumbUpper] {
				next = prev.Values[ThumbUpper]
			}
			if thumb == ThumbUpper && next < prev.Values[ThumbLower] {
				next = prev.Values[ThumbLower]
			}
		}
		if next == prev.Values[thumb] {
			return prev
		}
		updated := append([]float64{}, prev.Values...)
		updated[thumb] = next
		prev.Values = updated
		values = updated
		changed = true
		return prev
	})
	return values, changed
}

// Increment moves one thumb up by step.
func (s *StateStore) Increment(thumb int) ([]float64, bool) {
	return s.step(thumb, 1)
}

// Decrement moves one thumb down by step.
func (s *StateStore) Decrement(thumb int) ([]float64, bool) {
	return s.step(thumb, -1)
}

func (s *StateStore) step(thumb int, direction float64) (values []float64, changed bool) {
	cur := s.store.Get()
	if thumb < 0 || thumb >= len(cur.Values) {
		return cur.Values, false
	}
	return s.SetThumbValue(thumb, cur.Values[thumb]+direction*cur.Step)
}

// SetDragging records pointer-drag state.
func (s *StateStore) SetDragging(dragging bool) {
	s.store.Update(func(prev State) State {
		if prev.Disabled {
			return prev
		}
		prev.Dragging = dragging
		return prev
	})
}

// SetFocused records keyboard focus.
func (s *StateStore) SetFocused(focused bool) {
	s.store.Update(func(prev State) State {
		prev.Focused = focused
		return prev
	})
}

// SetDisabled enables or disables the slider.
func (s *StateStore) SetDisabled(disabled bool) {
	s.store.Update(func(prev State) State {
		prev.Disabled = disabled
		return prev
	})
}

// snap clamps v into [min, max] and rounds to the nearest step relative to
// min. Rounding never escapes the bounds.
func snap(v, min, max, step float64) float64 {
	if v < min {
		v = min
	}
	if v > max {
		v = max
	}
	steps := math.Round((v - min) / step)
	snapped := min + steps*step
	if snapped > max {
		snapped = max
	}
	if snapped < min {
		snapped = min
	}
	return snapped
}
