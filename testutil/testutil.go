// Package testutil provides shared helpers for exercising primitives in
// tests: state recorders, a controllable clock for type-ahead windows, and a
// focus recorder standing in for a host focus controller.
package testutil

import (
	"testing"
	"time"

	"github.com/grovetools/headless/store"
)

// StateRecorder captures every snapshot a store publishes.
type StateRecorder[S any] struct {
	States []S
}

// Record subscribes a recorder to st for the duration of the test.
func Record[S any](t *testing.T, st *store.Store[S]) *StateRecorder[S] {
	t.Helper()
	r := &StateRecorder[S]{}
	unsub := st.Subscribe(func(next S) {
		r.States = append(r.States, next)
	})
	t.Cleanup(unsub)
	return r
}

// Last returns the most recent snapshot; fails the test if none arrived.
func (r *StateRecorder[S]) Last(t *testing.T) S {
	t.Helper()
	if len(r.States) == 0 {
		t.Fatal("no state notifications recorded")
	}
	return r.States[len(r.States)-1]
}

// FocusRecorder records focus requests in order.
type FocusRecorder struct {
	IDs []string
}

// Focus implements logic.FocusController.
func (f *FocusRecorder) Focus(itemID string) {
	f.IDs = append(f.IDs, itemID)
}

// Clock is a manually advanced clock for timestamp-window logic.
type Clock struct {
	now time.Time
}

// NewClock starts a clock at a fixed instant.
func NewClock() *Clock {
	return &Clock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the current instant.
func (c *Clock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward.
func (c *Clock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
