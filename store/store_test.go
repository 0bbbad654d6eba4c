package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counterState struct {
	Count int
	Label string
}

func TestSetReplacesWholesale(t *testing.T) {
	s := New(counterState{Count: 1, Label: "a"})

	s.Set(counterState{Count: 2})

	assert.Equal(t, 2, s.Get().Count)
	assert.Equal(t, "", s.Get().Label, "Set replaces the whole snapshot")
}

func TestUpdatePreservesOtherFields(t *testing.T) {
	s := New(counterState{Count: 1, Label: "a"})

	s.Update(func(prev counterState) counterState {
		prev.Count++
		return prev
	})

	assert.Equal(t, 2, s.Get().Count)
	assert.Equal(t, "a", s.Get().Label)
}

func TestSubscribersReceiveCompleteSnapshotInOrder(t *testing.T) {
	s := New(counterState{})

	var order []string
	s.Subscribe(func(next counterState) {
		order = append(order, "first")
		assert.Equal(t, "hello", next.Label)
	})
	s.Subscribe(func(next counterState) {
		order = append(order, "second")
	})

	s.Set(counterState{Label: "hello"})

	require.Equal(t, []string{"first", "second"}, order)
}

func TestUnsubscribeIsIdempotent(t *testing.T) {
	s := New(counterState{})

	calls := 0
	unsub := s.Subscribe(func(counterState) { calls++ })

	s.Set(counterState{Count: 1})
	unsub()
	unsub() // second call is a no-op
	s.Set(counterState{Count: 2})

	assert.Equal(t, 1, calls)
}

func TestUnsubscribeDuringNotify(t *testing.T) {
	s := New(counterState{})

	var unsub func()
	first := 0
	second := 0
	unsub = s.Subscribe(func(counterState) {
		first++
		unsub()
	})
	s.Subscribe(func(counterState) { second++ })

	s.Set(counterState{Count: 1})
	s.Set(counterState{Count: 2})

	assert.Equal(t, 1, first, "listener removed itself after first notify")
	assert.Equal(t, 2, second, "remaining listener still notified both times")
}

func TestDerive(t *testing.T) {
	s := New(counterState{Count: 4})

	doubled := Derive(s, func(st counterState) int { return st.Count * 2 })
	assert.Equal(t, 8, doubled.Get())

	var seen []int
	unsub := doubled.Subscribe(func(v int) { seen = append(seen, v) })

	s.Update(func(prev counterState) counterState {
		prev.Count = 10
		return prev
	})
	assert.Equal(t, 20, doubled.Get())
	assert.Equal(t, []int{20}, seen)

	// Notifies even when the derived value is unchanged.
	s.Update(func(prev counterState) counterState {
		prev.Label = "touched"
		return prev
	})
	assert.Equal(t, []int{20, 20}, seen)

	unsub()
	s.Set(counterState{Count: 1})
	assert.Equal(t, []int{20, 20}, seen)
}
