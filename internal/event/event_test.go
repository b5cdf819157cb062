package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	events []Event
}

func (r *recorder) OnEvent(e Event) { r.events = append(r.events, e) }

func TestDispatchOnlyToSubscribedType(t *testing.T) {
	d := NewDispatcher()
	taps := &recorder{}
	changes := &recorder{}
	d.Subscribe(ViewTapped, taps)
	d.Subscribe(PercentChanged, changes)

	d.Dispatch(Event{Type: ViewTapped})
	d.Dispatch(Event{Type: PercentChanged, Data: float32(12.5)})
	d.Dispatch(Event{Type: PercentChanged, Data: float32(13)})

	assert.Len(t, taps.events, 1)
	assert.Len(t, changes.events, 2)
	assert.Equal(t, float32(13), changes.events[1].Data)
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(TransitionFinished, a)
	d.Subscribe(TransitionFinished, b)

	d.Unsubscribe(TransitionFinished, a)
	d.Dispatch(Event{Type: TransitionFinished})

	assert.Empty(t, a.events)
	assert.Len(t, b.events, 1)
}

func TestListenerFunc(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	d.Subscribe(TransitionStarted, ListenerFunc(func(Event) { calls++ }))

	d.Dispatch(Event{Type: TransitionStarted})
	d.Unsubscribe(TransitionStarted, &recorder{})
	d.Dispatch(Event{Type: TransitionStarted})

	assert.Equal(t, 2, calls)
}

func TestNilDispatcherIsNoop(t *testing.T) {
	var d *Dispatcher
	assert.NotPanics(t, func() { d.Dispatch(Event{Type: ViewTapped}) })
}
