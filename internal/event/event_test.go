package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	name string
	log  *[]string
}

func (r *recorder) OnEvent(e Event) { *r.log = append(*r.log, r.name+":"+string(e.Type)) }

func TestDispatchOrder(t *testing.T) {
	var got []string
	d := NewDispatcher()
	a := &recorder{"a", &got}
	b := &recorder{"b", &got}
	d.Subscribe(InvaderHit, a)
	d.Subscribe(InvaderHit, b)
	d.Subscribe(GameStarted, b)

	d.Dispatch(Event{Type: InvaderHit})
	d.Dispatch(Event{Type: GameStarted})
	d.Dispatch(Event{Type: GamePaused})

	assert.Equal(t, []string{"a:InvaderHit", "b:InvaderHit", "b:GameStarted"}, got)
}

func TestUnsubscribe(t *testing.T) {
	var got []string
	d := NewDispatcher()
	a := &recorder{"a", &got}
	b := &recorder{"b", &got}
	d.Subscribe(InvaderHit, a)
	d.Subscribe(InvaderHit, b)
	d.Unsubscribe(InvaderHit, a)
	d.Unsubscribe(GameStarted, a)

	d.Dispatch(Event{Type: InvaderHit, Data: InvaderHitData{Points: 1}})
	assert.Equal(t, []string{"b:InvaderHit"}, got)
}

func TestListenerFunc(t *testing.T) {
	d := NewDispatcher()
	var payload InvaderHitData
	d.Subscribe(InvaderHit, ListenerFunc(func(e Event) {
		payload = e.Data.(InvaderHitData)
	}))
	d.Dispatch(Event{Type: InvaderHit, Data: InvaderHitData{Points: 4, Removed: 2}})
	assert.Equal(t, 4, payload.Points)
	assert.Equal(t, 2, payload.Removed)
}
