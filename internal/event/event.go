// internal/event/event.go
package event

import "slices"

// EventType — тип события
type EventType string

// Event — событие с необязательными данными
type Event struct {
	Type EventType
	Data interface{}
}

// Listener — подписчик на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Dispatcher delivers events synchronously, in subscription order.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe removes the first registration of listener. Listeners must be comparable.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners := d.listeners[eventType]
	if i := slices.Index(listeners, listener); i >= 0 {
		d.listeners[eventType] = slices.Delete(listeners, i, i+1)
	}
}

func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}
