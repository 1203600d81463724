// internal/event/event.go
package event

// EventType names what happened.
type EventType string

// Event is one notification. Data depends on Type, see types.go.
type Event struct {
	Type EventType
	Data interface{}
}

// Listener receives dispatched events.
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Dispatcher fans events out to the listeners subscribed to their type.
// A nil *Dispatcher drops everything.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe registers listener for each of the given types.
func (d *Dispatcher) Subscribe(listener Listener, types ...EventType) {
	for _, t := range types {
		d.listeners[t] = append(d.listeners[t], listener)
	}
}

// Unsubscribe removes listener from eventType. ListenerFunc values are not
// comparable and panic here; drop them with Reset.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if listeners, exists := d.listeners[eventType]; exists {
		for i, l := range listeners {
			if l == listener {
				d.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
				break
			}
		}
	}
}

// Reset drops every listener of eventType.
func (d *Dispatcher) Reset(eventType EventType) {
	delete(d.listeners, eventType)
}

// Dispatch calls the listeners of event.Type in subscription order.
func (d *Dispatcher) Dispatch(event Event) {
	if d == nil {
		return
	}
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}
