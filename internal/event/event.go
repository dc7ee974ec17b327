// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Any subscribes a listener to every event type.
const Any EventType = "*"

// Event is one session notification. Data holds the payload struct for the
// type (see payload.go) or nil.
type Event struct {
	Type EventType
	Data interface{}
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher fans session notifications out to listeners in subscription
// order, typed listeners before Any listeners.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: make(map[EventType][]Listener)}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll is Subscribe(Any, listener). Presentation bridges use it to
// forward the whole stream.
func (d *Dispatcher) SubscribeAll(listener Listener) {
	d.Subscribe(Any, listener)
}

// Unsubscribe removes the first registration of listener for eventType.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if l == listener {
			d.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)
			return
		}
	}
}

func (d *Dispatcher) UnsubscribeAll(listener Listener) {
	d.Unsubscribe(Any, listener)
}

// Dispatch delivers synchronously. A listener subscribed during dispatch
// sees the next event, not this one.
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
	if event.Type == Any {
		return
	}
	for _, listener := range d.listeners[Any] {
		listener.OnEvent(event)
	}
}
