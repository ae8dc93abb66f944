package event

import "reflect"

// Listener is implemented by anything that wants events of type E.
type Listener[E any] interface {
	OnEvent(E)
}

// Handle identifies one subscription; pass it to Unsubscribe.
type Handle struct {
	typ reflect.Type
	seq uint64
}

type subscription struct {
	seq uint64
	fn  any // func(E) for the E keyed in Bus.handlers
}

// Bus is a synchronous typed event bus. Emit calls every handler registered
// for the event's type, in registration order, before it returns; nothing is
// queued between ticks. Not safe for concurrent use.
type Bus struct {
	handlers map[reflect.Type][]subscription
	seq      uint64
}

func NewBus() *Bus {
	return &Bus{
		handlers: make(map[reflect.Type][]subscription),
	}
}

// Subscribe registers fn for events of type E.
func Subscribe[E any](b *Bus, fn func(E)) Handle {
	t := reflect.TypeFor[E]()
	b.seq++
	b.handlers[t] = append(b.handlers[t], subscription{seq: b.seq, fn: fn})
	return Handle{typ: t, seq: b.seq}
}

// Listen registers l for events of type E.
func Listen[E any](b *Bus, l Listener[E]) Handle {
	return Subscribe[E](b, l.OnEvent)
}

// Unsubscribe removes the subscription behind h. Unknown handles are ignored.
func (b *Bus) Unsubscribe(h Handle) {
	subs := b.handlers[h.typ]
	for i, s := range subs {
		if s.seq != h.seq {
			continue
		}
		// Copy instead of shifting in place: an Emit in progress may hold subs.
		next := make([]subscription, 0, len(subs)-1)
		next = append(next, subs[:i]...)
		next = append(next, subs[i+1:]...)
		if len(next) == 0 {
			delete(b.handlers, h.typ)
		} else {
			b.handlers[h.typ] = next
		}
		return
	}
}

// Emit delivers ev to the handlers subscribed to E at the time of the call.
func Emit[E any](b *Bus, ev E) {
	subs := b.handlers[reflect.TypeFor[E]()]
	for _, s := range subs {
		s.fn.(func(E))(ev)
	}
}

// Listeners returns how many handlers are registered for E.
func Listeners[E any](b *Bus) int {
	return len(b.handlers[reflect.TypeFor[E]()])
}

// Reset drops every subscription.
func (b *Bus) Reset() {
	clear(b.handlers)
}
