package event

import (
	"reflect"
)

// Bus is a double-buffered event bus. Events emitted in frame N are
// delivered in frame N+1, in emission order, when the frame starts with
// SwapBuffers and DispatchAll.
//
// Events are routed by the type parameter they were emitted with, so an
// event emitted as an interface type reaches subscribers of that interface.
type Bus struct {
	front    []queued
	back     []queued
	handlers map[reflect.Type][]func(any)
}

type queued struct {
	typ reflect.Type
	ev  any
}

func NewBus() *Bus {
	return &Bus{
		front:    make([]queued, 0, 16),
		back:     make([]queued, 0, 16),
		handlers: make(map[reflect.Type][]func(any)),
	}
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Emit queues an event into the back buffer (delivered next frame).
func Emit[T any](b *Bus, event T) {
	b.back = append(b.back, queued{typ: typeOf[T](), ev: event})
}

// Subscribe registers a typed handler for events emitted as type T.
func Subscribe[T any](b *Bus, fn func(T)) {
	t := typeOf[T]()
	b.handlers[t] = append(b.handlers[t], func(ev any) { fn(ev.(T)) })
}

// SwapBuffers rotates back to front and clears the new back buffer.
func (b *Bus) SwapBuffers() {
	b.front, b.back = b.back, b.front
	clear(b.back)
	b.back = b.back[:0]
}

// DispatchAll delivers the front buffer to subscribed handlers. Events
// without a handler are dropped.
func (b *Bus) DispatchAll() {
	for _, q := range b.front {
		for _, h := range b.handlers[q.typ] {
			h(q.ev)
		}
	}
}

// Pending is the number of events waiting for the next frame.
func (b *Bus) Pending() int { return len(b.back) }

// Rewind undoes the current frame: events emitted since SwapBuffers are
// dropped and the front buffer is queued again for the next frame.
func (b *Bus) Rewind() {
	clear(b.back)
	b.back = append(b.back[:0], b.front...)
	clear(b.front)
	b.front = b.front[:0]
}

// Reset drops queued events but keeps handlers.
func (b *Bus) Reset() {
	clear(b.front)
	clear(b.back)
	b.front = b.front[:0]
	b.back = b.back[:0]
}
