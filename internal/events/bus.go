package events

import (
	"github.com/kelindar/event"
)

// Bus wraps kelindar/event dispatcher for event broadcasting
type Bus struct {
	dispatcher *event.Dispatcher
}

// New creates a new event bus
func New() *Bus {
	return &Bus{
		dispatcher: event.NewDispatcher(),
	}
}

// Publish publishes an event to all subscribers
// Usage: bus.Publish(TextWrittenEvent{...})
func (b *Bus) Publish(ev Event) {
	if b == nil {
		return
	}
	switch e := ev.(type) {
	case ParamWrittenEvent:
		event.Publish(b.dispatcher, e)
	case TextWrittenEvent:
		event.Publish(b.dispatcher, e)
	case WriteFailedEvent:
		event.Publish(b.dispatcher, e)
	case DisplayClearedEvent:
		event.Publish(b.dispatcher, e)
	case LogEntryEvent:
		event.Publish(b.dispatcher, e)
	}
}

// Subscribe subscribes to events with a handler function.
// The handler type determines which events it receives.
// Returns an unsubscribe function.
// Usage: unsub := bus.Subscribe(func(e WriteFailedEvent) { ... })
func (b *Bus) Subscribe(handler any) func() {
	switch h := handler.(type) {
	case func(ParamWrittenEvent):
		return event.Subscribe(b.dispatcher, h)
	case func(TextWrittenEvent):
		return event.Subscribe(b.dispatcher, h)
	case func(WriteFailedEvent):
		return event.Subscribe(b.dispatcher, h)
	case func(DisplayClearedEvent):
		return event.Subscribe(b.dispatcher, h)
	case func(LogEntryEvent):
		return event.Subscribe(b.dispatcher, h)
	default:
		// Unknown handler types get a no-op unsubscribe
		return func() {}
	}
}
