package canvas

import (
	"encoding/json"
	"sync"
)

// EventVariant is a payload of an [Event].
type EventVariant interface {
	eventKind() SubscriptionKind
}

// ResizeEvent is sent when the terminal size changes.
type ResizeEvent struct {
	Width  uint32
	Height uint32
}

// ValueUpdatedEvent is sent when a watched value is created or updated.
type ValueUpdatedEvent struct {
	Label   string
	Discrim Discriminator
	New     json.RawMessage
	Old     json.RawMessage // Old is nil if the value didn't exist.
}

// ValueRemovedEvent is sent when a watched value is deleted.
type ValueRemovedEvent struct {
	Label   string
	Discrim Discriminator
}

// SubscribeValueChanges is a kind of value events, they are delivered on [Client.Watch].
const SubscribeValueChanges SubscriptionKind = "value_changes"

func (ResizeEvent) eventKind() SubscriptionKind       { return SubscribeScreenResize }
func (ValueUpdatedEvent) eventKind() SubscriptionKind { return SubscribeValueChanges }
func (ValueRemovedEvent) eventKind() SubscriptionKind { return SubscribeValueChanges }

// Event is a notification received from the host.
type Event struct {
	variant EventVariant
	once    sync.Once
	done    func(propagate bool)
}

// NewEvent creates an event. done is called once when the client finishes with it.
func NewEvent(v EventVariant, done func(propagate bool)) *Event {
	return &Event{variant: v, done: done}
}

// Variant returns the event payload.
func (e *Event) Variant() EventVariant {
	return e.variant
}

// Done reports the event is processed. If propagate is false, the event is handled
// exclusively and must not reach clients with a lower priority.
// Only the first call has effect.
func (e *Event) Done(propagate bool) {
	e.once.Do(func() {
		if e.done != nil {
			e.done(propagate)
		}
	})
}
