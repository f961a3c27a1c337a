// Package eventbus provides a synchronous, name-keyed publish/subscribe
// registry. Handlers for an event run in registration order on the
// emitting goroutine's stack; a panicking handler is isolated so the
// remaining handlers still run.
package eventbus

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler receives the positional arguments passed to Emit.
type Handler func(args ...any)

// Subscription identifies a single registered handler so it can later be
// removed with Off. The zero Subscription is invalid.
type Subscription struct {
	event string
	id    uuid.UUID
}

// Event returns the event name the subscription is registered under.
func (s Subscription) Event() string { return s.event }

type entry struct {
	id uuid.UUID
	fn Handler
}

// Bus is a synchronous event registry. All methods are safe for
// concurrent use. Handlers are never deduplicated and there is no bound
// on the number of subscribers per event.
type Bus struct {
	logger *zap.Logger

	mu       sync.Mutex
	handlers map[string][]entry
}

// New creates an empty Bus. Handler panics are reported to logger; a nil
// logger discards them.
func New(logger *zap.Logger) *Bus {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bus{
		logger:   logger,
		handlers: make(map[string][]entry),
	}
}

// On appends fn to the handler list for event, creating the list if this
// is the first subscription for that name.
//
// Precondition: fn must be non-nil.
// Postcondition: Returns a Subscription accepted by Off.
func (b *Bus) On(event string, fn Handler) Subscription {
	sub := Subscription{event: event, id: uuid.New()}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[event] = append(b.handlers[event], entry{id: sub.id, fn: fn})
	return sub
}

// Off removes the handler identified by sub. Removing a subscription that
// was never registered, or was already removed, is a no-op.
func (b *Bus) Off(sub Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	entries := b.handlers[sub.event]
	for i, e := range entries {
		if e.id == sub.id {
			b.handlers[sub.event] = append(entries[:i], entries[i+1:]...)
			break
		}
	}
	if len(b.handlers[sub.event]) == 0 {
		delete(b.handlers, sub.event)
	}
}

// Emit invokes every handler registered for event, in registration order,
// synchronously on the calling goroutine, passing args positionally. If
// event has no subscribers, Emit is a no-op. A handler that panics does
// not prevent the handlers after it from running.
func (b *Bus) Emit(event string, args ...any) {
	b.mu.Lock()
	entries := b.handlers[event]
	// Snapshot so handlers may subscribe or unsubscribe mid-emit without
	// affecting this dispatch.
	snapshot := make([]entry, len(entries))
	copy(snapshot, entries)
	b.mu.Unlock()

	for _, e := range snapshot {
		b.invoke(event, e, args)
	}
}

// SubscriberCount returns the number of handlers registered for event.
func (b *Bus) SubscriberCount(event string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.handlers[event])
}

func (b *Bus) invoke(event string, e entry, args []any) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event handler panicked",
				zap.String("event", event),
				zap.Any("panic", r),
			)
		}
	}()
	e.fn(args...)
}
