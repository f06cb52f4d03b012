package events

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Payload is the record carried by every lifecycle event.
type Payload struct {
	EventID    string    `json:"event_id"`
	OrderID    int64     `json:"order_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Listener reacts to a named event. Errors returned from Handle are
// contained at the bus boundary and never reach the publisher.
type Listener interface {
	Name() string
	Handle(event string, payload Payload) error
}

// ListenerFunc adapts a plain function to the Listener interface. Use a
// pointer so registrations stay comparable for Unsubscribe.
type ListenerFunc struct {
	ListenerName string
	Fn           func(event string, payload Payload) error
}

func (l *ListenerFunc) Name() string { return l.ListenerName }

func (l *ListenerFunc) Handle(event string, payload Payload) error {
	return l.Fn(event, payload)
}

// Bus fans named events out to subscribed listeners, in subscription
// order. It is created once at startup and lives for the process lifetime.
type Bus struct {
	logger *slog.Logger

	mu        sync.RWMutex
	listeners map[string][]Listener
}

func NewBus(logger *slog.Logger) *Bus {
	return &Bus{
		logger:    logger.With(slog.String("component", "event_bus")),
		listeners: make(map[string][]Listener),
	}
}

// Subscribe registers the listener under the named event. A listener may be
// registered under several events; the notification order is the
// subscription order.
func (b *Bus) Subscribe(event string, l Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners[event] = append(b.listeners[event], l)
}

// Unsubscribe removes one registration. It is a no-op if the listener is
// not subscribed to the event.
func (b *Bus) Unsubscribe(event string, l Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	subs := b.listeners[event]
	for i, s := range subs {
		if s == l {
			b.listeners[event] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Publish synchronously invokes every listener subscribed to the event with
// the same payload. A failing or panicking listener is logged and skipped;
// it never stops the remaining listeners and never propagates back to the
// publisher. Publishing with no listeners is a no-op.
func (b *Bus) Publish(event string, payload Payload) {
	if payload.EventID == "" {
		payload.EventID = uuid.NewString()
	}
	if payload.OccurredAt.IsZero() {
		payload.OccurredAt = time.Now()
	}

	b.mu.RLock()
	subs := b.listeners[event]
	b.mu.RUnlock()

	eventsPublished.WithLabelValues(event).Inc()

	for _, l := range subs {
		b.dispatch(l, event, payload)
	}
}

func (b *Bus) dispatch(l Listener, event string, payload Payload) {
	defer func() {
		if r := recover(); r != nil {
			listenerFailures.WithLabelValues(event, l.Name()).Inc()
			b.logger.Error("event listener panicked",
				slog.String("event", event),
				slog.String("listener", l.Name()),
				slog.Any("panic", r),
			)
		}
	}()

	if err := l.Handle(event, payload); err != nil {
		listenerFailures.WithLabelValues(event, l.Name()).Inc()
		b.logger.Error("event listener failed",
			slog.String("event", event),
			slog.String("listener", l.Name()),
			slog.Int64("order_id", payload.OrderID),
			slog.Any("error", err),
		)
	}
}
