package events_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/wetland/storefront-service/internal/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBus() *events.Bus {
	return events.NewBus(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func listener(name string, calls *[]string) *events.ListenerFunc {
	return &events.ListenerFunc{
		ListenerName: name,
		Fn: func(event string, payload events.Payload) error {
			*calls = append(*calls, name)
			return nil
		},
	}
}

func TestBus_PublishInSubscriptionOrder(t *testing.T) {
	bus := newBus()

	var calls []string
	bus.Subscribe("order_created", listener("first", &calls))
	bus.Subscribe("order_created", listener("second", &calls))
	bus.Subscribe("order_created", listener("third", &calls))
	bus.Subscribe("order_status_changed", listener("other", &calls))

	bus.Publish("order_created", events.Payload{OrderID: 1, Status: "Pending"})

	assert.Equal(t, []string{"first", "second", "third"}, calls)
}

func TestBus_PublishStampsPayload(t *testing.T) {
	bus := newBus()

	var got events.Payload
	bus.Subscribe("order_created", &events.ListenerFunc{
		ListenerName: "capture",
		Fn: func(event string, payload events.Payload) error {
			got = payload
			return nil
		},
	})

	bus.Publish("order_created", events.Payload{OrderID: 9, Status: "Pending"})

	assert.Equal(t, int64(9), got.OrderID)
	assert.NotEmpty(t, got.EventID)
	assert.False(t, got.OccurredAt.IsZero())
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := newBus()

	var calls []string
	first := listener("first", &calls)
	second := listener("second", &calls)
	bus.Subscribe("order_created", first)
	bus.Subscribe("order_created", second)

	bus.Unsubscribe("order_created", first)
	bus.Publish("order_created", events.Payload{OrderID: 1})

	assert.Equal(t, []string{"second"}, calls)

	// Removing a listener that is not subscribed changes nothing.
	bus.Unsubscribe("order_created", first)
	bus.Unsubscribe("unknown_event", second)
	bus.Publish("order_created", events.Payload{OrderID: 2})

	assert.Equal(t, []string{"second", "second"}, calls)
}

func TestBus_PublishWithoutListeners(t *testing.T) {
	bus := newBus()
	require.NotPanics(t, func() {
		bus.Publish("order_created", events.Payload{OrderID: 1})
	})
}

func TestBus_ListenerFailuresAreContained(t *testing.T) {
	bus := newBus()

	var calls []string
	bus.Subscribe("order_status_changed", &events.ListenerFunc{
		ListenerName: "panicky",
		Fn: func(event string, payload events.Payload) error {
			panic("boom")
		},
	})
	bus.Subscribe("order_status_changed", &events.ListenerFunc{
		ListenerName: "broken",
		Fn: func(event string, payload events.Payload) error {
			return errors.New("smtp unreachable")
		},
	})
	bus.Subscribe("order_status_changed", listener("healthy", &calls))

	require.NotPanics(t, func() {
		bus.Publish("order_status_changed", events.Payload{OrderID: 3, Status: "Paid"})
	})

	// The failing listeners never stop the rest of the chain.
	assert.Equal(t, []string{"healthy"}, calls)
}
