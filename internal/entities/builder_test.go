package entities_test

import (
	"testing"

	"github.com/wetland/storefront-service/internal/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderBuilder_Build(t *testing.T) {
	pub := &recordingPublisher{}

	order, err := entities.NewOrderBuilder(pub).
		SetID(42).
		AddProduct("Keyboard", 120.0).
		AddProduct("Keyboard", 120.0).
		AddProduct("Cable", 9.5).
		ApplyShipping(7.0).
		Build()
	require.NoError(t, err)

	assert.Equal(t, int64(42), order.ID())
	assert.Equal(t, []string{"Keyboard", "Keyboard", "Cable"}, order.Products())
	assert.InDelta(t, 249.5, order.ProductsTotal(), 1e-9)
	assert.InDelta(t, 256.5, order.TotalPrice(), 1e-9)
	assert.Equal(t, entities.StatusPending, order.Status())

	require.Len(t, pub.events, 1)
	assert.Equal(t, entities.EventOrderCreated, pub.events[0].event)
	assert.Equal(t, int64(42), pub.events[0].payload.OrderID)
	assert.Equal(t, "Pending", pub.events[0].payload.Status)
}

func TestOrderBuilder_Validation(t *testing.T) {
	t.Run("missing id", func(t *testing.T) {
		pub := &recordingPublisher{}
		_, err := entities.NewOrderBuilder(pub).
			AddProduct("Book", 10.0).
			Build()
		assert.ErrorIs(t, err, entities.ErrMissingOrderID)
		assert.Empty(t, pub.events)
	})

	t.Run("no products", func(t *testing.T) {
		pub := &recordingPublisher{}
		_, err := entities.NewOrderBuilder(pub).
			SetID(1).
			Build()
		assert.ErrorIs(t, err, entities.ErrNoProducts)
		assert.Empty(t, pub.events)
	})
}

func TestOrderBuilder_LastWriteWins(t *testing.T) {
	pub := &recordingPublisher{}

	order, err := entities.NewOrderBuilder(pub).
		SetID(1).
		SetID(2).
		AddProduct("Book", 10.0).
		ApplyShipping(20.0).
		ApplyShipping(5.0).
		Build()
	require.NoError(t, err)

	assert.Equal(t, int64(2), order.ID())
	assert.InDelta(t, 5.0, order.ShippingCost(), 1e-9)
}

func TestOrderBuilder_ReuseAfterBuildPanics(t *testing.T) {
	pub := &recordingPublisher{}
	builder := entities.NewOrderBuilder(pub).
		SetID(1).
		AddProduct("Book", 10.0)

	_, err := builder.Build()
	require.NoError(t, err)

	assert.Panics(t, func() { builder.AddProduct("Mouse", 5.0) })
	assert.Panics(t, func() { builder.SetID(9) })
	assert.Panics(t, func() { _, _ = builder.Build() })

	// A failed Build does not consume the builder.
	partial := entities.NewOrderBuilder(pub).AddProduct("Book", 10.0)
	_, err = partial.Build()
	require.ErrorIs(t, err, entities.ErrMissingOrderID)

	order, err := partial.SetID(3).Build()
	require.NoError(t, err)
	assert.Equal(t, int64(3), order.ID())
}
