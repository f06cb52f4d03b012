package entities

import (
	"errors"
	"time"

	"github.com/wetland/storefront-service/internal/events"
)

var (
	ErrMissingOrderID = errors.New("order id is required to build an order")
	ErrNoProducts     = errors.New("at least one product is required to build an order")
)

// LineItem is one (product name, price) pair contributed by a single
// AddProduct call.
type LineItem struct {
	Name  string
	Price float64
}

// OrderBuilder stages the construction of a single Order: an id, product
// lines and a shipping cost, assembled in any call order and validated at
// Build. Each AddProduct call updates the product list and the running
// total together, which is what keeps the two consistent for the lifetime
// of the built order.
//
// A builder is single-use. Build consumes it; touching a consumed builder
// is a programmer error and panics.
type OrderBuilder struct {
	publisher Publisher
	id        int64
	lines     []LineItem
	total     float64
	shipping  float64
	consumed  bool
}

func NewOrderBuilder(publisher Publisher) *OrderBuilder {
	return &OrderBuilder{publisher: publisher}
}

func (b *OrderBuilder) guard() {
	if b.consumed {
		panic("entities: OrderBuilder reused after Build")
	}
}

// SetID sets the pending order id. Last write wins; uniqueness is the
// caller's id allocator concern.
func (b *OrderBuilder) SetID(id int64) *OrderBuilder {
	b.guard()
	b.id = id
	return b
}

// AddProduct appends one line item, one entry per unit purchased.
func (b *OrderBuilder) AddProduct(name string, price float64) *OrderBuilder {
	b.guard()
	b.lines = append(b.lines, LineItem{Name: name, Price: price})
	b.total += price
	return b
}

// ApplyShipping sets the shipping cost component. It replaces any earlier
// value rather than accumulating.
func (b *OrderBuilder) ApplyShipping(cost float64) *OrderBuilder {
	b.guard()
	b.shipping = cost
	return b
}

// Build validates the staged data, consumes the builder and returns a
// pending Order, emitting a single order_created event.
func (b *OrderBuilder) Build() (*Order, error) {
	b.guard()
	if b.id <= 0 {
		return nil, ErrMissingOrderID
	}
	if len(b.lines) == 0 {
		return nil, ErrNoProducts
	}
	b.consumed = true

	products := make([]string, len(b.lines))
	for i, line := range b.lines {
		products[i] = line.Name
	}

	order := &Order{
		id:        b.id,
		products:  products,
		total:     b.total,
		shipping:  b.shipping,
		status:    StatusPending,
		createdAt: time.Now(),
		publisher: b.publisher,
	}

	b.publisher.Publish(EventOrderCreated, events.Payload{
		OrderID: order.id,
		Status:  string(order.status),
	})
	return order, nil
}
