package entities

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/wetland/storefront-service/internal/events"
)

// Lifecycle event names. The payload always carries the order id and the
// status label the order holds after the event.
const (
	EventOrderCreated       = "order_created"
	EventOrderStatusChanged = "order_status_changed"
)

// Publisher is the outbound port for lifecycle events. The event bus
// implements it; entities hold it so that a status change and its event
// can never be separated.
type Publisher interface {
	Publish(event string, payload events.Payload)
}

// Status is the lifecycle label of an order.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusPaid      Status = "Paid"
	StatusShipped   Status = "Shipped"
	StatusDelivered Status = "Delivered"
)

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrOrderNotPending = errors.New("order is no longer pending")
	ErrOwnerAlreadySet = errors.New("order owner already assigned")
	ErrUnknownStatus   = errors.New("unknown order status")
)

// nextStatus is the whole state machine: a strictly linear walk
// Pending -> Paid -> Shipped -> Delivered. Delivered is terminal, ok is
// false and the caller must neither swap state nor emit an event.
func nextStatus(s Status) (Status, bool) {
	switch s {
	case StatusPending:
		return StatusPaid, true
	case StatusPaid:
		return StatusShipped, true
	case StatusShipped:
		return StatusDelivered, true
	default:
		return s, false
	}
}

// ParseStatus maps a persisted label back onto the state machine.
func ParseStatus(label string) (Status, error) {
	switch Status(label) {
	case StatusPending, StatusPaid, StatusShipped, StatusDelivered:
		return Status(label), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, label)
	}
}

// Order is the aggregate built by OrderBuilder. Identity, product lines and
// the products total are fixed at build time; only the shipping cost (while
// pending) and the owner (once) may change afterwards. A per-order mutex
// serializes all mutating operations.
type Order struct {
	mu        sync.Mutex
	id        int64
	products  []string
	total     float64
	shipping  float64
	status    Status
	ownerID   string
	createdAt time.Time
	publisher Publisher
}

func (o *Order) ID() int64 { return o.id }

// Products returns the product names in the order they were added, one
// entry per unit purchased.
func (o *Order) Products() []string {
	out := make([]string, len(o.products))
	copy(out, o.products)
	return out
}

func (o *Order) ProductsTotal() float64 { return o.total }

func (o *Order) ShippingCost() float64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.shipping
}

// TotalPrice is always derived, never stored.
func (o *Order) TotalPrice() float64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.total + o.shipping
}

func (o *Order) Status() Status {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.status
}

func (o *Order) OwnerID() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.ownerID
}

func (o *Order) CreatedAt() time.Time { return o.createdAt }

// AssignOwner associates the actor who placed the order. It may be set
// exactly once; the value is opaque to the core.
func (o *Order) AssignOwner(ownerID string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.ownerID != "" {
		return ErrOwnerAlreadySet
	}
	o.ownerID = ownerID
	return nil
}

// SetShippingCost replaces the shipping cost component, e.g. when the
// customer switches shipping method. Allowed only while the order is
// still pending.
func (o *Order) SetShippingCost(cost float64) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.status != StatusPending {
		return ErrOrderNotPending
	}
	o.shipping = cost
	return nil
}

// Advance moves the order to its next lifecycle status and emits exactly
// one order_status_changed event carrying the new label. Advancing a
// delivered order is a deliberate no-op: no state change, no event. The
// status swap is committed before listeners run, so a slow or failing
// listener can never roll it back.
func (o *Order) Advance() (Status, bool) {
	o.mu.Lock()
	next, ok := nextStatus(o.status)
	if ok {
		o.status = next
	}
	o.mu.Unlock()

	if ok {
		o.publisher.Publish(EventOrderStatusChanged, events.Payload{
			OrderID: o.id,
			Status:  string(next),
		})
	}
	return next, ok
}

// Snapshot is the persistence view of an order: plain fields an external
// collaborator can serialize. Restore rehydrates an Order from one.
type Snapshot struct {
	ID            int64
	Products      []string
	ProductsTotal float64
	ShippingCost  float64
	Status        string
	OwnerID       string
	CreatedAt     time.Time
}

func (o *Order) Snapshot() Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	return Snapshot{
		ID:            o.id,
		Products:      append([]string(nil), o.products...),
		ProductsTotal: o.total,
		ShippingCost:  o.shipping,
		Status:        string(o.status),
		OwnerID:       o.ownerID,
		CreatedAt:     o.createdAt,
	}
}

// Restore rebuilds an Order from a persisted snapshot, re-deriving the
// state machine position from the stored status label. No creation event
// is emitted: the order already existed.
func Restore(publisher Publisher, s Snapshot) (*Order, error) {
	status, err := ParseStatus(s.Status)
	if err != nil {
		return nil, err
	}
	return &Order{
		id:        s.ID,
		products:  append([]string(nil), s.Products...),
		total:     s.ProductsTotal,
		shipping:  s.ShippingCost,
		status:    status,
		ownerID:   s.OwnerID,
		createdAt: s.CreatedAt,
		publisher: publisher,
	}, nil
}

func (s Snapshot) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *Snapshot) Unmarshal(data []byte) error {
	return gob.NewDecoder(bytes.NewBuffer(data)).Decode(s)
}
