package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/wetland/storefront-service/internal/entities"
	"github.com/wetland/storefront-service/internal/shipping"
	"github.com/wetland/storefront-service/pkg/trm"
	"github.com/wetland/storefront-service/pkg/utils"
)

type OrderRepo interface {
	NextOrderID(ctx context.Context) (int64, error)
	SaveOrder(ctx context.Context, s entities.Snapshot) error
	SaveOrderProducts(ctx context.Context, orderID int64, products []string) error
	GetOrderByID(ctx context.Context, orderID int64) (entities.Snapshot, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status string) error
	UpdateShippingCost(ctx context.Context, orderID int64, cost float64) error
}

// ShippingChoice names a strategy and its inputs.
type ShippingChoice struct {
	Method     string
	WeightKg   float64
	DistanceKm float64
}

type CreateOrderInput struct {
	CustomerID string
	Items      []entities.LineItem
	Shipping   ShippingChoice
}

var persistRetry = utils.RetryConfig{
	InitialDelay: 100 * time.Millisecond,
	MaxAttempts:  5,
	Multiplier:   2,
}

// orderService owns the live order graph. Orders are mutated in memory (the
// entity carries its own lock) and written through to the repo, which acts
// as the snapshot collaborator.
type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	publisher entities.Publisher

	mu     sync.RWMutex
	orders map[int64]*entities.Order
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, repo OrderRepo, publisher entities.Publisher) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		publisher: publisher,
		orders:    make(map[int64]*entities.Order),
	}
}

// CreateOrder stages an order through the builder: allocated id, one line
// per unit, shipping cost from the chosen strategy. The built order is
// registered in the live graph and its snapshot persisted transactionally.
func (s *orderService) CreateOrder(ctx context.Context, in CreateOrderInput) (*entities.Order, error) {
	id, err := s.repo.NextOrderID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate order id: %w", err)
	}

	cost, err := s.QuoteShipping(in.Shipping)
	if err != nil {
		return nil, err
	}

	builder := entities.NewOrderBuilder(s.publisher).SetID(id)
	for _, item := range in.Items {
		builder.AddProduct(item.Name, item.Price)
	}
	order, err := builder.ApplyShipping(cost).Build()
	if err != nil {
		return nil, err
	}

	if in.CustomerID != "" {
		if err := order.AssignOwner(in.CustomerID); err != nil {
			return nil, err
		}
	}

	snap := order.Snapshot()
	err = utils.Retry(persistRetry, func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			if err := s.repo.SaveOrder(ctx, snap); err != nil {
				return err
			}
			return s.repo.SaveOrderProducts(ctx, snap.ID, snap.Products)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}

	s.mu.Lock()
	s.orders[order.ID()] = order
	s.mu.Unlock()

	ordersCreated.Inc()
	s.logger.Info("order created",
		slog.Int64("order_id", order.ID()),
		slog.Float64("total_price", order.TotalPrice()),
	)
	return order, nil
}

// GetOrder returns the live order, rehydrating it from the snapshot store
// on a miss.
func (s *orderService) GetOrder(ctx context.Context, orderID int64) (*entities.Order, error) {
	s.mu.RLock()
	order, ok := s.orders[orderID]
	s.mu.RUnlock()
	if ok {
		return order, nil
	}

	var snap entities.Snapshot
	err := utils.Retry(persistRetry, func() error {
		var err error
		snap, err = s.repo.GetOrderByID(ctx, orderID)
		return err
	}, entities.ErrOrderNotFound)
	if err != nil {
		return nil, err
	}

	restored, err := entities.Restore(s.publisher, snap)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.orders[orderID]; ok {
		// Lost the race to another rehydration; keep the first.
		return existing, nil
	}
	s.orders[orderID] = restored
	return restored, nil
}

// AdvanceOrder moves the order one step along its lifecycle. The entity
// emits the event; the new status is written through afterwards. A
// delivered order advances to nothing and touches nothing.
func (s *orderService) AdvanceOrder(ctx context.Context, orderID int64) (entities.Status, error) {
	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return "", err
	}

	status, changed := order.Advance()
	if !changed {
		return status, nil
	}

	ordersAdvanced.WithLabelValues(string(status)).Inc()
	s.logger.Info("order advanced",
		slog.Int64("order_id", orderID),
		slog.String("status", string(status)),
	)

	err = utils.Retry(persistRetry, func() error {
		return s.repo.UpdateOrderStatus(ctx, orderID, string(status))
	})
	if err != nil {
		return status, fmt.Errorf("failed to persist status: %w", err)
	}
	return status, nil
}

// ChangeShipping recomputes the shipping cost with another strategy. Only
// pending orders may change it.
func (s *orderService) ChangeShipping(ctx context.Context, orderID int64, choice ShippingChoice) (float64, error) {
	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return 0, err
	}

	cost, err := s.QuoteShipping(choice)
	if err != nil {
		return 0, err
	}

	if err := order.SetShippingCost(cost); err != nil {
		return 0, err
	}

	err = utils.Retry(persistRetry, func() error {
		return s.repo.UpdateShippingCost(ctx, orderID, cost)
	})
	if err != nil {
		return cost, fmt.Errorf("failed to persist shipping cost: %w", err)
	}

	s.logger.Info("shipping changed",
		slog.Int64("order_id", orderID),
		slog.String("method", choice.Method),
		slog.Float64("cost", cost),
	)
	return cost, nil
}

// QuoteShipping prices a choice without touching any order.
func (s *orderService) QuoteShipping(choice ShippingChoice) (float64, error) {
	strategy, err := shipping.ForMethod(choice.Method)
	if err != nil {
		return 0, err
	}
	return shipping.NewQuoter(strategy).ExecuteCalculation(choice.WeightKg, choice.DistanceKm)
}
