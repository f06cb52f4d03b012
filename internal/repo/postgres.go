package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wetland/storefront-service/internal/entities"
	"github.com/wetland/storefront-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// NextOrderID allocates the next order id, keyed on the current order
// count. Uniqueness under concurrent creation is ultimately enforced by the
// orders primary key.
func (r *postgresRepo) NextOrderID(ctx context.Context) (int64, error) {
	query, args := r.qb.Select("count(*)").From("orders").MustSql()

	var count int64
	if err := r.getContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count + 1, nil
}

func (r *postgresRepo) SaveOrder(ctx context.Context, s entities.Snapshot) error {
	query, args := r.qb.Insert("orders").
		Columns("order_id", "customer_id", "products_total", "shipping_cost", "status", "created_at").
		Values(s.ID, nullString(s.OwnerID), s.ProductsTotal, s.ShippingCost, s.Status, s.CreatedAt).
		Suffix("ON CONFLICT (order_id) DO NOTHING").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

func (r *postgresRepo) SaveOrderProducts(ctx context.Context, orderID int64, products []string) error {
	if len(products) == 0 {
		return nil
	}

	q := r.qb.Insert("order_products").
		Columns("order_id", "position", "name").
		Suffix("ON CONFLICT (order_id, position) DO NOTHING")

	for i, name := range products {
		q = q.Values(orderID, i, name)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order products: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, orderID int64) (entities.Snapshot, error) {
	query, args := r.qb.Select(
		"order_id", "customer_id", "products_total", "shipping_cost", "status", "created_at").
		From("orders").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	var order orderRow
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Snapshot{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Snapshot{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select("order_id", "position", "name").
		From("order_products").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("position ASC").
		MustSql()

	var products []orderProductRow
	if err := r.selectContext(ctx, &products, query, args...); err != nil {
		return entities.Snapshot{}, fmt.Errorf("failed to get order products: %w", err)
	}

	return orderToSnapshot(order, products), nil
}

func (r *postgresRepo) UpdateOrderStatus(ctx context.Context, orderID int64, status string) error {
	query, args := r.qb.Update("orders").
		Set("status", status).
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	return nil
}

func (r *postgresRepo) UpdateShippingCost(ctx context.Context, orderID int64, cost float64) error {
	query, args := r.qb.Update("orders").
		Set("shipping_cost", cost).
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update shipping cost: %w", err)
	}
	return nil
}

func (r *postgresRepo) ListProducts(ctx context.Context) ([]entities.Product, error) {
	query, args := r.qb.Select("product_id", "name", "price", "weight_kg").
		From("products").
		OrderBy("product_id ASC").
		MustSql()

	var rows []productRow
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}

	products := make([]entities.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, productToEntity(row))
	}
	return products, nil
}

func (r *postgresRepo) GetProductByID(ctx context.Context, productID int64) (entities.Product, error) {
	query, args := r.qb.Select("product_id", "name", "price", "weight_kg").
		From("products").
		Where(sq.Eq{"product_id": productID}).
		MustSql()

	var row productRow
	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return productToEntity(row), nil
}

func (r *postgresRepo) SaveProduct(ctx context.Context, p entities.Product) (int64, error) {
	query, args := r.qb.Insert("products").
		Columns("name", "price", "weight_kg").
		Values(p.Name, p.Price, p.WeightKg).
		Suffix("RETURNING product_id").
		MustSql()

	var id int64
	if err := r.getContext(ctx, &id, query, args...); err != nil {
		return 0, fmt.Errorf("failed to save product: %w", err)
	}
	return id, nil
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
