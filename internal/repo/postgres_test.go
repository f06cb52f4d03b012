package repo_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/wetland/storefront-service/internal/entities"
	"github.com/wetland/storefront-service/internal/repo"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestNextOrderID(t *testing.T) {
	db, mock := newMockRepo(t)
	r := repo.NewPostgresRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM orders")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(41))

	id, err := r.NextOrderID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveOrder(t *testing.T) {
	db, mock := newMockRepo(t)
	r := repo.NewPostgresRepo(db)

	createdAt := time.Now()
	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO orders (order_id,customer_id,products_total,shipping_cost,status,created_at) "+
			"VALUES ($1,$2,$3,$4,$5,$6) ON CONFLICT (order_id) DO NOTHING")).
		WithArgs(int64(1), "customer-1", 249.90, 48.5, "Pending", createdAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := r.SaveOrder(context.Background(), entities.Snapshot{
		ID:            1,
		Products:      []string{"Book", "Mouse"},
		ProductsTotal: 249.90,
		ShippingCost:  48.5,
		Status:        "Pending",
		OwnerID:       "customer-1",
		CreatedAt:     createdAt,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveOrderProducts(t *testing.T) {
	db, mock := newMockRepo(t)
	r := repo.NewPostgresRepo(db)

	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO order_products (order_id,position,name) "+
			"VALUES ($1,$2,$3),($4,$5,$6) ON CONFLICT (order_id, position) DO NOTHING")).
		WithArgs(int64(1), 0, "Book", int64(1), 1, "Mouse").
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := r.SaveOrderProducts(context.Background(), 1, []string{"Book", "Mouse"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())

	// Nothing to insert, nothing to execute.
	require.NoError(t, r.SaveOrderProducts(context.Background(), 1, nil))
}

func TestGetOrderByID(t *testing.T) {
	db, mock := newMockRepo(t)
	r := repo.NewPostgresRepo(db)

	createdAt := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT order_id, customer_id, products_total, shipping_cost, status, created_at "+
			"FROM orders WHERE order_id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(
			[]string{"order_id", "customer_id", "products_total", "shipping_cost", "status", "created_at"}).
			AddRow(int64(1), "customer-1", 249.90, 48.5, "Paid", createdAt))

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT order_id, position, name FROM order_products WHERE order_id = $1 ORDER BY position ASC")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"order_id", "position", "name"}).
			AddRow(int64(1), 0, "Book").
			AddRow(int64(1), 1, "Mouse"))

	snap, err := r.GetOrderByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), snap.ID)
	assert.Equal(t, []string{"Book", "Mouse"}, snap.Products)
	assert.Equal(t, "Paid", snap.Status)
	assert.Equal(t, "customer-1", snap.OwnerID)
	assert.InDelta(t, 249.90, snap.ProductsTotal, 1e-9)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOrderByID_NotFound(t *testing.T) {
	db, mock := newMockRepo(t)
	r := repo.NewPostgresRepo(db)

	mock.ExpectQuery("SELECT .+ FROM orders").
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(
			[]string{"order_id", "customer_id", "products_total", "shipping_cost", "status", "created_at"}))

	_, err := r.GetOrderByID(context.Background(), 404)
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateOrderStatus(t *testing.T) {
	db, mock := newMockRepo(t)
	r := repo.NewPostgresRepo(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE orders SET status = $1 WHERE order_id = $2")).
		WithArgs("Shipped", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, r.UpdateOrderStatus(context.Background(), 1, "Shipped"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateShippingCost(t *testing.T) {
	db, mock := newMockRepo(t)
	r := repo.NewPostgresRepo(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE orders SET shipping_cost = $1 WHERE order_id = $2")).
		WithArgs(15.0, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, r.UpdateShippingCost(context.Background(), 1, 15.0))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListProducts(t *testing.T) {
	db, mock := newMockRepo(t)
	r := repo.NewPostgresRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT product_id, name, price, weight_kg FROM products ORDER BY product_id ASC")).
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "name", "price", "weight_kg"}).
			AddRow(int64(1), "Book", 99.90, 0.4).
			AddRow(int64(2), "Mouse", 150.00, 0.1))

	products, err := r.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, entities.Product{ID: 1, Name: "Book", Price: 99.90, WeightKg: 0.4}, products[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProductByID_NotFound(t *testing.T) {
	db, mock := newMockRepo(t)
	r := repo.NewPostgresRepo(db)

	mock.ExpectQuery("SELECT .+ FROM products").
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "name", "price", "weight_kg"}))

	_, err := r.GetProductByID(context.Background(), 404)
	assert.ErrorIs(t, err, entities.ErrProductNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveProduct(t *testing.T) {
	db, mock := newMockRepo(t)
	r := repo.NewPostgresRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO products (name,price,weight_kg) VALUES ($1,$2,$3) RETURNING product_id")).
		WithArgs("Monitor", 899.0, 4.2).
		WillReturnRows(sqlmock.NewRows([]string{"product_id"}).AddRow(int64(7)))

	id, err := r.SaveProduct(context.Background(), entities.Product{
		Name:     "Monitor",
		Price:    899.0,
		WeightKg: 4.2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}
