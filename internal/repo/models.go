package repo

import (
	"database/sql"
	"time"

	"github.com/wetland/storefront-service/internal/entities"
)

type orderRow struct {
	OrderID       int64          `db:"order_id"`
	CustomerID    sql.NullString `db:"customer_id"`
	ProductsTotal float64        `db:"products_total"`
	ShippingCost  float64        `db:"shipping_cost"`
	Status        string         `db:"status"`
	CreatedAt     time.Time      `db:"created_at"`
}

type orderProductRow struct {
	OrderID  int64  `db:"order_id"`
	Position int    `db:"position"`
	Name     string `db:"name"`
}

type productRow struct {
	ProductID int64   `db:"product_id"`
	Name      string  `db:"name"`
	Price     float64 `db:"price"`
	WeightKg  float64 `db:"weight_kg"`
}

func orderToSnapshot(o orderRow, products []orderProductRow) entities.Snapshot {
	names := make([]string, len(products))
	for i, p := range products {
		names[i] = p.Name
	}
	return entities.Snapshot{
		ID:            o.OrderID,
		Products:      names,
		ProductsTotal: o.ProductsTotal,
		ShippingCost:  o.ShippingCost,
		Status:        o.Status,
		OwnerID:       nullStringToString(o.CustomerID),
		CreatedAt:     o.CreatedAt,
	}
}

func productToEntity(p productRow) entities.Product {
	return entities.Product{
		ID:       p.ProductID,
		Name:     p.Name,
		Price:    p.Price,
		WeightKg: p.WeightKg,
	}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
