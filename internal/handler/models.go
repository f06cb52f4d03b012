package handler

import (
	"time"

	"github.com/wetland/storefront-service/internal/entities"
)

// CreateOrderRequest carries the cart tally and the shipping choice. Each
// cart line is expanded into one builder line item per unit via the catalog.
type CreateOrderRequest struct {
	CustomerID string          `json:"customer_id,omitempty"`
	Items      []CartLine      `json:"items" validate:"required,min=1,dive"`
	Shipping   ShippingRequest `json:"shipping" validate:"required"`
}

// CartLine is one catalog product with a purchase quantity.
type CartLine struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,gte=1"`
}

// ShippingRequest names a strategy and its inputs. WeightKg may be omitted
// on order creation, in which case it is derived from catalog weights.
type ShippingRequest struct {
	Method     string  `json:"method" validate:"required"`
	WeightKg   float64 `json:"weight_kg,omitempty" validate:"gte=0"`
	DistanceKm float64 `json:"distance_km" validate:"gte=0"`
}

// Order represents an order
type Order struct {
	OrderID       int64     `json:"order_id"`
	CustomerID    string    `json:"customer_id,omitempty"`
	Products      []string  `json:"products"`
	ProductsTotal float64   `json:"products_total"`
	ShippingCost  float64   `json:"shipping_cost"`
	TotalPrice    float64   `json:"total_price"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// AdvanceResponse is the status after an advance command
type AdvanceResponse struct {
	OrderID int64  `json:"order_id"`
	Status  string `json:"status"`
}

// ShippingUpdateResponse reflects a changed shipping method
type ShippingUpdateResponse struct {
	OrderID      int64   `json:"order_id"`
	ShippingCost float64 `json:"shipping_cost"`
	TotalPrice   float64 `json:"total_price"`
}

// ShippingQuote is a priced shipping choice
type ShippingQuote struct {
	Method     string  `json:"method"`
	WeightKg   float64 `json:"weight_kg"`
	DistanceKm float64 `json:"distance_km"`
	Cost       float64 `json:"cost"`
}

// Permissions lists the capability set of a role
type Permissions struct {
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

// ProductRequest is a new catalog entry
type ProductRequest struct {
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
	WeightKg float64 `json:"weight_kg" validate:"gte=0"`
}

// Product is a catalog entry
type Product struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	WeightKg  float64 `json:"weight_kg"`
}

func OrderEntityToJSON(o *entities.Order) Order {
	return Order{
		OrderID:       o.ID(),
		CustomerID:    o.OwnerID(),
		Products:      o.Products(),
		ProductsTotal: o.ProductsTotal(),
		ShippingCost:  o.ShippingCost(),
		TotalPrice:    o.TotalPrice(),
		Status:        string(o.Status()),
		CreatedAt:     o.CreatedAt(),
	}
}

func ProductEntityToJSON(p entities.Product) Product {
	return Product{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		WeightKg:  p.WeightKg,
	}
}

func ProductJSONToEntity(p ProductRequest) entities.Product {
	return entities.Product{
		Name:     p.Name,
		Price:    p.Price,
		WeightKg: p.WeightKg,
	}
}
