package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/wetland/storefront-service/internal/entities"
	"github.com/wetland/storefront-service/internal/service"
	"github.com/wetland/storefront-service/internal/shipping"
	"github.com/wetland/storefront-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	CreateOrder(ctx context.Context, in service.CreateOrderInput) (*entities.Order, error)
	GetOrder(ctx context.Context, orderID int64) (*entities.Order, error)
	AdvanceOrder(ctx context.Context, orderID int64) (entities.Status, error)
	ChangeShipping(ctx context.Context, orderID int64, choice service.ShippingChoice) (float64, error)
	QuoteShipping(choice service.ShippingChoice) (float64, error)
}

type CatalogService interface {
	ListProducts(ctx context.Context) ([]entities.Product, error)
	GetProduct(ctx context.Context, productID int64) (entities.Product, error)
	AddProduct(ctx context.Context, role entities.Role, p entities.Product) (entities.Product, error)
}

// RoleHeader carries the acting role for seller routes. Credential checks
// live outside; the core only maps roles to capabilities.
const RoleHeader = "X-Actor-Role"

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	orders   OrderService
	catalog  CatalogService
}

func NewHTTPHandler(logger *slog.Logger, orders OrderService, catalog CatalogService) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		orders:   orders,
		catalog:  catalog,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Get("/products", h.ListProducts)
	r.Post("/products", h.AddProduct)

	r.Post("/orders", h.CreateOrder)
	r.Get("/orders/{order_id}", h.GetOrder)
	r.Post("/orders/{order_id}/advance", h.AdvanceOrder)
	r.Put("/orders/{order_id}/shipping", h.UpdateShipping)

	r.Get("/shipping/quote", h.QuoteShipping)
	r.Get("/roles/{role}/permissions", h.RolePermissions)
}

// ListProducts returns the catalog.
// @Summary      List catalog products
// @Tags         catalog
// @Success      200  {array}   Product
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /products [get]
func (h *HTTPHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := h.catalog.ListProducts(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list products", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	out := make([]Product, 0, len(products))
	for _, p := range products {
		out = append(out, ProductEntityToJSON(p))
	}
	utils.WriteJSON(w, out, http.StatusOK)
}

// AddProduct stores a new catalog entry.
// @Summary      Add a catalog product
// @Tags         catalog
// @Param        X-Actor-Role  header    string          true  "Acting role (seller or admin)"
// @Param        product       body      ProductRequest  true  "Product"
// @Success      201  {object}  Product
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      403  {object}  utils.ErrorResponse
// @Router       /products [post]
func (h *HTTPHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	role, err := entities.ParseRole(r.Header.Get(RoleHeader))
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req ProductRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	product, err := h.catalog.AddProduct(ctx, role, ProductJSONToEntity(req))
	if errors.Is(err, service.ErrForbidden) {
		utils.WriteError(w, "role is not allowed to manage products", http.StatusForbidden)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to add product", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, ProductEntityToJSON(product), http.StatusCreated)
}

// CreateOrder builds an order from a cart tally and a shipping choice.
// @Summary      Create an order
// @Tags         orders
// @Param        order  body      CreateOrderRequest  true  "Cart and shipping choice"
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      422  {object}  utils.ErrorResponse "Order could not be constructed"
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /orders [post]
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	// Expand the tally: one line item per unit, and a derived weight when
	// the customer did not provide one.
	var items []entities.LineItem
	var tallyWeight float64
	for _, line := range req.Items {
		product, err := h.catalog.GetProduct(ctx, line.ProductID)
		if errors.Is(err, entities.ErrProductNotFound) {
			utils.WriteError(w, "unknown product in cart", http.StatusBadRequest)
			return
		}
		if err != nil {
			h.logger.ErrorContext(ctx, "failed to resolve product", slog.Any("error", err))
			utils.WriteError(w, "internal server error", http.StatusInternalServerError)
			return
		}
		for i := 0; i < line.Quantity; i++ {
			items = append(items, entities.LineItem{Name: product.Name, Price: product.Price})
			tallyWeight += product.WeightKg
		}
	}

	weight := req.Shipping.WeightKg
	if weight == 0 {
		weight = tallyWeight
	}

	order, err := h.orders.CreateOrder(ctx, service.CreateOrderInput{
		CustomerID: req.CustomerID,
		Items:      items,
		Shipping: service.ShippingChoice{
			Method:     req.Shipping.Method,
			WeightKg:   weight,
			DistanceKm: req.Shipping.DistanceKm,
		},
	})
	if err != nil {
		h.writeOrderError(w, r, err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// GetOrder returns one order.
// @Summary      Get order by id
// @Tags         orders
// @Param        order_id  path      int  true  "Order id"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /orders/{order_id} [get]
func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, err := parseOrderID(r)
	if err != nil {
		utils.WriteError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	order, err := h.orders.GetOrder(ctx, orderID)
	if err != nil {
		h.writeOrderError(w, r, err)
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// AdvanceOrder moves an order one step along its lifecycle. Advancing a
// delivered order returns the unchanged status.
// @Summary      Advance order status
// @Tags         orders
// @Param        order_id  path      int  true  "Order id"
// @Success      200  {object}  AdvanceResponse
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /orders/{order_id}/advance [post]
func (h *HTTPHandler) AdvanceOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, err := parseOrderID(r)
	if err != nil {
		utils.WriteError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	status, err := h.orders.AdvanceOrder(ctx, orderID)
	if err != nil {
		h.writeOrderError(w, r, err)
		return
	}
	utils.WriteJSON(w, AdvanceResponse{OrderID: orderID, Status: string(status)}, http.StatusOK)
}

// UpdateShipping re-prices shipping with another strategy; pending orders only.
// @Summary      Change shipping method
// @Tags         orders
// @Param        order_id  path      int              true  "Order id"
// @Param        shipping  body      ShippingRequest  true  "New shipping choice"
// @Success      200  {object}  ShippingUpdateResponse
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Failure      409  {object}  utils.ErrorResponse "Order is no longer pending"
// @Router       /orders/{order_id}/shipping [put]
func (h *HTTPHandler) UpdateShipping(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, err := parseOrderID(r)
	if err != nil {
		utils.WriteError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	var req ShippingRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	cost, err := h.orders.ChangeShipping(ctx, orderID, service.ShippingChoice{
		Method:     req.Method,
		WeightKg:   req.WeightKg,
		DistanceKm: req.DistanceKm,
	})
	if err != nil {
		h.writeOrderError(w, r, err)
		return
	}

	order, err := h.orders.GetOrder(ctx, orderID)
	if err != nil {
		h.writeOrderError(w, r, err)
		return
	}
	utils.WriteJSON(w, ShippingUpdateResponse{
		OrderID:      orderID,
		ShippingCost: cost,
		TotalPrice:   order.TotalPrice(),
	}, http.StatusOK)
}

// QuoteShipping prices a strategy without creating anything.
// @Summary      Quote shipping cost
// @Tags         shipping
// @Param        method       query     string  true   "sedex, pac or local_pickup"
// @Param        weight_kg    query     number  false  "Weight in kilograms"
// @Param        distance_km  query     number  false  "Distance in kilometers"
// @Success      200  {object}  ShippingQuote
// @Failure      400  {object}  utils.ErrorResponse "Unknown method or bad inputs"
// @Router       /shipping/quote [get]
func (h *HTTPHandler) QuoteShipping(w http.ResponseWriter, r *http.Request) {
	method := r.URL.Query().Get("method")
	weight, err := parseFloatParam(r, "weight_kg")
	if err != nil {
		utils.WriteError(w, "invalid weight_kg", http.StatusBadRequest)
		return
	}
	distance, err := parseFloatParam(r, "distance_km")
	if err != nil {
		utils.WriteError(w, "invalid distance_km", http.StatusBadRequest)
		return
	}

	cost, err := h.orders.QuoteShipping(service.ShippingChoice{
		Method:     method,
		WeightKg:   weight,
		DistanceKm: distance,
	})
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, ShippingQuote{
		Method:     method,
		WeightKg:   weight,
		DistanceKm: distance,
		Cost:       cost,
	}, http.StatusOK)
}

// RolePermissions returns the fixed capability set of a role.
// @Summary      Get role permissions
// @Tags         users
// @Param        role  path      string  true  "customer, seller or admin"
// @Success      200  {object}  Permissions
// @Failure      400  {object}  utils.ErrorResponse "Unknown role"
// @Router       /roles/{role}/permissions [get]
func (h *HTTPHandler) RolePermissions(w http.ResponseWriter, r *http.Request) {
	role, err := entities.ParseRole(chi.URLParam(r, "role"))
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}
	utils.WriteJSON(w, Permissions{
		Role:        string(role),
		Permissions: role.Permissions(),
	}, http.StatusOK)
}

// writeOrderError translates domain failures into status codes.
func (h *HTTPHandler) writeOrderError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrOrderNotPending):
		utils.WriteError(w, "order is no longer pending", http.StatusConflict)
	case errors.Is(err, shipping.ErrUnknownMethod),
		errors.Is(err, shipping.ErrNegativeInput):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrMissingOrderID),
		errors.Is(err, entities.ErrNoProducts):
		utils.WriteError(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		h.logger.ErrorContext(r.Context(), "order operation failed", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

func parseOrderID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "order_id"), 10, 64)
}

func parseFloatParam(r *http.Request, name string) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseFloat(raw, 64)
}
