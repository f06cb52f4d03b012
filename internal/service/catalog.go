package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/wetland/storefront-service/internal/entities"
)

var ErrForbidden = errors.New("actor is not allowed to manage products")

const catalogCacheKey = "catalog"

type ProductRepo interface {
	ListProducts(ctx context.Context) ([]entities.Product, error)
	GetProductByID(ctx context.Context, productID int64) (entities.Product, error)
	SaveProduct(ctx context.Context, p entities.Product) (int64, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

type catalogService struct {
	logger *slog.Logger
	repo   ProductRepo
	cache  Cache
}

func NewCatalogService(logger *slog.Logger, repo ProductRepo, cache Cache) *catalogService {
	return &catalogService{
		logger: logger.With(slog.String("service", "catalog")),
		repo:   repo,
		cache:  cache,
	}
}

func (s *catalogService) ListProducts(ctx context.Context) ([]entities.Product, error) {
	if data, ok := s.cache.Get(catalogCacheKey); ok {
		var list entities.ProductList
		if err := list.Unmarshal(data); err == nil {
			return list, nil
		}
		// A corrupt cache entry just falls through to the repo.
		s.cache.Delete(catalogCacheKey)
	}

	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	if data, err := entities.ProductList(products).Marshal(); err == nil {
		s.cache.Set(catalogCacheKey, data)
	}
	return products, nil
}

func (s *catalogService) GetProduct(ctx context.Context, productID int64) (entities.Product, error) {
	key := "product:" + strconv.FormatInt(productID, 10)
	if data, ok := s.cache.Get(key); ok {
		var list entities.ProductList
		if err := list.Unmarshal(data); err == nil && len(list) == 1 {
			return list[0], nil
		}
	}

	product, err := s.repo.GetProductByID(ctx, productID)
	if err != nil {
		return entities.Product{}, err
	}

	if data, err := (entities.ProductList{product}).Marshal(); err == nil {
		s.cache.Set(key, data)
	}
	return product, nil
}

// AddProduct stores a new catalog entry. Gated on MANAGE_PRODUCTS, which
// sellers and nobody else below admin tooling holds.
func (s *catalogService) AddProduct(ctx context.Context, role entities.Role, p entities.Product) (entities.Product, error) {
	if !role.Can(entities.PermManageProducts) {
		return entities.Product{}, ErrForbidden
	}

	id, err := s.repo.SaveProduct(ctx, p)
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to add product: %w", err)
	}
	p.ID = id

	s.cache.Delete(catalogCacheKey)
	s.logger.Info("product added",
		slog.Int64("product_id", p.ID),
		slog.String("name", p.Name),
	)
	return p, nil
}

// WarmUpCatalog preloads the catalog cache at startup.
func (s *catalogService) WarmUpCatalog(ctx context.Context) error {
	products, err := s.ListProducts(ctx)
	if err != nil {
		return err
	}
	s.logger.Info("catalog warmed up", slog.Int("products", len(products)))
	return nil
}
