package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/mkuznecov/northwind-api/internal/domain"
	"github.com/mkuznecov/northwind-api/internal/observability"
)

type CatalogStore interface {
	Categories(ctx context.Context) ([]domain.Category, error)
	CategoryProducts(ctx context.Context, categoryID int64) ([]domain.Product, error)
	Products(ctx context.Context) ([]domain.Product, error)
	ProductsByCategory(ctx context.Context) ([]domain.ProductGroup, error)
	ProductBuyers(ctx context.Context, productID int64) ([]domain.CustomerRef, error)
}

type CatalogCache interface {
	Categories() ([]domain.Category, bool)
	SetCategories([]domain.Category)
	CategoryProducts(categoryID int64) ([]domain.Product, bool)
	SetCategoryProducts(categoryID int64, v []domain.Product)
}

// Catalog serves the read-only side with an LRU in front of the store.
type Catalog struct {
	store   CatalogStore
	cache   CatalogCache
	logger  *zap.Logger
	metrics observability.Metrics
}

func NewCatalog(store CatalogStore, cache CatalogCache, logger *zap.Logger, metrics observability.Metrics) *Catalog {
	return &Catalog{
		store:   store,
		cache:   cache,
		logger:  logger,
		metrics: metrics,
	}
}

func (s *Catalog) Categories(ctx context.Context) ([]domain.Category, error) {
	if cats, ok := s.cache.Categories(); ok {
		s.metrics.IncCacheHit()
		return cats, nil
	}
	s.metrics.IncCacheMiss()

	t0 := time.Now()
	cats, err := s.store.Categories(ctx)
	s.metrics.ObserveQuery("list_categories", msSince(t0), err != nil)
	if err != nil {
		s.logger.Error("list categories", zap.Error(err))
		return nil, err
	}
	s.cache.SetCategories(cats)
	return cats, nil
}

func (s *Catalog) CategoryProducts(ctx context.Context, categoryID int64) ([]domain.Product, error) {
	if ps, ok := s.cache.CategoryProducts(categoryID); ok {
		s.metrics.IncCacheHit()
		return ps, nil
	}
	s.metrics.IncCacheMiss()

	t0 := time.Now()
	ps, err := s.store.CategoryProducts(ctx, categoryID)
	s.metrics.ObserveQuery("category_products", msSince(t0), err != nil)
	if err != nil {
		s.logger.Error("category products", zap.Int64("category_id", categoryID), zap.Error(err))
		return nil, err
	}
	s.cache.SetCategoryProducts(categoryID, ps)
	return ps, nil
}

func (s *Catalog) Products(ctx context.Context) ([]domain.Product, error) {
	t0 := time.Now()
	ps, err := s.store.Products(ctx)
	s.metrics.ObserveQuery("list_products", msSince(t0), err != nil)
	if err != nil {
		s.logger.Error("list products", zap.Error(err))
	}
	return ps, err
}

func (s *Catalog) ProductsByCategory(ctx context.Context) ([]domain.ProductGroup, error) {
	t0 := time.Now()
	groups, err := s.store.ProductsByCategory(ctx)
	s.metrics.ObserveQuery("products_by_category", msSince(t0), err != nil)
	if err != nil {
		s.logger.Error("products by category", zap.Error(err))
	}
	return groups, err
}

func (s *Catalog) ProductBuyers(ctx context.Context, productID int64) ([]domain.CustomerRef, error) {
	t0 := time.Now()
	buyers, err := s.store.ProductBuyers(ctx, productID)
	s.metrics.ObserveQuery("product_buyers", msSince(t0), err != nil)
	if err != nil {
		s.logger.Error("product buyers", zap.Int64("product_id", productID), zap.Error(err))
	}
	return buyers, err
}
