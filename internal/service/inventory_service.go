package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/stokpintar/backend-go/internal/cache"
	"github.com/stokpintar/backend-go/internal/domain"
	"github.com/stokpintar/backend-go/internal/inventory"
	"github.com/stokpintar/backend-go/internal/report"
)

// InventoryService exposes the inventory store to the HTTP layer. The store
// itself assumes a single logical writer, so the service serializes access
// with a mutex; reads always observe the most recently committed mutation.
type InventoryService struct {
	mu    sync.Mutex
	store *inventory.Store
	cache cache.DashboardCache
}

func NewInventoryService(store *inventory.Store, cacheImpl cache.DashboardCache) *InventoryService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopDashboardCache()
	}
	return &InventoryService{store: store, cache: cacheImpl}
}

func (s *InventoryService) AddProduct(ctx context.Context, input domain.ProductInput) domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	product := s.store.AddProduct(input)
	log.Info().Str("product_id", product.ID).Str("sku", product.SKU).Msg("product added")

	return product
}

func (s *InventoryService) UpdateProduct(ctx context.Context, id string, update domain.ProductUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store.UpdateProduct(id, update)
}

func (s *InventoryService) DeleteProduct(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store.DeleteProduct(id)
	log.Info().Str("product_id", id).Msg("product deleted")
}

// RecordSale appends the sale and decrements stock. The referenced product
// must exist; HasProduct is checked by the handler before calling.
func (s *InventoryService) RecordSale(ctx context.Context, input domain.SaleInput) domain.SalesTransaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.RecordSale(input)
}

func (s *InventoryService) HasProduct(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.store.Product(id)
	return ok
}

func (s *InventoryService) ProductMetrics(ctx context.Context, id string) (domain.ProductWithMetrics, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.ProductMetrics(id)
}

func (s *InventoryService) AllProductsWithMetrics(ctx context.Context) []domain.ProductWithMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.AllProductsWithMetrics()
}

func (s *InventoryService) LowStockProducts(ctx context.Context) []domain.ProductWithMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.LowStockProducts()
}

func (s *InventoryService) ProductsByCategory(ctx context.Context, category domain.Category) []domain.ProductWithMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.ProductsByCategory(category)
}

func (s *InventoryService) SalesHistory(ctx context.Context, productID string) []domain.SalesTransaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.SalesHistory(productID)
}

func (s *InventoryService) StockAlerts(ctx context.Context) []domain.StockAlert {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.StockAlerts()
}

func (s *InventoryService) SalesReport(ctx context.Context) report.SalesReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	return report.Build(s.store.Products(), s.store.Sales())
}

// DashboardStats returns the fleet aggregate, consulting the version-keyed
// cache first. Cache failures degrade to recomputation, never to an error.
func (s *InventoryService) DashboardStats(ctx context.Context) domain.DashboardStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	version := s.store.Version()
	if stats, ok, err := s.cache.GetStats(ctx, version); err == nil && ok {
		return stats
	} else if err != nil {
		log.Warn().Err(err).Msg("dashboard: cache get failed")
	}

	stats := s.store.DashboardStats()
	if err := s.cache.SetStats(ctx, version, stats); err != nil {
		log.Warn().Err(err).Msg("dashboard: cache set failed")
	}

	return stats
}
