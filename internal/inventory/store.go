// internal/inventory/store.go
package inventory

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/stokpintar/backend-go/internal/domain"
	"github.com/stokpintar/backend-go/internal/forecast"
)

// Store owns the product and transaction collections and is the single source
// of truth for inventory state. All derived metrics are recomputed from the
// current state on every read. The store assumes a single logical writer;
// callers embedding it in a concurrent system must serialize access.
type Store struct {
	products []domain.Product
	sales    []domain.SalesTransaction

	// version increments on every mutation so callers can key derived-view
	// caches without risking stale reads.
	version uint64

	now   func() time.Time
	newID func() string
}

// NewStore creates an empty inventory store.
func NewStore() *Store {
	return &Store{
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Restore replaces the store state with the given collections, e.g. when
// loading the demo dataset at startup. Transactions are installed as-is:
// no stock decrement is applied.
func (s *Store) Restore(products []domain.Product, sales []domain.SalesTransaction) {
	s.products = append([]domain.Product(nil), products...)
	s.sales = append([]domain.SalesTransaction(nil), sales...)
	s.version++
}

// Version returns the monotonically increasing mutation counter.
func (s *Store) Version() uint64 {
	return s.version
}

// AddProduct assigns a fresh id and creation timestamp, appends the product
// and returns the created record. SKU uniqueness is not enforced.
func (s *Store) AddProduct(input domain.ProductInput) domain.Product {
	product := domain.Product{
		ID:           s.newID(),
		SKU:          input.SKU,
		Name:         input.Name,
		Category:     input.Category,
		Price:        input.Price,
		CurrentStock: input.CurrentStock,
		LeadTimeDays: input.LeadTimeDays,
		CreatedAt:    s.now(),
	}
	s.products = append(s.products, product)
	s.version++

	return product
}

// UpdateProduct merges the non-nil fields of the update into the matching
// product. An unknown id is silently ignored.
func (s *Store) UpdateProduct(id string, update domain.ProductUpdate) {
	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}

		p := &s.products[i]
		if update.SKU != nil {
			p.SKU = *update.SKU
		}
		if update.Name != nil {
			p.Name = *update.Name
		}
		if update.Category != nil {
			p.Category = *update.Category
		}
		if update.Price != nil {
			p.Price = *update.Price
		}
		if update.CurrentStock != nil {
			p.CurrentStock = *update.CurrentStock
		}
		if update.LeadTimeDays != nil {
			p.LeadTimeDays = *update.LeadTimeDays
		}
		s.version++

		return
	}
}

// DeleteProduct removes the product and cascades removal of all its
// transactions. An unknown id is silently ignored.
func (s *Store) DeleteProduct(id string) {
	kept := s.products[:0]
	removed := false
	for _, p := range s.products {
		if p.ID == id {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	s.products = kept

	if !removed {
		return
	}

	keptSales := s.sales[:0]
	for _, sale := range s.sales {
		if sale.ProductID != id {
			keptSales = append(keptSales, sale)
		}
	}
	s.sales = keptSales
	s.version++
}

// RecordSale assigns a fresh id, appends the transaction and decrements the
// referenced product's stock, clamped at zero. Quantity and stock sufficiency
// are not validated here; the calling layer is expected to have done so.
func (s *Store) RecordSale(input domain.SaleInput) domain.SalesTransaction {
	sale := domain.SalesTransaction{
		ID:        s.newID(),
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
		Date:      input.Date,
		UnitPrice: input.UnitPrice,
	}
	s.sales = append(s.sales, sale)

	for i := range s.products {
		if s.products[i].ID == input.ProductID {
			stock := s.products[i].CurrentStock - input.Quantity
			if stock < 0 {
				stock = 0
			}
			s.products[i].CurrentStock = stock
			break
		}
	}
	s.version++

	return sale
}

// Products returns a copy of the product collection.
func (s *Store) Products() []domain.Product {
	return append([]domain.Product(nil), s.products...)
}

// Sales returns a copy of the transaction collection.
func (s *Store) Sales() []domain.SalesTransaction {
	return append([]domain.SalesTransaction(nil), s.sales...)
}

// Product returns the product with the given id.
func (s *Store) Product(id string) (domain.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}

	return domain.Product{}, false
}

// SalesHistory returns all transactions for a product, newest first.
func (s *Store) SalesHistory(productID string) []domain.SalesTransaction {
	history := make([]domain.SalesTransaction, 0)
	for _, sale := range s.sales {
		if sale.ProductID == productID {
			history = append(history, sale)
		}
	}
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Date.After(history[j].Date)
	})

	return history
}

// ProductMetrics recomputes the derived metrics for a single product from the
// current state.
func (s *Store) ProductMetrics(id string) (domain.ProductWithMetrics, bool) {
	product, ok := s.Product(id)
	if !ok {
		return domain.ProductWithMetrics{}, false
	}

	return s.metricsFor(product), true
}

// AllProductsWithMetrics maps metrics recomputation over the current product
// collection. Results always reflect the latest state.
func (s *Store) AllProductsWithMetrics() []domain.ProductWithMetrics {
	metrics := make([]domain.ProductWithMetrics, len(s.products))
	for i, p := range s.products {
		metrics[i] = s.metricsFor(p)
	}

	return metrics
}

// LowStockProducts filters products whose status is warning or critical.
func (s *Store) LowStockProducts() []domain.ProductWithMetrics {
	low := make([]domain.ProductWithMetrics, 0)
	for _, m := range s.AllProductsWithMetrics() {
		if m.Status == domain.StatusWarning || m.Status == domain.StatusCritical {
			low = append(low, m)
		}
	}

	return low
}

// ProductsByCategory filters products-with-metrics by category.
func (s *Store) ProductsByCategory(category domain.Category) []domain.ProductWithMetrics {
	filtered := make([]domain.ProductWithMetrics, 0)
	for _, m := range s.AllProductsWithMetrics() {
		if m.Category == category {
			filtered = append(filtered, m)
		}
	}

	return filtered
}

// DashboardStats aggregates counts and mean MAPE over all products.
func (s *Store) DashboardStats() domain.DashboardStats {
	stats := domain.DashboardStats{
		TotalProducts:     len(s.products),
		TotalSKUs:         len(s.products),
		TotalTransactions: len(s.sales),
	}

	var mapeSum float64
	var mapeCount int
	for _, m := range s.AllProductsWithMetrics() {
		switch m.Status {
		case domain.StatusWarning:
			stats.LowStockCount++
		case domain.StatusCritical:
			stats.CriticalStockCount++
		}
		if m.MAPE != nil {
			mapeSum += *m.MAPE
			mapeCount++
		}
	}

	if mapeCount > 0 {
		stats.AverageMAPE = round2(mapeSum / float64(mapeCount))
	}

	return stats
}

// StockAlerts builds notification entries for every warning or critical
// product, most urgent first.
func (s *Store) StockAlerts() []domain.StockAlert {
	alerts := make([]domain.StockAlert, 0)
	for _, m := range s.LowStockProducts() {
		alert := domain.StockAlert{
			ProductID:    m.ID,
			SKU:          m.SKU,
			Name:         m.Name,
			Status:       m.Status,
			CurrentStock: m.CurrentStock,
			ReorderPoint: m.ReorderPoint,
			SafetyStock:  m.SafetyStock,
		}
		if m.Status == domain.StatusCritical {
			alert.Message = fmt.Sprintf("Stok %s (%d unit) sudah mencapai reorder point %d. Segera lakukan pemesanan ulang.",
				m.Name, m.CurrentStock, m.ReorderPoint)
		} else {
			alert.Message = fmt.Sprintf("Stok %s (%d unit) mendekati reorder point %d.",
				m.Name, m.CurrentStock, m.ReorderPoint)
		}
		alerts = append(alerts, alert)
	}
	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Status == domain.StatusCritical && alerts[j].Status != domain.StatusCritical
	})

	return alerts
}

func (s *Store) metricsFor(product domain.Product) domain.ProductWithMetrics {
	history := s.SalesHistory(product.ID)
	weekly := forecast.WeeklySeries(history)

	leadTimeWeeks := product.LeadTimeDays / 7
	safetyStock := forecast.SafetyStock(weekly, leadTimeWeeks)
	reorderPoint := forecast.ReorderPoint(weekly, leadTimeWeeks, safetyStock)

	return domain.ProductWithMetrics{
		Product:      product,
		SalesHistory: history,
		WMAForecast:  forecast.WMA(weekly),
		SafetyStock:  safetyStock,
		ReorderPoint: reorderPoint,
		MAPE:         forecast.BacktestMAPE(weekly),
		Status:       forecast.ClassifyStock(product.CurrentStock, reorderPoint, safetyStock),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
