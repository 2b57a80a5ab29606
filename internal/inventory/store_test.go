package inventory

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stokpintar/backend-go/internal/domain"
)

func newTestStore() *Store {
	s := NewStore()
	next := 0
	s.newID = func() string {
		next++
		return fmt.Sprintf("id-%d", next)
	}
	s.now = func() time.Time {
		return time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)
	}
	return s
}

func kemejaInput() domain.ProductInput {
	return domain.ProductInput{
		SKU:          "KEM-001",
		Name:         "Kemeja Putih M",
		Category:     domain.CategoryKemeja,
		Price:        150000,
		CurrentStock: 35,
		LeadTimeDays: 7,
	}
}

func saleOn(productID string, qty int, date time.Time) domain.SaleInput {
	return domain.SaleInput{ProductID: productID, Quantity: qty, Date: date, UnitPrice: 150000}
}

func TestAddProduct(t *testing.T) {
	s := newTestStore()

	p := s.AddProduct(kemejaInput())

	assert.Equal(t, "id-1", p.ID)
	assert.False(t, p.CreatedAt.IsZero())
	require.Len(t, s.Products(), 1)

	// Duplicate SKUs are accepted silently.
	dup := s.AddProduct(kemejaInput())
	assert.Equal(t, p.SKU, dup.SKU)
	assert.NotEqual(t, p.ID, dup.ID)
	assert.Len(t, s.Products(), 2)
}

func TestUpdateProduct(t *testing.T) {
	s := newTestStore()
	p := s.AddProduct(kemejaInput())

	name := "Kemeja Putih L"
	price := 175000.0
	s.UpdateProduct(p.ID, domain.ProductUpdate{Name: &name, Price: &price})

	got, ok := s.Product(p.ID)
	require.True(t, ok)
	assert.Equal(t, name, got.Name)
	assert.Equal(t, price, got.Price)
	assert.Equal(t, p.SKU, got.SKU) // untouched fields keep their values

	t.Run("unknown id is a silent no-op", func(t *testing.T) {
		before := s.Version()
		s.UpdateProduct("missing", domain.ProductUpdate{Name: &name})
		assert.Equal(t, before, s.Version())
	})
}

func TestDeleteProductCascades(t *testing.T) {
	s := newTestStore()
	p := s.AddProduct(kemejaInput())
	other := s.AddProduct(kemejaInput())

	s.RecordSale(saleOn(p.ID, 2, time.Date(2025, time.September, 2, 0, 0, 0, 0, time.UTC)))
	s.RecordSale(saleOn(other.ID, 1, time.Date(2025, time.September, 2, 0, 0, 0, 0, time.UTC)))

	s.DeleteProduct(p.ID)

	_, ok := s.Product(p.ID)
	assert.False(t, ok)
	assert.Empty(t, s.SalesHistory(p.ID))
	assert.Len(t, s.SalesHistory(other.ID), 1)

	t.Run("unknown id is a silent no-op", func(t *testing.T) {
		before := s.Version()
		s.DeleteProduct("missing")
		assert.Equal(t, before, s.Version())
	})
}

func TestRecordSaleClampsStockAtZero(t *testing.T) {
	s := newTestStore()
	input := kemejaInput()
	input.CurrentStock = 5
	p := s.AddProduct(input)

	s.RecordSale(saleOn(p.ID, 8, time.Date(2025, time.September, 2, 0, 0, 0, 0, time.UTC)))

	got, ok := s.Product(p.ID)
	require.True(t, ok)
	assert.Equal(t, 0, got.CurrentStock)
}

func TestRecordSaleCapturesUnitPrice(t *testing.T) {
	s := newTestStore()
	p := s.AddProduct(kemejaInput())

	sale := s.RecordSale(saleOn(p.ID, 1, time.Date(2025, time.September, 2, 0, 0, 0, 0, time.UTC)))

	newPrice := 999.0
	s.UpdateProduct(p.ID, domain.ProductUpdate{Price: &newPrice})

	history := s.SalesHistory(p.ID)
	require.Len(t, history, 1)
	assert.Equal(t, sale.UnitPrice, history[0].UnitPrice)
}

func TestSalesHistoryNewestFirst(t *testing.T) {
	s := newTestStore()
	p := s.AddProduct(kemejaInput())

	early := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2025, time.September, 15, 0, 0, 0, 0, time.UTC)
	s.RecordSale(saleOn(p.ID, 1, early))
	s.RecordSale(saleOn(p.ID, 2, late))

	history := s.SalesHistory(p.ID)
	require.Len(t, history, 2)
	assert.Equal(t, late, history[0].Date)
	assert.Equal(t, early, history[1].Date)
}

func TestProductMetrics(t *testing.T) {
	s := newTestStore()
	input := kemejaInput()
	input.CurrentStock = 20
	input.LeadTimeDays = 7 // one bucket of lead time
	p := s.AddProduct(input)

	// Four consecutive weeks: 10, 12, 14, 20.
	quantities := []int{10, 12, 14, 20}
	for i, qty := range quantities {
		date := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i*7)
		s.RecordSale(saleOn(p.ID, qty, date))
	}

	m, ok := s.ProductMetrics(p.ID)
	require.True(t, ok)

	// WMA over trailing [12,14,20]: (12 + 28 + 60) / 6 = 16.67.
	assert.Equal(t, 16.67, m.WMAForecast)
	assert.Equal(t, 6, m.SafetyStock)
	assert.Equal(t, 20, m.ReorderPoint)
	require.NotNil(t, m.MAPE)
	assert.Equal(t, 36.65, *m.MAPE)
	// Stock was decremented to zero by the recorded sales.
	assert.Equal(t, domain.StatusCritical, m.Status)
	assert.Len(t, m.SalesHistory, 4)

	t.Run("unknown product", func(t *testing.T) {
		_, ok := s.ProductMetrics("missing")
		assert.False(t, ok)
	})
}

func TestMetricsReadsAreIdempotent(t *testing.T) {
	s := newTestStore()
	p := s.AddProduct(kemejaInput())
	s.RecordSale(saleOn(p.ID, 3, time.Date(2025, time.September, 2, 0, 0, 0, 0, time.UTC)))

	first := s.AllProductsWithMetrics()
	second := s.AllProductsWithMetrics()
	assert.Equal(t, first, second)
}

func TestMetricsReflectLatestMutation(t *testing.T) {
	s := newTestStore()
	input := kemejaInput()
	input.CurrentStock = 100
	p := s.AddProduct(input)

	week := time.Date(2025, time.September, 2, 0, 0, 0, 0, time.UTC)
	s.RecordSale(saleOn(p.ID, 5, week))

	m, ok := s.ProductMetrics(p.ID)
	require.True(t, ok)
	assert.Equal(t, 95, m.CurrentStock)
	assert.Equal(t, 5.0, m.WMAForecast)

	// A second sale in the same week merges into the existing bucket.
	s.RecordSale(saleOn(p.ID, 4, week.AddDate(0, 0, 1)))

	m, ok = s.ProductMetrics(p.ID)
	require.True(t, ok)
	assert.Equal(t, 91, m.CurrentStock)
	assert.Equal(t, 9.0, m.WMAForecast)
}

func TestDashboardStats(t *testing.T) {
	s := newTestStore()

	safe := kemejaInput()
	safe.CurrentStock = 1000
	safeP := s.AddProduct(safe)

	critical := kemejaInput()
	critical.SKU = "KEM-002"
	critical.CurrentStock = 0
	criticalP := s.AddProduct(critical)

	start := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)
	for i, qty := range []int{10, 12, 14, 20} {
		s.RecordSale(saleOn(safeP.ID, qty, start.AddDate(0, 0, i*7)))
		s.RecordSale(saleOn(criticalP.ID, qty, start.AddDate(0, 0, i*7)))
	}

	stats := s.DashboardStats()
	assert.Equal(t, 2, stats.TotalProducts)
	assert.Equal(t, 2, stats.TotalSKUs)
	assert.Equal(t, 8, stats.TotalTransactions)
	assert.Equal(t, 0, stats.LowStockCount)
	assert.Equal(t, 1, stats.CriticalStockCount)
	// Both products share the same series, so the mean equals each MAPE.
	assert.Equal(t, 36.65, stats.AverageMAPE)
}

func TestDashboardStatsWithoutMAPE(t *testing.T) {
	s := newTestStore()
	s.AddProduct(kemejaInput())

	stats := s.DashboardStats()
	assert.Equal(t, 0.0, stats.AverageMAPE)
}

func TestLowStockProductsAndAlerts(t *testing.T) {
	s := newTestStore()

	input := kemejaInput()
	input.CurrentStock = 0
	p := s.AddProduct(input)
	s.RecordSale(saleOn(p.ID, 10, time.Date(2025, time.September, 2, 0, 0, 0, 0, time.UTC)))

	low := s.LowStockProducts()
	require.Len(t, low, 1)
	assert.Equal(t, domain.StatusCritical, low[0].Status)

	alerts := s.StockAlerts()
	require.Len(t, alerts, 1)
	assert.Equal(t, p.ID, alerts[0].ProductID)
	assert.Equal(t, domain.StatusCritical, alerts[0].Status)
	assert.NotEmpty(t, alerts[0].Message)
}

func TestProductsByCategory(t *testing.T) {
	s := newTestStore()
	s.AddProduct(kemejaInput())

	gamis := kemejaInput()
	gamis.SKU = "GAM-001"
	gamis.Category = domain.CategoryGamis
	s.AddProduct(gamis)

	assert.Len(t, s.ProductsByCategory(domain.CategoryKemeja), 1)
	assert.Len(t, s.ProductsByCategory(domain.CategoryGamis), 1)
	assert.Empty(t, s.ProductsByCategory(domain.CategoryCelana))
}

func TestRestoreInstallsStateWithoutDecrement(t *testing.T) {
	s := newTestStore()

	products := []domain.Product{{ID: "p1", SKU: "KEM-001", CurrentStock: 35, LeadTimeDays: 7}}
	sales := []domain.SalesTransaction{{ID: "t1", ProductID: "p1", Quantity: 10,
		Date: time.Date(2025, time.September, 2, 0, 0, 0, 0, time.UTC), UnitPrice: 150000}}

	s.Restore(products, sales)

	got, ok := s.Product("p1")
	require.True(t, ok)
	assert.Equal(t, 35, got.CurrentStock)
	assert.Len(t, s.SalesHistory("p1"), 1)
}

func TestVersionBumpsOnMutation(t *testing.T) {
	s := newTestStore()
	v0 := s.Version()

	p := s.AddProduct(kemejaInput())
	v1 := s.Version()
	assert.Greater(t, v1, v0)

	s.RecordSale(saleOn(p.ID, 1, time.Date(2025, time.September, 2, 0, 0, 0, 0, time.UTC)))
	assert.Greater(t, s.Version(), v1)

	// Reads do not bump the version.
	s.AllProductsWithMetrics()
	s.DashboardStats()
	assert.Equal(t, s.Version(), v1+1)
}
