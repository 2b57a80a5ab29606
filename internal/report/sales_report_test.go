package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stokpintar/backend-go/internal/domain"
)

func TestBuild(t *testing.T) {
	products := []domain.Product{
		{ID: "p1", SKU: "KEM-001", Name: "Kemeja Putih M", Price: 150000, CurrentStock: 10},
		{ID: "p2", SKU: "GAM-001", Name: "Gamis Batik M", Price: 250000, CurrentStock: 4},
	}
	date := time.Date(2025, time.September, 2, 0, 0, 0, 0, time.UTC)
	sales := []domain.SalesTransaction{
		{ID: "t1", ProductID: "p1", Quantity: 2, Date: date, UnitPrice: 150000},
		{ID: "t2", ProductID: "p1", Quantity: 1, Date: date, UnitPrice: 140000}, // sold at an older price
		{ID: "t3", ProductID: "p2", Quantity: 3, Date: date, UnitPrice: 250000},
		{ID: "t4", ProductID: "gone", Quantity: 9, Date: date, UnitPrice: 100000}, // orphan, ignored
	}

	got := Build(products, sales)

	require.Len(t, got.Products, 2)

	kemeja := got.Products[0]
	assert.Equal(t, "p1", kemeja.ProductID)
	assert.Equal(t, 3, kemeja.UnitsSold)
	// 2*150000 + 1*140000
	assert.True(t, kemeja.Revenue.Equal(decimal.NewFromInt(440000)), "revenue %s", kemeja.Revenue)

	gamis := got.Products[1]
	assert.Equal(t, 3, gamis.UnitsSold)
	assert.True(t, gamis.Revenue.Equal(decimal.NewFromInt(750000)))

	assert.Equal(t, 6, got.TotalUnitsSold)
	assert.True(t, got.TotalRevenue.Equal(decimal.NewFromInt(1190000)))
	// 10*150000 + 4*250000
	assert.True(t, got.InventoryValue.Equal(decimal.NewFromInt(2500000)))
}

func TestBuildEmpty(t *testing.T) {
	got := Build(nil, nil)

	assert.Empty(t, got.Products)
	assert.Zero(t, got.TotalUnitsSold)
	assert.True(t, got.TotalRevenue.IsZero())
	assert.True(t, got.InventoryValue.IsZero())
}
