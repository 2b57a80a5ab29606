// internal/seed/demo.go
package seed

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/stokpintar/backend-go/internal/domain"
)

// demoWeeks is roughly six months of weekly sales history.
const demoWeeks = 24

var demoStart = time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)

// DemoProducts returns the built-in apparel catalog used for demos and the
// offline report tool.
func DemoProducts() []domain.Product {
	return []domain.Product{
		{ID: "1", SKU: "KEM-001", Name: "Kemeja Putih M", Category: domain.CategoryKemeja, Price: 150000, CurrentStock: 35, LeadTimeDays: 7, CreatedAt: demoStart},
		{ID: "2", SKU: "KEM-002", Name: "Kemeja Biru L", Category: domain.CategoryKemeja, Price: 160000, CurrentStock: 28, LeadTimeDays: 7, CreatedAt: demoStart},
		{ID: "3", SKU: "CEL-001", Name: "Celana Panjang Hitam L", Category: domain.CategoryCelana, Price: 200000, CurrentStock: 42, LeadTimeDays: 7, CreatedAt: demoStart},
		{ID: "4", SKU: "CEL-002", Name: "Celana Pendek Putih M", Category: domain.CategoryCelana, Price: 120000, CurrentStock: 18, LeadTimeDays: 7, CreatedAt: demoStart},
		{ID: "5", SKU: "GAM-001", Name: "Gamis Batik M", Category: domain.CategoryGamis, Price: 250000, CurrentStock: 22, LeadTimeDays: 7, CreatedAt: demoStart},
		{ID: "6", SKU: "GAM-002", Name: "Gamis Polos L", Category: domain.CategoryGamis, Price: 220000, CurrentStock: 15, LeadTimeDays: 7, CreatedAt: demoStart},
	}
}

// DemoSales generates weekly sales for every demo product over the demo
// window. Quantities follow a per-category base level with noise from the
// given source, so a fixed seed yields a reproducible dataset.
func DemoSales(products []domain.Product, rng *rand.Rand) []domain.SalesTransaction {
	sales := make([]domain.SalesTransaction, 0, len(products)*demoWeeks)
	for _, product := range products {
		baseQty := 15.0
		switch product.Category {
		case domain.CategoryKemeja:
			baseQty = 18
		case domain.CategoryGamis:
			baseQty = 12
		}

		for week := 0; week < demoWeeks; week++ {
			date := demoStart.AddDate(0, 0, week*7+rng.Intn(5))

			qty := int(baseQty + (rng.Float64()-0.5)*10)
			if qty < 5 {
				qty = 5
			}

			sales = append(sales, domain.SalesTransaction{
				ID:        uuid.NewString(),
				ProductID: product.ID,
				Quantity:  qty,
				Date:      date,
				UnitPrice: product.Price,
			})
		}
	}

	return sales
}

// Demo returns the full demo dataset for the given RNG seed.
func Demo(rngSeed int64) ([]domain.Product, []domain.SalesTransaction) {
	products := DemoProducts()
	sales := DemoSales(products, rand.New(rand.NewSource(rngSeed)))

	return products, sales
}
