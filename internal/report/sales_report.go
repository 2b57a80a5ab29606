// internal/report/sales_report.go
package report

import (
	"github.com/shopspring/decimal"

	"github.com/stokpintar/backend-go/internal/domain"
)

// ProductRevenue summarizes realized sales for one product. Revenue is the sum
// of quantity times the unit price captured on each transaction, so later
// price changes do not rewrite history.
type ProductRevenue struct {
	ProductID string          `json:"product_id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	UnitsSold int             `json:"units_sold"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// SalesReport aggregates realized revenue and the current inventory valuation.
type SalesReport struct {
	Products       []ProductRevenue `json:"products"`
	TotalUnitsSold int              `json:"total_units_sold"`
	TotalRevenue   decimal.Decimal  `json:"total_revenue"`
	InventoryValue decimal.Decimal  `json:"inventory_value"`
}

// Build computes the sales report from the current product and transaction
// collections. Money arithmetic uses decimals to avoid float drift on large
// rupiah amounts.
func Build(products []domain.Product, sales []domain.SalesTransaction) SalesReport {
	type acc struct {
		units   int
		revenue decimal.Decimal
	}

	byProduct := make(map[string]*acc, len(products))
	for _, p := range products {
		byProduct[p.ID] = &acc{revenue: decimal.Zero}
	}

	report := SalesReport{
		Products:       make([]ProductRevenue, 0, len(products)),
		TotalRevenue:   decimal.Zero,
		InventoryValue: decimal.Zero,
	}

	for _, sale := range sales {
		a, ok := byProduct[sale.ProductID]
		if !ok {
			// Orphaned transaction; skip rather than invent a product row.
			continue
		}
		amount := decimal.NewFromFloat(sale.UnitPrice).Mul(decimal.NewFromInt(int64(sale.Quantity)))
		a.units += sale.Quantity
		a.revenue = a.revenue.Add(amount)
	}

	for _, p := range products {
		a := byProduct[p.ID]
		report.Products = append(report.Products, ProductRevenue{
			ProductID: p.ID,
			SKU:       p.SKU,
			Name:      p.Name,
			UnitsSold: a.units,
			Revenue:   a.revenue,
		})
		report.TotalUnitsSold += a.units
		report.TotalRevenue = report.TotalRevenue.Add(a.revenue)

		value := decimal.NewFromFloat(p.Price).Mul(decimal.NewFromInt(int64(p.CurrentStock)))
		report.InventoryValue = report.InventoryValue.Add(value)
	}

	return report
}
