// internal/domain/models.go
package domain

import "time"

// Product represents a single apparel product under stock control
type Product struct {
	ID           string    `json:"id"`
	SKU          string    `json:"sku"`
	Name         string    `json:"name"`
	Category     Category  `json:"category"`
	Price        float64   `json:"price"`
	CurrentStock int       `json:"current_stock"`
	LeadTimeDays float64   `json:"lead_time_days"`
	CreatedAt    time.Time `json:"created_at"`
}

// ProductInput carries the caller-supplied fields for a new product;
// id and creation timestamp are assigned by the store.
type ProductInput struct {
	SKU          string   `json:"sku"`
	Name         string   `json:"name"`
	Category     Category `json:"category"`
	Price        float64  `json:"price"`
	CurrentStock int      `json:"current_stock"`
	LeadTimeDays float64  `json:"lead_time_days"`
}

// ProductUpdate is a partial update; nil fields are left unchanged.
type ProductUpdate struct {
	SKU          *string   `json:"sku,omitempty"`
	Name         *string   `json:"name,omitempty"`
	Category     *Category `json:"category,omitempty"`
	Price        *float64  `json:"price,omitempty"`
	CurrentStock *int      `json:"current_stock,omitempty"`
	LeadTimeDays *float64  `json:"lead_time_days,omitempty"`
}

// SalesTransaction represents one recorded sale of a product.
// UnitPrice is captured at sale time and does not track later price changes.
type SalesTransaction struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Date      time.Time `json:"date"`
	UnitPrice float64   `json:"unit_price"`
}

// SaleInput carries the caller-supplied fields for a new sale.
type SaleInput struct {
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Date      time.Time `json:"date"`
	UnitPrice float64   `json:"unit_price"`
}

// ProductWithMetrics is a product plus its derived inventory-control metrics.
// It is recomputed from the current product and transaction state on every
// read and never stored.
type ProductWithMetrics struct {
	Product
	SalesHistory []SalesTransaction `json:"sales_history"`
	WMAForecast  float64            `json:"wma_forecast"`
	SafetyStock  int                `json:"safety_stock"`
	ReorderPoint int                `json:"reorder_point"`
	MAPE         *float64           `json:"mape,omitempty"`
	Status       StockStatus        `json:"status"`
}

// DashboardStats aggregates fleet-wide inventory figures
type DashboardStats struct {
	TotalProducts      int     `json:"total_products"`
	TotalSKUs          int     `json:"total_skus"`
	LowStockCount      int     `json:"low_stock_count"`
	CriticalStockCount int     `json:"critical_stock_count"`
	TotalTransactions  int     `json:"total_transactions"`
	AverageMAPE        float64 `json:"average_mape"`
}

// StockAlert is a notification entry for a product at or near its reorder point
type StockAlert struct {
	ProductID    string      `json:"product_id"`
	SKU          string      `json:"sku"`
	Name         string      `json:"name"`
	Status       StockStatus `json:"status"`
	CurrentStock int         `json:"current_stock"`
	ReorderPoint int         `json:"reorder_point"`
	SafetyStock  int         `json:"safety_stock"`
	Message      string      `json:"message"`
}
