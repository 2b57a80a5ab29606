package domain

import "strings"

// StockStatus classifies current stock against the reorder point and safety stock.
type StockStatus string

const (
	StatusSafe     StockStatus = "safe"
	StatusWarning  StockStatus = "warning"
	StatusCritical StockStatus = "critical"
)

// Category is the fixed product category set.
type Category string

const (
	CategoryKemeja Category = "kemeja"
	CategoryCelana Category = "celana"
	CategoryGamis  Category = "gamis"
)

var categoryLabels = map[Category]string{
	CategoryKemeja: "Kemeja",
	CategoryCelana: "Celana",
	CategoryGamis:  "Gamis",
}

// Categories returns the supported categories in display order.
func Categories() []Category {
	return []Category{CategoryKemeja, CategoryCelana, CategoryGamis}
}

// CategoryLabel returns a human-readable label for a category.
func CategoryLabel(c Category) string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}

	return string(c)
}

// ParseCategory returns the category for a given label (case-insensitive).
func ParseCategory(label string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(label)))
	_, ok := categoryLabels[c]

	return c, ok
}

// ParseStockStatus returns the status for a given label (case-insensitive).
func ParseStockStatus(label string) (StockStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "safe":
		return StatusSafe, true
	case "warning":
		return StatusWarning, true
	case "critical":
		return StatusCritical, true
	}

	return "", false
}
