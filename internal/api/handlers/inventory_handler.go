package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stokpintar/backend-go/internal/domain"
	"github.com/stokpintar/backend-go/internal/service"
)

type InventoryHandler struct {
	service *service.InventoryService
}

func NewInventoryHandler(service *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: service}
}

type addProductRequest struct {
	SKU          string  `json:"sku" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Category     string  `json:"category" binding:"required"`
	Price        float64 `json:"price" binding:"required,gt=0"`
	CurrentStock int     `json:"current_stock" binding:"gte=0"`
	LeadTimeDays float64 `json:"lead_time_days" binding:"gte=0"`
}

type updateProductRequest struct {
	SKU          *string  `json:"sku"`
	Name         *string  `json:"name"`
	Category     *string  `json:"category"`
	Price        *float64 `json:"price"`
	CurrentStock *int     `json:"current_stock"`
	LeadTimeDays *float64 `json:"lead_time_days"`
}

type recordSaleRequest struct {
	ProductID string    `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gt=0"`
	Date      time.Time `json:"date" binding:"required"`
	UnitPrice float64   `json:"unit_price" binding:"required,gt=0"`
}

func (h *InventoryHandler) AddProduct(c *gin.Context) {
	var req addProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product payload", "details": err.Error()})
		return
	}

	category, ok := domain.ParseCategory(req.Category)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category: " + req.Category})
		return
	}

	product := h.service.AddProduct(c.Request.Context(), domain.ProductInput{
		SKU:          req.SKU,
		Name:         req.Name,
		Category:     category,
		Price:        req.Price,
		CurrentStock: req.CurrentStock,
		LeadTimeDays: req.LeadTimeDays,
	})

	c.JSON(http.StatusCreated, product)
}

func (h *InventoryHandler) UpdateProduct(c *gin.Context) {
	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid update payload", "details": err.Error()})
		return
	}

	update := domain.ProductUpdate{
		SKU:          req.SKU,
		Name:         req.Name,
		Price:        req.Price,
		CurrentStock: req.CurrentStock,
		LeadTimeDays: req.LeadTimeDays,
	}
	if req.Category != nil {
		category, ok := domain.ParseCategory(*req.Category)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category: " + *req.Category})
			return
		}
		update.Category = &category
	}

	// An unknown id is a silent no-op by contract.
	h.service.UpdateProduct(c.Request.Context(), c.Param("id"), update)

	c.Status(http.StatusNoContent)
}

func (h *InventoryHandler) DeleteProduct(c *gin.Context) {
	h.service.DeleteProduct(c.Request.Context(), c.Param("id"))

	c.Status(http.StatusNoContent)
}

func (h *InventoryHandler) GetProducts(c *gin.Context) {
	if raw := strings.TrimSpace(c.Query("category")); raw != "" {
		category, ok := domain.ParseCategory(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category: " + raw})
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": h.service.ProductsByCategory(c.Request.Context(), category)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": h.service.AllProductsWithMetrics(c.Request.Context())})
}

func (h *InventoryHandler) GetLowStockProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"products": h.service.LowStockProducts(c.Request.Context())})
}

func (h *InventoryHandler) GetProductMetrics(c *gin.Context) {
	metrics, ok := h.service.ProductMetrics(c.Request.Context(), c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	c.JSON(http.StatusOK, metrics)
}

func (h *InventoryHandler) GetSalesHistory(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sales": h.service.SalesHistory(c.Request.Context(), c.Param("id"))})
}

// RecordSale validates the payload before handing it to the engine. The store
// itself accepts whatever it is given, so all input checks live here.
func (h *InventoryHandler) RecordSale(c *gin.Context) {
	var req recordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sale payload", "details": err.Error()})
		return
	}

	if !h.service.HasProduct(c.Request.Context(), req.ProductID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	sale := h.service.RecordSale(c.Request.Context(), domain.SaleInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Date:      req.Date,
		UnitPrice: req.UnitPrice,
	})

	c.JSON(http.StatusCreated, sale)
}

func (h *InventoryHandler) GetDashboardStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.DashboardStats(c.Request.Context()))
}

func (h *InventoryHandler) GetNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"alerts": h.service.StockAlerts(c.Request.Context())})
}

func (h *InventoryHandler) GetSalesReport(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.SalesReport(c.Request.Context()))
}

// GetCategories returns the fixed product category set
func (h *InventoryHandler) GetCategories(c *gin.Context) {
	categories := make([]gin.H, 0)
	for _, category := range domain.Categories() {
		categories = append(categories, gin.H{
			"value": category,
			"label": domain.CategoryLabel(category),
		})
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
