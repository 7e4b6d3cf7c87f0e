package query

import (
	"fmt"

	"github.com/adilet/stockeasy/internal/catalog/domain"
)

// GetStatsQuery represents the query to get catalog statistics
type GetStatsQuery struct{}

// CatalogStats represents catalog statistics
type CatalogStats struct {
	TotalProducts  int64   `json:"total_products"`
	TotalStock     int64   `json:"total_stock"`
	AveragePrice   float64 `json:"average_price"`
	InventoryValue float64 `json:"inventory_value"`
}

// GetStatsHandler handles get stats query
type GetStatsHandler struct {
	repo domain.ProductRepository
}

// NewGetStatsHandler creates a new get stats handler
func NewGetStatsHandler(repo domain.ProductRepository) *GetStatsHandler {
	return &GetStatsHandler{repo: repo}
}

// Handle computes aggregate statistics over the whole catalog
func (h *GetStatsHandler) Handle(q GetStatsQuery) (*CatalogStats, error) {
	products, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	var totalStock int64
	var totalPrice float64
	var inventoryValue float64

	for _, product := range products {
		totalStock += int64(product.Quantity)
		totalPrice += product.Price
		inventoryValue += float64(product.Quantity) * product.Price
	}

	averagePrice := 0.0
	if len(products) > 0 {
		averagePrice = totalPrice / float64(len(products))
	}

	return &CatalogStats{
		TotalProducts:  int64(len(products)),
		TotalStock:     totalStock,
		AveragePrice:   averagePrice,
		InventoryValue: inventoryValue,
	}, nil
}
