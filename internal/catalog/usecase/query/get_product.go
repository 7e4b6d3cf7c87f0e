package query

import (
	"fmt"

	"github.com/adilet/stockeasy/internal/catalog/domain"
)

// GetProductQuery represents the query to fetch a single product
type GetProductQuery struct {
	ID string
}

// GetProductHandler handles get product query
type GetProductHandler struct {
	repo domain.ProductRepository
}

// NewGetProductHandler creates a new get product handler
func NewGetProductHandler(repo domain.ProductRepository) *GetProductHandler {
	return &GetProductHandler{repo: repo}
}

// Handle fetches the product matching q.ID
func (h *GetProductHandler) Handle(q GetProductQuery) (*domain.Product, error) {
	product, err := h.repo.FindByID(q.ID)
	if err != nil {
		return nil, fmt.Errorf("product not found")
	}

	return product, nil
}
