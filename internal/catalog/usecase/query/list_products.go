package query

import (
	"fmt"
	"strings"

	"github.com/adilet/stockeasy/internal/catalog/domain"
)

// ListProductsQuery represents the query to list catalog products
type ListProductsQuery struct {
	Search string // Optional: case-insensitive substring match on name
}

// ListProductsHandler handles list products query
type ListProductsHandler struct {
	repo domain.ProductRepository
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(repo domain.ProductRepository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

// Handle returns the catalog in insertion order, narrowed to products whose
// name contains the search term. The empty term matches everything.
func (h *ListProductsHandler) Handle(q ListProductsQuery) ([]domain.Product, error) {
	products, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	if q.Search == "" {
		return products, nil
	}

	term := strings.ToLower(q.Search)
	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), term) {
			filtered = append(filtered, p)
		}
	}

	return filtered, nil
}
