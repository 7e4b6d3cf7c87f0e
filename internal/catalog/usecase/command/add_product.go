package command

import (
	"fmt"

	"github.com/adilet/stockeasy/internal/catalog/domain"
	"github.com/adilet/stockeasy/pkg/idgen"
)

// AddProductCommand represents the command to append a product to the catalog
type AddProductCommand struct {
	Name        string
	Quantity    int
	Price       float64
	Description string
}

// AddProductHandler handles product creation
type AddProductHandler struct {
	repo domain.ProductRepository
}

// NewAddProductHandler creates a new add product handler
func NewAddProductHandler(repo domain.ProductRepository) *AddProductHandler {
	return &AddProductHandler{repo: repo}
}

// Handle appends a new product with a freshly generated id. The draft is
// taken as-is; an all-empty draft is a valid product.
func (h *AddProductHandler) Handle(cmd AddProductCommand) (*domain.Product, error) {
	product := &domain.Product{
		ID:          idgen.NextID(),
		Name:        cmd.Name,
		Quantity:    cmd.Quantity,
		Price:       cmd.Price,
		Description: cmd.Description,
	}

	if err := h.repo.Create(product); err != nil {
		return nil, fmt.Errorf("failed to add product: %w", err)
	}

	return product, nil
}
