package command

import (
	"fmt"

	"github.com/adilet/stockeasy/internal/catalog/domain"
)

// EditProductCommand represents the command to replace a product's fields
type EditProductCommand struct {
	ID          string
	Name        string
	Quantity    int
	Price       float64
	Description string
}

// EditProductHandler handles product edits
type EditProductHandler struct {
	repo domain.ProductRepository
}

// NewEditProductHandler creates a new edit product handler
func NewEditProductHandler(repo domain.ProductRepository) *EditProductHandler {
	return &EditProductHandler{repo: repo}
}

// Handle replaces every mutable field of the product matching cmd.ID.
// An unmatched id leaves the catalog untouched; that is not an error.
func (h *EditProductHandler) Handle(cmd EditProductCommand) error {
	product := &domain.Product{
		ID:          cmd.ID,
		Name:        cmd.Name,
		Quantity:    cmd.Quantity,
		Price:       cmd.Price,
		Description: cmd.Description,
	}

	if err := h.repo.Replace(product); err != nil {
		return fmt.Errorf("failed to edit product: %w", err)
	}

	return nil
}
