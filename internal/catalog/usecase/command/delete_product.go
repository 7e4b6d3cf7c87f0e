package command

import (
	"fmt"

	"github.com/adilet/stockeasy/internal/catalog/domain"
)

// DeleteProductCommand represents the command to remove a product
type DeleteProductCommand struct {
	ID string
}

// DeleteProductHandler handles product deletion
type DeleteProductHandler struct {
	repo domain.ProductRepository
}

// NewDeleteProductHandler creates a new delete product handler
func NewDeleteProductHandler(repo domain.ProductRepository) *DeleteProductHandler {
	return &DeleteProductHandler{repo: repo}
}

// Handle removes the product matching cmd.ID. Deleting an id that is already
// gone is an idempotent no-op.
func (h *DeleteProductHandler) Handle(cmd DeleteProductCommand) error {
	if err := h.repo.Delete(cmd.ID); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}
