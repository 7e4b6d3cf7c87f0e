package command

import (
	"fmt"

	"github.com/adilet/stockeasy/internal/catalog/domain"
)

// SellProductCommand represents the command to record a sale
type SellProductCommand struct {
	ProductID string
	Quantity  int
}

// SellProductHandler handles sales
type SellProductHandler struct {
	repo domain.ProductRepository
}

// NewSellProductHandler creates a new sell product handler
func NewSellProductHandler(repo domain.ProductRepository) *SellProductHandler {
	return &SellProductHandler{repo: repo}
}

// Handle decrements the product's quantity by the sold amount. The store does
// not clamp: a sale larger than the available stock drives the quantity
// negative, and an unknown id is a silent no-op.
func (h *SellProductHandler) Handle(cmd SellProductCommand) error {
	if err := h.repo.DecrementQuantity(cmd.ProductID, cmd.Quantity); err != nil {
		return fmt.Errorf("failed to sell product: %w", err)
	}

	return nil
}
