// Package seed bootstraps the demo catalog. The store starts every process
// with the same two records the original app shipped with.
package seed

import (
	"errors"

	"gorm.io/gorm"

	"github.com/adilet/stockeasy/internal/catalog/domain"
	"github.com/adilet/stockeasy/pkg/idgen"
)

// Products seeds the two demo records when the catalog is empty. Reseeding a
// non-empty catalog is a no-op so restarts of a shared database stay stable.
func Products(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	var count int64
	if err := db.Model(&domain.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	records := []domain.Product{
		{
			ID:          idgen.NextID(),
			Name:        "Producto 1",
			Quantity:    10,
			Price:       9.99,
			Description: "Descripción del producto 1",
		},
		{
			ID:          idgen.NextID(),
			Name:        "Producto 2",
			Quantity:    5,
			Price:       19.99,
			Description: "Descripción del producto 2",
		},
	}

	return db.Create(&records).Error
}
