package repository

import (
	"gorm.io/gorm"

	"github.com/adilet/stockeasy/internal/catalog/domain"
)

type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Product{})
}

func (r *GormProductRepository) Create(product *domain.Product) error {
	return r.db.Create(product).Error
}

func (r *GormProductRepository) FindByID(id string) (*domain.Product, error) {
	var product domain.Product
	err := r.db.Where("id = ?", id).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// FindAll returns the whole catalog in insertion order
func (r *GormProductRepository) FindAll() ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.Order("position asc").Find(&products).Error
	return products, err
}

// Replace overwrites every mutable field of the record matching the given
// product's id. A missing id is a silent no-op. The update map is explicit so
// zero values (empty name, zero quantity) overwrite like any other value.
func (r *GormProductRepository) Replace(product *domain.Product) error {
	return r.db.Model(&domain.Product{}).
		Where("id = ?", product.ID).
		Updates(map[string]interface{}{
			"name":        product.Name,
			"quantity":    product.Quantity,
			"price":       product.Price,
			"description": product.Description,
		}).Error
}

// Delete removes the record matching id. Deleting an absent id is a no-op,
// which also makes repeated deletes idempotent.
func (r *GormProductRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&domain.Product{}).Error
}

// DecrementQuantity subtracts the sold amount from the record's quantity.
// The store does not floor at zero; the [1, available] bound is advisory and
// lives in the sales view only. A missing id is a silent no-op.
func (r *GormProductRepository) DecrementQuantity(id string, amount int) error {
	return r.db.Model(&domain.Product{}).
		Where("id = ?", id).
		UpdateColumn("quantity", gorm.Expr("quantity - ?", amount)).Error
}

func (r *GormProductRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Product{}).Count(&count).Error
	return count, err
}
