package domain

import "time"

// Product represents a sellable inventory item
type Product struct {
	// Position preserves insertion order for display; it never leaves the
	// process.
	Position    uint      `json:"-" gorm:"primaryKey;autoIncrement"`
	ID          string    `json:"id" gorm:"uniqueIndex;not null"`
	Name        string    `json:"name"`
	Quantity    int       `json:"quantity"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// Draft holds the fields of an unsaved product while an add or edit form is
// being composed
type Draft struct {
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// ProductRepository defines the contract for catalog data access.
//
// Mutations against a missing id are silent no-ops: the store always
// "succeeds" against its in-memory list, and errors are reserved for storage
// faults.
type ProductRepository interface {
	Create(product *Product) error
	FindByID(id string) (*Product, error)
	FindAll() ([]Product, error)
	Replace(product *Product) error
	Delete(id string) error
	DecrementQuantity(id string, amount int) error
	Count() (int64, error)
}
