package kafka

import "time"

// Topics
const (
	TopicProductSold    = "stockeasy.product.sold"
	TopicProductCreated = "stockeasy.product.created"
)

// Event types
const (
	EventTypeProductSold    = "product.sold"
	EventTypeProductCreated = "product.created"
)

// ProductSoldEvent is emitted after the sales screen records a sale
type ProductSoldEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
	ProductID string    `json:"product_id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unit_price"`
	Total     float64   `json:"total"`
}

// ProductCreatedEvent is emitted after the inventory screen adds a product
type ProductCreatedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
	ProductID string    `json:"product_id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unit_price"`
}
