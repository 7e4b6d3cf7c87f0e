// Package sales implements the sales screen: search, product selection,
// quantity entry and the sell action that decrements catalog stock.
package sales

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/adilet/stockeasy/internal/catalog/domain"
	"github.com/adilet/stockeasy/internal/catalog/usecase/command"
	"github.com/adilet/stockeasy/internal/catalog/usecase/query"
)

// Card is one selectable catalog entry on the sales screen
type Card struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
	PriceDisplay string  `json:"price_display"`
	Selected     bool    `json:"selected"`
}

// Selection is the sale panel for the currently selected product. The
// quantity bounds are advisory input-control metadata; the store itself never
// clamps a sale.
type Selection struct {
	Product      domain.Product `json:"product"`
	Quantity     int            `json:"quantity"`
	MinQuantity  int            `json:"min_quantity"`
	MaxQuantity  int            `json:"max_quantity"`
	Total        float64        `json:"total"`
	TotalDisplay string         `json:"total_display"`
}

// View is the rendered state of the sales screen
type View struct {
	Search    string     `json:"search"`
	Products  []Card     `json:"products"`
	Selection *Selection `json:"selection,omitempty"`
}

// Screen holds the sales screen state: the search term, the selected product
// snapshot and the quantity field.
type Screen struct {
	mu       sync.Mutex
	search   string
	selected *domain.Product
	quantity int

	sellHandler *command.SellProductHandler
	listHandler *query.ListProductsHandler
	getHandler  *query.GetProductHandler
}

// NewScreen creates a sales screen with no selection and quantity 1
func NewScreen(
	sellHandler *command.SellProductHandler,
	listHandler *query.ListProductsHandler,
	getHandler *query.GetProductHandler,
) *Screen {
	return &Screen{
		quantity:    1,
		sellHandler: sellHandler,
		listHandler: listHandler,
		getHandler:  getHandler,
	}
}

// SetSearch updates the search term
func (s *Screen) SetSearch(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = term
}

// Select snapshots the clicked product as the current selection. Selecting a
// different product keeps the quantity field as it was; an unknown id leaves
// the selection unchanged.
func (s *Screen) Select(id string) error {
	product, err := s.getHandler.Handle(query.GetProductQuery{ID: id})
	if err != nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := *product
	s.selected = &snapshot
	return nil
}

// SetQuantity updates the quantity field from raw form input. Input that does
// not parse as an integer leaves the field unchanged; the [1, available]
// range stays advisory, so a parsed out-of-range value is accepted.
func (s *Screen) SetQuantity(raw string) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.quantity = v
}

// Quantity returns the current quantity field value
func (s *Screen) Quantity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quantity
}

// Sell decrements the selected product's stock by the quantity field, then
// clears the selection and resets the quantity to 1. Without a selection this
// is a no-op. The sold snapshot and amount are returned for event publishing.
func (s *Screen) Sell() (*domain.Product, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected == nil {
		return nil, 0, nil
	}

	sold := *s.selected
	amount := s.quantity

	err := s.sellHandler.Handle(command.SellProductCommand{
		ProductID: sold.ID,
		Quantity:  amount,
	})
	if err != nil {
		return nil, 0, err
	}

	s.selected = nil
	s.quantity = 1
	return &sold, amount, nil
}

// Render derives the current view. The total is selected price times
// quantity, recomputed on every render from the selection snapshot.
func (s *Screen) Render() (*View, error) {
	s.mu.Lock()
	search := s.search
	quantity := s.quantity
	var selected *domain.Product
	if s.selected != nil {
		snapshot := *s.selected
		selected = &snapshot
	}
	s.mu.Unlock()

	products, err := s.listHandler.Handle(query.ListProductsQuery{Search: search})
	if err != nil {
		return nil, err
	}

	cards := make([]Card, 0, len(products))
	for _, p := range products {
		cards = append(cards, Card{
			ID:           p.ID,
			Name:         p.Name,
			Quantity:     p.Quantity,
			Price:        p.Price,
			PriceDisplay: fmt.Sprintf("%.2f", p.Price),
			Selected:     selected != nil && selected.ID == p.ID,
		})
	}

	view := &View{
		Search:   search,
		Products: cards,
	}

	if selected != nil {
		total := selected.Price * float64(quantity)
		view.Selection = &Selection{
			Product:      *selected,
			Quantity:     quantity,
			MinQuantity:  1,
			MaxQuantity:  selected.Quantity,
			Total:        total,
			TotalDisplay: fmt.Sprintf("%.2f", total),
		}
	}

	return view, nil
}
