// Package inventory implements the inventory screen: search, the add form,
// the edit form, and delete. All catalog mutations are delegated to the
// catalog usecases; the screen owns only its own form state.
package inventory

import (
	"fmt"
	"sync"

	"github.com/adilet/stockeasy/internal/catalog/domain"
	"github.com/adilet/stockeasy/internal/catalog/usecase/command"
	"github.com/adilet/stockeasy/internal/catalog/usecase/query"
	"github.com/adilet/stockeasy/pkg/forms"
)

// ProductForm carries the raw form field values. Quantity and price arrive as
// text and are coerced at this boundary, defaulting to zero on invalid input.
type ProductForm struct {
	Name        string `json:"name"`
	Quantity    string `json:"quantity"`
	Price       string `json:"price"`
	Description string `json:"description"`
}

// ProductCard is one rendered catalog entry
type ProductCard struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
	PriceDisplay string  `json:"price_display"`
	Description  string  `json:"description"`
}

// View is the rendered state of the inventory screen. Exactly one of the add
// and edit forms is visible: the edit form supersedes the add form whenever
// an edit buffer is present.
type View struct {
	Search     string          `json:"search"`
	Products   []ProductCard   `json:"products"`
	ActiveForm string          `json:"active_form"`
	Draft      domain.Draft    `json:"draft"`
	Editing    *domain.Product `json:"editing,omitempty"`
}

// Screen holds the inventory screen state: the search term, the draft for a
// new product, and the optional edit buffer.
type Screen struct {
	mu      sync.Mutex
	search  string
	draft   domain.Draft
	editing *domain.Product

	addHandler    *command.AddProductHandler
	editHandler   *command.EditProductHandler
	deleteHandler *command.DeleteProductHandler
	listHandler   *query.ListProductsHandler
	getHandler    *query.GetProductHandler
}

// NewScreen creates an inventory screen with an empty search term, an
// all-empty draft and no edit buffer.
func NewScreen(
	addHandler *command.AddProductHandler,
	editHandler *command.EditProductHandler,
	deleteHandler *command.DeleteProductHandler,
	listHandler *query.ListProductsHandler,
	getHandler *query.GetProductHandler,
) *Screen {
	return &Screen{
		addHandler:    addHandler,
		editHandler:   editHandler,
		deleteHandler: deleteHandler,
		listHandler:   listHandler,
		getHandler:    getHandler,
	}
}

// SetSearch updates the search term; the filtered view is derived on the next
// render.
func (s *Screen) SetSearch(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = term
}

// UpdateDraft replaces the draft-new-product fields from the form values
func (s *Screen) UpdateDraft(form ProductForm) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = domain.Draft{
		Name:        form.Name,
		Quantity:    forms.ParseIntOrZero(form.Quantity),
		Price:       forms.ParseFloatOrZero(form.Price),
		Description: form.Description,
	}
}

// SubmitAdd appends the draft to the catalog and resets the draft to
// empty/zero.
func (s *Screen) SubmitAdd() (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, err := s.addHandler.Handle(command.AddProductCommand{
		Name:        s.draft.Name,
		Quantity:    s.draft.Quantity,
		Price:       s.draft.Price,
		Description: s.draft.Description,
	})
	if err != nil {
		return nil, err
	}

	s.draft = domain.Draft{}
	return product, nil
}

// BeginEdit copies the displayed product into the edit buffer. From that
// point until save the buffer is independent of the store entry. An unknown
// id leaves the screen unchanged.
func (s *Screen) BeginEdit(id string) error {
	product, err := s.getHandler.Handle(query.GetProductQuery{ID: id})
	if err != nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := *product
	s.editing = &snapshot
	return nil
}

// UpdateEditing applies form values to the edit buffer only. Without an
// active edit buffer this is a no-op.
func (s *Screen) UpdateEditing(form ProductForm) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.editing == nil {
		return
	}
	s.editing.Name = form.Name
	s.editing.Quantity = forms.ParseIntOrZero(form.Quantity)
	s.editing.Price = forms.ParseFloatOrZero(form.Price)
	s.editing.Description = form.Description
}

// SaveEdit writes the edit buffer back to the catalog and clears it,
// returning the screen to add mode.
func (s *Screen) SaveEdit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.editing == nil {
		return nil
	}

	err := s.editHandler.Handle(command.EditProductCommand{
		ID:          s.editing.ID,
		Name:        s.editing.Name,
		Quantity:    s.editing.Quantity,
		Price:       s.editing.Price,
		Description: s.editing.Description,
	})
	if err != nil {
		return err
	}

	s.editing = nil
	return nil
}

// CancelEdit discards the edit buffer without touching the catalog
func (s *Screen) CancelEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editing = nil
}

// Delete removes the product immediately; there is no confirmation step
func (s *Screen) Delete(id string) error {
	return s.deleteHandler.Handle(command.DeleteProductCommand{ID: id})
}

// Render derives the current view from the catalog and the screen state
func (s *Screen) Render() (*View, error) {
	s.mu.Lock()
	search := s.search
	draft := s.draft
	var editing *domain.Product
	if s.editing != nil {
		snapshot := *s.editing
		editing = &snapshot
	}
	s.mu.Unlock()

	products, err := s.listHandler.Handle(query.ListProductsQuery{Search: search})
	if err != nil {
		return nil, err
	}

	cards := make([]ProductCard, 0, len(products))
	for _, p := range products {
		cards = append(cards, ProductCard{
			ID:           p.ID,
			Name:         p.Name,
			Quantity:     p.Quantity,
			Price:        p.Price,
			PriceDisplay: fmt.Sprintf("%.2f", p.Price),
			Description:  p.Description,
		})
	}

	activeForm := "add"
	if editing != nil {
		activeForm = "edit"
	}

	return &View{
		Search:     search,
		Products:   cards,
		ActiveForm: activeForm,
		Draft:      draft,
		Editing:    editing,
	}, nil
}
