// Package app assembles the screen handlers into one application
package app

import (
	"github.com/gorilla/mux"

	inventoryhttp "github.com/adilet/stockeasy/internal/inventory/delivery/http"
	saleshttp "github.com/adilet/stockeasy/internal/sales/delivery/http"
	sessionhttp "github.com/adilet/stockeasy/internal/session/delivery/http"
)

// Handlers groups the HTTP handlers for the four screens (login and
// dashboard share the session handler)
type Handlers struct {
	Session   *sessionhttp.SessionHandler
	Inventory *inventoryhttp.InventoryHandler
	Sales     *saleshttp.SalesHandler
}

// RegisterRoutes wires every screen endpoint onto the router
func (h *Handlers) RegisterRoutes(router *mux.Router) {
	h.Session.RegisterRoutes(router)
	h.Inventory.RegisterRoutes(router)
	h.Sales.RegisterRoutes(router)
}
