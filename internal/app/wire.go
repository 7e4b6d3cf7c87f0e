//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/adilet/stockeasy/internal/catalog/domain"
	"github.com/adilet/stockeasy/internal/catalog/repository"
	"github.com/adilet/stockeasy/internal/catalog/usecase/command"
	"github.com/adilet/stockeasy/internal/catalog/usecase/query"
	"github.com/adilet/stockeasy/internal/inventory"
	inventoryhttp "github.com/adilet/stockeasy/internal/inventory/delivery/http"
	"github.com/adilet/stockeasy/internal/sales"
	saleshttp "github.com/adilet/stockeasy/internal/sales/delivery/http"
	sessionhttp "github.com/adilet/stockeasy/internal/session/delivery/http"
	sessiondomain "github.com/adilet/stockeasy/internal/session/domain"
	"github.com/adilet/stockeasy/kafka"
)

// ProvideProductRepository provides the catalog repository
func ProvideProductRepository(db *gorm.DB) domain.ProductRepository {
	return repository.NewGormProductRepository(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideProductRepository,
)

var CatalogSet = wire.NewSet(
	command.NewAddProductHandler,
	command.NewEditProductHandler,
	command.NewDeleteProductHandler,
	command.NewSellProductHandler,
	query.NewListProductsHandler,
	query.NewGetProductHandler,
	query.NewGetStatsHandler,
)

var ScreenSet = wire.NewSet(
	inventory.NewScreen,
	sales.NewScreen,
)

// InitializeHandlers builds the three screen handlers over a shared catalog
// repository, session and event publisher
func InitializeHandlers(db *gorm.DB, session *sessiondomain.Session, publisher *kafka.Publisher) (*Handlers, error) {
	wire.Build(
		RepositorySet,
		CatalogSet,
		ScreenSet,
		sessionhttp.NewSessionHandler,
		inventoryhttp.NewInventoryHandler,
		saleshttp.NewSalesHandler,
		wire.Struct(new(Handlers), "*"),
	)
	return nil, nil
}
