package query_test

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/adilet/stockeasy/internal/catalog/domain"
	"github.com/adilet/stockeasy/internal/catalog/repository"
	"github.com/adilet/stockeasy/internal/catalog/usecase/query"
)

func newTestRepo(t *testing.T) *repository.GormProductRepository {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	repo := repository.NewGormProductRepository(db)
	require.NoError(t, repo.AutoMigrate())
	return repo
}

func seedCatalog(t *testing.T, repo *repository.GormProductRepository) {
	t.Helper()

	products := []domain.Product{
		{ID: "p1", Name: "Producto 1", Quantity: 10, Price: 9.99},
		{ID: "p2", Name: "Producto 2", Quantity: 5, Price: 19.99},
		{ID: "p3", Name: "Widget", Quantity: 3, Price: 2.50},
	}
	for i := range products {
		require.NoError(t, repo.Create(&products[i]))
	}
}

func TestListProductsEmptySearchReturnsAll(t *testing.T) {
	repo := newTestRepo(t)
	seedCatalog(t, repo)
	handler := query.NewListProductsHandler(repo)

	products, err := handler.Handle(query.ListProductsQuery{})
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "p1", products[0].ID)
	assert.Equal(t, "p2", products[1].ID)
	assert.Equal(t, "p3", products[2].ID)
}

func TestListProductsSearchIsCaseInsensitiveSubstring(t *testing.T) {
	repo := newTestRepo(t)
	seedCatalog(t, repo)
	handler := query.NewListProductsHandler(repo)

	products, err := handler.Handle(query.ListProductsQuery{Search: "pRoDuCtO"})
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Producto 1", products[0].Name)
	assert.Equal(t, "Producto 2", products[1].Name)

	products, err = handler.Handle(query.ListProductsQuery{Search: "idge"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Widget", products[0].Name)
}

func TestListProductsSearchWithNoMatchesReturnsEmpty(t *testing.T) {
	repo := newTestRepo(t)
	seedCatalog(t, repo)
	handler := query.NewListProductsHandler(repo)

	products, err := handler.Handle(query.ListProductsQuery{Search: "zzz"})
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestGetProduct(t *testing.T) {
	repo := newTestRepo(t)
	seedCatalog(t, repo)
	handler := query.NewGetProductHandler(repo)

	product, err := handler.Handle(query.GetProductQuery{ID: "p2"})
	require.NoError(t, err)
	assert.Equal(t, "Producto 2", product.Name)

	_, err = handler.Handle(query.GetProductQuery{ID: "missing"})
	assert.Error(t, err)
}

func TestGetStats(t *testing.T) {
	repo := newTestRepo(t)
	seedCatalog(t, repo)
	handler := query.NewGetStatsHandler(repo)

	stats, err := handler.Handle(query.GetStatsQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalProducts)
	assert.Equal(t, int64(18), stats.TotalStock)
	assert.InDelta(t, (9.99+19.99+2.50)/3, stats.AveragePrice, 1e-9)
	assert.InDelta(t, 10*9.99+5*19.99+3*2.50, stats.InventoryValue, 1e-9)
}

func TestGetStatsEmptyCatalog(t *testing.T) {
	repo := newTestRepo(t)
	handler := query.NewGetStatsHandler(repo)

	stats, err := handler.Handle(query.GetStatsQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalProducts)
	assert.Equal(t, 0.0, stats.AveragePrice)
	assert.Equal(t, 0.0, stats.InventoryValue)
}
