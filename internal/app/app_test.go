package app_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/adilet/stockeasy/internal/app"
	"github.com/adilet/stockeasy/internal/catalog/domain"
	"github.com/adilet/stockeasy/internal/catalog/seed"
	"github.com/adilet/stockeasy/internal/inventory"
	"github.com/adilet/stockeasy/internal/sales"
	sessiondomain "github.com/adilet/stockeasy/internal/session/domain"
	"github.com/adilet/stockeasy/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init("stockeasy-test", false)
	os.Exit(m.Run())
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// The handler constructors register Prometheus collectors on the default
// registry, so the application is assembled exactly once per test process.
func TestApplicationFlow(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Product{}))
	require.NoError(t, seed.Products(db))

	session := sessiondomain.NewSession(sessiondomain.AllowAllAuthenticator{})

	handlers, err := app.InitializeHandlers(db, session, nil)
	require.NoError(t, err)

	router := mux.NewRouter()
	handlers.RegisterRoutes(router)

	var token string

	do := func(t *testing.T, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
		t.Helper()

		var buf bytes.Buffer
		if body != nil {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
		req := httptest.NewRequest(method, path, &buf)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		var env envelope
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
		return rec, env
	}

	inventoryView := func(t *testing.T, env envelope) inventory.View {
		t.Helper()
		var view inventory.View
		require.NoError(t, json.Unmarshal(env.Data, &view))
		return view
	}

	salesView := func(t *testing.T, env envelope) sales.View {
		t.Helper()
		var view sales.View
		require.NoError(t, json.Unmarshal(env.Data, &view))
		return view
	}

	t.Run("unauthenticated requests are rejected", func(t *testing.T) {
		rec, env := do(t, "GET", "/api/inventory", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, env.Success)

		rec, _ = do(t, "GET", "/api/dashboard", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		rec, _ = do(t, "POST", "/api/sales/sell", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("login requires both fields", func(t *testing.T) {
		rec, env := do(t, "POST", "/api/login", map[string]string{"email": "demo@example.com"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, env.Success)

		rec, _ = do(t, "POST", "/api/login", map[string]string{"password": "x"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("login opens the session on the dashboard", func(t *testing.T) {
		rec, env := do(t, "POST", "/api/login", map[string]string{
			"email":    "demo@example.com",
			"password": "anything",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, env.Success)

		var data struct {
			Token  string `json:"token"`
			Screen string `json:"screen"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		require.NotEmpty(t, data.Token)
		assert.Equal(t, "dashboard", data.Screen)
		token = data.Token
	})

	t.Run("dashboard shows targets and catalog stats", func(t *testing.T) {
		rec, env := do(t, "GET", "/api/dashboard", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var view struct {
			Title   string   `json:"title"`
			Targets []string `json:"targets"`
			Stats   struct {
				TotalProducts int64 `json:"total_products"`
				TotalStock    int64 `json:"total_stock"`
			} `json:"stats"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &view))
		assert.Equal(t, "StockEasy", view.Title)
		assert.Equal(t, []string{"inventory", "sales"}, view.Targets)
		assert.Equal(t, int64(2), view.Stats.TotalProducts)
		assert.Equal(t, int64(15), view.Stats.TotalStock)
	})

	t.Run("inactive screens respond with conflict", func(t *testing.T) {
		rec, env := do(t, "GET", "/api/inventory", nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.False(t, env.Success)

		rec, _ = do(t, "GET", "/api/sales", nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("navigation rejects unknown targets", func(t *testing.T) {
		rec, env := do(t, "POST", "/api/navigate", map[string]string{"target": "settings"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, env.Success)
	})

	t.Run("navigate to inventory", func(t *testing.T) {
		rec, env := do(t, "POST", "/api/navigate", map[string]string{"target": "inventory"})
		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, env.Success)

		rec, _ = do(t, "GET", "/api/dashboard", nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	var widgetID string

	t.Run("inventory renders the seeded catalog", func(t *testing.T) {
		rec, env := do(t, "GET", "/api/inventory", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		view := inventoryView(t, env)
		require.Len(t, view.Products, 2)
		assert.Equal(t, "Producto 1", view.Products[0].Name)
		assert.Equal(t, "Producto 2", view.Products[1].Name)
		assert.Equal(t, "add", view.ActiveForm)
	})

	t.Run("add a product through the draft", func(t *testing.T) {
		_, env := do(t, "PATCH", "/api/inventory/draft", inventory.ProductForm{
			Name:        "Widget",
			Quantity:    "3",
			Price:       "2.50",
			Description: "x",
		})
		view := inventoryView(t, env)
		assert.Equal(t, "Widget", view.Draft.Name)
		assert.Equal(t, 3, view.Draft.Quantity)

		rec, env := do(t, "POST", "/api/inventory/products", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		view = inventoryView(t, env)
		require.Len(t, view.Products, 3)
		assert.Equal(t, "Widget", view.Products[2].Name)
		assert.Equal(t, 3, view.Products[2].Quantity)
		assert.Equal(t, "2.50", view.Products[2].PriceDisplay)
		assert.Equal(t, domain.Draft{}, view.Draft)
		widgetID = view.Products[2].ID
	})

	t.Run("edit the first seed product", func(t *testing.T) {
		rec, env := do(t, "GET", "/api/inventory", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		firstID := inventoryView(t, env).Products[0].ID

		_, env = do(t, "POST", "/api/inventory/products/"+firstID+"/edit", nil)
		view := inventoryView(t, env)
		assert.Equal(t, "edit", view.ActiveForm)
		require.NotNil(t, view.Editing)
		assert.Equal(t, "Producto 1", view.Editing.Name)

		_, env = do(t, "PATCH", "/api/inventory/editing", inventory.ProductForm{
			Name:        "Renamed",
			Quantity:    "7",
			Price:       "9.99",
			Description: view.Editing.Description,
		})
		view = inventoryView(t, env)
		require.NotNil(t, view.Editing)
		assert.Equal(t, "Renamed", view.Editing.Name)

		// Catalog unchanged until save
		assert.Equal(t, "Producto 1", view.Products[0].Name)

		_, env = do(t, "POST", "/api/inventory/editing/save", nil)
		view = inventoryView(t, env)
		assert.Equal(t, "add", view.ActiveForm)
		assert.Nil(t, view.Editing)
		assert.Equal(t, "Renamed", view.Products[0].Name)
		assert.Equal(t, 7, view.Products[0].Quantity)
	})

	t.Run("cancel an edit", func(t *testing.T) {
		_, env := do(t, "POST", "/api/inventory/products/"+widgetID+"/edit", nil)
		require.Equal(t, "edit", inventoryView(t, env).ActiveForm)

		_, env = do(t, "DELETE", "/api/inventory/editing", nil)
		view := inventoryView(t, env)
		assert.Equal(t, "add", view.ActiveForm)
		assert.Equal(t, "Widget", view.Products[2].Name)
	})

	t.Run("delete the second seed product", func(t *testing.T) {
		rec, env := do(t, "GET", "/api/inventory", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		secondID := inventoryView(t, env).Products[1].ID

		_, env = do(t, "DELETE", "/api/inventory/products/"+secondID, nil)
		view := inventoryView(t, env)
		require.Len(t, view.Products, 2)
		assert.Equal(t, "Renamed", view.Products[0].Name)
		assert.Equal(t, "Widget", view.Products[1].Name)
	})

	t.Run("inventory search filters the list", func(t *testing.T) {
		_, env := do(t, "PATCH", "/api/inventory/search", map[string]string{"term": "zzz"})
		view := inventoryView(t, env)
		assert.Equal(t, "zzz", view.Search)
		assert.Empty(t, view.Products)

		_, env = do(t, "PATCH", "/api/inventory/search", map[string]string{"term": ""})
		assert.Len(t, inventoryView(t, env).Products, 2)
	})

	t.Run("navigate to sales and sell the widget", func(t *testing.T) {
		rec, _ := do(t, "POST", "/api/navigate", map[string]string{"target": "sales"})
		require.Equal(t, http.StatusOK, rec.Code)

		rec, _ = do(t, "GET", "/api/inventory", nil)
		assert.Equal(t, http.StatusConflict, rec.Code)

		_, env := do(t, "POST", "/api/sales/select", map[string]string{"id": widgetID})
		view := salesView(t, env)
		require.NotNil(t, view.Selection)
		assert.Equal(t, "Widget", view.Selection.Product.Name)
		assert.Equal(t, 1, view.Selection.Quantity)

		_, env = do(t, "PATCH", "/api/sales/quantity", map[string]string{"quantity": "2"})
		view = salesView(t, env)
		require.NotNil(t, view.Selection)
		assert.Equal(t, 2, view.Selection.Quantity)
		assert.Equal(t, "5.00", view.Selection.TotalDisplay)

		rec, env = do(t, "POST", "/api/sales/sell", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		view = salesView(t, env)
		assert.Nil(t, view.Selection)
		for _, card := range view.Products {
			if card.ID == widgetID {
				assert.Equal(t, 1, card.Quantity)
			}
		}
	})

	t.Run("invalid quantity input leaves the field unchanged", func(t *testing.T) {
		_, env := do(t, "POST", "/api/sales/select", map[string]string{"id": widgetID})
		view := salesView(t, env)
		require.NotNil(t, view.Selection)
		assert.Equal(t, 1, view.Selection.Quantity)

		_, env = do(t, "PATCH", "/api/sales/quantity", map[string]string{"quantity": "lots"})
		view = salesView(t, env)
		require.NotNil(t, view.Selection)
		assert.Equal(t, 1, view.Selection.Quantity)
	})

	t.Run("sell without a selection is a no-op", func(t *testing.T) {
		// Selling clears the previous selection first
		rec, _ := do(t, "POST", "/api/sales/sell", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec, env := do(t, "POST", "/api/sales/sell", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		view := salesView(t, env)
		assert.Nil(t, view.Selection)
		for _, card := range view.Products {
			if card.ID == widgetID {
				assert.Equal(t, 0, card.Quantity)
			}
		}
	})

	t.Run("session endpoint reflects the current state", func(t *testing.T) {
		rec, env := do(t, "GET", "/api/session", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var view struct {
			Authenticated bool   `json:"authenticated"`
			Screen        string `json:"screen"`
			Email         string `json:"email"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &view))
		assert.True(t, view.Authenticated)
		assert.Equal(t, "sales", view.Screen)
		assert.Equal(t, "demo@example.com", view.Email)
	})
}
