package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/adilet/stockeasy/internal/catalog/domain"
	"github.com/adilet/stockeasy/internal/inventory"
	sessionhttp "github.com/adilet/stockeasy/internal/session/delivery/http"
	sessiondomain "github.com/adilet/stockeasy/internal/session/domain"
	"github.com/adilet/stockeasy/kafka"
	"github.com/adilet/stockeasy/pkg/logger"
)

// InventoryHandler exposes the inventory screen over HTTP
type InventoryHandler struct {
	screen    *inventory.Screen
	session   *sessiondomain.Session
	repo      domain.ProductRepository
	publisher *kafka.Publisher

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	totalProducts  prometheus.Gauge
}

// NewInventoryHandler creates a new inventory screen handler
func NewInventoryHandler(
	screen *inventory.Screen,
	session *sessiondomain.Session,
	repo domain.ProductRepository,
	publisher *kafka.Publisher,
) *InventoryHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_screen_requests_total",
			Help: "Total number of requests to the inventory screen",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inventory_screen_request_duration_seconds",
			Help:    "Duration of inventory screen requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	totalProducts := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "stockeasy_total_products",
			Help: "Total number of products in the catalog",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(totalProducts)

	return &InventoryHandler{
		screen:         screen,
		session:        session,
		repo:           repo,
		publisher:      publisher,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
		totalProducts:  totalProducts,
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *InventoryHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes wires the inventory screen endpoints. Every route sits
// behind the session gate: the screen must be active to use it.
func (h *InventoryHandler) RegisterRoutes(router *mux.Router) {
	guard := func(next http.HandlerFunc) http.HandlerFunc {
		return sessionhttp.AuthMiddleware(h.session)(
			sessionhttp.RequireScreen(h.session, sessiondomain.ScreenInventory)(next))
	}

	router.HandleFunc("/api/inventory",
		h.metricsMiddleware("/api/inventory", guard(h.GetView))).Methods("GET")
	router.HandleFunc("/api/inventory/search",
		h.metricsMiddleware("/api/inventory/search", guard(h.SetSearch))).Methods("PATCH")
	router.HandleFunc("/api/inventory/draft",
		h.metricsMiddleware("/api/inventory/draft", guard(h.UpdateDraft))).Methods("PATCH")
	router.HandleFunc("/api/inventory/products",
		h.metricsMiddleware("/api/inventory/products", guard(h.AddProduct))).Methods("POST")
	router.HandleFunc("/api/inventory/products/{id}/edit",
		h.metricsMiddleware("/api/inventory/products/{id}/edit", guard(h.BeginEdit))).Methods("POST")
	router.HandleFunc("/api/inventory/editing",
		h.metricsMiddleware("/api/inventory/editing", guard(h.UpdateEditing))).Methods("PATCH")
	router.HandleFunc("/api/inventory/editing/save",
		h.metricsMiddleware("/api/inventory/editing/save", guard(h.SaveEdit))).Methods("POST")
	router.HandleFunc("/api/inventory/editing",
		h.metricsMiddleware("/api/inventory/editing", guard(h.CancelEdit))).Methods("DELETE")
	router.HandleFunc("/api/inventory/products/{id}",
		h.metricsMiddleware("/api/inventory/products/{id}", guard(h.DeleteProduct))).Methods("DELETE")
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// GetView handles GET /api/inventory
func (h *InventoryHandler) GetView(w http.ResponseWriter, r *http.Request) {
	h.renderScreen(w)
}

// SetSearch handles PATCH /api/inventory/search
func (h *InventoryHandler) SetSearch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Term string `json:"term"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	h.screen.SetSearch(req.Term)
	h.renderScreen(w)
}

// UpdateDraft handles PATCH /api/inventory/draft
func (h *InventoryHandler) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	var form inventory.ProductForm

	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	h.screen.UpdateDraft(form)
	h.renderScreen(w)
}

// AddProduct handles POST /api/inventory/products: it submits the draft
func (h *InventoryHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.screen.SubmitAdd()
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to add product")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to add product",
		})
		return
	}

	h.updateProductsMetric()

	if err := h.publisher.PublishProductCreated(r.Context(), kafka.ProductCreatedEvent{
		ProductID: product.ID,
		Name:      product.Name,
		Quantity:  product.Quantity,
		UnitPrice: product.Price,
	}); err != nil {
		logger.Logger.Warn().Err(err).Msg("Failed to publish product created event")
	}

	logger.Logger.Info().
		Str("product_id", product.ID).
		Str("name", product.Name).
		Msg("Product added")

	h.renderScreen(w)
}

// BeginEdit handles POST /api/inventory/products/{id}/edit
func (h *InventoryHandler) BeginEdit(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := h.screen.BeginEdit(vars["id"]); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to begin edit")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to begin edit",
		})
		return
	}

	h.renderScreen(w)
}

// UpdateEditing handles PATCH /api/inventory/editing
func (h *InventoryHandler) UpdateEditing(w http.ResponseWriter, r *http.Request) {
	var form inventory.ProductForm

	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	h.screen.UpdateEditing(form)
	h.renderScreen(w)
}

// SaveEdit handles POST /api/inventory/editing/save
func (h *InventoryHandler) SaveEdit(w http.ResponseWriter, r *http.Request) {
	if err := h.screen.SaveEdit(); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to save edit")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to save edit",
		})
		return
	}

	h.renderScreen(w)
}

// CancelEdit handles DELETE /api/inventory/editing
func (h *InventoryHandler) CancelEdit(w http.ResponseWriter, r *http.Request) {
	h.screen.CancelEdit()
	h.renderScreen(w)
}

// DeleteProduct handles DELETE /api/inventory/products/{id}
func (h *InventoryHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := h.screen.Delete(vars["id"]); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to delete product")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to delete product",
		})
		return
	}

	h.updateProductsMetric()
	h.renderScreen(w)
}

// renderScreen responds with the freshly derived inventory view
func (h *InventoryHandler) renderScreen(w http.ResponseWriter) {
	view, err := h.screen.Render()
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to render inventory screen")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to render inventory screen",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    view,
	})
}

// updateProductsMetric updates the total products gauge
func (h *InventoryHandler) updateProductsMetric() {
	count, err := h.repo.Count()
	if err == nil {
		h.totalProducts.Set(float64(count))
	}
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
