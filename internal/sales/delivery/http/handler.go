package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/adilet/stockeasy/internal/sales"
	sessionhttp "github.com/adilet/stockeasy/internal/session/delivery/http"
	sessiondomain "github.com/adilet/stockeasy/internal/session/domain"
	"github.com/adilet/stockeasy/kafka"
	"github.com/adilet/stockeasy/pkg/logger"
)

// SalesHandler exposes the sales screen over HTTP
type SalesHandler struct {
	screen    *sales.Screen
	session   *sessiondomain.Session
	publisher *kafka.Publisher

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	itemsSold      prometheus.Counter
	revenue        prometheus.Counter
}

// NewSalesHandler creates a new sales screen handler
func NewSalesHandler(
	screen *sales.Screen,
	session *sessiondomain.Session,
	publisher *kafka.Publisher,
) *SalesHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sales_screen_requests_total",
			Help: "Total number of requests to the sales screen",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sales_screen_request_duration_seconds",
			Help:    "Duration of sales screen requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	itemsSold := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "stockeasy_items_sold_total",
		Help: "Total units sold",
	})

	revenue := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "stockeasy_revenue_total",
		Help: "Total sale value recorded",
	})

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(itemsSold)
	prometheus.MustRegister(revenue)

	return &SalesHandler{
		screen:         screen,
		session:        session,
		publisher:      publisher,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
		itemsSold:      itemsSold,
		revenue:        revenue,
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
func (h *SalesHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes wires the sales screen endpoints behind the session gate
func (h *SalesHandler) RegisterRoutes(router *mux.Router) {
	guard := func(next http.HandlerFunc) http.HandlerFunc {
		return sessionhttp.AuthMiddleware(h.session)(
			sessionhttp.RequireScreen(h.session, sessiondomain.ScreenSales)(next))
	}

	router.HandleFunc("/api/sales",
		h.metricsMiddleware("/api/sales", guard(h.GetView))).Methods("GET")
	router.HandleFunc("/api/sales/search",
		h.metricsMiddleware("/api/sales/search", guard(h.SetSearch))).Methods("PATCH")
	router.HandleFunc("/api/sales/select",
		h.metricsMiddleware("/api/sales/select", guard(h.SelectProduct))).Methods("POST")
	router.HandleFunc("/api/sales/quantity",
		h.metricsMiddleware("/api/sales/quantity", guard(h.SetQuantity))).Methods("PATCH")
	router.HandleFunc("/api/sales/sell",
		h.metricsMiddleware("/api/sales/sell", guard(h.Sell))).Methods("POST")
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// GetView handles GET /api/sales
func (h *SalesHandler) GetView(w http.ResponseWriter, r *http.Request) {
	h.renderScreen(w)
}

// SetSearch handles PATCH /api/sales/search
func (h *SalesHandler) SetSearch(w http.ResponseWriter, r *http.Request) {
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

// SelectProduct handles POST /api/sales/select
func (h *SalesHandler) SelectProduct(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID string `json:"id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if err := h.screen.Select(req.ID); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to select product")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to select product",
		})
		return
	}

	h.renderScreen(w)
}

// SetQuantity handles PATCH /api/sales/quantity. The quantity arrives as raw
// form text; input that does not parse leaves the field unchanged.
func (h *SalesHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Quantity string `json:"quantity"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	h.screen.SetQuantity(req.Quantity)
	h.renderScreen(w)
}

// Sell handles POST /api/sales/sell
func (h *SalesHandler) Sell(w http.ResponseWriter, r *http.Request) {
	sold, amount, err := h.screen.Sell()
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to record sale")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to record sale",
		})
		return
	}

	if sold != nil {
		total := sold.Price * float64(amount)
		h.itemsSold.Add(float64(amount))
		h.revenue.Add(total)

		if err := h.publisher.PublishProductSold(r.Context(), kafka.ProductSoldEvent{
			ProductID: sold.ID,
			Name:      sold.Name,
			Quantity:  amount,
			UnitPrice: sold.Price,
			Total:     total,
		}); err != nil {
			logger.Logger.Warn().Err(err).Msg("Failed to publish product sold event")
		}

		logger.Logger.Info().
			Str("product_id", sold.ID).
			Int("quantity", amount).
			Float64("total", total).
			Msg("Sale recorded")
	}

	h.renderScreen(w)
}

// renderScreen responds with the freshly derived sales view
func (h *SalesHandler) renderScreen(w http.ResponseWriter) {
	view, err := h.screen.Render()
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to render sales screen")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to render sales screen",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    view,
	})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
