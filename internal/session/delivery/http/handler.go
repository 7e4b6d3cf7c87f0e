package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/adilet/stockeasy/internal/catalog/usecase/query"
	"github.com/adilet/stockeasy/internal/session/domain"
	"github.com/adilet/stockeasy/pkg/auth"
	"github.com/adilet/stockeasy/pkg/logger"
)

// SessionHandler handles the login screen, the dashboard screen and
// navigation between screens
type SessionHandler struct {
	session      *domain.Session
	statsHandler *query.GetStatsHandler
	loginCounter prometheus.Counter
	navCounter   *prometheus.CounterVec
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(session *domain.Session, statsHandler *query.GetStatsHandler) *SessionHandler {
	loginCounter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "stockeasy_logins_total",
		Help: "Total number of successful logins",
	})

	navCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stockeasy_navigations_total",
			Help: "Total number of screen navigations",
		},
		[]string{"target"},
	)

	prometheus.MustRegister(loginCounter)
	prometheus.MustRegister(navCounter)

	return &SessionHandler{
		session:      session,
		statsHandler: statsHandler,
		loginCounter: loginCounter,
		navCounter:   navCounter,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// SessionView mirrors the navigation state
type SessionView struct {
	Authenticated bool          `json:"authenticated"`
	Screen        domain.Screen `json:"screen"`
	Email         string        `json:"email,omitempty"`
}

// DashboardView is the presentational dashboard: two navigation targets plus
// a catalog summary
type DashboardView struct {
	Title   string              `json:"title"`
	Targets []domain.Screen     `json:"targets"`
	Stats   *query.CatalogStats `json:"stats,omitempty"`
}

// RegisterRoutes wires the session endpoints
func (h *SessionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/login", h.Login).Methods("POST")
	router.HandleFunc("/api/session", AuthMiddleware(h.session)(h.GetSession)).Methods("GET")
	router.HandleFunc("/api/navigate", AuthMiddleware(h.session)(h.Navigate)).Methods("POST")
	router.HandleFunc("/api/dashboard",
		AuthMiddleware(h.session)(RequireScreen(h.session, domain.ScreenDashboard)(h.Dashboard))).Methods("GET")
}

// Login handles POST /api/login. Both fields are required, matching the
// original form's browser-level validation; beyond that the credentials are
// forwarded verbatim to the authenticator, which by default accepts anything.
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if req.Email == "" || req.Password == "" {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Email and password are required",
		})
		return
	}

	ok := h.session.Login(domain.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if !ok {
		respondJSON(w, http.StatusUnauthorized, Response{
			Success: false,
			Error:   "Invalid credentials",
		})
		return
	}

	token, sessionID, err := auth.GenerateToken(req.Email)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to generate session token")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to create session",
		})
		return
	}

	h.loginCounter.Inc()

	logger.Logger.Info().
		Str("email", req.Email).
		Str("session_id", sessionID).
		Msg("Login succeeded")

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Login successful",
		Data: map[string]interface{}{
			"token":  token,
			"screen": h.session.Current(),
		},
	})
}

// GetSession handles GET /api/session
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: SessionView{
			Authenticated: h.session.Authenticated(),
			Screen:        h.session.Current(),
			Email:         h.session.Email(),
		},
	})
}

// Navigate handles POST /api/navigate
func (h *SessionHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Target domain.Screen `json:"target"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if err := h.session.Navigate(req.Target); err != nil {
		status := http.StatusBadRequest
		if err == domain.ErrNotAuthenticated {
			status = http.StatusUnauthorized
		}
		respondJSON(w, status, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.navCounter.WithLabelValues(string(req.Target)).Inc()

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: SessionView{
			Authenticated: h.session.Authenticated(),
			Screen:        h.session.Current(),
			Email:         h.session.Email(),
		},
	})
}

// Dashboard handles GET /api/dashboard
func (h *SessionHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsHandler.Handle(query.GetStatsQuery{})
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Failed to get catalog stats")
		stats = nil
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: DashboardView{
			Title:   "StockEasy",
			Targets: []domain.Screen{domain.ScreenInventory, domain.ScreenSales},
			Stats:   stats,
		},
	})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
