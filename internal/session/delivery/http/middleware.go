package http

import (
	"net/http"
	"strings"

	"github.com/adilet/stockeasy/internal/session/domain"
	"github.com/adilet/stockeasy/pkg/auth"
	"github.com/adilet/stockeasy/pkg/logger"
)

// AuthMiddleware validates the bearer token and checks that the session has
// been opened by a login
func AuthMiddleware(session *domain.Session) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Logger.Warn().Msg("Missing authorization header")
				respondJSON(w, http.StatusUnauthorized, Response{
					Success: false,
					Error:   "Authorization header required",
				})
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				logger.Logger.Warn().Msg("Invalid authorization header format")
				respondJSON(w, http.StatusUnauthorized, Response{
					Success: false,
					Error:   "Invalid authorization header format",
				})
				return
			}

			if _, err := auth.ValidateToken(parts[1]); err != nil {
				logger.Logger.Warn().Err(err).Msg("Invalid token")
				respondJSON(w, http.StatusUnauthorized, Response{
					Success: false,
					Error:   "Invalid token",
				})
				return
			}

			if !session.Authenticated() {
				respondJSON(w, http.StatusUnauthorized, Response{
					Success: false,
					Error:   "Not logged in",
				})
				return
			}

			next.ServeHTTP(w, r)
		}
	}
}

// RequireScreen rejects requests for a screen the navigation controller has
// not made active. Exactly one screen renders at a time.
func RequireScreen(session *domain.Session, screen domain.Screen) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if err := session.Require(screen); err != nil {
				status := http.StatusConflict
				if err == domain.ErrNotAuthenticated {
					status = http.StatusUnauthorized
				}
				respondJSON(w, status, Response{
					Success: false,
					Error:   err.Error(),
				})
				return
			}

			next.ServeHTTP(w, r)
		}
	}
}
