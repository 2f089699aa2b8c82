package middlewares

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/freshbox-tech/Freshbox-admin/internal/models"
	"github.com/freshbox-tech/Freshbox-admin/internal/services"
)

// adminFieldType is the type of the context key holding the authenticated
// admin.
type adminFieldType string

// adminField is the context key holding the authenticated admin.
const adminField adminFieldType = "adminField"

// AuthMiddlewareConfig configures the authentication middleware.
type AuthMiddlewareConfig struct {
	excludePaths []string // paths that skip the token check
}

// AuthMiddleware creates a new authentication middleware configuration.
func AuthMiddleware() *AuthMiddlewareConfig {
	return &AuthMiddlewareConfig{}
}

// WithExcludedPaths sets the paths that skip the token check.
func (a *AuthMiddlewareConfig) WithExcludedPaths(paths ...string) *AuthMiddlewareConfig {
	a.excludePaths = paths
	return a
}

// extractToken reads the session token, preferring the "token" cookie the
// console sets at login and falling back to a Bearer header for API
// clients.
func extractToken(r *http.Request) string {
	if cookie, err := r.Cookie("token"); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := r.Header.Get("Authorization")
	return strings.TrimPrefix(authHeader, "Bearer ")
}

// Middleware returns the authentication middleware using the configured
// exclusions.
func (a *AuthMiddlewareConfig) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, path := range a.excludePaths {
			if strings.HasPrefix(r.URL.Path, path) {
				next.ServeHTTP(w, r)
				return
			}
		}

		authService := GetServiceFromContext[models.AuthService](w, r, AuthServiceKey)
		jwtService := GetServiceFromContext[models.JWTService](w, r, JwtServiceKey)

		tokenString := extractToken(r)
		if tokenString == "" {
			EncodeJSONError(w, "Authentication required", http.StatusUnauthorized)
			return
		}

		token, err := (*jwtService).ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, services.ErrTokenIsInvalid) {
				EncodeJSONError(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			if errors.Is(err, services.ErrTokenIsExpired) {
				EncodeJSONError(w, "Token has expired", http.StatusUnauthorized)
				return
			}

			EncodeJSONError(w, fmt.Sprintf("Error validating token: %s", err.Error()), http.StatusUnauthorized)
			return
		}

		email, err := token.Claims.GetSubject()
		if err != nil {
			EncodeJSONError(w, fmt.Sprintf("Error reading the sub claim: %s", err.Error()), http.StatusUnauthorized)
			return
		}

		admin, err := (*authService).GetAdmin(r.Context(), email)
		if err != nil {
			if errors.Is(err, services.ErrAdminIsNotExist) {
				EncodeJSONError(w, fmt.Sprintf("Admin %s does not exist", email), http.StatusUnauthorized)
				return
			}

			EncodeJSONError(w, fmt.Sprintf("Error looking up admin: %s", err.Error()), http.StatusInternalServerError)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), adminField, admin)))
	})
}

// GetAdminFromContext retrieves the authenticated admin from the request
// context. Writes HTTP 500 and returns nil when missing.
func GetAdminFromContext(w http.ResponseWriter, r *http.Request) *models.Admin {
	admin, ok := r.Context().Value(adminField).(*models.Admin)

	if !ok {
		http.Error(w, "Could not retrieve admin from context", http.StatusInternalServerError)
		return nil
	}

	return admin
}
