package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/msomdec/resume-forge/internal/domain"
	"github.com/msomdec/resume-forge/internal/service"
)

type contextKey string

const userContextKey contextKey = "user"

// UserFromContext extracts the authenticated user from the request context.
// Returns nil if no user is authenticated.
func UserFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(userContextKey).(*domain.User)
	return user
}

// RequireAuth is middleware that protects routes requiring authentication.
// It extracts the bearer token (Authorization header first, auth_token
// cookie as fallback), validates the JWT, loads the user from the DB, and
// injects it into the request context. Returns 401 for anything else.
func RequireAuth(auth *service.AuthService, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := authenticateRequest(r, auth)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Not authenticated.")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func authenticateRequest(r *http.Request, auth *service.AuthService) (*domain.User, error) {
	token, err := bearerToken(r)
	if err != nil {
		return nil, err
	}

	userID, err := auth.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	user, err := auth.GetUserByID(r.Context(), userID)
	if err != nil {
		return nil, err
	}

	return user, nil
}

// bearerToken returns the credential from the Authorization header, or
// from the auth_token cookie when no header is present.
func bearerToken(r *http.Request) (string, error) {
	if header := r.Header.Get("Authorization"); header != "" {
		value, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || value == "" {
			return "", domain.ErrUnauthorized
		}
		return value, nil
	}

	cookie, err := r.Cookie("auth_token")
	if err != nil {
		return "", domain.ErrUnauthorized
	}
	return cookie.Value, nil
}

// SecurityHeaders adds baseline security headers to every response.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "same-origin")
		next.ServeHTTP(w, r)
	})
}
