package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gymtrack/gymtrack-api/internal/model"
	"github.com/gymtrack/gymtrack-api/internal/service"
)

// APIKeyHeader carries the caller's API key.
const APIKeyHeader = "x-api-key"

type contextKey string

const userKey contextKey = "user"

// Authorizer resolves an API key to the owning user.
type Authorizer interface {
	Authorize(ctx context.Context, apiKey string) (*model.User, error)
}

// APIKeyAuth returns middleware that admits only requests whose x-api-key header
// belongs to a registered user. The login token is not accepted here.
func APIKeyAuth(auth Authorizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := auth.Authorize(r.Context(), r.Header.Get(APIKeyHeader))
			if err != nil {
				if errors.Is(err, service.ErrInvalidAPIKey) {
					writeJSONError(w, http.StatusUnauthorized, err.Error())
					return
				}
				slog.ErrorContext(r.Context(), "api key lookup failed", "error", err, "path", r.URL.Path)
				writeJSONError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext extracts the authenticated user from the request context.
func UserFromContext(ctx context.Context) (*model.User, bool) {
	u, ok := ctx.Value(userKey).(*model.User)
	return u, ok && u != nil
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
