package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS allows the configured front-end origins to call the API.
func CORS(allowedOrigins []string, allowCredentials bool) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", APIKeyHeader, "Authorization"},
		AllowCredentials: allowCredentials,
		MaxAge:           300,
	})
}
