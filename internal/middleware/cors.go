package middleware

import (
	"net/http"
	"slices"

	"github.com/rs/cors"

	"github.com/volunteerhub/motivator/backend/internal/config"
)

// CORS allows cross-origin calls from the configured origins with credentials
// and any request header. A wildcard origin is echoed back as the caller's
// Origin, since browsers reject a literal "*" together with credentials.
func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	opts := cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}
	if len(cfg.AllowedOrigins) == 0 || slices.Contains(cfg.AllowedOrigins, "*") {
		opts.AllowedOrigins = nil
		opts.AllowOriginFunc = func(string) bool { return true }
	}
	return cors.New(opts).Handler
}
