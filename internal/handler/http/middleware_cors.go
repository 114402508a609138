package http

import (
	"net/http"

	"github.com/rs/cors"
)

// withCORS allows the configured origins to call the API with credentials.
// Preflight requests are answered here and never reach the router.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   h.allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowedHeaders:   []string{"Content-Type", "Content-Encoding", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
	}).Handler(next)
}
