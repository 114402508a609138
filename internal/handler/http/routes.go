package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withCORS)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// auth
	router.Post("/signup", h.signup)
	router.Post("/login", h.login)

	// buses
	router.Get("/get-all-buses", h.getAllBuses)
	router.Post("/search-bus", h.searchBus)

	// front-end bundle
	if h.staticDir != "" {
		router.Get("/", h.index)
	}
	router.NotFound(h.static)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
