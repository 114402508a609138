package http

import (
	"github.com/MKhiriev/go-bus-finder/internal/config"
	"github.com/MKhiriev/go-bus-finder/internal/logger"
	"github.com/MKhiriev/go-bus-finder/internal/service"
	"github.com/MKhiriev/go-bus-finder/internal/utils"
)

// traceIDGenerator produces identifiers for requests that arrive without an
// X-Trace-ID header.
type traceIDGenerator interface {
	Generate() string
}

type Handler struct {
	services *service.Services

	staticDir      string
	allowedOrigins []string
	traceIDs       traceIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		staticDir:      cfg.StaticDir,
		allowedOrigins: cfg.AllowedOrigins,
		traceIDs:       utils.NewUUIDGenerator(),
		logger:         logger,
	}
}
