package handler

import (
	"github.com/MKhiriev/go-bus-finder/internal/config"
	"github.com/MKhiriev/go-bus-finder/internal/handler/http"
	"github.com/MKhiriev/go-bus-finder/internal/logger"
	"github.com/MKhiriev/go-bus-finder/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil || services.AuthService == nil || services.BusService == nil {
		return nil, errNoServicesProvided
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}, nil
}
