package service

import (
	"github.com/MKhiriev/go-bus-finder/internal/config"
	"github.com/MKhiriev/go-bus-finder/internal/logger"
	"github.com/MKhiriev/go-bus-finder/internal/store"
)

type Services struct {
	AuthService AuthService
	BusService  BusService
}

// NewServices builds the services on top of storages. Auth requests are
// validated before they reach the store.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	auth := NewAuthValidationService().Wrap(NewAuthService(storages.UserRepository, cfg, logger))

	return &Services{
		AuthService: auth,
		BusService:  NewBusService(storages.BusRouteRepository, logger),
	}
}
