package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bus-finder/internal/logger"
	"github.com/MKhiriev/go-bus-finder/internal/store"
	"github.com/MKhiriev/go-bus-finder/models"
)

type busService struct {
	busRouteRepository store.BusRouteRepository
	logger             *logger.Logger
}

func NewBusService(busRouteRepository store.BusRouteRepository, logger *logger.Logger) BusService {
	return &busService{
		busRouteRepository: busRouteRepository,
		logger:             logger,
	}
}

// ListBuses returns every route. The result is never nil.
func (b *busService) ListBuses(ctx context.Context) ([]models.BusRoute, error) {
	routes, err := b.busRouteRepository.GetAllBusRoutes(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*busService.ListBuses").Msg("listing bus routes failed")
		return nil, fmt.Errorf("%w: %w", ErrStoreFailure, err)
	}
	if routes == nil {
		routes = []models.BusRoute{}
	}

	return routes, nil
}

// SearchBuses performs no presence validation. Absent criteria reach the
// store as NULL and match nothing. The result is never nil.
func (b *busService) SearchBuses(ctx context.Context, req models.SearchBusRequest) ([]models.BusSearchResult, error) {
	results, err := b.busRouteRepository.SearchBusRoutes(ctx, req)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*busService.SearchBuses").Msg("searching bus routes failed")
		return nil, fmt.Errorf("%w: %w", ErrStoreFailure, err)
	}
	if results == nil {
		results = []models.BusSearchResult{}
	}

	return results, nil
}
