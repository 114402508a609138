package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bus-finder/internal/logger"
	"github.com/MKhiriev/go-bus-finder/models"
)

// busRouteRepository is the SQL implementation of [BusRouteRepository] over
// the "bus_routes" table. Departure times are formatted as "HH:MM" by the
// database.
type busRouteRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBusRouteRepository constructs a [BusRouteRepository] backed by db.
func NewBusRouteRepository(db *DB, logger *logger.Logger) BusRouteRepository {
	logger.Debug().Msg("creating bus route repository")
	return &busRouteRepository{
		db:     db,
		logger: logger,
	}
}

func (r *busRouteRepository) GetAllBusRoutes(ctx context.Context) ([]models.BusRoute, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetAllBusRoutesQuery(r.db.dialect)
	if err != nil {
		log.Err(err).Str("func", "*busRouteRepository.GetAllBusRoutes").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	routes := make([]models.BusRoute, 0)
	if err = r.db.SelectContext(ctx, &routes, query, args...); err != nil {
		log.Err(err).Str("func", "*busRouteRepository.GetAllBusRoutes").Msg("error selecting bus routes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return routes, nil
}

func (r *busRouteRepository) SearchBusRoutes(ctx context.Context, criteria models.SearchBusRequest) ([]models.BusSearchResult, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSearchBusRoutesQuery(r.db.dialect, criteria)
	if err != nil {
		log.Err(err).Str("func", "*busRouteRepository.SearchBusRoutes").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	results := make([]models.BusSearchResult, 0)
	if err = r.db.SelectContext(ctx, &results, query, args...); err != nil {
		log.Err(err).Str("func", "*busRouteRepository.SearchBusRoutes").Msg("error searching bus routes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Debug().Str("func", "*busRouteRepository.SearchBusRoutes").Int("found", len(results)).Msg("bus routes searched")
	return results, nil
}
