package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-bus-finder/models"
)

// UserRepository persists and looks up user accounts.
type UserRepository interface {
	// CreateUser inserts user. user.Password must already be hashed.
	CreateUser(ctx context.Context, user models.User) error
	// FindUserByEmail returns the user whose email equals email exactly,
	// or ErrNoUserWasFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// BusRouteRepository reads bus routes.
type BusRouteRepository interface {
	// GetAllBusRoutes returns every route, or an empty slice.
	GetAllBusRoutes(ctx context.Context) ([]models.BusRoute, error)
	// SearchBusRoutes returns the routes matching all three criteria exactly.
	// A nil criterion matches nothing.
	SearchBusRoutes(ctx context.Context, criteria models.SearchBusRequest) ([]models.BusSearchResult, error)
}
