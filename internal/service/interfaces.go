package service

import (
	"context"

	"github.com/MKhiriev/go-bus-finder/models"
)

// AuthService registers and authenticates users.
type AuthService interface {
	// Signup hashes the password and stores a new user.
	Signup(ctx context.Context, req models.SignupRequest) error
	// Login returns the user whose email and password match.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
}

// BusService reads bus routes.
type BusService interface {
	ListBuses(ctx context.Context) ([]models.BusRoute, error)
	SearchBuses(ctx context.Context, req models.SearchBusRequest) ([]models.BusSearchResult, error)
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}
