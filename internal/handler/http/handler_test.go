package http

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-bus-finder/internal/config"
	"github.com/MKhiriev/go-bus-finder/internal/logger"
	"github.com/MKhiriev/go-bus-finder/internal/service"
	"github.com/MKhiriev/go-bus-finder/models"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService. Each method field can be
// overridden per test case.
type mockAuthService struct {
	signupFn func(ctx context.Context, req models.SignupRequest) error
	loginFn  func(ctx context.Context, req models.LoginRequest) (models.User, error)
}

func (m *mockAuthService) Signup(ctx context.Context, req models.SignupRequest) error {
	if m.signupFn != nil {
		return m.signupFn(ctx, req)
	}
	return nil
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, req)
	}
	return models.User{}, nil
}

// mockBusService implements service.BusService.
type mockBusService struct {
	listFn   func(ctx context.Context) ([]models.BusRoute, error)
	searchFn func(ctx context.Context, req models.SearchBusRequest) ([]models.BusSearchResult, error)
}

func (m *mockBusService) ListBuses(ctx context.Context) ([]models.BusRoute, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []models.BusRoute{}, nil
}

func (m *mockBusService) SearchBuses(ctx context.Context, req models.SearchBusRequest) ([]models.BusSearchResult, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, req)
	}
	return []models.BusSearchResult{}, nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestHandler(t *testing.T, auth service.AuthService, bus service.BusService) *Handler {
	t.Helper()
	return newTestHandlerWithConfig(t, auth, bus, config.Server{AllowedOrigins: []string{"*"}})
}

func newTestHandlerWithConfig(t *testing.T, auth service.AuthService, bus service.BusService, cfg config.Server) *Handler {
	t.Helper()
	if auth == nil {
		auth = &mockAuthService{}
	}
	if bus == nil {
		bus = &mockBusService{}
	}
	return NewHandler(&service.Services{AuthService: auth, BusService: bus}, cfg, logger.Nop())
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svcs := &service.Services{}
	log := logger.Nop()
	cfg := config.Server{StaticDir: "/srv/www", AllowedOrigins: []string{"http://example.com"}}

	h := NewHandler(svcs, cfg, log)

	require.NotNil(t, h)
	assert.Equal(t, svcs, h.services)
	assert.Equal(t, log, h.logger)
	assert.Equal(t, "/srv/www", h.staticDir)
	assert.Equal(t, []string{"http://example.com"}, h.allowedOrigins)
	assert.NotNil(t, h.traceIDs)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := NewHandler(&service.Services{}, config.Server{}, logger.Nop())
	h2 := NewHandler(&service.Services{}, config.Server{}, logger.Nop())

	assert.NotSame(t, h1, h2)
}
