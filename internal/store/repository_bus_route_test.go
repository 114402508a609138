// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/MKhiriev/go-bus-finder/internal/config"
	"github.com/MKhiriev/go-bus-finder/internal/logger"
	"github.com/MKhiriev/go-bus-finder/models"
)

const (
	getAllBusRoutesSQL = "SELECT id, route_number, source, destination, bus_type, TIME_FORMAT(time, '%H:%i') AS time FROM bus_routes ORDER BY id"
	searchBusRoutesSQL = "SELECT route_number, source, destination, bus_type, TIME_FORMAT(time, '%H:%i') AS formatted_time FROM bus_routes WHERE source = ? AND destination = ? AND time = ? ORDER BY id"
)

func newTestBusRouteRepo(t *testing.T) (BusRouteRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t, config.DriverMySQL)
	return NewBusRouteRepository(db, logger.Nop()), mock
}

func TestGetAllBusRoutes_Success(t *testing.T) {
	repo, mock := newTestBusRouteRepo(t)

	rows := sqlmock.NewRows([]string{"id", "route_number", "source", "destination", "bus_type", "time"}).
		AddRow(1, "R1", "Pune", "Mumbai", "AC", "09:05").
		AddRow(2, "R2", "Mumbai", "Goa", "Sleeper", "22:30")
	mock.ExpectQuery(regexp.QuoteMeta(getAllBusRoutesSQL)).WillReturnRows(rows)

	routes, err := repo.GetAllBusRoutes(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(routes) != 2 {
		t.Fatalf("expected 2 routes, got %d", len(routes))
	}
	want := models.BusRoute{ID: 1, RouteNumber: "R1", Source: "Pune", Destination: "Mumbai", BusType: "AC", Time: "09:05"}
	if routes[0] != want {
		t.Errorf("expected %+v, got %+v", want, routes[0])
	}
}

func TestGetAllBusRoutes_EmptyIsNotNil(t *testing.T) {
	repo, mock := newTestBusRouteRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(getAllBusRoutesSQL)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "route_number", "source", "destination", "bus_type", "time"}))

	routes, err := repo.GetAllBusRoutes(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if routes == nil || len(routes) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", routes)
	}
}

func TestGetAllBusRoutes_Error(t *testing.T) {
	repo, mock := newTestBusRouteRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(getAllBusRoutesSQL)).WillReturnError(errors.New("table missing"))

	_, err := repo.GetAllBusRoutes(context.Background())
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestSearchBusRoutes_Success(t *testing.T) {
	repo, mock := newTestBusRouteRepo(t)

	rows := sqlmock.NewRows([]string{"route_number", "source", "destination", "bus_type", "formatted_time"}).
		AddRow("R1", "Pune", "Mumbai", "AC", "09:05")
	mock.ExpectQuery(regexp.QuoteMeta(searchBusRoutesSQL)).
		WithArgs("Pune", "Mumbai", "09:05").
		WillReturnRows(rows)

	results, err := repo.SearchBusRoutes(context.Background(), models.SearchBusRequest{
		Source:      strPtr("Pune"),
		Destination: strPtr("Mumbai"),
		Time:        strPtr("09:05"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []models.BusSearchResult{{RouteNumber: "R1", Source: "Pune", Destination: "Mumbai", BusType: "AC", FormattedTime: "09:05"}}
	if len(results) != 1 || results[0] != want[0] {
		t.Errorf("expected %+v, got %+v", want, results)
	}
}

func TestSearchBusRoutes_MissingCriteriaBoundAsNull(t *testing.T) {
	repo, mock := newTestBusRouteRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(searchBusRoutesSQL)).
		WithArgs("Pune", nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"route_number", "source", "destination", "bus_type", "formatted_time"}))

	results, err := repo.SearchBusRoutes(context.Background(), models.SearchBusRequest{Source: strPtr("Pune")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results == nil || len(results) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", results)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSearchBusRoutes_Error(t *testing.T) {
	repo, mock := newTestBusRouteRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(searchBusRoutesSQL)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("timeout"))

	_, err := repo.SearchBusRoutes(context.Background(), models.SearchBusRequest{})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}
