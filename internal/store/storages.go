package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bus-finder/internal/config"
	"github.com/MKhiriev/go-bus-finder/internal/logger"
)

// Storages bundles the repositories sharing one connection pool.
type Storages struct {
	UserRepository     UserRepository
	BusRouteRepository BusRouteRepository

	db *DB
}

// NewStorages connects to the database described by cfg, applies migrations
// when cfg.DB.AutoMigrate is set and builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if cfg.DB.AutoMigrate {
		if err = db.Migrate(); err != nil {
			log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
			db.Close()
			return nil, fmt.Errorf("error applying migrations: %w", err)
		}
		log.Info().Str("func", "NewStorages").Msg("migrations applied")
	}

	return newStorages(db, log), nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		BusRouteRepository: NewBusRouteRepository(db, log),
		db:                 db,
	}
}

// DB returns the underlying pool.
func (s *Storages) DB() *DB {
	return s.db
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
