package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/MKhiriev/go-bus-finder/internal/config"
	"github.com/MKhiriev/go-bus-finder/internal/logger"
	"github.com/MKhiriev/go-bus-finder/migrations"
)

// DB is the shared connection pool together with the SQL dialect of the
// database behind it.
type DB struct {
	*sqlx.DB
	dialect dialect
	logger  *logger.Logger
}

// NewConnect opens the pool described by cfg and checks it with a ping.
//
// The pool holds at most cfg.MaxOpenConns connections; callers beyond that
// wait until one is released. Every statement returns its connection to the
// pool when it completes, whether it succeeded or not.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	d, err := dialectFor(cfg.Driver)
	if err != nil {
		return nil, err
	}

	dsn, err := cfg.ConnectionString()
	if err != nil {
		return nil, err
	}

	// establish connection
	conn, err := sqlx.Open(d.driverName, dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Str("driver", cfg.Driver).Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	maxOpenConns := cfg.MaxOpenConns
	if d.singleConnection {
		maxOpenConns = 1
	}
	conn.SetMaxOpenConns(maxOpenConns)
	conn.SetMaxIdleConns(maxOpenConns)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnect").Str("driver", cfg.Driver).Msg("error connecting database (ping)")
		conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Info().Str("func", "NewConnect").
		Str("driver", cfg.Driver).
		Int("max_open_conns", maxOpenConns).
		Msg("connected to database successfully")

	return newDB(conn, d, log), nil
}

func newDB(conn *sqlx.DB, d dialect, log *logger.Logger) *DB {
	return &DB{
		DB:      conn,
		dialect: d,
		logger:  log,
	}
}

// Migrate applies the embedded schema migrations of the DB's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB.DB, db.dialect.gooseDialect, db.logger)
}
