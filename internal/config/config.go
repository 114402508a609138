// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strconv"
	"time"
)

// Supported values of [DB.Driver].
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

// StructuredConfig is the top-level configuration container for the
// bus-finder server. It is populated by merging defaults, environment
// variables (including a .env file), command-line flags and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: password hashing cost and
	// log verbosity.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings. It has no prefix of
	// its own so the DB_* variable names stay compatible with existing
	// deployments.
	Storage Storage

	// Server holds listen address, static assets and CORS settings.
	Server Server

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// BcryptCost is the work factor used when hashing passwords on signup.
	// Env: APP_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection and pool settings for the relational database.
//
// Either DSN is given verbatim or it is assembled from the discrete
// Host/Port/User/Password/Name fields, see [DB.ConnectionString].
type DB struct {
	// Driver selects the database flavour: "mysql", "postgres" or "sqlite3".
	// Env: DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is a complete driver-specific connection string.
	// Env: DB_DSN
	DSN string `env:"DSN"`

	// Env: DB_HOST
	Host string `env:"HOST"`
	// Env: DB_PORT
	Port int `env:"PORT"`
	// Env: DB_USER
	User string `env:"USER"`
	// Env: DB_PASSWORD
	Password string `env:"PASSWORD"`
	// Name is the database name, or the file path for sqlite3.
	// Env: DB_NAME
	Name string `env:"NAME"`

	// MaxOpenConns bounds the connection pool. Borrowers beyond the bound
	// wait for a free connection.
	// Env: DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`

	// AutoMigrate applies the embedded schema migrations at startup.
	// Env: DB_AUTO_MIGRATE
	AutoMigrate bool `env:"AUTO_MIGRATE"`
}

// Server holds settings for the inbound HTTP transport.
type Server struct {
	// Port is used when HTTPAddress is empty; the server listens on ":<Port>".
	// Env: PORT
	Port int `env:"PORT"`

	// HTTPAddress is a full "host:port" listen address.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"SERVER_ADDRESS"`

	// StaticDir is the directory of the front-end bundle. Empty disables
	// static file serving.
	// Env: STATIC_DIR
	StaticDir string `env:"STATIC_DIR"`

	// AllowedOrigins is the CORS origin allow-list.
	// Env: CORS_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT"`
}

// Address returns the address the HTTP server listens on.
func (s Server) Address() string {
	if s.HTTPAddress != "" {
		return s.HTTPAddress
	}

	return ":" + strconv.Itoa(s.Port)
}

// GetStructuredConfig loads, merges, and validates the application
// configuration. Sources are applied in the following order, each one
// overriding the non-zero fields of the previous ones:
//  1. Built-in defaults
//  2. Environment variables (a .env file in the working directory is loaded first)
//  3. Command-line flags from args
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
