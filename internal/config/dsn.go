// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"

	"github.com/go-sql-driver/mysql"
)

const (
	defaultMySQLPort    = 3306
	defaultPostgresPort = 5432
)

// ConnectionString returns the DSN to open the database with. An explicit
// DSN wins; otherwise one is assembled from the discrete fields in the
// format the selected driver expects.
func (db DB) ConnectionString() (string, error) {
	switch db.Driver {
	case DriverMySQL, DriverPostgres, DriverSQLite:
	default:
		return "", fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, db.Driver)
	}

	if db.DSN != "" {
		return db.DSN, nil
	}

	if db.Name == "" {
		return "", fmt.Errorf("%w: either DSN or database name must be set", ErrInvalidStorageConfigs)
	}

	switch db.Driver {
	case DriverMySQL:
		if db.Host == "" {
			return "", fmt.Errorf("%w: database host is not set", ErrInvalidStorageConfigs)
		}
		c := mysql.NewConfig()
		c.User = db.User
		c.Passwd = db.Password
		c.Net = "tcp"
		c.Addr = db.hostPort(defaultMySQLPort)
		c.DBName = db.Name
		return c.FormatDSN(), nil

	case DriverPostgres:
		if db.Host == "" {
			return "", fmt.Errorf("%w: database host is not set", ErrInvalidStorageConfigs)
		}
		u := url.URL{
			Scheme: "postgres",
			Host:   db.hostPort(defaultPostgresPort),
			Path:   "/" + db.Name,
		}
		if db.User != "" {
			u.User = url.UserPassword(db.User, db.Password)
		}
		return u.String(), nil

	default:
		// sqlite3: the name is the database file
		return db.Name, nil
	}
}

func (db DB) hostPort(defaultPort int) string {
	port := db.Port
	if port == 0 {
		port = defaultPort
	}

	return net.JoinHostPort(db.Host, strconv.Itoa(port))
}
