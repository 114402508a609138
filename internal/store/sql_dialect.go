// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-bus-finder/internal/config"
)

// mysqlDuplicateEntry is ER_DUP_ENTRY.
const mysqlDuplicateEntry = 1062

// dialect captures everything that differs between the supported databases.
type dialect struct {
	// driverName is the name registered with database/sql.
	driverName string

	// gooseDialect is the dialect name understood by goose.
	gooseDialect string

	placeholder sq.PlaceholderFormat

	// timeAsHHMM renders the "time" column as zero-padded "HH:MM".
	timeAsHHMM string

	// timeEquals is a predicate comparing the "time" column with a single
	// bound parameter.
	timeEquals string

	// singleConnection limits the pool to one connection. Each sqlite3
	// connection to ":memory:" is a separate database.
	singleConnection bool

	isUniqueViolation func(err error) bool
}

var dialects = map[string]dialect{
	config.DriverMySQL: {
		driverName:        "mysql",
		gooseDialect:      "mysql",
		placeholder:       sq.Question,
		timeAsHHMM:        "TIME_FORMAT(time, '%H:%i')",
		timeEquals:        "time = ?",
		isUniqueViolation: isMySQLUniqueViolation,
	},
	config.DriverPostgres: {
		driverName:        "pgx",
		gooseDialect:      "postgres",
		placeholder:       sq.Dollar,
		timeAsHHMM:        "to_char(time, 'HH24:MI')",
		timeEquals:        "time = CAST(? AS TIME)",
		isUniqueViolation: isPostgresUniqueViolation,
	},
	config.DriverSQLite: {
		driverName:        "sqlite3",
		gooseDialect:      "sqlite3",
		placeholder:       sq.Question,
		timeAsHHMM:        "strftime('%H:%M', time)",
		timeEquals:        "time(time) = time(?)",
		singleConnection:  true,
		isUniqueViolation: isSQLiteUniqueViolation,
	},
}

func dialectFor(driver string) (dialect, error) {
	d, ok := dialects[driver]
	if !ok {
		return dialect{}, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}

	return d, nil
}

// builder returns a squirrel statement builder using the dialect's
// placeholder format.
func (d dialect) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(d.placeholder)
}

func isMySQLUniqueViolation(err error) bool {
	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry
}

func isPostgresUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func isSQLiteUniqueViolation(err error) bool {
	var liteErr sqlite3.Error
	return errors.As(err, &liteErr) && liteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}
