package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-bus-finder/models"
)

const (
	usersTable     = "users"
	busRoutesTable = "bus_routes"
)

func buildCreateUserQuery(d dialect, user models.User) (string, []any, error) {
	return d.builder().
		Insert(usersTable).
		Columns("name", "email", "password").
		Values(user.Name, user.Email, user.Password).
		ToSql()
}

func buildFindUserByEmailQuery(d dialect, email string) (string, []any, error) {
	return d.builder().
		Select("id", "name", "email", "password").
		From(usersTable).
		Where(sq.Eq{"email": email}).
		Limit(1).
		ToSql()
}

func buildGetAllBusRoutesQuery(d dialect) (string, []any, error) {
	return d.builder().
		Select("id", "route_number", "source", "destination", "bus_type").
		Column(d.timeAsHHMM + " AS time").
		From(busRoutesTable).
		OrderBy("id").
		ToSql()
}

// buildSearchBusRoutesQuery binds a nil criterion as NULL. "column = NULL" is
// never true, so squirrel's Eq (which would render "IS NULL") is not used.
func buildSearchBusRoutesQuery(d dialect, criteria models.SearchBusRequest) (string, []any, error) {
	return d.builder().
		Select("route_number", "source", "destination", "bus_type").
		Column(d.timeAsHHMM + " AS formatted_time").
		From(busRoutesTable).
		Where(sq.Expr("source = ?", nullable(criteria.Source))).
		Where(sq.Expr("destination = ?", nullable(criteria.Destination))).
		Where(sq.Expr(d.timeEquals, nullable(criteria.Time))).
		OrderBy("id").
		ToSql()
}

func nullable(s *string) any {
	if s == nil {
		return nil
	}

	return *s
}
