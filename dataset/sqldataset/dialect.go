package sqldataset

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	// Import of PostgreSQL driver
	_ "github.com/lib/pq"
	// Import of SQLite3 driver
	_ "github.com/mattn/go-sqlite3"
)

/*
Dialect holds what differs between the SQL databases datasets can be
stored on.
*/
type Dialect interface {
	// DriverName returns the name of the database/sql driver
	// for the database
	DriverName() string
	// Placeholder returns the parameter placeholder for the
	// n-th (starting at 1) argument of a statement
	Placeholder(n int) string
	// IDColumn returns the definition of the auto-incremented
	// primary key column of a samples table
	IDColumn() string
}

type postgres struct{}

type sqlite struct{}

// Postgres is the Dialect for PostgreSQL databases
var Postgres Dialect = postgres{}

// SQLite is the Dialect for SQLite3 databases
var SQLite Dialect = sqlite{}

func (postgres) DriverName() string {
	return "postgres"
}

func (postgres) Placeholder(n int) string {
	return fmt.Sprintf("$%d", n)
}

func (postgres) IDColumn() string {
	return `"id" SERIAL PRIMARY KEY`
}

func (sqlite) DriverName() string {
	return "sqlite3"
}

func (sqlite) Placeholder(n int) string {
	return "?"
}

func (sqlite) IDColumn() string {
	return `"id" INTEGER PRIMARY KEY AUTOINCREMENT`
}

/*
IsURL returns whether the given string refers to a database
this package can open: a PostgreSQL connection URL or the path
to a SQLite3 file, with the .db extension.
*/
func IsURL(url string) bool {
	return isPostgresURL(url) || strings.HasSuffix(url, ".db")
}

/*
Open takes a database URL and returns a *sql.DB for it together with
its Dialect, or an error if it cannot be opened. URLs starting with
postgres:// or postgresql:// are opened as PostgreSQL databases, any
other string is taken as the path to a SQLite3 database file.
*/
func Open(url string) (*sql.DB, Dialect, error) {
	d := SQLite
	if isPostgresURL(url) {
		d = Postgres
	}
	db, err := sql.Open(d.DriverName(), url)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "opening %s database", d.DriverName())
	}
	return db, d, nil
}

func isPostgresURL(url string) bool {
	return strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://")
}
