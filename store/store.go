// Package store is the relational row store behind the API. Statements are
// written once in the PostgreSQL $N dialect; each backend adapter rewrites
// placeholders and reports inserted ids in its own way.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by QueryOne when the statement yields no row.
var ErrNotFound = errors.New("store: no rows")

// Dialect identifies the SQL engine behind a Store.
type Dialect string

const (
	SQLite   Dialect = "sqlite"
	Postgres Dialect = "postgres"
	MySQL    Dialect = "mysql"
)

// Label is the human readable engine name used in logs and diagnostics.
func (d Dialect) Label() string {
	switch d {
	case SQLite:
		return "SQLite"
	case Postgres:
		return "PostgreSQL"
	case MySQL:
		return "MySQL"
	default:
		return string(d)
	}
}

// Result describes the effect of Execute.
type Result struct {
	InsertedID   int64
	RowsAffected int64
}

// Store runs single parameterized statements. Every call is atomic at the
// statement level; there are no multi-statement transactions.
type Store interface {
	QueryMany(ctx context.Context, query string, args ...any) ([]Row, error)
	Execute(ctx context.Context, query string, args ...any) (Result, error)
	QueryOne(ctx context.Context, query string, args ...any) (Row, error)
	Dialect() Dialect
	Ping(ctx context.Context) error
	Close() error
}
