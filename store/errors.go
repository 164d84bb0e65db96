package store

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"

	mysqlDuplicateEntry  = 1062
	mysqlNoReferencedRow = 1452
)

// IsUniqueViolation reports whether err is a unique constraint failure from
// any supported backend.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pgUniqueViolation
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlDuplicateEntry
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		return sqliteConstraint(liteErr, sqlite3.SQLITE_CONSTRAINT_UNIQUE, "UNIQUE") ||
			sqliteConstraint(liteErr, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, "PRIMARY KEY")
	}
	return false
}

// IsForeignKeyViolation reports whether err is a foreign key failure.
func IsForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pgForeignKeyViolation
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlNoReferencedRow
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		return sqliteConstraint(liteErr, sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY, "FOREIGN KEY")
	}
	return false
}

// sqliteConstraint matches the extended result code, or the primary
// constraint code plus the message when extended codes are off.
func sqliteConstraint(err *sqlite.Error, extended int, keyword string) bool {
	code := err.Code()
	if code == extended {
		return true
	}
	return code&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(err.Error(), keyword)
}
