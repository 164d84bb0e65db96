package store

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLStore adapts a database/sql pool to Store.
type SQLStore struct {
	db      *sql.DB
	dialect Dialect
}

// New wraps an open pool. The caller hands ownership of db to the store.
func New(db *sql.DB, dialect Dialect) *SQLStore {
	return &SQLStore{db: db, dialect: dialect}
}

func (s *SQLStore) Dialect() Dialect { return s.dialect }

func (s *SQLStore) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

func (s *SQLStore) Close() error { return s.db.Close() }

// DB exposes the underlying pool.
func (s *SQLStore) DB() *sql.DB { return s.db }

func (s *SQLStore) QueryMany(ctx context.Context, query string, args ...any) ([]Row, error) {
	q, qargs, err := Rebind(s.dialect, query, args)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, q, qargs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]Row, 0)
	for rows.Next() {
		row, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *SQLStore) QueryOne(ctx context.Context, query string, args ...any) (Row, error) {
	q, qargs, err := Rebind(s.dialect, query, args)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, q, qargs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, ErrNotFound
	}
	return scanRow(rows)
}

// Execute runs a write. PostgreSQL does not report inserted ids through the
// driver, so bare INSERTs get a RETURNING id clause there; the other engines
// use LastInsertId.
func (s *SQLStore) Execute(ctx context.Context, query string, args ...any) (Result, error) {
	q, qargs, err := Rebind(s.dialect, query, args)
	if err != nil {
		return Result{}, err
	}

	if s.dialect == Postgres && isInsert(q) {
		var id int64
		if err := s.db.QueryRowContext(ctx, q+" RETURNING id", qargs...).Scan(&id); err != nil {
			return Result{}, err
		}
		return Result{InsertedID: id, RowsAffected: 1}, nil
	}

	res, err := s.db.ExecContext(ctx, q, qargs...)
	if err != nil {
		return Result{}, err
	}

	var out Result
	// DDL has no affected row count on some drivers
	if n, err := res.RowsAffected(); err == nil {
		out.RowsAffected = n
	}
	if isInsert(q) {
		if out.InsertedID, err = res.LastInsertId(); err != nil {
			return Result{}, fmt.Errorf("store: last insert id: %w", err)
		}
	}
	return out, nil
}

func scanRow(rows *sql.Rows) (Row, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}
	if err := rows.Scan(ptrs...); err != nil {
		return nil, err
	}

	row := make(Row, len(cols))
	for i, col := range cols {
		if b, ok := values[i].([]byte); ok {
			row[col] = string(b)
			continue
		}
		row[col] = values[i]
	}
	return row, nil
}
