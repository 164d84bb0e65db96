package store

import (
	"reflect"
	"testing"
)

func TestRebind(t *testing.T) {
	tests := []struct {
		name      string
		dialect   Dialect
		query     string
		args      []any
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "postgres unchanged",
			dialect:   Postgres,
			query:     "SELECT * FROM users WHERE username = $1 AND password = $2",
			args:      []any{"ana", "x"},
			wantQuery: "SELECT * FROM users WHERE username = $1 AND password = $2",
			wantArgs:  []any{"ana", "x"},
		},
		{
			name:      "sqlite positional",
			dialect:   SQLite,
			query:     "UPDATE tasks SET status = $1, failure_reason = $2 WHERE id = $3",
			args:      []any{"failed", "blocked", int64(7)},
			wantQuery: "UPDATE tasks SET status = ?, failure_reason = ? WHERE id = ?",
			wantArgs:  []any{"failed", "blocked", int64(7)},
		},
		{
			name:      "reordered and repeated",
			dialect:   MySQL,
			query:     "SELECT $2, $1, $2",
			args:      []any{"a", "b"},
			wantQuery: "SELECT ?, ?, ?",
			wantArgs:  []any{"b", "a", "b"},
		},
		{
			name:      "dollar inside literal",
			dialect:   SQLite,
			query:     "SELECT '$1 off' WHERE id = $1",
			args:      []any{int64(3)},
			wantQuery: "SELECT '$1 off' WHERE id = ?",
			wantArgs:  []any{int64(3)},
		},
		{
			name:      "bare dollar kept",
			dialect:   SQLite,
			query:     "SELECT $ FROM t",
			args:      nil,
			wantQuery: "SELECT $ FROM t",
			wantArgs:  []any{},
		},
		{
			name:      "multi digit",
			dialect:   SQLite,
			query:     "VALUES ($10, $1)",
			args:      []any{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
			wantQuery: "VALUES (?, ?)",
			wantArgs:  []any{10, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotQuery, gotArgs, err := Rebind(tt.dialect, tt.query, tt.args)
			if err != nil {
				t.Fatalf("Rebind() error = %v", err)
			}
			if gotQuery != tt.wantQuery {
				t.Errorf("query = %q, want %q", gotQuery, tt.wantQuery)
			}
			if !reflect.DeepEqual(gotArgs, tt.wantArgs) {
				t.Errorf("args = %v, want %v", gotArgs, tt.wantArgs)
			}
		})
	}
}

func TestRebindOutOfRange(t *testing.T) {
	if _, _, err := Rebind(SQLite, "SELECT $3", []any{1}); err == nil {
		t.Fatal("Rebind() expected error for $3 with one argument")
	}
	if _, _, err := Rebind(SQLite, "SELECT $0", []any{1}); err == nil {
		t.Fatal("Rebind() expected error for $0")
	}
}

func TestIsInsert(t *testing.T) {
	cases := map[string]bool{
		"INSERT INTO users (a) VALUES ($1)":              true,
		"  insert into users (a) values ($1)":            true,
		"INSERT INTO users (a) VALUES ($1) RETURNING id": false,
		"UPDATE users SET a = $1":                        false,
		"SELECT 1":                                       false,
	}
	for query, want := range cases {
		if got := isInsert(query); got != want {
			t.Errorf("isInsert(%q) = %v, want %v", query, got, want)
		}
	}
}
