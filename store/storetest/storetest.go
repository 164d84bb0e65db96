// Package storetest opens throwaway stores for tests.
package storetest

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"taskmaster/store"
)

// NewMemory returns an in-memory SQLite store with the schema created and
// the default master seeded. It is closed when the test ends.
func NewMemory(t testing.TB) *store.SQLStore {
	t.Helper()

	st := NewEmpty(t)
	init := store.NewInitializer(st, store.DefaultSeed, Logger())
	if err := init.Ensure(context.Background()); err != nil {
		t.Fatalf("Ensure() error = %v", err)
	}
	return st
}

// NewEmpty returns an in-memory SQLite store without any tables.
func NewEmpty(t testing.TB) *store.SQLStore {
	t.Helper()

	st, err := store.Open(context.Background(), store.Options{SQLitePath: store.MemoryPath})
	if err != nil {
		t.Fatalf("store.Open() error = %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

// Logger discards everything.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// MustInsertUser adds a user row and returns its id.
func MustInsertUser(t testing.TB, st store.Store, username, role, name string) int64 {
	t.Helper()

	res, err := st.Execute(context.Background(),
		"INSERT INTO users (username, password, role, name) VALUES ($1, $2, $3, $4)",
		username, "secret", role, name)
	if err != nil {
		t.Fatalf("insert user %q: %v", username, err)
	}
	return res.InsertedID
}
