package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

const schemaTemplate = `
CREATE TABLE IF NOT EXISTS users (
	id {{pk}},
	username {{key}} NOT NULL UNIQUE,
	password TEXT NOT NULL,
	role {{short}} NOT NULL CHECK (role IN ('master', 'collaborator')),
	name TEXT
);

CREATE TABLE IF NOT EXISTS tasks (
	id {{pk}},
	title TEXT NOT NULL,
	description TEXT,
	assigned_to INTEGER NOT NULL,
	status {{short}} NOT NULL DEFAULT 'pending',
	failure_reason TEXT,
	due_date {{short}},
	FOREIGN KEY (assigned_to) REFERENCES users(id)
);

CREATE TABLE IF NOT EXISTS time_logs (
	id {{pk}},
	user_id INTEGER NOT NULL,
	type {{short}} NOT NULL,
	timestamp TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (user_id) REFERENCES users(id)
);

CREATE TABLE IF NOT EXISTS feedback (
	id {{pk}},
	user_id INTEGER NOT NULL,
	content TEXT NOT NULL,
	date {{short}} NOT NULL,
	FOREIGN KEY (user_id) REFERENCES users(id)
)`

// Tables lists the tables the initializer owns, in creation order.
var Tables = []string{"users", "tasks", "time_logs", "feedback"}

// SchemaStatements renders the CREATE TABLE statements for d, one per
// element.
func SchemaStatements(d Dialect) []string {
	var r *strings.Replacer
	switch d {
	case Postgres:
		r = strings.NewReplacer("{{pk}}", "SERIAL PRIMARY KEY", "{{key}}", "TEXT", "{{short}}", "TEXT")
	case MySQL:
		// MySQL cannot index or default TEXT columns
		r = strings.NewReplacer("{{pk}}", "INTEGER PRIMARY KEY AUTO_INCREMENT", "{{key}}", "VARCHAR(255)", "{{short}}", "VARCHAR(64)")
	default:
		r = strings.NewReplacer("{{pk}}", "INTEGER PRIMARY KEY AUTOINCREMENT", "{{key}}", "TEXT", "{{short}}", "TEXT")
	}

	var stmts []string
	for _, stmt := range strings.Split(r.Replace(schemaTemplate), ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}

// Seed is the master account created when none exists.
type Seed struct {
	Username string
	Password string
	Name     string
}

// DefaultSeed is the account a fresh install starts with.
var DefaultSeed = Seed{Username: "admin", Password: "admin123", Name: "Administrador"}

// Initializer creates the schema and the master account. Ensure is
// idempotent; EnsureOnce additionally remembers success for the life of the
// process.
type Initializer struct {
	store  Store
	seed   Seed
	logger *slog.Logger

	mu   sync.Mutex
	done bool
}

func NewInitializer(st Store, seed Seed, logger *slog.Logger) *Initializer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Initializer{store: st, seed: seed, logger: logger}
}

// Ensure creates missing tables and seeds the master account if no user
// holds the master role.
func (i *Initializer) Ensure(ctx context.Context) error {
	for _, stmt := range SchemaStatements(i.store.Dialect()) {
		if _, err := i.store.Execute(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}

	_, err := i.store.QueryOne(ctx, "SELECT id FROM users WHERE role = 'master'")
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("look up master: %w", err)
	}

	res, err := i.store.Execute(ctx,
		"INSERT INTO users (username, password, role, name) VALUES ($1, $2, $3, $4)",
		i.seed.Username, i.seed.Password, "master", i.seed.Name)
	if err != nil {
		if IsUniqueViolation(err) {
			// a concurrent Ensure seeded it first
			return nil
		}
		return fmt.Errorf("seed master: %w", err)
	}
	i.logger.Info("seeded master account", "username", i.seed.Username, "id", res.InsertedID)
	return nil
}

func (i *Initializer) EnsureOnce(ctx context.Context) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.done {
		return nil
	}
	if err := i.Ensure(ctx); err != nil {
		return err
	}
	i.done = true
	return nil
}

// ListTables returns the user tables present in the connected database.
func ListTables(ctx context.Context, st Store) ([]string, error) {
	var query string
	switch st.Dialect() {
	case Postgres:
		query = "SELECT table_name AS name FROM information_schema.tables WHERE table_schema = current_schema() ORDER BY table_name"
	case MySQL:
		query = "SELECT table_name AS name FROM information_schema.tables WHERE table_schema = DATABASE() ORDER BY table_name"
	default:
		query = "SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name"
	}

	rows, err := st.QueryMany(ctx, query)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(rows))
	for _, row := range rows {
		names = append(names, row.String("name"))
	}
	return names, nil
}
