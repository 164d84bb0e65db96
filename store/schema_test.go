package store

import (
	"context"
	"reflect"
	"strings"
	"testing"
)

func TestSchemaStatements(t *testing.T) {
	for _, d := range []Dialect{SQLite, Postgres, MySQL} {
		stmts := SchemaStatements(d)
		if len(stmts) != len(Tables) {
			t.Fatalf("%s: %d statements, want %d", d, len(stmts), len(Tables))
		}
		for i, stmt := range stmts {
			if !strings.HasPrefix(stmt, "CREATE TABLE IF NOT EXISTS "+Tables[i]) {
				t.Errorf("%s: statement %d = %q", d, i, stmt)
			}
			if strings.Contains(stmt, "{{") {
				t.Errorf("%s: unrendered placeholder in %q", d, stmt)
			}
		}
	}

	if !strings.Contains(SchemaStatements(Postgres)[0], "SERIAL PRIMARY KEY") {
		t.Error("postgres schema should use SERIAL")
	}
	if !strings.Contains(SchemaStatements(SQLite)[0], "AUTOINCREMENT") {
		t.Error("sqlite schema should use AUTOINCREMENT")
	}
	if !strings.Contains(SchemaStatements(MySQL)[0], "VARCHAR(255) NOT NULL UNIQUE") {
		t.Error("mysql schema needs a bounded username column")
	}
}

func TestInitializerIdempotent(t *testing.T) {
	ctx := context.Background()
	st := openMemory(t)
	init := NewInitializer(st, DefaultSeed, quietLogger())

	for i := 0; i < 3; i++ {
		if err := init.Ensure(ctx); err != nil {
			t.Fatalf("Ensure() #%d error = %v", i+1, err)
		}
	}

	rows, err := st.QueryMany(ctx, "SELECT username, password, name FROM users WHERE role = 'master'")
	if err != nil {
		t.Fatalf("query masters: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("masters = %d, want 1", len(rows))
	}
	if rows[0].String("username") != "admin" || rows[0].String("password") != "admin123" || rows[0].String("name") != "Administrador" {
		t.Errorf("master = %v", rows[0])
	}

	all, err := st.QueryMany(ctx, "SELECT id FROM users")
	if err != nil {
		t.Fatalf("query users: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("users = %d, want 1", len(all))
	}

	tables, err := ListTables(ctx, st)
	if err != nil {
		t.Fatalf("ListTables() error = %v", err)
	}
	want := []string{"feedback", "tasks", "time_logs", "users"}
	if !reflect.DeepEqual(tables, want) {
		t.Errorf("ListTables() = %v, want %v", tables, want)
	}
}

func TestInitializerKeepsExistingMaster(t *testing.T) {
	ctx := context.Background()
	st := openMemory(t)
	for _, stmt := range SchemaStatements(SQLite) {
		if _, err := st.Execute(ctx, stmt); err != nil {
			t.Fatalf("schema: %v", err)
		}
	}
	if _, err := st.Execute(ctx,
		"INSERT INTO users (username, password, role, name) VALUES ('boss', 'pw', 'master', 'Boss')"); err != nil {
		t.Fatalf("insert master: %v", err)
	}

	if err := NewInitializer(st, DefaultSeed, quietLogger()).Ensure(ctx); err != nil {
		t.Fatalf("Ensure() error = %v", err)
	}

	if _, err := st.QueryOne(ctx, "SELECT id FROM users WHERE username = 'admin'"); err == nil {
		t.Error("default master should not be seeded when a master exists")
	}
}

func TestEnsureOnce(t *testing.T) {
	ctx := context.Background()
	st := openMemory(t)
	init := NewInitializer(st, Seed{Username: "root", Password: "pw", Name: "Root"}, quietLogger())

	if err := init.EnsureOnce(ctx); err != nil {
		t.Fatalf("EnsureOnce() error = %v", err)
	}
	// drop the seed; a remembered success must not re-run the initializer
	if _, err := st.Execute(ctx, "DELETE FROM users"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := init.EnsureOnce(ctx); err != nil {
		t.Fatalf("EnsureOnce() second call error = %v", err)
	}
	if _, err := st.QueryOne(ctx, "SELECT id FROM users"); err == nil {
		t.Error("EnsureOnce re-ran after success")
	}
}
