package services

import (
	"context"
	"errors"
	"fmt"

	"taskmaster/store"
)

// DBReport summarizes the connected database for operators.
type DBReport struct {
	Database  string   `json:"database"`
	Tables    []string `json:"tables"`
	AdminUser string   `json:"adminUser"`
}

// AdminNotFound is reported when no master account exists yet.
const AdminNotFound = "not found"

func CheckDatabase(ctx context.Context, st store.Store) (*DBReport, error) {
	if err := st.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping: %w", err)
	}
	tables, err := store.ListTables(ctx, st)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}

	report := &DBReport{Database: st.Dialect().Label(), Tables: tables, AdminUser: AdminNotFound}
	master, err := GetMaster(ctx, st)
	switch {
	case errors.Is(err, ErrUserNotFound):
	case err != nil:
		return nil, fmt.Errorf("look up master: %w", err)
	default:
		report.AdminUser = master.Username
	}
	return report, nil
}
