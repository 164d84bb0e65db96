package services

import (
	"context"
	"errors"
	"fmt"

	"taskmaster/model"
	"taskmaster/store"
)

const userColumns = "id, username, role, name"

func userFromRow(row store.Row) model.User {
	return model.User{
		ID:       row.Int64("id"),
		Username: row.String("username"),
		Role:     model.Role(row.String("role")),
		Name:     row.String("name"),
	}
}

// Authenticate returns the user whose username and password match exactly.
// Passwords are stored as given.
func Authenticate(ctx context.Context, st store.Store, username, password string) (*model.User, error) {
	row, err := st.QueryOne(ctx,
		"SELECT "+userColumns+" FROM users WHERE username = $1 AND password = $2",
		username, password)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	user := userFromRow(row)
	return &user, nil
}

func ListCollaborators(ctx context.Context, st store.Store) ([]model.User, error) {
	rows, err := st.QueryMany(ctx,
		"SELECT "+userColumns+" FROM users WHERE role = $1 ORDER BY id",
		string(model.RoleCollaborator))
	if err != nil {
		return nil, err
	}
	users := make([]model.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, userFromRow(row))
	}
	return users, nil
}

// CreateCollaborator inserts a user with the collaborator role. The role is
// never taken from the caller.
func CreateCollaborator(ctx context.Context, st store.Store, username, password, name string) (int64, error) {
	res, err := st.Execute(ctx,
		"INSERT INTO users (username, password, role, name) VALUES ($1, $2, $3, $4)",
		username, password, string(model.RoleCollaborator), name)
	if err != nil {
		if store.IsUniqueViolation(err) {
			return 0, fmt.Errorf("%w: %s", ErrUsernameTaken, username)
		}
		return 0, err
	}
	return res.InsertedID, nil
}

func GetUserByID(ctx context.Context, st store.Store, id int64) (*model.User, error) {
	row, err := st.QueryOne(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	user := userFromRow(row)
	return &user, nil
}

// GetMaster returns the master account.
func GetMaster(ctx context.Context, st store.Store) (*model.User, error) {
	row, err := st.QueryOne(ctx,
		"SELECT "+userColumns+" FROM users WHERE role = $1 ORDER BY id",
		string(model.RoleMaster))
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	user := userFromRow(row)
	return &user, nil
}

// requireUser fails with ErrUserNotFound unless id names an existing user.
func requireUser(ctx context.Context, st store.Store, id int64) error {
	_, err := st.QueryOne(ctx, "SELECT id FROM users WHERE id = $1", id)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: id %d", ErrUserNotFound, id)
	}
	return err
}
