package storage

import (
	"context"
	"database/sql"

	"github.com/stockroomhq/stockroom/pkg/model"
)

func userFields(u *model.User) []field {
	return []field{
		{"Username", u.Username},
		{"PasswordHash", u.PasswordHash},
		{"Email", u.Email},
		{"FullName", u.FullName},
		{"Role", u.Role},
		{"Active", u.Active},
	}
}

const userSelect = `
	SELECT id, username, password_hash, email, full_name, role, active
	FROM users
`

func scanUser(rows *sql.Rows) (*model.User, error) {
	var u model.User
	var email, fullName, role sql.NullString
	if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &email, &fullName, &role, &u.Active); err != nil {
		return nil, err
	}
	u.Email = email.String
	u.FullName = fullName.String
	u.Role = model.Role(role.String)
	return &u, nil
}

func (s *Store) listUsersWithQuerier(ctx context.Context, q querier) ([]*model.User, error) {
	return queryAll(ctx, q, userSelect+` ORDER BY username`, scanUser)
}

func (s *Store) ListUsers(ctx context.Context) ([]*model.User, error) {
	return s.listUsersWithQuerier(ctx, s.querier())
}

func (s *Store) getUserWithQuerier(ctx context.Context, q querier, id int64) (*model.User, error) {
	users, err := queryAll(ctx, q, userSelect+` WHERE id = ?`, scanUser, id)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, model.ErrNotFound
	}
	return users[0], nil
}

func (s *Store) GetUser(ctx context.Context, id int64) (*model.User, error) {
	return s.getUserWithQuerier(ctx, s.querier(), id)
}

func (s *Store) getUserByUsernameWithQuerier(ctx context.Context, q querier, username string) (*model.User, error) {
	users, err := queryAll(ctx, q, userSelect+` WHERE username = ?`, scanUser, username)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, model.ErrNotFound
	}
	return users[0], nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return s.getUserByUsernameWithQuerier(ctx, s.querier(), username)
}

func (s *Store) saveUserWithQuerier(ctx context.Context, q querier, u *model.User) error {
	if u.ID > 0 {
		// An empty hash means the password is unchanged; leave the
		// stored one alone.
		if u.PasswordHash == "" {
			return updateRecord(ctx, q, "users", "ID", u.ID, userFields(u), "PasswordHash")
		}
		return updateRecord(ctx, q, "users", "ID", u.ID, userFields(u))
	}
	id, err := insertRecord(ctx, q, "users", userFields(u))
	if err != nil {
		return err
	}
	u.ID = id
	return nil
}

// SaveUser inserts or updates the account row. The caller hashes the
// password; plaintext never reaches this layer.
func (s *Store) SaveUser(ctx context.Context, u *model.User) error {
	return s.saveUserWithQuerier(ctx, s.querier(), u)
}

func (s *Store) deactivateUserWithQuerier(ctx context.Context, q querier, id int64) error {
	result, err := q.ExecContext(ctx, `UPDATE users SET active = 0 WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// DeactivateUser is the delete operation for accounts; rows are kept.
func (s *Store) DeactivateUser(ctx context.Context, id int64) error {
	return s.deactivateUserWithQuerier(ctx, s.querier(), id)
}
