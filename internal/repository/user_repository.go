package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mkarimi-dev/employee-leave-api/internal/model"
)

const userCols = "userId, firstName, lastName, email, designation, dateOfBirth, supervisor, password"

// UserRepo persists personnel profiles in the `users` table. It is
// the sole mutator of that table; handlers never cache rows across
// requests.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// List returns every profile, oldest first.
func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+userCols+" FROM users")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.UserID, &u.FirstName, &u.LastName, &u.Email,
			&u.Designation, &u.DateOfBirth, &u.Supervisor, &u.Password); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Get fetches one profile by personnel number.
func (r *UserRepo) Get(ctx context.Context, userID int64) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+userCols+" FROM users WHERE userId=? LIMIT 1",
		userID).Scan(&u.UserID, &u.FirstName, &u.LastName, &u.Email,
		&u.Designation, &u.DateOfBirth, &u.Supervisor, &u.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrNotFound
	}
	return u, err
}

// Create inserts a profile. The userId comes from the caller and the
// password field must already be hashed.
func (r *UserRepo) Create(ctx context.Context, u model.User) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO users ("+userCols+") VALUES (?,?,?,?,?,?,?,?)",
		u.UserID, u.FirstName, u.LastName, u.Email,
		u.Designation, u.DateOfBirth, u.Supervisor, u.Password)
	return err
}

// Update rewrites the mutable profile fields. The userId and password
// columns are never touched through this path. Returns ErrNotFound
// when no row matches.
func (r *UserRepo) Update(ctx context.Context, u model.User) (model.User, error) {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE users SET firstName=?, lastName=?, email=?, designation=?, dateOfBirth=?, supervisor=? WHERE userId=?",
		u.FirstName, u.LastName, u.Email, u.Designation, u.DateOfBirth, u.Supervisor, u.UserID)
	if err != nil {
		return model.User{}, err
	}
	// Re-select instead of checking RowsAffected: MySQL reports zero
	// affected rows when the new values equal the old ones.
	return r.Get(ctx, u.UserID)
}

// Delete removes a profile and returns the removed row so the caller
// can reference it in the confirmation.
func (r *UserRepo) Delete(ctx context.Context, userID int64) (model.User, error) {
	u, err := r.Get(ctx, userID)
	if err != nil {
		return model.User{}, err
	}
	if _, err := r.DB.ExecContext(ctx,
		"DELETE FROM users WHERE userId=?", userID); err != nil {
		return model.User{}, err
	}
	return u, nil
}
