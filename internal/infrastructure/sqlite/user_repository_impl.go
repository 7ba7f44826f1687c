package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mattn/go-sqlite3"

	"github.com/oksasatya/hello-users-api/internal/domain/entity"
	"github.com/oksasatya/hello-users-api/internal/domain/repository"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{db: store.DB()}
}

func (r *UserRepository) List(ctx context.Context) ([]entity.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, email FROM users`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	users := make([]entity.User, 0)
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM users WHERE id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	u := &entity.User{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, email FROM users WHERE id = ?
	`, id).Scan(&u.ID, &u.Name, &u.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) Create(ctx context.Context, draft entity.UserDraft) (*entity.User, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO users (name, email) VALUES (?, ?)
	`, draft.Name, draft.Email)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, repository.ErrDuplicateEmail
		}
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *UserRepository) Update(ctx context.Context, id int64, draft entity.UserDraft) (*entity.User, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := current.Name
	if draft.Name != nil {
		name = *draft.Name
	}
	email := current.Email
	if draft.Email != nil {
		email = *draft.Email
	}

	if _, err := r.db.ExecContext(ctx, `
		UPDATE users SET name = ?, email = ? WHERE id = ?
	`, name, email, id); err != nil {
		if isUniqueViolation(err) {
			return nil, repository.ErrDuplicateEmail
		}
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	// Deleting an id with no row is a no-op, not an error.
	_, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	return err
}

func (r *UserRepository) EmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	var (
		one int
		err error
	)
	if excludeID > 0 {
		err = r.db.QueryRowContext(ctx, `
			SELECT 1 FROM users WHERE email = ? AND id != ?
		`, email, excludeID).Scan(&one)
	} else {
		err = r.db.QueryRowContext(ctx, `
			SELECT 1 FROM users WHERE email = ?
		`, email).Scan(&one)
	}
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// isUniqueViolation reports whether err is a sqlite UNIQUE constraint failure.
// The users.email column is declared UNIQUE as a backstop, so a write racing
// past the handler-level pre-check still surfaces as a recoverable conflict.
func isUniqueViolation(err error) bool {
	var serr sqlite3.Error
	if errors.As(err, &serr) {
		return serr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			serr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}

var _ repository.UserRepository = (*UserRepository)(nil)
