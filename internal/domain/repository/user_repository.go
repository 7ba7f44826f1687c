package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/hello-users-api/internal/domain/entity"
)

var (
	// ErrNotFound is returned when no row matches the requested id.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when a write would violate the unique
	// email constraint at the storage level.
	ErrDuplicateEmail = errors.New("duplicate email")
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	List(ctx context.Context) ([]entity.User, error)
	Exists(ctx context.Context, id int64) (bool, error)
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	Create(ctx context.Context, draft entity.UserDraft) (*entity.User, error)
	Update(ctx context.Context, id int64, draft entity.UserDraft) (*entity.User, error)
	Delete(ctx context.Context, id int64) error
	// EmailExists reports whether any row holds the given email.
	// A non-zero excludeID leaves that row out of the check, so a user
	// can keep their own email across an update.
	EmailExists(ctx context.Context, email string, excludeID int64) (bool, error)
}
