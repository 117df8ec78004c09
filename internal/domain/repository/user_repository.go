package repository

import (
	"context"
	"errors"

	"github.com/inkwell/inkwell-auth/internal/domain/entity"
)

var (
	// ErrNotFound is returned when no user matches the query.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateKey is returned when an insert violates a unique index
	// (email or username).
	ErrDuplicateKey = errors.New("duplicate key")
)

// UserRepository defines the user store operations needed by the auth flows.
type UserRepository interface {
	// Create inserts the user and fills in the store-assigned ID.
	Create(ctx context.Context, u *entity.User) error
	// GetByEmail loads the full document for the password signin path.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// GetAuthProfileByEmail loads only the fields needed for response
	// shaping plus the google_auth flag.
	GetAuthProfileByEmail(ctx context.Context, email string) (*entity.User, error)
	// UsernameExists reports whether a username is already taken. The
	// check is a point-in-time read; callers must treat it as advisory.
	UsernameExists(ctx context.Context, username string) (bool, error)
}
