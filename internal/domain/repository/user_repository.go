package repository

import (
	"context"
	"errors"

	"github.com/devconnector/devconnector-api/internal/domain/entity"
)

// ErrNotFound is returned by any repository when the requested record does
// not exist. Callers treat it as an expected outcome, not a storage fault.
var ErrNotFound = errors.New("not found")

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Delete(ctx context.Context, id string) error
}
