package repository

import (
	"context"

	"github.com/google/uuid"

	"bookshelf-api/internal/domains/user/model"
)

// RepositoryInterface - data access for users
type RepositoryInterface interface {
	// Create stores u and fills its storage ID.
	// Errors: ErrUsernameTaken, ErrUserExists
	Create(ctx context.Context, u *model.User) (*model.User, error)

	// Errors: ErrUserNotFound
	FindByIdentifier(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)

	FindAll(ctx context.Context) ([]model.User, error)

	// DeleteByIdentifier reports whether a row was removed.
	DeleteByIdentifier(ctx context.Context, id uuid.UUID) (bool, error)
}
