package repository

import (
	"context"

	"github.com/google/uuid"

	"bookshelf-api/internal/domains/author/model"
)

// RepositoryInterface - data access for authors
type RepositoryInterface interface {
	// Errors: ErrAuthorExists
	Create(ctx context.Context, a *model.Author) (*model.Author, error)

	// Errors: ErrAuthorNotFound
	FindByIdentifier(ctx context.Context, id uuid.UUID) (*model.Author, error)

	// FindByIdentifiers returns the authors that exist, in the order of ids.
	// Unknown identifiers are skipped.
	FindByIdentifiers(ctx context.Context, ids []uuid.UUID) ([]model.Author, error)

	FindByLastname(ctx context.Context, lastname string) ([]model.Author, error)
	FindAll(ctx context.Context) ([]model.Author, error)

	DeleteByIdentifier(ctx context.Context, id uuid.UUID) (bool, error)
}
