package repository

import (
	"context"

	"github.com/google/uuid"

	"bookshelf-api/internal/domains/book/model"
)

// RepositoryInterface - data access for books
type RepositoryInterface interface {
	// Create stores b together with its author links.
	// Errors: ErrBookExists
	Create(ctx context.Context, b *model.Book) (*model.Book, error)

	// Errors: ErrBookNotFound
	FindByIdentifier(ctx context.Context, id uuid.UUID) (*model.Book, error)
	FindAll(ctx context.Context) ([]model.Book, error)

	// FindByISBN and FindByTitle match case-insensitive substrings.
	FindByISBN(ctx context.Context, isbn string) ([]model.Book, error)
	FindByTitle(ctx context.Context, title string) ([]model.Book, error)

	// Update writes title, isbn, description, genre and the modification
	// audit fields of b, but only while the stored version still equals
	// expectedVersion. The stored version becomes expectedVersion+1.
	// Errors: ErrBookNotFound, ErrVersionConflict
	Update(ctx context.Context, b *model.Book, expectedVersion int64) (*model.Book, error)

	DeleteByIdentifier(ctx context.Context, id uuid.UUID) (bool, error)

	// DetachAuthor removes authorID from every book.
	DetachAuthor(ctx context.Context, authorID uuid.UUID) error
}
