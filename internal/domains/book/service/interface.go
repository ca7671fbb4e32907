package service

import (
	"context"

	"github.com/google/uuid"

	authormodel "bookshelf-api/internal/domains/author/model"
	"bookshelf-api/internal/domains/book/model"
)

// ServiceInterface - book business logic
type ServiceInterface interface {
	// Create fails with a bad request when an author identifier is unknown.
	Create(ctx context.Context, req model.CreateBookRequest) (*model.Book, error)
	FindByIdentifier(ctx context.Context, id uuid.UUID) (*model.Book, error)
	FindAll(ctx context.Context) ([]model.Book, error)

	// Search matches by isbn when given, otherwise by title. Blank values
	// count as absent; both absent is ErrSearchParamMissing.
	Search(ctx context.Context, isbn, title string) ([]model.Book, error)

	// Update applies req when the stored version is still expectedVersion.
	Update(ctx context.Context, id uuid.UUID, req model.UpdateBookRequest, expectedVersion int64) (*model.Book, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// AuthorsOf resolves the authors of books, keyed by identifier.
	AuthorsOf(ctx context.Context, books ...model.Book) (map[uuid.UUID]authormodel.Author, error)
}

// AuthorFinder resolves author identifiers. Unknown ones are skipped.
type AuthorFinder interface {
	FindByIdentifiers(ctx context.Context, ids []uuid.UUID) ([]authormodel.Author, error)
}

// Auditor names the actor of a write.
type Auditor interface {
	CurrentAuditor(ctx context.Context) (uuid.UUID, error)
}
