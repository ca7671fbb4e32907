package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	authormodel "bookshelf-api/internal/domains/author/model"
	"bookshelf-api/internal/domains/book/model"
	"bookshelf-api/internal/domains/book/repository"
)

type bookService struct {
	repo    repository.RepositoryInterface
	authors AuthorFinder
	auditor Auditor
	now     func() time.Time
}

func NewBookService(repo repository.RepositoryInterface, authors AuthorFinder, auditor Auditor) ServiceInterface {
	return &bookService{
		repo:    repo,
		authors: authors,
		auditor: auditor,
		now:     time.Now,
	}
}

// timestamp is truncated to what Postgres stores.
func (s *bookService) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

// ========================================
// WRITE
// ========================================

func (s *bookService) Create(ctx context.Context, req model.CreateBookRequest) (*model.Book, error) {
	authorIDs := dedupe(req.Authors)
	if err := s.requireAuthors(ctx, authorIDs); err != nil {
		return nil, err
	}

	actor, err := s.auditor.CurrentAuditor(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve auditor: %w", err)
	}
	now := s.timestamp()

	b := &model.Book{
		Identifier:     uuid.New(),
		Title:          req.Title,
		ISBN:           req.ISBN,
		Description:    req.Description,
		Genre:          req.Genre,
		AuthorIDs:      authorIDs,
		Version:        0,
		CreatedBy:      actor,
		CreatedAt:      now,
		LastModifiedBy: actor,
		LastModifiedAt: now,
	}
	if req.Identifier != nil && *req.Identifier != uuid.Nil {
		b.Identifier = *req.Identifier
	}

	created, err := s.repo.Create(ctx, b)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("book_id", created.Identifier.String()).
		Str("isbn", created.ISBN).
		Int("authors", len(created.AuthorIDs)).
		Msg("Book created")
	return created, nil
}

func (s *bookService) Update(ctx context.Context, id uuid.UUID, req model.UpdateBookRequest, expectedVersion int64) (*model.Book, error) {
	actor, err := s.auditor.CurrentAuditor(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve auditor: %w", err)
	}

	updated, err := s.repo.Update(ctx, &model.Book{
		Identifier:     id,
		Title:          req.Title,
		ISBN:           req.ISBN,
		Description:    req.Description,
		Genre:          req.Genre,
		LastModifiedBy: actor,
		LastModifiedAt: s.timestamp(),
	}, expectedVersion)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("book_id", id.String()).
		Int64("version", updated.Version).
		Msg("Book updated")
	return updated, nil
}

func (s *bookService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	removed, err := s.repo.DeleteByIdentifier(ctx, id)
	if err != nil {
		return false, err
	}
	if removed {
		log.Info().Str("book_id", id.String()).Msg("Book deleted")
	}
	return removed, nil
}

// ========================================
// READ
// ========================================

func (s *bookService) FindByIdentifier(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	return s.repo.FindByIdentifier(ctx, id)
}

func (s *bookService) FindAll(ctx context.Context) ([]model.Book, error) {
	return s.repo.FindAll(ctx)
}

func (s *bookService) Search(ctx context.Context, isbn, title string) ([]model.Book, error) {
	switch {
	case strings.TrimSpace(isbn) != "":
		return s.repo.FindByISBN(ctx, isbn)
	case strings.TrimSpace(title) != "":
		return s.repo.FindByTitle(ctx, title)
	default:
		return nil, model.ErrSearchParamMissing
	}
}

func (s *bookService) AuthorsOf(ctx context.Context, books ...model.Book) (map[uuid.UUID]authormodel.Author, error) {
	var ids []uuid.UUID
	for i := range books {
		ids = append(ids, books[i].AuthorIDs...)
	}
	ids = dedupe(ids)

	out := make(map[uuid.UUID]authormodel.Author, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	found, err := s.authors.FindByIdentifiers(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve authors: %w", err)
	}
	for _, a := range found {
		out[a.Identifier] = a
	}
	return out, nil
}

func (s *bookService) requireAuthors(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	found, err := s.authors.FindByIdentifiers(ctx, ids)
	if err != nil {
		return fmt.Errorf("resolve authors: %w", err)
	}
	known := make(map[uuid.UUID]bool, len(found))
	for _, a := range found {
		known[a.Identifier] = true
	}
	for _, id := range ids {
		if !known[id] {
			return model.UnknownAuthorError(id)
		}
	}
	return nil
}

// dedupe keeps the first occurrence of each identifier.
func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
