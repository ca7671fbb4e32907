package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"bookshelf-api/internal/domains/author/model"
	"bookshelf-api/internal/domains/author/repository"
)

type authorService struct {
	repo  repository.RepositoryInterface
	books BookDetacher
}

// NewAuthorService creates the author service. books may be nil when
// the book store drops associations on its own.
func NewAuthorService(repo repository.RepositoryInterface, books BookDetacher) ServiceInterface {
	return &authorService{repo: repo, books: books}
}

func (s *authorService) Create(ctx context.Context, req model.CreateAuthorRequest) (*model.Author, error) {
	a := &model.Author{
		Identifier: uuid.New(),
		Gender:     req.Gender,
		Firstname:  req.Firstname,
		Lastname:   req.Lastname,
	}
	if req.Identifier != nil && *req.Identifier != uuid.Nil {
		a.Identifier = *req.Identifier
	}

	created, err := s.repo.Create(ctx, a)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("author_id", created.Identifier.String()).
		Str("lastname", created.Lastname).
		Msg("Author created")
	return created, nil
}

func (s *authorService) FindByIdentifier(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	return s.repo.FindByIdentifier(ctx, id)
}

func (s *authorService) FindByIdentifiers(ctx context.Context, ids []uuid.UUID) ([]model.Author, error) {
	return s.repo.FindByIdentifiers(ctx, ids)
}

func (s *authorService) FindByLastname(ctx context.Context, lastname string) ([]model.Author, error) {
	return s.repo.FindByLastname(ctx, lastname)
}

func (s *authorService) FindAll(ctx context.Context) ([]model.Author, error) {
	return s.repo.FindAll(ctx)
}

// Delete removes the author and its book associations. The books stay.
func (s *authorService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if s.books != nil {
		if err := s.books.DetachAuthor(ctx, id); err != nil {
			return false, fmt.Errorf("detach author from books: %w", err)
		}
	}

	removed, err := s.repo.DeleteByIdentifier(ctx, id)
	if err != nil {
		return false, err
	}
	if removed {
		log.Info().Str("author_id", id.String()).Msg("Author deleted")
	}
	return removed, nil
}
