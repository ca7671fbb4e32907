package service

import (
	"context"

	"github.com/google/uuid"

	"bookshelf-api/internal/domains/author/model"
)

// ServiceInterface - author business logic
type ServiceInterface interface {
	Create(ctx context.Context, req model.CreateAuthorRequest) (*model.Author, error)
	FindByIdentifier(ctx context.Context, id uuid.UUID) (*model.Author, error)
	FindByIdentifiers(ctx context.Context, ids []uuid.UUID) ([]model.Author, error)
	FindByLastname(ctx context.Context, lastname string) ([]model.Author, error)
	FindAll(ctx context.Context) ([]model.Author, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// BookDetacher removes an author from every book that lists it.
type BookDetacher interface {
	DetachAuthor(ctx context.Context, authorID uuid.UUID) error
}
