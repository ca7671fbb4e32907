package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	authormodel "bookshelf-api/internal/domains/author/model"
	authorservice "bookshelf-api/internal/domains/author/service"
	bookmodel "bookshelf-api/internal/domains/book/model"
	bookservice "bookshelf-api/internal/domains/book/service"
	usermodel "bookshelf-api/internal/domains/user/model"
	userservice "bookshelf-api/internal/domains/user/service"
	"bookshelf-api/internal/shared/auth"
)

const samplePassword = "secret"

const esDescription = "Seit Jahrhunderten lauert in der Kanalisation der Kleinstadt Derry ein Wesen, " +
	"das sich von den Ängsten seiner Opfer ernährt. Sieben Kinder stellen sich ihm entgegen."

// Seeder creates the sample users, author and book.
type Seeder struct {
	users   userservice.ServiceInterface
	authors authorservice.ServiceInterface
	books   bookservice.ServiceInterface
}

func NewSeeder(users userservice.ServiceInterface, authors authorservice.ServiceInterface, books bookservice.ServiceInterface) *Seeder {
	return &Seeder{users: users, authors: authors, books: books}
}

// Run is safe to call on every start; existing records are left alone.
func (s *Seeder) Run(ctx context.Context) error {
	// the technical user first: it is the audit actor of the sample book
	for _, u := range []usermodel.CreateUserRequest{
		{FirstName: "Technical", LastName: "User", Username: auth.TechnicalUsername, Password: samplePassword},
		{FirstName: "Bruce", LastName: "Wayne", Username: "user", Password: samplePassword},
	} {
		if err := s.ensureUser(ctx, u); err != nil {
			return err
		}
	}

	king, err := s.ensureAuthor(ctx, authormodel.CreateAuthorRequest{
		Gender:    authormodel.GenderMale,
		Firstname: "Stephen",
		Lastname:  "King",
	})
	if err != nil {
		return err
	}

	return s.ensureBook(ctx, bookmodel.CreateBookRequest{
		Title:       "ES",
		ISBN:        "978-3-4534-3577-3",
		Description: esDescription,
		Genre:       bookmodel.GenreHorror,
		Authors:     []uuid.UUID{king.Identifier},
	})
}

func (s *Seeder) ensureUser(ctx context.Context, req usermodel.CreateUserRequest) error {
	_, err := s.users.FindByUsername(ctx, req.Username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, usermodel.ErrUserNotFound) {
		return fmt.Errorf("seed user %s: %w", req.Username, err)
	}

	if _, err := s.users.Create(ctx, req); err != nil {
		return fmt.Errorf("seed user %s: %w", req.Username, err)
	}
	log.Info().Str("username", req.Username).Msg("Seeded user")
	return nil
}

func (s *Seeder) ensureAuthor(ctx context.Context, req authormodel.CreateAuthorRequest) (*authormodel.Author, error) {
	existing, err := s.authors.FindByLastname(ctx, req.Lastname)
	if err != nil {
		return nil, fmt.Errorf("seed author: %w", err)
	}
	for i := range existing {
		if existing[i].Firstname == req.Firstname {
			return &existing[i], nil
		}
	}

	a, err := s.authors.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("seed author: %w", err)
	}
	log.Info().Str("author_id", a.Identifier.String()).Msg("Seeded author")
	return a, nil
}

func (s *Seeder) ensureBook(ctx context.Context, req bookmodel.CreateBookRequest) error {
	existing, err := s.books.Search(ctx, req.ISBN, "")
	if err != nil {
		return fmt.Errorf("seed book: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	b, err := s.books.Create(ctx, req)
	if err != nil {
		return fmt.Errorf("seed book: %w", err)
	}
	log.Info().Str("book_id", b.Identifier.String()).Msg("Seeded book")
	return nil
}
