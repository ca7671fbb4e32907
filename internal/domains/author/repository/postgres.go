package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookshelf-api/internal/domains/author/model"
)

const authorColumns = `id, identifier, gender, firstname, lastname, version`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func scanAuthor(row pgx.Row) (*model.Author, error) {
	var a model.Author
	if err := row.Scan(&a.ID, &a.Identifier, &a.Gender, &a.Firstname, &a.Lastname, &a.Version); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *postgresRepository) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	query := `
        INSERT INTO authors (identifier, gender, firstname, lastname, version)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + authorColumns

	created, err := scanAuthor(r.pool.QueryRow(ctx, query,
		a.Identifier,
		string(a.Gender),
		a.Firstname,
		a.Lastname,
		a.Version,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, model.ErrAuthorExists
		}
		return nil, fmt.Errorf("failed to create author: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) FindByIdentifier(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	a, err := scanAuthor(r.pool.QueryRow(ctx,
		`SELECT `+authorColumns+` FROM authors WHERE identifier = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author: %w", err)
	}
	return a, nil
}

func (r *postgresRepository) FindByIdentifiers(ctx context.Context, ids []uuid.UUID) ([]model.Author, error) {
	if len(ids) == 0 {
		return []model.Author{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = id.String()
	}
	found, err := r.list(ctx, `SELECT `+authorColumns+` FROM authors WHERE identifier::text = ANY($1::text[])`, keys)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]model.Author, len(found))
	for _, a := range found {
		byID[a.Identifier] = a
	}
	out := make([]model.Author, 0, len(ids))
	for _, id := range ids {
		if a, ok := byID[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *postgresRepository) FindByLastname(ctx context.Context, lastname string) ([]model.Author, error) {
	return r.list(ctx, `SELECT `+authorColumns+` FROM authors WHERE lastname = $1 ORDER BY id`, lastname)
}

func (r *postgresRepository) FindAll(ctx context.Context) ([]model.Author, error) {
	return r.list(ctx, `SELECT `+authorColumns+` FROM authors ORDER BY id`)
}

// DeleteByIdentifier removes the author. book_authors rows go with it
// through ON DELETE CASCADE.
func (r *postgresRepository) DeleteByIdentifier(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM authors WHERE identifier = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete author: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *postgresRepository) list(ctx context.Context, query string, args ...interface{}) ([]model.Author, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	defer rows.Close()

	authors := make([]model.Author, 0)
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, *a)
	}
	return authors, rows.Err()
}
