package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookshelf-api/internal/domains/book/model"
	"bookshelf-api/pkg/database"
)

// bookSelect loads a book with its author identifiers in one row.
const bookSelect = `
    SELECT b.id, b.identifier, b.title, b.isbn, COALESCE(b.description, ''), b.genre, b.version,
           b.created_by, b.created_at, b.last_modified_by, b.last_modified_at,
           ARRAY(
               SELECT a.identifier::text
               FROM book_authors ba
               JOIN authors a ON a.id = ba.author_id
               WHERE ba.book_id = b.id
               ORDER BY ba.position, a.id
           ) AS authors
    FROM books b`

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func scanBook(row pgx.Row) (*model.Book, error) {
	var (
		b              model.Book
		createdBy      *uuid.UUID
		lastModifiedBy *uuid.UUID
		authors        []string
	)
	err := row.Scan(
		&b.ID,
		&b.Identifier,
		&b.Title,
		&b.ISBN,
		&b.Description,
		&b.Genre,
		&b.Version,
		&createdBy,
		&b.CreatedAt,
		&lastModifiedBy,
		&b.LastModifiedAt,
		&authors,
	)
	if err != nil {
		return nil, err
	}
	if createdBy != nil {
		b.CreatedBy = *createdBy
	}
	if lastModifiedBy != nil {
		b.LastModifiedBy = *lastModifiedBy
	}

	b.AuthorIDs = make([]uuid.UUID, 0, len(authors))
	for _, s := range authors {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("invalid author identifier %q: %w", s, err)
		}
		b.AuthorIDs = append(b.AuthorIDs, id)
	}
	return &b, nil
}

// nullable stores uuid.Nil as NULL.
func nullable(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

func (r *postgresRepository) Create(ctx context.Context, b *model.Book) (*model.Book, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*model.Book, error) {
		var id int64
		err := tx.QueryRow(ctx, `
            INSERT INTO books (identifier, title, isbn, description, genre, version,
                               created_by, created_at, last_modified_by, last_modified_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
            RETURNING id`,
			b.Identifier,
			b.Title,
			b.ISBN,
			b.Description,
			string(b.Genre),
			b.Version,
			nullable(b.CreatedBy),
			b.CreatedAt,
			nullable(b.LastModifiedBy),
			b.LastModifiedAt,
		).Scan(&id)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return nil, model.ErrBookExists
			}
			return nil, fmt.Errorf("failed to create book: %w", err)
		}

		if len(b.AuthorIDs) > 0 {
			_, err = tx.Exec(ctx, `
                INSERT INTO book_authors (book_id, author_id, position)
                SELECT $1, a.id, ids.ord
                FROM unnest($2::text[]) WITH ORDINALITY AS ids(identifier, ord)
                JOIN authors a ON a.identifier::text = ids.identifier
                ON CONFLICT DO NOTHING`,
				id, uuidStrings(b.AuthorIDs))
			if err != nil {
				return nil, fmt.Errorf("failed to link book authors: %w", err)
			}
		}

		return findOne(ctx, tx, b.Identifier)
	})
}

func findOne(ctx context.Context, q querier, id uuid.UUID) (*model.Book, error) {
	b, err := scanBook(q.QueryRow(ctx, bookSelect+` WHERE b.identifier = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book: %w", err)
	}
	return b, nil
}

func (r *postgresRepository) FindByIdentifier(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	return findOne(ctx, r.pool, id)
}

func (r *postgresRepository) FindAll(ctx context.Context) ([]model.Book, error) {
	return r.list(ctx, bookSelect+` ORDER BY b.id`)
}

func (r *postgresRepository) FindByISBN(ctx context.Context, isbn string) ([]model.Book, error) {
	return r.list(ctx, bookSelect+` WHERE strpos(lower(b.isbn), lower($1)) > 0 ORDER BY b.id`, isbn)
}

func (r *postgresRepository) FindByTitle(ctx context.Context, title string) ([]model.Book, error) {
	return r.list(ctx, bookSelect+` WHERE strpos(lower(b.title), lower($1)) > 0 ORDER BY b.id`, title)
}

func (r *postgresRepository) Update(ctx context.Context, b *model.Book, expectedVersion int64) (*model.Book, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*model.Book, error) {
		tag, err := tx.Exec(ctx, `
            UPDATE books
            SET title = $2, isbn = $3, description = $4, genre = $5,
                last_modified_by = $6, last_modified_at = $7, version = version + 1
            WHERE identifier = $1 AND version = $8`,
			b.Identifier,
			b.Title,
			b.ISBN,
			b.Description,
			string(b.Genre),
			nullable(b.LastModifiedBy),
			b.LastModifiedAt,
			expectedVersion,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to update book: %w", err)
		}

		if tag.RowsAffected() == 0 {
			var exists bool
			if err := tx.QueryRow(ctx,
				`SELECT EXISTS (SELECT 1 FROM books WHERE identifier = $1)`, b.Identifier,
			).Scan(&exists); err != nil {
				return nil, fmt.Errorf("failed to check book: %w", err)
			}
			if !exists {
				return nil, model.ErrBookNotFound
			}
			return nil, model.ErrVersionConflict
		}

		return findOne(ctx, tx, b.Identifier)
	})
}

// DeleteByIdentifier removes the book; its author links cascade.
func (r *postgresRepository) DeleteByIdentifier(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE identifier = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete book: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *postgresRepository) DetachAuthor(ctx context.Context, authorID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `
        DELETE FROM book_authors
        WHERE author_id IN (SELECT id FROM authors WHERE identifier = $1)`, authorID)
	if err != nil {
		return fmt.Errorf("failed to detach author: %w", err)
	}
	return nil
}

func (r *postgresRepository) list(ctx context.Context, query string, args ...any) ([]model.Book, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	books := make([]model.Book, 0)
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, *b)
	}
	return books, rows.Err()
}
