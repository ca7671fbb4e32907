package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authormodel "bookshelf-api/internal/domains/author/model"
	authorrepo "bookshelf-api/internal/domains/author/repository"
	"bookshelf-api/internal/domains/book/model"
	"bookshelf-api/internal/infrastructure/database/dbtest"
)

type authorMaker func(t *testing.T, lastname string) uuid.UUID

func newBook(title, isbn string, authors ...uuid.UUID) *model.Book {
	now := time.Now().UTC().Truncate(time.Microsecond)
	actor := uuid.New()
	return &model.Book{
		Identifier:     uuid.New(),
		Title:          title,
		ISBN:           isbn,
		Description:    "Roman",
		Genre:          model.GenreHorror,
		AuthorIDs:      authors,
		CreatedBy:      actor,
		CreatedAt:      now,
		LastModifiedBy: actor,
		LastModifiedAt: now,
	}
}

func runRepositoryContract(t *testing.T, repo RepositoryInterface, makeAuthor authorMaker) {
	ctx := context.Background()
	king := makeAuthor(t, "King")
	straub := makeAuthor(t, "Straub")

	es, err := repo.Create(ctx, newBook("ES", "978-3-4534-3577-3", king))
	require.NoError(t, err)
	assert.NotZero(t, es.ID)
	assert.Equal(t, int64(0), es.Version)
	assert.Equal(t, []uuid.UUID{king}, es.AuthorIDs)

	// listed out of creation order: authors keep the order they were given in
	talisman, err := repo.Create(ctx, newBook("Der Talisman", "978-3-4531-6019-4", straub, king))
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{straub, king}, talisman.AuthorIDs)

	dup := newBook("Copy", "978-3-4534-3577-3")
	dup.Identifier = es.Identifier
	_, err = repo.Create(ctx, dup)
	assert.ErrorIs(t, err, model.ErrBookExists)

	got, err := repo.FindByIdentifier(ctx, es.Identifier)
	require.NoError(t, err)
	assert.Equal(t, "ES", got.Title)
	assert.Equal(t, es.CreatedBy, got.CreatedBy)
	assert.True(t, es.CreatedAt.Equal(got.CreatedAt))

	_, err = repo.FindByIdentifier(ctx, uuid.New())
	assert.ErrorIs(t, err, model.ErrBookNotFound)

	byISBN, err := repo.FindByISBN(ctx, "3577")
	require.NoError(t, err)
	require.Len(t, byISBN, 1)
	assert.Equal(t, es.Identifier, byISBN[0].Identifier)

	byTitle, err := repo.FindByTitle(ctx, "tALIs")
	require.NoError(t, err)
	require.Len(t, byTitle, 1)
	assert.Equal(t, talisman.Identifier, byTitle[0].Identifier)

	none, err := repo.FindByISBN(ctx, "000-0")
	require.NoError(t, err)
	assert.Empty(t, none)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, es.Identifier, all[0].Identifier)

	// compare-and-swap update
	change := *es
	change.Title = "It"
	change.LastModifiedAt = es.LastModifiedAt.Add(time.Minute)
	updated, err := repo.Update(ctx, &change, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated.Version)
	assert.Equal(t, "It", updated.Title)
	assert.Equal(t, []uuid.UUID{king}, updated.AuthorIDs)

	change.Title = "Lost update"
	_, err = repo.Update(ctx, &change, 0)
	assert.ErrorIs(t, err, model.ErrVersionConflict)
	got, err = repo.FindByIdentifier(ctx, es.Identifier)
	require.NoError(t, err)
	assert.Equal(t, "It", got.Title)

	missing := newBook("Nope", "978-3-4534-3577-3")
	_, err = repo.Update(ctx, missing, 0)
	assert.ErrorIs(t, err, model.ErrBookNotFound)

	require.NoError(t, repo.DetachAuthor(ctx, king))
	got, err = repo.FindByIdentifier(ctx, talisman.Identifier)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{straub}, got.AuthorIDs)

	removed, err := repo.DeleteByIdentifier(ctx, es.Identifier)
	require.NoError(t, err)
	assert.True(t, removed)
	removed, err = repo.DeleteByIdentifier(ctx, es.Identifier)
	require.NoError(t, err)
	assert.False(t, removed)
}

func anyAuthor(*testing.T, string) uuid.UUID { return uuid.New() }

func TestMemoryRepository(t *testing.T) {
	runRepositoryContract(t, NewMemoryRepository(), anyAuthor)
}

func TestPostgresRepository(t *testing.T) {
	pool := dbtest.Pool(t)
	authors := authorrepo.NewPostgresRepository(pool)

	runRepositoryContract(t, NewPostgresRepository(pool), func(t *testing.T, lastname string) uuid.UUID {
		a, err := authors.Create(context.Background(), &authormodel.Author{
			Identifier: uuid.New(),
			Gender:     authormodel.GenderMale,
			Firstname:  "Test",
			Lastname:   lastname,
		})
		require.NoError(t, err)
		return a.Identifier
	})
}

func TestCachedRepositoryContract(t *testing.T) {
	runRepositoryContract(t, NewCachedRepository(NewMemoryRepository(), newMapCache(), time.Minute), anyAuthor)
}

func TestMemoryRepositoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	author := uuid.New()

	b, err := repo.Create(ctx, newBook("ES", "978-3-4534-3577-3", author))
	require.NoError(t, err)
	b.AuthorIDs[0] = uuid.Nil
	b.Title = "changed"

	got, err := repo.FindByIdentifier(ctx, b.Identifier)
	require.NoError(t, err)
	assert.Equal(t, "ES", got.Title)
	assert.Equal(t, []uuid.UUID{author}, got.AuthorIDs)
}

type mapCache struct {
	data map[string][]byte
}

func newMapCache() *mapCache { return &mapCache{data: map[string][]byte{}} }

func (c *mapCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dest)
}

func (c *mapCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = b
	return nil
}

func (c *mapCache) SetIfAbsent(ctx context.Context, key string, value interface{}, ttl time.Duration) (bool, error) {
	if _, ok := c.data[key]; ok {
		return false, nil
	}
	return true, c.Set(ctx, key, value, ttl)
}

func (c *mapCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

func (c *mapCache) Ping(context.Context) error { return nil }

func TestCachedRepositoryKeepsCacheCurrent(t *testing.T) {
	ctx := context.Background()
	c := newMapCache()
	repo := NewCachedRepository(NewMemoryRepository(), c, time.Minute)

	b, err := repo.Create(ctx, newBook("ES", "978-3-4534-3577-3"))
	require.NoError(t, err)
	_, err = repo.FindByIdentifier(ctx, b.Identifier)
	require.NoError(t, err)
	key := "book:" + b.Identifier.String()
	require.Contains(t, c.data, key)

	change := *b
	change.Title = "It"
	_, err = repo.Update(ctx, &change, 0)
	require.NoError(t, err)

	var cached model.Book
	require.NoError(t, json.Unmarshal(c.data[key], &cached))
	assert.Equal(t, "It", cached.Title)
	assert.Equal(t, int64(1), cached.Version)

	_, err = repo.Update(ctx, &change, 0)
	assert.ErrorIs(t, err, model.ErrVersionConflict)
	assert.NotContains(t, c.data, key)

	_, err = repo.FindByIdentifier(ctx, b.Identifier)
	require.NoError(t, err)
	_, err = repo.DeleteByIdentifier(ctx, b.Identifier)
	require.NoError(t, err)
	assert.NotContains(t, c.data, key)
}

// slowReader returns what it loaded before running interleave, as a read
// overtaken by a concurrent write would.
type slowReader struct {
	RepositoryInterface
	interleave func()
}

func (r *slowReader) FindByIdentifier(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	b, err := r.RepositoryInterface.FindByIdentifier(ctx, id)
	if r.interleave != nil {
		run := r.interleave
		r.interleave = nil
		run()
	}
	return b, err
}

func TestCachedRepositoryReadDoesNotOverwriteNewerWrite(t *testing.T) {
	ctx := context.Background()
	c := newMapCache()
	backing := &slowReader{RepositoryInterface: NewMemoryRepository()}
	repo := NewCachedRepository(backing, c, time.Minute)

	b, err := repo.Create(ctx, newBook("ES", "978-3-4534-3577-3"))
	require.NoError(t, err)

	backing.interleave = func() {
		change := *b
		change.Title = "It"
		_, err := repo.Update(ctx, &change, 0)
		require.NoError(t, err)
	}
	stale, err := repo.FindByIdentifier(ctx, b.Identifier)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stale.Version)

	got, err := repo.FindByIdentifier(ctx, b.Identifier)
	require.NoError(t, err)
	assert.Equal(t, "It", got.Title)
	assert.Equal(t, int64(1), got.Version)
}
