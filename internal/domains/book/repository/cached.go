package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"bookshelf-api/internal/domains/book/model"
	"bookshelf-api/pkg/cache"
)

const cacheKeyPrefix = "book:"

type cachedRepository struct {
	RepositoryInterface
	cache cache.Cache
	ttl   time.Duration
}

// NewCachedRepository caches single-book lookups in front of next. A
// successful Update overwrites the entry while a lookup only fills an empty
// one, so a slow read cannot replace a newer version. DetachAuthor is
// passed through: cached books keep a removed author's identifier until
// they expire, and it no longer resolves.
func NewCachedRepository(next RepositoryInterface, c cache.Cache, ttl time.Duration) RepositoryInterface {
	return &cachedRepository{RepositoryInterface: next, cache: c, ttl: ttl}
}

func cacheKey(id uuid.UUID) string {
	return cacheKeyPrefix + id.String()
}

func (r *cachedRepository) FindByIdentifier(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	var b model.Book
	found, err := r.cache.Get(ctx, cacheKey(id), &b)
	if err != nil {
		log.Warn().Err(err).Str("book_id", id.String()).Msg("Book cache read failed")
	}
	if found {
		return &b, nil
	}

	loaded, err := r.RepositoryInterface.FindByIdentifier(ctx, id)
	if err != nil {
		return nil, err
	}
	r.fill(ctx, loaded)
	return loaded, nil
}

func (r *cachedRepository) Update(ctx context.Context, b *model.Book, expectedVersion int64) (*model.Book, error) {
	updated, err := r.RepositoryInterface.Update(ctx, b, expectedVersion)
	if err != nil {
		// a conflict means the cached copy may be stale
		r.evict(ctx, b.Identifier)
		return nil, err
	}
	r.store(ctx, updated)
	return updated, nil
}

func (r *cachedRepository) DeleteByIdentifier(ctx context.Context, id uuid.UUID) (bool, error) {
	removed, err := r.RepositoryInterface.DeleteByIdentifier(ctx, id)
	if err != nil {
		return false, err
	}
	r.evict(ctx, id)
	return removed, nil
}

func (r *cachedRepository) store(ctx context.Context, b *model.Book) {
	if err := r.cache.Set(ctx, cacheKey(b.Identifier), b, r.ttl); err != nil {
		log.Warn().Err(err).Str("book_id", b.Identifier.String()).Msg("Book cache write failed")
	}
}

func (r *cachedRepository) fill(ctx context.Context, b *model.Book) {
	if _, err := r.cache.SetIfAbsent(ctx, cacheKey(b.Identifier), b, r.ttl); err != nil {
		log.Warn().Err(err).Str("book_id", b.Identifier.String()).Msg("Book cache write failed")
	}
}

func (r *cachedRepository) evict(ctx context.Context, id uuid.UUID) {
	if err := r.cache.Delete(ctx, cacheKey(id)); err != nil {
		log.Warn().Err(err).Str("book_id", id.String()).Msg("Book cache invalidation failed")
	}
}
