package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"bookshelf-api/internal/domains/author/model"
	"bookshelf-api/pkg/cache"
)

const cacheKeyPrefix = "author:"

type cachedRepository struct {
	RepositoryInterface
	cache cache.Cache
	ttl   time.Duration
}

// NewCachedRepository puts a read-through cache in front of next for
// single-author lookups. Cache failures are logged and fall back to next.
func NewCachedRepository(next RepositoryInterface, c cache.Cache, ttl time.Duration) RepositoryInterface {
	return &cachedRepository{RepositoryInterface: next, cache: c, ttl: ttl}
}

func cacheKey(id uuid.UUID) string {
	return cacheKeyPrefix + id.String()
}

func (r *cachedRepository) FindByIdentifier(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	var a model.Author
	found, err := r.cache.Get(ctx, cacheKey(id), &a)
	if err != nil {
		log.Warn().Err(err).Str("author_id", id.String()).Msg("Author cache read failed")
	}
	if found {
		return &a, nil
	}

	loaded, err := r.RepositoryInterface.FindByIdentifier(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.cache.Set(ctx, cacheKey(id), loaded, r.ttl); err != nil {
		log.Warn().Err(err).Str("author_id", id.String()).Msg("Author cache write failed")
	}
	return loaded, nil
}

func (r *cachedRepository) DeleteByIdentifier(ctx context.Context, id uuid.UUID) (bool, error) {
	removed, err := r.RepositoryInterface.DeleteByIdentifier(ctx, id)
	if err != nil {
		return false, err
	}
	if err := r.cache.Delete(ctx, cacheKey(id)); err != nil {
		log.Warn().Err(err).Str("author_id", id.String()).Msg("Author cache invalidation failed")
	}
	return removed, nil
}
