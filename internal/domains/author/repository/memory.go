package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"bookshelf-api/internal/domains/author/model"
)

type memoryRepository struct {
	mu           sync.RWMutex
	nextID       int64
	authors      map[int64]model.Author
	byIdentifier map[uuid.UUID]int64
}

// NewMemoryRepository returns a process-local author store.
func NewMemoryRepository() RepositoryInterface {
	return &memoryRepository{
		authors:      make(map[int64]model.Author),
		byIdentifier: make(map[uuid.UUID]int64),
	}
}

func (r *memoryRepository) Create(_ context.Context, a *model.Author) (*model.Author, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byIdentifier[a.Identifier]; ok {
		return nil, model.ErrAuthorExists
	}

	r.nextID++
	stored := *a
	stored.ID = r.nextID

	r.authors[stored.ID] = stored
	r.byIdentifier[stored.Identifier] = stored.ID
	return &stored, nil
}

func (r *memoryRepository) FindByIdentifier(_ context.Context, id uuid.UUID) (*model.Author, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	key, ok := r.byIdentifier[id]
	if !ok {
		return nil, model.ErrAuthorNotFound
	}
	a := r.authors[key]
	return &a, nil
}

func (r *memoryRepository) FindByIdentifiers(_ context.Context, ids []uuid.UUID) ([]model.Author, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Author, 0, len(ids))
	for _, id := range ids {
		if key, ok := r.byIdentifier[id]; ok {
			out = append(out, r.authors[key])
		}
	}
	return out, nil
}

func (r *memoryRepository) FindByLastname(_ context.Context, lastname string) ([]model.Author, error) {
	return r.filter(func(a model.Author) bool { return a.Lastname == lastname }), nil
}

func (r *memoryRepository) FindAll(_ context.Context) ([]model.Author, error) {
	return r.filter(func(model.Author) bool { return true }), nil
}

func (r *memoryRepository) DeleteByIdentifier(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key, ok := r.byIdentifier[id]
	if !ok {
		return false, nil
	}
	delete(r.authors, key)
	delete(r.byIdentifier, id)
	return true, nil
}

func (r *memoryRepository) filter(keep func(model.Author) bool) []model.Author {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Author, 0)
	for _, a := range r.authors {
		if keep(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
