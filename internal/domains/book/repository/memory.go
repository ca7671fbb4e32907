package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"bookshelf-api/internal/domains/book/model"
)

type memoryRepository struct {
	mu           sync.RWMutex
	nextID       int64
	books        map[int64]model.Book
	byIdentifier map[uuid.UUID]int64
}

// NewMemoryRepository returns a process-local book store.
func NewMemoryRepository() RepositoryInterface {
	return &memoryRepository{
		books:        make(map[int64]model.Book),
		byIdentifier: make(map[uuid.UUID]int64),
	}
}

// clone copies b including its author slice so callers never share
// state with the store.
func clone(b model.Book) model.Book {
	b.AuthorIDs = append([]uuid.UUID{}, b.AuthorIDs...)
	return b
}

func (r *memoryRepository) Create(_ context.Context, b *model.Book) (*model.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byIdentifier[b.Identifier]; ok {
		return nil, model.ErrBookExists
	}

	r.nextID++
	stored := clone(*b)
	stored.ID = r.nextID

	r.books[stored.ID] = stored
	r.byIdentifier[stored.Identifier] = stored.ID

	out := clone(stored)
	return &out, nil
}

func (r *memoryRepository) FindByIdentifier(_ context.Context, id uuid.UUID) (*model.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	key, ok := r.byIdentifier[id]
	if !ok {
		return nil, model.ErrBookNotFound
	}
	b := clone(r.books[key])
	return &b, nil
}

func (r *memoryRepository) FindAll(_ context.Context) ([]model.Book, error) {
	return r.filter(func(model.Book) bool { return true }), nil
}

func (r *memoryRepository) FindByISBN(_ context.Context, isbn string) ([]model.Book, error) {
	needle := strings.ToLower(isbn)
	return r.filter(func(b model.Book) bool {
		return strings.Contains(strings.ToLower(b.ISBN), needle)
	}), nil
}

func (r *memoryRepository) FindByTitle(_ context.Context, title string) ([]model.Book, error) {
	needle := strings.ToLower(title)
	return r.filter(func(b model.Book) bool {
		return strings.Contains(strings.ToLower(b.Title), needle)
	}), nil
}

func (r *memoryRepository) Update(_ context.Context, b *model.Book, expectedVersion int64) (*model.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key, ok := r.byIdentifier[b.Identifier]
	if !ok {
		return nil, model.ErrBookNotFound
	}
	stored := r.books[key]
	if stored.Version != expectedVersion {
		return nil, model.ErrVersionConflict
	}

	stored.Title = b.Title
	stored.ISBN = b.ISBN
	stored.Description = b.Description
	stored.Genre = b.Genre
	stored.LastModifiedBy = b.LastModifiedBy
	stored.LastModifiedAt = b.LastModifiedAt
	stored.Version = expectedVersion + 1
	r.books[key] = stored

	out := clone(stored)
	return &out, nil
}

func (r *memoryRepository) DeleteByIdentifier(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key, ok := r.byIdentifier[id]
	if !ok {
		return false, nil
	}
	delete(r.books, key)
	delete(r.byIdentifier, id)
	return true, nil
}

func (r *memoryRepository) DetachAuthor(_ context.Context, authorID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, b := range r.books {
		kept := b.AuthorIDs[:0]
		for _, id := range b.AuthorIDs {
			if id != authorID {
				kept = append(kept, id)
			}
		}
		b.AuthorIDs = kept
		r.books[key] = b
	}
	return nil
}

func (r *memoryRepository) filter(keep func(model.Book) bool) []model.Book {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Book, 0)
	for _, b := range r.books {
		if keep(b) {
			out = append(out, clone(b))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
