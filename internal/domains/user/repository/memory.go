package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"bookshelf-api/internal/domains/user/model"
)

type memoryRepository struct {
	mu           sync.RWMutex
	nextID       int64
	users        map[int64]model.User
	byIdentifier map[uuid.UUID]int64
	byUsername   map[string]int64
}

// NewMemoryRepository returns a process-local user store.
func NewMemoryRepository() RepositoryInterface {
	return &memoryRepository{
		users:        make(map[int64]model.User),
		byIdentifier: make(map[uuid.UUID]int64),
		byUsername:   make(map[string]int64),
	}
}

func (r *memoryRepository) Create(_ context.Context, u *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byIdentifier[u.Identifier]; ok {
		return nil, model.ErrUserExists
	}
	if _, ok := r.byUsername[u.Username]; ok {
		return nil, model.ErrUsernameTaken
	}

	r.nextID++
	stored := *u
	stored.ID = r.nextID

	r.users[stored.ID] = stored
	r.byIdentifier[stored.Identifier] = stored.ID
	r.byUsername[stored.Username] = stored.ID

	return &stored, nil
}

func (r *memoryRepository) FindByIdentifier(_ context.Context, id uuid.UUID) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	key, ok := r.byIdentifier[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	u := r.users[key]
	return &u, nil
}

func (r *memoryRepository) FindByUsername(_ context.Context, username string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	key, ok := r.byUsername[username]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	u := r.users[key]
	return &u, nil
}

func (r *memoryRepository) FindAll(_ context.Context) ([]model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memoryRepository) DeleteByIdentifier(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key, ok := r.byIdentifier[id]
	if !ok {
		return false, nil
	}
	u := r.users[key]

	delete(r.users, key)
	delete(r.byIdentifier, id)
	delete(r.byUsername, u.Username)
	return true, nil
}
