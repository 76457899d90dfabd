package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"animal-training/internal/domain/users"
	"animal-training/internal/platform/pagination"
	"animal-training/internal/ports/store"
)

type userRepo struct {
	mu      sync.RWMutex
	records ordered[users.User]
	byEmail map[string]string // email => id
}

func NewUserRepo() users.Repository {
	return &userRepo{
		records: newOrdered[users.User](),
		byEmail: make(map[string]string),
	}
}

func (r *userRepo) Create(ctx context.Context, u users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(u.ID) == "" {
		return errors.New("user id required")
	}
	if r.records.has(u.ID) {
		return store.ErrDuplicateKey
	}
	if _, taken := r.byEmail[u.Email]; taken {
		return store.ErrDuplicateKey
	}

	r.records.insert(u.ID, u)
	r.byEmail[u.Email] = u.ID
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.records.get(id)
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return users.User{}, store.ErrNotFound
	}
	return r.records.get(id)
}

func (r *userRepo) List(ctx context.Context, page pagination.Page) ([]users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.records.page(page), nil
}
