package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"animal-training/internal/domain/animals"
	"animal-training/internal/platform/pagination"
	"animal-training/internal/ports/store"
)

type animalRepo struct {
	mu      sync.RWMutex
	records ordered[animals.Animal]
}

func NewAnimalRepo() animals.Repository {
	return &animalRepo{
		records: newOrdered[animals.Animal](),
	}
}

func (r *animalRepo) Create(ctx context.Context, a animals.Animal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("animal id required")
	}
	if r.records.has(a.ID) {
		return store.ErrDuplicateKey
	}
	r.records.insert(a.ID, a)
	return nil
}

func (r *animalRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.records.get(id)
}

func (r *animalRepo) List(ctx context.Context, page pagination.Page) ([]animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.records.page(page), nil
}
