package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"animal-training/internal/domain/training"
	"animal-training/internal/platform/pagination"
	"animal-training/internal/ports/store"
)

// trainingRepo no re-valida propiedad: en memoria el dueño de un animal es
// inmutable y el service ya lo comparó con registros recién leídos.
type trainingRepo struct {
	mu      sync.RWMutex
	records ordered[training.Log]
}

func NewTrainingRepo() training.Repository {
	return &trainingRepo{
		records: newOrdered[training.Log](),
	}
}

func (r *trainingRepo) Create(ctx context.Context, l training.Log) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(l.ID) == "" {
		return errors.New("training log id required")
	}
	if r.records.has(l.ID) {
		return store.ErrDuplicateKey
	}
	r.records.insert(l.ID, l)
	return nil
}

func (r *trainingRepo) GetByID(ctx context.Context, id string) (training.Log, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.records.get(id)
}

func (r *trainingRepo) List(ctx context.Context, page pagination.Page) ([]training.Log, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.records.page(page), nil
}
