package training

import (
	"context"

	"animal-training/internal/platform/pagination"
)

// Repository.Create puede devolver ErrOwnershipMismatch si el adapter
// re-valida la propiedad del animal en la misma escritura (Postgres lo hace).
type Repository interface {
	Create(ctx context.Context, l Log) error
	GetByID(ctx context.Context, id string) (Log, error)
	List(ctx context.Context, page pagination.Page) ([]Log, error)
}
