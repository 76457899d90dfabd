package animals

import (
	"context"

	"animal-training/internal/platform/pagination"
)

type Repository interface {
	Create(ctx context.Context, a Animal) error
	GetByID(ctx context.Context, id string) (Animal, error)
	List(ctx context.Context, page pagination.Page) ([]Animal, error)
}
