package users

import (
	"context"

	"animal-training/internal/platform/pagination"
)

// Repository devuelve store.ErrNotFound si no existe y store.ErrDuplicateKey si el email ya está tomado.
type Repository interface {
	Create(ctx context.Context, u User) error
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context, page pagination.Page) ([]User, error)
}
