package users

import (
	"context"
	"errors"

	"animal-training/internal/ports/store"
)

// UserExists lo usan animals y training sin importar el paquete users
// directamente (ver sus interfaces UserLookup).
func (s *Service) UserExists(ctx context.Context, id string) (bool, error) {
	_, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
