package animals

import "context"

// OwnerOf expone el ownerID de un animal.
// Se usa desde training para evitar importar este paquete.
func (s *Service) OwnerOf(ctx context.Context, animalID string) (string, error) {
	a, err := s.GetByID(ctx, animalID)
	if err != nil {
		return "", err
	}
	return a.OwnerID, nil
}
