package animals

import (
	"context"
	"errors"
	"strings"
	"time"

	"animal-training/internal/platform/pagination"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnknownOwner = errors.New("invalid owner id")
)

// UserLookup evita importar el paquete users.
type UserLookup interface {
	UserExists(ctx context.Context, id string) (bool, error)
}

type Service struct {
	repo  Repository
	users UserLookup
	now   func() time.Time
}

func NewService(repo Repository, users UserLookup) *Service {
	return &Service{
		repo:  repo,
		users: users,
		now:   time.Now,
	}
}

type CreateInput struct {
	Name    string
	Species string
	OwnerID string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Animal, error) {
	name := strings.TrimSpace(in.Name)
	species := strings.TrimSpace(in.Species)
	ownerID := strings.TrimSpace(in.OwnerID)
	if name == "" || species == "" || ownerID == "" {
		return Animal{}, ErrInvalidInput
	}

	ok, err := s.users.UserExists(ctx, ownerID)
	if err != nil {
		return Animal{}, err
	}
	if !ok {
		return Animal{}, ErrUnknownOwner
	}

	a := Animal{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Name:      name,
		Species:   species,
		CreatedAt: s.now(),
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Animal{}, err
	}
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Animal, error) {
	return s.repo.GetByID(ctx, strings.TrimSpace(id))
}

func (s *Service) List(ctx context.Context, page pagination.Page) ([]Animal, error) {
	return s.repo.List(ctx, page)
}
