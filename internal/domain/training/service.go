package training

import (
	"context"
	"errors"
	"strings"
	"time"

	"animal-training/internal/platform/pagination"
	"animal-training/internal/ports/store"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidReference  = errors.New("invalid user or animal id")
	ErrOwnershipMismatch = errors.New("animal does not belong to the specified user")
)

var tracer = otel.Tracer("animal-training/training")

// UserLookup y AnimalLookup evitan importar users/animals (rompe ciclos).
type UserLookup interface {
	UserExists(ctx context.Context, id string) (bool, error)
}

type AnimalLookup interface {
	OwnerOf(ctx context.Context, animalID string) (string, error)
}

type Service struct {
	repo    Repository
	users   UserLookup
	animals AnimalLookup
	now     func() time.Time
}

func NewService(repo Repository, users UserLookup, animals AnimalLookup) *Service {
	return &Service{
		repo:    repo,
		users:   users,
		animals: animals,
		now:     time.Now,
	}
}

type CreateInput struct {
	UserID      string
	AnimalID    string
	Description string
	Date        *time.Time // nil => ahora
}

// Create lee usuario y animal frescos del store, compara dueño y recién ahí escribe.
// Faltante => ErrInvalidReference (nunca ErrOwnershipMismatch).
func (s *Service) Create(ctx context.Context, in CreateInput) (Log, error) {
	ctx, span := tracer.Start(ctx, "training.Create")
	defer span.End()

	userID := strings.TrimSpace(in.UserID)
	animalID := strings.TrimSpace(in.AnimalID)
	description := strings.TrimSpace(in.Description)
	span.SetAttributes(
		attribute.String("training.user_id", userID),
		attribute.String("training.animal_id", animalID),
	)

	if description == "" {
		return Log{}, ErrInvalidInput
	}
	if userID == "" || animalID == "" {
		return Log{}, ErrInvalidReference
	}

	exists, err := s.users.UserExists(ctx, userID)
	if err != nil {
		return Log{}, recordErr(span, err)
	}

	ownerID, err := s.animals.OwnerOf(ctx, animalID)
	animalFound := true
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			return Log{}, recordErr(span, err)
		}
		animalFound = false
	}

	if !exists || !animalFound {
		return Log{}, ErrInvalidReference
	}
	if ownerID != userID {
		return Log{}, ErrOwnershipMismatch
	}

	now := s.now()
	date := now
	if in.Date != nil && !in.Date.IsZero() {
		date = *in.Date
	}

	l := Log{
		ID:          uuid.NewString(),
		UserID:      userID,
		AnimalID:    animalID,
		Description: description,
		Date:        date,
		CreatedAt:   now,
	}

	if err := s.repo.Create(ctx, l); err != nil {
		if errors.Is(err, ErrOwnershipMismatch) {
			return Log{}, ErrOwnershipMismatch
		}
		return Log{}, recordErr(span, err)
	}
	return l, nil
}

func (s *Service) List(ctx context.Context, page pagination.Page) ([]Log, error) {
	return s.repo.List(ctx, page)
}

func recordErr(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
