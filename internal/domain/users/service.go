package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"animal-training/internal/platform/pagination"
	"animal-training/internal/ports/auth"
	"animal-training/internal/ports/store"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPasswordTooLong    = errors.New("password is too long")
)

var tracer = otel.Tracer("animal-training/users")

type Service struct {
	repo   Repository
	hasher auth.PasswordHasher
	tokens auth.TokenIssuer
	admins map[string]struct{}
	now    func() time.Time
}

type Options struct {
	// AdminEmails reciben RoleAdmin al registrarse.
	AdminEmails []string
}

func NewService(repo Repository, hasher auth.PasswordHasher, tokens auth.TokenIssuer, opts Options) *Service {
	admins := make(map[string]struct{}, len(opts.AdminEmails))
	for _, e := range opts.AdminEmails {
		if e = strings.TrimSpace(e); e != "" {
			admins[e] = struct{}{}
		}
	}
	return &Service{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		admins: admins,
		now:    time.Now,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (User, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" || in.Password == "" {
		return User{}, ErrInvalidInput
	}

	digest, err := s.hasher.Hash(in.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrPasswordTooLong):
			return User{}, ErrPasswordTooLong
		case errors.Is(err, auth.ErrEmptyPassword):
			return User{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return User{}, err
	}

	role := auth.RoleUser
	if _, ok := s.admins[email]; ok {
		role = auth.RoleAdmin
	}

	u := User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: digest,
		Role:         role,
		CreatedAt:    s.now(),
	}

	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			return User{}, ErrEmailTaken
		}
		return User{}, err
	}
	return u, nil
}

// Login no distingue "no existe" de "password incorrecto": ambos son
// ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	ctx, span := tracer.Start(ctx, "users.Login")
	defer span.End()

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "lookup failed")
		return "", err
	}

	ok, err := s.hasher.Verify(password, u.PasswordHash)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "verify failed")
		return "", err
	}
	if !ok {
		return "", ErrInvalidCredentials
	}

	span.SetAttributes(attribute.String("user.id", u.ID))
	return s.tokens.Issue(ctx, auth.Claims{
		UserID: u.ID,
		Email:  u.Email,
		Role:   u.Role,
	})
}

func (s *Service) List(ctx context.Context, page pagination.Page) ([]User, error) {
	return s.repo.List(ctx, page)
}
