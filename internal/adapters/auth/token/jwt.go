package token

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"animal-training/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL es la vida útil de un token; no hay refresh ni revocación.
const DefaultTTL = time.Hour

var (
	ErrNoSecret     = errors.New("token signing secret is empty")
	ErrInvalidToken = errors.New("invalid token")
)

type Config struct {
	Secret string
	TTL    time.Duration
}

// Service emite y verifica tokens HS256. Implementa auth.TokenIssuer y auth.AuthVerifier.
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type tokenClaims struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

func NewService(cfg Config) (*Service, error) {
	if strings.TrimSpace(cfg.Secret) == "" {
		return nil, ErrNoSecret
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		secret: []byte(cfg.Secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

func (s *Service) Issue(_ context.Context, c auth.Claims) (string, error) {
	now := s.now()
	claims := tokenClaims{
		ID:    c.UserID,
		Email: c.Email,
		Role:  string(c.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify falla con ErrInvalidToken si la firma no coincide, el token está
// malformado, usa otro algoritmo o ya expiró (sin leeway).
func (s *Service) Verify(_ context.Context, raw string) (auth.Claims, error) {
	var claims tokenClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if strings.TrimSpace(claims.ID) == "" {
		return auth.Claims{}, fmt.Errorf("%w: missing id claim", ErrInvalidToken)
	}

	return auth.Claims{
		UserID: claims.ID,
		Email:  claims.Email,
		Role:   auth.Role(claims.Role),
	}, nil
}
