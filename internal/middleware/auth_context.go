package middleware

import (
	"context"
	"net/http"

	"animal-training/internal/platform/logger"
	"animal-training/internal/platform/respond"
	"animal-training/internal/ports/auth"

	"go.uber.org/zap"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// TokenHeader lleva el token firmado tal cual, sin prefijo "Bearer ".
const TokenHeader = "Authorization"

// Rejection corta el pipeline con un status y un mensaje para el cliente.
type Rejection struct {
	Status  int
	Message string
}

// Stage es un paso del pipeline: devuelve el contexto con el que seguir,
// o una Rejection para responder sin llegar al handler.
type Stage func(r *http.Request) (context.Context, *Rejection)

// Pipeline compone stages en orden. El primero que rechaza responde.
func Pipeline(stages ...Stage) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, stage := range stages {
				ctx, rej := stage(r)
				if rej != nil {
					respond.Error(w, rej.Status, rej.Message)
					return
				}
				if ctx != nil {
					r = r.WithContext(ctx)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireToken:
// - sin header => 403 "no token provided"
// - token inválido/expirado => 403 "invalid token"
// - ok => claims en el contexto
func RequireToken(verifier auth.AuthVerifier) Stage {
	return func(r *http.Request) (context.Context, *Rejection) {
		token := r.Header.Get(TokenHeader)
		if token == "" {
			return nil, &Rejection{Status: http.StatusForbidden, Message: "no token provided"}
		}

		claims, err := verifier.Verify(r.Context(), token)
		if err != nil {
			logger.From(r.Context()).Debug("token rejected", zap.Error(err))
			return nil, &Rejection{Status: http.StatusForbidden, Message: "invalid token"}
		}

		return WithClaims(r.Context(), claims), nil
	}
}

// RequireRole exige que las claims ya presentes tengan el rol indicado.
// Debe ir después de RequireToken.
func RequireRole(role auth.Role) Stage {
	return func(r *http.Request) (context.Context, *Rejection) {
		claims, ok := GetClaims(r.Context())
		if !ok {
			return nil, &Rejection{Status: http.StatusForbidden, Message: "no token provided"}
		}
		if !claims.HasRole(role) {
			return nil, &Rejection{Status: http.StatusForbidden, Message: string(role) + " role required"}
		}
		return r.Context(), nil
	}
}

func WithClaims(ctx context.Context, claims auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	v := ctx.Value(claimsKey)
	if v == nil {
		return auth.Claims{}, false
	}
	c, ok := v.(auth.Claims)
	return c, ok
}
