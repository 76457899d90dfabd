package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"animal-training/internal/ports/auth"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type stubVerifier struct {
	claims auth.Claims
	err    error
	got    string
}

func (s *stubVerifier) Verify(_ context.Context, token string) (auth.Claims, error) {
	s.got = token
	return s.claims, s.err
}

func claimsEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, ok := GetClaims(r.Context())
		if !ok {
			w.WriteHeader(http.StatusTeapot)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"id": c.UserID, "role": string(c.Role)})
	})
}

func serve(h http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/animal", nil)
	if token != "" {
		req.Header.Set(TokenHeader, token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func errorOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestRequireToken_NoToken(t *testing.T) {
	v := &stubVerifier{}
	rec := serve(Pipeline(RequireToken(v))(claimsEcho()), "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "no token provided", errorOf(t, rec))
}

func TestRequireToken_Invalid(t *testing.T) {
	v := &stubVerifier{err: errors.New("bad signature")}
	rec := serve(Pipeline(RequireToken(v))(claimsEcho()), "garbage")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "invalid token", errorOf(t, rec))
}

func TestRequireToken_PassesRawHeader(t *testing.T) {
	v := &stubVerifier{claims: auth.Claims{UserID: "u-1", Role: auth.RoleUser}}
	rec := serve(Pipeline(RequireToken(v))(claimsEcho()), "Bearer abc")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer abc", v.got, "header must reach the verifier untouched")
	assert.Contains(t, rec.Body.String(), `"id":"u-1"`)
}

func TestRequireRole(t *testing.T) {
	user := &stubVerifier{claims: auth.Claims{UserID: "u-1", Role: auth.RoleUser}}
	admin := &stubVerifier{claims: auth.Claims{UserID: "u-2", Role: auth.RoleAdmin}}

	rec := serve(Pipeline(RequireToken(user), RequireRole(auth.RoleAdmin))(claimsEcho()), "t")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "admin role required", errorOf(t, rec))

	rec = serve(Pipeline(RequireToken(admin), RequireRole(auth.RoleAdmin))(claimsEcho()), "t")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRole_WithoutClaims(t *testing.T) {
	rec := serve(Pipeline(RequireRole(auth.RoleAdmin))(claimsEcho()), "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRecover_RespondsJSON500(t *testing.T) {
	h := Recover(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := serve(h, "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal error", errorOf(t, rec))
}

func TestRequestLogger_InjectsRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	h := chimw.RequestID(RequestLogger(zap.New(core))(inner))

	rec := serve(h, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	entries := logs.FilterMessage("request completed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.NotEmpty(t, fields["request_id"])
	assert.Equal(t, int64(http.StatusCreated), fields["status"])
}
