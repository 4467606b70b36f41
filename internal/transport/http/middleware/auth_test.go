package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/email-otp-api/internal/config"
	jwtinfra "github.com/email-otp-api/internal/infrastructure/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProvider(t *testing.T) *jwtinfra.Provider {
	t.Helper()
	p, err := jwtinfra.NewProvider(&config.Config{JWTSecret: "test-secret", TokenExpiry: 30 * time.Minute})
	require.NoError(t, err)
	return p
}

func protectedEcho(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		require.True(t, ok)
		w.Write([]byte(claims.Subject))
	})
}

func TestAuth_NoHeader(t *testing.T) {
	h := Auth(testProvider(t))(protectedEcho(t))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_MalformedToken(t *testing.T) {
	h := Auth(testProvider(t))(protectedEcho(t))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_ValidToken_InjectsClaims(t *testing.T) {
	p := testProvider(t)
	token, err := p.Sign("u1", "a@b.com", time.Now())
	require.NoError(t, err)

	h := Auth(p)(protectedEcho(t))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", rec.Body.String())
}
