package jwtinfra

import (
	"testing"
	"time"

	"github.com/email-otp-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T) *Provider {
	t.Helper()
	p, err := NewProvider(&config.Config{JWTSecret: "test-secret", TokenExpiry: 30 * time.Minute})
	require.NoError(t, err)
	return p
}

func TestNewProvider_MissingSecret(t *testing.T) {
	_, err := NewProvider(&config.Config{TokenExpiry: 30 * time.Minute})
	require.Error(t, err)
}

func TestSignVerify_RoundTrip(t *testing.T) {
	p := newTestProvider(t)
	now := time.Now().UTC()

	token, err := p.Sign("u1", "a@b.com", now)
	require.NoError(t, err)

	claims, err := p.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Subject)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.WithinDuration(t, now.Add(30*time.Minute), claims.ExpiresAt.Time, time.Second)
}

func TestVerify_WrongSecret(t *testing.T) {
	p := newTestProvider(t)
	token, err := p.Sign("u1", "a@b.com", time.Now())
	require.NoError(t, err)

	other, err := NewProvider(&config.Config{JWTSecret: "different", TokenExpiry: 30 * time.Minute})
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.Error(t, err)
}

func TestVerify_Expired(t *testing.T) {
	p := newTestProvider(t)
	token, err := p.Sign("u1", "a@b.com", time.Now().Add(-time.Hour))
	require.NoError(t, err)

	_, err = p.Verify(token)
	assert.Error(t, err)
}
