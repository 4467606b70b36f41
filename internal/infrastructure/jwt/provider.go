package jwtinfra

import (
	"errors"
	"time"

	"github.com/email-otp-api/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

// Claims holds the session-token payload. Subject (sub) carries the user id.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Provider signs and verifies HS256 session tokens. Tokens are not stored
// server-side; validity is entirely signature + expiry.
type Provider struct {
	secret []byte
	expiry time.Duration
}

// NewProvider fails when no signing secret is configured. A missing secret is
// a startup-time configuration error, never a runtime one.
func NewProvider(cfg *config.Config) (*Provider, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("SECRET_KEY is not set")
	}
	return &Provider{secret: []byte(cfg.JWTSecret), expiry: cfg.TokenExpiry}, nil
}

// Sign mints a session token bound to the user id and email, expiring at
// now + the configured token lifetime.
func (p *Provider) Sign(userID, email string, now time.Time) (string, error) {
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.expiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(p.secret)
}

func (p *Provider) Verify(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return p.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
