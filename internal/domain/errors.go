package domain

import "errors"

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to HTTP status codes without leaking infrastructure details.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrBadRequest   = errors.New("bad request")

	// ErrInvalidCode covers both a wrong code and an email no code was ever
	// requested for. The two cases are intentionally indistinguishable so the
	// verify endpoint cannot be used to enumerate known emails.
	ErrInvalidCode = errors.New("invalid verification code")

	// ErrCodeExpired means the (email, code) pair matched a stored record but
	// its TTL has elapsed. Distinct from ErrInvalidCode so clients prompt for
	// a fresh code instead of retrying the same one.
	ErrCodeExpired = errors.New("verification code expired")

	// ErrNotificationFailed means the external email channel rejected the send.
	ErrNotificationFailed = errors.New("failed to send verification email")
)
