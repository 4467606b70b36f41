package http

import (
	"github.com/email-otp-api/internal/application/verification"
	"github.com/email-otp-api/internal/infrastructure/dynamo"
	jwtinfra "github.com/email-otp-api/internal/infrastructure/jwt"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	UserRepo    *dynamo.UserRepo
	CodeRepo    *dynamo.CodeRepo
	StatusRepo  *dynamo.StatusRepo
	Notifier    verification.Notifier
	JWTProvider *jwtinfra.Provider
}
