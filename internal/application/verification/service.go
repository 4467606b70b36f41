package verification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/email-otp-api/internal/domain"
	"github.com/email-otp-api/internal/pkg/clock"
	"github.com/email-otp-api/internal/pkg/id"
	"github.com/email-otp-api/internal/pkg/otp"
)

// Service implements the verification-code lifecycle: issuing codes and
// exchanging them for session tokens. It holds no state between calls —
// every operation reads from the store, so instances scale horizontally.
type Service interface {
	// RequestCode issues a fresh code for the email and delivers it through
	// the notifier. The code itself is never returned to the caller.
	RequestCode(ctx context.Context, email string) error

	// RedeemCode exchanges a valid (email, code) pair for a signed session
	// token, creating the user on first redemption.
	RedeemCode(ctx context.Context, email, code string) (string, error)
}

// Notifier delivers a code to an email address via an external channel.
type Notifier interface {
	Send(ctx context.Context, toEmail, code string) error
}

type codeStore interface {
	Upsert(ctx context.Context, email, code string, expiresAt int64, newID string) error
	GetByEmailAndCode(ctx context.Context, email, code string) (*domain.VerificationCode, error)
	DeleteMatching(ctx context.Context, email, code string) error
}

type userStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Put(ctx context.Context, u *domain.User) error
}

type tokenSigner interface {
	Sign(userID, email string, now time.Time) (string, error)
}

type service struct {
	codes    codeStore
	users    userStore
	notifier Notifier
	signer   tokenSigner
	gen      otp.Generator
	clk      clock.Clock
	codeTTL  time.Duration
}

// Deps bundles the service's collaborators. Clock and Generator default to
// the production implementations when left nil.
type Deps struct {
	Codes    codeStore
	Users    userStore
	Notifier Notifier
	Signer   tokenSigner
	Gen      otp.Generator
	Clock    clock.Clock
	CodeTTL  time.Duration
}

func NewService(d Deps) Service {
	if d.Gen == nil {
		d.Gen = otp.NewGenerator()
	}
	if d.Clock == nil {
		d.Clock = clock.System{}
	}
	return &service{
		codes:    d.Codes,
		users:    d.Users,
		notifier: d.Notifier,
		signer:   d.Signer,
		gen:      d.Gen,
		clk:      d.Clock,
		codeTTL:  d.CodeTTL,
	}
}

func (s *service) RequestCode(ctx context.Context, email string) error {
	email = normalizeEmail(email)

	code, err := s.gen.Generate()
	if err != nil {
		return err
	}
	expiresAt := s.clk.Now().Add(s.codeTTL).Unix()

	// One atomic write per email: an existing record keeps its id but gets
	// the new code and expiry, invalidating any previously issued code.
	if err := s.codes.Upsert(ctx, email, code, expiresAt, id.New()); err != nil {
		return err
	}

	// The stored code is deliberately not rolled back on delivery failure:
	// a retry re-requests, which overwrites and resends.
	if err := s.notifier.Send(ctx, email, code); err != nil {
		slog.Warn("verification email delivery failed", "email", email, "err", err)
		return fmt.Errorf("%w: %v", domain.ErrNotificationFailed, err)
	}
	return nil
}

func (s *service) RedeemCode(ctx context.Context, email, code string) (string, error) {
	email = normalizeEmail(email)

	// Exact string match on (email, code) — a wrong code and an unknown
	// email produce the same error.
	rec, err := s.codes.GetByEmailAndCode(ctx, email, code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrInvalidCode
		}
		return "", err
	}

	now := s.clk.Now()
	if now.Unix() > rec.ExpiresAt {
		// Expired records stay in place; the next RequestCode overwrites them
		// and the table TTL sweeps the rest.
		return "", domain.ErrCodeExpired
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return "", err
		}
		// First successful redemption for this email — the only
		// user-creation path in the system.
		user = &domain.User{
			UserID:    id.New(),
			Email:     email,
			CreatedAt: now,
		}
		if err := s.users.Put(ctx, user); err != nil {
			return "", err
		}
		slog.Info("created user", "user_id", user.UserID)
	}

	// Single use: conditional delete serializes concurrent redemptions at
	// the store, so only one caller per code gets past this point.
	if err := s.codes.DeleteMatching(ctx, email, code); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrInvalidCode
		}
		return "", err
	}

	return s.signer.Sign(user.UserID, user.Email, now)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
