package http

import (
	"net/http"

	"github.com/email-otp-api/internal/application/status"
	"github.com/email-otp-api/internal/application/verification"
	"github.com/email-otp-api/internal/config"
	"github.com/email-otp-api/internal/transport/http/handler"
	appmiddleware "github.com/email-otp-api/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// 5 requests/second, burst of 10 — applied to the two code endpoints so a
	// single client cannot brute-force a code within its validity window.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	verifySvc := verification.NewService(verification.Deps{
		Codes:    deps.CodeRepo,
		Users:    deps.UserRepo,
		Notifier: deps.Notifier,
		Signer:   deps.JWTProvider,
		CodeTTL:  cfg.CodeTTL,
	})
	statusSvc := status.NewService(deps.StatusRepo, nil)

	healthH := handler.NewHealthHandler()
	authH := handler.NewAuthHandler(verifySvc, deps.UserRepo)
	statusH := handler.NewStatusHandler(statusSvc)

	r.Route("/api", func(r chi.Router) {
		// ── Public routes (no auth) ──────────────────────────────────────────
		r.Get("/", healthH.Root)
		r.Get("/health-check/{action}", healthH.Ping)
		r.With(sensitiveRL.Limit).Post("/send-verification-code", authH.SendCode)
		r.With(sensitiveRL.Limit).Post("/verify-code", authH.VerifyCode)
		r.Get("/status", statusH.List)
		r.Post("/status", statusH.Create)

		// ── Authenticated routes ─────────────────────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(appmiddleware.Auth(deps.JWTProvider))
			r.Get("/auth/me", authH.Me)
		})
	})

	return r
}
