package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/email-otp-api/internal/application/verification"
	"github.com/email-otp-api/internal/config"
	"github.com/email-otp-api/internal/infrastructure/dynamo"
	"github.com/email-otp-api/internal/infrastructure/emailjs"
	jwtinfra "github.com/email-otp-api/internal/infrastructure/jwt"
	"github.com/email-otp-api/internal/infrastructure/smtp"
	transporthttp "github.com/email-otp-api/internal/transport/http"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	// Bootstrap DynamoDB tables (creates them if they don't exist).
	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTables)

	// A missing signing secret is a configuration error — refuse to start
	// rather than issue unverifiable tokens.
	jwtProvider, err := jwtinfra.NewProvider(cfg)
	if err != nil {
		log.Fatalf("JWT provider: %v", err)
	}

	var notifier verification.Notifier
	switch cfg.EmailProvider {
	case "smtp":
		notifier = smtp.NewMailer(cfg)
	default:
		notifier = emailjs.NewSender(cfg)
	}

	deps := &transporthttp.Deps{
		UserRepo:    dynamo.NewUserRepo(dynamoClient, cfg.DynamoTables.Users),
		CodeRepo:    dynamo.NewCodeRepo(dynamoClient, cfg.DynamoTables.VerificationCodes),
		StatusRepo:  dynamo.NewStatusRepo(dynamoClient, cfg.DynamoTables.StatusChecks),
		Notifier:    notifier,
		JWTProvider: jwtProvider,
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
