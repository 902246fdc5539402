// @title VendorMatch API
// @version 1.0
// @description Multi-tenant backend for vendor matchmaking events and slot booking.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vendormatch/config"
	"vendormatch/internal/adapters/auth"
	"vendormatch/internal/adapters/email"
	delivery "vendormatch/internal/delivery/http"
	"vendormatch/internal/delivery/http/controllers"
	"vendormatch/internal/delivery/http/middleware"
	"vendormatch/internal/repository/postgres"
	"vendormatch/internal/services"
)

const bcryptCost = 12

func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Open(ctx, cfg.DBUrl)
	if err != nil {
		logger.Error("failed to connect to database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := postgres.ApplySchema(ctx, db, "schema.sql"); err != nil {
		logger.Error("failed to apply schema", "err", err)
		os.Exit(1)
	}

	// Repositories
	eventRepo := postgres.NewEventRepository(db)
	bookingRepo := postgres.NewSlotBookingRepository(db)
	vendorRepo := postgres.NewVendorRepository(db)
	accountRepo := postgres.NewAccountRepository(db)

	// Adapters
	issuer, verifier := auth.NewJWTCodec(cfg.JWTSecret)
	hasher := auth.NewBcryptHasher(bcryptCost)
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretKey,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}
	renderer := email.NewTemplateRenderer()

	// Services
	emailService := services.NewEmailService(mailer, renderer)
	eventService := services.NewEventService(eventRepo, cfg.DBTimeout)
	bookingService := services.NewBookingService(bookingRepo, eventRepo, emailService, logger, cfg.DBTimeout)
	directoryService := services.NewDirectoryService(vendorRepo, cfg.DBTimeout)
	authService := services.NewAuthService(accountRepo, hasher, issuer, cfg.TokenExpiry, cfg.DBTimeout)

	// Controllers
	eventController := controllers.NewEventController(logger, eventService)
	bookingController := controllers.NewBookingController(logger, bookingService)
	vendorController := controllers.NewVendorController(logger, directoryService)
	authController := controllers.NewAuthController(logger, authService)
	emailController := controllers.NewEmailController(logger, emailService)

	mux := delivery.NewRouter(eventController, bookingController, vendorController, authController, emailController, verifier)
	handler := middleware.CORS(cfg.AllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
}
