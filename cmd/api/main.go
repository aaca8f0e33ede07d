package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pressly/goose/v3"

	"eventhub/config"
	_ "eventhub/docs"
	"eventhub/internal/adapters/auth"
	"eventhub/internal/adapters/email"
	httpdelivery "eventhub/internal/delivery/http"
	"eventhub/internal/delivery/http/controllers"
	"eventhub/internal/delivery/http/middleware"
	"eventhub/internal/repository/postgres"
	"eventhub/internal/services"
)

const (
	serviceTimeout  = 10 * time.Second
	shutdownTimeout = 15 * time.Second
	migrationsDir   = "migrations"
)

// @title EventHub API
// @version 1.0
// @description Event listing and booking service.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := config.NewLogger()

	// Migrations use their own short-lived connection. A failure here is
	// not fatal: request-time connections are established lazily and a
	// database that comes up later will still be reached.
	if err := runMigrations(cfg.DBUrl); err != nil {
		logger.Warn("migrations not applied", "err", err)
	}

	connector := postgres.NewConnector(cfg.DBUrl)
	eventRepo := postgres.NewEventRepository(connector)
	bookingRepo := postgres.NewBookingRepository(connector)

	mailer, err := email.NewMailer(cfg.Email)
	if err != nil {
		logger.Error("mailer init failed", "err", err)
		os.Exit(1)
	}

	eventSvc := services.NewEventService(eventRepo, services.SharedTagSimilarity{Events: eventRepo}, serviceTimeout)
	bookingSvc := services.NewBookingService(bookingRepo, eventRepo, mailer, logger, serviceTimeout)

	eventController := controllers.NewEventController(logger, eventSvc)
	bookingController := controllers.NewBookingController(logger, bookingSvc)
	verifier := auth.NewJWTVerifier(cfg.JWTSecret)

	mux := httpdelivery.NewRouter(eventController, bookingController, verifier)
	handler := middleware.Logging(logger,
		middleware.CORS(cfg.AllowedOrigins,
			middleware.Recovery(logger, mux)))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 20 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server failed", "err", err)
		os.Exit(1)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "err", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}

func runMigrations(dbURL string) error {
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
