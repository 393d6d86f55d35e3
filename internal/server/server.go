// Package server provides the HTTP server for the account API.
// It handles routing, middleware configuration, and server lifecycle
// management, including graceful shutdown and periodic maintenance.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/edmsantos/account-api/internal/auth"
	"github.com/edmsantos/account-api/internal/config"
	"github.com/edmsantos/account-api/internal/constants"
	"github.com/edmsantos/account-api/internal/database"
	"github.com/edmsantos/account-api/internal/handlers"
	"github.com/edmsantos/account-api/internal/repository"
	"github.com/edmsantos/account-api/internal/service"
	"github.com/edmsantos/account-api/migrations"
	"github.com/edmsantos/account-api/scripts"
)

// Handlers contains all HTTP handlers for the application.
type Handlers struct {
	// AuthHandler manages registration and authentication endpoints
	AuthHandler *handlers.AuthHandler

	// PasswordResetHandler manages the password reset flow endpoints
	PasswordResetHandler *handlers.PasswordResetHandler
}

// AuthProviders contains the authentication services used across the server.
type AuthProviders struct {
	// JWTService issues and validates session tokens
	JWTService *auth.JWTService

	// PasswordService hashes and verifies passwords
	PasswordService *auth.PasswordService
}

// Server represents the account API server. It encapsulates all server
// components and handles lifecycle management.
type Server struct {
	// Config contains application configuration
	Config *config.AppConfig

	// Db provides database access
	Db *database.Pool

	// router handles HTTP routing
	router chi.Router

	// Handlers contains all HTTP request handlers
	Handlers *Handlers

	// authProviders contains authentication services
	authProviders *AuthProviders

	// authService implements the account business logic
	authService *service.AuthService

	// httpServer is the underlying HTTP server
	httpServer *http.Server
}

// NewServer creates a new server instance with all required components.
// Initialization follows a fixed dependency order: database, auth
// providers, repositories and services, handlers, routes.
func NewServer(cfg *config.AppConfig) (*Server, error) {
	s := &Server{
		Config: cfg,
	}

	s.setupAuthProviders()

	if err := s.setupDatabase(); err != nil {
		return nil, fmt.Errorf("failed to set up database: %w", err)
	}

	if err := s.setupServices(); err != nil {
		return nil, fmt.Errorf("failed to set up services: %w", err)
	}

	s.setupHandlers()

	s.SetupRoutes()

	s.httpServer = &http.Server{
		Addr:         cfg.Server.ServerAddress(),
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  constants.DefaultIdleTimeout,
	}

	return s, nil
}

// setupDatabase connects to the database and brings the schema up to date.
func (s *Server) setupDatabase() error {
	db, err := database.Connect(s.Config)
	if err != nil {
		return err
	}

	s.Db = db

	migrator := migrations.NewMigrator(db)
	if err := migrator.RunMigrations(context.Background()); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	seeder := scripts.NewSeeder(db, s.authProviders.PasswordService)
	if err := seeder.SeedDatabase(context.Background()); err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	return nil
}

// setupAuthProviders initializes the JWT and password services.
func (s *Server) setupAuthProviders() {
	s.authProviders = &AuthProviders{
		JWTService:      auth.NewJWTService(&s.Config.JWT),
		PasswordService: auth.NewPasswordService(&s.Config.Password),
	}
}

// setupServices initializes the repositories and business services.
func (s *Server) setupServices() error {
	emailService, err := service.NewEmailService(&s.Config.Email)
	if err != nil {
		return err
	}

	s.authService = service.NewAuthService(
		repository.NewUserRepository(s.Db),
		repository.NewResetTokenRepository(s.Db),
		s.authProviders.PasswordService,
		s.authProviders.JWTService,
		emailService,
	)

	return nil
}

// setupHandlers initializes all HTTP request handlers.
func (s *Server) setupHandlers() {
	s.Handlers = &Handlers{
		AuthHandler:          handlers.NewAuthHandler(s.authService),
		PasswordResetHandler: handlers.NewPasswordResetHandler(s.authService),
	}
}

// Start starts the HTTP server and blocks until a shutdown signal or a
// server error occurs. On SIGINT or SIGTERM the server drains in-flight
// requests before returning.
func (s *Server) Start() error {
	serverErrors := make(chan error, 1)

	go func() {
		log.Info().
			Str("address", s.Config.Server.ServerAddress()).
			Msg("Starting server")

		serverErrors <- s.httpServer.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	s.SetupMaintenanceTasks()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info().
			Str("signal", sig.String()).
			Msg("Shutdown signal received")

		ctx, cancel := context.WithTimeout(context.Background(), s.Config.Server.ShutdownTimeout)
		defer cancel()

		if err := s.Shutdown(ctx); err != nil {
			if closeErr := s.httpServer.Close(); closeErr != nil {
				log.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the server. In-flight requests are allowed
// to complete within the context deadline before connections are closed.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	log.Info().Msg("Server stopped gracefully")

	s.Db.Close()
	log.Info().Msg("Database connection closed")

	return nil
}

// SetupMaintenanceTasks starts the periodic maintenance loop. Expired
// password reset tokens are swept on a fixed interval so the token table
// does not accumulate dead rows.
func (s *Server) SetupMaintenanceTasks() {
	ticker := time.NewTicker(constants.DBMaintenanceInterval)
	go func() {
		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)

			if count, err := s.authService.SweepExpiredResetTokens(ctx); err != nil {
				log.Error().Err(err).Msg("Failed to sweep expired reset tokens")
			} else if count > 0 {
				log.Info().Int64("count", count).Msg("Swept expired reset tokens")
			}

			cancel()
		}
	}()
}
