// Package scripts provides utility scripts for database and system management.
//
// This package implements database seeding functionality. Seeds are tracked
// like migrations so they only run once, making the process idempotent and
// safe to run on both new and existing databases.
package scripts

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/edmsantos/account-api/internal/auth"
	"github.com/edmsantos/account-api/internal/database"
	"github.com/edmsantos/account-api/internal/models"
)

// Seeder handles database seeding.
type Seeder struct {
	db        *database.Pool
	passwords *auth.PasswordService
}

// NewSeeder creates a new seeder.
func NewSeeder(db *database.Pool, passwords *auth.PasswordService) *Seeder {
	return &Seeder{
		db:        db,
		passwords: passwords,
	}
}

// SeedDatabase seeds the database with initial data. It creates the seeds
// tracking table if it doesn't exist, then runs all seed functions that
// haven't been executed yet.
func (s *Seeder) SeedDatabase(ctx context.Context) error {
	log.Info().Msg("Seeding database")
	startTime := time.Now()

	if err := s.createSeedsTable(ctx); err != nil {
		return fmt.Errorf("failed to create seeds table: %w", err)
	}

	executedSeeds, err := s.getExecutedSeeds(ctx)
	if err != nil {
		return fmt.Errorf("failed to get executed seeds: %w", err)
	}

	seeds := []struct {
		Name     string
		SeedFunc func(ctx context.Context, tx *sql.Tx) error
	}{
		{"admin_account", s.seedAdminAccount},
	}

	seedsRun := 0
	for _, seed := range seeds {
		if executedSeeds[seed.Name] {
			continue
		}

		log.Info().Str("seed", seed.Name).Msg("Running seed")

		if err := s.runSeed(ctx, seed.Name, seed.SeedFunc); err != nil {
			return err
		}
		seedsRun++
	}

	log.Info().
		Int("seeds_run", seedsRun).
		Dur("duration", time.Since(startTime)).
		Msg("Database seeding completed")

	return nil
}

// seedAdminAccount creates an initial administrator account when the
// ADMIN_EMAIL and ADMIN_PASSWORD environment variables are set. Without
// them the seed is a no-op; production deployments create accounts through
// the registration endpoint instead.
func (s *Seeder) seedAdminAccount(ctx context.Context, tx *sql.Tx) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Info().Msg("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin account seed")
		return nil
	}

	passwordHash, err := s.passwords.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	user := models.NewUser(email, "admin")

	query := `
		INSERT INTO users (email, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT DO NOTHING
	`
	if _, err := tx.ExecContext(ctx, query, user.Email, passwordHash, user.Role, user.CreatedAt, user.UpdatedAt); err != nil {
		return fmt.Errorf("failed to insert admin account: %w", err)
	}

	log.Info().Str("email", email).Msg("Admin account seeded")
	return nil
}

// createSeedsTable creates the seeds tracking table if it doesn't exist.
func (s *Seeder) createSeedsTable(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS seeds (
			name VARCHAR(255) PRIMARY KEY,
			executed_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	_, err := s.db.ExecContext(ctx, query)
	return err
}

// getExecutedSeeds returns the names of seeds that have already run.
func (s *Seeder) getExecutedSeeds(ctx context.Context) (map[string]bool, error) {
	query := `SELECT name FROM seeds`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("failed to close rows")
		}
	}()

	executed := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		executed[name] = true
	}

	return executed, rows.Err()
}

// runSeed runs a seed function within a transaction and records it.
func (s *Seeder) runSeed(ctx context.Context, name string, seedFunc func(ctx context.Context, tx *sql.Tx) error) error {
	return s.db.Transaction(ctx, func(tx *sql.Tx) error {
		if err := seedFunc(ctx, tx); err != nil {
			return fmt.Errorf("seed %s failed: %w", name, err)
		}

		query := `INSERT INTO seeds (name) VALUES ($1)`
		if _, err := tx.ExecContext(ctx, query, name); err != nil {
			return fmt.Errorf("failed to record seed: %w", err)
		}

		return nil
	})
}
