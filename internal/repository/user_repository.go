// Package repository provides data access layers for the account API's
// persistent models. Each repository exposes an interface backed by a
// PostgreSQL implementation so services can be tested against mocks.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/edmsantos/account-api/internal/constants"
	"github.com/edmsantos/account-api/internal/database"
	"github.com/edmsantos/account-api/internal/models"
	"github.com/edmsantos/account-api/internal/utils"
)

// UserRepository defines methods for interacting with user account data.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ChangePassword(ctx context.Context, id int64, passwordHash string) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int64) error
}

// PostgresUserRepository is a PostgreSQL implementation of UserRepository.
type PostgresUserRepository struct {
	db *database.Pool
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *database.Pool) UserRepository {
	return &PostgresUserRepository{
		db: db,
	}
}

// Create adds a new user to the database. The generated ID is written back
// onto the user. A unique constraint violation on the email column is
// surfaced as a duplicate error.
func (r *PostgresUserRepository) Create(ctx context.Context, user *models.User) error {
	startTime := time.Now()

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
        INSERT INTO users (email, password_hash, role, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING user_id
    `

	err := r.db.QueryRowContext(
		ctx,
		query,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.CreatedAt,
		user.UpdatedAt,
	).Scan(&user.ID)

	utils.LogDBQuery(
		query,
		[]interface{}{user.Email, constants.LogRedactedValue, user.Role, user.CreatedAt, user.UpdatedAt},
		time.Since(startTime),
		err,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return utils.NewDuplicateError(constants.MsgEmailAlreadyExists)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	log.Info().
		Int64("user_id", user.ID).
		Str("email", user.Email).
		Msg("User created")

	return nil
}

// GetByID retrieves a user by ID.
func (r *PostgresUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	startTime := time.Now()

	query := `
        SELECT user_id, email, password_hash, role, created_at, updated_at
        FROM users
        WHERE user_id = $1
    `

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	utils.LogDBQuery(query, []interface{}{id}, time.Since(startTime), err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundError(constants.MsgUserNotFound)
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return user, nil
}

// GetByEmail retrieves a user by email. The match is case-insensitive so a
// user who registered as Alice@example.com can sign in as alice@example.com.
func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	startTime := time.Now()

	query := `
        SELECT user_id, email, password_hash, role, created_at, updated_at
        FROM users
        WHERE LOWER(email) = LOWER($1)
    `

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	utils.LogDBQuery(query, []interface{}{email}, time.Since(startTime), err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundError(constants.MsgUserNotFound)
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

// ExistsByEmail checks if a user with the given email exists.
func (r *PostgresUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	startTime := time.Now()

	query := `
        SELECT EXISTS (
            SELECT 1
            FROM users
            WHERE LOWER(email) = LOWER($1)
        )
    `

	var exists bool
	err := r.db.QueryRowContext(ctx, query, email).Scan(&exists)

	utils.LogDBQuery(query, []interface{}{email}, time.Since(startTime), err)

	if err != nil {
		return false, fmt.Errorf("failed to check if email exists: %w", err)
	}

	return exists, nil
}

// ChangePassword updates a user's password hash.
func (r *PostgresUserRepository) ChangePassword(ctx context.Context, id int64, passwordHash string) error {
	startTime := time.Now()

	query := `
        UPDATE users
        SET password_hash = $1, updated_at = $2
        WHERE user_id = $3
    `

	result, err := r.db.ExecContext(ctx, query, passwordHash, time.Now(), id)

	utils.LogDBQuery(
		query,
		[]interface{}{constants.LogRedactedValue, time.Now(), id},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return fmt.Errorf("failed to change password: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return utils.NewNotFoundError(constants.MsgUserNotFound)
	}

	log.Info().
		Int64("user_id", id).
		Msg("User password changed")

	return nil
}

// Update updates a user's mutable fields (email and role).
func (r *PostgresUserRepository) Update(ctx context.Context, user *models.User) error {
	startTime := time.Now()

	user.UpdatedAt = time.Now()

	query := `
        UPDATE users
        SET email = $1, role = $2, updated_at = $3
        WHERE user_id = $4
    `

	result, err := r.db.ExecContext(
		ctx,
		query,
		user.Email,
		user.Role,
		user.UpdatedAt,
		user.ID,
	)

	utils.LogDBQuery(
		query,
		[]interface{}{user.Email, user.Role, user.UpdatedAt, user.ID},
		time.Since(startTime),
		err,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return utils.NewDuplicateError(constants.MsgEmailAlreadyExists)
		}
		return fmt.Errorf("failed to update user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return utils.NewNotFoundError(constants.MsgUserNotFound)
	}

	return nil
}

// Delete removes a user from the database. Dependent reset token rows are
// removed by the ON DELETE CASCADE constraint.
func (r *PostgresUserRepository) Delete(ctx context.Context, id int64) error {
	startTime := time.Now()

	query := `
        DELETE FROM users
        WHERE user_id = $1
    `

	result, err := r.db.ExecContext(ctx, query, id)

	utils.LogDBQuery(query, []interface{}{id}, time.Since(startTime), err)

	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return utils.NewNotFoundError(constants.MsgUserNotFound)
	}

	log.Info().
		Int64("user_id", id).
		Msg("User deleted")

	return nil
}
