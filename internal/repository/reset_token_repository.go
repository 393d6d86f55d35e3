package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/edmsantos/account-api/internal/constants"
	"github.com/edmsantos/account-api/internal/database"
	"github.com/edmsantos/account-api/internal/models"
	"github.com/edmsantos/account-api/internal/utils"
)

// ResetTokenRepository defines methods for managing password reset tokens.
// Tokens are stored by digest only and are single-use: Consume removes the
// row in the same statement that reads it, so two concurrent attempts with
// the same secret cannot both succeed.
type ResetTokenRepository interface {
	Create(ctx context.Context, token *models.ResetToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.ResetToken, error)
	Consume(ctx context.Context, tokenHash string) (*models.ResetToken, error)
	DeleteByUserID(ctx context.Context, userID int64) error
	DeleteExpired(ctx context.Context) (int64, error)
}

// PostgresResetTokenRepository is a PostgreSQL implementation of ResetTokenRepository.
type PostgresResetTokenRepository struct {
	db *database.Pool
}

// NewResetTokenRepository creates a new ResetTokenRepository.
func NewResetTokenRepository(db *database.Pool) ResetTokenRepository {
	return &PostgresResetTokenRepository{
		db: db,
	}
}

// Create stores a new reset token record. The generated ID is written back
// onto the token.
func (r *PostgresResetTokenRepository) Create(ctx context.Context, token *models.ResetToken) error {
	startTime := time.Now()

	if token.CreatedAt.IsZero() {
		token.CreatedAt = time.Now()
	}

	query := `
        INSERT INTO reset_tokens (user_id, token_hash, created_at, expires_at)
        VALUES ($1, $2, $3, $4)
        RETURNING token_id
    `

	err := r.db.QueryRowContext(
		ctx,
		query,
		token.UserID,
		token.TokenHash,
		token.CreatedAt,
		token.ExpiresAt,
	).Scan(&token.ID)

	utils.LogDBQuery(
		query,
		[]interface{}{token.UserID, constants.LogRedactedValue, token.CreatedAt, token.ExpiresAt},
		time.Since(startTime),
		err,
	)

	if err != nil {
		return fmt.Errorf("failed to create reset token: %w", err)
	}

	log.Info().
		Int64("token_id", token.ID).
		Int64("user_id", token.UserID).
		Time("expires_at", token.ExpiresAt).
		Msg("Password reset token created")

	return nil
}

// GetByTokenHash retrieves a reset token by its digest without consuming it.
func (r *PostgresResetTokenRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*models.ResetToken, error) {
	startTime := time.Now()

	query := `
        SELECT token_id, user_id, token_hash, created_at, expires_at
        FROM reset_tokens
        WHERE token_hash = $1
    `

	token := &models.ResetToken{}
	err := r.db.QueryRowContext(ctx, query, tokenHash).Scan(
		&token.ID,
		&token.UserID,
		&token.TokenHash,
		&token.CreatedAt,
		&token.ExpiresAt,
	)

	utils.LogDBQuery(query, []interface{}{constants.LogRedactedValue}, time.Since(startTime), err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundError(constants.MsgResetTokenNotFound)
		}
		return nil, fmt.Errorf("failed to get reset token: %w", err)
	}

	return token, nil
}

// Consume atomically removes the reset token with the given digest and
// returns the removed row. A token that does not exist, or that was already
// consumed by a concurrent request, yields a not found error. Expiry is not
// checked here; callers decide how to treat a consumed-but-expired token.
func (r *PostgresResetTokenRepository) Consume(ctx context.Context, tokenHash string) (*models.ResetToken, error) {
	startTime := time.Now()

	query := `
        DELETE FROM reset_tokens
        WHERE token_hash = $1
        RETURNING token_id, user_id, token_hash, created_at, expires_at
    `

	token := &models.ResetToken{}
	err := r.db.QueryRowContext(ctx, query, tokenHash).Scan(
		&token.ID,
		&token.UserID,
		&token.TokenHash,
		&token.CreatedAt,
		&token.ExpiresAt,
	)

	utils.LogDBQuery(query, []interface{}{constants.LogRedactedValue}, time.Since(startTime), err)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewNotFoundError(constants.MsgResetTokenNotFound)
		}
		return nil, fmt.Errorf("failed to consume reset token: %w", err)
	}

	log.Info().
		Int64("token_id", token.ID).
		Int64("user_id", token.UserID).
		Msg("Password reset token consumed")

	return token, nil
}

// DeleteByUserID removes all reset tokens belonging to a user. Used after a
// successful reset so no other outstanding token for the account survives.
func (r *PostgresResetTokenRepository) DeleteByUserID(ctx context.Context, userID int64) error {
	startTime := time.Now()

	query := `
        DELETE FROM reset_tokens
        WHERE user_id = $1
    `

	_, err := r.db.ExecContext(ctx, query, userID)

	utils.LogDBQuery(query, []interface{}{userID}, time.Since(startTime), err)

	if err != nil {
		return fmt.Errorf("failed to delete reset tokens for user: %w", err)
	}

	return nil
}

// DeleteExpired removes all reset tokens past their validity window and
// returns the number of rows removed.
func (r *PostgresResetTokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	startTime := time.Now()

	query := `
        DELETE FROM reset_tokens
        WHERE expires_at < $1
    `

	result, err := r.db.ExecContext(ctx, query, time.Now())

	utils.LogDBQuery(query, []interface{}{time.Now()}, time.Since(startTime), err)

	if err != nil {
		return 0, fmt.Errorf("failed to delete expired reset tokens: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected > 0 {
		log.Info().
			Int64("count", rowsAffected).
			Msg("Expired password reset tokens removed")
	}

	return rowsAffected, nil
}
