package migrations

import (
	"context"
	"database/sql"
)

// createUsersTable creates the users table. The unique index on the
// lowercased email enforces case-insensitive uniqueness at the store level.
func createUsersTable() Migration {
	return Migration{
		Name:        "create_users_table",
		Description: "Creates the users table",
		TableName:   "users",
		RunSQL: func(ctx context.Context, tx *sql.Tx) error {
			query := `
				CREATE TABLE IF NOT EXISTS users (
					user_id BIGSERIAL PRIMARY KEY,
					email VARCHAR(255) NOT NULL,
					password_hash VARCHAR(255) NOT NULL,
					role VARCHAR(50) NOT NULL DEFAULT '',
					created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
					updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
				);
				CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users (LOWER(email));
			`
			_, err := tx.ExecContext(ctx, query)
			return err
		},
	}
}

// createResetTokensTable creates the reset_tokens table. Only token digests
// are stored; the unique constraint makes the digest a reliable lookup key
// and the cascade removes tokens when their user is deleted.
func createResetTokensTable() Migration {
	return Migration{
		Name:        "create_reset_tokens_table",
		Description: "Creates the password reset tokens table",
		TableName:   "reset_tokens",
		RunSQL: func(ctx context.Context, tx *sql.Tx) error {
			query := `
				CREATE TABLE IF NOT EXISTS reset_tokens (
					token_id BIGSERIAL PRIMARY KEY,
					user_id BIGINT NOT NULL,
					token_hash VARCHAR(64) NOT NULL,
					created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
					expires_at TIMESTAMP NOT NULL,
					CONSTRAINT fk_reset_tokens_user FOREIGN KEY (user_id) REFERENCES users(user_id) ON DELETE CASCADE,
					CONSTRAINT idx_reset_tokens_hash UNIQUE (token_hash)
				);
				CREATE INDEX IF NOT EXISTS idx_reset_tokens_user_id ON reset_tokens(user_id);
				CREATE INDEX IF NOT EXISTS idx_reset_tokens_expires_at ON reset_tokens(expires_at);
			`
			_, err := tx.ExecContext(ctx, query)
			return err
		},
	}
}

// GetMigrations returns all migrations in execution order.
func GetMigrations() []Migration {
	return []Migration{
		createUsersTable(),
		createResetTokensTable(),
	}
}
