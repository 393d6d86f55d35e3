package models

import (
	"time"
)

// ResetToken represents a password reset token record. Only the hash of the
// secret is ever stored; the plaintext secret is delivered out-of-band and
// discarded. A token is valid for consumption iff the current time is not
// past ExpiresAt and the record still exists (consumption deletes it).
type ResetToken struct {
	ID        int64     `json:"id" db:"token_id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	TokenHash string    `json:"-" db:"token_hash"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
}

// TableName returns the database table name for the ResetToken model.
func (t *ResetToken) TableName() string {
	return "reset_tokens"
}

// IsExpired reports whether the token is past its validity window at the given time.
func (t *ResetToken) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// ForgotPasswordRequest defines the structure for requesting a password reset.
// The email is not format-checked here; an address that matches no account
// reports not found, whatever its shape.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required"`
}

// ResetPasswordRequest defines the structure for resetting a password with a token.
type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"password" validate:"required"`
}
