// Package auth provides credential hashing, session token issuing and
// request authentication for the account API.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/edmsantos/account-api/internal/config"
	"github.com/edmsantos/account-api/internal/constants"
)

// PasswordService handles password hashing and verification using bcrypt.
type PasswordService struct {
	cfg *config.PasswordSettings
}

// NewPasswordService creates a new PasswordService with the specified configuration.
func NewPasswordService(cfg *config.PasswordSettings) *PasswordService {
	return &PasswordService{
		cfg: cfg,
	}
}

// cost returns the configured bcrypt cost, falling back to the library
// default when the configuration is absent or out of range.
func (s *PasswordService) cost() int {
	if s.cfg == nil || s.cfg.BcryptCost < bcrypt.MinCost || s.cfg.BcryptCost > bcrypt.MaxCost {
		return bcrypt.DefaultCost
	}
	return s.cfg.BcryptCost
}

// HashPassword hashes a password with bcrypt. The returned string embeds
// the salt and cost, so it is the only value that needs to be stored.
func (s *PasswordService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost())
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword checks a password against a stored bcrypt hash.
// It returns false for any mismatch or malformed hash rather than
// distinguishing the two.
func (s *PasswordService) VerifyPassword(password, encodedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password)) == nil
}

// GenerateResetSecret generates a random password reset secret.
// The secret is the hex encoding of 32 random bytes and is the value
// delivered to the user; only its digest is ever stored.
func GenerateResetSecret() (string, error) {
	b := make([]byte, constants.ResetSecretByteLength)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate reset secret: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// HashResetSecret returns the hex-encoded SHA-256 digest of a reset secret.
// The digest serves as the database lookup key, so a stored token row never
// reveals the secret itself.
func HashResetSecret(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}
