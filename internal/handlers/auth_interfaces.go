// Package handlers provides HTTP request handlers for the account API.
package handlers

import (
	"context"

	"github.com/edmsantos/account-api/internal/models"
)

// AuthServiceInterface defines the methods required from the authentication
// service. Handlers depend on this interface rather than the concrete
// service so tests can substitute their own implementation.
type AuthServiceInterface interface {
	// RegisterUser registers a new user with the provided registration data.
	RegisterUser(ctx context.Context, reg *models.UserRegistration) (*models.User, error)

	// AuthenticateUser verifies credentials and returns the authenticated
	// user together with a signed session token.
	AuthenticateUser(ctx context.Context, creds *models.UserCredentials) (*models.AuthenticatedUser, error)

	// GetUser retrieves a user by ID with sensitive fields stripped.
	GetUser(ctx context.Context, id int64) (*models.User, error)

	// RequestPasswordReset starts the password reset flow for the account
	// with the given email.
	RequestPasswordReset(ctx context.Context, email string) error

	// ResetPassword completes the password reset flow using the secret
	// delivered to the account holder.
	ResetPassword(ctx context.Context, secret, newPassword string) error
}
