// Package service implements the account API's business logic on top of the
// repository and auth layers.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/edmsantos/account-api/internal/auth"
	"github.com/edmsantos/account-api/internal/constants"
	"github.com/edmsantos/account-api/internal/models"
	"github.com/edmsantos/account-api/internal/repository"
	"github.com/edmsantos/account-api/internal/utils"
)

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	HashPassword(password string) (string, error)
	VerifyPassword(password, encodedHash string) bool
}

// SessionTokenIssuer issues signed session tokens for authenticated users.
type SessionTokenIssuer interface {
	GenerateSessionToken(userID int64, email, role string) (string, error)
}

// AuthService handles account registration, credential authentication and
// the two-step password reset flow.
type AuthService struct {
	userRepo    repository.UserRepository
	tokenRepo   repository.ResetTokenRepository
	passwords   PasswordHasher
	sessions    SessionTokenIssuer
	emailSender EmailSender
}

// NewAuthService creates a new AuthService.
func NewAuthService(
	userRepo repository.UserRepository,
	tokenRepo repository.ResetTokenRepository,
	passwords PasswordHasher,
	sessions SessionTokenIssuer,
	emailSender EmailSender,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		tokenRepo:   tokenRepo,
		passwords:   passwords,
		sessions:    sessions,
		emailSender: emailSender,
	}
}

// RegisterUser creates a new user account. The email is checked for
// availability before format, so a taken address reports a conflict even if
// it is also malformed. The password must pass every strength rule.
func (s *AuthService) RegisterUser(ctx context.Context, reg *models.UserRegistration) (*models.User, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, reg.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if err := utils.ValidateRegistrationEmail(reg.Email, exists); err != nil {
		return nil, err
	}

	if msg := utils.ValidatePasswordStrength(reg.Password); msg != "" {
		return nil, utils.NewValidationError("password", msg)
	}

	passwordHash, err := s.passwords.HashPassword(reg.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.NewUser(reg.Email, reg.Role)
	user.PasswordHash = passwordHash

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	utils.LogAuth("register_success", auth.UserIDString(user.ID), user.Email, true, "")

	return user.Sanitize(), nil
}

// AuthenticateUser verifies credentials and issues a signed session token.
// An unknown email and a wrong password both produce the same invalid
// credentials error, so callers cannot probe which addresses are registered.
func (s *AuthService) AuthenticateUser(ctx context.Context, creds *models.UserCredentials) (*models.AuthenticatedUser, error) {
	user, err := s.userRepo.GetByEmail(ctx, creds.Email)
	if err != nil {
		if utils.IsNotFoundError(err) {
			utils.LogAuth("login_failed", "0", creds.Email, false, "user not found")
			return nil, utils.NewInvalidCredentialsError()
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !s.passwords.VerifyPassword(creds.Password, user.PasswordHash) {
		utils.LogAuth("login_failed", auth.UserIDString(user.ID), user.Email, false, "password mismatch")
		return nil, utils.NewInvalidCredentialsError()
	}

	token, err := s.sessions.GenerateSessionToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	utils.LogAuth("login_success", auth.UserIDString(user.ID), user.Email, true, "")

	return &models.AuthenticatedUser{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
		Token: token,
	}, nil
}

// GetUser retrieves a user by ID with sensitive fields stripped.
func (s *AuthService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Sanitize(), nil
}

// RequestPasswordReset starts the reset flow for the account with the given
// email. A fresh secret is generated, its digest is persisted with a fixed
// validity window, and the secret is emailed to the account holder. The
// token row is written before the email goes out; a delivery failure is
// reported but does not invalidate the token.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if utils.IsNotFoundError(err) {
			return utils.NewNotFoundError(constants.MsgUserNotFound)
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	secret, err := auth.GenerateResetSecret()
	if err != nil {
		return fmt.Errorf("failed to generate reset secret: %w", err)
	}

	now := time.Now()
	token := &models.ResetToken{
		UserID:    user.ID,
		TokenHash: auth.HashResetSecret(secret),
		CreatedAt: now,
		ExpiresAt: now.Add(constants.ResetTokenTTL),
	}

	if err := s.tokenRepo.Create(ctx, token); err != nil {
		return err
	}

	if err := s.emailSender.SendPasswordResetEmail(user.Email, secret); err != nil {
		utils.LogAuth("reset_requested", auth.UserIDString(user.ID), user.Email, false, "email delivery failed")
		return utils.NewDependencyFailureError(constants.MsgEmailSendFailure)
	}

	utils.LogAuth("reset_requested", auth.UserIDString(user.ID), user.Email, true, "")

	return nil
}

// ResetPassword completes the reset flow. The replacement password must
// pass the same strength rules as at registration; a rejected password
// leaves the token intact so the user can retry. On success the token row
// is consumed in a single statement, so each token works exactly once even
// under concurrent attempts. Any other outstanding tokens for the account
// are revoked afterwards.
func (s *AuthService) ResetPassword(ctx context.Context, secret, newPassword string) error {
	tokenHash := auth.HashResetSecret(secret)

	token, err := s.tokenRepo.GetByTokenHash(ctx, tokenHash)
	if err != nil {
		if utils.IsNotFoundError(err) {
			return utils.NewNotFoundError(constants.MsgResetTokenNotFound)
		}
		return err
	}

	if token.IsExpired(time.Now()) {
		utils.LogAuth("reset_failed", auth.UserIDString(token.UserID), "", false, "token expired")
		return utils.NewExpiredTokenError()
	}

	if msg := utils.ValidatePasswordStrength(newPassword); msg != "" {
		return utils.NewValidationError("password", msg)
	}

	// Re-read with DELETE so a concurrent attempt with the same secret
	// cannot also get past this point.
	token, err = s.tokenRepo.Consume(ctx, tokenHash)
	if err != nil {
		if utils.IsNotFoundError(err) {
			return utils.NewNotFoundError(constants.MsgResetTokenNotFound)
		}
		return err
	}

	passwordHash, err := s.passwords.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.ChangePassword(ctx, token.UserID, passwordHash); err != nil {
		return err
	}

	if err := s.tokenRepo.DeleteByUserID(ctx, token.UserID); err != nil {
		return err
	}

	utils.LogAuth("reset_success", auth.UserIDString(token.UserID), "", true, "")

	return nil
}

// SweepExpiredResetTokens removes reset tokens past their validity window.
// Called periodically by the server's maintenance loop.
func (s *AuthService) SweepExpiredResetTokens(ctx context.Context) (int64, error) {
	return s.tokenRepo.DeleteExpired(ctx)
}
