package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/edmsantos/account-api/internal/auth"
	"github.com/edmsantos/account-api/internal/config"
	"github.com/edmsantos/account-api/internal/constants"
	"github.com/edmsantos/account-api/internal/models"
	"github.com/edmsantos/account-api/internal/utils"
)

var testJWTSettings = config.JWTSettings{
	Secret: "test-secret",
	Expiry: time.Hour,
	Issuer: "account-api",
}

// Mock implementations for testing

type MockUserRepository struct {
	users        map[int64]*models.User
	usersByEmail map[string]*models.User
	nextID       int64
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users:        make(map[int64]*models.User),
		usersByEmail: make(map[string]*models.User),
		nextID:       1,
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	if _, ok := m.usersByEmail[strings.ToLower(user.Email)]; ok {
		return utils.NewDuplicateError(constants.MsgEmailAlreadyExists)
	}

	user.ID = m.nextID
	m.nextID++

	m.users[user.ID] = user
	m.usersByEmail[strings.ToLower(user.Email)] = user

	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, utils.NewNotFoundError(constants.MsgUserNotFound)
	}
	return user, nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, ok := m.usersByEmail[strings.ToLower(email)]
	if !ok {
		return nil, utils.NewNotFoundError(constants.MsgUserNotFound)
	}
	return user, nil
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := m.usersByEmail[strings.ToLower(email)]
	return ok, nil
}

func (m *MockUserRepository) ChangePassword(ctx context.Context, id int64, passwordHash string) error {
	user, ok := m.users[id]
	if !ok {
		return utils.NewNotFoundError(constants.MsgUserNotFound)
	}
	user.PasswordHash = passwordHash
	return nil
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	if _, ok := m.users[user.ID]; !ok {
		return utils.NewNotFoundError(constants.MsgUserNotFound)
	}
	m.users[user.ID] = user
	m.usersByEmail[strings.ToLower(user.Email)] = user
	return nil
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	user, ok := m.users[id]
	if !ok {
		return utils.NewNotFoundError(constants.MsgUserNotFound)
	}
	delete(m.usersByEmail, strings.ToLower(user.Email))
	delete(m.users, id)
	return nil
}

type MockResetTokenRepository struct {
	tokensByHash map[string]*models.ResetToken
	nextID       int64
}

func NewMockResetTokenRepository() *MockResetTokenRepository {
	return &MockResetTokenRepository{
		tokensByHash: make(map[string]*models.ResetToken),
		nextID:       1,
	}
}

func (m *MockResetTokenRepository) Create(ctx context.Context, token *models.ResetToken) error {
	token.ID = m.nextID
	m.nextID++
	m.tokensByHash[token.TokenHash] = token
	return nil
}

func (m *MockResetTokenRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*models.ResetToken, error) {
	token, ok := m.tokensByHash[tokenHash]
	if !ok {
		return nil, utils.NewNotFoundError(constants.MsgResetTokenNotFound)
	}
	return token, nil
}

func (m *MockResetTokenRepository) Consume(ctx context.Context, tokenHash string) (*models.ResetToken, error) {
	token, ok := m.tokensByHash[tokenHash]
	if !ok {
		return nil, utils.NewNotFoundError(constants.MsgResetTokenNotFound)
	}
	delete(m.tokensByHash, tokenHash)
	return token, nil
}

func (m *MockResetTokenRepository) DeleteByUserID(ctx context.Context, userID int64) error {
	for hash, token := range m.tokensByHash {
		if token.UserID == userID {
			delete(m.tokensByHash, hash)
		}
	}
	return nil
}

func (m *MockResetTokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	var count int64
	now := time.Now()
	for hash, token := range m.tokensByHash {
		if token.IsExpired(now) {
			delete(m.tokensByHash, hash)
			count++
		}
	}
	return count, nil
}

type MockEmailSender struct {
	sentTo      []string
	sentSecrets []string
	failNext    bool
}

func (m *MockEmailSender) SendPasswordResetEmail(toEmail, secret string) error {
	if m.failNext {
		return errors.New("provider unavailable")
	}
	m.sentTo = append(m.sentTo, toEmail)
	m.sentSecrets = append(m.sentSecrets, secret)
	return nil
}

func newTestAuthService() (*AuthService, *MockUserRepository, *MockResetTokenRepository, *MockEmailSender) {
	userRepo := NewMockUserRepository()
	tokenRepo := NewMockResetTokenRepository()
	emailSender := &MockEmailSender{}
	passwords := auth.NewPasswordService(nil)
	jwtCfg := testJWTSettings
	sessions := auth.NewJWTService(&jwtCfg)

	svc := NewAuthService(userRepo, tokenRepo, passwords, sessions, emailSender)
	return svc, userRepo, tokenRepo, emailSender
}

func TestRegisterUser(t *testing.T) {
	svc, _, _, _ := newTestAuthService()

	reg := &models.UserRegistration{
		Email:    "alice@example.com",
		Password: "Passw0rd!",
		Role:     "user",
	}

	user, err := svc.RegisterUser(context.Background(), reg)
	if err != nil {
		t.Fatalf("RegisterUser() error = %v", err)
	}

	if user.ID == 0 {
		t.Error("Expected user ID to be set")
	}
	if user.PasswordHash != "" {
		t.Error("Sanitized user must not expose the password hash")
	}
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	svc, _, _, _ := newTestAuthService()

	reg := &models.UserRegistration{Email: "alice@example.com", Password: "Passw0rd!"}
	if _, err := svc.RegisterUser(context.Background(), reg); err != nil {
		t.Fatalf("first RegisterUser() error = %v", err)
	}

	_, err := svc.RegisterUser(context.Background(), reg)
	if !utils.IsDuplicateError(err) {
		t.Errorf("Expected duplicate error, got %v", err)
	}
	if code := utils.StatusCode(err); code != constants.StatusConflict {
		t.Errorf("Expected status %d, got %d", constants.StatusConflict, code)
	}
}

func TestRegisterUser_DuplicateEmailDifferentCase(t *testing.T) {
	svc, _, _, _ := newTestAuthService()

	reg := &models.UserRegistration{Email: "alice@example.com", Password: "Passw0rd!"}
	if _, err := svc.RegisterUser(context.Background(), reg); err != nil {
		t.Fatalf("first RegisterUser() error = %v", err)
	}

	reg2 := &models.UserRegistration{Email: "Alice@Example.com", Password: "Passw0rd!"}
	_, err := svc.RegisterUser(context.Background(), reg2)
	if !utils.IsDuplicateError(err) {
		t.Errorf("Expected duplicate error for case variant, got %v", err)
	}
}

func TestRegisterUser_InvalidEmail(t *testing.T) {
	svc, _, _, _ := newTestAuthService()

	reg := &models.UserRegistration{Email: "not-an-email", Password: "Passw0rd!"}
	_, err := svc.RegisterUser(context.Background(), reg)

	if !utils.IsValidationError(err) {
		t.Errorf("Expected validation error, got %v", err)
	}
	if code := utils.StatusCode(err); code != constants.StatusUnprocessableEntity {
		t.Errorf("Expected status %d, got %d", constants.StatusUnprocessableEntity, code)
	}
}

func TestRegisterUser_TakenEmailWinsOverFormat(t *testing.T) {
	svc, userRepo, _, _ := newTestAuthService()

	// Force a malformed address into the store; a re-registration must
	// still report conflict, not a format failure
	userRepo.usersByEmail["bad-address"] = &models.User{ID: 99, Email: "bad-address"}

	reg := &models.UserRegistration{Email: "bad-address", Password: "Passw0rd!"}
	_, err := svc.RegisterUser(context.Background(), reg)

	if !utils.IsDuplicateError(err) {
		t.Errorf("Expected duplicate error to take precedence, got %v", err)
	}
}

func TestRegisterUser_WeakPassword(t *testing.T) {
	svc, _, _, _ := newTestAuthService()

	cases := []struct {
		password string
		message  string
	}{
		{"Ab1!", constants.MsgPasswordTooShort},
		{"Aa1!" + strings.Repeat("x", 80), constants.MsgPasswordTooLong},
		{"passw0rd!", constants.MsgPasswordNoUppercase},
		{"PASSW0RD!", constants.MsgPasswordNoLowercase},
		{"Password!", constants.MsgPasswordNoDigit},
		{"Passw0rdX", constants.MsgPasswordNoSpecial},
	}

	for _, tc := range cases {
		reg := &models.UserRegistration{Email: "bob@example.com", Password: tc.password}
		_, err := svc.RegisterUser(context.Background(), reg)

		var appErr *utils.AppError
		if !errors.As(err, &appErr) {
			t.Fatalf("password %q: expected AppError, got %v", tc.password, err)
		}
		if appErr.Message != tc.message {
			t.Errorf("password %q: expected message %q, got %q", tc.password, tc.message, appErr.Message)
		}
		if appErr.StatusCode != constants.StatusUnprocessableEntity {
			t.Errorf("password %q: expected status 422, got %d", tc.password, appErr.StatusCode)
		}
	}
}

func TestAuthenticateUser(t *testing.T) {
	svc, _, _, _ := newTestAuthService()

	reg := &models.UserRegistration{Email: "alice@example.com", Password: "Passw0rd!", Role: "user"}
	if _, err := svc.RegisterUser(context.Background(), reg); err != nil {
		t.Fatalf("RegisterUser() error = %v", err)
	}

	authenticated, err := svc.AuthenticateUser(context.Background(), &models.UserCredentials{
		Email:    "alice@example.com",
		Password: "Passw0rd!",
	})
	if err != nil {
		t.Fatalf("AuthenticateUser() error = %v", err)
	}

	if authenticated.Token == "" {
		t.Error("Expected a non-empty session token")
	}
	if authenticated.Email != "alice@example.com" {
		t.Errorf("Expected email alice@example.com, got %s", authenticated.Email)
	}
	if authenticated.Role != "user" {
		t.Errorf("Expected role user, got %s", authenticated.Role)
	}
}

func TestAuthenticateUser_Indistinguishability(t *testing.T) {
	svc, _, _, _ := newTestAuthService()

	reg := &models.UserRegistration{Email: "alice@example.com", Password: "Passw0rd!"}
	if _, err := svc.RegisterUser(context.Background(), reg); err != nil {
		t.Fatalf("RegisterUser() error = %v", err)
	}

	// Unknown email and wrong password must be indistinguishable
	_, errUnknown := svc.AuthenticateUser(context.Background(), &models.UserCredentials{
		Email:    "nobody@example.com",
		Password: "Passw0rd!",
	})
	_, errWrongPassword := svc.AuthenticateUser(context.Background(), &models.UserCredentials{
		Email:    "alice@example.com",
		Password: "WrongPass1!",
	})

	var appErrUnknown, appErrWrong *utils.AppError
	if !errors.As(errUnknown, &appErrUnknown) || !errors.As(errWrongPassword, &appErrWrong) {
		t.Fatalf("Expected AppErrors, got %v and %v", errUnknown, errWrongPassword)
	}
	if appErrUnknown.StatusCode != constants.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", appErrUnknown.StatusCode)
	}
	if appErrUnknown.StatusCode != appErrWrong.StatusCode || appErrUnknown.Message != appErrWrong.Message {
		t.Error("Unknown email and wrong password must produce identical errors")
	}
}

func TestRequestPasswordReset(t *testing.T) {
	svc, _, tokenRepo, emailSender := newTestAuthService()

	reg := &models.UserRegistration{Email: "alice@example.com", Password: "Passw0rd!"}
	if _, err := svc.RegisterUser(context.Background(), reg); err != nil {
		t.Fatalf("RegisterUser() error = %v", err)
	}

	if err := svc.RequestPasswordReset(context.Background(), "alice@example.com"); err != nil {
		t.Fatalf("RequestPasswordReset() error = %v", err)
	}

	if len(emailSender.sentTo) != 1 || emailSender.sentTo[0] != "alice@example.com" {
		t.Errorf("Expected one email to alice@example.com, got %v", emailSender.sentTo)
	}
	if len(tokenRepo.tokensByHash) != 1 {
		t.Fatalf("Expected one token record, got %d", len(tokenRepo.tokensByHash))
	}

	// The stored value must be the digest of the emailed secret, never the secret
	secret := emailSender.sentSecrets[0]
	if _, ok := tokenRepo.tokensByHash[secret]; ok {
		t.Error("Plaintext secret must not be stored")
	}
	if _, ok := tokenRepo.tokensByHash[auth.HashResetSecret(secret)]; !ok {
		t.Error("Expected token stored under the secret's digest")
	}
}

func TestRequestPasswordReset_UnknownEmail(t *testing.T) {
	svc, _, _, emailSender := newTestAuthService()

	err := svc.RequestPasswordReset(context.Background(), "nobody@example.com")

	if !utils.IsNotFoundError(err) {
		t.Errorf("Expected not found error, got %v", err)
	}
	if len(emailSender.sentTo) != 0 {
		t.Error("No email should be sent for an unknown address")
	}
}

func TestRequestPasswordReset_EmailFailure(t *testing.T) {
	svc, _, tokenRepo, emailSender := newTestAuthService()

	reg := &models.UserRegistration{Email: "alice@example.com", Password: "Passw0rd!"}
	if _, err := svc.RegisterUser(context.Background(), reg); err != nil {
		t.Fatalf("RegisterUser() error = %v", err)
	}

	emailSender.failNext = true
	err := svc.RequestPasswordReset(context.Background(), "alice@example.com")

	var appErr *utils.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("Expected AppError, got %v", err)
	}
	if appErr.StatusCode != constants.StatusFailedDependency {
		t.Errorf("Expected status 424, got %d", appErr.StatusCode)
	}

	// The token record survives a delivery failure
	if len(tokenRepo.tokensByHash) != 1 {
		t.Errorf("Expected token record to survive email failure, got %d records", len(tokenRepo.tokensByHash))
	}
}

func TestResetPassword(t *testing.T) {
	svc, _, tokenRepo, emailSender := newTestAuthService()

	reg := &models.UserRegistration{Email: "alice@example.com", Password: "Passw0rd!"}
	if _, err := svc.RegisterUser(context.Background(), reg); err != nil {
		t.Fatalf("RegisterUser() error = %v", err)
	}
	if err := svc.RequestPasswordReset(context.Background(), "alice@example.com"); err != nil {
		t.Fatalf("RequestPasswordReset() error = %v", err)
	}

	secret := emailSender.sentSecrets[0]
	if err := svc.ResetPassword(context.Background(), secret, "NewPass1!"); err != nil {
		t.Fatalf("ResetPassword() error = %v", err)
	}

	// Old password no longer works, new one does
	if _, err := svc.AuthenticateUser(context.Background(), &models.UserCredentials{
		Email: "alice@example.com", Password: "Passw0rd!",
	}); err == nil {
		t.Error("Old password must no longer authenticate")
	}
	if _, err := svc.AuthenticateUser(context.Background(), &models.UserCredentials{
		Email: "alice@example.com", Password: "NewPass1!",
	}); err != nil {
		t.Errorf("New password should authenticate, got %v", err)
	}

	// The token is single-use
	if err := svc.ResetPassword(context.Background(), secret, "OtherPass1!"); !utils.IsNotFoundError(err) {
		t.Errorf("Expected not found on second use, got %v", err)
	}
	if len(tokenRepo.tokensByHash) != 0 {
		t.Errorf("Expected no surviving tokens, got %d", len(tokenRepo.tokensByHash))
	}
}

func TestResetPassword_UnknownToken(t *testing.T) {
	svc, _, _, _ := newTestAuthService()

	err := svc.ResetPassword(context.Background(), "deadbeef", "NewPass1!")
	if !utils.IsNotFoundError(err) {
		t.Errorf("Expected not found error, got %v", err)
	}
}

func TestResetPassword_ExpiredToken(t *testing.T) {
	svc, _, tokenRepo, emailSender := newTestAuthService()

	reg := &models.UserRegistration{Email: "alice@example.com", Password: "Passw0rd!"}
	if _, err := svc.RegisterUser(context.Background(), reg); err != nil {
		t.Fatalf("RegisterUser() error = %v", err)
	}
	if err := svc.RequestPasswordReset(context.Background(), "alice@example.com"); err != nil {
		t.Fatalf("RequestPasswordReset() error = %v", err)
	}

	secret := emailSender.sentSecrets[0]
	token := tokenRepo.tokensByHash[auth.HashResetSecret(secret)]
	token.ExpiresAt = time.Now().Add(-time.Minute)

	err := svc.ResetPassword(context.Background(), secret, "NewPass1!")

	var appErr *utils.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("Expected AppError, got %v", err)
	}
	if appErr.StatusCode != constants.StatusBadRequest {
		t.Errorf("Expected status 400 for expired token, got %d", appErr.StatusCode)
	}
	if appErr.Message != constants.MsgResetTokenExpired {
		t.Errorf("Expected message %q, got %q", constants.MsgResetTokenExpired, appErr.Message)
	}
}

func TestResetPassword_WeakPasswordKeepsToken(t *testing.T) {
	svc, _, _, emailSender := newTestAuthService()

	reg := &models.UserRegistration{Email: "alice@example.com", Password: "Passw0rd!"}
	if _, err := svc.RegisterUser(context.Background(), reg); err != nil {
		t.Fatalf("RegisterUser() error = %v", err)
	}
	if err := svc.RequestPasswordReset(context.Background(), "alice@example.com"); err != nil {
		t.Fatalf("RequestPasswordReset() error = %v", err)
	}

	secret := emailSender.sentSecrets[0]
	err := svc.ResetPassword(context.Background(), secret, "weak")
	if !utils.IsValidationError(err) {
		t.Errorf("Expected validation error, got %v", err)
	}

	// A rejected password must not consume the token
	if err := svc.ResetPassword(context.Background(), secret, "NewPass1!"); err != nil {
		t.Errorf("Token should survive a rejected password, got %v", err)
	}
}

func TestSweepExpiredResetTokens(t *testing.T) {
	svc, _, tokenRepo, _ := newTestAuthService()

	now := time.Now()
	tokenRepo.tokensByHash["expired"] = &models.ResetToken{ID: 1, UserID: 1, TokenHash: "expired", ExpiresAt: now.Add(-time.Hour)}
	tokenRepo.tokensByHash["live"] = &models.ResetToken{ID: 2, UserID: 1, TokenHash: "live", ExpiresAt: now.Add(time.Hour)}

	count, err := svc.SweepExpiredResetTokens(context.Background())
	if err != nil {
		t.Fatalf("SweepExpiredResetTokens() error = %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 swept token, got %d", count)
	}
	if _, ok := tokenRepo.tokensByHash["live"]; !ok {
		t.Error("Live token must survive the sweep")
	}
}
