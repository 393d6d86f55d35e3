package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/edmsantos/account-api/internal/config"
	"github.com/edmsantos/account-api/internal/utils"
)

// Token validation errors.
var (
	ErrInvalidSigningMethod = errors.New("invalid signing method")
	ErrInvalidTokenClaims   = errors.New("invalid token claims")
)

// SessionClaims represents the claims carried by a signed session token.
type SessionClaims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// SessionValidator validates session tokens and extracts their claims.
// Handlers depend on this interface rather than the concrete service so
// that tests can substitute their own implementation.
type SessionValidator interface {
	ValidateSessionToken(tokenString string) (*SessionClaims, error)
}

// JWTService issues and validates HS256-signed session tokens.
type JWTService struct {
	cfg *config.JWTSettings
}

// NewJWTService creates a new JWTService instance.
func NewJWTService(cfg *config.JWTSettings) *JWTService {
	return &JWTService{
		cfg: cfg,
	}
}

// GenerateSessionToken creates a signed session token for an authenticated
// user. The token carries an expiry claim so clients and validators can
// reject stale sessions without a server-side lookup.
func (s *JWTService) GenerateSessionToken(userID int64, email, role string) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.Issuer,
			Subject:   fmt.Sprintf("%d", userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.Expiry)),
			NotBefore: jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return tokenString, nil
}

// ValidateSessionToken validates a session token and returns its claims.
func (s *JWTService) ValidateSessionToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSigningMethod
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, utils.NewUnauthorizedError("Session has expired")
		}
		return nil, utils.NewInvalidTokenError()
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidTokenClaims
	}

	if claims.UserID <= 0 {
		return nil, ErrInvalidTokenClaims
	}

	return claims, nil
}
