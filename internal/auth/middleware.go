package auth

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/edmsantos/account-api/internal/constants"
	"github.com/edmsantos/account-api/internal/utils"
)

// ContextKey is a custom type for context keys to prevent collisions.
type ContextKey string

// Context keys for storing authenticated user information.
const (
	UserIDContextKey ContextKey = constants.UserIDContextKey
	EmailContextKey  ContextKey = constants.EmailContextKey
	RoleContextKey   ContextKey = constants.RoleContextKey
)

// Authenticator verifies the credentials carried by a request and returns
// the authenticated user's identity.
type Authenticator interface {
	Authenticate(r *http.Request) (*SessionClaims, error)
}

// JWTAuthenticator authenticates requests by validating a bearer session
// token from the Authorization header.
type JWTAuthenticator struct {
	validator SessionValidator
}

// NewJWTAuthenticator creates a new JWTAuthenticator backed by the given
// session token validator.
func NewJWTAuthenticator(validator SessionValidator) *JWTAuthenticator {
	return &JWTAuthenticator{
		validator: validator,
	}
}

// Authenticate implements the Authenticator interface. It extracts the
// bearer token from the Authorization header and validates it.
func (a *JWTAuthenticator) Authenticate(r *http.Request) (*SessionClaims, error) {
	authHeader := r.Header.Get(constants.HeaderAuthorization)
	if authHeader == "" {
		return nil, utils.ErrUnauthorized
	}

	if !strings.HasPrefix(authHeader, constants.BearerTokenPrefix) {
		return nil, utils.ErrUnauthorized
	}

	token := strings.TrimPrefix(authHeader, constants.BearerTokenPrefix)

	claims, err := a.validator.ValidateSessionToken(token)
	if err != nil {
		return nil, err
	}

	return claims, nil
}

// RequireAuth returns middleware that rejects requests without a valid
// session token and stores the authenticated identity on the request
// context for downstream handlers.
func RequireAuth(authenticator Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := authenticator.Authenticate(r)
			if err != nil {
				log.Debug().
					Err(err).
					Str("path", r.URL.Path).
					Msg("Request authentication failed")
				utils.Unauthorized(w, constants.MsgInvalidCredentials)
				return
			}

			ctx := r.Context()
			ctx = context.WithValue(ctx, UserIDContextKey, claims.UserID)
			ctx = context.WithValue(ctx, EmailContextKey, claims.Email)
			ctx = context.WithValue(ctx, RoleContextKey, claims.Role)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserID retrieves the authenticated user ID from the request context.
func GetUserID(r *http.Request) (int64, bool) {
	id, ok := r.Context().Value(UserIDContextKey).(int64)
	return id, ok
}

// GetEmail retrieves the authenticated user's email from the request context.
func GetEmail(r *http.Request) (string, bool) {
	email, ok := r.Context().Value(EmailContextKey).(string)
	return email, ok
}

// GetRole retrieves the authenticated user's role from the request context.
func GetRole(r *http.Request) (string, bool) {
	role, ok := r.Context().Value(RoleContextKey).(string)
	return role, ok
}

// UserIDString formats a user ID for log output.
func UserIDString(id int64) string {
	return strconv.FormatInt(id, 10)
}
