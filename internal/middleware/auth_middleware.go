// Package middleware provides HTTP middleware components.
package middleware

import (
	"net/http"

	"github.com/edmsantos/account-api/internal/auth"
	"github.com/edmsantos/account-api/internal/constants"
)

// JWTAuth is middleware that requires a valid session token on the request.
func JWTAuth(validator auth.SessionValidator) func(http.Handler) http.Handler {
	authenticator := auth.NewJWTAuthenticator(validator)
	return auth.RequireAuth(authenticator)
}

// SecurityHeaders adds security-related HTTP headers to responses.
func SecurityHeaders() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(constants.HeaderXContentTypeOptions, constants.ContentTypeOptionsNoSniff)
			w.Header().Set(constants.HeaderXFrameOptions, constants.FrameOptionsDeny)
			w.Header().Set(constants.HeaderReferrerPolicy, constants.ReferrerPolicyStrictOrigin)
			w.Header().Set(constants.HeaderContentSecurityPolicy, constants.CSPDefaultSrc)

			next.ServeHTTP(w, r)
		})
	}
}
