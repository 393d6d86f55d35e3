// Package constants provides shared constant values used throughout the application.
//
// The httpcodes.go file defines HTTP-related constants such as status codes,
// response codes, headers, and content types. These constants ensure consistent
// HTTP communication patterns across the application and provide meaningful
// standardized responses to API clients.
package constants

// HTTP Status Codes define the standard HTTP response status codes used in the application.
const (
	// StatusOK indicates that the request has succeeded.
	StatusOK = 200

	// StatusCreated indicates that the request has succeeded and a new resource has been created.
	StatusCreated = 201

	// StatusNoContent indicates that the request has succeeded but there is no content to send.
	StatusNoContent = 204

	// StatusBadRequest indicates that the server cannot process the request due to client error.
	StatusBadRequest = 400

	// StatusUnauthorized indicates that the request lacks valid authentication credentials.
	StatusUnauthorized = 401

	// StatusForbidden indicates that the server understood the request but refuses to authorize it.
	StatusForbidden = 403

	// StatusNotFound indicates that the server cannot find the requested resource.
	StatusNotFound = 404

	// StatusMethodNotAllowed indicates that the request method is not supported for the requested resource.
	StatusMethodNotAllowed = 405

	// StatusConflict indicates that the request conflicts with the current state of the server.
	StatusConflict = 409

	// StatusUnprocessableEntity indicates that the request was well-formed but semantically invalid.
	StatusUnprocessableEntity = 422

	// StatusTooManyRequests indicates that the client has sent too many requests.
	StatusTooManyRequests = 429

	// StatusFailedDependency indicates that the request failed because a dependent action failed.
	StatusFailedDependency = 424

	// StatusInternalServerError indicates that the server encountered an unexpected condition.
	StatusInternalServerError = 500
)

// HTTP Response Code Types define application-specific response codes.
// These codes provide more detailed information about the response beyond HTTP status codes.
const (
	// ResponseSuccess indicates that the request was processed successfully.
	ResponseSuccess = true

	// ResponseFailure indicates that the request processing failed.
	ResponseFailure = false

	// CodeBadRequest indicates a malformed or invalid request.
	CodeBadRequest = "bad_request"

	// CodeUnauthorized indicates missing or invalid authentication.
	CodeUnauthorized = "unauthorized"

	// CodeForbidden indicates the user lacks permission for the requested action.
	CodeForbidden = "forbidden"

	// CodeNotFound indicates the requested resource does not exist.
	CodeNotFound = "not_found"

	// CodeMethodNotAllowed indicates an unsupported HTTP method.
	CodeMethodNotAllowed = "method_not_allowed"

	// CodeConflict indicates a resource state conflict.
	CodeConflict = "conflict"

	// CodeValidationError indicates input validation failure.
	CodeValidationError = "validation_error"

	// CodeDuplicateResource indicates an attempt to create a duplicate resource.
	CodeDuplicateResource = "duplicate_resource"

	// CodeInvalidCredentials indicates failed authentication.
	CodeInvalidCredentials = "invalid_credentials"

	// CodeTokenExpired indicates an expired token.
	CodeTokenExpired = "token_expired"

	// CodeTokenInvalid indicates an invalid token.
	CodeTokenInvalid = "token_invalid"

	// CodeDependencyFailure indicates an outbound dependency failed while handling the request.
	CodeDependencyFailure = "dependency_failure"

	// CodeTooManyRequests indicates the client exceeded a rate limit.
	CodeTooManyRequests = "too_many_requests"

	// CodeInternalError indicates an unexpected server error.
	CodeInternalError = "internal_error"
)

// HTTP Headers define the names of standard and custom HTTP headers used in the application.
const (
	// HeaderContentType specifies the media type of the request or response body.
	HeaderContentType = "Content-Type"

	// HeaderAuthorization carries authentication credentials.
	HeaderAuthorization = "Authorization"

	// HeaderXContentTypeOptions prevents MIME type sniffing.
	HeaderXContentTypeOptions = "X-Content-Type-Options"

	// HeaderXFrameOptions controls whether the page may be framed.
	HeaderXFrameOptions = "X-Frame-Options"

	// HeaderReferrerPolicy controls referrer information sent with requests.
	HeaderReferrerPolicy = "Referrer-Policy"

	// HeaderContentSecurityPolicy restricts the sources of loaded content.
	HeaderContentSecurityPolicy = "Content-Security-Policy"
)

// Security Header Values define the fixed values sent on every response.
const (
	// ContentTypeOptionsNoSniff disables MIME type sniffing.
	ContentTypeOptionsNoSniff = "nosniff"

	// FrameOptionsDeny forbids framing entirely.
	FrameOptionsDeny = "DENY"

	// ReferrerPolicyStrictOrigin limits referrer information across origins.
	ReferrerPolicyStrictOrigin = "strict-origin-when-cross-origin"

	// CSPDefaultSrc restricts content loading to the same origin.
	CSPDefaultSrc = "default-src 'self'"
)

// Content Types define the media types used in HTTP communication.
const (
	// ContentTypeJSON indicates JSON-formatted content.
	ContentTypeJSON = "application/json"
)
