package constants

// Context Key Names
const (
	UserIDContextKey    = "user_id"
	EmailContextKey     = "email"
	RoleContextKey      = "role"
	RequestIDContextKey = "request_id"
)

// BearerTokenPrefix is the expected scheme prefix on the Authorization header.
const BearerTokenPrefix = "Bearer "

// Password Validation
const (
	MinPasswordLength = 8
	MaxEmailLength    = 255

	// MaxPasswordBytes is the bcrypt input limit. Longer passwords are
	// rejected up front rather than failing inside the hasher.
	MaxPasswordBytes = 72
)

// PasswordSpecialCharacters is the fixed punctuation set accepted as special
// characters by password strength validation.
const PasswordSpecialCharacters = "~`!@#$%^&*()-+={}[]|\\:;\"'<>,.?/_₹"

// ResetSecretByteLength is the number of random bytes generated for a password
// reset secret before hex encoding.
const ResetSecretByteLength = 32
