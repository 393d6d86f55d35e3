// Package constants provides shared constant values used throughout the application.
//
// The errorcodes.go file defines constants related to error handling, categorization,
// and messaging. User-facing error messages are carefully crafted to be informative
// without revealing sensitive implementation details.
package constants

// User-Facing Error Messages define standardized messages that can be safely presented to users.
const (
	// MsgAuthRequired indicates that the user must authenticate to access the resource.
	MsgAuthRequired = "Authentication required"

	// MsgInvalidCredentials indicates that login credentials are incorrect. The same
	// message is returned for unknown emails and wrong passwords so that the two
	// cases cannot be told apart.
	MsgInvalidCredentials = "Invalid credentials."

	// MsgEmailAlreadyExists indicates a registration attempt with a taken email.
	MsgEmailAlreadyExists = "Email address already exists."

	// MsgInvalidEmail indicates a registration attempt with a malformed email.
	MsgInvalidEmail = "Invalid email address."

	// MsgUserNotFound indicates that no account matches the given identifier.
	MsgUserNotFound = "User not found."

	// MsgResetTokenNotFound indicates that no reset token matches the presented value.
	MsgResetTokenNotFound = "Reset token not found."

	// MsgResetTokenExpired indicates that the presented reset token is past its validity window.
	MsgResetTokenExpired = "Password reset token has expired."

	// MsgEmailSendFailure indicates that the outbound notification channel failed.
	MsgEmailSendFailure = "Error sending email."

	// MsgRegisterSuccess confirms a completed registration.
	MsgRegisterSuccess = "New user successfully registered."

	// MsgInternalServerError provides a generic server error message.
	MsgInternalServerError = "An internal server error occurred"

	// MsgRequestBodyTooLarge indicates that the request payload exceeds size limits.
	MsgRequestBodyTooLarge = "Request body too large"

	// MsgEmptyRequestBody indicates that a request body was expected but not provided.
	MsgEmptyRequestBody = "Request body must not be empty"

	// MsgMalformedJSON indicates that the request body contains invalid JSON.
	MsgMalformedJSON = "Request body contains malformed JSON"

	// MsgResourceNotFound indicates that the requested resource does not exist.
	MsgResourceNotFound = "The requested resource could not be found"

	// MsgMethodNotAllowed indicates an unsupported HTTP method.
	MsgMethodNotAllowed = "Method not allowed"
)

// Password Rule Messages define the exact, ordered messages produced by password
// strength validation. Only the first violated rule is ever reported. The wording
// (including spelling) is part of the external contract and must not be changed.
const (
	// MsgPasswordTooShort is reported for passwords shorter than MinPasswordLength.
	MsgPasswordTooShort = "Password must be 8 characters long."

	// MsgPasswordTooLong is reported for passwords over the bcrypt input limit.
	MsgPasswordTooLong = "Password must be at most 72 characters long."

	// MsgPasswordNoUppercase is reported for passwords without an uppercase letter.
	MsgPasswordNoUppercase = "Password must contain atleast 1 uppercase character."

	// MsgPasswordNoLowercase is reported for passwords without a lowercase letter.
	MsgPasswordNoLowercase = "Password must contain atleast 1 lowercase character."

	// MsgPasswordNoDigit is reported for passwords without a digit.
	MsgPasswordNoDigit = "Password must contain atlease 1 digit."

	// MsgPasswordNoSpecial is reported for passwords without a special character.
	MsgPasswordNoSpecial = "Password must contain atleast 1 special character"
)
