// Package constants provides shared constant values used throughout the application.
//
// The general_const.go file defines general-purpose constants related to
// routing. These constants ensure consistent URL structure throughout the
// application.
package constants

// Base Routes define the root URL paths for different parts of the API.
const (
	// UserBasePath is the root path prefix for all user account endpoints.
	UserBasePath = "/user"

	// HealthPath is the endpoint for health checks and system status.
	HealthPath = "/health"
)
