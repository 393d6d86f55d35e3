package constants

import "time"

// Server Timeouts
const (
	DefaultReadTimeout     = 5 * time.Second
	DefaultWriteTimeout    = 10 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
	DefaultIdleTimeout     = 120 * time.Second
)

// Database Timeouts
const (
	DBConnectionTimeout   = 10 * time.Second
	DBHealthCheckTimeout  = 5 * time.Second
	DBConnMaxLifetime     = 1 * time.Hour
	DBConnMaxIdleTime     = 30 * time.Minute
	DBMaintenanceInterval = 1 * time.Hour
)

// Authentication Timeouts
const (
	// DefaultSessionTokenExpiry bounds the lifetime of signed session tokens.
	DefaultSessionTokenExpiry = 24 * time.Hour

	// ResetTokenTTL is the fixed validity window for password reset tokens.
	ResetTokenTTL = 1 * time.Hour
)
