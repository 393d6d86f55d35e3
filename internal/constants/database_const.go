// Package constants provides shared constant values used throughout the application.
//
// The database_const.go file defines constants related to database structures,
// including table names and column names. Using these constants instead of
// string literals ensures consistent database access patterns and simplifies
// schema changes.
package constants

// Table Names define the names of database tables used in the application.
const (
	// TableUsers is the name of the table storing user account information.
	TableUsers = "users"

	// TableResetTokens is the name of the table storing password reset token hashes.
	TableResetTokens = "reset_tokens"
)

// Column Names define frequently referenced column names.
const (
	// ColumnEmail is the column storing a user's email address.
	ColumnEmail = "email"

	// ColumnPasswordHash is the column storing a user's hashed password.
	ColumnPasswordHash = "password_hash"
)
