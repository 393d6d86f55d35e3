package models

import (
	"time"
)

// User represents a registered account holder.
// It contains authentication information and core user attributes.
type User struct {
	ID           int64     `json:"id" db:"user_id"`
	Email        string    `json:"email" db:"email" validate:"required,email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// NewUser creates a new User instance with the given email and role.
// The password hash is populated later during registration.
func NewUser(email, role string) *User {
	now := time.Now()
	return &User{
		Email:     email,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// TableName returns the database table name for the User model.
func (u *User) TableName() string {
	return "users"
}

// Sanitize removes sensitive information from the User object when sending to clients.
func (u *User) Sanitize() *User {
	sanitized := *u
	sanitized.PasswordHash = ""
	return &sanitized
}

// UserRegistration represents the data required for user registration.
// The role is carried through unchanged; it is not validated beyond length.
type UserRegistration struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"omitempty,max=50"`
}

// UserCredentials represents the login credentials provided by a user.
type UserCredentials struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthenticatedUser is the response payload for a successful authentication.
type AuthenticatedUser struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Token string `json:"token"`
}
