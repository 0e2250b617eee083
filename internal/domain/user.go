// Package domain contains the core types and business rules for the catalog.
package domain

import "time"

// Role represents the user's permission level in the system.
type Role string

const (
	// RoleAdmin grants full administrative access, including book deletion.
	RoleAdmin Role = "admin"
	// RoleUser grants standard reader access.
	RoleUser Role = "user"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User represents an authenticated reader account.
type User struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"password_hash,omitempty"` // Stored hashed, filter from API responses
	DisplayName   string    `json:"display_name"`
	Role          Role      `json:"role"` // admin or user
	EmailVerified bool      `json:"email_verified"`
	// VerificationCode is the one-time code mailed out at registration.
	// Cleared once the email is verified.
	VerificationCode string `json:"verification_code,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// IsAdmin returns true if the user has administrative privileges.
// Safe to call on a nil user, which is never an admin.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Redacted returns a copy of the user safe for API responses.
func (u *User) Redacted() User {
	redacted := *u
	redacted.PasswordHash = ""
	redacted.VerificationCode = ""
	return redacted
}
