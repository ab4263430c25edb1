// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Identity is an authenticated principal. It is created at registration and never mutated afterwards.
type Identity struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Credential is the email/password pair used to sign an identity in.
type Credential struct {
	ID           uuid.UUID // The unique ID for this credential record.
	IdentityID   uuid.UUID // Links the credential to its Identity.
	Email        string    // Normalized (lower-cased) login email.
	PasswordHash string    // bcrypt hash of the password.
	CreatedAt    time.Time
}

// RefreshToken represents a live session. Deleting it ends the session.
type RefreshToken struct {
	ID         uuid.UUID // The unique ID for this refresh token record.
	IdentityID uuid.UUID // Links this session to its Identity.
	TokenHash  string    // SHA-256 hash of the raw refresh token.
	ExpiresAt  time.Time // When the token stops being accepted.
	CreatedAt  time.Time // When the session was opened (sign-in).
}
