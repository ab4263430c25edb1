// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"voterdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignUpInput defines the data required to register a new identity.
type SignUpInput struct {
	Email    string      `json:"email" validate:"required,email,max=255"`
	Password string      `json:"password" validate:"required,max=72"`
	Role     entity.Role `json:"role,omitempty" validate:"omitempty,oneof=administrator standard_user"`
}

// SignInInput defines the data required to open a session.
type SignInInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshInput carries the refresh token to rotate.
type RefreshInput struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// --- Output DTOs ---

// SignUpOutput returns the identity and the profile created with it.
type SignUpOutput struct {
	Identity *entity.Identity `json:"identity"`
	Profile  *entity.Profile  `json:"profile"`
}

// TokenOutput returns a fresh token pair.
type TokenOutput struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	ExpiresAt    time.Time       `json:"expires_at"`
	Profile      *entity.Profile `json:"profile"`
}

// AuthUsecase is the authentication boundary: registration and session lifecycle.
type AuthUsecase interface {
	// SignUp writes identity, credential and profile atomically.
	SignUp(ctx context.Context, input *SignUpInput) (*SignUpOutput, error)

	SignIn(ctx context.Context, input *SignInInput) (*TokenOutput, error)

	// Refresh rotates the refresh token and issues a new access token.
	Refresh(ctx context.Context, input *RefreshInput) (*TokenOutput, error)

	// SignOut revokes every session of the identity and announces it.
	SignOut(ctx context.Context, identityID uuid.UUID) error
}
