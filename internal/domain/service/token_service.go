package service

import (
	"time"

	"voterdesk/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims are the validated contents of an access or refresh token.
type Claims struct {
	IdentityID uuid.UUID
	Role       entity.Role
	Type       string
	jwt.RegisteredClaims
}

// TokenService issues and validates JWTs.
type TokenService interface {
	// GenerateTokens creates an access/refresh pair for an identity.
	GenerateTokens(identityID uuid.UUID, role entity.Role) (accessToken string, refreshToken string, err error)

	// ValidateToken parses tokenString and checks signature, expiry and type.
	ValidateToken(tokenString, tokenType string) (*Claims, error)

	// HashToken returns the value stored for a refresh token.
	HashToken(token string) string

	GetRefreshTokenDuration() time.Duration
}
