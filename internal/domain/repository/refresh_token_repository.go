package repository

import (
	"context"
	"errors"

	"voterdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRefreshTokenNotFound is returned when a refresh token is not found.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository stores live sessions.
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *entity.RefreshToken) error

	FindByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// DeleteByHash ends one session.
	DeleteByHash(ctx context.Context, tokenHash string) error

	// DeleteByIdentity ends every session of an identity.
	DeleteByIdentity(ctx context.Context, identityID uuid.UUID) error

	// CountActiveByIdentity returns the number of non-expired sessions.
	CountActiveByIdentity(ctx context.Context, identityID uuid.UUID) (int, error)
}
