package usecase

import (
	"context"

	"voterdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase resolves the role binding of an identity.
type ProfileUsecase interface {
	// ResolveProfile fails with ErrProfileNotFound when the identity has no
	// profile; a role is never assumed.
	ResolveProfile(ctx context.Context, identityID uuid.UUID) (*entity.Profile, error)
}
