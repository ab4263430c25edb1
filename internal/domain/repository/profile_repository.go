package repository

import (
	"context"
	"errors"

	"voterdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when an identity has no profile row.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository persists the identity-to-role binding.
type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.Profile) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
}
