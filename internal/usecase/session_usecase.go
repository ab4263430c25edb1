package usecase

import (
	"context"

	"voterdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionUsecase resolves who is calling and lets callers follow session changes.
type SessionUsecase interface {
	// CurrentIdentity validates accessToken and returns its identity. Absent,
	// invalid or revoked sessions fail with ErrNoSession.
	CurrentIdentity(ctx context.Context, accessToken string) (*entity.Identity, error)

	// CurrentSession is CurrentIdentity plus the resolved profile. Profile is
	// nil when the identity has none.
	CurrentSession(ctx context.Context, accessToken string) (*entity.Session, error)

	// OnIdentityChange calls fn for each session transition of identityID until
	// unsubscribe is called. unsubscribe is idempotent.
	OnIdentityChange(identityID uuid.UUID, fn func(entity.SessionEvent)) (unsubscribe func())
}
