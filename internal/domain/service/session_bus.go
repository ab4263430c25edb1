package service

import (
	"context"

	"voterdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionBus broadcasts session transitions to in-flight requests and
// event-stream clients.
type SessionBus interface {
	// Publish delivers event to every subscriber of event.IdentityID.
	Publish(ctx context.Context, event entity.SessionEvent) error

	// Subscribe registers fn for events of identityID. The returned function
	// removes the subscription and may be called more than once.
	Subscribe(identityID uuid.UUID, fn func(entity.SessionEvent)) (unsubscribe func())

	// Close releases any resources held by the bus
	Close() error
}
