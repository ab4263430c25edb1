package access

import (
	"context"

	"voterdesk/internal/domain/entity"

	"github.com/google/uuid"
)

type requesterKey struct{}

// Requester identifies who a store operation runs on behalf of. The store
// enforces its own ownership policy from it, independently of ScopePredicate.
type Requester struct {
	ID   uuid.UUID
	Role entity.Role
}

// IsAdministrator reports whether the requester bypasses the owner restriction.
func (r Requester) IsAdministrator() bool {
	return r.Role == entity.RoleAdministrator
}

// RequesterOf builds the store-side requester from a profile.
func RequesterOf(profile *entity.Profile) Requester {
	if profile == nil {
		return Requester{}
	}

	return Requester{ID: profile.ID, Role: profile.Role}
}

// WithRequester attaches the requester to ctx for the persistence layer.
func WithRequester(ctx context.Context, requester Requester) context.Context {
	return context.WithValue(ctx, requesterKey{}, requester)
}

// RequesterFrom returns the requester carried by ctx, if any.
func RequesterFrom(ctx context.Context) (Requester, bool) {
	requester, ok := ctx.Value(requesterKey{}).(Requester)

	return requester, ok
}
