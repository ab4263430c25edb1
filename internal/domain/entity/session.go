package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is the explicit per-request session context. It is built from a
// validated access token and passed down to the services that need it.
type Session struct {
	Identity  *Identity
	Profile   *Profile
	ExpiresAt time.Time // access token expiry
}

// SessionEventKind describes a session transition.
type SessionEventKind string

const (
	SessionSignedIn  SessionEventKind = "signed_in"
	SessionSignedOut SessionEventKind = "signed_out"
	SessionRefreshed SessionEventKind = "refreshed"
)

// SessionEvent is broadcast whenever an identity's session changes.
type SessionEvent struct {
	Kind       SessionEventKind `json:"kind"`
	IdentityID uuid.UUID        `json:"identity_id"`
	OccurredAt time.Time        `json:"occurred_at"`
}

// Ends reports whether the event terminates the identity's session.
func (e SessionEvent) Ends() bool {
	return e.Kind == SessionSignedOut
}
