package repository

import (
	"context"
	"errors"

	"voterdesk/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrVoterNotFound is returned when no visible voter record matches the id.
	ErrVoterNotFound = errors.New("voter record not found")
	// ErrRequesterMissing is returned when a voter operation runs without a
	// requester in its context. The store refuses such calls.
	ErrRequesterMissing = errors.New("requester missing from context")
)

// VoterQuery is the filter declared by the caller. The store applies its own
// ownership policy on top of it.
type VoterQuery struct {
	// OwnerID restricts the result to one owner; nil means every owner the
	// requester may see.
	OwnerID *uuid.UUID
}

// VoterRepository persists voter records. Implementations order List results
// newest first by CreatedAt, then by descending insertion Sequence.
type VoterRepository interface {
	// Create inserts the record and fills ID, CreatedAt, UpdatedAt and Sequence.
	Create(ctx context.Context, record *entity.VoterRecord) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.VoterRecord, error)

	// OwnerOf returns the owner of any existing record, ignoring the ownership
	// policy, so callers can tell a missing record from a forbidden one.
	// Nothing but the owner is revealed.
	OwnerOf(ctx context.Context, id uuid.UUID) (uuid.UUID, error)

	List(ctx context.Context, query VoterQuery) ([]*entity.VoterRecord, error)

	// Update replaces the draft-controlled columns and refreshes UpdatedAt.
	// OwnerID and CreatedAt are never written.
	Update(ctx context.Context, record *entity.VoterRecord) error

	Delete(ctx context.Context, id uuid.UUID) error
}
