package usecase

import (
	"context"

	"voterdesk/internal/domain/entity"
	"voterdesk/internal/domain/voterset"

	"github.com/google/uuid"
)

// VoterFilter narrows a scoped list: free-text search, then field equality.
type VoterFilter struct {
	Term     string
	Criteria voterset.Criteria
}

// VoterUsecase is scoped record access. Every call runs on behalf of profile:
// administrators reach every record, standard users only their own.
type VoterUsecase interface {
	// List returns the visible records, newest first.
	List(ctx context.Context, profile *entity.Profile) ([]*entity.VoterRecord, error)

	// Find is List followed by the filter.
	Find(ctx context.Context, profile *entity.Profile, filter VoterFilter) ([]*entity.VoterRecord, error)

	Get(ctx context.Context, profile *entity.Profile, id uuid.UUID) (*entity.VoterRecord, error)

	// Create validates draft before touching the store and always sets the
	// owner to profile.
	Create(ctx context.Context, profile *entity.Profile, draft *entity.VoterDraft) (*entity.VoterRecord, error)

	// Update replaces the draft fields; owner and creation time are kept.
	Update(ctx context.Context, profile *entity.Profile, id uuid.UUID, draft *entity.VoterDraft) (*entity.VoterRecord, error)

	Delete(ctx context.Context, profile *entity.Profile, id uuid.UUID) error
}
