package impl

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"time"

	"voterdesk/internal/domain/access"
	"voterdesk/internal/domain/entity"
	domainerrors "voterdesk/internal/domain/errors"
	"voterdesk/internal/domain/repository"
	"voterdesk/internal/errors"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func standardProfile() *entity.Profile {
	return &entity.Profile{ID: uuid.New(), Email: "agent@example.com", Role: entity.RoleStandardUser}
}

func adminProfile() *entity.Profile {
	return &entity.Profile{ID: uuid.New(), Email: "admin@example.com", Role: entity.RoleAdministrator}
}

func validDraft(name, commune string) *entity.VoterDraft {
	return &entity.VoterDraft{
		FullName:       name,
		Category:       entity.CategoryVoter,
		Gender:         entity.GenderFemale,
		Commune:        commune,
		Address:        "12 avenue du Marché",
		Phone1:         "+243810000000",
		Profession:     "Enseignante",
		PollingStation: "EP Kalamu 1",
		Leader:         "Mama Nsimba",
		HasVoted:       entity.VotedNo,
	}
}

// memoryVoterStore is an in-process VoterRepository enforcing the same owner
// policy as the PostgreSQL store. All records share one timestamp unless the
// clock is advanced, so ordering falls back to the insertion sequence.
type memoryVoterStore struct {
	records []*entity.VoterRecord
	seq     int64
	now     time.Time
	calls   int
}

func newMemoryVoterStore() *memoryVoterStore {
	return &memoryVoterStore{now: time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)}
}

func (s *memoryVoterStore) requester(ctx context.Context) (access.Requester, error) {
	s.calls++

	requester, ok := access.RequesterFrom(ctx)
	if !ok || requester.ID == uuid.Nil {
		return access.Requester{}, repository.ErrRequesterMissing
	}

	return requester, nil
}

func allowed(requester access.Requester, record *entity.VoterRecord) bool {
	return requester.IsAdministrator() || record.OwnerID == requester.ID
}

func (s *memoryVoterStore) find(id uuid.UUID) (int, *entity.VoterRecord) {
	for i, record := range s.records {
		if record.ID == id {
			return i, record
		}
	}

	return -1, nil
}

func (s *memoryVoterStore) Create(ctx context.Context, record *entity.VoterRecord) error {
	requester, err := s.requester(ctx)
	if err != nil {
		return err
	}
	if !allowed(requester, record) {
		return domainerrors.ErrForbidden
	}

	s.seq++
	record.ID = uuid.New()
	record.Sequence = s.seq
	record.CreatedAt = s.now
	record.UpdatedAt = s.now

	stored := *record
	s.records = append(s.records, &stored)

	return nil
}

func (s *memoryVoterStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.VoterRecord, error) {
	requester, err := s.requester(ctx)
	if err != nil {
		return nil, err
	}

	_, record := s.find(id)
	if record == nil || !allowed(requester, record) {
		return nil, repository.ErrVoterNotFound
	}

	found := *record

	return &found, nil
}

func (s *memoryVoterStore) OwnerOf(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	if _, err := s.requester(ctx); err != nil {
		return uuid.Nil, err
	}

	_, record := s.find(id)
	if record == nil {
		return uuid.Nil, repository.ErrVoterNotFound
	}

	return record.OwnerID, nil
}

func (s *memoryVoterStore) List(ctx context.Context, query repository.VoterQuery) ([]*entity.VoterRecord, error) {
	requester, err := s.requester(ctx)
	if err != nil {
		return nil, err
	}

	var result []*entity.VoterRecord
	for _, record := range s.records {
		if !allowed(requester, record) {
			continue
		}
		if query.OwnerID != nil && record.OwnerID != *query.OwnerID {
			continue
		}

		found := *record
		result = append(result, &found)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}

		return result[i].Sequence > result[j].Sequence
	})

	return result, nil
}

func (s *memoryVoterStore) Update(ctx context.Context, record *entity.VoterRecord) error {
	requester, err := s.requester(ctx)
	if err != nil {
		return err
	}

	i, stored := s.find(record.ID)
	if stored == nil || !allowed(requester, stored) {
		return repository.ErrVoterNotFound
	}

	updated := *record
	updated.OwnerID = stored.OwnerID
	updated.CreatedAt = stored.CreatedAt
	updated.Sequence = stored.Sequence
	updated.UpdatedAt = s.now
	s.records[i] = &updated
	*record = updated

	return nil
}

func (s *memoryVoterStore) Delete(ctx context.Context, id uuid.UUID) error {
	requester, err := s.requester(ctx)
	if err != nil {
		return err
	}

	i, stored := s.find(id)
	if stored == nil || !allowed(requester, stored) {
		return repository.ErrVoterNotFound
	}

	s.records = append(s.records[:i], s.records[i+1:]...)

	return nil
}

// memoryTxManager runs every unit of work directly against the memory store.
// Like the database, it refuses to begin once ctx is done. A non-nil
// unreachable is returned instead of running fn.
type memoryTxManager struct {
	voters      *memoryVoterStore
	unreachable error
}

func (m *memoryTxManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	if m.unreachable != nil {
		return errors.Wrap(m.unreachable, "failed to begin transaction")
	}

	return fn(&memoryFactory{voters: m.voters})
}

type memoryFactory struct {
	voters *memoryVoterStore
}

func (f *memoryFactory) IdentityRepo() repository.IdentityRepository         { return nil }
func (f *memoryFactory) AuthRepo() repository.AuthRepository                 { return nil }
func (f *memoryFactory) RefreshTokenRepo() repository.RefreshTokenRepository { return nil }
func (f *memoryFactory) ProfileRepo() repository.ProfileRepository           { return nil }
func (f *memoryFactory) VoterRepo() repository.VoterRepository               { return f.voters }
