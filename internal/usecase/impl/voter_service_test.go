package impl

import (
	"context"
	"net/http"
	"testing"
	"time"

	"voterdesk/internal/domain/entity"
	domainerrors "voterdesk/internal/domain/errors"
	"voterdesk/internal/domain/repository"
	"voterdesk/internal/domain/voterset"
	"voterdesk/internal/errors"
	"voterdesk/internal/infra/validation"
	mockRepo "voterdesk/internal/mocks/repository"
	"voterdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type voterServiceFixtures struct {
	service usecase.VoterUsecase
	store   *memoryVoterStore
}

func createTestVoterService() voterServiceFixtures {
	store := newMemoryVoterStore()

	return voterServiceFixtures{
		service: NewVoterService(VoterServiceParams{
			TxManager: &memoryTxManager{voters: store},
			Validator: validation.New(),
			Logger:    newDiscardLogger(),
		}),
		store: store,
	}
}

func (fx voterServiceFixtures) mustCreate(t *testing.T, profile *entity.Profile, name, commune string) *entity.VoterRecord {
	t.Helper()

	record, err := fx.service.Create(context.Background(), profile, validDraft(name, commune))
	require.NoError(t, err)

	return record
}

func TestVoterService_List_ScopedByRole(t *testing.T) {
	fx := createTestVoterService()
	ownerA := standardProfile()
	ownerB := standardProfile()
	admin := adminProfile()

	first := fx.mustCreate(t, ownerA, "Kabila Marie", "Gombe")
	second := fx.mustCreate(t, ownerA, "Tshala Paul", "Limete")
	third := fx.mustCreate(t, ownerB, "Mbuyi Anne", "Gombe")

	ctx := context.Background()

	mine, err := fx.service.List(ctx, ownerA)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	// Same timestamp: newest insertion first.
	assert.Equal(t, second.ID, mine[0].ID)
	assert.Equal(t, first.ID, mine[1].ID)
	for _, record := range mine {
		assert.Equal(t, ownerA.ID, record.OwnerID)
	}

	all, err := fx.service.List(ctx, admin)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, third.ID, all[0].ID)

	communes := voterset.AggregateCounts(all, entity.FieldCommune)
	assert.Equal(t, 2, communes.Get("Gombe"))
	assert.Equal(t, 1, communes.Get("Limete"))
}

func TestVoterService_List_WithoutProfile(t *testing.T) {
	fx := createTestVoterService()

	_, err := fx.service.List(context.Background(), nil)

	assert.ErrorIs(t, err, domainerrors.ErrNoSession)
	assert.Zero(t, fx.store.calls)
}

func TestVoterService_Find_ComposesFilters(t *testing.T) {
	fx := createTestVoterService()
	admin := adminProfile()

	fx.mustCreate(t, admin, "Kabila Marie", "Gombe")
	fx.mustCreate(t, admin, "Tshala Paul", "Limete")
	fx.mustCreate(t, admin, "Mbuyi Anne", "Gombe")

	records, err := fx.service.Find(context.Background(), admin, usecase.VoterFilter{
		Term:     "MBUYI",
		Criteria: voterset.Criteria{entity.FieldCommune: "Gombe"},
	})

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Mbuyi Anne", records[0].FullName)
}

func TestVoterService_Create_OverridesOwnerAndCreatedAt(t *testing.T) {
	fx := createTestVoterService()
	profile := standardProfile()
	foreignOwner := uuid.New()

	draft := validDraft("Kabila Marie", "Gombe")
	draft.OwnerID = &foreignOwner

	record, err := fx.service.Create(context.Background(), profile, draft)

	require.NoError(t, err)
	assert.Equal(t, profile.ID, record.OwnerID)
	assert.NotEqual(t, uuid.Nil, record.ID)
	assert.False(t, record.CreatedAt.IsZero())
}

func TestVoterService_Create_RoundTrip(t *testing.T) {
	fx := createTestVoterService()
	profile := standardProfile()
	ctx := context.Background()

	draft := validDraft("  Kabila Marie ", "Gombe")
	draft.Phone2 = "+243990000000"
	draft.Notes = "Disponible le samedi"

	created, err := fx.service.Create(ctx, profile, draft)
	require.NoError(t, err)

	listed, err := fx.service.List(ctx, profile)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	got := listed[0]
	assert.Equal(t, created, got)
	assert.Equal(t, "Kabila Marie", got.FullName)
	assert.Equal(t, "+243990000000", got.Phone2)
	assert.Equal(t, "Disponible le samedi", got.Notes)
}

func TestVoterService_List_CreatedAtNonIncreasing(t *testing.T) {
	fx := createTestVoterService()
	profile := standardProfile()

	fx.mustCreate(t, profile, "Kabila Marie", "Gombe")
	fx.store.now = fx.store.now.Add(time.Minute)
	fx.mustCreate(t, profile, "Tshala Paul", "Limete")
	fx.mustCreate(t, profile, "Mbuyi Anne", "Gombe")

	records, err := fx.service.List(context.Background(), profile)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "Mbuyi Anne", records[0].FullName)
	assert.Equal(t, "Tshala Paul", records[1].FullName)
	assert.Equal(t, "Kabila Marie", records[2].FullName)
	for i := 1; i < len(records); i++ {
		assert.False(t, records[i].CreatedAt.After(records[i-1].CreatedAt))
	}
}

func TestVoterService_Create_ValidationHappensBeforeStore(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewVoterService(VoterServiceParams{
		TxManager: txManager,
		Validator: validation.New(),
		Logger:    newDiscardLogger(),
	})

	draft := validDraft("Kabila Marie", "Gombe")
	draft.Phone1 = "   "

	_, err := service.Create(context.Background(), standardProfile(), draft)

	validationErr, ok := errors.Find[*domainerrors.ValidationError](err)
	require.True(t, ok)
	assert.Equal(t, "required", validationErr.Fields()["phone1"])
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	txManager.AssertNotCalled(t, "Execute")
}

func TestVoterService_Create_RejectsUnknownEnumValues(t *testing.T) {
	fx := createTestVoterService()

	draft := validDraft("Kabila Marie", "Gombe")
	draft.Category = "Observer"
	draft.HasVoted = "Maybe"

	_, err := fx.service.Create(context.Background(), standardProfile(), draft)

	validationErr, ok := errors.Find[*domainerrors.ValidationError](err)
	require.True(t, ok)
	assert.Contains(t, validationErr.Fields(), "category")
	assert.Contains(t, validationErr.Fields(), "has_voted")
	assert.Zero(t, fx.store.calls)
}

func TestVoterService_Update_Ownership(t *testing.T) {
	fx := createTestVoterService()
	owner := standardProfile()
	stranger := standardProfile()
	admin := adminProfile()
	ctx := context.Background()

	record := fx.mustCreate(t, owner, "Kabila Marie", "Gombe")

	changed := validDraft("Kabila Marie", "Limete")
	changed.HasVoted = entity.VotedYes

	_, err := fx.service.Update(ctx, stranger, record.ID, changed)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	updated, err := fx.service.Update(ctx, admin, record.ID, changed)
	require.NoError(t, err)
	assert.Equal(t, "Limete", updated.Commune)
	assert.Equal(t, entity.VotedYes, updated.HasVoted)
	assert.Equal(t, owner.ID, updated.OwnerID)
	assert.Equal(t, record.CreatedAt, updated.CreatedAt)
}

func TestVoterService_Update_KeepsImmutableFields(t *testing.T) {
	fx := createTestVoterService()
	owner := standardProfile()
	ctx := context.Background()

	record := fx.mustCreate(t, owner, "Kabila Marie", "Gombe")

	otherOwner := uuid.New()
	otherTime := record.CreatedAt.Add(-48 * time.Hour)
	changed := validDraft("Kabila Marie-Claire", "Gombe")
	changed.OwnerID = &otherOwner
	changed.CreatedAt = &otherTime

	updated, err := fx.service.Update(ctx, owner, record.ID, changed)

	require.NoError(t, err)
	assert.Equal(t, "Kabila Marie-Claire", updated.FullName)
	assert.Equal(t, owner.ID, updated.OwnerID)
	assert.Equal(t, record.CreatedAt, updated.CreatedAt)
}

func TestVoterService_Update_NotFound(t *testing.T) {
	fx := createTestVoterService()

	_, err := fx.service.Update(context.Background(), adminProfile(), uuid.New(), validDraft("Kabila Marie", "Gombe"))

	assert.ErrorIs(t, err, domainerrors.ErrVoterNotFound)
}

func TestVoterService_Delete_Ownership(t *testing.T) {
	fx := createTestVoterService()
	owner := standardProfile()
	stranger := standardProfile()
	admin := adminProfile()
	ctx := context.Background()

	record := fx.mustCreate(t, owner, "Kabila Marie", "Gombe")

	err := fx.service.Delete(ctx, stranger, record.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	require.NoError(t, fx.service.Delete(ctx, admin, record.ID))

	_, err = fx.service.Get(ctx, owner, record.ID)
	assert.ErrorIs(t, err, domainerrors.ErrVoterNotFound)
}

func TestVoterService_Get(t *testing.T) {
	fx := createTestVoterService()
	owner := standardProfile()
	ctx := context.Background()

	record := fx.mustCreate(t, owner, "Kabila Marie", "Gombe")

	got, err := fx.service.Get(ctx, owner, record.ID)
	require.NoError(t, err)
	assert.Equal(t, record, got)

	_, err = fx.service.Get(ctx, standardProfile(), record.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = fx.service.Get(ctx, owner, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrVoterNotFound)
}

func TestVoterService_List_DiscardsResultAfterSessionChange(t *testing.T) {
	fx := createTestVoterService()
	profile := standardProfile()
	fx.mustCreate(t, profile, "Kabila Marie", "Gombe")

	ctx, cancel := context.WithCancelCause(context.Background())
	cancel(domainerrors.ErrSessionChanged)

	records, err := fx.service.List(ctx, profile)

	assert.Nil(t, records)
	assert.ErrorIs(t, err, domainerrors.ErrSessionChanged)
}

func TestVoterService_List_DiscardsResultWhenSessionChangesMidRead(t *testing.T) {
	store := newMemoryVoterStore()
	profile := standardProfile()
	ctx, cancel := context.WithCancelCause(context.Background())
	defer cancel(nil)

	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			err := fn(&memoryFactory{voters: store})
			cancel(domainerrors.ErrSessionChanged)

			return err
		}).
		Once()

	service := NewVoterService(VoterServiceParams{
		TxManager: txManager,
		Validator: validation.New(),
		Logger:    newDiscardLogger(),
	})

	records, err := service.List(ctx, profile)

	assert.Nil(t, records)
	assert.ErrorIs(t, err, domainerrors.ErrSessionChanged)
}

func TestVoterService_StoreAbortedBySessionChange(t *testing.T) {
	fx := createTestVoterService()
	owner := standardProfile()
	record := fx.mustCreate(t, owner, "Kabila Marie", "Gombe")

	ctx, cancel := context.WithCancelCause(context.Background())
	cancel(domainerrors.ErrSessionChanged)

	operations := map[string]func() error{
		"list": func() error {
			_, err := fx.service.List(ctx, owner)
			return err
		},
		"get": func() error {
			_, err := fx.service.Get(ctx, owner, record.ID)
			return err
		},
		"update": func() error {
			_, err := fx.service.Update(ctx, owner, record.ID, validDraft("Kabila Marie", "Limete"))
			return err
		},
		"delete": func() error {
			return fx.service.Delete(ctx, owner, record.ID)
		},
	}

	for name, operation := range operations {
		t.Run(name, func(t *testing.T) {
			err := operation()

			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrSessionChanged)
			_, isStoreErr := errors.Find[*domainerrors.DatabaseExecuteError](err)
			assert.False(t, isStoreErr)
		})
	}
}

func TestVoterService_StoreFailureIsStoreError(t *testing.T) {
	fx := createTestVoterService()
	owner := standardProfile()
	record := fx.mustCreate(t, owner, "Kabila Marie", "Gombe")

	service := NewVoterService(VoterServiceParams{
		TxManager: &memoryTxManager{voters: fx.store, unreachable: errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")},
		Validator: validation.New(),
		Logger:    newDiscardLogger(),
	})
	ctx := context.Background()

	operations := map[string]func() error{
		"list": func() error {
			_, err := service.List(ctx, owner)
			return err
		},
		"get": func() error {
			_, err := service.Get(ctx, owner, record.ID)
			return err
		},
		"create": func() error {
			_, err := service.Create(ctx, owner, validDraft("Tshala Paul", "Limete"))
			return err
		},
		"update": func() error {
			_, err := service.Update(ctx, owner, record.ID, validDraft("Kabila Marie", "Limete"))
			return err
		},
		"delete": func() error {
			return service.Delete(ctx, owner, record.ID)
		},
	}

	for name, operation := range operations {
		t.Run(name, func(t *testing.T) {
			err := operation()

			appErr, ok := errors.Find[domainerrors.AppError](err)
			require.True(t, ok)
			assert.Equal(t, "STORE_ERROR", appErr.ErrorCode())
			assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
		})
	}
}

func TestVoterService_Update_AuthorizesBeforeValidating(t *testing.T) {
	fx := createTestVoterService()
	owner := standardProfile()
	ctx := context.Background()

	record := fx.mustCreate(t, owner, "Kabila Marie", "Gombe")

	invalid := validDraft("Kabila Marie", "Gombe")
	invalid.Phone1 = "   "

	_, err := fx.service.Update(ctx, standardProfile(), record.ID, invalid)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.NotErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.Update(ctx, owner, record.ID, invalid)
	validationErr, ok := errors.Find[*domainerrors.ValidationError](err)
	require.True(t, ok)
	assert.Equal(t, "required", validationErr.Fields()["phone1"])

	got, err := fx.service.Get(ctx, owner, record.ID)
	require.NoError(t, err)
	assert.Equal(t, record.Phone1, got.Phone1)
}
