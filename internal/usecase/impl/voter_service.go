package impl

import (
	"context"
	"log/slog"

	deliverycontext "voterdesk/internal/delivery/context"
	"voterdesk/internal/domain/access"
	"voterdesk/internal/domain/entity"
	domainerrors "voterdesk/internal/domain/errors"
	"voterdesk/internal/domain/repository"
	"voterdesk/internal/domain/service"
	"voterdesk/internal/domain/voterset"
	"voterdesk/internal/errors"
	"voterdesk/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// voterService implements the VoterUsecase interface.
type voterService struct {
	txManager repository.TransactionManager
	validator service.StructValidator
	logger    *slog.Logger
}

type VoterServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Validator service.StructValidator
	Logger    *slog.Logger
}

// NewVoterService is the constructor for voterService.
func NewVoterService(params VoterServiceParams) usecase.VoterUsecase {
	return &voterService{
		txManager: params.TxManager,
		validator: params.Validator,
		logger:    params.Logger,
	}
}

func (srv *voterService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// execute runs fn in a transaction tagged with the profile as requester.
func (srv *voterService) execute(ctx context.Context, profile *entity.Profile, fn func(ctx context.Context, voterRepo repository.VoterRepository) error) error {
	if profile == nil {
		return domainerrors.ErrNoSession
	}

	ctx = access.WithRequester(ctx, access.RequesterOf(profile))

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return fn(ctx, repoFactory.VoterRepo())
	})
}

// List returns the records visible to profile, newest first.
func (srv *voterService) List(ctx context.Context, profile *entity.Profile) ([]*entity.VoterRecord, error) {
	var records []*entity.VoterRecord

	err := srv.execute(ctx, profile, func(ctx context.Context, voterRepo repository.VoterRepository) error {
		var err error
		records, err = voterRepo.List(ctx, repository.VoterQuery{OwnerID: access.OwnerFilter(profile)})

		return err
	})
	if err != nil {
		return nil, srv.fail(ctx, "list", err)
	}

	if err := discardIfStale(ctx); err != nil {
		return nil, err
	}

	return access.Apply(profile, records), nil
}

// Find is List narrowed by search term and field criteria.
func (srv *voterService) Find(ctx context.Context, profile *entity.Profile, filter usecase.VoterFilter) ([]*entity.VoterRecord, error) {
	records, err := srv.List(ctx, profile)
	if err != nil {
		return nil, err
	}

	return voterset.ComposeFilters(records, filter.Term, filter.Criteria), nil
}

func (srv *voterService) Get(ctx context.Context, profile *entity.Profile, id uuid.UUID) (*entity.VoterRecord, error) {
	var record *entity.VoterRecord

	err := srv.execute(ctx, profile, func(ctx context.Context, voterRepo repository.VoterRepository) error {
		if err := authorize(ctx, voterRepo, profile, id); err != nil {
			return err
		}

		var err error
		record, err = voterRepo.FindByID(ctx, id)

		return err
	})
	if err != nil {
		return nil, srv.fail(ctx, "get", err)
	}

	if err := discardIfStale(ctx); err != nil {
		return nil, err
	}

	return record, nil
}

// Create stores a new record owned by profile. Invalid drafts never reach the store.
func (srv *voterService) Create(ctx context.Context, profile *entity.Profile, draft *entity.VoterDraft) (*entity.VoterRecord, error) {
	if profile == nil {
		return nil, domainerrors.ErrNoSession
	}

	draft.Normalize()
	if err := srv.validator.Struct(draft); err != nil {
		return nil, err
	}

	record := entity.NewVoterRecord(profile.ID, draft)

	err := srv.execute(ctx, profile, func(ctx context.Context, voterRepo repository.VoterRepository) error {
		return voterRepo.Create(ctx, record)
	})
	if err != nil {
		return nil, srv.fail(ctx, "create", err)
	}

	srv.log(ctx).Info("Voter created", slog.Any("voter_id", record.ID), slog.Any("owner_id", record.OwnerID))

	return record, nil
}

// Update replaces the draft fields of a record profile may modify. Ownership
// is checked before the draft is validated.
func (srv *voterService) Update(ctx context.Context, profile *entity.Profile, id uuid.UUID, draft *entity.VoterDraft) (*entity.VoterRecord, error) {
	if profile == nil {
		return nil, domainerrors.ErrNoSession
	}

	draft.Normalize()

	var record *entity.VoterRecord

	err := srv.execute(ctx, profile, func(ctx context.Context, voterRepo repository.VoterRepository) error {
		if err := authorize(ctx, voterRepo, profile, id); err != nil {
			return err
		}

		if err := srv.validator.Struct(draft); err != nil {
			return err
		}

		var err error
		if record, err = voterRepo.FindByID(ctx, id); err != nil {
			return err
		}

		record.Apply(draft)

		return voterRepo.Update(ctx, record)
	})
	if err != nil {
		return nil, srv.fail(ctx, "update", err)
	}

	srv.log(ctx).Info("Voter updated", slog.Any("voter_id", id))

	return record, nil
}

// Delete removes a record profile may modify. Callers confirm beforehand.
func (srv *voterService) Delete(ctx context.Context, profile *entity.Profile, id uuid.UUID) error {
	err := srv.execute(ctx, profile, func(ctx context.Context, voterRepo repository.VoterRepository) error {
		if err := authorize(ctx, voterRepo, profile, id); err != nil {
			return err
		}

		return voterRepo.Delete(ctx, id)
	})
	if err != nil {
		return srv.fail(ctx, "delete", err)
	}

	srv.log(ctx).Info("Voter deleted", slog.Any("voter_id", id))

	return nil
}

// authorize separates a missing record from one outside the profile's scope.
func authorize(ctx context.Context, voterRepo repository.VoterRepository, profile *entity.Profile, id uuid.UUID) error {
	ownerID, err := voterRepo.OwnerOf(ctx, id)
	if err != nil {
		return err
	}

	if !access.ScopePredicate(profile)(&entity.VoterRecord{ID: id, OwnerID: ownerID}) {
		return domainerrors.ErrForbidden
	}

	return nil
}

// fail maps repository sentinels onto application errors and logs the failure.
// A store call aborted by a session change reports the session change.
func (srv *voterService) fail(ctx context.Context, operation string, err error) error {
	if cause := context.Cause(ctx); errors.Is(cause, domainerrors.ErrSessionChanged) {
		srv.log(ctx).Info("Voter operation abandoned after session change", slog.String("operation", operation))

		return cause
	}

	var appErr domainerrors.AppError
	switch {
	case errors.Is(err, repository.ErrVoterNotFound):
		err = errors.Wrap(domainerrors.ErrVoterNotFound, operation)
	case errors.Is(err, repository.ErrRequesterMissing):
		err = errors.Wrap(domainerrors.ErrNoSession, operation)
	case errors.As(err, &appErr):
		err = errors.Wrapf(err, "voter %s failed", operation)
	default:
		err = errors.WithStack(domainerrors.NewDatabaseExecuteError(err, "voter "+operation+" failed"))
	}

	srv.log(ctx).Warn("Voter operation failed", slog.String("operation", operation), slog.Any("error", err))

	return err
}

// discardIfStale reports whether the caller stopped waiting for this result,
// most often because its session ended while the store was answering.
func discardIfStale(ctx context.Context) error {
	if ctx.Err() == nil {
		return nil
	}

	if cause := context.Cause(ctx); errors.Is(cause, domainerrors.ErrSessionChanged) {
		return cause
	}

	return errors.WithStack(ctx.Err())
}
