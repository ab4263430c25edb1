package impl

import (
	"context"
	"log/slog"

	deliverycontext "voterdesk/internal/delivery/context"
	"voterdesk/internal/domain/entity"
	"voterdesk/internal/domain/repository"
	"voterdesk/internal/errors"
	"voterdesk/internal/usecase"

	"github.com/google/uuid"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ResolveProfile loads the single profile of an identity.
func (srv *profileService) ResolveProfile(ctx context.Context, identityID uuid.UUID) (*entity.Profile, error) {
	var profile *entity.Profile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		profile, err = loadProfile(ctx, repoFactory, identityID)

		return err
	})
	if err != nil {
		srv.log(ctx).Warn("Profile resolution failed", slog.Any("identity_id", identityID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to resolve profile")
	}

	return profile, nil
}
