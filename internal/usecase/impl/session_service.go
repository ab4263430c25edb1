package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "voterdesk/internal/delivery/context"
	"voterdesk/internal/domain/entity"
	domainerrors "voterdesk/internal/domain/errors"
	"voterdesk/internal/domain/repository"
	"voterdesk/internal/domain/service"
	"voterdesk/internal/errors"
	"voterdesk/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	txManager    repository.TransactionManager
	tokenService service.TokenService
	sessionBus   service.SessionBus
	logger       *slog.Logger
}

type SessionServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	TokenService service.TokenService
	SessionBus   service.SessionBus
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		txManager:    params.TxManager,
		tokenService: params.TokenService,
		sessionBus:   params.SessionBus,
		logger:       params.Logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *sessionService) CurrentIdentity(ctx context.Context, accessToken string) (*entity.Identity, error) {
	session, err := srv.resolve(ctx, accessToken, false)
	if err != nil {
		return nil, err
	}

	return session.Identity, nil
}

func (srv *sessionService) CurrentSession(ctx context.Context, accessToken string) (*entity.Session, error) {
	return srv.resolve(ctx, accessToken, true)
}

// resolve turns an access token into a session. The identity must still hold
// at least one live refresh token, so a sign-out ends every access token too.
func (srv *sessionService) resolve(ctx context.Context, accessToken string, withProfile bool) (*entity.Session, error) {
	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		return nil, domainerrors.ErrNoSession
	}

	claims, err := srv.tokenService.ValidateToken(accessToken, service.TokenTypeAccess)
	if err != nil {
		srv.log(ctx).Debug("Access token rejected", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrNoSession, err.Error())
	}

	session := &entity.Session{}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		identity, err := repoFactory.IdentityRepo().FindByID(ctx, claims.IdentityID)
		if errors.Is(err, repository.ErrIdentityNotFound) {
			return domainerrors.ErrNoSession
		}
		if err != nil {
			return errors.Wrap(err, "failed to find identity")
		}

		active, err := repoFactory.RefreshTokenRepo().CountActiveByIdentity(ctx, identity.ID)
		if err != nil {
			return errors.Wrap(err, "failed to count active sessions")
		}
		if active == 0 {
			return domainerrors.ErrNoSession
		}
		session.Identity = identity

		if !withProfile {
			return nil
		}

		// An identity without a profile still has a session; RequireProfile
		// guards the routes that need one.
		session.Profile, err = loadProfile(ctx, repoFactory, identity.ID)
		if errors.Is(err, domainerrors.ErrProfileNotFound) {
			return nil
		}

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve session")
	}

	return session, nil
}

func (srv *sessionService) OnIdentityChange(identityID uuid.UUID, fn func(entity.SessionEvent)) func() {
	return srv.sessionBus.Subscribe(identityID, fn)
}
