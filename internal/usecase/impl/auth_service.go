// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"voterdesk/config"
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

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	validator    service.StructValidator
	sessionBus   service.SessionBus
	authConfig   *config.AuthConfig
	logger       *slog.Logger
	now          func() time.Time
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Validator    service.StructValidator
	SessionBus   service.SessionBus
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	authConfig := &config.AuthConfig{}
	if params.Config != nil && params.Config.Auth != nil {
		authConfig = params.Config.Auth
	}

	return &authService{
		txManager:    params.TxManager,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		validator:    params.Validator,
		sessionBus:   params.SessionBus,
		authConfig:   authConfig,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignUp registers an identity with its credential and profile in one transaction.
func (srv *authService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.SignUpOutput, error) {
	input.Email = normalizeEmail(input.Email)
	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}
	if utf8.RuneCountInString(input.Password) < srv.authConfig.PasswordMinLength {
		return nil, domainerrors.ErrPasswordTooShort.WithDetails("minimum length is " + strconv.Itoa(srv.authConfig.PasswordMinLength))
	}

	role, err := srv.grantedRole(input)
	if err != nil {
		srv.log(ctx).Warn("Administrator self-registration refused", slog.String("email", input.Email))

		return nil, err
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	identity := &entity.Identity{Email: input.Email}
	profile := &entity.Profile{Email: input.Email, Role: role}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.IdentityRepo().Create(ctx, identity); err != nil {
			return errors.Wrap(err, "failed to create identity")
		}

		credential := &entity.Credential{
			IdentityID:   identity.ID,
			Email:        input.Email,
			PasswordHash: passwordHash,
		}
		if err := repoFactory.AuthRepo().CreateCredential(ctx, credential); err != nil {
			return errors.Wrap(err, "failed to create credential")
		}

		profile.ID = identity.ID
		if err := repoFactory.ProfileRepo().Create(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to create profile")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		if errors.Is(err, repository.ErrIdentityAlreadyExists) {
			return nil, errors.Wrap(domainerrors.ErrIdentityAlreadyExists, "registration failed")
		}

		return nil, errors.Wrap(domainerrors.ErrRegistrationFailed, err.Error())
	}

	srv.log(ctx).Info("Identity registered", slog.Any("identity_id", identity.ID), slog.String("role", role.String()))

	return &usecase.SignUpOutput{Identity: identity, Profile: profile}, nil
}

// grantedRole decides the role stored for a registration request.
func (srv *authService) grantedRole(input *usecase.SignUpInput) (entity.Role, error) {
	switch input.Role {
	case "", entity.RoleStandardUser:
		return entity.RoleStandardUser, nil
	case entity.RoleAdministrator:
		if srv.authConfig.AllowAdminSelfRegistration || srv.authConfig.IsBootstrapAdmin(input.Email) {
			return entity.RoleAdministrator, nil
		}

		return "", domainerrors.ErrAdminRegistrationDenied
	default:
		return "", domainerrors.NewValidationError(map[string]string{"role": "oneof"})
	}
}

// SignIn checks the credential and opens a new session.
func (srv *authService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.TokenOutput, error) {
	input.Email = normalizeEmail(input.Email)
	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}

	var credential *entity.Credential
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var findErr error
		credential, findErr = repoFactory.AuthRepo().FindCredentialByEmail(ctx, input.Email)
		if errors.Is(findErr, repository.ErrCredentialNotFound) {
			return domainerrors.ErrInvalidCredentials
		}

		return findErr
	})
	if err != nil {
		srv.log(ctx).Warn("Sign-in failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "sign-in failed")
	}

	// bcrypt is CPU-bound; keep it outside any transaction.
	if !srv.hasher.Check(input.Password, credential.PasswordHash) {
		srv.log(ctx).Warn("Sign-in failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "sign-in failed")
	}

	var output *usecase.TokenOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profile, err := loadProfile(ctx, repoFactory, credential.IdentityID)
		if err != nil {
			return err
		}

		if srv.authConfig.MaxActiveSessions > 0 {
			active, err := repoFactory.RefreshTokenRepo().CountActiveByIdentity(ctx, credential.IdentityID)
			if err != nil {
				return errors.Wrap(err, "failed to count active sessions")
			}
			if active >= srv.authConfig.MaxActiveSessions {
				return domainerrors.ErrSessionLimitExceeded
			}
		}

		output, err = srv.issueTokens(ctx, repoFactory, profile)

		return err
	})
	if err != nil {
		srv.log(ctx).Warn("Sign-in failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "sign-in failed")
	}

	srv.announce(ctx, entity.SessionSignedIn, credential.IdentityID)
	srv.log(ctx).Debug("Signed in", slog.Any("identity_id", credential.IdentityID))

	return output, nil
}

// Refresh rotates the refresh token: the presented one is revoked and a new pair is issued.
func (srv *authService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.TokenOutput, error) {
	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}

	claims, err := srv.tokenService.ValidateToken(input.RefreshToken, service.TokenTypeRefresh)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)

	var output *usecase.TokenOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.RefreshTokenRepo()

		stored, err := refreshRepo.FindByHash(ctx, tokenHash)
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return domainerrors.ErrRefreshTokenInvalid
		}
		if err != nil {
			return errors.Wrap(err, "failed to find refresh token")
		}
		if stored.IdentityID != claims.IdentityID {
			return domainerrors.ErrRefreshTokenInvalid
		}

		if err := refreshRepo.DeleteByHash(ctx, tokenHash); err != nil {
			return errors.Wrap(err, "failed to revoke refresh token")
		}

		profile, err := loadProfile(ctx, repoFactory, stored.IdentityID)
		if err != nil {
			return err
		}

		output, err = srv.issueTokens(ctx, repoFactory, profile)

		return err
	})
	if err != nil {
		srv.log(ctx).Warn("Token refresh failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "token refresh failed")
	}

	srv.announce(ctx, entity.SessionRefreshed, claims.IdentityID)

	return output, nil
}

// SignOut revokes every session of the identity, then tells in-flight
// requests and event streams that the session ended.
func (srv *authService) SignOut(ctx context.Context, identityID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.RefreshTokenRepo().DeleteByIdentity(ctx, identityID)
	})
	if err != nil {
		srv.log(ctx).Error("Sign-out failed", slog.Any("identity_id", identityID), slog.Any("error", err))

		return errors.Wrap(err, "failed to revoke sessions")
	}

	srv.announce(ctx, entity.SessionSignedOut, identityID)
	srv.log(ctx).Info("Signed out", slog.Any("identity_id", identityID))

	return nil
}

func (srv *authService) issueTokens(ctx context.Context, repoFactory repository.RepositoryFactory, profile *entity.Profile) (*usecase.TokenOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(profile.ID, profile.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	expiresAt := srv.now().Add(srv.tokenService.GetRefreshTokenDuration())
	token := &entity.RefreshToken{
		IdentityID: profile.ID,
		TokenHash:  srv.tokenService.HashToken(refreshToken),
		ExpiresAt:  expiresAt,
	}
	if err := repoFactory.RefreshTokenRepo().Create(ctx, token); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	return &usecase.TokenOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
		Profile:      profile,
	}, nil
}

// announce publishes a session transition. Delivery failures are logged and
// never undo the transition itself.
func (srv *authService) announce(ctx context.Context, kind entity.SessionEventKind, identityID uuid.UUID) {
	event := entity.SessionEvent{Kind: kind, IdentityID: identityID, OccurredAt: srv.now()}
	if err := srv.sessionBus.Publish(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish session event", slog.String("kind", string(kind)), slog.Any("error", err))
	}
}

func loadProfile(ctx context.Context, repoFactory repository.RepositoryFactory, identityID uuid.UUID) (*entity.Profile, error) {
	profile, err := repoFactory.ProfileRepo().FindByID(ctx, identityID)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return nil, domainerrors.ErrProfileNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}
