package impl

import (
	"context"
	"testing"
	"time"

	"voterdesk/config"
	"voterdesk/internal/domain/entity"
	domainerrors "voterdesk/internal/domain/errors"
	"voterdesk/internal/domain/repository"
	"voterdesk/internal/domain/service"
	"voterdesk/internal/errors"
	"voterdesk/internal/infra/validation"
	mockRepo "voterdesk/internal/mocks/repository"
	mockService "voterdesk/internal/mocks/service"
	"voterdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
	sessionBus   *mockService.MockSessionBus
}

func createTestAuthService(t *testing.T, authConfig *config.AuthConfig) authServiceFixtures {
	if authConfig.PasswordMinLength == 0 {
		authConfig.PasswordMinLength = 6
	}

	fx := authServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		hasher:       mockService.NewMockPasswordHasher(t),
		tokenService: mockService.NewMockTokenService(t),
		sessionBus:   mockService.NewMockSessionBus(t),
	}
	fx.service = NewAuthService(AuthServiceParams{
		TxManager:    fx.txManager,
		Hasher:       fx.hasher,
		TokenService: fx.tokenService,
		Validator:    validation.New(),
		SessionBus:   fx.sessionBus,
		Config:       &config.Config{Auth: authConfig},
		Logger:       newDiscardLogger(),
	})

	return fx
}

// registrationRepos wires one transaction's repositories for SignUp.
type registrationRepos struct {
	identity *mockRepo.MockIdentityRepository
	auth     *mockRepo.MockAuthRepository
	profile  *mockRepo.MockProfileRepository
}

func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, setup func(factory *mockRepo.MockRepositoryFactory)) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		}).
		Once()
}

func newRegistrationRepos(t *testing.T, factory *mockRepo.MockRepositoryFactory) registrationRepos {
	repos := registrationRepos{
		identity: mockRepo.NewMockIdentityRepository(t),
		auth:     mockRepo.NewMockAuthRepository(t),
		profile:  mockRepo.NewMockProfileRepository(t),
	}
	factory.EXPECT().IdentityRepo().Return(repos.identity).Maybe()
	factory.EXPECT().AuthRepo().Return(repos.auth).Maybe()
	factory.EXPECT().ProfileRepo().Return(repos.profile).Maybe()

	return repos
}

func TestAuthService_SignUp_Success(t *testing.T) {
	fx := createTestAuthService(t, &config.AuthConfig{})
	identityID := uuid.New()

	fx.hasher.EXPECT().Hash("secret123").Return("hashed", nil)
	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repos := newRegistrationRepos(t, factory)
		repos.identity.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(identity *entity.Identity) bool {
				return identity.Email == "alice@example.com"
			})).
			Run(func(_ context.Context, identity *entity.Identity) { identity.ID = identityID }).
			Return(nil)
		repos.auth.EXPECT().
			CreateCredential(mock.Anything, mock.MatchedBy(func(credential *entity.Credential) bool {
				return credential.IdentityID == identityID && credential.PasswordHash == "hashed"
			})).
			Return(nil)
		repos.profile.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(profile *entity.Profile) bool {
				return profile.ID == identityID && profile.Role == entity.RoleStandardUser
			})).
			Return(nil)
	})

	output, err := fx.service.SignUp(context.Background(), &usecase.SignUpInput{
		Email:    "  Alice@Example.com ",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, identityID, output.Identity.ID)
	assert.Equal(t, identityID, output.Profile.ID)
	assert.Equal(t, entity.RoleStandardUser, output.Profile.Role)
}

func TestAuthService_SignUp_ProfileFailureRollsBack(t *testing.T) {
	fx := createTestAuthService(t, &config.AuthConfig{})

	fx.hasher.EXPECT().Hash("secret123").Return("hashed", nil)
	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repos := newRegistrationRepos(t, factory)
		repos.identity.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
		repos.auth.EXPECT().CreateCredential(mock.Anything, mock.Anything).Return(nil)
		repos.profile.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("connection reset"))
	})

	output, err := fx.service.SignUp(context.Background(), &usecase.SignUpInput{
		Email:    "alice@example.com",
		Password: "secret123",
	})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRegistrationFailed)
}

func TestAuthService_SignUp_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t, &config.AuthConfig{})

	fx.hasher.EXPECT().Hash("secret123").Return("hashed", nil)
	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repos := newRegistrationRepos(t, factory)
		repos.identity.EXPECT().Create(mock.Anything, mock.Anything).Return(repository.ErrIdentityAlreadyExists)
	})

	_, err := fx.service.SignUp(context.Background(), &usecase.SignUpInput{
		Email:    "alice@example.com",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, domainerrors.ErrIdentityAlreadyExists)
}

func TestAuthService_SignUp_RejectsInput(t *testing.T) {
	tests := []struct {
		name    string
		input   *usecase.SignUpInput
		wantErr error
	}{
		{
			name:    "malformed email",
			input:   &usecase.SignUpInput{Email: "not-an-email", Password: "secret123"},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "short password",
			input:   &usecase.SignUpInput{Email: "alice@example.com", Password: "abc"},
			wantErr: domainerrors.ErrPasswordTooShort,
		},
		{
			name:    "unknown role",
			input:   &usecase.SignUpInput{Email: "alice@example.com", Password: "secret123", Role: "superuser"},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "administrator self-registration",
			input:   &usecase.SignUpInput{Email: "alice@example.com", Password: "secret123", Role: entity.RoleAdministrator},
			wantErr: domainerrors.ErrAdminRegistrationDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t, &config.AuthConfig{})

			_, err := fx.service.SignUp(context.Background(), tt.input)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_SignUp_BootstrapAdministrator(t *testing.T) {
	fx := createTestAuthService(t, &config.AuthConfig{BootstrapAdmins: []string{"Boss@Example.com"}})

	fx.hasher.EXPECT().Hash("secret123").Return("hashed", nil)
	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		repos := newRegistrationRepos(t, factory)
		repos.identity.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
		repos.auth.EXPECT().CreateCredential(mock.Anything, mock.Anything).Return(nil)
		repos.profile.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(profile *entity.Profile) bool {
				return profile.Role == entity.RoleAdministrator
			})).
			Return(nil)
	})

	output, err := fx.service.SignUp(context.Background(), &usecase.SignUpInput{
		Email:    "boss@example.com",
		Password: "secret123",
		Role:     entity.RoleAdministrator,
	})

	require.NoError(t, err)
	assert.True(t, output.Profile.IsAdministrator())
}

func TestAuthService_SignIn_Success(t *testing.T) {
	fx := createTestAuthService(t, &config.AuthConfig{MaxActiveSessions: 3})
	identityID := uuid.New()
	profile := &entity.Profile{ID: identityID, Email: "alice@example.com", Role: entity.RoleStandardUser}

	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		authRepo := mockRepo.NewMockAuthRepository(t)
		factory.EXPECT().AuthRepo().Return(authRepo)
		authRepo.EXPECT().FindCredentialByEmail(mock.Anything, "alice@example.com").
			Return(&entity.Credential{IdentityID: identityID, Email: "alice@example.com", PasswordHash: "hashed"}, nil)
	})
	fx.hasher.EXPECT().Check("secret123", "hashed").Return(true)
	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		factory.EXPECT().RefreshTokenRepo().Return(refreshRepo)
		profileRepo.EXPECT().FindByID(mock.Anything, identityID).Return(profile, nil)
		refreshRepo.EXPECT().CountActiveByIdentity(mock.Anything, identityID).Return(1, nil)
		refreshRepo.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(token *entity.RefreshToken) bool {
				return token.IdentityID == identityID && token.TokenHash == "refresh-hash"
			})).
			Return(nil)
	})
	fx.tokenService.EXPECT().GenerateTokens(identityID, entity.RoleStandardUser).Return("access", "refresh", nil)
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
	fx.sessionBus.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(event entity.SessionEvent) bool {
			return event.Kind == entity.SessionSignedIn && event.IdentityID == identityID
		})).
		Return(nil)

	output, err := fx.service.SignIn(context.Background(), &usecase.SignInInput{
		Email:    "Alice@example.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, profile, output.Profile)
	assert.False(t, output.ExpiresAt.IsZero())
}

func TestAuthService_SignIn_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t, &config.AuthConfig{})

	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		authRepo := mockRepo.NewMockAuthRepository(t)
		factory.EXPECT().AuthRepo().Return(authRepo)
		authRepo.EXPECT().FindCredentialByEmail(mock.Anything, "alice@example.com").
			Return(&entity.Credential{IdentityID: uuid.New(), PasswordHash: "hashed"}, nil)
	})
	fx.hasher.EXPECT().Check("wrong-password", "hashed").Return(false)

	_, err := fx.service.SignIn(context.Background(), &usecase.SignInInput{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_SignIn_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t, &config.AuthConfig{})

	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		authRepo := mockRepo.NewMockAuthRepository(t)
		factory.EXPECT().AuthRepo().Return(authRepo)
		authRepo.EXPECT().FindCredentialByEmail(mock.Anything, "ghost@example.com").
			Return(nil, repository.ErrCredentialNotFound)
	})

	_, err := fx.service.SignIn(context.Background(), &usecase.SignInInput{
		Email:    "ghost@example.com",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_SignIn_SessionLimit(t *testing.T) {
	fx := createTestAuthService(t, &config.AuthConfig{MaxActiveSessions: 2})
	identityID := uuid.New()

	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		authRepo := mockRepo.NewMockAuthRepository(t)
		factory.EXPECT().AuthRepo().Return(authRepo)
		authRepo.EXPECT().FindCredentialByEmail(mock.Anything, "alice@example.com").
			Return(&entity.Credential{IdentityID: identityID, PasswordHash: "hashed"}, nil)
	})
	fx.hasher.EXPECT().Check("secret123", "hashed").Return(true)
	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		factory.EXPECT().RefreshTokenRepo().Return(refreshRepo)
		profileRepo.EXPECT().FindByID(mock.Anything, identityID).
			Return(&entity.Profile{ID: identityID, Role: entity.RoleStandardUser}, nil)
		refreshRepo.EXPECT().CountActiveByIdentity(mock.Anything, identityID).Return(2, nil)
	})

	_, err := fx.service.SignIn(context.Background(), &usecase.SignInInput{
		Email:    "alice@example.com",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, domainerrors.ErrSessionLimitExceeded)
}

func TestAuthService_Refresh_RotatesToken(t *testing.T) {
	fx := createTestAuthService(t, &config.AuthConfig{})
	identityID := uuid.New()
	profile := &entity.Profile{ID: identityID, Role: entity.RoleAdministrator}

	fx.tokenService.EXPECT().ValidateToken("old-refresh", service.TokenTypeRefresh).
		Return(&service.Claims{IdentityID: identityID, Role: entity.RoleAdministrator, Type: service.TokenTypeRefresh}, nil)
	fx.tokenService.EXPECT().HashToken("old-refresh").Return("old-hash")
	fx.tokenService.EXPECT().GenerateTokens(identityID, entity.RoleAdministrator).Return("new-access", "new-refresh", nil)
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(time.Hour)
	fx.tokenService.EXPECT().HashToken("new-refresh").Return("new-hash")
	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		profileRepo := mockRepo.NewMockProfileRepository(t)
		refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		factory.EXPECT().RefreshTokenRepo().Return(refreshRepo)
		refreshRepo.EXPECT().FindByHash(mock.Anything, "old-hash").
			Return(&entity.RefreshToken{IdentityID: identityID, TokenHash: "old-hash"}, nil)
		refreshRepo.EXPECT().DeleteByHash(mock.Anything, "old-hash").Return(nil)
		profileRepo.EXPECT().FindByID(mock.Anything, identityID).Return(profile, nil)
		refreshRepo.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(token *entity.RefreshToken) bool {
				return token.TokenHash == "new-hash"
			})).
			Return(nil)
	})
	fx.sessionBus.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(event entity.SessionEvent) bool {
			return event.Kind == entity.SessionRefreshed
		})).
		Return(nil)

	output, err := fx.service.Refresh(context.Background(), &usecase.RefreshInput{RefreshToken: "old-refresh"})

	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, "new-refresh", output.RefreshToken)
}

func TestAuthService_Refresh_RevokedToken(t *testing.T) {
	fx := createTestAuthService(t, &config.AuthConfig{})
	identityID := uuid.New()

	fx.tokenService.EXPECT().ValidateToken("revoked", service.TokenTypeRefresh).
		Return(&service.Claims{IdentityID: identityID, Type: service.TokenTypeRefresh}, nil)
	fx.tokenService.EXPECT().HashToken("revoked").Return("revoked-hash")
	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
		factory.EXPECT().RefreshTokenRepo().Return(refreshRepo)
		refreshRepo.EXPECT().FindByHash(mock.Anything, "revoked-hash").Return(nil, repository.ErrRefreshTokenNotFound)
	})

	_, err := fx.service.Refresh(context.Background(), &usecase.RefreshInput{RefreshToken: "revoked"})

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_Refresh_InvalidSignature(t *testing.T) {
	fx := createTestAuthService(t, &config.AuthConfig{})

	fx.tokenService.EXPECT().ValidateToken("forged", service.TokenTypeRefresh).Return(nil, domainerrors.ErrInvalidToken)

	_, err := fx.service.Refresh(context.Background(), &usecase.RefreshInput{RefreshToken: "forged"})

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_SignOut_PublishesSignedOut(t *testing.T) {
	fx := createTestAuthService(t, &config.AuthConfig{})
	identityID := uuid.New()

	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
		factory.EXPECT().RefreshTokenRepo().Return(refreshRepo)
		refreshRepo.EXPECT().DeleteByIdentity(mock.Anything, identityID).Return(nil)
	})
	fx.sessionBus.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(event entity.SessionEvent) bool {
			return event.Ends() && event.IdentityID == identityID
		})).
		Return(nil)

	require.NoError(t, fx.service.SignOut(context.Background(), identityID))
}

func TestAuthService_SignOut_StoreFailure(t *testing.T) {
	fx := createTestAuthService(t, &config.AuthConfig{})
	identityID := uuid.New()

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("connection refused"))

	err := fx.service.SignOut(context.Background(), identityID)

	require.Error(t, err)
	fx.sessionBus.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}
