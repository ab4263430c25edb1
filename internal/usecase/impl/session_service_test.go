package impl

import (
	"context"
	"testing"
	"time"

	"voterdesk/internal/domain/entity"
	domainerrors "voterdesk/internal/domain/errors"
	"voterdesk/internal/domain/repository"
	"voterdesk/internal/domain/service"
	"voterdesk/internal/errors"
	mockRepo "voterdesk/internal/mocks/repository"
	mockService "voterdesk/internal/mocks/service"
	"voterdesk/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionServiceFixtures struct {
	service      usecase.SessionUsecase
	txManager    *mockRepo.MockTransactionManager
	tokenService *mockService.MockTokenService
	sessionBus   *mockService.MockSessionBus
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	fx := sessionServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		tokenService: mockService.NewMockTokenService(t),
		sessionBus:   mockService.NewMockSessionBus(t),
	}
	fx.service = NewSessionService(SessionServiceParams{
		TxManager:    fx.txManager,
		TokenService: fx.tokenService,
		SessionBus:   fx.sessionBus,
		Logger:       newDiscardLogger(),
	})

	return fx
}

func accessClaims(identityID uuid.UUID, expiresAt time.Time) *service.Claims {
	return &service.Claims{
		IdentityID: identityID,
		Role:       entity.RoleStandardUser,
		Type:       service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
}

func TestSessionService_CurrentSession_Success(t *testing.T) {
	fx := createTestSessionService(t)
	identityID := uuid.New()
	expiresAt := time.Now().Add(15 * time.Minute).Truncate(time.Second)
	identity := &entity.Identity{ID: identityID, Email: "alice@example.com"}
	profile := &entity.Profile{ID: identityID, Role: entity.RoleStandardUser}

	fx.tokenService.EXPECT().ValidateToken("access", service.TokenTypeAccess).Return(accessClaims(identityID, expiresAt), nil)
	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		identityRepo := mockRepo.NewMockIdentityRepository(t)
		refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().IdentityRepo().Return(identityRepo)
		factory.EXPECT().RefreshTokenRepo().Return(refreshRepo)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		identityRepo.EXPECT().FindByID(mock.Anything, identityID).Return(identity, nil)
		refreshRepo.EXPECT().CountActiveByIdentity(mock.Anything, identityID).Return(1, nil)
		profileRepo.EXPECT().FindByID(mock.Anything, identityID).Return(profile, nil)
	})

	session, err := fx.service.CurrentSession(context.Background(), "access")

	require.NoError(t, err)
	assert.Equal(t, identity, session.Identity)
	assert.Equal(t, profile, session.Profile)
	assert.True(t, expiresAt.Equal(session.ExpiresAt))
}

func TestSessionService_CurrentSession_WithoutProfile(t *testing.T) {
	fx := createTestSessionService(t)
	identityID := uuid.New()
	identity := &entity.Identity{ID: identityID, Email: "orphan@example.com"}

	fx.tokenService.EXPECT().ValidateToken("access", service.TokenTypeAccess).Return(accessClaims(identityID, time.Now().Add(time.Minute)), nil)
	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		identityRepo := mockRepo.NewMockIdentityRepository(t)
		refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().IdentityRepo().Return(identityRepo)
		factory.EXPECT().RefreshTokenRepo().Return(refreshRepo)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		identityRepo.EXPECT().FindByID(mock.Anything, identityID).Return(identity, nil)
		refreshRepo.EXPECT().CountActiveByIdentity(mock.Anything, identityID).Return(1, nil)
		profileRepo.EXPECT().FindByID(mock.Anything, identityID).Return(nil, repository.ErrProfileNotFound)
	})

	session, err := fx.service.CurrentSession(context.Background(), "access")

	require.NoError(t, err)
	assert.Equal(t, identity, session.Identity)
	assert.Nil(t, session.Profile)
}

func TestSessionService_CurrentSession_ProfileStoreFailure(t *testing.T) {
	fx := createTestSessionService(t)
	identityID := uuid.New()
	storeErr := errors.New("connection reset")

	fx.tokenService.EXPECT().ValidateToken("access", service.TokenTypeAccess).Return(accessClaims(identityID, time.Now().Add(time.Minute)), nil)
	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		identityRepo := mockRepo.NewMockIdentityRepository(t)
		refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
		profileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().IdentityRepo().Return(identityRepo)
		factory.EXPECT().RefreshTokenRepo().Return(refreshRepo)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		identityRepo.EXPECT().FindByID(mock.Anything, identityID).Return(&entity.Identity{ID: identityID}, nil)
		refreshRepo.EXPECT().CountActiveByIdentity(mock.Anything, identityID).Return(1, nil)
		profileRepo.EXPECT().FindByID(mock.Anything, identityID).Return(nil, storeErr)
	})

	_, err := fx.service.CurrentSession(context.Background(), "access")

	assert.ErrorIs(t, err, storeErr)
}

func TestSessionService_CurrentIdentity_SkipsProfile(t *testing.T) {
	fx := createTestSessionService(t)
	identityID := uuid.New()
	identity := &entity.Identity{ID: identityID}

	fx.tokenService.EXPECT().ValidateToken("access", service.TokenTypeAccess).Return(accessClaims(identityID, time.Now().Add(time.Minute)), nil)
	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		identityRepo := mockRepo.NewMockIdentityRepository(t)
		refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
		factory.EXPECT().IdentityRepo().Return(identityRepo)
		factory.EXPECT().RefreshTokenRepo().Return(refreshRepo)
		identityRepo.EXPECT().FindByID(mock.Anything, identityID).Return(identity, nil)
		refreshRepo.EXPECT().CountActiveByIdentity(mock.Anything, identityID).Return(2, nil)
	})

	got, err := fx.service.CurrentIdentity(context.Background(), "access")

	require.NoError(t, err)
	assert.Equal(t, identity, got)
}

func TestSessionService_NoSession(t *testing.T) {
	t.Run("blank token", func(t *testing.T) {
		fx := createTestSessionService(t)

		_, err := fx.service.CurrentIdentity(context.Background(), "   ")

		assert.ErrorIs(t, err, domainerrors.ErrNoSession)
	})

	t.Run("rejected token", func(t *testing.T) {
		fx := createTestSessionService(t)
		fx.tokenService.EXPECT().ValidateToken("expired", service.TokenTypeAccess).Return(nil, domainerrors.ErrTokenExpired)

		_, err := fx.service.CurrentSession(context.Background(), "expired")

		assert.ErrorIs(t, err, domainerrors.ErrNoSession)
	})

	t.Run("signed out everywhere", func(t *testing.T) {
		fx := createTestSessionService(t)
		identityID := uuid.New()

		fx.tokenService.EXPECT().ValidateToken("access", service.TokenTypeAccess).Return(accessClaims(identityID, time.Now().Add(time.Minute)), nil)
		expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			identityRepo := mockRepo.NewMockIdentityRepository(t)
			refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
			factory.EXPECT().IdentityRepo().Return(identityRepo)
			factory.EXPECT().RefreshTokenRepo().Return(refreshRepo)
			identityRepo.EXPECT().FindByID(mock.Anything, identityID).Return(&entity.Identity{ID: identityID}, nil)
			refreshRepo.EXPECT().CountActiveByIdentity(mock.Anything, identityID).Return(0, nil)
		})

		_, err := fx.service.CurrentSession(context.Background(), "access")

		assert.ErrorIs(t, err, domainerrors.ErrNoSession)
	})

	t.Run("identity removed", func(t *testing.T) {
		fx := createTestSessionService(t)
		identityID := uuid.New()

		fx.tokenService.EXPECT().ValidateToken("access", service.TokenTypeAccess).Return(accessClaims(identityID, time.Now().Add(time.Minute)), nil)
		expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			identityRepo := mockRepo.NewMockIdentityRepository(t)
			factory.EXPECT().IdentityRepo().Return(identityRepo)
			identityRepo.EXPECT().FindByID(mock.Anything, identityID).Return(nil, repository.ErrIdentityNotFound)
		})

		_, err := fx.service.CurrentIdentity(context.Background(), "access")

		assert.ErrorIs(t, err, domainerrors.ErrNoSession)
	})
}

func TestSessionService_OnIdentityChange(t *testing.T) {
	fx := createTestSessionService(t)
	identityID := uuid.New()
	unsubscribed := false

	var delivered []entity.SessionEvent
	fx.sessionBus.EXPECT().
		Subscribe(identityID, mock.Anything).
		RunAndReturn(func(_ uuid.UUID, fn func(entity.SessionEvent)) func() {
			fn(entity.SessionEvent{Kind: entity.SessionSignedOut, IdentityID: identityID})

			return func() { unsubscribed = true }
		})

	unsubscribe := fx.service.OnIdentityChange(identityID, func(event entity.SessionEvent) {
		delivered = append(delivered, event)
	})
	unsubscribe()

	require.Len(t, delivered, 1)
	assert.True(t, delivered[0].Ends())
	assert.True(t, unsubscribed)
}
