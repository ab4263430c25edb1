package handler

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"voterdesk/internal/domain/entity"
	domainerrors "voterdesk/internal/domain/errors"
	mockUsecase "voterdesk/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionHandlerFixture struct {
	handler   *SessionHandler
	sessionUC *mockUsecase.MockSessionUsecase
	profileUC *mockUsecase.MockProfileUsecase
}

func newTestSessionHandler(t *testing.T) sessionHandlerFixture {
	sessionUC := mockUsecase.NewMockSessionUsecase(t)
	profileUC := mockUsecase.NewMockProfileUsecase(t)

	h := NewSessionHandler(SessionHandlerParams{SessionUC: sessionUC, ProfileUC: profileUC, Logger: newDiscardLogger()})
	h.keepAlive = time.Hour
	h.now = func() time.Time { return time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC) }

	return sessionHandlerFixture{handler: h, sessionUC: sessionUC, profileUC: profileUC}
}

// subscribe captures the callback registered by the handler.
func (f sessionHandlerFixture) subscribe(identityID uuid.UUID) (<-chan func(entity.SessionEvent), <-chan struct{}) {
	callbacks := make(chan func(entity.SessionEvent), 1)
	unsubscribed := make(chan struct{})

	f.sessionUC.EXPECT().
		OnIdentityChange(identityID, mock.Anything).
		RunAndReturn(func(_ uuid.UUID, fn func(entity.SessionEvent)) func() {
			callbacks <- fn

			return func() { close(unsubscribed) }
		}).
		Once()

	return callbacks, unsubscribed
}

func TestSessionHandler_Current(t *testing.T) {
	fixture := newTestSessionHandler(t)
	session := standardSession()

	c, rec := newContext(echo.New(), http.MethodGet, "/api/v1/session", "", session)

	require.NoError(t, fixture.handler.Current(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"expires_at":"2024-03-01T10:00:00Z"`)
	assert.Contains(t, rec.Body.String(), `"role":"standard_user"`)
}

func TestSessionHandler_Profile(t *testing.T) {
	t.Run("resolved", func(t *testing.T) {
		fixture := newTestSessionHandler(t)
		session := standardSession()
		fixture.profileUC.EXPECT().ResolveProfile(mock.Anything, session.Identity.ID).Return(session.Profile, nil).Once()

		c, rec := newContext(echo.New(), http.MethodGet, "/api/v1/profile", "", session)

		require.NoError(t, fixture.handler.Profile(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing profile", func(t *testing.T) {
		fixture := newTestSessionHandler(t)
		session := standardSession()
		fixture.profileUC.EXPECT().ResolveProfile(mock.Anything, session.Identity.ID).Return(nil, domainerrors.ErrProfileNotFound).Once()

		c, _ := newContext(echo.New(), http.MethodGet, "/api/v1/profile", "", session)

		assert.ErrorIs(t, fixture.handler.Profile(c), domainerrors.ErrProfileNotFound)
	})
}

func TestSessionHandler_Events_StreamsUntilSignOut(t *testing.T) {
	fixture := newTestSessionHandler(t)
	session := standardSession()
	callbacks, unsubscribed := fixture.subscribe(session.Identity.ID)

	c, rec := newContext(echo.New(), http.MethodGet, "/api/v1/session/events", "", session)

	done := make(chan error, 1)
	go func() { done <- fixture.handler.Events(c) }()

	notify := <-callbacks
	notify(entity.SessionEvent{Kind: entity.SessionRefreshed, IdentityID: session.Identity.ID})
	notify(entity.SessionEvent{Kind: entity.SessionSignedOut, IdentityID: session.Identity.ID})

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("event stream did not end after sign-out")
	}
	<-unsubscribed

	assert.Equal(t, "text/event-stream", rec.Header().Get(echo.HeaderContentType))
	body := rec.Body.String()
	assert.Contains(t, body, "event: refreshed\ndata: {")
	assert.Contains(t, body, "event: signed_out\ndata: {")
	assert.Less(t, strings.Index(body, "event: refreshed"), strings.Index(body, "event: signed_out"))
}

func TestSessionHandler_Events_SessionChangedCancellation(t *testing.T) {
	fixture := newTestSessionHandler(t)
	session := standardSession()
	callbacks, unsubscribed := fixture.subscribe(session.Identity.ID)

	ctx, cancel := context.WithCancelCause(context.Background())
	c, rec := newContext(echo.New(), http.MethodGet, "/api/v1/session/events", "", session)
	c.SetRequest(c.Request().WithContext(ctx))

	done := make(chan error, 1)
	go func() { done <- fixture.handler.Events(c) }()

	<-callbacks
	cancel(domainerrors.ErrSessionChanged)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("event stream did not end after cancellation")
	}
	<-unsubscribed

	assert.Contains(t, rec.Body.String(), `event: signed_out`)
	assert.Contains(t, rec.Body.String(), `"occurred_at":"2024-03-01T09:30:00Z"`)
}

func TestSessionHandler_Events_ClientDisconnect(t *testing.T) {
	fixture := newTestSessionHandler(t)
	session := standardSession()
	callbacks, unsubscribed := fixture.subscribe(session.Identity.ID)

	ctx, cancel := context.WithCancel(context.Background())
	c, rec := newContext(echo.New(), http.MethodGet, "/api/v1/session/events", "", session)
	c.SetRequest(c.Request().WithContext(ctx))

	done := make(chan error, 1)
	go func() { done <- fixture.handler.Events(c) }()

	<-callbacks
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("event stream did not end after disconnect")
	}
	<-unsubscribed

	assert.NotContains(t, rec.Body.String(), "event:")
}

func TestSessionHandler_Events_LogsUnsupportedWriteDeadline(t *testing.T) {
	fixture := newTestSessionHandler(t)
	var logs bytes.Buffer
	fixture.handler.logger = slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	session := standardSession()
	callbacks, unsubscribed := fixture.subscribe(session.Identity.ID)

	// httptest.ResponseRecorder cannot clear the write deadline.
	c, _ := newContext(echo.New(), http.MethodGet, "/api/v1/session/events", "", session)

	done := make(chan error, 1)
	go func() { done <- fixture.handler.Events(c) }()

	notify := <-callbacks
	notify(entity.SessionEvent{Kind: entity.SessionSignedOut, IdentityID: session.Identity.ID})

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("event stream did not end after sign-out")
	}
	<-unsubscribed

	assert.Contains(t, logs.String(), "Event stream keeps the server write timeout")
	assert.Contains(t, logs.String(), "level=DEBUG")
}
