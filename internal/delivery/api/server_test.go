package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"voterdesk/config"
	apimiddleware "voterdesk/internal/delivery/api/middleware"
	"voterdesk/internal/delivery/api/response"
	"voterdesk/internal/delivery/api/router"
	"voterdesk/internal/delivery/api/router/handler"
	"voterdesk/internal/domain/entity"
	domainerrors "voterdesk/internal/domain/errors"
	"voterdesk/internal/errors"
	"voterdesk/internal/infra/monitoring"
	"voterdesk/internal/infra/validation"
	mockUsecase "voterdesk/internal/mocks/usecase"
	"voterdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serverFixture struct {
	echo      *echo.Echo
	authUC    *mockUsecase.MockAuthUsecase
	sessionUC *mockUsecase.MockSessionUsecase
	voterUC   *mockUsecase.MockVoterUsecase
	session   *entity.Session
}

func newServerFixture(t *testing.T) serverFixture {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.Env.Debug = true
	cfg.HTTP.MaxRequestBodySize = "1KB"

	authUC := mockUsecase.NewMockAuthUsecase(t)
	sessionUC := mockUsecase.NewMockSessionUsecase(t)
	profileUC := mockUsecase.NewMockProfileUsecase(t)
	voterUC := mockUsecase.NewMockVoterUsecase(t)
	reportUC := mockUsecase.NewMockReportUsecase(t)

	e := NewEcho(ServerParams{
		Cfg:             cfg,
		Logger:          logger,
		Validator:       validation.New(),
		ErrorMiddleware: apimiddleware.NewErrorMiddleware(logger, &monitoring.Reporter{}),
		RouterParams: router.RouterParams{
			AuthHandler:    handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: authUC, Logger: logger}),
			SessionHandler: handler.NewSessionHandler(handler.SessionHandlerParams{SessionUC: sessionUC, ProfileUC: profileUC, Logger: logger}),
			VoterHandler:   handler.NewVoterHandler(handler.VoterHandlerParams{VoterUC: voterUC, Logger: logger}),
			ReportHandler:  handler.NewReportHandler(handler.ReportHandlerParams{ReportUC: reportUC, Logger: logger}),
			AuthMiddleware: apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{SessionUC: sessionUC, Logger: logger}),
			RateLimiter:    apimiddleware.NewRateLimiter(0.001, 2),
		},
	})

	id := uuid.New()

	return serverFixture{
		echo:      e,
		authUC:    authUC,
		sessionUC: sessionUC,
		voterUC:   voterUC,
		session: &entity.Session{
			Identity:  &entity.Identity{ID: id, Email: "agent@example.com"},
			Profile:   &entity.Profile{ID: id, Email: "agent@example.com", Role: entity.RoleStandardUser},
			ExpiresAt: time.Now().Add(15 * time.Minute),
		},
	}
}

// expectSession accepts token as a valid access token for the fixture session.
func (f serverFixture) expectSession(token string) {
	f.sessionUC.EXPECT().CurrentSession(mock.Anything, token).Return(f.session, nil).Once()
	f.sessionUC.EXPECT().OnIdentityChange(f.session.Identity.ID, mock.Anything).Return(func() {}).Once()
}

func (f serverFixture) do(method, target, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	require.NotNil(t, body.Meta)

	return body
}

func TestServer_HealthCheck(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestServer_VotersRequireSession(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(http.MethodGet, "/api/v1/voters", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeErrorBody(t, rec)
	assert.Equal(t, "NO_SESSION", body.Error.Code)
	assert.Equal(t, rec.Header().Get("X-Request-Id"), body.Meta.RequestID)
	f.voterUC.AssertNotCalled(t, "Find", mock.Anything, mock.Anything, mock.Anything)
}

func TestServer_ListVoters(t *testing.T) {
	f := newServerFixture(t)
	f.expectSession("access")

	record := &entity.VoterRecord{ID: uuid.New(), FullName: "Mbuyi Kalala", OwnerID: f.session.Identity.ID}
	f.voterUC.EXPECT().
		Find(mock.Anything, f.session.Profile, mock.MatchedBy(func(filter usecase.VoterFilter) bool {
			return filter.Term == "" && filter.Criteria[entity.FieldCommune] == "Gombe"
		})).
		Return([]*entity.VoterRecord{record}, nil).
		Once()

	rec := f.do(http.MethodGet, "/api/v1/voters?commune=Gombe", "access", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), record.ID.String())
}

func TestServer_SessionWithoutProfile(t *testing.T) {
	f := newServerFixture(t)
	f.session.Profile = nil
	f.sessionUC.EXPECT().CurrentSession(mock.Anything, "access").Return(f.session, nil).Times(2)
	f.sessionUC.EXPECT().OnIdentityChange(f.session.Identity.ID, mock.Anything).Return(func() {}).Times(2)

	rec := f.do(http.MethodGet, "/api/v1/session", "access", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"profile":null`)

	rec = f.do(http.MethodGet, "/api/v1/voters", "access", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PROFILE_NOT_FOUND", decodeErrorBody(t, rec).Error.Code)
	f.voterUC.AssertNotCalled(t, "Find", mock.Anything, mock.Anything, mock.Anything)
}

func TestServer_StoreFailure(t *testing.T) {
	f := newServerFixture(t)
	f.expectSession("access")

	f.voterUC.EXPECT().
		Find(mock.Anything, f.session.Profile, mock.Anything).
		Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "voter list failed")).
		Once()

	rec := f.do(http.MethodGet, "/api/v1/voters", "access", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "STORE_ERROR", decodeErrorBody(t, rec).Error.Code)
}

func TestServer_DeleteWithoutConfirmation(t *testing.T) {
	f := newServerFixture(t)
	f.expectSession("access")

	rec := f.do(http.MethodDelete, "/api/v1/voters/"+uuid.NewString(), "access", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "CONFIRMATION_REQUIRED", decodeErrorBody(t, rec).Error.Code)
}

func TestServer_ValidationDetails(t *testing.T) {
	f := newServerFixture(t)
	f.expectSession("access")

	f.voterUC.EXPECT().
		Create(mock.Anything, f.session.Profile, mock.Anything).
		Return(nil, domainerrors.NewValidationError(map[string]string{"phone1": "required"})).
		Once()

	rec := f.do(http.MethodPost, "/api/v1/voters", "access", `{"full_name":"Mbuyi Kalala"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeErrorBody(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Equal(t, map[string]any{"phone1": "required"}, body.Error.Details)
}

func TestServer_AuthRateLimit(t *testing.T) {
	f := newServerFixture(t)
	f.authUC.EXPECT().SignIn(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials).Times(2)

	payload := `{"email":"agent@example.com","password":"wrong"}`
	for range 2 {
		rec := f.do(http.MethodPost, "/auth/signin", "", payload)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}

	rec := f.do(http.MethodPost, "/auth/signin", "", payload)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "RATE_LIMITED", decodeErrorBody(t, rec).Error.Code)
	assert.Equal(t, "1", rec.Header().Get(echo.HeaderRetryAfter))
}

func TestServer_BodyLimit(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(http.MethodPost, "/auth/signup", "", `{"email":"`+strings.Repeat("a", 2048)+`@example.com"}`)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "HTTP_ERROR", decodeErrorBody(t, rec).Error.Code)
	f.authUC.AssertNotCalled(t, "SignUp", mock.Anything, mock.Anything)
}

func TestServer_UnknownRoute(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(http.MethodGet, "/nope", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", decodeErrorBody(t, rec).Error.Code)
}
