package handler

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"time"

	deliverycontext "voterdesk/internal/delivery/context"
	"voterdesk/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func standardSession() *entity.Session {
	id := uuid.New()

	return &entity.Session{
		Identity:  &entity.Identity{ID: id, Email: "agent@example.com"},
		Profile:   &entity.Profile{ID: id, Email: "agent@example.com", Role: entity.RoleStandardUser},
		ExpiresAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

// newContext builds an echo context for target, optionally authenticated.
func newContext(e *echo.Echo, method, target, body string, session *entity.Session) (echo.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if session != nil {
		deliverycontext.SetSession(c, session)
	}

	return c, rec
}
