package middleware

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "voterdesk/internal/delivery/context"
	"voterdesk/internal/domain/entity"
	domainerrors "voterdesk/internal/domain/errors"
	"voterdesk/internal/errors"
	"voterdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

type AuthMiddlewareParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// AuthMiddleware resolves the caller's session from a Bearer access token.
type AuthMiddleware struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// Authenticate stores the session on the echo context and ties the request
// context to it: if the identity signs out while the request is in flight,
// the context is cancelled with ErrSessionChanged.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if !strings.HasPrefix(header, bearerPrefix) {
			return domainerrors.ErrNoSession
		}

		session, err := m.sessionUC.CurrentSession(c.Request().Context(), strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			return errors.WithStack(err)
		}

		ctx, cancel := context.WithCancelCause(c.Request().Context())
		defer cancel(nil)

		unsubscribe := m.sessionUC.OnIdentityChange(session.Identity.ID, func(event entity.SessionEvent) {
			if event.Ends() {
				cancel(domainerrors.ErrSessionChanged)
			}
		})
		defer unsubscribe()

		logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.String("identity_id", session.Identity.ID.String()))
		ctx = deliverycontext.WithLogger(ctx, logger)

		deliverycontext.SetSession(c, session)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireProfile rejects sessions whose identity has no profile yet.
func (m *AuthMiddleware) RequireProfile(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, ok := deliverycontext.GetSession(c)
		if !ok {
			return domainerrors.ErrNoSession
		}
		if session.Profile == nil {
			return domainerrors.ErrProfileNotFound
		}

		return next(c)
	}
}
