package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"voterdesk/internal/delivery/api/response"
	deliverycontext "voterdesk/internal/delivery/context"
	"voterdesk/internal/domain/entity"
	domainerrors "voterdesk/internal/domain/errors"
	"voterdesk/internal/errors"
	"voterdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultKeepAlive = 25 * time.Second

type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// SessionHandler exposes the caller's session, profile and session changes.
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
	keepAlive time.Duration
	now       func() time.Time
}

func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		profileUC: params.ProfileUC,
		logger:    params.Logger,
		keepAlive: defaultKeepAlive,
		now:       time.Now,
	}
}

type sessionResponse struct {
	Identity  *entity.Identity `json:"identity"`
	Profile   *entity.Profile  `json:"profile"`
	ExpiresAt time.Time        `json:"expires_at"`
}

func (h *SessionHandler) Current(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, sessionResponse{
		Identity:  session.Identity,
		Profile:   session.Profile,
		ExpiresAt: session.ExpiresAt,
	})
}

func (h *SessionHandler) Profile(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}

	profile, err := h.profileUC.ResolveProfile(c.Request().Context(), session.Identity.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// Events streams the caller's session changes as Server-Sent Events until
// the client disconnects or the session ends.
func (h *SessionHandler) Events(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}
	identityID := session.Identity.ID
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	events := make(chan entity.SessionEvent, 8)
	unsubscribe := h.sessionUC.OnIdentityChange(identityID, func(event entity.SessionEvent) {
		select {
		case events <- event:
		default:
			logger.Warn("Session event stream is lagging, dropping event", slog.String("kind", string(event.Kind)))
		}
	})
	defer unsubscribe()

	res := c.Response()
	// The stream outlives http.timeouts.writeTimeout.
	if err := http.NewResponseController(res.Writer).SetWriteDeadline(time.Time{}); err != nil {
		logger.Debug("Event stream keeps the server write timeout", slog.Any("error", err))
	}

	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	for {
		select {
		case event := <-events:
			if err := writeEvent(res, event); err != nil {
				return nil
			}
			if event.Ends() {
				return nil
			}

		case <-ctx.Done():
			// A sign-out cancels the request before the event reaches us.
			if errors.Is(context.Cause(ctx), domainerrors.ErrSessionChanged) {
				_ = writeEvent(res, entity.SessionEvent{Kind: entity.SessionSignedOut, IdentityID: identityID, OccurredAt: h.now()})
			}

			return nil

		case <-ticker.C:
			if _, err := fmt.Fprint(res, ": keep-alive\n\n"); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}

func writeEvent(res *echo.Response, event entity.SessionEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	if _, err := fmt.Fprintf(res, "event: %s\ndata: %s\n\n", event.Kind, payload); err != nil {
		return errors.WithStack(err)
	}
	res.Flush()

	return nil
}
