package middleware

import (
	"log/slog"
	"net/http"

	"voterdesk/internal/delivery/api/response"
	deliverycontext "voterdesk/internal/delivery/context"
	domainerrors "voterdesk/internal/domain/errors"
	"voterdesk/internal/errors"
	"voterdesk/internal/infra/monitoring"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger   *slog.Logger
	reporter *monitoring.Reporter
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger, reporter *monitoring.Reporter) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger:   logger,
		reporter: reporter,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logAndReport(c, err)
		}

		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details(err, appErr))

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	m.logAndReport(c, err)

	// Internal details never reach the client.
	_ = response.InternalServerError(c, domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message())
}

// details returns the per-field rules of a validation failure, or the
// free-form details of any other application error.
func details(err error, appErr domainerrors.AppError) any {
	if validationErr, ok := errors.Find[*domainerrors.ValidationError](err); ok {
		return validationErr.Fields()
	}

	if appErr.Details() == "" {
		return nil
	}

	return appErr.Details()
}

func (m *ErrorMiddleware) logAndReport(c echo.Context, err error) {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	m.reporter.Capture(c.Request(), err, map[string]string{
		"request_id": deliverycontext.GetRequestID(c),
		"route":      c.Path(),
	})
}
