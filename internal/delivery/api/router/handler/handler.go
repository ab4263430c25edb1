// Package handler contains the HTTP handlers of the API.
package handler

import (
	"net/http"
	"strings"

	"voterdesk/internal/delivery/api/response"
	deliverycontext "voterdesk/internal/delivery/context"
	"voterdesk/internal/domain/entity"
	domainerrors "voterdesk/internal/domain/errors"
	"voterdesk/internal/domain/voterset"
	"voterdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

func currentSession(c echo.Context) (*entity.Session, error) {
	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return nil, domainerrors.ErrNoSession
	}

	return session, nil
}

// currentProfile returns the caller's profile. Voter operations need one.
func currentProfile(c echo.Context) (*entity.Profile, error) {
	session, err := currentSession(c)
	if err != nil {
		return nil, err
	}
	if session.Profile == nil {
		return nil, domainerrors.ErrProfileNotFound
	}

	return session.Profile, nil
}

func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.NewValidationError(map[string]string{"id": "uuid"})
	}

	return id, nil
}

// voterFilter reads the search term (q) and one equality criterion per
// filterable field from the query string.
func voterFilter(c echo.Context) usecase.VoterFilter {
	filter := usecase.VoterFilter{
		Term:     c.QueryParam("q"),
		Criteria: voterset.Criteria{},
	}

	for _, field := range entity.FilterableFields {
		if value := strings.TrimSpace(c.QueryParam(string(field))); value != "" {
			filter.Criteria[field] = value
		}
	}

	return filter
}

func bindError() error {
	return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
}
