package handler

import (
	"log/slog"
	"net/http"

	"voterdesk/internal/delivery/api/response"
	"voterdesk/internal/domain/entity"
	domainerrors "voterdesk/internal/domain/errors"
	"voterdesk/internal/errors"
	"voterdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type VoterHandlerParams struct {
	fx.In

	VoterUC usecase.VoterUsecase
	Logger  *slog.Logger
}

// VoterHandler serves the scoped voter records of the caller.
type VoterHandler struct {
	voterUC usecase.VoterUsecase
	logger  *slog.Logger
}

func NewVoterHandler(params VoterHandlerParams) *VoterHandler {
	return &VoterHandler{
		voterUC: params.VoterUC,
		logger:  params.Logger,
	}
}

// List returns the caller's visible records, newest first, narrowed by the query filters.
func (h *VoterHandler) List(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	records, err := h.voterUC.Find(c.Request().Context(), profile, voterFilter(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, records)
}

func (h *VoterHandler) Get(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	record, err := h.voterUC.Get(c.Request().Context(), profile, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, record)
}

func (h *VoterHandler) Create(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	var draft entity.VoterDraft
	if err := c.Bind(&draft); err != nil {
		return bindError()
	}

	record, err := h.voterUC.Create(c.Request().Context(), profile, &draft)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, record)
}

// Update replaces every editable field of the record.
func (h *VoterHandler) Update(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var draft entity.VoterDraft
	if err := c.Bind(&draft); err != nil {
		return bindError()
	}

	record, err := h.voterUC.Update(c.Request().Context(), profile, id, &draft)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, record)
}

// Delete removes a record. The caller must pass confirm=true.
func (h *VoterHandler) Delete(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if c.QueryParam("confirm") != "true" {
		return domainerrors.ErrConfirmationRequired
	}

	if err := h.voterUC.Delete(c.Request().Context(), profile, id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
