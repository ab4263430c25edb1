package handler

import (
	"log/slog"
	"net/http"

	"voterdesk/internal/delivery/api/response"
	"voterdesk/internal/domain/service"
	"voterdesk/internal/errors"
	"voterdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type ReportHandlerParams struct {
	fx.In

	ReportUC usecase.ReportUsecase
	Logger   *slog.Logger
}

// ReportHandler serves dashboard statistics and document exports.
type ReportHandler struct {
	reportUC usecase.ReportUsecase
	logger   *slog.Logger
}

func NewReportHandler(params ReportHandlerParams) *ReportHandler {
	return &ReportHandler{
		reportUC: params.ReportUC,
		logger:   params.Logger,
	}
}

type statsQuery struct {
	Top int `query:"top" validate:"omitempty,min=1,max=50"`
}

func (h *ReportHandler) Stats(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	var query statsQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return bindError()
	}
	if err := c.Validate(&query); err != nil {
		return errors.WithStack(err)
	}

	summary, err := h.reportUC.Dashboard(c.Request().Context(), profile, voterFilter(c), query.Top)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary)
}

func (h *ReportHandler) ExportPDF(c echo.Context) error {
	return h.export(c, service.ExportPDF)
}

func (h *ReportHandler) ExportXLSX(c echo.Context) error {
	return h.export(c, service.ExportXLSX)
}

func (h *ReportHandler) export(c echo.Context, format service.ExportFormat) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	output, err := h.reportUC.Export(c.Request().Context(), profile, format, voterFilter(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Attachment(c, output.FileName, output.ContentType, output.Content)
}
