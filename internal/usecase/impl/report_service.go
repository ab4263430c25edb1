package impl

import (
	"context"
	"log/slog"

	"voterdesk/config"
	deliverycontext "voterdesk/internal/delivery/context"
	"voterdesk/internal/domain/entity"
	domainerrors "voterdesk/internal/domain/errors"
	"voterdesk/internal/domain/service"
	"voterdesk/internal/domain/voterset"
	"voterdesk/internal/errors"
	"voterdesk/internal/usecase"

	"go.uber.org/fx"
)

const defaultTopCommunes = 5

// reportService implements the ReportUsecase interface on top of scoped record access.
type reportService struct {
	voters      usecase.VoterUsecase
	exporters   map[service.ExportFormat]service.VoterExporter
	topCommunes int
	logger      *slog.Logger
}

type ReportServiceParams struct {
	fx.In

	Voters    usecase.VoterUsecase
	Exporters []service.VoterExporter `group:"exporters"`
	Config    *config.Config
	Logger    *slog.Logger
}

// NewReportService is the constructor for reportService.
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	exporters := make(map[service.ExportFormat]service.VoterExporter, len(params.Exporters))
	for _, exporter := range params.Exporters {
		exporters[exporter.Format()] = exporter
	}

	topCommunes := defaultTopCommunes
	if params.Config != nil && params.Config.Report != nil && params.Config.Report.TopCommunes > 0 {
		topCommunes = params.Config.Report.TopCommunes
	}

	return &reportService{
		voters:      params.Voters,
		exporters:   exporters,
		topCommunes: topCommunes,
		logger:      params.Logger,
	}
}

func (srv *reportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *reportService) Dashboard(ctx context.Context, profile *entity.Profile, filter usecase.VoterFilter, topCommunes int) (*voterset.Summary, error) {
	if topCommunes <= 0 {
		topCommunes = srv.topCommunes
	}

	records, err := srv.voters.Find(ctx, profile, filter)
	if err != nil {
		return nil, err
	}

	summary := voterset.Summarize(records, topCommunes)

	return &summary, nil
}

// Export renders the filtered scoped list. Nothing is kept server-side.
func (srv *reportService) Export(ctx context.Context, profile *entity.Profile, format service.ExportFormat, filter usecase.VoterFilter) (*usecase.ExportOutput, error) {
	exporter, ok := srv.exporters[format]
	if !ok {
		return nil, domainerrors.ErrUnsupportedFormat.WithDetails(string(format))
	}

	records, err := srv.voters.Find(ctx, profile, filter)
	if err != nil {
		return nil, err
	}

	content, err := exporter.Render(records)
	if err != nil {
		srv.log(ctx).Error("Export rendering failed", slog.String("format", string(format)), slog.Any("error", err))

		return nil, errors.Wrapf(err, "render %s export", format)
	}

	srv.log(ctx).Info("Export rendered", slog.String("format", string(format)), slog.Int("records", len(records)))

	return &usecase.ExportOutput{
		FileName:    exporter.FileName(),
		ContentType: exporter.ContentType(),
		Content:     content,
	}, nil
}
