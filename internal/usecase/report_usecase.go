package usecase

import (
	"context"

	"voterdesk/internal/domain/entity"
	"voterdesk/internal/domain/service"
	"voterdesk/internal/domain/voterset"
)

// ExportOutput is a rendered document ready to be sent as an attachment.
type ExportOutput struct {
	FileName    string
	ContentType string
	Content     []byte
}

// ReportUsecase builds the dashboard and the downloadable exports.
type ReportUsecase interface {
	// Dashboard summarizes the filtered scoped list. topCommunes <= 0 uses the configured default.
	Dashboard(ctx context.Context, profile *entity.Profile, filter VoterFilter, topCommunes int) (*voterset.Summary, error)

	// Export renders the filtered scoped list in format.
	Export(ctx context.Context, profile *entity.Profile, format service.ExportFormat, filter VoterFilter) (*ExportOutput, error)
}
