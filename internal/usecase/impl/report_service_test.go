package impl

import (
	"context"
	"testing"

	"voterdesk/config"
	"voterdesk/internal/domain/entity"
	domainerrors "voterdesk/internal/domain/errors"
	"voterdesk/internal/domain/service"
	"voterdesk/internal/errors"
	mockService "voterdesk/internal/mocks/service"
	mockUsecase "voterdesk/internal/mocks/usecase"
	"voterdesk/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []*entity.VoterRecord {
	owner := standardProfile()
	communes := []string{"Gombe", "Limete", "Gombe", "Ngaliema", "Gombe", "Limete"}

	records := make([]*entity.VoterRecord, 0, len(communes))
	for i, commune := range communes {
		record := entity.NewVoterRecord(owner.ID, validDraft("Électeur", commune))
		if i%2 == 0 {
			record.HasVoted = entity.VotedYes
		}
		records = append(records, record)
	}

	return records
}

func TestReportService_Dashboard(t *testing.T) {
	voters := mockUsecase.NewMockVoterUsecase(t)
	profile := standardProfile()
	filter := usecase.VoterFilter{Term: "électeur"}

	voters.EXPECT().Find(mock.Anything, profile, filter).Return(sampleRecords(), nil)

	srv := NewReportService(ReportServiceParams{
		Voters: voters,
		Config: &config.Config{Report: &config.ReportConfig{TopCommunes: 2}},
		Logger: newDiscardLogger(),
	})

	summary, err := srv.Dashboard(context.Background(), profile, filter, 0)

	require.NoError(t, err)
	assert.Equal(t, 6, summary.Total)
	assert.Equal(t, 3, summary.Voted)
	assert.Equal(t, 3, summary.NotVoted)
	assert.Equal(t, 3, summary.DistinctCommunes)
	require.Len(t, summary.TopCommunes, 2)
	assert.Equal(t, "Gombe", summary.TopCommunes[0].Value)
	assert.Equal(t, 3, summary.TopCommunes[0].Count)
	assert.Equal(t, "Limete", summary.TopCommunes[1].Value)
}

func TestReportService_Dashboard_ExplicitTop(t *testing.T) {
	voters := mockUsecase.NewMockVoterUsecase(t)
	profile := adminProfile()

	voters.EXPECT().Find(mock.Anything, profile, usecase.VoterFilter{}).Return(sampleRecords(), nil)

	srv := NewReportService(ReportServiceParams{Voters: voters, Logger: newDiscardLogger()})

	summary, err := srv.Dashboard(context.Background(), profile, usecase.VoterFilter{}, 1)

	require.NoError(t, err)
	require.Len(t, summary.TopCommunes, 1)
	assert.Equal(t, "Gombe", summary.TopCommunes[0].Value)
}

func TestReportService_Export(t *testing.T) {
	voters := mockUsecase.NewMockVoterUsecase(t)
	exporter := mockService.NewMockVoterExporter(t)
	profile := standardProfile()
	records := sampleRecords()

	exporter.EXPECT().Format().Return(service.ExportXLSX)
	exporter.EXPECT().FileName().Return("electeurs.xlsx")
	exporter.EXPECT().ContentType().Return("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	exporter.EXPECT().Render(records).Return([]byte("PK"), nil)
	voters.EXPECT().Find(mock.Anything, profile, usecase.VoterFilter{}).Return(records, nil)

	srv := NewReportService(ReportServiceParams{
		Voters:    voters,
		Exporters: []service.VoterExporter{exporter},
		Logger:    newDiscardLogger(),
	})

	output, err := srv.Export(context.Background(), profile, service.ExportXLSX, usecase.VoterFilter{})

	require.NoError(t, err)
	assert.Equal(t, "electeurs.xlsx", output.FileName)
	assert.Equal(t, []byte("PK"), output.Content)
}

func TestReportService_Export_UnsupportedFormat(t *testing.T) {
	voters := mockUsecase.NewMockVoterUsecase(t)

	srv := NewReportService(ReportServiceParams{Voters: voters, Logger: newDiscardLogger()})

	_, err := srv.Export(context.Background(), standardProfile(), "docx", usecase.VoterFilter{})

	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedFormat)
	voters.AssertNotCalled(t, "Find", mock.Anything, mock.Anything, mock.Anything)
}

func TestReportService_Export_RenderFailure(t *testing.T) {
	voters := mockUsecase.NewMockVoterUsecase(t)
	exporter := mockService.NewMockVoterExporter(t)
	profile := standardProfile()

	exporter.EXPECT().Format().Return(service.ExportPDF)
	exporter.EXPECT().Render(mock.Anything).Return(nil, errors.New("font missing"))
	voters.EXPECT().Find(mock.Anything, profile, usecase.VoterFilter{}).Return(sampleRecords(), nil)

	srv := NewReportService(ReportServiceParams{
		Voters:    voters,
		Exporters: []service.VoterExporter{exporter},
		Logger:    newDiscardLogger(),
	})

	output, err := srv.Export(context.Background(), profile, service.ExportPDF, usecase.VoterFilter{})

	require.Error(t, err)
	assert.Nil(t, output)
}
