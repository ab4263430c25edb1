package export

import (
	"time"
	"unicode/utf8"

	"voterdesk/config"
	"voterdesk/internal/domain/entity"
	"voterdesk/internal/domain/service"
	"voterdesk/internal/errors"

	"github.com/xuri/excelize/v2"
)

const (
	sheetName      = "Électeurs"
	minColumnWidth = 15
)

//nolint:gochecknoglobals
var spreadsheetHeaders = []string{
	"Noms",
	"Qualité",
	"Genre",
	"Commune",
	"Adresse",
	"Téléphone 1",
	"Téléphone 2",
	"Profession",
	"Bureau de vote",
	"Leader",
	"A voté",
	"Observations",
	"Date d'enregistrement",
}

// SpreadsheetExporter renders voters as a single-sheet XLSX workbook.
type SpreadsheetExporter struct {
	loc *time.Location
}

func NewSpreadsheetExporter(cfg *config.Config) (service.VoterExporter, error) {
	loc, err := location(cfg)
	if err != nil {
		return nil, err
	}

	return &SpreadsheetExporter{loc: loc}, nil
}

func (e *SpreadsheetExporter) Format() service.ExportFormat {
	return service.ExportXLSX
}

func (e *SpreadsheetExporter) FileName() string {
	return "voters.xlsx"
}

func (e *SpreadsheetExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Render writes one header row and one row per record. Column widths depend
// on the header labels only.
func (e *SpreadsheetExporter) Render(records []*entity.VoterRecord) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName(file.GetSheetName(0), sheetName); err != nil {
		return nil, errors.Wrap(err, "rename sheet")
	}

	header := make([]any, len(spreadsheetHeaders))
	for i, label := range spreadsheetHeaders {
		header[i] = label
	}
	if err := file.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, errors.Wrap(err, "write header row")
	}

	boldStyle, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, errors.Wrap(err, "create header style")
	}
	lastColumn, err := excelize.ColumnNumberToName(len(spreadsheetHeaders))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if err := file.SetCellStyle(sheetName, "A1", lastColumn+"1", boldStyle); err != nil {
		return nil, errors.Wrap(err, "style header row")
	}

	for i, label := range spreadsheetHeaders {
		column, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if err := file.SetColWidth(sheetName, column, column, columnWidth(label)); err != nil {
			return nil, errors.Wrapf(err, "set width of column %s", column)
		}
	}

	for i, record := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		row := e.row(record)
		if err := file.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, errors.Wrapf(err, "write row %d", i+2)
		}
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "write xlsx")
	}

	return buf.Bytes(), nil
}

func (e *SpreadsheetExporter) row(record *entity.VoterRecord) []any {
	return []any{
		record.FullName,
		record.Category.Label(),
		record.Gender.Label(),
		record.Commune,
		record.Address,
		record.Phone1,
		record.Phone2,
		record.Profession,
		record.PollingStation,
		record.Leader,
		record.HasVoted.Label(),
		record.Notes,
		e.formatDate(record.CreatedAt),
	}
}

func (e *SpreadsheetExporter) formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.In(e.loc).Format(dateLayout)
}

func columnWidth(header string) float64 {
	return float64(max(utf8.RuneCountInString(header), minColumnWidth))
}
