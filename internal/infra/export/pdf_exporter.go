package export

import (
	"bytes"
	"strconv"
	"time"

	"voterdesk/config"
	"voterdesk/internal/domain/entity"
	"voterdesk/internal/domain/service"
	"voterdesk/internal/errors"

	"github.com/go-pdf/fpdf"
)

const (
	pdfTitle     = "Liste des Électeurs"
	pdfRowHeight = 7.0
)

type pdfColumn struct {
	header string
	width  float64
	value  func(*entity.VoterRecord) string
}

//nolint:gochecknoglobals
var pdfColumns = []pdfColumn{
	{"Noms", 48, func(r *entity.VoterRecord) string { return r.FullName }},
	{"Qualité", 32, func(r *entity.VoterRecord) string { return r.Category.Label() }},
	{"Genre", 18, func(r *entity.VoterRecord) string { return r.Gender.Label() }},
	{"Commune", 28, func(r *entity.VoterRecord) string { return r.Commune }},
	{"Téléphone", 30, func(r *entity.VoterRecord) string { return r.Phone1 }},
	{"Profession", 32, func(r *entity.VoterRecord) string { return r.Profession }},
	{"Bureau de vote", 34, func(r *entity.VoterRecord) string { return r.PollingStation }},
	{"Leader", 36, func(r *entity.VoterRecord) string { return r.Leader }},
	{"A voté", 16, func(r *entity.VoterRecord) string { return r.HasVoted.Label() }},
}

// PDFExporter renders an A4 landscape table of voters.
type PDFExporter struct {
	loc *time.Location
	now func() time.Time
}

// NewPDFExporter builds the PDF exporter printing timestamps in the configured timezone.
func NewPDFExporter(cfg *config.Config) (service.VoterExporter, error) {
	loc, err := location(cfg)
	if err != nil {
		return nil, err
	}

	return newPDFExporter(loc, time.Now), nil
}

func newPDFExporter(loc *time.Location, now func() time.Time) *PDFExporter {
	return &PDFExporter{loc: loc, now: now}
}

func (e *PDFExporter) Format() service.ExportFormat {
	return service.ExportPDF
}

func (e *PDFExporter) FileName() string {
	return "voters.pdf"
}

func (e *PDFExporter) ContentType() string {
	return "application/pdf"
}

// Render writes records in the given order. An empty list yields the header row only.
func (e *PDFExporter) Render(records []*entity.VoterRecord) ([]byte, error) {
	generatedAt := e.now().In(e.loc)

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetCreationDate(generatedAt)
	pdf.SetTitle(pdfTitle, true)
	pdf.SetAutoPageBreak(true, 12)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(pdfTitle), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr("Généré le: "+generatedAt.Format(dateLayout)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr("Total: "+strconv.Itoa(len(records))+" électeur(s)"), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	writeHeader := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(220, 228, 240)
		for _, column := range pdfColumns {
			pdf.CellFormat(column.width, pdfRowHeight, tr(column.header), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 8)
	}

	writeHeader()
	pdf.SetHeaderFunc(writeHeader)

	for _, record := range records {
		for _, column := range pdfColumns {
			text := fit(pdf, tr(column.value(record)), column.width-2)
			pdf.CellFormat(column.width, pdfRowHeight, text, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "write pdf")
	}

	return buf.Bytes(), nil
}

// fit shortens already translated single-byte text until it fits width.
func fit(pdf *fpdf.Fpdf, text string, width float64) string {
	if pdf.GetStringWidth(text) <= width {
		return text
	}

	cut := text
	for cut != "" && pdf.GetStringWidth(cut+"...") > width {
		cut = cut[:len(cut)-1]
	}

	return cut + "..."
}
