package service

import "voterdesk/internal/domain/entity"

// ExportFormat identifies a document type produced from a voter list.
type ExportFormat string

const (
	ExportPDF  ExportFormat = "pdf"
	ExportXLSX ExportFormat = "xlsx"
)

// VoterExporter renders a voter list into a downloadable document.
type VoterExporter interface {
	Format() ExportFormat

	// FileName is the suggested download name, e.g. voters.pdf.
	FileName() string

	ContentType() string

	// Render writes one row per record in the given order. An empty list
	// yields a document holding only the header.
	Render(records []*entity.VoterRecord) ([]byte, error)
}
