// Package export renders scoped voter lists as downloadable documents.
package export

import (
	"time"
	_ "time/tzdata"

	"voterdesk/config"
	"voterdesk/internal/errors"

	"go.uber.org/fx"
)

const dateLayout = "02/01/2006 15:04"

// location resolves the timezone used to print dates, falling back to UTC.
func location(cfg *config.Config) (*time.Location, error) {
	if cfg == nil || cfg.Report == nil || cfg.Report.Timezone == "" {
		return time.UTC, nil
	}

	loc, err := time.LoadLocation(cfg.Report.Timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "load report timezone %q", cfg.Report.Timezone)
	}

	return loc, nil
}

// Module provides every exporter to the "exporters" value group.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		fx.Annotate(NewPDFExporter, fx.ResultTags(`group:"exporters"`)),
		fx.Annotate(NewSpreadsheetExporter, fx.ResultTags(`group:"exporters"`)),
	),
)
