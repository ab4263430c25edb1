// Package monitoring reports unexpected failures to Sentry.
package monitoring

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"voterdesk/config"
	"voterdesk/internal/errors"

	"github.com/getsentry/sentry-go"
	"go.uber.org/fx"
)

const flushTimeout = 2 * time.Second

// Reporter captures errors that do not map to a known application error.
// A Reporter without a DSN is disabled and drops everything.
type Reporter struct {
	hub *sentry.Hub
}

type ReporterParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewReporter initializes a Sentry client when sentry.dsn is configured.
func NewReporter(params ReporterParams) (*Reporter, error) {
	cfg := params.Config.Sentry
	if cfg == nil || cfg.DSN == "" {
		params.Logger.Info("Sentry not configured, error reporting disabled")

		return &Reporter{}, nil
	}

	environment := cfg.Environment
	if environment == "" {
		environment = params.Config.Env.Env
	}

	reporter, err := newReporter(sentry.ClientOptions{
		Dsn:              cfg.DSN,
		Environment:      environment,
		EnableTracing:    cfg.TracesSampleRate > 0,
		TracesSampleRate: cfg.TracesSampleRate,
		AttachStacktrace: true,
	})
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Sentry error reporting enabled", slog.String("environment", environment))

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			reporter.Flush()

			return nil
		},
	})

	return reporter, nil
}

func newReporter(options sentry.ClientOptions) (*Reporter, error) {
	client, err := sentry.NewClient(options)
	if err != nil {
		return nil, errors.Wrap(err, "init sentry client")
	}

	return &Reporter{hub: sentry.NewHub(client, sentry.NewScope())}, nil
}

func (r *Reporter) Enabled() bool {
	return r != nil && r.hub != nil
}

// Capture sends err with the request and tags attached. It is safe to call
// concurrently and on a disabled Reporter.
func (r *Reporter) Capture(req *http.Request, err error, tags map[string]string) {
	if !r.Enabled() || err == nil {
		return
	}

	hub := r.hub.Clone()
	hub.WithScope(func(scope *sentry.Scope) {
		if req != nil {
			scope.SetRequest(req)
		}
		scope.SetTags(tags)
		hub.CaptureException(err)
	})
}

func (r *Reporter) Flush() {
	if r.Enabled() {
		r.hub.Flush(flushTimeout)
	}
}

// Module provides the Sentry reporter FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewReporter),
)
