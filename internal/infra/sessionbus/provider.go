// Package sessionbus broadcasts session transitions to in-flight requests and
// event streams of the same identity.
package sessionbus

import (
	"context"
	"log/slog"

	"voterdesk/config"
	"voterdesk/internal/domain/lifecycle"
	"voterdesk/internal/domain/service"
	"voterdesk/internal/errors"

	"go.uber.org/fx"
)

type BusParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewSessionBus creates a SessionBus based on configuration.
func NewSessionBus(params BusParams) (service.SessionBus, error) {
	logger := params.Logger.With(slog.String("component", "sessionbus"))

	cfg := params.Config.SessionBus
	if cfg == nil {
		cfg = &config.SessionBusConfig{Provider: config.SessionBusLocal}
	}

	var bus service.SessionBus

	switch cfg.Provider {
	case "", config.SessionBusLocal:
		logger.Info("Using in-process session bus")

		bus = newLocalBus(logger)

	case config.SessionBusRedis:
		if cfg.RedisURL == "" {
			return nil, errors.New("redis url is required for redis session bus")
		}
		logger.Info("Using Redis session bus", slog.String("channel", cfg.Channel))

		ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		redisBus, err := newRedisBus(ctx, cfg.RedisURL, cfg.Channel, logger)
		if err != nil {
			return nil, err
		}
		bus = redisBus

	default:
		return nil, errors.Errorf("unknown session bus provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing session bus")

			return bus.Close()
		},
	})

	return bus, nil
}

// Module provides the session bus FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewSessionBus),
)
