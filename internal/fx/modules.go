package fx

import (
	"context"
	"net/http"

	"league-logos/internal/api"
	"league-logos/internal/config"
	"league-logos/internal/database"
	"league-logos/internal/logger"
	"league-logos/internal/metrics"
	"league-logos/internal/repository"
	"league-logos/internal/server"
	"league-logos/internal/service"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

// Telemetry bundles the recorder with the Prometheus handler. Handler is nil
// when metrics are disabled.
type Telemetry struct {
	Recorder *metrics.Recorder
	Handler  http.Handler
}

func ProvideTelemetry(lc fx.Lifecycle, cfg *config.Config, logger zerolog.Logger) (*Telemetry, error) {
	rec, handler, shutdown, err := metrics.Setup(context.Background(), metrics.TelemetryConfig{
		Enabled:      cfg.MetricsEnabled,
		ServiceName:  cfg.ServiceName,
		OtlpEndpoint: cfg.OTLPEndpoint,
		OtlpInsecure: cfg.OTLPInsecure,
	})
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if err := shutdown(ctx); err != nil {
				logger.Warn().Err(err).Msg("error shutting down telemetry")
				return err
			}
			return nil
		},
	})
	return &Telemetry{Recorder: rec, Handler: handler}, nil
}

func ProvideRecorder(t *Telemetry) *metrics.Recorder {
	return t.Recorder
}

var Module = fx.Options(
	config.Module,
	logger.Module,
	fx.Provide(database.NewWithLifecycle),
	fx.Provide(ProvideTelemetry),
	fx.Provide(ProvideRecorder),
	// repos
	fx.Provide(repository.NewLeagueRepository),
	// api client
	fx.Provide(
		fx.Annotate(api.NewSleeperClient, fx.As(new(service.RosterSource))),
	),
	// svc
	fx.Provide(service.NewLeagueService),
	fx.Provide(service.NewLogoService),
	// server
	fx.Provide(server.NewLogoServer),
)
