package bootstrap

import (
	"context"
	"log/slog"

	"hotel-console/internal/infra/telemetry"
	"hotel-console/internal/pkg/config"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

var TelemetryModule = fx.Module("telemetry",
	fx.Provide(NewTracerProvider),
)

// NewTracerProvider flushes pending spans when the app stops.
func NewTracerProvider(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (trace.TracerProvider, error) {
	tp, err := telemetry.NewTracerProvider(context.Background(), cfg.Telemetry)
	if err != nil {
		return nil, err
	}
	if cfg.Telemetry.Endpoint == "" {
		logger.Info("Trace export disabled, no OTLP endpoint configured")
	}
	lc.Append(fx.Hook{
		OnStop: tp.Shutdown,
	})
	return tp, nil
}
