package bootstrap

import (
	"log/slog"

	"hotel-console/internal/pkg/clock"
	"hotel-console/internal/pkg/config"
	"hotel-console/internal/usecase/session"

	"go.uber.org/fx"
)

var SessionModule = fx.Module("session",
	fx.Provide(
		session.NewFactory,
		NewRegistry,
	),
)

// NewRegistry sweeps idle consoles for as long as the app runs.
func NewRegistry(
	lc fx.Lifecycle,
	cfg config.Config,
	f *session.Factory,
	clk clock.Clock,
	logger *slog.Logger,
) *session.Registry {
	r := session.NewRegistry(cfg.Session, f, clk, logger)
	lc.Append(fx.Hook{
		OnStart: r.Start,
		OnStop:  r.Stop,
	})
	return r
}
