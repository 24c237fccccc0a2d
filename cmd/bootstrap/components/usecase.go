package components

import (
	"hotel-console/internal/pkg/clock"
	"hotel-console/internal/pkg/config"
	"hotel-console/internal/usecase"
	"hotel-console/internal/usecase/form"
	"hotel-console/internal/usecase/notify"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseValidatorsModule,
	usecaseAuthModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config, clk clock.Clock) *notify.Notifier {
		return notify.NewNotifier(cfg.Notify, clk)
	},
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		form.NewValidator,
		usecase.NewTokenValidator,
	),
)

var usecaseAuthModule = fx.Module("usecase/auth",
	fx.Provide(
		usecase.NewAuthUseCase,
	),
)
