package bootstrap

import (
	"hotel-console/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	JWTModule,
	TelemetryModule,
	GatewayModule,
	SessionModule,
	components.UseCaseModule,
	components.HandlerModule,
)
