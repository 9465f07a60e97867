package bootstrap

import (
	"parking-portal/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	SessionModule,
	APIClientModule,
	components.UseCaseModule,
	components.HandlerModule,
)
