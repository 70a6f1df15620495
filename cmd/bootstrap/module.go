package bootstrap

import (
	"hotel-reservation/cmd/bootstrap/components"
	"hotel-reservation/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)

// Module wires config, logging, the selected store and the HTTP layer. The server itself is started by main.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	StoreModule,
	components.UseCaseModule,
	components.HandlerModule,
)
