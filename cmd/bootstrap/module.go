package bootstrap

import (
	"facility-booking/cmd/bootstrap/components"
	"facility-booking/internal/pkg/config"

	"go.uber.org/fx"
)

// Module wires the service around an already loaded configuration.
func Module(cfg config.Config) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		ConfigModule,
		LoggerModule,
		JWTModule,
		StorageModule(cfg.Storage),
		components.UseCaseModule,
		components.HandlerModule,
		components.WorkerModule,
	)
}

// StorageModule selects the persistence backend named by STORAGE_DRIVER. The
// memory driver never opens a database connection.
func StorageModule(cfg config.StorageConfig) fx.Option {
	if cfg.Driver == config.StorageDriverMemory {
		return components.MemoryModule
	}
	return fx.Options(
		DBModule,
		components.PostgresModule,
	)
}
