package bootstrap

import (
	"facility-booking/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigModule splits the loaded Config into the sections constructors ask for.
var ConfigModule = fx.Module("config",
	fx.Provide(
		func(cfg config.Config) config.BookingConfig { return cfg.Booking },
		func(cfg config.Config) config.SweeperConfig { return cfg.Sweeper },
		func(cfg config.Config) config.StorageConfig { return cfg.Storage },
	),
)
