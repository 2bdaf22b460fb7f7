package bootstrap

import (
	"renthub/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.PaymentConfig { return cfg.Payment },
		func(cfg config.Config) config.EventsConfig { return cfg.Events },
		func(cfg config.Config) config.ImageConfig { return cfg.Images },
	),
)
