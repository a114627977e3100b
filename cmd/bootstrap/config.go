package bootstrap

import (
	"hotel-backend/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	ConfigSections,
)

// ConfigSections exposes the sub-configs that infra constructors take
// directly. Tests pair it with their own config.Config provider.
var ConfigSections = fx.Provide(
	func(cfg config.Config) config.PaymentConfig { return cfg.Payment },
	func(cfg config.Config) config.RedisConfig { return cfg.Redis },
	func(cfg config.Config) config.AMQPConfig { return cfg.AMQP },
)
