package bootstrap

import (
	"log/slog"

	"price-offer/internal/pkg/config"
	"price-offer/internal/pkg/logger"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

func NewLogger(cfg config.Config) *slog.Logger {
	l := logger.New(cfg.Log)
	slog.SetDefault(l)
	return l
}
