package bootstrap

import (
	"log/slog"

	"parking-portal/internal/handler/middleware"
	"parking-portal/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
		NewSlogLogger,
	),
)

func NewLogger(cfg config.Config) *middleware.Logger {
	return middleware.NewLogger(cfg.Log)
}

func NewSlogLogger(logger *middleware.Logger) *slog.Logger {
	return logger.GetSlogLogger()
}
