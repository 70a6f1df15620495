package bootstrap

import (
	"log/slog"

	"hotel-reservation/internal/handler/middleware"
	"hotel-reservation/internal/pkg/config"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
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

// FxLogger routes fx lifecycle events through the application logger.
func FxLogger(logger *slog.Logger) fxevent.Logger {
	return &fxevent.SlogLogger{Logger: logger.With("component", "fx")}
}
