package bootstrap

import (
	"log/slog"

	"github.com/osse101/skyrim-alchemy/internal/config"
	"github.com/osse101/skyrim-alchemy/internal/logger"
)

// SetupLogger initializes the structured logger from configuration and logs
// the startup banner. Source locations are only added in development.
func SetupLogger(cfg *config.Config) {
	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.IsDevelopment(),
	))

	slog.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	slog.Info(LogMsgStarting,
		"environment", cfg.Environment,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"dataset", cfg.DatasetPath,
		"output_dir", cfg.OutputDir,
		"max_ingredients", cfg.MaxIngredients,
		"workers", cfg.Workers,
		"port", cfg.Port)
}
