package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/osse101/HeroTracker_Go/internal/config"
	"github.com/osse101/HeroTracker_Go/internal/logger"
)

// SetupLogger initializes the application logger. Records always go to stdout;
// when cfg.LogDir is set they are also written to a size-rotated file there.
// The returned file is nil when no log directory is configured, otherwise the
// caller must close it.
func SetupLogger(cfg *config.Config) (*lumberjack.Logger, error) {
	return setupLogger(cfg, os.Stdout)
}

func setupLogger(cfg *config.Config, stdout io.Writer) (*lumberjack.Logger, error) {
	addSource := cfg.Environment == logger.EnvironmentDev || cfg.Environment == "development"
	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	)

	var logFile *lumberjack.Logger
	out := stdout
	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
		}
		logFile = logger.NewRotatingFile(cfg.LogDir)
		out = io.MultiWriter(stdout, logFile)
	}

	logger.InitLoggerWithWriter(loggerConfig, out)

	slog.Info(LogMsgLoggingInitialized, "level", loggerConfig.LogLevel(), "log_dir", cfg.LogDir)
	slog.Info(LogMsgStartingHeroTracker,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"port", cfg.Port,
		"curve", cfg.CurveFile,
		"max_level", cfg.MaxLevel)

	return logFile, nil
}
