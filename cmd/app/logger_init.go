package main

import (
	"github.com/osse101/InkGacha_Go/internal/config"
	"github.com/osse101/InkGacha_Go/internal/logger"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	// Source locations only help in dev builds
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		logger.DefaultServiceName,
		version,
		cfg.Environment,
		addSource,
	)

	logger.InitLogger(loggerConfig)
}
