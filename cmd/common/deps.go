// Package common provides shared dependencies and input handling for the
// goselector commands.
package common

import (
	"fmt"

	"github.com/jonesrussell/goselector/internal/config"
	"github.com/jonesrussell/goselector/internal/logger"
)

var (
	cfg *config.Config
	log logger.Interface
)

// Init loads the configuration and constructs the shared logger. It is
// called once by the root command before any subcommand runs.
func Init(cfgFile string, debug bool) error {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to initialize configuration: %w", err)
	}
	if debug {
		loaded.Logger.Level = "debug"
		loaded.Logger.Development = true
	}

	l, err := logger.New(&loaded.Logger)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	cfg = loaded
	log = l
	return nil
}

// Config returns the loaded configuration.
func Config() *config.Config {
	if cfg == nil {
		return &config.Config{}
	}
	return cfg
}

// Logger returns the shared logger.
func Logger() logger.Interface {
	if log == nil {
		return logger.NewNoOp()
	}
	return log
}
