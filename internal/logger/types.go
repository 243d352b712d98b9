// Package logger provides logging functionality for the application.
package logger

import (
	"io"
	"os"
)

// Config holds the logger configuration.
type Config struct {
	// Level is the minimum logging level (debug, info, warn, error, fatal).
	Level string `mapstructure:"level"`
	// Encoding is the log output format (console or json).
	Encoding string `mapstructure:"encoding"`
	// Development enables development-friendly output (colors, short timestamps).
	Development bool `mapstructure:"development"`
	// Output overrides the log destination. Defaults to stdout.
	Output io.Writer `mapstructure:"-"`
}

// output returns the configured writer, defaulting to stdout.
func (c *Config) output() io.Writer {
	if c.Output != nil {
		return c.Output
	}
	return os.Stdout
}
