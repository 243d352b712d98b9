// Package config provides configuration management for the goselector
// application.
package config

import (
	"time"

	"github.com/jonesrussell/goselector/internal/logger"
	"github.com/jonesrussell/goselector/internal/selector"
)

// Config is the root application configuration.
type Config struct {
	// Logger configures log level, encoding, and development mode.
	Logger logger.Config `mapstructure:"logger"`
	// Server configures the HTTP API server.
	Server ServerConfig `mapstructure:"server"`
	// Selector configures selector generation.
	Selector SelectorConfig `mapstructure:"selector"`
}

// ServerConfig holds the HTTP API server configuration.
type ServerConfig struct {
	// Address is the listen address, e.g. ":8080".
	Address string `mapstructure:"address"`
	// ReadTimeout is the maximum duration for reading a request.
	ReadTimeout time.Duration `mapstructure:"read_timeout"`
	// WriteTimeout is the maximum duration before timing out a response.
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	// MaxDocumentBytes caps the size of a submitted HTML document.
	MaxDocumentBytes int64 `mapstructure:"max_document_bytes"`
}

// SelectorConfig holds the selector-generation configuration.
type SelectorConfig struct {
	// Optimizer selects the reduction strategy: top-down or bottom-up.
	Optimizer string `mapstructure:"optimizer"`
	// MaxParentLevels bounds the ancestor walk; zero walks to the root.
	MaxParentLevels int `mapstructure:"max_parent_levels"`
	// IDBlacklist, ClassBlacklist, and AttributeBlacklist are wildcard
	// patterns for unreliable framework-generated identifiers.
	IDBlacklist        []string `mapstructure:"id_blacklist"`
	ClassBlacklist     []string `mapstructure:"class_blacklist"`
	AttributeBlacklist []string `mapstructure:"attribute_blacklist"`
	// IgnoredAttributes are attribute names excluded from local attr
	// fragments; ExclusionIgnoredAttributes is the equivalent list for the
	// exclusion generators. The defaults are identical; they are kept as
	// two named settings so a divergence is an explicit decision.
	IgnoredAttributes          []string `mapstructure:"ignored_attributes"`
	ExclusionIgnoredAttributes []string `mapstructure:"exclusion_ignored_attributes"`
	// Costs is the descriptor cost table.
	Costs selector.Costs `mapstructure:"costs"`
}

// Options converts the selector configuration into generator options.
func (c SelectorConfig) Options() selector.Options {
	return selector.Options{
		Costs:                      c.Costs,
		IDBlacklist:                c.IDBlacklist,
		ClassBlacklist:             c.ClassBlacklist,
		AttributeBlacklist:         c.AttributeBlacklist,
		IgnoredAttributes:          c.IgnoredAttributes,
		ExclusionIgnoredAttributes: c.ExclusionIgnoredAttributes,
		MaxParentLevels:            c.MaxParentLevels,
		Optimizer:                  c.Optimizer,
	}
}
