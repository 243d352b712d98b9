package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/jonesrussell/goselector/internal/selector"
)

// Default server values.
const (
	// DefaultServerAddress is the default HTTP API listen address.
	DefaultServerAddress = ":8080"
	// DefaultServerTimeout is the default read and write timeout.
	DefaultServerTimeout = 15 * time.Second
	// DefaultMaxDocumentBytes caps submitted documents at 5 MiB.
	DefaultMaxDocumentBytes = 5 << 20
)

// Load reads the configuration from the optional config file, environment
// variables, and defaults, in decreasing precedence of environment over
// file over defaults.
func Load(cfgFile string) (*Config, error) {
	// Load .env first so its variables are visible to viper.
	_ = godotenv.Load()

	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.AutomaticEnv()
	v.SetEnvPrefix("GOSELECTOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	// The config file is optional: defaults and environment variables are a
	// complete configuration on their own.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && cfgFile != "" {
			return nil, fmt.Errorf("%w: %w", ErrConfigParseFailed, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigParseFailed, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	switch c.Selector.Optimizer {
	case selector.OptimizerTopDown, selector.OptimizerBottomUp:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOptimizer, c.Selector.Optimizer)
	}
	if c.Server.MaxDocumentBytes <= 0 {
		return fmt.Errorf("%w: max_document_bytes must be positive", ErrConfigInvalid)
	}
	return nil
}

// setDefaults registers the default value of every setting.
func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.development", false)

	v.SetDefault("server.address", DefaultServerAddress)
	v.SetDefault("server.read_timeout", DefaultServerTimeout)
	v.SetDefault("server.write_timeout", DefaultServerTimeout)
	v.SetDefault("server.max_document_bytes", DefaultMaxDocumentBytes)

	defaults := selector.DefaultOptions()
	v.SetDefault("selector.optimizer", defaults.Optimizer)
	v.SetDefault("selector.max_parent_levels", defaults.MaxParentLevels)
	v.SetDefault("selector.id_blacklist", defaults.IDBlacklist)
	v.SetDefault("selector.class_blacklist", defaults.ClassBlacklist)
	v.SetDefault("selector.attribute_blacklist", defaults.AttributeBlacklist)
	v.SetDefault("selector.ignored_attributes", defaults.IgnoredAttributes)
	v.SetDefault("selector.exclusion_ignored_attributes", defaults.ExclusionIgnoredAttributes)

	costs := defaults.Costs
	v.SetDefault("selector.costs.id", costs.ID)
	v.SetDefault("selector.costs.tag", costs.Tag)
	v.SetDefault("selector.costs.class", costs.Class)
	v.SetDefault("selector.costs.attr", costs.Attr)
	v.SetDefault("selector.costs.not", costs.Not)
	v.SetDefault("selector.costs.has", costs.Has)
	v.SetDefault("selector.costs.children", costs.Children)
	v.SetDefault("selector.costs.distance", costs.Distance)
	v.SetDefault("selector.costs.parent", costs.Parent)
	v.SetDefault("selector.costs.position", costs.Position)
	v.SetDefault("selector.costs.position_step", costs.PositionStep)
	v.SetDefault("selector.costs.neighbor", costs.Neighbor)
}
