package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/goselector/internal/config"
	"github.com/jonesrussell/goselector/internal/selector"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Encoding)
	assert.Equal(t, config.DefaultServerAddress, cfg.Server.Address)
	assert.Equal(t, config.DefaultServerTimeout, cfg.Server.ReadTimeout)
	assert.Equal(t, config.DefaultServerTimeout, cfg.Server.WriteTimeout)
	assert.Equal(t, int64(config.DefaultMaxDocumentBytes), cfg.Server.MaxDocumentBytes)
	assert.Equal(t, selector.OptimizerTopDown, cfg.Selector.Optimizer)
	assert.Equal(t, selector.DefaultCosts(), cfg.Selector.Costs)
	assert.Equal(t, selector.DefaultIDBlacklist(), cfg.Selector.IDBlacklist)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
logger:
  level: debug
  encoding: json
server:
  address: ":9999"
  read_timeout: 30s
selector:
  optimizer: bottom-up
  max_parent_levels: 3
  costs:
    id: 2
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Encoding)
	assert.Equal(t, ":9999", cfg.Server.Address)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	// Unset values keep their defaults.
	assert.Equal(t, config.DefaultServerTimeout, cfg.Server.WriteTimeout)
	assert.Equal(t, selector.OptimizerBottomUp, cfg.Selector.Optimizer)
	assert.Equal(t, 3, cfg.Selector.MaxParentLevels)
	assert.Equal(t, 2, cfg.Selector.Costs.ID)
	assert.Equal(t, selector.DefaultCosts().Tag, cfg.Selector.Costs.Tag)
}

func TestLoad_InvalidOptimizer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
selector:
  optimizer: sideways
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	_, err := config.Load(path)
	require.ErrorIs(t, err, config.ErrInvalidOptimizer)
}

func TestLoad_InvalidDocumentCap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  max_document_bytes: -1
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	_, err := config.Load(path)
	require.ErrorIs(t, err, config.ErrConfigInvalid)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logger: ["), 0o600))

	_, err := config.Load(path)
	require.ErrorIs(t, err, config.ErrConfigParseFailed)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("GOSELECTOR_LOGGER_LEVEL", "warn")
	t.Setenv("GOSELECTOR_SERVER_ADDRESS", ":7070")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logger.Level)
	assert.Equal(t, ":7070", cfg.Server.Address)
}

func TestSelectorConfig_Options(t *testing.T) {
	t.Parallel()

	sc := config.SelectorConfig{
		Optimizer:          selector.OptimizerBottomUp,
		MaxParentLevels:    2,
		IDBlacklist:        []string{"x-*"},
		ClassBlacklist:     []string{"y-*"},
		AttributeBlacklist: []string{"z"},
		IgnoredAttributes:  []string{"style"},

		ExclusionIgnoredAttributes: []string{"class"},
		Costs:                      selector.DefaultCosts(),
	}

	opts := sc.Options()
	assert.Equal(t, selector.OptimizerBottomUp, opts.Optimizer)
	assert.Equal(t, 2, opts.MaxParentLevels)
	assert.Equal(t, []string{"x-*"}, opts.IDBlacklist)
	assert.Equal(t, []string{"y-*"}, opts.ClassBlacklist)
	assert.Equal(t, []string{"z"}, opts.AttributeBlacklist)
	assert.Equal(t, []string{"style"}, opts.IgnoredAttributes)
	assert.Equal(t, []string{"class"}, opts.ExclusionIgnoredAttributes)
	assert.Equal(t, selector.DefaultCosts(), opts.Costs)
}
