package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/o0-o/mountfacts/pkg/driver"
)

func TestGetDefaultConfig(t *testing.T) {
	cfg := GetDefaultConfig()

	assert.Equal(t, "INFO", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "stderr", cfg.Logging.Output)
	assert.Equal(t, "table", cfg.Output.Format)
	assert.Empty(t, cfg.Drivers)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	assert.Equal(t, "INFO", cfg.Logging.Level)
	assert.Equal(t, "table", cfg.Output.Format)
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Logging: LoggingConfig{Level: "DEBUG"},
		Output:  OutputConfig{Format: "json"},
	}
	ApplyDefaults(cfg)

	assert.Equal(t, "DEBUG", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(cfg *Config) {},
		},
		{
			name:    "invalid log level",
			mutate:  func(cfg *Config) { cfg.Logging.Level = "TRACE" },
			wantErr: true,
		},
		{
			name:    "invalid log format",
			mutate:  func(cfg *Config) { cfg.Logging.Format = "xml" },
			wantErr: true,
		},
		{
			name:    "invalid output format",
			mutate:  func(cfg *Config) { cfg.Output.Format = "csv" },
			wantErr: true,
		},
		{
			name: "override without type",
			mutate: func(cfg *Config) {
				cfg.Drivers = []DriverOverride{{Category: driver.CategoryNetwork}}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetDefaultConfig()
			tt.mutate(cfg)
			err := Validate(cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), cfg)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
logging:
  level: DEBUG
  format: json
output:
  format: yaml
drivers:
  - type: wekafs
    category: network
  - type: gocryptfs
    category: fuse
    fuse_name: gocryptfs
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "DEBUG", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "stderr", cfg.Logging.Output) // default fills in
	assert.Equal(t, "yaml", cfg.Output.Format)

	require.Len(t, cfg.Drivers, 2)
	assert.Equal(t, driver.CategoryNetwork, cfg.Drivers[0].Category)
	assert.Equal(t, "gocryptfs", cfg.Drivers[1].FuseName)
}

func TestLoadRejectsInvalidCategory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
drivers:
  - type: wekafs
    category: magnetic
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid category")
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
logging:
  level: LOUD
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestRegistryWithoutOverrides(t *testing.T) {
	cfg := GetDefaultConfig()

	reg, err := cfg.Registry()
	require.NoError(t, err)
	assert.Same(t, driver.Default(), reg)
}

func TestRegistryAppliesOverrides(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Drivers = []DriverOverride{
		{Type: "WekaFS", Category: driver.CategoryNetwork},
		{Type: "ext4", Category: driver.CategoryVirtual, Pseudo: true},
		{Type: "gocryptfs", Category: driver.CategoryFUSE, FuseName: "gocryptfs"},
	}

	reg, err := cfg.Registry()
	require.NoError(t, err)

	desc := reg.Lookup("wekafs")
	assert.Equal(t, driver.CategoryNetwork, desc.Category)

	// Overrides shadow builtin entries.
	desc = reg.Lookup("ext4")
	assert.Equal(t, driver.CategoryVirtual, desc.Category)
	assert.True(t, desc.Pseudo)

	desc = reg.Lookup("gocryptfs")
	require.NotNil(t, desc.FUSE)
	assert.Equal(t, "gocryptfs", desc.FUSE.Name)

	// The default registry stays untouched.
	assert.Equal(t, driver.CategoryRegular, driver.Default().Lookup("ext4").Category)
}

func TestSaveAndInitConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")

	require.NoError(t, InitConfigToPath(path, false))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), cfg)

	// A second init without force fails.
	err = InitConfigToPath(path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	require.NoError(t, InitConfigToPath(path, true))
}

func TestGetDefaultConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, "/tmp/xdg/mountfacts/config.yaml", GetDefaultConfigPath())
}
