// Package config loads the mountfacts configuration from file,
// environment, and defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/o0-o/mountfacts/pkg/driver"
)

// Config captures the static configuration of the mountfacts CLI.
//
// Configuration sources (in order of precedence):
//  1. CLI flags (highest priority)
//  2. Environment variables (MOUNTFACTS_*)
//  3. Configuration file (YAML)
//  4. Default values (lowest priority)
type Config struct {
	// Logging controls log output behavior.
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`

	// Output controls the default rendering of facts.
	Output OutputConfig `mapstructure:"output" yaml:"output"`

	// Drivers adds or replaces entries in the driver registry. The
	// builtin table stays in effect for everything not listed here.
	Drivers []DriverOverride `mapstructure:"drivers" yaml:"drivers,omitempty"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	// Level is the minimum log level to output.
	// Valid values: DEBUG, INFO, WARN, ERROR (case-insensitive)
	Level string `mapstructure:"level" validate:"required,oneof=DEBUG INFO WARN ERROR debug info warn error" yaml:"level"`

	// Format specifies the log output format.
	// Valid values: text, json
	Format string `mapstructure:"format" validate:"required,oneof=text json" yaml:"format"`

	// Output specifies where logs are written.
	// Valid values: stdout, stderr, or a file path
	Output string `mapstructure:"output" validate:"required" yaml:"output"`
}

// OutputConfig controls fact rendering defaults.
type OutputConfig struct {
	// Format is the default output format when --output is not given.
	// Valid values: table, json, yaml
	Format string `mapstructure:"format" validate:"required,oneof=table json yaml" yaml:"format"`
}

// DriverOverride declares one registry entry supplied through
// configuration. Overrides shadow builtin entries of the same type.
type DriverOverride struct {
	// Type is the filesystem-type string the entry matches exactly.
	Type string `mapstructure:"type" validate:"required" yaml:"type"`

	// Category is the classification to assign.
	Category driver.Category `mapstructure:"category" validate:"required" yaml:"category"`

	// Pseudo marks the filesystem as virtual/non-block-backed.
	Pseudo bool `mapstructure:"pseudo" yaml:"pseudo,omitempty"`

	// FuseName names the userspace sub-driver for FUSE-backed types.
	FuseName string `mapstructure:"fuse_name" yaml:"fuse_name,omitempty"`
}

// Load loads configuration from file, environment, and defaults.
//
// Parameters:
//   - configPath: path to the config file (empty uses the default location)
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setupViper(v, configPath)

	configFileFound, err := readConfigFile(v)
	if err != nil {
		return nil, err
	}

	if !configFileFound {
		return GetDefaultConfig(), nil
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(configDecodeHooks())); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// Registry builds the driver registry described by the configuration: the
// canonical default table plus any overrides.
func (c *Config) Registry() (*driver.Registry, error) {
	if len(c.Drivers) == 0 {
		return driver.Default(), nil
	}

	overrides := make(map[string]driver.Descriptor, len(c.Drivers))
	for _, o := range c.Drivers {
		if _, ok := driver.ParseCategory(string(o.Category)); !ok {
			return nil, fmt.Errorf("driver override %q: invalid category %q", o.Type, o.Category)
		}
		d := driver.Descriptor{
			Type:     strings.ToLower(o.Type),
			Category: o.Category,
			Pseudo:   o.Pseudo,
		}
		if o.FuseName != "" {
			d.FUSE = &driver.FUSEDriver{Name: o.FuseName}
		}
		overrides[d.Type] = d
	}
	return driver.Default().WithOverrides(overrides), nil
}

// SaveConfig saves the configuration to the given path in YAML form.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// setupViper configures environment variables and config file search.
func setupViper(v *viper.Viper, configPath string) {
	// Environment variables use the MOUNTFACTS_ prefix with underscores,
	// e.g. MOUNTFACTS_LOGGING_LEVEL=DEBUG.
	v.SetEnvPrefix("MOUNTFACTS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(getConfigDir())
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
}

// readConfigFile reads the config file if present. A missing file is not
// an error; defaults apply.
func readConfigFile(v *viper.Viper) (bool, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return false, nil
		}
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read config file: %w", err)
	}
	return true, nil
}

// configDecodeHooks returns the combined decode hook for custom types.
func configDecodeHooks() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		categoryDecodeHook(),
	)
}

// categoryDecodeHook converts strings to driver.Category, rejecting
// unknown category names at decode time.
func categoryDecodeHook() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != reflect.TypeOf(driver.Category("")) || from.Kind() != reflect.String {
			return data, nil
		}
		c, ok := driver.ParseCategory(data.(string))
		if !ok {
			return nil, fmt.Errorf("invalid category: %q", data)
		}
		return c, nil
	}
}

// getConfigDir returns the configuration directory.
//
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config, falling back to the
// current directory when the home directory cannot be determined.
func getConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "mountfacts")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "mountfacts")
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() string {
	return filepath.Join(getConfigDir(), "config.yaml")
}

// DefaultConfigExists checks for a config file at the default location.
func DefaultConfigExists() bool {
	_, err := os.Stat(GetDefaultConfigPath())
	return err == nil
}
