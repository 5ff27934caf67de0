// Package config loads sysfs settings for the command-line tool.
//
// Configuration sources (in order of precedence):
//  1. Environment variables (SYSFS_*)
//  2. Configuration file (YAML)
//  3. Default values
//
// The PathExt and SystemRoot fields override the PATHEXT and SystemRoot
// signals the library otherwise reads from the process environment.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/jmgilman/go/errors"
	"github.com/spf13/viper"

	"github.com/jmgilman/go/sysfs/platform"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SYSFS"

// Config is the complete sysfs configuration.
type Config struct {
	// Logging controls log output behavior
	Logging LoggingConfig `mapstructure:"logging"`

	// Platform selects capability semantics.
	// Valid values: auto, unix, windows
	Platform string `mapstructure:"platform" validate:"required,oneof=auto unix windows"`

	// PathExt overrides the PATHEXT signal when non-empty.
	PathExt string `mapstructure:"pathext"`

	// SystemRoot overrides the SystemRoot signal when non-empty.
	SystemRoot string `mapstructure:"system_root"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	// Level is the minimum log level to output
	// Valid values: DEBUG, INFO, WARN, ERROR (case-insensitive, normalized to uppercase)
	Level string `mapstructure:"level" validate:"required,oneof=DEBUG INFO WARN ERROR"`

	// Format specifies the log output format
	// Valid values: text, json
	Format string `mapstructure:"format" validate:"required,oneof=text json"`
}

// Load reads configuration from configPath (optional) and the environment,
// applies defaults, and validates the result.
//
// An empty configPath searches the default location; a missing file there
// is not an error. An explicit configPath must exist.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setupViper(v, configPath)

	if err := readConfigFile(v, configPath); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidConfig, "failed to unmarshal config")
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setupViper configures environment overrides and file search.
func setupViper(v *viper.Viper, configPath string) {
	// Example: SYSFS_LOGGING_LEVEL=DEBUG
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only applies to keys viper already knows about.
	for _, key := range []string{"logging.level", "logging.format", "platform", "pathext", "system_root"} {
		_ = v.BindEnv(key)
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		return
	}
	v.AddConfigPath(ConfigDir())
	v.SetConfigName("config")
	v.SetConfigType("yaml")
}

// readConfigFile reads the configuration file if it exists.
func readConfigFile(v *viper.Viper, configPath string) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath == "" && errors.As(err, &notFound) {
			return nil
		}
		return errors.WrapWithContext(err, errors.CodeInvalidConfig, "failed to read config file", map[string]interface{}{
			"path": configPath,
		})
	}
	return nil
}

// ConfigDir returns $XDG_CONFIG_HOME/sysfs, ~/.config/sysfs, or "." when
// no home directory can be determined.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "sysfs")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "sysfs")
}

// Kind returns the platform kind selected by Platform.
// "auto" yields KindUnknown, which components resolve to the host.
func (c *Config) Kind() platform.Kind {
	return platform.ParseKind(c.Platform)
}

// Environment returns base with the PathExt and SystemRoot overrides applied.
func (c *Config) Environment(base platform.Environment) platform.Environment {
	return platform.Overlay(base, map[string]string{
		platform.EnvPathExt:    c.PathExt,
		platform.EnvSystemRoot: c.SystemRoot,
	})
}
