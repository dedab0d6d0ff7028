package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	AppName    = "binblock++"
	AppID      = "com.binblock.shell"
	AppVersion = "1.0.0"
)

// Config holds the shell's configuration. Values come from defaults, an
// optional config.yaml in the user config directory, and BINBLOCK_*
// environment variables, in increasing order of precedence.
type Config struct {
	Window struct {
		Title  string  `mapstructure:"title"`
		Width  float32 `mapstructure:"width"`
		Height float32 `mapstructure:"height"`
	} `mapstructure:"window"`

	Log struct {
		// Level is one of debug, info, warn, error.
		Level string `mapstructure:"level"`
		// Format is "console" or "json".
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`

	FS struct {
		// Scopes lists directory roots the filesystem plugin may touch.
		// Empty means the defaults (user home and user config dir).
		Scopes []string `mapstructure:"scopes"`
	} `mapstructure:"fs"`
}

// Dir returns the directory holding the shell's config file, under the
// platform user config directory.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(base, "binblock"), nil
}

// Load reads configuration from defaults, the optional config file, and the
// environment. A malformed config file or invalid values are startup errors.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir, err := Dir(); err == nil {
		v.AddConfigPath(dir)
	}

	setDefaults(v)

	v.SetEnvPrefix("BINBLOCK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.title", AppName)
	v.SetDefault("window.width", 1024)
	v.SetDefault("window.height", 768)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("fs.scopes", []string{})
}

func (c *Config) validate() error {
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format %q", c.Log.Format)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %.0fx%.0f", c.Window.Width, c.Window.Height)
	}
	return nil
}

// ScopeRoots resolves the filesystem scope roots, falling back to the user
// home and config directories when none are configured.
func (c *Config) ScopeRoots() []string {
	if len(c.FS.Scopes) > 0 {
		return c.FS.Scopes
	}
	var roots []string
	if home, err := os.UserHomeDir(); err == nil {
		roots = append(roots, home)
	}
	if dir, err := Dir(); err == nil {
		roots = append(roots, dir)
	}
	return roots
}
