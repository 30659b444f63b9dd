// Package config loads the dashboard CLI configuration from an optional
// YAML file plus AGENTICMAIL_* environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	envPrefix         = "AGENTICMAIL"
	defaultBaseURL    = "http://localhost:3000"
	defaultTimeoutSec = 10
)

// Config is the resolved CLI configuration.
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Session SessionConfig `mapstructure:"session"`
}

// APIConfig locates the management API.
type APIConfig struct {
	BaseURL        string `mapstructure:"baseURL"`
	TimeoutSeconds int    `mapstructure:"timeoutSeconds"`
}

// SessionConfig locates the persisted login session.
type SessionConfig struct {
	Path string `mapstructure:"path"`
}

// Timeout returns the API timeout as a duration.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.baseURL", defaultBaseURL)
	v.SetDefault("api.timeoutSeconds", defaultTimeoutSec)
	v.SetDefault("session.path", defaultSessionPath())
}

func defaultSessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", ".agenticmail", "session.db")
	}
	return filepath.Join(dir, "agenticmail", "session.db")
}

// Load reads the configuration. An empty path loads defaults and
// environment overrides only; a named file must exist and parse.
func Load(path string) (Config, error) {
	v := newViper()
	if strings.TrimSpace(path) != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if strings.TrimSpace(c.API.BaseURL) == "" {
		return fmt.Errorf("api.baseURL is required")
	}
	if c.API.TimeoutSeconds <= 0 {
		return fmt.Errorf("api.timeoutSeconds must be positive, got %d", c.API.TimeoutSeconds)
	}
	if strings.TrimSpace(c.Session.Path) == "" {
		return fmt.Errorf("session.path is required")
	}
	return nil
}
