// Package config provides YAML-based configuration loading for lumen,
// with environment and .env overrides on top.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config is the complete application configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	Locale  string        `yaml:"locale"`
	SSH     SSHConfig     `yaml:"ssh"`
	HTTP    HTTPConfig    `yaml:"http"`
	Display DisplayConfig `yaml:"display"`
}

// StorageConfig locates the run log database.
type StorageConfig struct {
	Path string `yaml:"path"` // "~" is expanded; empty disables the run log
}

// LogConfig controls the application logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty: stderr for servers, discarded for play
}

// SSHConfig configures the remote play server.
type SSHConfig struct {
	Address     string `yaml:"address"`
	HostKey     string `yaml:"host_key"`
	IdleTimeout int    `yaml:"idle_timeout"` // minutes, 0 disables
}

// HTTPConfig configures the JSON API server.
type HTTPConfig struct {
	Address     string `yaml:"address"`
	MaxSessions int    `yaml:"max_sessions"`
}

// DisplayConfig holds presentation preferences.
type DisplayConfig struct {
	ShowHelp   bool   `yaml:"show_help"`
	PlayerName string `yaml:"player_name"` // recorded with runs; defaults to $USER
	Theme      string `yaml:"theme"`       // "default" or "mono"
}

// IdleTimeoutDuration returns the SSH idle timeout as a duration.
func (c SSHConfig) IdleTimeoutDuration() time.Duration {
	return time.Duration(c.IdleTimeout) * time.Minute
}

// Validate reports configuration values that cannot work.
func (c Config) Validate() error {
	var errs []error
	if c.SSH.IdleTimeout < 0 {
		errs = append(errs, fmt.Errorf("ssh.idle_timeout must not be negative, got %d", c.SSH.IdleTimeout))
	}
	if c.HTTP.MaxSessions < 0 {
		errs = append(errs, fmt.Errorf("http.max_sessions must not be negative, got %d", c.HTTP.MaxSessions))
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error", "fatal":
	default:
		errs = append(errs, fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
