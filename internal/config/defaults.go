package config

import (
	_ "embed"
)

//go:embed defaults/lumen.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Storage: StorageConfig{
			Path: "~/.lumen/runs.db",
		},
		Log: LogConfig{
			Level: "info",
		},
		Locale: "en",
		SSH: SSHConfig{
			Address:     ":23235",
			HostKey:     "~/.lumen/host_key",
			IdleTimeout: 30,
		},
		HTTP: HTTPConfig{
			Address:     ":8087",
			MaxSessions: 1000,
		},
		Display: DisplayConfig{
			ShowHelp: true,
			Theme:    "default",
		},
	}
}
