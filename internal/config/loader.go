package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the configuration file.
const (
	EnvDB       = "LUMEN_DB"
	EnvLogLevel = "LUMEN_LOG_LEVEL"
	EnvLogFile  = "LUMEN_LOG_FILE"
	EnvLocale   = "LUMEN_LOCALE"
	EnvSSHAddr  = "LUMEN_SSH_ADDR"
	EnvHTTPAddr = "LUMEN_HTTP_ADDR"
	EnvPlayer   = "LUMEN_PLAYER"
	EnvShowHelp = "LUMEN_SHOW_HELP"
	EnvTheme    = "LUMEN_THEME"
)

// localConfigPath is checked relative to the working directory.
const localConfigPath = "configs/lumen.yaml"

// Load loads the configuration.
// Search order: customPath -> ~/.lumen/config.yaml -> ./configs/lumen.yaml -> embedded default.
// Keys missing from the chosen file keep their default values. Only an
// explicit customPath that cannot be read or parsed is an error.
func Load(customPath string) (Config, error) {
	return loadFrom(customPath, userConfigPath("config.yaml"), localConfigPath)
}

func loadFrom(customPath, userPath, localPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Default(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Default(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userPath, localPath} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	cfg, err := parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML over the built-in defaults.
func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lumen", filename)
}

// ApplyEnv overrides cfg with LUMEN_* variables from the process
// environment. Unset or empty variables leave the value alone.
func ApplyEnv(cfg *Config) {
	applyVars(cfg, os.Getenv)
}

// ApplyEnvFile overrides cfg with LUMEN_* variables from a .env file
// without touching the process environment.
func ApplyEnvFile(cfg *Config, path string) error {
	vars, err := godotenv.Read(path)
	if err != nil {
		return fmt.Errorf("failed to read env file %s: %w", path, err)
	}
	applyVars(cfg, func(key string) string { return vars[key] })
	return nil
}

func applyVars(cfg *Config, get func(string) string) {
	set := func(key string, dst *string) {
		if v := get(key); v != "" {
			*dst = v
		}
	}
	set(EnvDB, &cfg.Storage.Path)
	set(EnvLogLevel, &cfg.Log.Level)
	set(EnvLogFile, &cfg.Log.File)
	set(EnvLocale, &cfg.Locale)
	set(EnvSSHAddr, &cfg.SSH.Address)
	set(EnvHTTPAddr, &cfg.HTTP.Address)
	set(EnvPlayer, &cfg.Display.PlayerName)
	set(EnvTheme, &cfg.Display.Theme)

	if v := get(EnvShowHelp); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Display.ShowHelp = b
		}
	}
}
