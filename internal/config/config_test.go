package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestEmbeddedDefaultsMatchDefault(t *testing.T) {
	cfg, err := parse(defaultYAML)
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults drifted from Default():\n got %+v\nwant %+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "lumen.yaml", `
locale: de
log:
  level: debug
ssh:
  address: ":2222"
`)

	cfg, err := loadFrom(path, "", "")
	if err != nil {
		t.Fatalf("loadFrom() failed: %v", err)
	}
	if cfg.Locale != "de" || cfg.Log.Level != "debug" || cfg.SSH.Address != ":2222" {
		t.Errorf("file values not applied: %+v", cfg)
	}
	// Keys the file leaves out keep their defaults.
	if cfg.HTTP.Address != ":8087" || cfg.SSH.IdleTimeout != 30 || !cfg.Display.ShowHelp {
		t.Errorf("defaults lost for missing keys: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := loadFrom(filepath.Join(dir, "missing.yaml"), "", ""); err == nil {
		t.Error("missing custom config should be an error")
	}

	bad := writeFile(t, dir, "bad.yaml", "locale: [unterminated")
	_, err := loadFrom(bad, "", "")
	if err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("malformed custom config error = %v", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	dir := t.TempDir()
	user := writeFile(t, dir, "user.yaml", "locale: de\n")
	local := writeFile(t, dir, "local.yaml", "locale: fr\n")
	broken := writeFile(t, dir, "broken.yaml", "locale: [\n")

	tests := []struct {
		name        string
		user, local string
		want        string
	}{
		{"user wins", user, local, "de"},
		{"local when no user file", filepath.Join(dir, "none.yaml"), local, "fr"},
		{"broken user file skipped", broken, local, "fr"},
		{"embedded default last", "", "", "en"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := loadFrom("", tc.user, tc.local)
			if err != nil {
				t.Fatalf("loadFrom() failed: %v", err)
			}
			if cfg.Locale != tc.want {
				t.Errorf("Locale = %q, want %q", cfg.Locale, tc.want)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvDB, "/tmp/lumen-test.db")
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvLocale, "de")
	t.Setenv(EnvHTTPAddr, "127.0.0.1:9000")
	t.Setenv(EnvShowHelp, "false")
	t.Setenv(EnvTheme, "mono")
	t.Setenv(EnvSSHAddr, "")

	cfg := Default()
	ApplyEnv(&cfg)

	if cfg.Storage.Path != "/tmp/lumen-test.db" || cfg.Log.Level != "warn" || cfg.Locale != "de" {
		t.Errorf("env not applied: %+v", cfg)
	}
	if cfg.HTTP.Address != "127.0.0.1:9000" || cfg.Display.ShowHelp || cfg.Display.Theme != "mono" {
		t.Errorf("env not applied: %+v", cfg)
	}
	if cfg.SSH.Address != ":23235" {
		t.Errorf("empty variable overrode ssh.address: %q", cfg.SSH.Address)
	}
}

func TestApplyEnvFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), ".env", `
# local overrides
LUMEN_PLAYER=ada
LUMEN_LOG_FILE="/var/log/lumen.log"
UNRELATED=1
`)

	cfg := Default()
	if err := ApplyEnvFile(&cfg, path); err != nil {
		t.Fatalf("ApplyEnvFile() failed: %v", err)
	}
	if cfg.Display.PlayerName != "ada" || cfg.Log.File != "/var/log/lumen.log" {
		t.Errorf("env file not applied: %+v", cfg)
	}
	if _, ok := os.LookupEnv(EnvPlayer); ok {
		t.Error("ApplyEnvFile must not touch the process environment")
	}

	if err := ApplyEnvFile(&cfg, filepath.Join(t.TempDir(), "nope.env")); err == nil {
		t.Error("missing env file should be an error")
	}
}

func TestValidate(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default() is invalid: %v", err)
	}

	cfg := Default()
	cfg.Log.Level = "loud"
	cfg.SSH.IdleTimeout = -1
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"log.level", "ssh.idle_timeout"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestIdleTimeoutDuration(t *testing.T) {
	if got := Default().SSH.IdleTimeoutDuration(); got != 30*time.Minute {
		t.Errorf("IdleTimeoutDuration() = %v", got)
	}
}
