// lumen is a terminal lighting puzzle: escape the room by switching lamps
// and doors so the way to the exit is lit.
//
// Usage:
//
//	lumen play              - Play in the terminal (menu first)
//	lumen serve             - Serve remote play over SSH and/or a JSON API
//	lumen runs              - Show the best completed runs
//	lumen level             - Print the room layout
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.lumen/config.yaml)
//	--db <path>         - Run log database (default: ~/.lumen/runs.db)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/lumen/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
	flagLocale   string

	// cfg is resolved before any subcommand runs.
	cfg config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lumen",
	Short: "Lumen - escape the room within lights",
	Long: `Lumen is a small lighting puzzle for the terminal. You can only step
onto lit tiles: switch lamps on and off and flip the door switch until a lit
path leads to the exit.

Available commands:
  play     - Play in the terminal
  serve    - Start the SSH and/or HTTP servers for remote play
  runs     - Show the best completed runs
  level    - Print the room, optionally with its lighting

Examples:
  lumen play
  lumen play --direct
  lumen serve --ssh :23235 --http :8087
  lumen runs
  lumen level --lit`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run log database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLocale, "locale", "", "Message language, e.g. en or de")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(levelCmd)
}

// loadConfig resolves configuration: file, then .env and environment, then
// flags.
func loadConfig(_ *cobra.Command, _ []string) error {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	_ = godotenv.Load()
	config.ApplyEnv(&loaded)

	if flagDBPath != "" {
		loaded.Storage.Path = flagDBPath
	}
	if flagLogLevel != "" {
		loaded.Log.Level = flagLogLevel
	}
	if flagLocale != "" {
		loaded.Locale = flagLocale
	}

	if err := loaded.Validate(); err != nil {
		return err
	}
	cfg = loaded
	return nil
}
