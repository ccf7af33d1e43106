package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lumen/internal/i18n"
	"github.com/vovakirdan/lumen/internal/levels"
	"github.com/vovakirdan/lumen/internal/storage"
)

var (
	flagRunsLimit int
	flagRunsClear bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show the best completed runs",
	Long: `Display the best runs for the room, fewest moves first.

Examples:
  lumen runs
  lumen runs --limit 25
  lumen runs --clear`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete all recorded runs for the room")
}

func runRuns(_ *cobra.Command, _ []string) error {
	if cfg.Storage.Path == "" {
		return errors.New("no run database configured")
	}
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	levelID := levels.EscapeID
	catalog := i18n.New(cfg.Locale)

	if flagRunsClear {
		n, err := store.ClearRuns(levelID)
		if err != nil {
			return err
		}
		fmt.Printf("Removed %d runs.\n", n)
		return nil
	}

	runs, err := store.BestRuns(levelID, flagRunsLimit)
	if err != nil {
		return err
	}

	fmt.Printf("%s - %s\n\n", catalog.Get("RUNS_TITLE"), catalog.Get("TITLE"))

	if len(runs) == 0 {
		fmt.Println(catalog.Get("RUNS_EMPTY"))
		fmt.Println()
		fmt.Println("Play 'lumen play' to record the first escape!")
		return nil
	}

	fmt.Printf("  %-4s  %-16s  %-6s  %-16s  %s\n",
		catalog.Get("RUNS_COL_RANK"), catalog.Get("RUNS_COL_PLAYER"),
		catalog.Get("RUNS_COL_MOVES"), catalog.Get("RUNS_COL_DATE"), "Source")
	fmt.Printf("  %-4s  %-16s  %-6s  %-16s  %s\n", "----", "------", "-----", "----", "------")
	for i, r := range runs {
		dateStr := r.CompletedAt.Local().Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-16s  %-6d  %-16s  %s\n", i+1, r.Player, r.Moves, dateStr, r.Source)
	}

	stats, err := store.LevelStats(levelID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println(catalog.Get("RUNS_STATS", stats.Runs, stats.Players, stats.AvgMoves))
	return nil
}
