package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lumen/internal/core"
	"github.com/vovakirdan/lumen/internal/i18n"
	"github.com/vovakirdan/lumen/internal/levels"
	"github.com/vovakirdan/lumen/internal/platform/tui"
)

var flagDirect bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal. The main menu offers the game, the
instructions and the best runs; --direct skips the menu.

Controls:
  Mouse click     - Act on a tile next to you
  Arrows/WASD     - Step up, down, left, right
  y u b n         - Act diagonally
  Space/E         - Act on your own tile
  R               - Restart the room
  Esc             - Back to the menu
  Q/Ctrl+C        - Quit

Examples:
  lumen play
  lumen play --direct
  lumen play --locale de`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagDirect, "direct", false, "Skip the menu and start the room")
}

func runPlay(_ *cobra.Command, _ []string) error {
	// The alternate screen owns the terminal; logs only go to a file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		Locale:   cfg.Locale,
		Player:   playerName(),
		ShowHelp: cfg.Display.ShowHelp,
		Theme:    cfg.Display.Theme,
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	level := levels.Escape()
	if !flagDirect {
		return tui.RunMenu(level, store, rc, logger)
	}

	g, err := tui.NewGame(level, i18n.New(rc.Locale), logger)
	if err != nil {
		return fmt.Errorf("cannot load level: %w", err)
	}
	return tui.Run(g, store, rc, logger)
}
