package main

import (
	"fmt"
	"strings"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/lumen/internal/core"
	"github.com/vovakirdan/lumen/internal/game"
	"github.com/vovakirdan/lumen/internal/levels"
	"github.com/vovakirdan/lumen/internal/puzzle"
)

var (
	flagLevelLit   bool
	flagLevelPlain bool
)

var levelCmd = &cobra.Command{
	Use:   "level",
	Short: "Print the room layout",
	Long: `Print the room in level notation. With --lit the initial lighting is
shown instead: dark tiles appear as dots, just as they do in play.

Legend:
  #  wall           .  floor          @  player
  L  lamp (off)     *  lamp (on)      S  switch
  D  locked door    /  open door      E  exit

Examples:
  lumen level
  lumen level --lit
  lumen level --plain`,
	Args: cobra.NoArgs,
	RunE: runLevel,
}

func init() {
	levelCmd.Flags().BoolVar(&flagLevelLit, "lit", false, "Show the initial lighting")
	levelCmd.Flags().BoolVar(&flagLevelPlain, "plain", false, "Disable colors")
}

// levelStyles maps color roles to terminal styles.
var levelStyles = map[core.Color]color.Style{
	core.ColorDark:       {color.FgDarkGray},
	core.ColorWall:       {color.FgGray},
	core.ColorFloor:      {color.FgWhite},
	core.ColorLampOff:    {color.FgYellow},
	core.ColorLampOn:     {color.FgLightYellow, color.OpBold},
	core.ColorSwitch:     {color.FgLightBlue},
	core.ColorDoorLocked: {color.FgLightRed},
	core.ColorDoorOpen:   {color.FgWhite},
	core.ColorExit:       {color.FgLightGreen, color.OpBold},
	core.ColorPlayer:     {color.FgLightYellow, color.BgBlack, color.OpBold},
}

func runLevel(_ *cobra.Command, _ []string) error {
	if flagLevelPlain {
		color.Disable()
	}

	level := levels.Escape()
	session, err := puzzle.NewSession(level)
	if err != nil {
		return err
	}
	snap := session.Snapshot()

	fmt.Printf("%s (%dx%d)\n\n", level.Name, snap.Rows, snap.Cols)
	fmt.Print(renderLevel(snap, flagLevelLit))

	if flagLevelLit {
		fmt.Printf("\nLit tiles: %d of %d\n", snap.LitCount(), snap.Rows*snap.Cols)
	}
	return nil
}

// renderLevel draws the snapshot one character per tile.
func renderLevel(snap puzzle.Snapshot, lit bool) string {
	var b strings.Builder
	for r := 0; r < snap.Rows; r++ {
		for c := 0; c < snap.Cols; c++ {
			p := puzzle.P(r, c)
			isPlayer := p == snap.Player

			var ch rune
			var role core.Color
			switch {
			case lit:
				ch, role = game.Glyph(snap.Cell(p), isPlayer)
			case isPlayer:
				ch, role = '@', core.ColorPlayer
			default:
				tile := snap.Tile(p)
				ch, role = tile.Symbol(), game.TileColor(tile)
			}

			if style, ok := levelStyles[role]; ok {
				b.WriteString(style.Sprint(string(ch)))
			} else {
				b.WriteRune(ch)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
