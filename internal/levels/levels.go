// Package levels holds the built-in rooms shipped with the game.
package levels

import (
	_ "embed"
	"strings"

	"github.com/vovakirdan/lumen/internal/puzzle"
)

// EscapeID identifies the built-in room.
const EscapeID = "escape"

//go:embed escape.txt
var escapeText string

// Escape returns the fixed 9x14 room "Escape the Room Within Lights".
func Escape() puzzle.Level {
	return puzzle.Level{
		ID:   EscapeID,
		Name: "Escape the Room Within Lights",
		Rows: splitRows(escapeText),
	}
}

// ByID returns the built-in level with the given id.
func ByID(id string) (puzzle.Level, bool) {
	if id == EscapeID || id == "" {
		return Escape(), true
	}
	return puzzle.Level{}, false
}

// splitRows turns embedded level text into rows, dropping blank lines and
// carriage returns left by editors.
func splitRows(text string) []string {
	lines := strings.Split(text, "\n")
	rows := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	return rows
}
