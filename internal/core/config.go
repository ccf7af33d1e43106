package core

// RuntimeConfig carries the per-client settings the platform hands to the
// game adapter. Each terminal or SSH session gets its own copy.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	Locale   string // Catalogue language, e.g. "en" or "de"
	Player   string // Name recorded with completed runs
	ShowHelp bool   // Draw the key help line under the board
	Theme    string // Color theme name; empty selects the default
}

// DefaultConfig returns a RuntimeConfig for a standard 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		Locale:   "en",
		Player:   "player",
		ShowHelp: true,
	}
}
