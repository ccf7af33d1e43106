package puzzle

// Session owns the whole mutable puzzle world: grid, lit mask, player
// position, move count and win flag. All mutation goes through its methods,
// which recompute lighting before returning, so the lit mask is never stale
// when read.
//
// A Session is not safe for concurrent use. Callers serving several clients
// give each client its own session and serialize access to it.
type Session struct {
	level  Level
	grid   *Grid
	lit    LitMask
	player Pos
	moves  int
	won    bool
	status Status

	observers []Observer
}

// Option configures a Session.
type Option func(*Session)

// WithObserver registers a callback for completed state changes.
func WithObserver(o Observer) Option {
	return func(s *Session) {
		if o != nil {
			s.observers = append(s.observers, o)
		}
	}
}

// NewSession creates a session and loads the level into it.
func NewSession(level Level, opts ...Option) (*Session, error) {
	s := &Session{}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.LoadLevel(level); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadLevel parses the level and replaces the whole world with it: fresh
// grid and lighting, zero moves, not won. The level becomes the one Reset
// returns to. On error the session keeps its previous state.
func (s *Session) LoadLevel(level Level) error {
	grid, player, err := ParseLevel(level.Rows)
	if err != nil {
		return err
	}

	s.level = level
	s.install(grid, player)
	s.status = StatusReady
	s.emit(EventLoaded, player)
	return nil
}

// Reset reloads the session's level from its text, discarding all progress.
func (s *Session) Reset() Snapshot {
	// The level parsed once already, so it parses again.
	grid, player, err := ParseLevel(s.level.Rows)
	if err == nil {
		s.install(grid, player)
	}
	s.status = StatusRestarted
	s.emit(EventRestarted, s.player)
	return s.Snapshot()
}

// HandleAction is the single entry point for player intent at (row, col):
// interact with a lamp or switch within reach, otherwise try to step there.
// It returns the resulting snapshot and the status of this action. Targets
// outside the grid are ignored.
func (s *Session) HandleAction(row, col int) (Snapshot, Status) {
	target := P(row, col)
	if !s.grid.InBounds(target) {
		return s.Snapshot(), StatusOutOfBounds
	}

	status, kind := s.resolve(target)
	if !status.Silent() {
		s.status = status
	}
	if kind != EventNone {
		s.emit(kind, target)
	}
	return s.Snapshot(), status
}

// Level returns the level the session is playing.
func (s *Session) Level() Level {
	return s.level
}

// Player returns the current player position.
func (s *Session) Player() Pos {
	return s.player
}

// Moves returns the number of successful moves.
func (s *Session) Moves() int {
	return s.moves
}

// Won reports whether the player has reached an exit.
func (s *Session) Won() bool {
	return s.won
}

func (s *Session) install(grid *Grid, player Pos) {
	s.grid = grid
	s.player = player
	s.moves = 0
	s.won = false
	s.relight()
}

func (s *Session) relight() {
	s.lit = RecomputeLighting(s.grid)
}

func (s *Session) emit(kind EventKind, target Pos) {
	if len(s.observers) == 0 {
		return
	}
	ev := Event{
		Kind:    kind,
		LevelID: s.level.ID,
		Target:  target,
		Player:  s.player,
		Status:  s.status,
		Moves:   s.moves,
		Lit:     s.lit.Count(),
	}
	for _, o := range s.observers {
		o(ev)
	}
}
