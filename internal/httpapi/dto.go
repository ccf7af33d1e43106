package httpapi

import "github.com/vovakirdan/lumen/internal/puzzle"

type posDTO struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// snapshotDTO is the wire form of a puzzle snapshot.
type snapshotDTO struct {
	Level  string   `json:"level"`
	Rows   int      `json:"rows"`
	Cols   int      `json:"cols"`
	Grid   []string `json:"grid"` // level symbols with '@' at the player
	Lit    []string `json:"lit"`  // '1' lit, '0' dark
	Player posDTO   `json:"player"`
	Moves  int      `json:"moves"`
	Won    bool     `json:"won"`
}

func toSnapshotDTO(sn puzzle.Snapshot) snapshotDTO {
	return snapshotDTO{
		Level:  sn.LevelID,
		Rows:   sn.Rows,
		Cols:   sn.Cols,
		Grid:   sn.GridRows(),
		Lit:    sn.LitRows(),
		Player: posDTO{Row: sn.Player.Row, Col: sn.Player.Col},
		Moves:  sn.Moves,
		Won:    sn.Won,
	}
}

// newSessionReq is the optional body of POST /sessions.
type newSessionReq struct {
	Level  string `json:"level"`
	Player string `json:"player"`
	Locale string `json:"locale"`
}

type newSessionRes struct {
	ID       string      `json:"id"`
	Snapshot snapshotDTO `json:"snapshot"`
}

// actionReq targets one cell.
type actionReq struct {
	Row *int `json:"row"`
	Col *int `json:"col"`
}

type actionRes struct {
	Status   string      `json:"status"`
	Message  string      `json:"message"`
	Snapshot snapshotDTO `json:"snapshot"`
}

type errorRes struct {
	Error string `json:"error"`
}
