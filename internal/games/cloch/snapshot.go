package cloch

// Snapshot is the read-only view of a session handed to renderers.
// It is JSON-encodable for the web bridge.
type Snapshot struct {
	Board      []string        `json:"board"` // Locked cells, one string per row, '.' = empty
	Active     *PieceSnapshot  `json:"active,omitempty"`
	Score      int             `json:"score"`
	Level      int             `json:"level"`
	Lines      int             `json:"lines"`
	IntervalMs int64           `json:"interval_ms"`
	Status     string          `json:"status"`
	LastEvent  *OutcomeSummary `json:"event,omitempty"`
}

// PieceSnapshot describes the falling piece.
type PieceSnapshot struct {
	Kind  string   `json:"kind"`
	Name  string   `json:"name"`
	Color string   `json:"color"`
	X     int      `json:"x"`
	Y     int      `json:"y"`
	Shape []string `json:"shape"` // '#' = occupied, '.' = empty
}

// OutcomeSummary reports a lock to renderers that animate line clears.
type OutcomeSummary struct {
	Cleared  int  `json:"cleared"`
	Points   int  `json:"points"`
	LevelUp  bool `json:"level_up"`
	GameOver bool `json:"game_over"`
}

// Snapshot captures the session for rendering.
func (s Session) Snapshot() Snapshot {
	snap := Snapshot{
		Board:      s.Board.Rows(),
		Score:      s.Score,
		Level:      s.Level,
		Lines:      s.Lines,
		IntervalMs: s.DropInterval.Milliseconds(),
		Status:     s.Status.String(),
	}
	if s.Active != nil {
		info := s.Active.Kind.Info()
		snap.Active = &PieceSnapshot{
			Kind:  s.Active.Kind.String(),
			Name:  info.Name,
			Color: info.Color.String(),
			X:     s.Active.Pos.X,
			Y:     s.Active.Pos.Y,
			Shape: shapeRows(s.Active.Shape),
		}
	}
	return snap
}

// WithOutcome attaches a lock summary; other outcomes are not reported.
func (snap Snapshot) WithOutcome(o Outcome) Snapshot {
	if o.Locked || o.GameOver {
		snap.LastEvent = &OutcomeSummary{
			Cleared:  o.Cleared,
			Points:   o.Points,
			LevelUp:  o.LevelUp,
			GameOver: o.GameOver,
		}
	}
	return snap
}

func shapeRows(sh Shape) []string {
	rows := make([]string, sh.Rows())
	for r := range sh.Rows() {
		buf := make([]byte, sh.Cols())
		for c := range sh.Cols() {
			buf[c] = '.'
			if sh.Filled(r, c) {
				buf[c] = '#'
			}
		}
		rows[r] = string(buf)
	}
	return rows
}
