package cloch

import (
	"time"

	"github.com/vovakirdan/cloch-fhada/internal/core"
)

// Status is the play state of a session.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusPaused
	StatusGameOver
)

// String returns the wire name of the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// ActivePiece is the falling piece and the top-left of its bounding box.
type ActivePiece struct {
	Piece
	Pos core.Point
}

// Cells returns the absolute board coordinates the piece occupies.
func (a ActivePiece) Cells() []core.Point {
	offs := a.Shape.Offsets()
	for i := range offs {
		offs[i] = offs[i].Add(a.Pos.X, a.Pos.Y)
	}
	return offs
}

// Session is one game's complete state. It is a value: engine commands
// take a session and return the next one. Active is nil before the first
// spawn and after game over; the pointed-to piece is never mutated.
type Session struct {
	Board        Board
	Active       *ActivePiece
	Score        int
	Level        int
	Lines        int
	DropInterval time.Duration
	Status       Status
}

// Running reports whether ticks and moves are accepted.
func (s Session) Running() bool {
	return s.Status == StatusRunning
}

// DisplayBoard returns the locked board with the active piece overlaid.
func (s Session) DisplayBoard() Board {
	if s.Active == nil {
		return s.Board
	}
	return s.Board.Place(s.Active.Piece, s.Active.Pos)
}

// Outcome describes what a command did.
type Outcome struct {
	Accepted bool // Session changed
	Locked   bool // Active piece was merged into the board
	Cleared  int  // Rows removed by the lock
	Points   int  // Score gained
	LevelUp  bool
	GameOver bool // The command ended the game
}

// Engine applies commands to sessions under a fixed set of rules.
// It holds no session state of its own; the piece source is its only
// mutable part.
type Engine struct {
	rules  Rules
	source PieceSource
}

// NewEngine creates an engine. A nil source falls back to a random source
// seeded with 1.
func NewEngine(rules Rules, source PieceSource) *Engine {
	if source == nil {
		source = NewRandomSource(1)
	}
	return &Engine{rules: rules, source: source}
}

// Rules returns the engine rules.
func (e *Engine) Rules() Rules {
	return e.rules
}

// NewSession returns an idle session waiting for Start.
func (e *Engine) NewSession() Session {
	return Session{
		Level:        1,
		DropInterval: e.rules.Progression.DropInterval(1),
		Status:       StatusIdle,
	}
}

// Start returns a fresh running session with its first piece spawned.
// It is also the restart command: any prior session is discarded.
func (e *Engine) Start() Session {
	s := e.NewSession()
	s.Status = StatusRunning
	return e.Spawn(s)
}

// Spawn puts a new random piece at the spawn point. If it does not fit,
// the session is over.
func (e *Engine) Spawn(s Session) Session {
	piece := NewPiece(e.source.Next())
	if !CanPlace(piece, e.rules.Spawn, s.Board) {
		s.Active = nil
		s.Status = StatusGameOver
		return s
	}
	s.Active = &ActivePiece{Piece: piece, Pos: e.rules.Spawn}
	return s
}

// Tick is the automatic one-row drop.
func (e *Engine) Tick(s Session) (Session, Outcome) {
	return e.Move(s, 0, 1, false)
}

// Move shifts (and optionally rotates) the active piece. A legal candidate
// is committed. An illegal downward move locks the piece where it is;
// any other illegal move is ignored.
func (e *Engine) Move(s Session, dx, dy int, rotate bool) (Session, Outcome) {
	if !s.Running() || s.Active == nil {
		return s, Outcome{}
	}

	candidate := s.Active.Piece
	if rotate {
		candidate = candidate.Rotated()
	}
	pos := s.Active.Pos.Add(dx, dy)

	if CanPlace(candidate, pos, s.Board) {
		s.Active = &ActivePiece{Piece: candidate, Pos: pos}
		return s, Outcome{Accepted: true}
	}

	if dy > 0 {
		return e.lock(s)
	}
	return s, Outcome{}
}

// lock merges the unmoved active piece, clears rows, scores, and spawns
// the next piece.
func (e *Engine) lock(s Session) (Session, Outcome) {
	board := s.Board.Place(s.Active.Piece, s.Active.Pos)
	board, cleared := board.ClearFullRows()

	points := e.rules.LockScore(cleared, s.Level)
	prevLevel := s.Level

	s.Board = board
	s.Score += points
	s.Lines += cleared
	s.Level = e.rules.Progression.Level(s.Lines)
	s.DropInterval = e.rules.Progression.DropInterval(s.Level)

	s = e.Spawn(s)

	return s, Outcome{
		Accepted: true,
		Locked:   true,
		Cleared:  cleared,
		Points:   points,
		LevelUp:  s.Level > prevLevel,
		GameOver: s.Status == StatusGameOver,
	}
}

// Pause suspends a running session.
func (e *Engine) Pause(s Session) (Session, Outcome) {
	if s.Status != StatusRunning {
		return s, Outcome{}
	}
	s.Status = StatusPaused
	return s, Outcome{Accepted: true}
}

// Resume continues a paused session.
func (e *Engine) Resume(s Session) (Session, Outcome) {
	if s.Status != StatusPaused {
		return s, Outcome{}
	}
	s.Status = StatusRunning
	return s, Outcome{Accepted: true}
}

// TogglePause pauses a running session or resumes a paused one.
func (e *Engine) TogglePause(s Session) (Session, Outcome) {
	if s.Status == StatusPaused {
		return e.Resume(s)
	}
	return e.Pause(s)
}

// Apply translates a player action into the matching command.
// Actions that are not game commands leave the session unchanged.
func (e *Engine) Apply(s Session, a core.Action) (Session, Outcome) {
	switch a {
	case core.ActionLeft:
		return e.Move(s, -1, 0, false)
	case core.ActionRight:
		return e.Move(s, 1, 0, false)
	case core.ActionSoftDrop:
		return e.Move(s, 0, 1, false)
	case core.ActionRotate:
		return e.Move(s, 0, 0, true)
	case core.ActionPause:
		return e.TogglePause(s)
	case core.ActionStart:
		next := e.Start()
		return next, Outcome{Accepted: true, GameOver: next.Status == StatusGameOver}
	default:
		return s, Outcome{}
	}
}
