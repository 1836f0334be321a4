package cloch

import (
	"github.com/vovakirdan/cloch-fhada/internal/config"
	"github.com/vovakirdan/cloch-fhada/internal/core"
)

// Rules holds the scoring, spawn and speed parameters of a game.
type Rules struct {
	Spawn         core.Point
	PointsPerLine int
	LockBonus     int
	Progression   config.Progression
}

// RulesFromConfig builds rules from a loaded configuration.
func RulesFromConfig(cfg config.ClochConfig) Rules {
	return Rules{
		Spawn:         core.Point{X: cfg.Spawn.X, Y: cfg.Spawn.Y},
		PointsPerLine: cfg.Scoring.PointsPerLine,
		LockBonus:     cfg.Scoring.LockBonus,
		Progression:   config.NewProgression(cfg.Speed),
	}
}

// DefaultRules returns the standard rules: spawn at (4,0), 100 points per
// line times level, +10 per lock, a level every 10 lines, and a drop
// interval from 1000ms down to 100ms in 100ms steps.
func DefaultRules() Rules {
	return RulesFromConfig(config.DefaultClochConfig())
}

// LockScore returns the points for a lock that cleared the given number
// of rows while at the given level.
func (r Rules) LockScore(cleared, level int) int {
	return cleared*r.PointsPerLine*level + r.LockBonus
}
