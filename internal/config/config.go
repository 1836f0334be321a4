// Package config provides YAML-based game configuration loading and
// level/speed progression for Cloch Fhada.
package config

// ClochConfig contains all tunable rules for the game.
// The board size is fixed and intentionally absent.
type ClochConfig struct {
	Spawn   SpawnConfig   `yaml:"spawn"`
	Scoring ScoringConfig `yaml:"scoring"`
	Speed   SpeedConfig   `yaml:"speed"`
}

// SpawnConfig defines where new pieces appear (top-left of the bounding box).
type SpawnConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// ScoringConfig defines points awarded when a piece locks.
type ScoringConfig struct {
	PointsPerLine int `yaml:"points_per_line"` // Multiplied by lines cleared and level
	LockBonus     int `yaml:"lock_bonus"`      // Flat bonus on every lock
}

// SpeedConfig defines level progression and the automatic drop interval.
type SpeedConfig struct {
	LinesPerLevel     int `yaml:"lines_per_level"`
	InitialIntervalMs int `yaml:"initial_interval_ms"`
	IntervalStepMs    int `yaml:"interval_step_ms"` // Subtracted per level above 1
	MinIntervalMs     int `yaml:"min_interval_ms"`
}
