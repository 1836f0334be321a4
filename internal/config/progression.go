package config

import "time"

// Progression derives level and drop interval from cleared lines.
type Progression struct {
	cfg SpeedConfig
}

// NewProgression creates a progression from the speed section.
func NewProgression(cfg SpeedConfig) Progression {
	return Progression{cfg: cfg}
}

// Level returns the level reached after clearing the given number of lines.
// Levels start at 1.
func (p Progression) Level(lines int) int {
	per := p.cfg.LinesPerLevel
	if per <= 0 {
		per = 1 // Prevent division by zero
	}
	if lines < 0 {
		lines = 0
	}
	return lines/per + 1
}

// DropInterval returns the automatic drop period for a level,
// never faster than the configured minimum.
func (p Progression) DropInterval(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	ms := p.cfg.InitialIntervalMs - (level-1)*p.cfg.IntervalStepMs
	if ms < p.cfg.MinIntervalMs {
		ms = p.cfg.MinIntervalMs
	}
	return time.Duration(ms) * time.Millisecond
}
