package config

import (
	_ "embed"
)

//go:embed defaults/cloch.yaml
var defaultClochYAML []byte

// DefaultClochConfig returns the built-in rules.
func DefaultClochConfig() ClochConfig {
	return ClochConfig{
		Spawn: SpawnConfig{
			X: 4,
			Y: 0,
		},
		Scoring: ScoringConfig{
			PointsPerLine: 100,
			LockBonus:     10,
		},
		Speed: SpeedConfig{
			LinesPerLevel:     10,
			InitialIntervalMs: 1000,
			IntervalStepMs:    100,
			MinIntervalMs:     100,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultClochYAML
}
