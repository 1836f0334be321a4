package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// BoardWidth and BoardHeight mirror the fixed board size for spawn validation.
const (
	BoardWidth  = 10
	BoardHeight = 20
)

// LoadCloch loads the game rules.
// Search order: customPath -> ~/.clochfhada/configs/cloch.yaml -> ./configs/cloch.yaml -> embedded default
func LoadCloch(customPath string) (ClochConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ClochConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return ClochConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("cloch.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/cloch.yaml"); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultClochYAML)
	if err != nil {
		return DefaultClochConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML on top of the hardcoded defaults, so partial files
// only override what they mention, and validates the result.
func parse(data []byte) (ClochConfig, error) {
	cfg := DefaultClochConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports every rule that would make the game unplayable.
func Validate(cfg ClochConfig) error {
	var errs []error
	if cfg.Spawn.X < 0 || cfg.Spawn.X >= BoardWidth || cfg.Spawn.Y < 0 || cfg.Spawn.Y >= BoardHeight {
		errs = append(errs, fmt.Errorf("spawn (%d,%d) outside %dx%d board", cfg.Spawn.X, cfg.Spawn.Y, BoardWidth, BoardHeight))
	}
	if cfg.Scoring.PointsPerLine < 0 {
		errs = append(errs, errors.New("scoring.points_per_line must not be negative"))
	}
	if cfg.Scoring.LockBonus < 0 {
		errs = append(errs, errors.New("scoring.lock_bonus must not be negative"))
	}
	if cfg.Speed.LinesPerLevel <= 0 {
		errs = append(errs, errors.New("speed.lines_per_level must be positive"))
	}
	if cfg.Speed.MinIntervalMs <= 0 {
		errs = append(errs, errors.New("speed.min_interval_ms must be positive"))
	}
	if cfg.Speed.InitialIntervalMs < cfg.Speed.MinIntervalMs {
		errs = append(errs, errors.New("speed.initial_interval_ms must not be below min_interval_ms"))
	}
	if cfg.Speed.IntervalStepMs < 0 {
		errs = append(errs, errors.New("speed.interval_step_ms must not be negative"))
	}
	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".clochfhada", "configs", filename)
}
