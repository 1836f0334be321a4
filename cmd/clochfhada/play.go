package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cloch-fhada/internal/core"
	"github.com/vovakirdan/cloch-fhada/internal/games/cloch"
	"github.com/vovakirdan/cloch-fhada/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal.

Controls:
  Left/Right   - Move
  Down         - Soft drop
  Up/Space     - Rotate
  P            - Pause / resume
  Enter/N      - Start / new game
  Q/Ctrl+C     - Quit

Examples:
  clochfhada play
  clochfhada play --seed 42
  clochfhada play --config ./my-rules.yaml
  clochfhada play --log-file cloch.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	rules, err := loadRules()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// The TUI owns the terminal, so logs only go to --log-file.
	logger, closer, err := newLogger("cloch", io.Discard)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer closer.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	minW, minH := cloch.MinScreenSize()
	if width < minW || height < minH+1 {
		logger.Warn("terminal smaller than the board", "width", width, "height", height)
	}

	engine := cloch.NewEngine(rules, cloch.NewRandomSource(cfg.Seed))
	logger.Info("game started", "seed", cfg.Seed)

	if err := tui.Run(engine, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
