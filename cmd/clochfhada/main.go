// clochfhada is a Celtic falling-stone puzzle for the terminal.
//
// Usage:
//
//	clochfhada play     - Play in this terminal
//	clochfhada serve    - Start SSH server for remote play
//	clochfhada web      - Start websocket bridge for a browser renderer
//	clochfhada pieces   - Show the stone legend
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for a reproducible piece sequence
//	--config <path>     - Use a custom rules YAML
//	--log-file <path>   - Write logs to a file (play is silent otherwise)
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cloch-fhada/internal/config"
	"github.com/vovakirdan/cloch-fhada/internal/games/cloch"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "clochfhada",
	Short: "Cloch Fhada - Celtic stone puzzle in your terminal",
	Long: `Cloch Fhada ("long stone") is a falling-block puzzle with Celtic
standing stones. Clear rows to raise the level; every ten rows the stones
fall faster.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  web      - Start websocket bridge for a browser renderer
  pieces   - Show the stone legend

Examples:
  clochfhada play
  clochfhada play --seed 42
  clochfhada serve --ssh :2222
  clochfhada web --addr :8080
  clochfhada pieces`,
}

func init() {
	// Errors are printed once by main.
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(piecesCmd)
}

// loadRules reads the rules configuration selected by --config.
func loadRules() (cloch.Rules, error) {
	cfg, err := config.LoadCloch(flagConfig)
	if err != nil {
		return cloch.Rules{}, err
	}
	return cloch.RulesFromConfig(cfg), nil
}

// newLogger builds a logger for a surface. Output goes to --log-file when
// set, otherwise to fallback. The returned closer releases the file.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var out io.Writer = fallback
	var closer io.Closer = io.NopCloser(nil)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closer = f, f
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}
