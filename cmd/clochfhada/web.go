package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cloch-fhada/internal/platform/web"
)

var flagWebAddr string

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Start the websocket bridge",
	Long: `Start an HTTP server that runs one game per websocket connection.

A browser renderer connects to /ws, sends actions as
  {"action":"left"}   (left, right, down, rotate, pause, start)
and receives a JSON snapshot of the board after every change.

Examples:
  clochfhada web
  clochfhada web --addr :9000
  clochfhada web --seed 42   # every connection gets the same pieces`,
	Args: cobra.NoArgs,
	RunE: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", ":8080", "HTTP listen address (host:port)")
}

func runWeb(_ *cobra.Command, _ []string) error {
	rules, err := loadRules()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, closer, err := newLogger("cloch-web", os.Stderr)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer closer.Close()

	cfg := web.ServerConfig{
		Address: flagWebAddr,
		Rules:   rules,
		Seed:    flagSeed,
	}
	server := web.NewServer(cfg, logger)

	fmt.Printf("Starting Cloch Fhada websocket bridge on %s/ws\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("serving: %w", err)
	}
	return nil
}
