// Package web bridges a game session to a browser renderer over a
// websocket. Each connection plays its own game.
package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/cloch-fhada/internal/driver"
	"github.com/vovakirdan/cloch-fhada/internal/games/cloch"
)

// ServerConfig holds configuration for the websocket bridge.
type ServerConfig struct {
	// Address is the host:port to listen on (e.g., ":8080").
	Address string

	// Rules are shared by every connection.
	Rules cloch.Rules

	// Seed fixes the piece sequence of every game. 0 seeds from the clock.
	Seed int64
}

// DefaultServerConfig returns a config with sensible defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Address: ":8080",
		Rules:   cloch.DefaultRules(),
	}
}

// Server accepts websocket connections on /ws.
type Server struct {
	config   ServerConfig
	upgrader websocket.Upgrader
	http     *http.Server
	logger   *log.Logger

	ctx    context.Context // Cancelled on shutdown; parent of every game
	cancel context.CancelFunc
}

// NewServer creates a bridge server. A nil logger logs to stderr.
func NewServer(cfg ServerConfig, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "cloch-web",
		})
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		config: cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
	s.http = &http.Server{
		Addr:              cfg.Address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the HTTP routes of the bridge.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	return mux
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	start := time.Now()
	logger := s.logger.With("remote", r.RemoteAddr)
	logger.Info("session started")

	seed := s.config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	engine := cloch.NewEngine(s.config.Rules, cloch.NewRandomSource(seed))

	conn := newConnection(ws, logger)
	d := driver.New(engine, conn.publish, logger)

	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()

	go conn.writePump()

	runDone := make(chan struct{})
	go func() {
		defer close(runDone)
		defer conn.close()
		if err := d.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("game loop failed", "error", err)
		}
	}()

	conn.readPump(ctx, d)
	cancel()
	<-runDone

	logger.Info("session ended", "duration", time.Since(start).Round(time.Second))
}

// ListenAndServe starts the server and blocks until SIGINT or SIGTERM.
func (s *Server) ListenAndServe() error {
	s.logger.Info("starting websocket bridge", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errc := make(chan error, 1)
	go func() {
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case err := <-errc:
		s.cancel()
		return fmt.Errorf("web server: %w", err)
	case <-done:
	}
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown stops accepting connections and ends every running game.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Hijacked websocket connections are not tracked by http.Server.
	s.cancel()
	return s.http.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *Server) Addr() string {
	return s.config.Address
}
