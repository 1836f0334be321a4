package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cloch-fhada/internal/core"
	"github.com/vovakirdan/cloch-fhada/internal/games/cloch"
)

// Model is the Bubble Tea model for a game. It owns the engine and the
// current session; every accepted command replaces the session.
type Model struct {
	engine  *cloch.Engine
	session cloch.Session
	keys    KeyMap
	help    help.Model
	screen  *core.Screen
	logger  *log.Logger

	// gen tags the pending drop tick. Bumping it cancels that tick.
	gen   int
	armed time.Duration // Interval of the pending tick; 0 when none

	quitting bool
}

// NewModel creates a model with an idle session sized to cfg.
// One terminal row is reserved for the key help footer.
func NewModel(engine *cloch.Engine, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		engine:  engine,
		session: engine.NewSession(),
		keys:    DefaultKeyMap(),
		help:    h,
		screen:  core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 0)),
		logger:  logger,
	}
}

// Session returns the current session.
func (m Model) Session() cloch.Session {
	return m.session
}

// Init does nothing: the game waits on the start prompt.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(msg.Height-1, 0))
		m.help.Width = msg.Width
		return m, nil

	case dropMsg:
		if msg.gen != m.gen || m.armed == 0 {
			return m, nil
		}
		// tea.Tick fires once, so the next drop is always scheduled here.
		m.armed = 0
		return m.apply(core.ActionSoftDrop, m.engine.Tick)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	}
	return m.apply(action, func(s cloch.Session) (cloch.Session, cloch.Outcome) {
		return m.engine.Apply(s, action)
	})
}

// apply runs one command against the session and returns the drop tick
// to schedule, if any.
func (m Model) apply(action core.Action, cmd func(cloch.Session) (cloch.Session, cloch.Outcome)) (tea.Model, tea.Cmd) {
	prev := m.session
	next, out := cmd(prev)
	if !out.Accepted {
		return m, m.schedule(false)
	}
	m.session = next

	if out.Locked && out.Cleared > 0 {
		m.logger.Debug("rows cleared", "cleared", out.Cleared, "points", out.Points, "score", next.Score)
	}
	if out.LevelUp {
		m.logger.Debug("level up", "level", next.Level, "interval", next.DropInterval)
	}
	if next.Status == cloch.StatusGameOver && prev.Status != cloch.StatusGameOver {
		m.logger.Info("game over", "score", next.Score, "lines", next.Lines, "level", next.Level)
	}

	restarted := action == core.ActionStart || prev.Status != cloch.StatusRunning
	return m, m.schedule(restarted)
}

// schedule keeps exactly one drop tick pending while the session runs.
// A tick is re-armed under a new generation when the interval changes or
// the game (re)starts; pause and game over cancel the pending tick.
func (m *Model) schedule(force bool) tea.Cmd {
	if !m.session.Running() {
		if m.armed != 0 {
			m.gen++
			m.armed = 0
		}
		return nil
	}

	want := m.session.DropInterval
	if m.armed == want && !force {
		return nil
	}
	if m.armed != 0 || force {
		m.gen++
	}
	m.armed = want
	return dropCmd(m.gen, want)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	cloch.Render(m.screen, m.session)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for a local game.
func Run(engine *cloch.Engine, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(engine, cfg, logger),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
