// Package driver runs a game session on its own goroutine for renderers
// that are not Bubble Tea programs. It owns the current session, applies
// actions one at a time, and keeps a drop ticker armed with the session's
// drop interval.
package driver

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cloch-fhada/internal/core"
	"github.com/vovakirdan/cloch-fhada/internal/games/cloch"
)

// ErrStopped is returned by Send after Run has returned.
var ErrStopped = errors.New("driver: stopped")

// Listener receives a snapshot after every accepted command and once at
// startup. It is called on the driver goroutine and must not block.
type Listener func(cloch.Snapshot)

// Driver serializes player actions and drop ticks into one session.
type Driver struct {
	engine  *cloch.Engine
	session cloch.Session
	notify  Listener
	logger  *log.Logger

	actions chan core.Action
	done    chan struct{}

	ticker *time.Ticker
	armed  time.Duration // Period the ticker runs at; 0 while stopped
}

// New creates a driver with an idle session. A nil logger discards output.
func New(engine *cloch.Engine, notify Listener, logger *log.Logger) *Driver {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if notify == nil {
		notify = func(cloch.Snapshot) {}
	}
	return &Driver{
		engine:  engine,
		session: engine.NewSession(),
		notify:  notify,
		logger:  logger,
		actions: make(chan core.Action),
		done:    make(chan struct{}),
	}
}

// Send queues an action. It blocks until the driver takes it, the context
// ends, or the driver stops.
func (d *Driver) Send(ctx context.Context, a core.Action) error {
	select {
	case d.actions <- a:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-d.done:
		return ErrStopped
	}
}

// Run processes actions and ticks until ctx is done.
func (d *Driver) Run(ctx context.Context) error {
	defer close(d.done)
	defer d.stop()

	d.notify(d.session.Snapshot())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case a := <-d.actions:
			if a == core.ActionQuit {
				return nil
			}
			d.apply(a == core.ActionStart, func(s cloch.Session) (cloch.Session, cloch.Outcome) {
				return d.engine.Apply(s, a)
			})

		case <-d.tickC():
			d.apply(false, d.engine.Tick)
		}
	}
}

// apply runs one command, publishes the result if it was accepted, and
// re-arms the ticker. start marks a (re)start of the game.
func (d *Driver) apply(start bool, cmd func(cloch.Session) (cloch.Session, cloch.Outcome)) {
	prev := d.session
	next, out := cmd(prev)
	if !out.Accepted {
		return
	}
	d.session = next

	if out.Locked {
		d.logger.Debug("piece locked", "cleared", out.Cleared, "points", out.Points, "score", next.Score)
	}
	if out.LevelUp {
		d.logger.Debug("level up", "level", next.Level, "interval", next.DropInterval)
	}
	if next.Status == cloch.StatusGameOver && prev.Status != cloch.StatusGameOver {
		d.logger.Info("game over", "score", next.Score, "lines", next.Lines, "level", next.Level)
	}

	// A restart or resume needs a full period before the first drop even
	// when the interval is unchanged.
	restarted := start || prev.Status != cloch.StatusRunning
	d.rearm(restarted)

	d.notify(next.Snapshot().WithOutcome(out))
}

// rearm keeps the ticker in step with the session: stopped unless running,
// reset whenever the drop interval differs from the armed one.
func (d *Driver) rearm(force bool) {
	if !d.session.Running() {
		d.stop()
		return
	}
	want := d.session.DropInterval
	if want == d.armed && !force {
		return
	}
	if d.ticker == nil {
		d.ticker = time.NewTicker(want)
	} else {
		d.ticker.Reset(want)
	}
	d.armed = want
	d.logger.Debug("drop timer armed", "interval", want)
}

func (d *Driver) stop() {
	if d.ticker != nil && d.armed != 0 {
		d.ticker.Stop()
		d.logger.Debug("drop timer stopped")
	}
	d.armed = 0
}

// tickC returns the ticker channel, or nil (blocks forever) while stopped.
func (d *Driver) tickC() <-chan time.Time {
	if d.ticker == nil || d.armed == 0 {
		return nil
	}
	return d.ticker.C
}
