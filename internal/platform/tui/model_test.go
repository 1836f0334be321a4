package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cloch-fhada/internal/core"
	"github.com/vovakirdan/cloch-fhada/internal/games/cloch"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionSoftDrop},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionRotate},
		{"p", runeKey('p'), core.ActionPause},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart},
		{"n", runeKey('n'), core.ActionStart},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func newTestModel() Model {
	engine := cloch.NewEngine(cloch.DefaultRules(), cloch.NewRandomSource(42))
	return NewModel(engine, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 42}, nil)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func TestModelStartsIdle(t *testing.T) {
	m := newTestModel()
	if cmd := m.Init(); cmd != nil {
		t.Error("Init should not schedule anything while idle")
	}
	if m.Session().Status != cloch.StatusIdle {
		t.Errorf("status = %v, expected idle", m.Session().Status)
	}

	// Movement before start is ignored and schedules nothing.
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if cmd != nil {
		t.Error("rejected key should not schedule a drop")
	}
	if m.Session().Status != cloch.StatusIdle {
		t.Error("rejected key should leave the session idle")
	}
}

func TestModelStartArmsDrop(t *testing.T) {
	m := newTestModel()
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Session().Status != cloch.StatusRunning {
		t.Fatalf("status = %v, expected running", m.Session().Status)
	}
	if cmd == nil {
		t.Fatal("start should schedule a drop tick")
	}
	if m.armed != m.Session().DropInterval {
		t.Errorf("armed = %v, expected %v", m.armed, m.Session().DropInterval)
	}

	// A horizontal move keeps the pending tick.
	gen := m.gen
	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if cmd != nil {
		t.Error("move should not re-arm the drop tick")
	}
	if m.gen != gen {
		t.Error("move should not change the tick generation")
	}
}

func TestModelDropTick(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	y := m.Session().Active.Pos.Y

	m, cmd := update(t, m, dropMsg{gen: m.gen})
	if m.Session().Active.Pos.Y != y+1 {
		t.Errorf("piece y = %d, expected %d", m.Session().Active.Pos.Y, y+1)
	}
	if cmd == nil {
		t.Error("a drop should schedule the next one")
	}
}

func TestModelStaleDropIgnored(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	stale := m.gen

	// Restart re-arms under a new generation.
	m, _ = update(t, m, runeKey('n'))
	if m.gen == stale {
		t.Fatal("restart should bump the tick generation")
	}

	before := m.Session()
	m, cmd := update(t, m, dropMsg{gen: stale})
	if cmd != nil {
		t.Error("stale tick should not schedule anything")
	}
	if m.Session().Active.Pos != before.Active.Pos {
		t.Error("stale tick should not move the piece")
	}
}

func TestModelPauseCancelsDrop(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	running := m.gen

	m, cmd := update(t, m, runeKey('p'))
	if m.Session().Status != cloch.StatusPaused {
		t.Fatalf("status = %v, expected paused", m.Session().Status)
	}
	if cmd != nil {
		t.Error("pause should not schedule a drop")
	}

	// The tick armed before the pause must not move the piece.
	before := m.Session()
	m, _ = update(t, m, dropMsg{gen: running})
	if m.Session().Active.Pos != before.Active.Pos {
		t.Error("tick delivered while paused moved the piece")
	}

	m, cmd = update(t, m, runeKey('p'))
	if m.Session().Status != cloch.StatusRunning {
		t.Fatalf("status = %v, expected running after resume", m.Session().Status)
	}
	if cmd == nil {
		t.Error("resume should re-arm the drop tick")
	}
	if m.gen == running {
		t.Error("resume should use a fresh tick generation")
	}
}

// levelUpSession is one row short of level 2 with a Spear hanging over
// the gap, so the next drop clears the tenth line.
func levelUpSession() cloch.Session {
	return cloch.Session{
		Board:        cloch.ParseBoard("III....III"),
		Active:       &cloch.ActivePiece{Piece: cloch.NewPiece(cloch.KindI), Pos: core.Point{X: 3, Y: 19}},
		Level:        1,
		Lines:        9,
		DropInterval: time.Second,
		Status:       cloch.StatusRunning,
	}
}

func TestModelLevelUpRearmsDrop(t *testing.T) {
	m := newTestModel()
	m.session = levelUpSession()
	m.gen = 1
	m.armed = time.Second

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyDown})

	s := m.Session()
	if s.Level != 2 || s.Lines != 10 {
		t.Fatalf("level=%d lines=%d, expected level 2 after 10 lines", s.Level, s.Lines)
	}
	if s.DropInterval != 900*time.Millisecond {
		t.Errorf("DropInterval = %v, expected 900ms", s.DropInterval)
	}
	if m.armed != 900*time.Millisecond {
		t.Errorf("armed = %v, expected 900ms", m.armed)
	}
	if m.gen != 2 {
		t.Errorf("gen = %d, expected 2 so the 1s tick is cancelled", m.gen)
	}
	if cmd == nil {
		t.Fatal("level up should schedule a tick at the new interval")
	}

	// The tick armed at the old speed is now stale.
	before := m.Session()
	m, cmd = update(t, m, dropMsg{gen: 1})
	if cmd != nil || m.Session().Active.Pos != before.Active.Pos {
		t.Error("tick from the previous interval should be ignored")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel()
	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel()
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 90, Height: 30})
	view := m.View()

	if !strings.Contains(view, "CLOCH FHADA") {
		t.Error("view should contain the title")
	}
	if !strings.Contains(view, "quit") {
		t.Error("view should end with the key help footer")
	}
	if got := len(strings.Split(view, "\n")); got != 30 {
		t.Errorf("view has %d lines, expected 30", got)
	}
}

func TestRenderScreenGroupsColors(t *testing.T) {
	s := core.NewScreen(4, 1)
	s.DrawTextColor(0, 0, "ab", core.ColorEmerald)
	s.DrawTextColor(2, 0, "cd", core.ColorAmber)

	out := RenderScreen(s)
	if !strings.Contains(out, "ab") || !strings.Contains(out, "cd") {
		t.Errorf("RenderScreen lost text: %q", out)
	}
}
