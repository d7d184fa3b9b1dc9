package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// stubGame records what the frame driver feeds it.
type stubGame struct {
	resets   int
	resized  int
	elapsed  []time.Duration
	inputs   []core.InputFrame
	state    core.GameState
	lastSize core.RuntimeConfig
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.lastSize = cfg
}

func (g *stubGame) Step(in core.InputFrame, elapsed time.Duration) core.StepResult {
	copied := core.NewInputFrame()
	for a, ok := range in.Actions {
		if ok {
			copied.Set(a)
		}
	}
	if in.HasPointer {
		copied.SetPointer(in.PointerX)
	}
	g.inputs = append(g.inputs, copied)
	g.elapsed = append(g.elapsed, elapsed)
	return core.StepResult{State: g.state}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "stub frame")
}

func (g *stubGame) State() core.GameState { return g.state }

// resizableStub also supports in-place resizing.
type resizableStub struct {
	stubGame
}

func (g *resizableStub) Resize(cfg core.RuntimeConfig) {
	g.resized++
	g.lastSize = cfg
}

func newTestModel(g registry.Game) Model {
	return NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 50}, nil)
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func TestNewModelReservesFooter(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g)

	if g.resets != 1 {
		t.Fatalf("Reset called %d times, expected 1", g.resets)
	}
	if g.lastSize.ScreenH != 23 || g.lastSize.ScreenW != 80 {
		t.Errorf("game size = %dx%d, expected 80x23", g.lastSize.ScreenW, g.lastSize.ScreenH)
	}
	if m.screen.Height() != 23 {
		t.Errorf("screen height = %d, expected 23", m.screen.Height())
	}
}

func TestTickForwardsElapsedTime(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	m = update(t, m, TickMsg(start))
	m = update(t, m, TickMsg(start.Add(35*time.Millisecond)))
	m = update(t, m, TickMsg(start.Add(45*time.Millisecond)))

	expected := []time.Duration{20 * time.Millisecond, 35 * time.Millisecond, 10 * time.Millisecond}
	if len(g.elapsed) != len(expected) {
		t.Fatalf("Step called %d times, expected %d", len(g.elapsed), len(expected))
	}
	for i, want := range expected {
		if g.elapsed[i] != want {
			t.Errorf("tick %d elapsed = %v, expected %v", i, g.elapsed[i], want)
		}
	}
}

func TestInputCollectedUntilTick(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g)
	now := time.Now()

	m = update(t, m, keyMsg("left"))
	m = update(t, m, keyMsg(" "))
	m = update(t, m, tea.MouseMsg{X: 30, Action: tea.MouseActionMotion})
	m = update(t, m, TickMsg(now))
	update(t, m, TickMsg(now.Add(20*time.Millisecond)))

	first := g.inputs[0]
	if !first.Has(core.ActionLeft) || !first.Has(core.ActionStart) {
		t.Error("first tick should see both key actions")
	}
	if !first.HasPointer || first.PointerX != 30 {
		t.Errorf("pointer = (%v, %d), expected (true, 30)", first.HasPointer, first.PointerX)
	}

	second := g.inputs[1]
	if second.Has(core.ActionLeft) || second.HasPointer {
		t.Error("input should be cleared after each tick")
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(&stubGame{})

	next, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit the program")
	}
	if view := next.View(); view != "" {
		t.Errorf("View() after quit = %q, expected empty", view)
	}
}

func TestResize(t *testing.T) {
	t.Run("reset", func(t *testing.T) {
		g := &stubGame{}
		m := newTestModel(g)

		m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

		if g.resets != 2 {
			t.Errorf("Reset called %d times, expected 2", g.resets)
		}
		if m.screen.Width() != 100 || m.screen.Height() != 29 {
			t.Errorf("screen = %dx%d, expected 100x29", m.screen.Width(), m.screen.Height())
		}
	})

	t.Run("in place", func(t *testing.T) {
		g := &resizableStub{}
		m := newTestModel(g)

		update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

		if g.resets != 1 || g.resized != 1 {
			t.Errorf("resets=%d resized=%d, expected 1 and 1", g.resets, g.resized)
		}
		if g.lastSize.ScreenH != 29 || g.lastSize.TickRate != 50 {
			t.Errorf("resize config = %+v", g.lastSize)
		}
	})
}

func TestReportOutcomeOnce(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g)
	now := time.Now()

	g.state = core.GameState{Score: 50, GameOver: true}
	m = update(t, m, TickMsg(now))
	if !m.reported {
		t.Fatal("outcome should be reported")
	}
	m = update(t, m, TickMsg(now.Add(time.Second)))
	if !m.reported {
		t.Error("outcome should stay reported while the game is over")
	}

	g.state = core.GameState{}
	m = update(t, m, TickMsg(now.Add(2*time.Second)))
	if m.reported {
		t.Error("a new game should clear the report flag")
	}
}

func TestViewIncludesFooter(t *testing.T) {
	m := newTestModel(&stubGame{})

	view := m.View()
	if !strings.Contains(view, "stub frame") {
		t.Error("view should contain the game frame")
	}
	for _, s := range []string{"launch", "pause", "restart", "quit"} {
		if !strings.Contains(view, s) {
			t.Errorf("footer missing %q", s)
		}
	}
}
