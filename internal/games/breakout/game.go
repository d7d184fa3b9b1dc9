package breakout

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Terminals deliver auto-repeated key presses instead of key-down/key-up
// events, so a press is treated as holding the key for this long. It spans
// the usual initial repeat delay; the opposite key releases it early.
const keyHold = 500 * time.Millisecond

// Minimum terminal size that still shows every brick column.
const (
	minScreenW = 40
	minScreenH = 16
)

// gameConfig is the configuration used by games created after SetConfig.
var gameConfig = config.DefaultBreakoutConfig()

// SetConfig sets the configuration for games created afterwards.
// Call it before starting the UI or the SSH server.
func SetConfig(cfg config.BreakoutConfig) {
	gameConfig = cfg
}

// Game adapts the simulation to the arcade platform: it turns input frames
// into simulation calls, drives Update with the elapsed tick time and renders
// the state into a cell screen.
type Game struct {
	sim   *Sim
	state *State

	runtime        core.RuntimeConfig
	layout         layout
	screenTooSmall bool

	paused              bool
	holdLeft, holdRight time.Duration
}

// New creates a new Breakout game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Breakout"
}

// Reset builds a fresh game for the given runtime.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.sim = NewSim(gameConfig)
	g.state = g.sim.NewState()
	g.layout = newLayout(runtime.ScreenW, runtime.ScreenH, gameConfig.Canvas)
	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH
	g.paused = false
	g.holdLeft, g.holdRight = 0, 0
}

// Resize adapts the layout to a new screen size and keeps the game running.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	if g.sim == nil {
		g.Reset(runtime)
		return
	}
	g.runtime = runtime
	g.layout = newLayout(runtime.ScreenW, runtime.ScreenH, g.sim.Config().Canvas)
	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH
}

// Step applies one frame of input and advances the simulation by elapsed.
func (g *Game) Step(in core.InputFrame, elapsed time.Duration) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.sim.Reset(g.state)
		g.paused = false
		g.holdLeft, g.holdRight = 0, 0
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && (g.paused || g.state.Status == StatusPlaying) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// A stalled tick must not teleport the paddle or burn the key hold.
	elapsed = min(elapsed, g.maxStep())

	if in.Has(core.ActionStart) {
		g.sim.Start(g.state)
	}

	g.updatePaddle(in, elapsed)
	g.sim.Update(g.state, elapsed.Seconds())

	return core.StepResult{State: g.State()}
}

// maxStep is the longest frame the simulation accepts.
func (g *Game) maxStep() time.Duration {
	return time.Duration(g.sim.Config().Physics.MaxStep * float64(time.Second))
}

// updatePaddle feeds keyboard holds or the pointer into the simulation.
// The pointer wins when both arrive in the same frame.
func (g *Game) updatePaddle(in core.InputFrame, elapsed time.Duration) {
	if in.Has(core.ActionLeft) {
		g.holdLeft, g.holdRight = keyHold, 0
	}
	if in.Has(core.ActionRight) {
		g.holdRight, g.holdLeft = keyHold, 0
	}

	area := g.layout.area
	switch {
	case in.HasPointer && in.PointerX >= area.X && in.PointerX < area.Right():
		g.sim.SetPaddleX(g.state, g.layout.canvasX(in.PointerX))
	case g.holdLeft > 0:
		g.sim.MovePaddle(g.state, DirLeft, elapsed.Seconds())
	case g.holdRight > 0:
		g.sim.MovePaddle(g.state, DirRight, elapsed.Seconds())
	}

	g.holdLeft = max(g.holdLeft-elapsed, 0)
	g.holdRight = max(g.holdRight-elapsed, 0)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	renderState(dst, g.state, g.layout, g.sim.Config().Bricks.Cols, g.paused)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		GameOver: g.state.Status == StatusWon || g.state.Status == StatusLost,
		Won:      g.state.Status == StatusWon,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
}
