package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Status is the coarse game phase.
type Status int

const (
	StatusIdle    Status = iota // Ball resting on the paddle, waiting for launch
	StatusPlaying               // Simulation running
	StatusWon                   // Every brick destroyed
	StatusLost                  // Ball left through the bottom
)

// String returns a lowercase name for the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Ball is the ball in canvas units. X, Y is the centre.
type Ball struct {
	X, Y   float64
	Radius float64
	VX, VY float64 // units per second
}

// Box returns the ball's bounding square.
func (b Ball) Box() core.Box {
	return core.BoxAround(b.X, b.Y, b.Radius)
}

// Paddle is the player's paddle. X, Y is the top-left corner; Y never changes.
type Paddle struct {
	X, Y          float64
	Width, Height float64
	Speed         float64 // units per second
}

// Box returns the paddle rectangle.
func (p Paddle) Box() core.Box {
	return core.Box{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// CenterX returns the horizontal centre of the paddle.
func (p Paddle) CenterX() float64 {
	return p.X + p.Width/2
}

// Brick is one cell of the grid. Geometry is fixed at creation; only Alive changes.
type Brick struct {
	X, Y          float64
	Width, Height float64
	Alive         bool
	Points        int
}

// Box returns the brick rectangle.
func (b Brick) Box() core.Box {
	return core.Box{X: b.X, Y: b.Y, W: b.Width, H: b.Height}
}

// State is the whole mutable game: the only thing the simulation writes.
// Bricks are stored row-major.
type State struct {
	Status Status
	Score  int
	Ball   Ball
	Paddle Paddle
	Bricks []Brick
}

// AliveBricks counts the bricks still standing.
func (s *State) AliveBricks() int {
	n := 0
	for i := range s.Bricks {
		if s.Bricks[i].Alive {
			n++
		}
	}
	return n
}

// Sim runs the breakout rules against a State.
// It closes over an immutable configuration and holds no game state itself,
// so one Sim may serve any number of States.
type Sim struct {
	cfg config.BreakoutConfig
}

// NewSim creates a simulation for the given configuration.
func NewSim(cfg config.BreakoutConfig) *Sim {
	return &Sim{cfg: cfg}
}

// Config returns the configuration the simulation was built with.
func (sim *Sim) Config() config.BreakoutConfig {
	return sim.cfg
}

// NewState builds a fresh Idle game: full brick grid, centred paddle and the
// ball resting just above it. Every call returns an independent value.
func (sim *Sim) NewState() *State {
	paddle := sim.newPaddle()
	return &State{
		Status: StatusIdle,
		Score:  0,
		Ball:   sim.newBall(paddle),
		Paddle: paddle,
		Bricks: sim.newBricks(),
	}
}

// newBricks lays out the grid row by row.
func (sim *Sim) newBricks() []Brick {
	b := sim.cfg.Bricks
	width := sim.cfg.BrickWidth()

	bricks := make([]Brick, 0, b.Rows*b.Cols)
	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			bricks = append(bricks, Brick{
				X:      b.Padding + float64(col)*(width+b.Padding),
				Y:      b.OffsetY + float64(row)*(b.Height+b.Padding),
				Width:  width,
				Height: b.Height,
				Alive:  true,
				Points: b.Points,
			})
		}
	}
	return bricks
}

func (sim *Sim) newPaddle() Paddle {
	p := sim.cfg.Paddle
	return Paddle{
		X:      (sim.cfg.Canvas.Width - p.Width) / 2,
		Y:      sim.cfg.Canvas.Height - p.BottomOffset,
		Width:  p.Width,
		Height: p.Height,
		Speed:  p.Speed,
	}
}

// newBall rests the ball one unit above the paddle's top edge.
func (sim *Sim) newBall(paddle Paddle) Ball {
	r := sim.cfg.Ball.Radius
	return Ball{
		X:      paddle.CenterX(),
		Y:      paddle.Y - r - 1,
		Radius: r,
	}
}
