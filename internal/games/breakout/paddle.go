package breakout

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Direction is a keyboard paddle direction.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
)

// MovePaddle moves the paddle by Speed*dt in the given direction and clamps it
// to the canvas. Only applies while Playing. dt is not capped here.
func (sim *Sim) MovePaddle(s *State, dir Direction, dt float64) {
	if s.Status != StatusPlaying {
		return
	}
	mustBeFinite("dt", dt)

	p := &s.Paddle
	switch dir {
	case DirLeft:
		p.X -= p.Speed * dt
	case DirRight:
		p.X += p.Speed * dt
	}
	sim.clampPaddle(p)
}

// SetPaddleX centres the paddle on cursorX, clamped to the canvas.
// Only applies while Playing.
func (sim *Sim) SetPaddleX(s *State, cursorX float64) {
	if s.Status != StatusPlaying {
		return
	}
	mustBeFinite("cursorX", cursorX)

	p := &s.Paddle
	p.X = cursorX - p.Width/2
	sim.clampPaddle(p)
}

func (sim *Sim) clampPaddle(p *Paddle) {
	p.X = core.ClampF(p.X, 0, sim.cfg.Canvas.Width-p.Width)
}

// mustBeFinite panics on NaN or infinite input: a caller bug that would
// otherwise silently corrupt the state.
func mustBeFinite(name string, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic(fmt.Sprintf("breakout: %s must be finite, got %v", name, v))
	}
}
