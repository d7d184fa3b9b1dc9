package breakout

import "math"

// Events reports what happened during one Update. It carries no state; the
// frame driver may use it for logging and may ignore it.
type Events uint8

const (
	EventWall Events = 1 << iota
	EventPaddle
	EventBrick
	EventWon
	EventLost
)

// Has reports whether e includes every bit of other.
func (e Events) Has(other Events) bool {
	return e&other == other
}

// Update advances a Playing game by dt seconds. Other statuses are left untouched.
//
// The step is capped at Physics.MaxStep, integrated with a single explicit
// Euler step, then resolved in a fixed order: side walls, top wall, bottom
// (loss, which ends the frame), paddle, bricks and the win check.
func (sim *Sim) Update(s *State, dt float64) Events {
	if s.Status != StatusPlaying {
		return 0
	}
	mustBeFinite("dt", dt)

	dt = math.Min(dt, sim.cfg.Physics.MaxStep)

	ball := &s.Ball
	ball.X += ball.VX * dt
	ball.Y += ball.VY * dt

	var ev Events
	w, h := sim.cfg.Canvas.Width, sim.cfg.Canvas.Height

	if ball.X-ball.Radius < 0 {
		ball.X = ball.Radius
		ball.VX = math.Abs(ball.VX)
		ev |= EventWall
	} else if ball.X+ball.Radius > w {
		ball.X = w - ball.Radius
		ball.VX = -math.Abs(ball.VX)
		ev |= EventWall
	}

	if ball.Y-ball.Radius < 0 {
		ball.Y = ball.Radius
		ball.VY = math.Abs(ball.VY)
		ev |= EventWall
	}

	if ball.Y+ball.Radius > h {
		s.Status = StatusLost
		return ev | EventLost
	}

	if sim.bouncePaddle(ball, &s.Paddle) {
		ev |= EventPaddle
	}

	ev |= sim.breakBricks(s)
	return ev
}

// bouncePaddle reflects a descending ball off the paddle. The horizontal speed
// follows where the ball struck: centre sends it straight up, edges send it
// out at a sharp angle.
func (sim *Sim) bouncePaddle(ball *Ball, paddle *Paddle) bool {
	if ball.VY <= 0 || !ball.Box().Overlaps(paddle.Box()) {
		return false
	}

	ball.VY = -math.Abs(ball.VY)
	ball.Y = paddle.Y - ball.Radius

	// Deliberately unclamped.
	offset := (ball.X - paddle.CenterX()) / (paddle.Width / 2)
	speed := math.Hypot(ball.VX, ball.VY)
	ball.VX = offset * speed * sim.cfg.Physics.PaddleDeflection

	if minVY := speed * sim.cfg.Physics.MinVerticalRatio; math.Abs(ball.VY) < minVY {
		ball.VY = -minVY
	}
	return true
}

// breakBricks destroys every live brick the ball overlaps and reflects the ball.
//
// The shallower penetration depth is taken as the side that was hit; equal
// depths are a corner and flip both axes. Flip requests from all bricks hit in
// the same frame are OR-combined, so each axis flips at most once.
func (sim *Sim) breakBricks(s *State) Events {
	ball := &s.Ball
	ballBox := ball.Box()

	var ev Events
	flipX, flipY := false, false

	for i := range s.Bricks {
		brick := &s.Bricks[i]
		if !brick.Alive {
			continue
		}
		brickBox := brick.Box()
		if !ballBox.Overlaps(brickBox) {
			continue
		}

		brick.Alive = false
		s.Score += brick.Points
		ev |= EventBrick

		dx, dy := ballBox.Depth(brickBox)
		switch {
		case dx < dy:
			flipX = true
		case dy < dx:
			flipY = true
		default:
			flipX, flipY = true, true
		}
	}

	if flipX {
		ball.VX = -ball.VX
	}
	if flipY {
		ball.VY = -ball.VY
	}

	if s.AliveBricks() == 0 {
		s.Status = StatusWon
		ev |= EventWon
	}
	return ev
}
