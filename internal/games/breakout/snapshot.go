package breakout

import "math"

// Snapshot is a flat copy of the simulation state for replay comparison.
// It shares no memory with the game.
type Snapshot struct {
	Status  Status
	Score   int
	BallX   float64
	BallY   float64
	BallVX  float64
	BallVY  float64
	PaddleX float64
	Alive   []bool // row-major, one entry per brick
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.state.Snapshot()
}

// Snapshot returns a copy of the state's mutable fields.
func (s *State) Snapshot() Snapshot {
	alive := make([]bool, len(s.Bricks))
	for i := range s.Bricks {
		alive[i] = s.Bricks[i].Alive
	}
	return Snapshot{
		Status:  s.Status,
		Score:   s.Score,
		BallX:   s.Ball.X,
		BallY:   s.Ball.Y,
		BallVX:  s.Ball.VX,
		BallVY:  s.Ball.VY,
		PaddleX: s.Paddle.X,
		Alive:   alive,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
// Floats are hashed by bit pattern, so any difference in the last bit shows.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Status) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	for _, f := range []float64{snap.BallX, snap.BallY, snap.BallVX, snap.BallVY, snap.PaddleX} {
		h = h*31 + math.Float64bits(f)
	}
	for _, alive := range snap.Alive {
		h *= 31
		if alive {
			h++
		}
	}
	return h
}
