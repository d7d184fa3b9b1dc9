package breakout

// Start launches the ball from an Idle game. Any other status is left alone.
// The launch vector is fixed (up and to the right) and has magnitude Ball.Speed
// with the default 0.6/0.8 split.
func (sim *Sim) Start(s *State) {
	if s.Status != StatusIdle {
		return
	}
	s.Status = StatusPlaying
	s.Ball.VX = sim.cfg.Ball.Speed * sim.cfg.Physics.LaunchX
	s.Ball.VY = -sim.cfg.Ball.Speed * sim.cfg.Physics.LaunchY
}

// Reset replaces every field of s with a freshly built game, whatever its status.
// The brick slice is newly allocated, so nothing is shared with the old game.
func (sim *Sim) Reset(s *State) {
	*s = *sim.NewState()
}
