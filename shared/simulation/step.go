package simulation

// Step advances the game by one frame of dt seconds. near is the player's
// control for this frame; the far paddle is driven by OpponentSignal.
//
// Paddles respond before the ball is resolved, and positions are integrated
// last so every velocity change of the frame is applied.
func (s *State) Step(dt float64, f Field, near Signal) {
	ControlPaddle(&s.Near, near, &s.NearCoast, dt, f)
	ControlPaddle(&s.Far, OpponentSignal(&s.Ball, &s.Far, f), &s.FarCoast, dt, f)
	s.UpdateBall(f)
	s.Integrate(dt)
}

// Integrate moves the ball and both paddles by their velocities.
func (s *State) Integrate(dt float64) {
	s.Ball.integrate(dt)
	s.Near.integrate(dt)
	s.Far.integrate(dt)
}
