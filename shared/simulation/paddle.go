package simulation

import "github.com/automoto/bouncy-pong/shared/gamemath"

// ControlPaddle applies one frame of control to a paddle.
//
// A paddle that has drifted past the top or bottom of the field is pushed
// back inside and rebounds at half speed; no input is read that frame.
// Otherwise a held direction adds an impulse and resets coast, and an idle
// paddle grows coast and decays its velocity toward rest by that factor.
func ControlPaddle(p *Entity, sig Signal, coast *float64, dt float64, f Field) {
	switch {
	case p.Pos.Y < EdgeThreshold:
		p.Vel = gamemath.Rebound(p.Vel, PaddleDamping)
		p.Pos.Y = TopClamp
	case p.Pos.Y > p.bottomLimit(f):
		p.Vel = gamemath.Rebound(p.Vel, PaddleDamping)
		p.Pos.Y = p.bottomLimit(f) - BottomInset
	case sig.Down:
		p.Vel = p.Vel.Add(gamemath.V(0, PaddleImpulse))
		*coast = 0
	case sig.Up:
		p.Vel = p.Vel.Add(gamemath.V(0, -PaddleImpulse))
		*coast = 0
	default:
		*coast = gamemath.ClampFloat(*coast+dt*Slipperiness, 0, MaxCoast)
		p.Vel = gamemath.Decay(p.Vel, *coast)
	}
}
