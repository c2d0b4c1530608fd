package simulation

import "github.com/automoto/bouncy-pong/shared/gamemath"

const (
	PaddleWidth  = 10.0
	PaddleHeight = 30.0
	BallSize     = 4.0

	PaddleImpulse = 2.0  // velocity added per frame while a direction is held
	Slipperiness  = 0.05 // coast accumulator growth per second of idle
	MaxCoast      = 1.0  // coast factor at which the paddle is fully at rest

	EdgeThreshold = 1.0 // distance from the top edge that triggers a clamp
	TopClamp      = 2.0 // position an entity is moved to after touching the top
	BottomInset   = 1.0 // gap left between an entity and the bottom edge
	PaddleDamping = 0.5 // share of speed a paddle keeps after hitting an edge
	RearmWindow   = 1.0 // half-width of the band that re-arms paddle collisions
)

// BallStartVelocity is the serve velocity of the first rally.
var BallStartVelocity = gamemath.V(-100, -100).Scale(1.3)
