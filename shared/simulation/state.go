package simulation

import "github.com/automoto/bouncy-pong/shared/gamemath"

// Field is the play area. It matches the drawable window size and may change
// between frames.
type Field struct {
	Width  float64
	Height float64
}

func (f Field) Center() gamemath.Vec2 {
	return gamemath.V(f.Width/2, f.Height/2)
}

// Score counts points per side. Near scores when the ball leaves past the
// far side and vice versa.
type Score struct {
	Near int
	Far  int
}

// Signal is a paddle control pair for one frame.
type Signal struct {
	Down bool
	Up   bool
}

// State is the whole game. It is owned by a single frame loop.
type State struct {
	Near Entity
	Far  Entity
	Ball Entity

	Score Score

	// Armed is true while the ball may bounce off a paddle. It is cleared by
	// a bounce and set again once the ball returns to the re-arm band.
	Armed bool

	NearCoast float64
	FarCoast  float64
}

// New lays out a fresh match on the given field.
func New(f Field) *State {
	paddleSize := gamemath.V(PaddleWidth, PaddleHeight)
	return &State{
		Near: Entity{
			Pos:  gamemath.V(0, f.Height/2),
			Size: paddleSize,
		},
		Far: Entity{
			Pos:  gamemath.V(f.Width-PaddleWidth, f.Height/2),
			Size: paddleSize,
		},
		Ball: Entity{
			Pos:  f.Center(),
			Size: gamemath.V(BallSize, BallSize),
			Vel:  BallStartVelocity,
		},
		Armed: true,
	}
}

// Snapshot is a read-only view of State for renderers.
type Snapshot struct {
	Near  gamemath.Rect
	Far   gamemath.Rect
	Ball  gamemath.Rect
	Score Score
}

func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Near:  s.Near.Rect(),
		Far:   s.Far.Rect(),
		Ball:  s.Ball.Rect(),
		Score: s.Score,
	}
}
