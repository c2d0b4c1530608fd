package simulation

import "github.com/automoto/bouncy-pong/shared/gamemath"

// Entity is a paddle or the ball.
type Entity struct {
	Pos  gamemath.Vec2
	Size gamemath.Vec2
	Vel  gamemath.Vec2
}

func (e *Entity) Rect() gamemath.Rect {
	return gamemath.Rect{Pos: e.Pos, Size: e.Size}
}

// Contains reports whether p lies in the entity's rectangle.
func (e *Entity) Contains(p gamemath.Vec2) bool {
	return e.Rect().Contains(p)
}

// bottomLimit is the largest Y the entity may occupy before it is
// considered past the bottom of the field.
func (e *Entity) bottomLimit(f Field) float64 {
	return f.Height - e.Size.Y
}

// integrate advances the entity by its velocity over dt seconds.
func (e *Entity) integrate(dt float64) {
	e.Pos = e.Pos.Add(e.Vel.Scale(dt))
}
