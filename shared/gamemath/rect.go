package gamemath

// Rect is an axis-aligned box anchored at its top-left corner.
type Rect struct {
	Pos  Vec2
	Size Vec2
}

func (r Rect) Right() float64 {
	return r.Pos.X + r.Size.X
}

func (r Rect) Bottom() float64 {
	return r.Pos.Y + r.Size.Y
}

// Contains reports whether p lies inside r. The near edges are inside,
// the far edges are not.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Pos.X && p.X < r.Right() &&
		p.Y >= r.Pos.Y && p.Y < r.Bottom()
}
