package gamemath

// Rebound reverses v and scales it by damping. A damping of 1 is a
// perfect reflection.
func Rebound(v Vec2, damping float64) Vec2 {
	return v.Neg().Scale(damping)
}

// Decay moves v toward rest by the interpolation factor t.
func Decay(v Vec2, t float64) Vec2 {
	return v.Lerp(Vec2{}, t)
}

// ClampFloat clamps a value to [lo, hi].
func ClampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
