package simulation

// OpponentSignal is the scripted control for the far paddle. It chases the
// ball vertically, but only once the ball is within half a field width.
func OpponentSignal(ball, paddle *Entity, f Field) Signal {
	if ball.Pos.Distance(paddle.Pos) >= f.Width/2 {
		return Signal{}
	}
	return Signal{
		Down: ball.Pos.Y > paddle.Pos.Y,
		Up:   ball.Pos.Y < paddle.Pos.Y,
	}
}
