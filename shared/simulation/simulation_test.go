package simulation

import (
	"math"
	"math/rand"
	"testing"

	"github.com/automoto/bouncy-pong/shared/gamemath"
)

var testField = Field{Width: 800, Height: 450}

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestNewLaysOutMatch(t *testing.T) {
	s := New(testField)

	if s.Near.Pos != gamemath.V(0, 225) {
		t.Fatalf("near pos = %v, want (0,225)", s.Near.Pos)
	}
	if s.Far.Pos != gamemath.V(790, 225) {
		t.Fatalf("far pos = %v, want (790,225)", s.Far.Pos)
	}
	if s.Ball.Pos != testField.Center() {
		t.Fatalf("ball pos = %v, want %v", s.Ball.Pos, testField.Center())
	}
	if !near(s.Ball.Vel.X, -130) || !near(s.Ball.Vel.Y, -130) {
		t.Fatalf("ball vel = %v, want (-130,-130)", s.Ball.Vel)
	}
	if !s.Armed {
		t.Fatal("new match should start armed")
	}
	if s.Score != (Score{}) {
		t.Fatalf("score = %v, want 0-0", s.Score)
	}
}

func TestControlPaddleTopClamp(t *testing.T) {
	p := Entity{Pos: gamemath.V(0, 0), Size: gamemath.V(PaddleWidth, PaddleHeight), Vel: gamemath.V(0, -50)}
	coast := 0.3

	ControlPaddle(&p, Signal{Up: true}, &coast, 1.0/60, testField)

	if p.Pos.Y != 2 {
		t.Fatalf("pos.y = %v, want 2", p.Pos.Y)
	}
	if p.Vel.Y != 25 {
		t.Fatalf("vel.y = %v, want 25", p.Vel.Y)
	}
	if coast != 0.3 {
		t.Fatalf("coast = %v, want untouched 0.3", coast)
	}
}

func TestControlPaddleBottomClamp(t *testing.T) {
	p := Entity{Pos: gamemath.V(0, 440), Size: gamemath.V(PaddleWidth, PaddleHeight), Vel: gamemath.V(0, 80)}
	var coast float64

	ControlPaddle(&p, Signal{Down: true}, &coast, 1.0/60, testField)

	if want := testField.Height - PaddleHeight - 1; p.Pos.Y != want {
		t.Fatalf("pos.y = %v, want %v", p.Pos.Y, want)
	}
	if p.Vel.Y != -40 {
		t.Fatalf("vel.y = %v, want -40", p.Vel.Y)
	}
}

func TestControlPaddleImpulse(t *testing.T) {
	tests := []struct {
		name string
		sig  Signal
		want float64
	}{
		{"down", Signal{Down: true}, 12},
		{"up", Signal{Up: true}, 8},
		{"down wins over up", Signal{Down: true, Up: true}, 12},
	}
	for _, tt := range tests {
		p := Entity{Pos: gamemath.V(0, 100), Size: gamemath.V(PaddleWidth, PaddleHeight), Vel: gamemath.V(0, 10)}
		coast := 0.7
		ControlPaddle(&p, tt.sig, &coast, 1.0/60, testField)
		if p.Vel.Y != tt.want {
			t.Fatalf("%s: vel.y = %v, want %v", tt.name, p.Vel.Y, tt.want)
		}
		if coast != 0 {
			t.Fatalf("%s: coast = %v, want 0", tt.name, coast)
		}
		if p.Pos.Y != 100 {
			t.Fatalf("%s: control moved the paddle to %v", tt.name, p.Pos.Y)
		}
	}
}

func TestControlPaddleCoastFivePercent(t *testing.T) {
	p := Entity{Pos: gamemath.V(790, 100), Size: gamemath.V(PaddleWidth, PaddleHeight), Vel: gamemath.V(0, 100)}
	var coast float64

	ControlPaddle(&p, Signal{}, &coast, 1, testField)

	if !near(coast, 0.05) {
		t.Fatalf("coast = %v, want 0.05", coast)
	}
	if !near(p.Vel.Y, 95) {
		t.Fatalf("vel.y = %v, want 95", p.Vel.Y)
	}
}

func TestControlPaddleCoastAlwaysSlowsDown(t *testing.T) {
	for _, dt := range []float64{0.001, 1.0 / 60, 0.5, 1, 5, 100} {
		for _, v := range []float64{-300, -2, 0, 2, 300} {
			p := Entity{Pos: gamemath.V(0, 200), Size: gamemath.V(PaddleWidth, PaddleHeight), Vel: gamemath.V(0, v)}
			var coast float64
			ControlPaddle(&p, Signal{}, &coast, dt, testField)

			before, after := math.Abs(v), math.Abs(p.Vel.Y)
			if v == 0 && after != 0 {
				t.Fatalf("dt=%v: resting paddle started moving: %v", dt, p.Vel.Y)
			}
			if v != 0 && after >= before {
				t.Fatalf("dt=%v v=%v: |vel| went from %v to %v", dt, v, before, after)
			}
		}
	}
}

func TestControlPaddleCoastAccumulates(t *testing.T) {
	p := Entity{Pos: gamemath.V(0, 200), Size: gamemath.V(PaddleWidth, PaddleHeight), Vel: gamemath.V(0, 100)}
	coast := 0.1

	ControlPaddle(&p, Signal{}, &coast, 0, testField)
	if coast != 0.1 {
		t.Fatalf("coast = %v, want 0.1 after a zero-length frame", coast)
	}
	if !near(p.Vel.Y, 90) {
		t.Fatalf("vel.y = %v, want 90", p.Vel.Y)
	}

	for i := 0; i < 1000; i++ {
		ControlPaddle(&p, Signal{}, &coast, 1, testField)
	}
	if coast != MaxCoast {
		t.Fatalf("coast = %v, want capped at %v", coast, MaxCoast)
	}
	if p.Vel.Y != 0 {
		t.Fatalf("vel.y = %v, want 0 after a long coast", p.Vel.Y)
	}
}

func TestPaddleStaysInsideField(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := New(testField)
	dt := 1.0 / 60

	for i := 0; i < 20000; i++ {
		sig := Signal{Down: rng.Intn(3) == 0, Up: rng.Intn(3) == 0}
		ControlPaddle(&s.Near, sig, &s.NearCoast, dt, testField)

		y := s.Near.Pos.Y
		if y < EdgeThreshold || y > testField.Height-PaddleHeight {
			t.Fatalf("frame %d: paddle y = %v after control, outside [%v, %v]",
				i, y, EdgeThreshold, testField.Height-PaddleHeight)
		}
		s.Near.integrate(dt)
	}
}

func TestOpponentSignal(t *testing.T) {
	paddle := &Entity{Pos: gamemath.V(790, 200)}

	tests := []struct {
		name string
		ball gamemath.Vec2
		want Signal
	}{
		{"below and close", gamemath.V(700, 250), Signal{Down: true}},
		{"above and close", gamemath.V(700, 150), Signal{Up: true}},
		{"level", gamemath.V(700, 200), Signal{}},
		{"below but far", gamemath.V(100, 250), Signal{}},
		{"just past half a field", gamemath.V(390, 200+0.0001), Signal{}},
	}
	for _, tt := range tests {
		ball := &Entity{Pos: tt.ball}
		if got := OpponentSignal(ball, paddle, testField); got != tt.want {
			t.Fatalf("%s: got %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestUpdateBallWalls(t *testing.T) {
	s := New(testField)
	s.Ball.Pos = gamemath.V(400, 0.5)
	s.Ball.Vel = gamemath.V(50, -60)

	s.UpdateBall(testField)
	if s.Ball.Pos.Y != 2 || s.Ball.Vel != gamemath.V(50, 60) {
		t.Fatalf("top bounce: pos=%v vel=%v", s.Ball.Pos, s.Ball.Vel)
	}

	s.Ball.Pos = gamemath.V(400, 447)
	s.UpdateBall(testField)
	if want := testField.Height - BallSize - 1; s.Ball.Pos.Y != want {
		t.Fatalf("bottom bounce: pos.y = %v, want %v", s.Ball.Pos.Y, want)
	}
	if s.Ball.Vel != gamemath.V(50, -60) {
		t.Fatalf("bottom bounce: vel = %v, want (50,-60)", s.Ball.Vel)
	}
}

func TestBallLeavesLeftScoresFar(t *testing.T) {
	s := New(testField)
	s.Ball.Pos = gamemath.V(0.5, testField.Height/2)
	s.Ball.Vel = gamemath.V(-130, -130)

	s.Integrate(1.0 / 60)
	if s.Ball.Pos.X >= 0 {
		t.Fatalf("ball x = %v, want negative after one frame", s.Ball.Pos.X)
	}

	s.UpdateBall(testField)
	if s.Ball.Pos != testField.Center() {
		t.Fatalf("ball pos = %v, want centre %v", s.Ball.Pos, testField.Center())
	}
	if s.Ball.Vel != gamemath.V(130, 130) {
		t.Fatalf("ball vel = %v, want (130,130)", s.Ball.Vel)
	}
	if s.Score != (Score{Near: 0, Far: 1}) {
		t.Fatalf("score = %+v, want far=1 near=0", s.Score)
	}
}

func TestBallLeavesRightScoresNear(t *testing.T) {
	s := New(testField)
	s.Ball.Pos = gamemath.V(testField.Width+0.1, 100)
	s.Ball.Vel = gamemath.V(130, -20)

	s.UpdateBall(testField)
	if s.Ball.Pos != testField.Center() {
		t.Fatalf("ball pos = %v, want centre", s.Ball.Pos)
	}
	if s.Ball.Vel != gamemath.V(-130, 20) {
		t.Fatalf("ball vel = %v, want (-130,20)", s.Ball.Vel)
	}
	if s.Score != (Score{Near: 1}) {
		t.Fatalf("score = %+v, want near=1", s.Score)
	}
}

func TestPaddleBounceRegistersOnce(t *testing.T) {
	s := New(testField)
	s.Near.Pos = gamemath.V(0, 100)
	s.Ball.Pos = gamemath.V(5, 110)
	s.Ball.Vel = gamemath.V(-130, 0)

	s.UpdateBall(testField)
	if s.Armed {
		t.Fatal("bounce should disarm")
	}
	if s.Ball.Vel != gamemath.V(130, 0) {
		t.Fatalf("vel = %v, want (130,0)", s.Ball.Vel)
	}

	// Still inside the paddle next frame: no second bounce.
	s.Ball.Pos = gamemath.V(6, 110)
	s.UpdateBall(testField)
	if s.Ball.Vel != gamemath.V(130, 0) {
		t.Fatalf("double bounce: vel = %v", s.Ball.Vel)
	}

	// Even the far paddle is ignored until the ball re-arms.
	s.Far.Pos = gamemath.V(100, 100)
	s.Ball.Pos = gamemath.V(105, 110)
	s.UpdateBall(testField)
	if s.Armed || s.Ball.Vel != gamemath.V(130, 0) {
		t.Fatalf("disarmed ball bounced: armed=%v vel=%v", s.Armed, s.Ball.Vel)
	}
}

func TestFarPaddleBounce(t *testing.T) {
	s := New(testField)
	s.Ball.Pos = gamemath.V(792, 230)
	s.Ball.Vel = gamemath.V(130, 40)

	s.UpdateBall(testField)
	if s.Armed || s.Ball.Vel != gamemath.V(-130, -40) {
		t.Fatalf("far bounce: armed=%v vel=%v", s.Armed, s.Ball.Vel)
	}
}

func TestRearmUsesHalfFieldHeight(t *testing.T) {
	s := New(testField)
	s.Armed = false

	// Half the width is not the re-arm point on a non-square field.
	s.Ball.Pos = gamemath.V(testField.Width/2, 100)
	s.UpdateBall(testField)
	if s.Armed {
		t.Fatal("re-armed at half the field width")
	}

	s.Ball.Pos = gamemath.V(testField.Height/2+0.5, 100)
	s.UpdateBall(testField)
	if !s.Armed {
		t.Fatal("did not re-arm within the band around half the field height")
	}

	s.Armed = false
	s.Ball.Pos = gamemath.V(testField.Height/2+RearmWindow, 100)
	s.UpdateBall(testField)
	if s.Armed {
		t.Fatal("band edge is exclusive")
	}
}

func TestStepIntegratesLast(t *testing.T) {
	s := New(testField)
	s.Near.Pos = gamemath.V(0, 100)
	dt := 0.5

	s.Step(dt, testField, Signal{Down: true})

	if s.Near.Vel != gamemath.V(0, PaddleImpulse) {
		t.Fatalf("near vel = %v, want (0,%v)", s.Near.Vel, PaddleImpulse)
	}
	if s.Near.Pos.Y != 100+PaddleImpulse*dt {
		t.Fatalf("near y = %v, want %v", s.Near.Pos.Y, 100+PaddleImpulse*dt)
	}
	want := testField.Center().Add(BallStartVelocity.Scale(dt))
	if !near(s.Ball.Pos.X, want.X) || !near(s.Ball.Pos.Y, want.Y) {
		t.Fatalf("ball pos = %v, want %v", s.Ball.Pos, want)
	}
}

func TestStepDrivesOpponent(t *testing.T) {
	s := New(testField)
	s.Ball.Pos = gamemath.V(700, 300)
	s.Ball.Vel = gamemath.V(0, 0)

	s.Step(1.0/60, testField, Signal{})
	if s.Far.Vel.Y != PaddleImpulse {
		t.Fatalf("far vel.y = %v, want %v", s.Far.Vel.Y, PaddleImpulse)
	}
	if s.FarCoast != 0 {
		t.Fatalf("far coast = %v, want 0 while chasing", s.FarCoast)
	}
	if s.NearCoast == 0 {
		t.Fatal("idle near paddle should accumulate coast")
	}
}

func TestStepReadsFieldEachFrame(t *testing.T) {
	s := New(testField)
	s.Far.Pos = gamemath.V(790, 400)

	small := Field{Width: 800, Height: 300}
	s.Step(0, small, Signal{})
	if want := small.Height - PaddleHeight - BottomInset; s.Far.Pos.Y != want {
		t.Fatalf("far y = %v, want %v after the field shrank", s.Far.Pos.Y, want)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := New(testField)
	snap := s.Snapshot()
	snap.Ball.Pos = gamemath.V(-1, -1)
	snap.Score.Near = 99

	if s.Ball.Pos == snap.Ball.Pos || s.Score.Near == 99 {
		t.Fatal("snapshot aliases the live state")
	}
	if snap.Near.Size != gamemath.V(PaddleWidth, PaddleHeight) {
		t.Fatalf("near size = %v", snap.Near.Size)
	}
}
