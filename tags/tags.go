package tags

import "github.com/yohamta/donburi"

var (
	Paddle = donburi.NewTag().SetName("Paddle")
	Ball   = donburi.NewTag().SetName("Ball")
)

// Resolv tags for hitboxes
const (
	ResolvPaddle = "paddle"
	ResolvNear   = "near"
	ResolvFar    = "far"
	ResolvBall   = "ball"
)
