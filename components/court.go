package components

import (
	"github.com/automoto/bouncy-pong/shared/simulation"
	"github.com/yohamta/donburi"
)

// CourtData owns the running match. This is a singleton component.
// Field is refreshed from the window layout before every step.
type CourtData struct {
	State *simulation.State
	Field simulation.Field
}

var Court = donburi.NewComponentType[CourtData]()
