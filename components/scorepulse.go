package components

import (
	"github.com/automoto/bouncy-pong/shared/simulation"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScorePulseData flashes the score readout after a goal.
// Value runs from 1 (full highlight) to 0 (plain).
type ScorePulseData struct {
	Tween *gween.Tween
	Seen  simulation.Score
	Value float32
}

var ScorePulse = donburi.NewComponentType[ScorePulseData]()
