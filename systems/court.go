package systems

import (
	"github.com/automoto/bouncy-pong/components"
	cfg "github.com/automoto/bouncy-pong/config"
	"github.com/automoto/bouncy-pong/shared/simulation"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCourt advances the match by one tick using the player's input.
// Must run AFTER UpdateInput.
func UpdateCourt(ecs *ecs.ECS) {
	court, ok := getCourt(ecs)
	if !ok {
		return
	}
	// A minimised window reports no area; hold the match until it is back.
	if court.Field.Width <= 0 || court.Field.Height <= 0 {
		return
	}

	input := getOrCreateInput(ecs)
	court.State.Step(cfg.C.FrameTime(), court.Field, NearSignal(input))
}

// SetField updates the play area to the current drawable size.
func SetField(ecs *ecs.ECS, width, height int) {
	court, ok := getCourt(ecs)
	if !ok {
		return
	}
	court.Field = simulation.Field{Width: float64(width), Height: float64(height)}
}

// CourtSnapshot returns what renderers may draw this frame.
func CourtSnapshot(ecs *ecs.ECS) (simulation.Snapshot, bool) {
	court, ok := getCourt(ecs)
	if !ok {
		return simulation.Snapshot{}, false
	}
	return court.State.Snapshot(), true
}

func getCourt(ecs *ecs.ECS) (*components.CourtData, bool) {
	entry, ok := components.Court.First(ecs.World)
	if !ok {
		return nil, false
	}
	court := components.Court.Get(entry)
	if court.State == nil {
		return nil, false
	}
	return court, true
}
