package systems

import (
	"github.com/automoto/bouncy-pong/components"
	cfg "github.com/automoto/bouncy-pong/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateScorePulse starts a highlight fade whenever the score changes and
// advances it every tick.
func UpdateScorePulse(ecs *ecs.ECS) {
	entry, ok := components.ScorePulse.First(ecs.World)
	if !ok {
		return
	}
	pulse := components.ScorePulse.Get(entry)

	if snap, ok := CourtSnapshot(ecs); ok && snap.Score != pulse.Seen {
		pulse.Seen = snap.Score
		pulse.Tween = gween.New(1, 0, cfg.HUD.PulseDuration, ease.OutQuad)
		pulse.Value = 1
	}

	if pulse.Tween == nil {
		return
	}
	value, finished := pulse.Tween.Update(float32(cfg.C.FrameTime()))
	pulse.Value = value
	if finished {
		pulse.Tween = nil
		pulse.Value = 0
	}
}
