package systems

import (
	"github.com/automoto/bouncy-pong/components"
	"github.com/automoto/bouncy-pong/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHitboxes copies the court rectangles onto their resolv objects so
// the hitbox space matches what is drawn. Runs after UpdateCourt.
func UpdateHitboxes(ecs *ecs.ECS) {
	snap, ok := CourtSnapshot(ecs)
	if !ok {
		return
	}

	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)

		var r gamemath.Rect
		switch obj.Source {
		case components.SourceNear:
			r = snap.Near
		case components.SourceFar:
			r = snap.Far
		case components.SourceBall:
			r = snap.Ball
		}

		obj.X, obj.Y = r.Pos.X, r.Pos.Y
		obj.W, obj.H = r.Size.X, r.Size.Y
		obj.Update()
	}
}
