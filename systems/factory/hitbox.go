package factory

import (
	"github.com/automoto/bouncy-pong/archetypes"
	"github.com/automoto/bouncy-pong/components"
	"github.com/automoto/bouncy-pong/shared/gamemath"
	"github.com/automoto/bouncy-pong/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateHitboxes spawns one resolv-backed entity per court rectangle and adds
// them to space. UpdateHitboxes keeps them in sync afterwards.
func CreateHitboxes(ecs *ecs.ECS, space *resolv.Space, near, far, ball gamemath.Rect) []*donburi.Entry {
	return []*donburi.Entry{
		createHitbox(ecs, space, archetypes.Paddle, components.SourceNear, near, tags.ResolvPaddle, tags.ResolvNear),
		createHitbox(ecs, space, archetypes.Paddle, components.SourceFar, far, tags.ResolvPaddle, tags.ResolvFar),
		createHitbox(ecs, space, archetypes.Ball, components.SourceBall, ball, tags.ResolvBall),
	}
}

type spawner interface {
	Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry
}

func createHitbox(ecs *ecs.ECS, space *resolv.Space, a spawner, source components.HitboxSource, r gamemath.Rect, objTags ...string) *donburi.Entry {
	entry := a.Spawn(ecs)
	obj := resolv.NewObject(r.Pos.X, r.Pos.Y, r.Size.X, r.Size.Y, objTags...)
	obj.SetShape(resolv.NewRectangle(0, 0, r.Size.X, r.Size.Y))
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj, Source: source})
	space.Add(obj)
	return entry
}
