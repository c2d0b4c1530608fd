package archetypes

import (
	"github.com/automoto/bouncy-pong/components"
	cfg "github.com/automoto/bouncy-pong/config"
	"github.com/automoto/bouncy-pong/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Court = newArchetype(
		components.Court,
		components.ScorePulse,
	)
	Paddle = newArchetype(
		tags.Paddle,
		components.Object,
	)
	Ball = newArchetype(
		tags.Ball,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
