package factory

import (
	"github.com/automoto/bouncy-pong/archetypes"
	"github.com/automoto/bouncy-pong/components"
	"github.com/automoto/bouncy-pong/shared/simulation"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCourt spawns the court entity holding a fresh match laid out on field.
func CreateCourt(ecs *ecs.ECS, field simulation.Field) *donburi.Entry {
	court := archetypes.Court.Spawn(ecs)
	components.Court.SetValue(court, components.CourtData{
		State: simulation.New(field),
		Field: field,
	})
	return court
}
