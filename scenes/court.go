package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/bouncy-pong/components"
	cfg "github.com/automoto/bouncy-pong/config"
	"github.com/automoto/bouncy-pong/shared/simulation"
	"github.com/automoto/bouncy-pong/systems"
	"github.com/automoto/bouncy-pong/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CourtScene runs a single match against the scripted opponent.
type CourtScene struct {
	ecs    *ecs.ECS
	once   sync.Once
	width  int
	height int
}

func NewCourtScene(width, height int) *CourtScene {
	return &CourtScene{width: width, height: height}
}

// Layout records the drawable size; it is pushed into the court on the
// next Update.
func (cs *CourtScene) Layout(width, height int) {
	cs.width, cs.height = width, height
}

func (cs *CourtScene) Update() {
	cs.once.Do(cs.configure)
	systems.SetField(cs.ecs, cs.width, cs.height)
	cs.ecs.Update()
}

func (cs *CourtScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if cs.ecs == nil {
		return
	}
	cs.ecs.Draw(screen)
}

func (cs *CourtScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateSettings)
	e.AddSystem(systems.UpdateCourt)
	e.AddSystem(systems.UpdateHitboxes)
	e.AddSystem(systems.UpdateScorePulse)

	e.AddRenderer(cfg.Default, systems.DrawCourt)
	e.AddRenderer(cfg.Default, systems.DrawScore)
	e.AddRenderer(cfg.Default, systems.DrawDebug)

	cs.ecs = e

	field := simulation.Field{Width: float64(cs.width), Height: float64(cs.height)}
	factory.CreateCourt(cs.ecs, field)

	spaceEntry := factory.CreateSpace(cs.ecs, cfg.Debug.SpaceWidth, cfg.Debug.SpaceHeight, cfg.Debug.CellSize, cfg.Debug.CellSize)
	space := components.Space.Get(spaceEntry)

	snap, _ := systems.CourtSnapshot(cs.ecs)
	factory.CreateHitboxes(cs.ecs, space, snap.Near, snap.Far, snap.Ball)
}
