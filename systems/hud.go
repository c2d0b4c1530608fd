package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/bouncy-pong/components"
	cfg "github.com/automoto/bouncy-pong/config"
	"github.com/automoto/bouncy-pong/fonts"
	"github.com/automoto/bouncy-pong/shared/simulation"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawScore renders the "near     far" readout above the divider.
func DrawScore(ecs *ecs.ECS, screen *ebiten.Image) {
	snap, ok := CourtSnapshot(ecs)
	if !ok {
		return
	}

	var pulse float32
	if entry, ok := components.ScorePulse.First(ecs.World); ok {
		pulse = components.ScorePulse.Get(entry).Value
	}

	x := screen.Bounds().Dx()/2 - cfg.HUD.ScoreOffsetX
	text.Draw(screen, FormatScore(snap.Score), fonts.Score.Get(), x, cfg.HUD.ScoreBaseline,
		pulseColor(cfg.Court.ForegroundColor, cfg.HUD.PulseColor, pulse))
}

// FormatScore renders the score pair the way the HUD shows it.
func FormatScore(s simulation.Score) string {
	return fmt.Sprintf(cfg.HUD.ScoreFormat, s.Near, s.Far)
}

// pulseColor blends from base to highlight as t goes from 0 to 1.
func pulseColor(base, highlight color.RGBA, t float32) color.RGBA {
	if t <= 0 {
		return base
	}
	if t > 1 {
		t = 1
	}
	mix := func(a, b uint8) uint8 {
		return uint8(float32(a) + (float32(b)-float32(a))*t)
	}
	return color.RGBA{
		R: mix(base.R, highlight.R),
		G: mix(base.G, highlight.G),
		B: mix(base.B, highlight.B),
		A: mix(base.A, highlight.A),
	}
}
