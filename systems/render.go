package systems

import (
	"image/color"

	cfg "github.com/automoto/bouncy-pong/config"
	"github.com/automoto/bouncy-pong/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawCourt renders the background, centre divider, paddles and ball.
func DrawCourt(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Court.BackgroundColor)

	snap, ok := CourtSnapshot(ecs)
	if !ok {
		return
	}

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	dividerX := float32(width)/2 - cfg.Court.DividerWidth/2
	vector.FillRect(screen, dividerX, 0, cfg.Court.DividerWidth, float32(height), cfg.Court.ForegroundColor, false)

	fillRect(screen, snap.Near, cfg.Court.ForegroundColor)
	fillRect(screen, snap.Far, cfg.Court.ForegroundColor)
	fillRect(screen, snap.Ball, cfg.Court.ForegroundColor)
}

func fillRect(screen *ebiten.Image, r gamemath.Rect, c color.Color) {
	vector.FillRect(screen,
		float32(r.Pos.X), float32(r.Pos.Y),
		float32(r.Size.X), float32(r.Size.Y),
		c, false)
}
