package systems

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/automoto/bouncy-pong/components"
	cfg "github.com/automoto/bouncy-pong/config"
	"github.com/automoto/bouncy-pong/fonts"
	"github.com/automoto/bouncy-pong/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		c := cfg.Cyan
		if obj.HasTags(tags.ResolvNear) {
			c = cfg.Debug.NearColor
		} else if obj.HasTags(tags.ResolvFar) {
			c = cfg.Debug.FarColor
		} else if obj.HasTags(tags.ResolvBall) {
			c = cfg.Debug.BallColor
		}
		strokeObject(screen, obj, c)
	}

	court, ok := getCourt(ecs)
	if !ok {
		return
	}
	armedColor := cfg.Debug.DisarmedColor
	if court.State.Armed {
		armedColor = cfg.Debug.ArmedColor
	}

	lines := []string{
		fmt.Sprintf("TPS %.1f  field %.0fx%.0f", ebiten.ActualTPS(), court.Field.Width, court.Field.Height),
		fmt.Sprintf("coast near %.3f far %.3f", court.State.NearCoast, court.State.FarCoast),
		fmt.Sprintf("ball %.1f,%.1f  vel %.1f,%.1f",
			court.State.Ball.Pos.X, court.State.Ball.Pos.Y,
			court.State.Ball.Vel.X, court.State.Ball.Vel.Y),
	}
	if neighbours := PaddlesNearBall(space); len(neighbours) > 0 {
		lines = append(lines, "cell "+strings.Join(neighbours, ","))
	}

	face := fonts.Debug.Get()
	y := cfg.HUD.ScoreBaseline + 20
	for _, line := range lines {
		text.Draw(screen, line, face, 4, y, armedColor)
		y += int(cfg.Debug.FontSize) + 4
	}
}

// PaddlesNearBall lists the paddles that share a space cell with the ball.
func PaddlesNearBall(space *resolv.Space) []string {
	var found []string
	for _, obj := range space.Objects() {
		if !obj.HasTags(tags.ResolvBall) {
			continue
		}
		check := obj.Check(0, 0, tags.ResolvPaddle)
		if check == nil {
			continue
		}
		for _, paddle := range check.ObjectsByTags(tags.ResolvPaddle) {
			if paddle.HasTags(tags.ResolvNear) {
				found = append(found, tags.ResolvNear)
			} else if paddle.HasTags(tags.ResolvFar) {
				found = append(found, tags.ResolvFar)
			}
		}
	}
	return found
}

func strokeObject(screen *ebiten.Image, obj *resolv.Object, c color.Color) {
	x, y := float32(obj.X), float32(obj.Y)
	w, h := float32(obj.W), float32(obj.H)
	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}
