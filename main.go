package main

import (
	"log"

	cfg "github.com/automoto/bouncy-pong/config"
	"github.com/automoto/bouncy-pong/fonts"
	"github.com/automoto/bouncy-pong/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Layout(width, height int)
}

type Game struct {
	scene Scene
}

func NewGame() (*Game, error) {
	if err := fonts.LoadDefaults(cfg.HUD.ScoreFontSize, cfg.Debug.FontSize); err != nil {
		return nil, err
	}
	return &Game{
		scene: scenes.NewCourtScene(cfg.C.Width, cfg.C.Height),
	}, nil
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout keeps the logical screen equal to the window so the court grows and
// shrinks with it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scene.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func main() {
	ebiten.SetWindowSize(cfg.C.Width, cfg.C.Height)
	ebiten.SetWindowTitle(cfg.C.Title)
	if cfg.C.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetTPS(cfg.C.TPS)

	game, err := NewGame()
	if err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	log.Printf("Starting %s at %dx%d, %d ticks/second", cfg.C.Title, cfg.C.Width, cfg.C.Height, cfg.C.TPS)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
