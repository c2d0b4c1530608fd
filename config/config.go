package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Config holds general window configuration
type Config struct {
	Title     string
	Width     int
	Height    int
	Resizable bool
	TPS       int // Ticks per second; one simulation step per tick
}

// FrameTime returns the elapsed time of one tick in seconds.
func (c *Config) FrameTime() float64 {
	if c.TPS <= 0 {
		return 0
	}
	return 1 / float64(c.TPS)
}

// CourtConfig contains the look of the play field
type CourtConfig struct {
	BackgroundColor color.RGBA
	ForegroundColor color.RGBA
	DividerWidth    float32
}

// HUDConfig contains score readout configuration
type HUDConfig struct {
	ScoreFormat   string  // Near score, then far score
	ScoreFontSize float64 // Points
	ScoreOffsetX  int     // Left shift from the field centre
	ScoreBaseline int     // Baseline Y of the score text

	// Score pulse
	PulseColor    color.RGBA
	PulseDuration float32 // Seconds
}

// DebugConfig contains the hitbox overlay configuration
type DebugConfig struct {
	Enabled       bool // Overlay visible at startup
	FontSize      float64
	SpaceWidth    int // Hitbox space extent; larger than any expected window
	SpaceHeight   int
	CellSize      int
	NearColor     color.RGBA
	FarColor      color.RGBA
	BallColor     color.RGBA
	ArmedColor    color.RGBA
	DisarmedColor color.RGBA
}

// Global configuration instances
var C *Config
var Court CourtConfig
var HUD HUDConfig
var Debug DebugConfig

// Default is the only render layer
const Default ecs.LayerID = 0

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Yellow    = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green     = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Cyan      = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255}
)

func init() {
	C = &Config{
		Title:     "Bouncy Pong",
		Width:     800,
		Height:    450,
		Resizable: true,
		TPS:       60,
	}

	Court = CourtConfig{
		BackgroundColor: Black,
		ForegroundColor: White,
		DividerWidth:    20,
	}

	HUD = HUDConfig{
		ScoreFormat:   "%d     %d",
		ScoreFontSize: 38,
		ScoreOffsetX:  55,
		ScoreBaseline: 20,

		PulseColor:    Yellow,
		PulseDuration: 0.6,
	}

	Debug = DebugConfig{
		Enabled:       false,
		FontSize:      10,
		SpaceWidth:    4096,
		SpaceHeight:   4096,
		CellSize:      16,
		NearColor:     LightBlue,
		FarColor:      Red,
		BallColor:     Green,
		ArmedColor:    Green,
		DisarmedColor: Red,
	}
}
