package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// GridConfig describes the board the player hops across
type GridConfig struct {
	StepX   float64 // Width of one cell in pixels
	StepY   float64 // Height of one cell in pixels
	Columns int
	Rows    int

	// Vertical offset applied to sprites so they sit centered in their row
	CenterOffset float64
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Sprite string

	// Start cell (column, row) before the centering offset is applied
	StartColumn int
	StartRow    int

	// Collision span width; the player is tested over [x, x+HitWidth)
	HitWidth  float64
	HitHeight float64
}

// ObstacleConfig contains obstacle-related configuration values
type ObstacleConfig struct {
	Sprite string

	// Number of cells an obstacle travels before it wraps
	BoundaryCells int
	// Cells to the left of the screen an obstacle reappears at
	ResetCells int

	HitWidth  float64
	HitHeight float64
}

// BoardConfig lists the sprites every play session needs
type BoardConfig struct {
	LevelPath string
	Images    []string
}

// OverlayConfig contains "you won" overlay configuration values
type OverlayConfig struct {
	BackdropColor color.RGBA
	PanelColor    color.RGBA
	TitleColor    color.RGBA
	TextColor     color.RGBA
	Title         string
	Message       string
	ButtonLabel   string
	FadeSeconds   float32 // Duration of the backdrop fade-in
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int // Fixed update rate
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowHitboxes bool // Outline collision spans and print loop stats
	Mute         bool // Disable sound effects
}

// Renderer layers, drawn in ascending order
const (
	LayerBoard ecs.LayerID = iota
	LayerActors
	LayerOverlay
)

// Global configuration instances
var C *Config
var Grid GridConfig
var Player PlayerConfig
var Obstacle ObstacleConfig
var Board BoardConfig
var Overlay OverlayConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
)

func init() {
	C = &Config{
		Width:  505,
		Height: 606,
		Title:  "Bug Crossing",
		TPS:    60,
	}

	Grid = GridConfig{
		StepX:        101,
		StepY:        83,
		Columns:      5,
		Rows:         6,
		CenterOffset: 55,
	}

	Player = PlayerConfig{
		Sprite:      "images/char-boy.png",
		StartColumn: 2,
		StartRow:    4,
		HitWidth:    Grid.StepX / 2,
		HitHeight:   Grid.StepY - 1,
	}

	Obstacle = ObstacleConfig{
		Sprite:        "images/enemy-bug.png",
		BoundaryCells: 5,
		ResetCells:    1,
		HitWidth:      Grid.StepX / 2,
		HitHeight:     Grid.StepY - 1,
	}

	Board = BoardConfig{
		LevelPath: "levels/crossing.tmx",
		Images: []string{
			"images/stone-block.png",
			"images/water-block.png",
			"images/grass-block.png",
			"images/enemy-bug.png",
			"images/char-boy.png",
		},
	}

	Overlay = OverlayConfig{
		BackdropColor: BlackOverlay,
		PanelColor:    color.RGBA{R: 20, G: 20, B: 30, A: 230},
		TitleColor:    Yellow,
		TextColor:     White,
		Title:         "You Won!",
		Message:       "The bugs never stood a chance.",
		ButtonLabel:   "Replay",
		FadeSeconds:   0.35,
	}

	Debug = DebugConfig{}
}

// PlayerStart returns the world position the player spawns and resets at.
func PlayerStart() (x, y float64) {
	x = Grid.StepX * float64(Player.StartColumn)
	y = Grid.StepY*float64(Player.StartRow) + Grid.CenterOffset
	return x, y
}

// MaxX is the right-most column a player may stand on.
func MaxX() float64 {
	return Grid.StepX * float64(Grid.Columns-1)
}

// MaxY is the lowest row top a player may hop down to.
func MaxY() float64 {
	return Grid.StepY * float64(Grid.Rows-2)
}
