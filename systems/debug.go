package systems

import (
	"fmt"

	"github.com/automoto/crossing/components"
	cfg "github.com/automoto/crossing/config"
	"github.com/automoto/crossing/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateDebug returns the singleton Debug component, seeded from the
// command line on first use
func GetOrCreateDebug(e *ecs.ECS) *components.DebugData {
	entry, ok := components.Debug.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Debug))
		components.Debug.SetValue(entry, components.DebugData{
			ShowHitboxes: cfg.Debug.ShowHitboxes,
		})
	}
	return components.Debug.Get(entry)
}

// UpdateDebug toggles the debug view.
func UpdateDebug(e *ecs.ECS) {
	input := getOrCreateInput(e)
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		debug := GetOrCreateDebug(e)
		debug.ShowHitboxes = !debug.ShowHitboxes
	}
}

func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateDebug(e).ShowHitboxes {
		return
	}

	if spaceEntry, ok := components.Space.First(e.World); ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := cfg.Cyan
			if obj.HasTags(tags.ResolvPlayer) {
				c = cfg.Blue
			} else if obj.HasTags(tags.ResolvObstacle) {
				c = cfg.Red
			}

			x, y := float32(obj.X), float32(obj.Y)
			w, h := float32(obj.W), float32(obj.H)
			vector.FillRect(screen, x, y, w, 1, c, false)     // Top
			vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
			vector.FillRect(screen, x, y, 1, h, c, false)     // Left
			vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
		}
	}

	game := GetOrCreateGame(e)
	msg := fmt.Sprintf("state: %s (%d)\ndt: %.4f\nfps: %.1f",
		game.State, game.StateTimer, DeltaTime(e), ebiten.ActualFPS())
	ebitenutil.DebugPrintAt(screen, msg, 4, 4)
}
