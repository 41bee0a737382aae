package systems

import (
	"github.com/automoto/crossing/components"
	cfg "github.com/automoto/crossing/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateOverlay returns the singleton Overlay component, creating if needed
func GetOrCreateOverlay(e *ecs.ECS) *components.OverlayData {
	entry, ok := components.Overlay.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Overlay))
	}
	return components.Overlay.Get(entry)
}

// ShowOverlay makes the win overlay visible and starts its fade-in.
func ShowOverlay(e *ecs.ECS) {
	overlay := GetOrCreateOverlay(e)
	overlay.Visible = true
	overlay.Alpha = 0
	overlay.Fade = gween.New(0, 1, cfg.Overlay.FadeSeconds, ease.OutQuad)
}

// HideOverlay hides the win overlay.
func HideOverlay(e *ecs.ECS) {
	overlay := GetOrCreateOverlay(e)
	overlay.Visible = false
	overlay.Alpha = 0
	overlay.Fade = nil
}

// IsOverlayVisible reports whether the win overlay is showing.
func IsOverlayVisible(e *ecs.ECS) bool {
	return GetOrCreateOverlay(e).Visible
}

// UpdateOverlay advances the fade-in by one fixed tick.
func UpdateOverlay(e *ecs.ECS) {
	overlay := GetOrCreateOverlay(e)
	if !overlay.Visible || overlay.Fade == nil {
		return
	}

	alpha, finished := overlay.Fade.Update(1 / float32(cfg.C.TPS))
	overlay.Alpha = alpha
	if finished {
		overlay.Alpha = 1
		overlay.Fade = nil
	}
}

// DrawOverlay dims the board behind the win panel. The panel itself is
// drawn by the replay UI.
func DrawOverlay(e *ecs.ECS, screen *ebiten.Image) {
	overlay := GetOrCreateOverlay(e)
	if !overlay.Visible {
		return
	}

	// color.RGBA is premultiplied, so every channel fades together
	c := cfg.Overlay.BackdropColor
	c.R = uint8(float32(c.R) * overlay.Alpha)
	c.G = uint8(float32(c.G) * overlay.Alpha)
	c.B = uint8(float32(c.B) * overlay.Alpha)
	c.A = uint8(float32(c.A) * overlay.Alpha)

	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, width, height, c, false)
}
