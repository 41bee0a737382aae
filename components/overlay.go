package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// OverlayData tracks the "you won" modal.
type OverlayData struct {
	Visible bool
	Fade    *gween.Tween
	Alpha   float32 // Current backdrop opacity, 0..1
}

var Overlay = donburi.NewComponentType[OverlayData]()
