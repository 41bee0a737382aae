package components

import "github.com/yohamta/donburi"

type DebugData struct {
	ShowHitboxes bool
}

var Debug = donburi.NewComponentType[DebugData]()
