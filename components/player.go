package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PlayerData struct {
	Start   math.Vec2 // Position restored by every reset
	Victory bool      // Set once the player crosses the top edge; cleared by replay
}

var Player = donburi.NewComponentType[PlayerData]()
