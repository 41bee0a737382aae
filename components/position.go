package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Position is the top-left corner an entity's sprite is drawn at.
var Position = donburi.NewComponentType[math.Vec2]()
