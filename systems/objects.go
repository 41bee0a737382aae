package systems

import (
	"github.com/automoto/crossing/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects moves every collision object to its entity's position and
// re-registers it with the space.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		syncObject(e)
	}
}

func syncObject(e *donburi.Entry) {
	if !e.HasComponent(components.Object) || !e.HasComponent(components.Position) {
		return
	}
	obj := components.Object.Get(e)
	pos := components.Position.Get(e)
	obj.X = pos.X
	obj.Y = pos.Y
	obj.Update()
}
