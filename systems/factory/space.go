package factory

import (
	"github.com/automoto/crossing/archetypes"
	"github.com/automoto/crossing/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// addToSpace registers obj with the world's collision space, if there is one.
func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}

// newHitObject builds the broad phase box for a sprite at (x, y). The box is
// one pixel wider than the hit span so every overlapping pair shares a cell;
// the exact test in the collision system decides the hit.
func newHitObject(x, y, w, h float64, tag string) *resolv.Object {
	obj := resolv.NewObject(x, y, w+1, h, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, w+1, h))
	return obj
}
