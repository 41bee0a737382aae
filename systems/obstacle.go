package systems

import (
	"github.com/automoto/crossing/components"
	"github.com/automoto/crossing/shared/gamemath"
	"github.com/automoto/crossing/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObstacles crawls every obstacle right by speed times the measured
// frame time, wrapping it back to the left once it leaves the board.
func UpdateObstacles(e *ecs.ECS) {
	dt := DeltaTime(e)

	tags.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		obstacle := components.Obstacle.Get(entry)
		pos := components.Position.Get(entry)
		pos.X = gamemath.Advance(pos.X, obstacle.Speed, dt, obstacle.Boundary, obstacle.ResetX)
	})
}
