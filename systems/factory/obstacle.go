package factory

import (
	"github.com/automoto/crossing/archetypes"
	"github.com/automoto/crossing/assets"
	"github.com/automoto/crossing/components"
	cfg "github.com/automoto/crossing/config"
	"github.com/automoto/crossing/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateObstacle spawns a bug that crawls right at spawn.Speed and wraps
// back to the left once it leaves the board.
func CreateObstacle(ecs *ecs.ECS, spawn assets.ObstacleSpawn) *donburi.Entry {
	obstacle := archetypes.Obstacle.Spawn(ecs)

	components.Obstacle.SetValue(obstacle, components.ObstacleData{
		Speed:    spawn.Speed,
		Boundary: cfg.Grid.StepX * float64(cfg.Obstacle.BoundaryCells),
		ResetX:   -cfg.Grid.StepX * float64(cfg.Obstacle.ResetCells),
	})
	components.Position.SetValue(obstacle, math.NewVec2(spawn.X, spawn.Y))
	components.Sprite.SetValue(obstacle, components.SpriteData{URL: spawn.Sprite})

	obj := newHitObject(spawn.X, spawn.Y, cfg.Obstacle.HitWidth, cfg.Obstacle.HitHeight, tags.ResolvObstacle)
	obj.Data = obstacle
	components.Object.SetValue(obstacle, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return obstacle
}
