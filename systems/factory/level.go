package factory

import (
	"github.com/automoto/crossing/archetypes"
	"github.com/automoto/crossing/assets"
	"github.com/automoto/crossing/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the level singleton and every entity the level places.
func CreateLevel(ecs *ecs.ECS, level *assets.Level, images *assets.ImageCache) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{
		CurrentLevel: level,
		Images:       images,
	})

	for _, spawn := range level.Obstacles {
		CreateObstacle(ecs, spawn)
	}
	CreatePlayer(ecs, level.Player)

	return entry
}
