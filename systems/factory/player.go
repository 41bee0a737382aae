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

func CreatePlayer(ecs *ecs.ECS, spawn assets.PlayerSpawn) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	start := math.NewVec2(spawn.X, spawn.Y)
	components.Player.SetValue(player, components.PlayerData{
		Start:   start,
		Victory: false,
	})
	components.Position.SetValue(player, start)
	components.Sprite.SetValue(player, components.SpriteData{URL: spawn.Sprite})

	obj := newHitObject(spawn.X, spawn.Y, cfg.Player.HitWidth, cfg.Player.HitHeight, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return player
}
