package archetypes

import (
	"github.com/automoto/crossing/components"
	cfg "github.com/automoto/crossing/config"
	"github.com/automoto/crossing/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Position,
		components.Object,
		components.Sprite,
	)
	Obstacle = newArchetype(
		tags.Obstacle,
		components.Obstacle,
		components.Position,
		components.Object,
		components.Sprite,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Game = newArchetype(
		components.Game,
		components.Clock,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.LayerActors,
		append(a.components, cs...)...,
	))
	return e
}
