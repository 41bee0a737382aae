package factory

import (
	"time"

	"github.com/automoto/crossing/archetypes"
	"github.com/automoto/crossing/components"
	cfg "github.com/automoto/crossing/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGame spawns the loop singleton in the Loading state. now is the
// clock gameplay time is measured with; nil means time.Now.
func CreateGame(ecs *ecs.ECS, now func() time.Time) *donburi.Entry {
	if now == nil {
		now = time.Now
	}

	game := archetypes.Game.Spawn(ecs)
	components.Game.SetValue(game, components.GameData{
		State:         cfg.GameLoading,
		PreviousState: cfg.GameLoading,
	})
	components.Clock.SetValue(game, components.ClockData{Now: now})
	return game
}
