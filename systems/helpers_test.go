package systems

import (
	"testing"
	"time"

	"github.com/automoto/crossing/assets"
	"github.com/automoto/crossing/components"
	cfg "github.com/automoto/crossing/config"
	"github.com/automoto/crossing/systems/factory"
	"github.com/automoto/crossing/tags"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// newTestWorld builds a world with a game, a collision space and a level
// holding the given obstacles. No images are loaded.
func newTestWorld(t *testing.T, obstacles ...assets.ObstacleSpawn) (*ecs.ECS, *fakeClock) {
	t.Helper()

	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	e := ecs.NewECS(donburi.NewWorld())

	factory.CreateGame(e, clock.Now)
	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, int(cfg.Grid.StepX), int(cfg.Grid.StepY))

	x, y := cfg.PlayerStart()
	factory.CreateLevel(e, &assets.Level{
		Columns:    cfg.Grid.Columns,
		Rows:       cfg.Grid.Rows,
		CellWidth:  cfg.Grid.StepX,
		CellHeight: cfg.Grid.StepY,
		Obstacles:  obstacles,
		Player:     assets.PlayerSpawn{X: x, Y: y, Sprite: cfg.Player.Sprite},
	}, nil)

	return e, clock
}

func bug(x, y, speed float64) assets.ObstacleSpawn {
	return assets.ObstacleSpawn{X: x, Y: y, Speed: speed, Sprite: cfg.Obstacle.Sprite}
}

func playerEntry(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	entry, ok := tags.Player.First(e.World)
	require.True(t, ok, "player not spawned")
	return entry
}

func obstacleEntries(e *ecs.ECS) []*donburi.Entry {
	var entries []*donburi.Entry
	tags.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		entries = append(entries, entry)
	})
	return entries
}

// placePlayer moves the player and its collision object to (x, y).
func placePlayer(t *testing.T, e *ecs.ECS, x, y float64) *donburi.Entry {
	t.Helper()
	entry := playerEntry(t, e)
	components.Position.SetValue(entry, math.NewVec2(x, y))
	UpdateObjects(e)
	return entry
}

func startPos() math.Vec2 {
	x, y := cfg.PlayerStart()
	return math.NewVec2(x, y)
}
