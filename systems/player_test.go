package systems

import (
	"testing"

	"github.com/automoto/crossing/components"
	cfg "github.com/automoto/crossing/config"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi/features/math"
)

func TestHandleInput(t *testing.T) {
	tests := []struct {
		name  string
		from  math.Vec2
		dir   cfg.Direction
		want  math.Vec2
		moved bool
	}{
		{"left", math.NewVec2(202, 387), cfg.DirectionLeft, math.NewVec2(101, 387), true},
		{"right", math.NewVec2(202, 387), cfg.DirectionRight, math.NewVec2(303, 387), true},
		{"up", math.NewVec2(202, 387), cfg.DirectionUp, math.NewVec2(202, 304), true},
		{"down", math.NewVec2(202, 304), cfg.DirectionDown, math.NewVec2(202, 387), true},
		{"left at edge", math.NewVec2(0, 387), cfg.DirectionLeft, math.NewVec2(0, 387), false},
		{"right at edge", math.NewVec2(404, 387), cfg.DirectionRight, math.NewVec2(404, 387), false},
		{"down at bottom row", math.NewVec2(202, 387), cfg.DirectionDown, math.NewVec2(202, 387), false},
		{"up past the top", math.NewVec2(202, -28), cfg.DirectionUp, math.NewVec2(202, -28), false},
		{"no direction", math.NewVec2(202, 387), cfg.DirectionNone, math.NewVec2(202, 387), false},
		{"unknown direction", math.NewVec2(202, 387), cfg.Direction(42), math.NewVec2(202, 387), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := tt.from
			assert.Equal(t, tt.moved, HandleInput(&pos, tt.dir))
			assert.Equal(t, tt.want, pos)
		})
	}
}

func TestHandleInputReachesTheWater(t *testing.T) {
	pos := startPos()

	for i := 0; i < 4; i++ {
		assert.True(t, HandleInput(&pos, cfg.DirectionUp))
	}
	assert.Equal(t, 55.0, pos.Y, "top stone row")

	assert.True(t, HandleInput(&pos, cfg.DirectionUp))
	assert.Equal(t, -28.0, pos.Y)
	assert.False(t, HandleInput(&pos, cfg.DirectionUp))
}

func TestUpdatePlayerInputHopsOnRelease(t *testing.T) {
	e, _ := newTestWorld(t)
	player := playerEntry(t, e)

	input := getOrCreateInput(e)
	input.Current[cfg.ActionMoveUp] = true
	UpdatePlayerInput(e)
	assert.Equal(t, startPos(), *components.Position.Get(player), "held keys do not hop")

	input.Previous = input.Current
	input.Current[cfg.ActionMoveUp] = false
	UpdatePlayerInput(e)

	assert.Equal(t, math.NewVec2(202, 304), *components.Position.Get(player))
	obj := components.Object.Get(player)
	assert.Equal(t, 304.0, obj.Y)
	assert.Contains(t, GetOrCreateAudio(e).PendingSFX, cfg.SoundHop)
}

func TestUpdatePlayerCollision(t *testing.T) {
	t.Run("overlap on the same row resets", func(t *testing.T) {
		e, _ := newTestWorld(t, bug(180, 221, 0))
		player := placePlayer(t, e, 202, 221)

		UpdatePlayer(e)

		assert.Equal(t, startPos(), *components.Position.Get(player))
		assert.False(t, components.Player.Get(player).Victory)
		assert.Contains(t, GetOrCreateAudio(e).PendingSFX, cfg.SoundSplat)
	})

	t.Run("different row is a miss", func(t *testing.T) {
		e, _ := newTestWorld(t, bug(202, 138, 0))
		player := placePlayer(t, e, 202, 221)

		UpdatePlayer(e)

		assert.Equal(t, math.NewVec2(202, 221), *components.Position.Get(player))
	})

	t.Run("touching spans are a miss", func(t *testing.T) {
		e, _ := newTestWorld(t, bug(151.5, 221, 0), bug(252.5, 221, 0))
		player := placePlayer(t, e, 202, 221)

		UpdatePlayer(e)

		assert.Equal(t, math.NewVec2(202, 221), *components.Position.Get(player))
	})

	t.Run("sub-pixel overlap hits", func(t *testing.T) {
		e, _ := newTestWorld(t, bug(252.4, 221, 0))
		player := placePlayer(t, e, 202, 221)

		UpdatePlayer(e)

		assert.Equal(t, startPos(), *components.Position.Get(player))
	})

	t.Run("obstacle off the board never hits", func(t *testing.T) {
		e, _ := newTestWorld(t, bug(-101, 55, 0))
		player := placePlayer(t, e, 0, 55)

		UpdatePlayer(e)

		assert.Equal(t, math.NewVec2(0, 55), *components.Position.Get(player))
	})
}

func TestUpdatePlayerVictory(t *testing.T) {
	e, _ := newTestWorld(t)
	player := placePlayer(t, e, 202, -28)

	UpdatePlayer(e)

	data := components.Player.Get(player)
	assert.True(t, data.Victory)
	assert.Equal(t, startPos(), *components.Position.Get(player))
}

func TestResetPlayerKeepsVictory(t *testing.T) {
	e, _ := newTestWorld(t)
	player := placePlayer(t, e, 404, 55)
	components.Player.Get(player).Victory = true

	ResetPlayer(player)

	assert.Equal(t, startPos(), *components.Position.Get(player))
	assert.True(t, components.Player.Get(player).Victory)
	obj := components.Object.Get(player)
	assert.Equal(t, 202.0, obj.X)
	assert.Equal(t, 387.0, obj.Y)
}
