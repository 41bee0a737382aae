package systems

import (
	"github.com/automoto/crossing/components"
	cfg "github.com/automoto/crossing/config"
	"github.com/automoto/crossing/shared/gamemath"
	"github.com/automoto/crossing/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// HandleInput hops pos one cell in dir. Hops that would start from the
// board's edge in that direction are ignored. It reports whether pos moved.
func HandleInput(pos *math.Vec2, dir cfg.Direction) bool {
	switch dir {
	case cfg.DirectionLeft:
		if gamemath.HopAllowed(pos.X, -cfg.Grid.StepX, 0, cfg.MaxX()) {
			pos.X -= cfg.Grid.StepX
			return true
		}
	case cfg.DirectionRight:
		if gamemath.HopAllowed(pos.X, cfg.Grid.StepX, 0, cfg.MaxX()) {
			pos.X += cfg.Grid.StepX
			return true
		}
	case cfg.DirectionUp:
		if gamemath.HopAllowed(pos.Y, -cfg.Grid.StepY, 0, cfg.MaxY()) {
			pos.Y -= cfg.Grid.StepY
			return true
		}
	case cfg.DirectionDown:
		if gamemath.HopAllowed(pos.Y, cfg.Grid.StepY, 0, cfg.MaxY()) {
			pos.Y += cfg.Grid.StepY
			return true
		}
	}
	return false
}

// UpdatePlayerInput applies every hop released this frame to each player.
func UpdatePlayerInput(e *ecs.ECS) {
	input := getOrCreateInput(e)

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		pos := components.Position.Get(entry)
		for _, m := range cfg.MoveActions {
			if !GetAction(input, m.Action).JustReleased {
				continue
			}
			if HandleInput(pos, m.Direction) {
				syncObject(entry)
				PlaySFX(e, cfg.SoundHop)
			}
		}
	})
}

// ResetPlayer puts the player back on its start cell.
func ResetPlayer(entry *donburi.Entry) {
	player := components.Player.Get(entry)
	components.Position.SetValue(entry, player.Start)
	syncObject(entry)
}

// UpdatePlayer resolves collisions against obstacles and crossings. Any hit
// sends the player back to the start. Reaching the water row sets Victory
// and also resets the player.
func UpdatePlayer(e *ecs.ECS) {
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)

		if hitObstacle(entry) {
			ResetPlayer(entry)
			PlaySFX(e, cfg.SoundSplat)
		}

		if components.Position.Get(entry).Y < 0 {
			player.Victory = true
			ResetPlayer(entry)
		}
	})
}

// hitObstacle runs the exact row and span test against every obstacle the
// broad phase reports near the player.
func hitObstacle(playerEntry *donburi.Entry) bool {
	pos := components.Position.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	for _, other := range obstacleCandidates(obj.Object) {
		obstacleEntry, ok := other.Data.(*donburi.Entry)
		if !ok || obstacleEntry == nil || !obstacleEntry.Valid() {
			continue
		}
		opos := components.Position.Get(obstacleEntry)
		if gamemath.Collides(pos.X, pos.Y, opos.X, opos.Y, cfg.Player.HitWidth) {
			return true
		}
	}
	return false
}

func obstacleCandidates(obj *resolv.Object) []*resolv.Object {
	check := obj.Check(0, 0, tags.ResolvObstacle)
	if check == nil {
		return nil
	}
	return check.ObjectsByTags(tags.ResolvObstacle)
}
