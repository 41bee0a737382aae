package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Obstacle = donburi.NewTag().SetName("Obstacle")
)

// Resolv tags for collision
const (
	ResolvPlayer   = "Player"
	ResolvObstacle = "Obstacle"
)
