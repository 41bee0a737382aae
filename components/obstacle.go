package components

import "github.com/yohamta/donburi"

type ObstacleData struct {
	Speed    float64 // Pixels per second, positive moves right
	Boundary float64 // X at which the obstacle wraps
	ResetX   float64 // X the obstacle reappears at after wrapping
}

var Obstacle = donburi.NewComponentType[ObstacleData]()
