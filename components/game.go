package components

import (
	"time"

	cfg "github.com/automoto/crossing/config"
	"github.com/yohamta/donburi"
)

// GameData is the singleton holding the loop's state machine.
type GameData struct {
	State         cfg.GameStateID
	PreviousState cfg.GameStateID
	StateTimer    int // Ticks spent in the current state
}

var Game = donburi.NewComponentType[GameData]()

// ClockData measures wall-clock time between gameplay ticks.
type ClockData struct {
	Now     func() time.Time
	Last    time.Time
	Started bool
	DT      float64 // Seconds since the previous tick
}

var Clock = donburi.NewComponentType[ClockData]()
