package systems

import (
	"github.com/automoto/crossing/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock measures the seconds since the previous gameplay tick. The
// first tick after a start or reset measures zero.
func UpdateClock(e *ecs.ECS) {
	clock := getClock(e)
	if clock == nil {
		return
	}

	now := clock.Now()
	if clock.Started {
		clock.DT = now.Sub(clock.Last).Seconds()
	} else {
		clock.DT = 0
		clock.Started = true
	}
	clock.Last = now
}

// ResetClock forgets the previous tick so time spent outside Running is
// never integrated into movement.
func ResetClock(e *ecs.ECS) {
	if clock := getClock(e); clock != nil {
		clock.Started = false
		clock.DT = 0
	}
}

// DeltaTime returns the seconds measured by the last UpdateClock.
func DeltaTime(e *ecs.ECS) float64 {
	if clock := getClock(e); clock != nil {
		return clock.DT
	}
	return 0
}

func getClock(e *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		return nil
	}
	return components.Clock.Get(entry)
}
