package systems

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"time"

	"github.com/automoto/crossing/components"
	cfg "github.com/automoto/crossing/config"
	"github.com/automoto/crossing/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ErrInvalidTransition is returned when a state change is not in
// config.GameTransitions.
var ErrInvalidTransition = errors.New("invalid game state transition")

// GetOrCreateGame returns the singleton Game component, creating it in the
// Loading state if needed
func GetOrCreateGame(e *ecs.ECS) *components.GameData {
	entry, ok := components.Game.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Game, components.Clock))
		components.Game.SetValue(entry, components.GameData{
			State:         cfg.GameLoading,
			PreviousState: cfg.GameLoading,
		})
		components.Clock.SetValue(entry, components.ClockData{Now: time.Now})
	}
	return components.Game.Get(entry)
}

// CurrentState returns the state the loop is in.
func CurrentState(e *ecs.ECS) cfg.GameStateID {
	return GetOrCreateGame(e).State
}

// Transition moves the loop to state to.
func Transition(e *ecs.ECS, to cfg.GameStateID) error {
	game := GetOrCreateGame(e)
	if !slices.Contains(cfg.GameTransitions[game.State], to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, game.State, to)
	}

	log.Printf("[game] %s -> %s", game.State, to)
	game.PreviousState = game.State
	game.State = to
	game.StateTimer = 0
	return nil
}

// IsRunning checks if gameplay is live
func IsRunning(e *ecs.ECS) bool {
	return CurrentState(e) == cfg.GameRunning
}

// WithRunningCheck wraps a system to skip execution outside the Running state
func WithRunningCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !IsRunning(e) {
			return
		}
		system(e)
	}
}

// StartGame leaves Loading once every asset is ready. Later calls are
// ignored, so it is safe to register as a ready callback that fires more
// than once.
func StartGame(e *ecs.ECS) {
	if CurrentState(e) != cfg.GameLoading {
		return
	}
	if err := Transition(e, cfg.GameRunning); err != nil {
		log.Printf("[game] %v", err)
		return
	}
	ResetClock(e)
}

// RequestReplay asks the loop to restart after a win.
func RequestReplay(e *ecs.ECS) error {
	if err := Transition(e, cfg.GameRestarting); err != nil {
		return err
	}
	PlaySFX(e, cfg.SoundClick)
	return nil
}

// UpdateGameState advances the loop's state machine. Running moves to Won
// once the player has crossed; Restarting resets the round and resumes.
func UpdateGameState(e *ecs.ECS) {
	game := GetOrCreateGame(e)
	game.StateTimer++

	switch game.State {
	case cfg.GameRunning:
		if !playerWon(e) {
			return
		}
		if err := Transition(e, cfg.GameWon); err != nil {
			log.Printf("[game] %v", err)
			return
		}
		ShowOverlay(e)
		PlaySFX(e, cfg.SoundWin)

	case cfg.GameWon:
		input := getOrCreateInput(e)
		if GetAction(input, cfg.ActionReplay).JustPressed {
			if err := RequestReplay(e); err != nil {
				log.Printf("[game] %v", err)
			}
		}

	case cfg.GameRestarting:
		restartRound(e)
		if err := Transition(e, cfg.GameRunning); err != nil {
			log.Printf("[game] %v", err)
		}
	}
}

func playerWon(e *ecs.ECS) bool {
	won := false
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		if components.Player.Get(entry).Victory {
			won = true
		}
	})
	return won
}

// restartRound hides the overlay, puts every player back on its start cell
// with victory cleared, and restarts the clock.
func restartRound(e *ecs.ECS) {
	HideOverlay(e)
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		ResetPlayer(entry)
		components.Player.Get(entry).Victory = false
	})
	ResetClock(e)
}
