package config

// GameStateID identifies a state of the game loop.
type GameStateID int

const (
	GameLoading GameStateID = iota
	GameRunning
	GameWon
	GameRestarting
)

func (s GameStateID) String() string {
	switch s {
	case GameLoading:
		return "Loading"
	case GameRunning:
		return "Running"
	case GameWon:
		return "Won"
	case GameRestarting:
		return "Restarting"
	}
	return "Unknown"
}

// GameTransitions lists the allowed state changes of the game loop.
var GameTransitions = map[GameStateID][]GameStateID{
	GameLoading:    {GameRunning},
	GameRunning:    {GameWon},
	GameWon:        {GameRestarting},
	GameRestarting: {GameRunning},
}

// Direction is a single grid hop requested by the player.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionUp
	DirectionRight
	DirectionDown
)

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionUp:
		return "up"
	case DirectionRight:
		return "right"
	case DirectionDown:
		return "down"
	}
	return "none"
}

// MoveActions maps movement actions to the hop they request, in polling order.
var MoveActions = []struct {
	Action    ActionID
	Direction Direction
}{
	{ActionMoveLeft, DirectionLeft},
	{ActionMoveUp, DirectionUp},
	{ActionMoveRight, DirectionRight},
	{ActionMoveDown, DirectionDown},
}
