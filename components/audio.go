package components

import (
	cfg "github.com/automoto/crossing/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound effects for the audio system (singleton component)
type AudioData struct {
	PendingSFX []cfg.SoundID
	Muted      bool
}

var Audio = donburi.NewComponentType[AudioData]()
