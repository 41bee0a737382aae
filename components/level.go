package components

import (
	"github.com/automoto/crossing/assets"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *assets.Level
	Images       *assets.ImageCache
}

var Level = donburi.NewComponentType[LevelData]()
