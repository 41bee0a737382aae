package components

import (
	"github.com/yohamta/donburi"
)

type SpriteData struct {
	URL string // Key into the image cache
}

var Sprite = donburi.NewComponentType[SpriteData]()
