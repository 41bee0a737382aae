package systems

import (
	"fmt"

	"github.com/automoto/crossing/assets"
	"github.com/automoto/crossing/components"
	cfg "github.com/automoto/crossing/config"
	"github.com/automoto/crossing/fonts"
	"github.com/automoto/crossing/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

func levelData(e *ecs.ECS) *components.LevelData {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}

// DrawBoard paints the terrain rows, one block sprite per cell.
func DrawBoard(e *ecs.ECS, screen *ebiten.Image) {
	lv := levelData(e)
	if lv == nil || lv.CurrentLevel == nil || lv.Images == nil {
		return
	}

	for row, cells := range lv.CurrentLevel.Terrain {
		for col, url := range cells {
			drawImage(screen, lv.Images, url,
				float64(col)*lv.CurrentLevel.CellWidth,
				float64(row)*lv.CurrentLevel.CellHeight)
		}
	}
}

// DrawObstacles draws every obstacle at its position.
func DrawObstacles(e *ecs.ECS, screen *ebiten.Image) {
	drawTagged(e, screen, tags.Obstacle)
}

// DrawPlayer draws the player on top of the obstacles.
func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	drawTagged(e, screen, tags.Player)
}

func drawTagged(e *ecs.ECS, screen *ebiten.Image, tag *donburi.ComponentType[donburi.Tag]) {
	lv := levelData(e)
	if lv == nil || lv.Images == nil {
		return
	}

	tag.Each(e.World, func(entry *donburi.Entry) {
		pos := components.Position.Get(entry)
		sprite := components.Sprite.Get(entry)
		drawImage(screen, lv.Images, sprite.URL, pos.X, pos.Y)
	})
}

// drawImage skips sprites the cache has not loaded yet.
func drawImage(screen *ebiten.Image, images *assets.ImageCache, url string, x, y float64) {
	img, ok := images.Get(url)
	if !ok {
		return
	}
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(x, y)
	screen.DrawImage(img, drawOp)
}

// DrawLoading shows asset progress until the game starts running.
func DrawLoading(e *ecs.ECS, screen *ebiten.Image) {
	if CurrentState(e) != cfg.GameLoading {
		return
	}
	lv := levelData(e)
	if lv == nil || lv.Images == nil {
		return
	}

	loaded, total := lv.Images.Progress()
	msg := fmt.Sprintf("Loading %d/%d", loaded, total)

	face := text.NewGoXFace(fonts.Body.Get())
	width, _ := text.Measure(msg, face, 0)

	op := &text.DrawOptions{}
	op.GeoM.Translate((float64(cfg.C.Width)-width)/2, float64(cfg.C.Height)/2)
	op.ColorScale.ScaleWithColor(cfg.White)
	text.Draw(screen, msg, face, op)
}
