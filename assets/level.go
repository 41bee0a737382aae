package assets

import (
	"errors"
	"fmt"
	"io/fs"

	cfg "github.com/automoto/crossing/config"
	"github.com/lafriks/go-tiled"
)

// ErrNoPlayerSpawn is returned for maps without a PlayerSpawn object.
var ErrNoPlayerSpawn = errors.New("no player spawn defined in map")

// ErrNoTerrain is returned for maps without a terrain layer.
var ErrNoTerrain = errors.New("no terrain layer defined in map")

type ObstacleSpawn struct {
	Name   string
	X      float64
	Y      float64 // Row top plus the centering offset
	Speed  float64
	Sprite string
}

type PlayerSpawn struct {
	X      float64
	Y      float64
	Sprite string
}

// Level is the board layout parsed from a Tiled map.
type Level struct {
	Name       string
	Columns    int
	Rows       int
	CellWidth  float64
	CellHeight float64

	// Terrain holds the block sprite URL of every cell, indexed [row][column].
	Terrain   [][]string
	Obstacles []ObstacleSpawn
	Player    PlayerSpawn
}

type LevelLoader struct {
	fsys fs.FS
}

func NewLevelLoader(fsys fs.FS) *LevelLoader {
	return &LevelLoader{fsys: fsys}
}

// Load parses the map at levelPath.
func (l *LevelLoader) Load(levelPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(l.fsys))
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", levelPath, err)
	}

	level := &Level{
		Name:       levelPath,
		Columns:    levelMap.Width,
		Rows:       levelMap.Height,
		CellWidth:  float64(levelMap.TileWidth),
		CellHeight: float64(levelMap.TileHeight),
	}

	if err := parseTerrain(levelMap, level); err != nil {
		return nil, fmt.Errorf("load level %s: %w", levelPath, err)
	}

	spawnFound := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Obstacles":
			for _, o := range og.Objects {
				sprite := o.Properties.GetString("sprite")
				if sprite == "" {
					sprite = cfg.Obstacle.Sprite
				}
				level.Obstacles = append(level.Obstacles, ObstacleSpawn{
					Name:   o.Name,
					X:      o.X,
					Y:      o.Y + cfg.Grid.CenterOffset,
					Speed:  o.Properties.GetFloat("speed"),
					Sprite: sprite,
				})
			}
		case "PlayerSpawn":
			if len(og.Objects) == 0 {
				continue
			}
			o := og.Objects[0]
			sprite := o.Properties.GetString("sprite")
			if sprite == "" {
				sprite = cfg.Player.Sprite
			}
			level.Player = PlayerSpawn{
				X:      o.X,
				Y:      o.Y + cfg.Grid.CenterOffset,
				Sprite: sprite,
			}
			spawnFound = true
		}
	}

	if !spawnFound {
		return nil, fmt.Errorf("load level %s: %w", levelPath, ErrNoPlayerSpawn)
	}

	return level, nil
}

func parseTerrain(levelMap *tiled.Map, level *Level) error {
	for _, layer := range levelMap.Layers {
		if layer.Name != "terrain" {
			continue
		}

		level.Terrain = make([][]string, levelMap.Height)
		for y := 0; y < levelMap.Height; y++ {
			level.Terrain[y] = make([]string, levelMap.Width)
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					level.Terrain[y][x] = tilesetTile.Properties.GetString("sprite")
				}
			}
		}
		return nil
	}
	return ErrNoTerrain
}

// SpriteURLs returns every distinct sprite the level draws, terrain first.
func (lv *Level) SpriteURLs() []string {
	seen := make(map[string]bool)
	var urls []string
	add := func(url string) {
		if url == "" || seen[url] {
			return
		}
		seen[url] = true
		urls = append(urls, url)
	}

	for _, row := range lv.Terrain {
		for _, url := range row {
			add(url)
		}
	}
	for _, o := range lv.Obstacles {
		add(o.Sprite)
	}
	add(lv.Player.Sprite)
	return urls
}
