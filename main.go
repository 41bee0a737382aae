package main

import (
	"context"
	"flag"
	"image"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/crossing/assets"
	"github.com/automoto/crossing/config"
	"github.com/automoto/crossing/fonts"
	"github.com/automoto/crossing/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	bounds image.Rectangle
	scene  scenes.Scene
}

func NewGame(ctx context.Context, levelFS fs.FS, levelPath string) (*Game, error) {
	if err := fonts.LoadDefaults(); err != nil {
		return nil, err
	}

	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewCrossingScene(ctx, levelFS, levelPath),
	}, nil
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	debug := flag.Bool("debug", false, "outline collision spans and show loop stats")
	mute := flag.Bool("mute", false, "disable sound effects")
	levelFile := flag.String("level", "", "play a .tmx map from disk instead of the built-in board")
	flag.Parse()

	config.Debug.ShowHitboxes = *debug
	config.Debug.Mute = *mute

	levelFS, levelPath := assets.LevelFS(), config.Board.LevelPath
	if *levelFile != "" {
		levelFS = os.DirFS(filepath.Dir(*levelFile))
		levelPath = filepath.Base(*levelFile)
	}

	if err := run(levelFS, levelPath); err != nil {
		log.Fatalf("Game stopped: %v", err)
	}
}

func run(levelFS fs.FS, levelPath string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	game, err := NewGame(ctx, levelFS, levelPath)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)

	return ebiten.RunGame(game)
}
