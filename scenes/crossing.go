package scenes

import (
	"context"
	"fmt"
	"image/color"
	"io/fs"
	"log"
	"sync"

	"github.com/automoto/crossing/assets"
	cfg "github.com/automoto/crossing/config"
	"github.com/automoto/crossing/systems"
	"github.com/automoto/crossing/systems/factory"
	"github.com/automoto/crossing/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CrossingScene runs the whole round: asset loading, play, the win overlay
// and replays.
type CrossingScene struct {
	ctx       context.Context
	levelFS   fs.FS
	levelPath string

	ecs    *ecs.ECS
	images *assets.ImageCache
	replay *ui.ReplayUI
	once   sync.Once
	err    error
}

// NewCrossingScene creates a scene that plays the map at levelPath inside
// levelFS. Asset fetches stop when ctx is done.
func NewCrossingScene(ctx context.Context, levelFS fs.FS, levelPath string) *CrossingScene {
	return &CrossingScene{ctx: ctx, levelFS: levelFS, levelPath: levelPath}
}

func (cs *CrossingScene) Update() error {
	cs.once.Do(cs.configure)
	if cs.err != nil {
		return cs.err
	}

	if err := cs.images.Poll(); err != nil {
		return fmt.Errorf("loading assets: %w", err)
	}

	cs.ecs.Update()

	if systems.CurrentState(cs.ecs) == cfg.GameWon && systems.IsOverlayVisible(cs.ecs) {
		cs.replay.Update()
	}
	return nil
}

func (cs *CrossingScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if cs.ecs == nil {
		return
	}
	cs.ecs.Draw(screen)

	if cs.replay != nil && systems.IsOverlayVisible(cs.ecs) {
		cs.replay.Draw(screen)
	}
}

func (cs *CrossingScene) configure() {
	if !cfg.Debug.Mute {
		systems.PreloadAllSFX()
	}

	level, err := assets.NewLevelLoader(cs.levelFS).Load(cs.levelPath)
	if err != nil {
		cs.err = err
		return
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateDebug)

	// Gameplay, in tick order: hops, clock, obstacles, then the player
	ecs.AddSystem(systems.WithRunningCheck(systems.UpdatePlayerInput))
	ecs.AddSystem(systems.WithRunningCheck(systems.UpdateClock))
	ecs.AddSystem(systems.WithRunningCheck(systems.UpdateObstacles))
	ecs.AddSystem(systems.WithRunningCheck(systems.UpdateObjects))
	ecs.AddSystem(systems.WithRunningCheck(systems.UpdatePlayer))

	ecs.AddSystem(systems.UpdateGameState)
	ecs.AddSystem(systems.UpdateOverlay)
	ecs.AddSystem(systems.UpdateAudio)

	// Add renderers
	ecs.AddRenderer(cfg.LayerBoard, systems.DrawBoard)
	ecs.AddRenderer(cfg.LayerActors, systems.DrawObstacles)
	ecs.AddRenderer(cfg.LayerActors, systems.DrawPlayer)
	ecs.AddRenderer(cfg.LayerOverlay, systems.DrawLoading)
	ecs.AddRenderer(cfg.LayerOverlay, systems.DrawDebug)
	ecs.AddRenderer(cfg.LayerOverlay, systems.DrawOverlay)

	cs.ecs = ecs

	factory.CreateGame(ecs, nil)
	systems.SetMuted(ecs, cfg.Debug.Mute)
	factory.CreateSpace(ecs, cfg.C.Width, cfg.C.Height, int(cfg.Grid.StepX), int(cfg.Grid.StepY))

	cs.images = assets.NewImageCache(cs.ctx)
	factory.CreateLevel(ecs, level, cs.images)

	cs.replay, err = ui.NewReplayUI(func() {
		if err := systems.RequestReplay(ecs); err != nil {
			log.Printf("[crossing] %v", err)
		}
	})
	if err != nil {
		cs.err = err
		return
	}

	cs.images.OnReady(func() {
		systems.StartGame(ecs)
	})
	cs.images.Load(cfg.Board.Images...)
	cs.images.Load(level.SpriteURLs()...)
}
