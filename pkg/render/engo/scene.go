// pkg/render/engo/scene.go
package engo

import (
	"context"
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-starwave/pkg/engine"
	"github.com/opd-ai/go-starwave/pkg/logging"
)

// GameScene shows a World in an engo window.
type GameScene struct {
	world     *engine.World
	input     *InputSystem
	logger    *logging.Logger
	maxFrames int

	renderer *EngoRenderer
	hud      *HUD
	frames   *FrameSystem
}

// NewGameScene creates a scene for world. input must be the InputSource the
// world's player was built with. A positive maxFrames closes the window once
// the world has run that many frames.
func NewGameScene(world *engine.World, input *InputSystem, maxFrames int, logger *logging.Logger) *GameScene {
	if logger == nil {
		logger = logging.Discard()
	}
	return &GameScene{
		world:     world,
		input:     input,
		logger:    logger,
		maxFrames: maxFrames,
	}
}

// Type returns the scene type (required by Engo)
func (scene *GameScene) Type() string {
	return "GameScene"
}

// Preload is called before the scene starts (required by Engo). Every shape
// is a primitive, so there is nothing to load.
func (scene *GameScene) Preload() {}

// Setup is called when the scene starts (required by Engo)
func (scene *GameScene) Setup(u engo.Updater) {
	w, _ := u.(*ecs.World)
	common.SetBackground(color.Black)
	SetupInputBindings()

	rs := &common.RenderSystem{}
	w.AddSystem(rs)

	scene.renderer = NewEngoRenderer(rs)
	scene.hud = NewHUD(rs)
	scene.frames = NewFrameSystem(scene.world, scene.renderer, scene.hud)
	scene.frames.StopAfter(scene.maxFrames, engo.Exit)

	// Input must sample before the world steps.
	w.AddSystem(scene.input)
	w.AddSystem(scene.frames)

	scene.world.Start()
	scene.logger.Info(context.Background(), "engo scene started",
		"width", scene.world.Config.World.Width,
		"height", scene.world.Config.World.Height,
	)
}

// Exit is called when the window closes.
func (scene *GameScene) Exit() {
	scene.world.Stop()
}

// FrameSystem steps the world once per engo frame and mirrors the result.
type FrameSystem struct {
	world    *engine.World
	renderer *EngoRenderer
	hud      *HUD

	limit   uint64
	exit    func()
	exiting bool
}

// NewFrameSystem creates the per-frame driver.
func NewFrameSystem(world *engine.World, renderer *EngoRenderer, hud *HUD) *FrameSystem {
	return &FrameSystem{world: world, renderer: renderer, hud: hud}
}

// StopAfter makes the system stop stepping once the world reaches frames and
// call exit once. A non-positive frames removes the limit.
func (fs *FrameSystem) StopAfter(frames int, exit func()) {
	if frames <= 0 {
		fs.limit, fs.exit = 0, nil
		return
	}
	fs.limit, fs.exit = uint64(frames), exit
}

// Remove satisfies the ecs.System interface
func (fs *FrameSystem) Remove(basic ecs.BasicEntity) {}

// Update satisfies the ecs.System interface. The simulation is frame-based,
// so dt is ignored.
func (fs *FrameSystem) Update(dt float32) {
	if fs.limit > 0 && fs.world.CurrentFrame >= fs.limit {
		if !fs.exiting && fs.exit != nil {
			fs.exiting = true
			fs.exit()
		}
		return
	}
	fs.world.Step()
	snap := fs.world.Snapshot()
	fs.renderer.Draw(snap)
	fs.hud.Sync(snap.Waves)
}

// Run opens a window sized to the world and blocks until it closes or, when
// maxFrames is positive, until the world has run that many frames.
func Run(world *engine.World, input *InputSystem, maxFrames int, logger *logging.Logger) {
	opts := engo.RunOptions{
		Title:  "Starwave",
		Width:  int(world.Config.World.Width),
		Height: int(world.Config.World.Height),
		VSync:  true,
	}
	engo.Run(opts, NewGameScene(world, input, maxFrames, logger))
}
