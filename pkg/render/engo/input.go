// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-starwave/pkg/entity"
)

const (
	ButtonUp    = "up"
	ButtonRight = "right"
	ButtonDown  = "down"
	ButtonLeft  = "left"
	ButtonQuit  = "quit"
)

// InputSystem samples the direction buttons once per engo frame and serves
// the sample to the player as an entity.InputSource. Add it to the ecs world
// before the FrameSystem so the sample is fresh when the world steps.
type InputSystem struct {
	signal entity.Signal
}

// NewInputSystem creates an input system with nothing held.
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// Remove satisfies the ecs.System interface
func (is *InputSystem) Remove(basic ecs.BasicEntity) {}

// Update reads the buttons. Escape closes the window.
func (is *InputSystem) Update(dt float32) {
	if engo.Input.Button(ButtonQuit).JustPressed() {
		engo.Exit()
		return
	}
	is.latch(
		engo.Input.Button(ButtonUp).Down(),
		engo.Input.Button(ButtonRight).Down(),
		engo.Input.Button(ButtonDown).Down(),
		engo.Input.Button(ButtonLeft).Down(),
	)
}

func (is *InputSystem) latch(up, right, down, left bool) {
	is.signal = entity.NewSignal(up, right, down, left)
}

// PollDirectional implements entity.InputSource.
func (is *InputSystem) PollDirectional() entity.Signal {
	return is.signal
}

// SetupInputBindings binds WASD and the arrow keys. engo.Input only exists
// once engo.Run has started, so call it from Scene.Setup.
func SetupInputBindings() {
	engo.Input.RegisterButton(ButtonUp, engo.KeyW, engo.KeyArrowUp)
	engo.Input.RegisterButton(ButtonRight, engo.KeyD, engo.KeyArrowRight)
	engo.Input.RegisterButton(ButtonDown, engo.KeyS, engo.KeyArrowDown)
	engo.Input.RegisterButton(ButtonLeft, engo.KeyA, engo.KeyArrowLeft)
	engo.Input.RegisterButton(ButtonQuit, engo.KeyEscape)
}
