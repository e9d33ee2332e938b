// pkg/render/keyboard.go
package render

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-starwave/pkg/entity"
)

// KeyboardInput turns tcell key events into directional signals. Terminals
// report presses and auto-repeat but never releases, so a direction counts
// as held for hold polls after its last press.
type KeyboardInput struct {
	mu   sync.Mutex
	hold uint64
	tick uint64
	seen map[entity.Signal]uint64
}

// NewKeyboardInput creates an input source. hold below 1 is treated as 1.
func NewKeyboardInput(hold int) *KeyboardInput {
	if hold < 1 {
		hold = 1
	}
	return &KeyboardInput{
		hold: uint64(hold),
		seen: make(map[entity.Signal]uint64),
	}
}

var runeDirections = map[rune]entity.Signal{
	'w': entity.Up, 'W': entity.Up,
	'd': entity.Right, 'D': entity.Right,
	's': entity.Down, 'S': entity.Down,
	'a': entity.Left, 'A': entity.Left,
}

var keyDirections = map[tcell.Key]entity.Signal{
	tcell.KeyUp:    entity.Up,
	tcell.KeyRight: entity.Right,
	tcell.KeyDown:  entity.Down,
	tcell.KeyLeft:  entity.Left,
}

// DirectionFor maps a key event to a direction: arrows or WASD.
func DirectionFor(ev *tcell.EventKey) (entity.Signal, bool) {
	if ev.Key() == tcell.KeyRune {
		d, ok := runeDirections[ev.Rune()]
		return d, ok
	}
	d, ok := keyDirections[ev.Key()]
	return d, ok
}

// HandleKey records a press. It reports whether the key was a direction.
func (k *KeyboardInput) HandleKey(ev *tcell.EventKey) bool {
	d, ok := DirectionFor(ev)
	if !ok {
		return false
	}
	k.Press(d)
	return true
}

// Press marks d as pressed now.
func (k *KeyboardInput) Press(d entity.Signal) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.seen[d] = k.tick + k.hold
}

// PollDirectional implements entity.InputSource. Each call advances the
// hold clock by one frame.
func (k *KeyboardInput) PollDirectional() entity.Signal {
	k.mu.Lock()
	defer k.mu.Unlock()

	var s entity.Signal
	for d, until := range k.seen {
		if k.tick < until {
			s |= d
		} else {
			delete(k.seen, d)
		}
	}
	k.tick++
	return s
}
