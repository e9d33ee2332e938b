// pkg/engine/snapshot.go
package engine

import (
	"github.com/opd-ai/go-starwave/pkg/entity"
	"github.com/opd-ai/go-starwave/pkg/physics"
	"github.com/opd-ai/go-starwave/pkg/wave"
)

// Kind distinguishes sprites for renderers.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindAsteroid
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindAsteroid:
		return "asteroid"
	default:
		return "unknown"
	}
}

// Sprite is the render-facing view of one entity.
type Sprite struct {
	ID      entity.ID
	Kind    Kind
	Rect    physics.Rect
	Visible bool

	// Player only.
	Look      entity.Look
	Frame     int
	Heading   float64
	Thrusting bool

	// Enemy only.
	State entity.BehaviorState
}

// Snapshot is a copy of everything a renderer needs for one frame.
type Snapshot struct {
	Frame       uint64
	Width       float64
	Height      float64
	PlayerAlive bool
	Waves       wave.Stats
	Sprites     []Sprite
}

// Snapshot copies the current frame. The player comes first, then enemies
// and asteroids in registration order.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Frame:       w.CurrentFrame,
		Width:       w.Config.World.Width,
		Height:      w.Config.World.Height,
		PlayerAlive: w.Player.Alive(),
		Waves:       w.Waves.Stats(),
		Sprites:     make([]Sprite, 0, 1+len(w.Enemies)+len(w.Asteroids)),
	}

	look := w.Player.Appearance()
	s.Sprites = append(s.Sprites, Sprite{
		ID:        w.Player.GetID(),
		Kind:      KindPlayer,
		Rect:      w.Player.Bounds(),
		Visible:   look.Look != entity.LookHidden,
		Look:      look.Look,
		Frame:     look.Frame,
		Heading:   w.Player.Heading,
		Thrusting: look.Thrusting,
	})

	for _, e := range w.Enemies {
		s.Sprites = append(s.Sprites, Sprite{
			ID:      e.GetID(),
			Kind:    KindEnemy,
			Rect:    e.Bounds(),
			Visible: e.Alive(),
			State:   e.State,
		})
	}
	for _, a := range w.Asteroids {
		s.Sprites = append(s.Sprites, Sprite{
			ID:      a.GetID(),
			Kind:    KindAsteroid,
			Rect:    a.Bounds(),
			Visible: a.Alive(),
		})
	}
	return s
}
