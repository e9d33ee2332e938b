// pkg/entity/asteroid.go
package entity

import (
	"math/rand/v2"

	"github.com/opd-ai/go-starwave/pkg/config"
	"github.com/opd-ai/go-starwave/pkg/event"
	"github.com/opd-ai/go-starwave/pkg/physics"
)

// Asteroid drifts in a straight line and recycles itself off-screen after
// leaving the world. It plays no part in scoring or waves.
type Asteroid struct {
	BaseEntity

	bounds       physics.Vector2D
	respawnDelay int
	rng          *rand.Rand
	bus          *event.Bus
}

// NewAsteroid creates an asteroid with the configured velocity and places it
// at a random off-screen offset.
func NewAsteroid(id ID, cfg config.AsteroidConfig, world config.WorldConfig, respawnDelay int, rng *rand.Rand, bus *event.Bus) *Asteroid {
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(id), 1))
	}
	a := &Asteroid{
		BaseEntity: BaseEntity{
			ID: id,
			Body: physics.KinematicBody{
				Position:     vec(cfg.Start),
				Velocity:     vec(cfg.Velocity),
				Acceleration: vec(cfg.Acceleration),
				MaxSpeed:     cfg.MaxSpeed,
				DampAxes:     physics.AxisNone,
			},
			Size: cfg.Size,
		},
		bounds:       physics.Vector2D{X: world.Width, Y: world.Height},
		respawnDelay: respawnDelay,
		rng:          rng,
		bus:          bus,
	}
	a.Reset()
	return a
}

func (a *Asteroid) Alive() bool {
	return !a.respawn.Active()
}

// Update drifts the asteroid, or counts down to its respawn.
func (a *Asteroid) Update() {
	if a.respawn.Active() {
		if a.respawn.Tick() {
			a.Reset()
		}
		return
	}

	a.Body.Integrate()

	if a.Body.Position.X > a.bounds.X || a.Body.Position.Y > a.bounds.Y {
		a.OnDeath()
	}
}

// OnDeath starts the respawn countdown.
func (a *Asteroid) OnDeath() {
	if a.respawn.Active() {
		return
	}
	a.respawn.Start(a.respawnDelay)
	if a.bus != nil {
		a.bus.Publish(event.NewEntityEvent(event.AsteroidDestroyed, a, uint64(a.ID), a.Body.Position.X, a.Body.Position.Y))
	}
}

// Reset moves the asteroid to a random off-screen offset. Velocity is kept.
func (a *Asteroid) Reset() {
	a.Body.Position = physics.Vector2D{
		X: -float64(a.rng.IntN(int(a.bounds.X))),
		Y: -float64(a.rng.IntN(int(a.bounds.Y))),
	}
}
