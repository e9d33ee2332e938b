// pkg/entity/entity.go

// Package entity implements the simulated actors: the player ship, the
// pursuing enemies and the drifting asteroids. Each entity owns a
// physics.KinematicBody and advances exactly once per frame via Update.
package entity

import (
	"github.com/opd-ai/go-starwave/pkg/config"
	"github.com/opd-ai/go-starwave/pkg/physics"
	"github.com/opd-ai/go-starwave/pkg/wave"
)

// ID is a registry handle for an entity.
type ID uint64

// Entity is the per-frame lifecycle shared by every actor.
type Entity interface {
	GetID() ID
	Update()
	OnDeath()
	Reset()
	Bounds() physics.Rect
	Alive() bool
}

// Hazard is anything the player can collide with.
type Hazard interface {
	Bounds() physics.Rect
	OnDeath()
	Alive() bool
}

// Locator resolves an entity handle to its current position.
type Locator interface {
	Locate(id ID) (physics.Vector2D, bool)
}

// SpawnGate is the admission policy enemies consult before entering play.
// *wave.Manager implements it.
type SpawnGate interface {
	AllowSpawn() bool
	EnemyHasSpawned()
	EnemyHasDied()
	AddWaitingSpawn(r wave.Resetter)
}

// BaseEntity holds the state common to every actor.
type BaseEntity struct {
	ID      ID
	Body    physics.KinematicBody
	Size    config.Size
	respawn Countdown
}

// GetID returns the entity's handle.
func (e *BaseEntity) GetID() ID {
	return e.ID
}

// Position returns the top-left corner of the entity.
func (e *BaseEntity) Position() physics.Vector2D {
	return e.Body.Position
}

// Bounds returns the collision rectangle.
func (e *BaseEntity) Bounds() physics.Rect {
	return physics.NewRect(e.Body.Position, e.Size.Width, e.Size.Height)
}

// WaitingToRespawn reports whether the respawn countdown is running.
func (e *BaseEntity) WaitingToRespawn() bool {
	return e.respawn.Active()
}

// RespawnIn returns the frames left on the respawn countdown.
func (e *BaseEntity) RespawnIn() int {
	return e.respawn.Remaining()
}

func vec(p config.Point) physics.Vector2D {
	return physics.Vector2D{X: p.X, Y: p.Y}
}
