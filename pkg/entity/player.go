// pkg/entity/player.go
package entity

import (
	"github.com/opd-ai/go-starwave/pkg/audio"
	"github.com/opd-ai/go-starwave/pkg/config"
	"github.com/opd-ai/go-starwave/pkg/event"
	"github.com/opd-ai/go-starwave/pkg/physics"
)

// Look is what a renderer should draw for an entity this frame.
type Look int

const (
	LookVisible Look = iota
	LookExploding
	LookHidden
)

// Appearance is the render-facing state of the player, refreshed on every
// Update. Frame is the thrust animation frame while visible and the
// explosion frame while exploding.
type Appearance struct {
	Look      Look
	Frame     int
	Thrusting bool
}

// PlayerDeps are the collaborators a player needs.
type PlayerDeps struct {
	Input     InputSource
	Explosion audio.Cue
	Bus       *event.Bus
}

// Player is the input-driven ship.
type Player struct {
	BaseEntity

	// Heading is the facing in degrees, one of the eight HeadingFor values.
	Heading float64

	thrust       float64
	spawn        physics.Vector2D
	respawnDelay int
	hazards      []Hazard

	explosionFrames int
	explosionFrame  int
	thrustFrames    int
	thrustFrame     int
	look            Appearance

	input     InputSource
	explosion audio.Cue
	bus       *event.Bus
}

// NewPlayer creates a player at its spawn point.
func NewPlayer(id ID, cfg config.PlayerConfig, respawnDelay int, deps PlayerDeps) *Player {
	if deps.Input == nil {
		deps.Input = InputFunc(func() Signal { return 0 })
	}
	if deps.Explosion == nil {
		deps.Explosion = audio.Silent
	}
	thrustFrames := cfg.ThrustFrames
	if thrustFrames < 1 {
		thrustFrames = 1
	}

	p := &Player{
		BaseEntity: BaseEntity{
			ID: id,
			Body: physics.KinematicBody{
				Damping:  cfg.Motion.Damping,
				MaxSpeed: cfg.Motion.MaxSpeed,
				DampAxes: physics.AxisBoth,
			},
			Size: cfg.Size,
		},
		thrust:          cfg.Motion.Thrust,
		spawn:           vec(cfg.Spawn),
		respawnDelay:    respawnDelay,
		explosionFrames: cfg.ExplosionFrames,
		thrustFrames:    thrustFrames,
		input:           deps.Input,
		explosion:       deps.Explosion,
		bus:             deps.Bus,
	}
	p.Reset()
	return p
}

// RegisterHazard adds h to the collision set. Hazards are tested in
// registration order.
func (p *Player) RegisterHazard(h Hazard) {
	p.hazards = append(p.hazards, h)
}

// Hazards returns the number of registered hazards.
func (p *Player) Hazards() int {
	return len(p.hazards)
}

// Alive reports whether the player is in play.
func (p *Player) Alive() bool {
	return !p.respawn.Active()
}

// Appearance returns the render state computed by the last Update.
func (p *Player) Appearance() Appearance {
	return p.look
}

// Update advances the player one frame. While dead it plays the explosion
// and counts down to respawn; otherwise it reads input, checks collisions
// and integrates.
func (p *Player) Update() {
	if p.respawn.Active() {
		if p.explosionFrame < p.explosionFrames {
			p.look = Appearance{Look: LookExploding, Frame: p.explosionFrame}
			p.explosionFrame++
		} else {
			p.look = Appearance{Look: LookHidden}
		}

		if p.respawn.Tick() {
			p.Reset()
			p.publish(event.PlayerRespawned)
		}
		return
	}

	p.ProcessControls(p.input.PollDirectional())
	p.look = Appearance{
		Look:      LookVisible,
		Frame:     p.thrustFrame,
		Thrusting: !p.Body.Acceleration.IsZero(),
	}

	p.CheckCollisions()
	p.Body.Integrate()

	p.thrustFrame = (p.thrustFrame + 1) % p.thrustFrames
}

// ProcessControls sets heading and acceleration from s. Unrecognised
// combinations face 0; acceleration always follows the per-axis difference.
func (p *Player) ProcessControls(s Signal) {
	p.Heading, _ = HeadingFor(s)
	p.Body.Acceleration = s.Direction().Scale(p.thrust)
}

// CheckCollisions tests the live hazards in order. The first overlap kills
// the player and every registered hazard, and ends the scan.
func (p *Player) CheckCollisions() bool {
	self := p.Bounds()
	for _, h := range p.hazards {
		if !h.Alive() || !self.Overlaps(h.Bounds()) {
			continue
		}
		p.OnDeath()
		for _, other := range p.hazards {
			other.OnDeath()
		}
		return true
	}
	return false
}

// OnDeath starts the explosion and the respawn countdown. The explosion cue
// plays once; a player that is already dead ignores further deaths.
func (p *Player) OnDeath() {
	if p.respawn.Active() {
		return
	}
	p.respawn.Start(p.respawnDelay)
	p.explosionFrame = 0
	p.explosion.Play()
	p.publish(event.PlayerDestroyed)
}

// Reset puts the player back on its spawn point at rest.
func (p *Player) Reset() {
	p.Body.Position = p.spawn
	p.Body.Stop()
}

func (p *Player) publish(t event.Type) {
	if p.bus == nil {
		return
	}
	p.bus.Publish(event.NewEntityEvent(t, p, uint64(p.ID), p.Body.Position.X, p.Body.Position.Y))
}
