// pkg/entity/enemy.go
package entity

import (
	"math"
	"math/rand/v2"

	"github.com/opd-ai/go-starwave/pkg/config"
	"github.com/opd-ai/go-starwave/pkg/physics"
)

// BehaviorState is the enemy pursuit state.
type BehaviorState int

const (
	// Search drifts diagonally until the target comes within range.
	Search BehaviorState = iota + 1
	// Chase accelerates straight at the target.
	Chase
	// LostChase drifts diagonally again. There is no way back to Search or
	// Chase until the enemy respawns.
	LostChase
)

func (s BehaviorState) String() string {
	switch s {
	case Search:
		return "search"
	case Chase:
		return "chase"
	case LostChase:
		return "lost_chase"
	default:
		return "unknown"
	}
}

// EnemyDeps are the collaborators an enemy needs. Target is a handle
// resolved through Locator each frame.
type EnemyDeps struct {
	Target  ID
	Locator Locator
	Gate    SpawnGate
	Rand    *rand.Rand
}

// Enemy is a pursuer whose entry into play is admitted by the wave manager.
type Enemy struct {
	BaseEntity

	State BehaviorState

	thrust       float64
	chaseRange   float64
	bounds       physics.Vector2D
	respawnDelay int
	parked       bool

	target  ID
	locator Locator
	gate    SpawnGate
	rng     *rand.Rand
}

// NewEnemy creates an enemy at the configured start point and immediately
// asks the gate for admission: it either spawns off-screen or parks and
// queues itself.
func NewEnemy(id ID, cfg config.EnemyConfig, world config.WorldConfig, respawnDelay int, deps EnemyDeps) *Enemy {
	if deps.Rand == nil {
		deps.Rand = rand.New(rand.NewPCG(uint64(id), 0))
	}
	e := &Enemy{
		BaseEntity: BaseEntity{
			ID: id,
			Body: physics.KinematicBody{
				Position: vec(cfg.Start),
				Damping:  cfg.Motion.Damping,
				MaxSpeed: cfg.Motion.MaxSpeed,
				DampAxes: physics.AxisY,
			},
			Size: cfg.Size,
		},
		State:        Search,
		thrust:       cfg.Motion.Thrust,
		chaseRange:   cfg.ChaseRange,
		bounds:       physics.Vector2D{X: world.Width, Y: world.Height},
		respawnDelay: respawnDelay,
		target:       deps.Target,
		locator:      deps.Locator,
		gate:         deps.Gate,
		rng:          deps.Rand,
	}
	e.Reset()
	return e
}

// Alive reports whether the enemy is in play: neither counting down to
// respawn nor parked waiting for admission.
func (e *Enemy) Alive() bool {
	return !e.respawn.Active() && !e.parked
}

// Parked reports whether the enemy is waiting in the deferred queue.
func (e *Enemy) Parked() bool {
	return e.parked
}

// Update advances the enemy one frame.
func (e *Enemy) Update() {
	if e.respawn.Active() {
		if e.respawn.Tick() {
			e.Reset()
		}
		return
	}
	if e.parked {
		return
	}

	e.processState()
	e.Body.Integrate()

	if e.outOfBounds() {
		e.OnDeath()
	}
}

// processState applies this frame's transition or thrust. A transition frame
// applies no thrust. Thrust goes straight into velocity; the body's
// acceleration stays zero.
func (e *Enemy) processState() {
	distance := e.distanceToTarget()

	switch e.State {
	case Search:
		if distance <= e.chaseRange {
			e.State = Chase
			return
		}
		e.drift()
	case Chase:
		if distance > e.chaseRange {
			e.State = LostChase
			return
		}
		if distance == 0 {
			return
		}
		target, _ := e.locator.Locate(e.target)
		dir := target.Sub(e.Body.Position).Normalize()
		e.Body.Velocity = e.Body.Velocity.Add(dir.Scale(e.thrust))
	case LostChase:
		e.drift()
	}
}

func (e *Enemy) drift() {
	e.Body.Velocity = e.Body.Velocity.Add(physics.Vector2D{X: e.thrust, Y: e.thrust})
}

// distanceToTarget is +Inf when the target cannot be resolved.
func (e *Enemy) distanceToTarget() float64 {
	if e.locator == nil {
		return math.Inf(1)
	}
	target, ok := e.locator.Locate(e.target)
	if !ok {
		return math.Inf(1)
	}
	return e.Body.Position.Distance(target)
}

func (e *Enemy) outOfBounds() bool {
	return e.Body.Position.X > e.bounds.X || e.Body.Position.Y > e.bounds.Y
}

// OnDeath reports the kill to the gate and starts the respawn countdown.
// Enemies that are already dead or parked ignore it.
func (e *Enemy) OnDeath() {
	if !e.Alive() {
		return
	}
	e.respawn.Start(e.respawnDelay)
	e.gate.EnemyHasDied()
}

// Reset re-enters play at a random off-screen offset if the gate admits,
// otherwise parks at the far corner of the world and joins the deferred
// queue.
func (e *Enemy) Reset() {
	if e.gate.AllowSpawn() {
		e.parked = false
		e.State = Search
		e.Body.Position = physics.Vector2D{
			X: -float64(e.rng.IntN(int(e.bounds.X))),
			Y: -float64(e.rng.IntN(int(e.bounds.Y))),
		}
		e.Body.Stop()
		e.gate.EnemyHasSpawned()
		return
	}

	e.parked = true
	e.Body.Position = e.bounds
	e.gate.AddWaitingSpawn(e)
}
