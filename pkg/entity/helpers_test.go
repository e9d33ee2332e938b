package entity

import (
	"math"

	"github.com/opd-ai/go-starwave/pkg/physics"
	"github.com/opd-ai/go-starwave/pkg/wave"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// fakeGate is a SpawnGate with a switchable admission policy.
type fakeGate struct {
	open    bool
	spawned int
	died    int
	waiting []wave.Resetter
}

func (g *fakeGate) AllowSpawn() bool { return g.open }

func (g *fakeGate) EnemyHasSpawned() { g.spawned++ }

func (g *fakeGate) EnemyHasDied() { g.died++ }

func (g *fakeGate) AddWaitingSpawn(r wave.Resetter) {
	g.waiting = append(g.waiting, r)
}

type fakeLocator map[ID]physics.Vector2D

func (l fakeLocator) Locate(id ID) (physics.Vector2D, bool) {
	v, ok := l[id]
	return v, ok
}

// fakeHazard records how often it was killed.
type fakeHazard struct {
	rect   physics.Rect
	dead   bool
	deaths int
}

func (h *fakeHazard) Bounds() physics.Rect { return h.rect }
func (h *fakeHazard) Alive() bool          { return !h.dead }
func (h *fakeHazard) OnDeath()             { h.deaths++ }
