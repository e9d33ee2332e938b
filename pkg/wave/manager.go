// pkg/wave/manager.go

// Package wave tracks wave progression: which wave is running, how many
// enemies it admits, how many have spawned and died, the score, and the
// enemies waiting for admission.
package wave

import (
	"github.com/opd-ai/go-starwave/pkg/audio"
	"github.com/opd-ai/go-starwave/pkg/config"
	"github.com/opd-ai/go-starwave/pkg/event"
)

// Resetter is an entity that can be asked to re-enter play.
type Resetter interface {
	Reset()
}

// Stats is a point-in-time view of the manager.
type Stats struct {
	Wave    int
	Quota   int
	Spawned int
	Deaths  int
	Score   int
	Waiting int
}

// Manager gates enemy admission and advances waves on kill counts.
//
// Invariants: Spawned <= Quota, Deaths <= Spawned, and the wave advances
// exactly when Deaths reaches Quota.
type Manager struct {
	wave      int
	quota     int
	increment int
	spawned   int
	deaths    int
	score     int
	frames    uint64

	waiting []Resetter
	retain  bool

	cue audio.Cue
	bus *event.Bus
}

// NewManager creates a manager at wave 1. cue plays on every wave advance;
// bus may be nil.
func NewManager(cfg config.WaveConfig, cue audio.Cue, bus *event.Bus) *Manager {
	if cue == nil {
		cue = audio.Silent
	}
	return &Manager{
		wave:      1,
		quota:     cfg.InitialQuota,
		increment: cfg.QuotaIncrement,
		retain:    cfg.RetainDeferred,
		cue:       cue,
		bus:       bus,
	}
}

// AllowSpawn reports whether another enemy may enter play this wave.
func (m *Manager) AllowSpawn() bool {
	return m.spawned < m.quota
}

// EnemyHasSpawned records an admitted enemy.
func (m *Manager) EnemyHasSpawned() {
	m.spawned++
	m.publish(event.EnemySpawned)
}

// EnemyHasDied records a kill and advances the wave when the quota is met.
func (m *Manager) EnemyHasDied() {
	m.deaths++
	m.score++
	m.publish(event.EnemyDestroyed)

	if m.deaths == m.quota {
		m.NextWave()
	}
}

// NextWave starts the next wave: counts reset, the quota grows and the wave
// cue plays.
func (m *Manager) NextWave() {
	m.spawned = 0
	m.deaths = 0
	m.quota += m.increment
	m.wave++
	m.cue.Play()
	m.publish(event.WaveAdvanced)
}

// AddWaitingSpawn queues r until admission reopens. An entity already in the
// queue is not added twice.
func (m *Manager) AddWaitingSpawn(r Resetter) {
	for _, w := range m.waiting {
		if w == r {
			return
		}
	}
	m.waiting = append(m.waiting, r)
	m.publish(event.SpawnDeferred)
}

// Update runs once per frame after the enemies. While admission is open it
// releases queued entities in FIFO order by calling Reset on them. In retain
// mode every queued entity is reset and the queue is kept.
func (m *Manager) Update() {
	m.frames++
	if !m.AllowSpawn() {
		return
	}

	if m.retain {
		for _, r := range append([]Resetter(nil), m.waiting...) {
			r.Reset()
		}
		return
	}

	for len(m.waiting) > 0 && m.AllowSpawn() {
		next := m.waiting[0]
		m.waiting[0] = nil
		m.waiting = m.waiting[1:]
		next.Reset()
	}
}

// Stats returns the current counters.
func (m *Manager) Stats() Stats {
	return Stats{
		Wave:    m.wave,
		Quota:   m.quota,
		Spawned: m.spawned,
		Deaths:  m.deaths,
		Score:   m.score,
		Waiting: len(m.waiting),
	}
}

func (m *Manager) Wave() int  { return m.wave }
func (m *Manager) Score() int { return m.score }

// Frames returns how many times Update has run. Published wave events are
// stamped with it.
func (m *Manager) Frames() uint64 { return m.frames }

func (m *Manager) publish(t event.Type) {
	if m.bus == nil {
		return
	}
	ev := event.NewWaveEvent(t, m, m.wave, m.quota, m.score)
	ev.Frame = m.frames
	m.bus.Publish(ev)
}
