package entity

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/opd-ai/go-starwave/pkg/audio"
	"github.com/opd-ai/go-starwave/pkg/config"
	"github.com/opd-ai/go-starwave/pkg/physics"
	"github.com/opd-ai/go-starwave/pkg/wave"
)

const playerID ID = 1

func newTestEnemy(t *testing.T, id ID, gate SpawnGate, loc Locator) *Enemy {
	t.Helper()
	cfg := config.DefaultConfig()
	return NewEnemy(id, cfg.Enemy, cfg.World, cfg.RespawnDelay, EnemyDeps{
		Target:  playerID,
		Locator: loc,
		Gate:    gate,
		Rand:    rand.New(rand.NewPCG(7, uint64(id))),
	})
}

func TestBehaviorState_String(t *testing.T) {
	tests := []struct {
		state BehaviorState
		want  string
	}{
		{Search, "search"},
		{Chase, "chase"},
		{LostChase, "lost_chase"},
		{BehaviorState(0), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestNewEnemy_AdmittedSpawnsOffScreen(t *testing.T) {
	gate := &fakeGate{open: true}
	e := newTestEnemy(t, 2, gate, fakeLocator{})

	if gate.spawned != 1 {
		t.Errorf("EnemyHasSpawned called %d times, want 1", gate.spawned)
	}
	pos := e.Position()
	if pos.X > 0 || pos.X <= -800 || pos.Y > 0 || pos.Y <= -600 {
		t.Errorf("spawn position %+v not in (-800, 0] x (-600, 0]", pos)
	}
	if e.State != Search || !e.Alive() || e.Parked() {
		t.Errorf("fresh enemy: state=%v alive=%v parked=%v", e.State, e.Alive(), e.Parked())
	}
}

func TestNewEnemy_DeniedParksAndQueues(t *testing.T) {
	gate := &fakeGate{}
	e := newTestEnemy(t, 2, gate, fakeLocator{})

	if !e.Parked() || e.Alive() {
		t.Fatal("denied enemy should be parked")
	}
	if e.Position() != (physics.Vector2D{X: 800, Y: 600}) {
		t.Errorf("parked at %+v, want (800, 600)", e.Position())
	}
	if len(gate.waiting) != 1 || gate.waiting[0] != wave.Resetter(e) {
		t.Errorf("enemy not queued: %v", gate.waiting)
	}

	e.Update()
	e.OnDeath()
	if e.Position() != (physics.Vector2D{X: 800, Y: 600}) || gate.died != 0 {
		t.Error("parked enemy should be inert")
	}

	gate.open = true
	e.Reset()
	if e.Parked() || !e.Alive() || e.State != Search || gate.spawned != 1 {
		t.Errorf("released enemy: parked=%v alive=%v state=%v spawned=%d", e.Parked(), e.Alive(), e.State, gate.spawned)
	}
}

func TestEnemyProcessState_Transitions(t *testing.T) {
	tests := []struct {
		name      string
		state     BehaviorState
		offset    float64
		wantState BehaviorState
		wantMoved bool
	}{
		{"search_out_of_range", Search, 300.5, Search, true},
		{"search_exactly_in_range", Search, 300, Chase, false},
		{"chase_exactly_in_range", Chase, 300, Chase, true},
		{"chase_out_of_range", Chase, 301, LostChase, false},
		{"lost_chase_never_returns", LostChase, 10, LostChase, true},
		{"chase_on_target", Chase, 0, Chase, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := physics.Vector2D{X: 100, Y: 100}
			loc := fakeLocator{playerID: {X: start.X + tt.offset, Y: start.Y}}
			e := newTestEnemy(t, 2, &fakeGate{open: true}, loc)
			e.Body.Position = start
			e.State = tt.state

			e.processState()

			if e.State != tt.wantState {
				t.Errorf("state = %v, want %v", e.State, tt.wantState)
			}
			if moved := !e.Body.Velocity.IsZero(); moved != tt.wantMoved {
				t.Errorf("velocity = %+v, thrust applied = %v, want %v", e.Body.Velocity, moved, tt.wantMoved)
			}
			if math.IsNaN(e.Body.Velocity.X) || math.IsNaN(e.Body.Velocity.Y) {
				t.Error("velocity is NaN")
			}
		})
	}
}

func TestEnemyProcessState_ChaseAcceleratesTowardTarget(t *testing.T) {
	loc := fakeLocator{playerID: {X: 100, Y: 200}}
	e := newTestEnemy(t, 2, &fakeGate{open: true}, loc)
	e.Body.Position = physics.Vector2D{X: 100, Y: 100}
	e.State = Chase

	e.processState()

	if !near(e.Body.Velocity.X, 0) || !near(e.Body.Velocity.Y, 0.4) {
		t.Errorf("velocity = %+v, want (0, 0.4)", e.Body.Velocity)
	}
	if !e.Body.Acceleration.IsZero() {
		t.Error("enemy thrust must not touch acceleration")
	}
}

func TestEnemyUpdate_SearchDriftDampsVerticalOnly(t *testing.T) {
	e := newTestEnemy(t, 2, &fakeGate{open: true}, fakeLocator{})
	e.Body.Position = physics.Vector2D{X: 100, Y: 100}

	e.Update()

	if !near(e.Body.Velocity.X, 0.4) || !near(e.Body.Velocity.Y, 0.3) {
		t.Errorf("velocity = %+v, want (0.4, 0.3)", e.Body.Velocity)
	}
	if e.State != Search {
		t.Errorf("missing target should count as out of range, state = %v", e.State)
	}
}

func TestEnemyUpdate_StateIsMonotonic(t *testing.T) {
	loc := fakeLocator{}
	e := newTestEnemy(t, 2, &fakeGate{open: true}, loc)
	e.Body.Position = physics.Vector2D{X: 100, Y: 100}

	prev := e.State
	for frame := 0; frame < 200 && e.Alive(); frame++ {
		// Target sweeps in and out of range.
		loc[playerID] = physics.Vector2D{X: 100 + float64(frame%40)*20, Y: 100}
		e.Update()
		if e.State < prev {
			t.Fatalf("frame %d: state went from %v back to %v", frame, prev, e.State)
		}
		prev = e.State
	}
}

func TestEnemyUpdate_BoundsDeathAndRespawn(t *testing.T) {
	gate := &fakeGate{open: true}
	e := newTestEnemy(t, 2, gate, fakeLocator{})
	e.Body.Position = physics.Vector2D{X: 799, Y: 100}
	e.Body.Velocity = physics.Vector2D{X: 2}

	e.Update()
	if e.Alive() || gate.died != 1 {
		t.Fatalf("enemy past the right edge should die: alive=%v died=%d", e.Alive(), gate.died)
	}

	e.OnDeath()
	if gate.died != 1 {
		t.Errorf("second death reported: died=%d", gate.died)
	}

	for i := 0; i < 119; i++ {
		e.Update()
	}
	if e.Alive() {
		t.Fatal("enemy respawned early")
	}
	e.Update()
	if !e.Alive() || gate.spawned != 2 {
		t.Errorf("enemy should respawn after 120 frames: alive=%v spawned=%d", e.Alive(), gate.spawned)
	}
	if !e.Body.Velocity.IsZero() || e.State != Search {
		t.Errorf("respawned with v=%+v state=%v", e.Body.Velocity, e.State)
	}
}

func TestEnemy_WaveAdmissionScenario(t *testing.T) {
	waveCues := 0
	m := wave.NewManager(config.WaveConfig{InitialQuota: 3, QuotaIncrement: 3},
		audio.CueFunc(func() { waveCues++ }), nil)

	enemies := make([]*Enemy, 4)
	for i := range enemies {
		enemies[i] = newTestEnemy(t, ID(i+2), m, fakeLocator{})
	}

	fourth := enemies[3]
	if st := m.Stats(); st.Spawned != 3 || st.Waiting != 1 {
		t.Fatalf("after construction stats = %+v, want 3 spawned and 1 waiting", st)
	}
	if !fourth.Parked() {
		t.Fatal("fourth enemy should be parked")
	}

	for _, e := range enemies[:3] {
		e.OnDeath()
	}
	if st := m.Stats(); st.Wave != 2 || st.Quota != 6 || st.Deaths != 0 || st.Spawned != 0 {
		t.Fatalf("after three kills stats = %+v, want wave 2 quota 6", st)
	}
	if waveCues != 1 {
		t.Errorf("wave cue played %d times, want 1", waveCues)
	}

	m.Update()
	if fourth.Parked() || !fourth.Alive() {
		t.Error("queued enemy should be released on the next update")
	}
	if st := m.Stats(); st.Spawned != 1 || st.Waiting != 0 {
		t.Errorf("after release stats = %+v", st)
	}

	for i := 0; i < 120; i++ {
		for _, e := range enemies[:3] {
			e.Update()
		}
	}
	if st := m.Stats(); st.Spawned != 4 {
		t.Errorf("respawned enemies not admitted: stats = %+v", st)
	}
}
