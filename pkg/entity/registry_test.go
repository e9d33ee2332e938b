package entity

import (
	"testing"

	"github.com/opd-ai/go-starwave/pkg/config"
	"github.com/opd-ai/go-starwave/pkg/physics"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	cfg := config.DefaultConfig()

	id := r.NextID()
	if id != 1 || r.NextID() != 2 {
		t.Fatal("IDs should be allocated from 1")
	}

	p := NewPlayer(id, cfg.Player, cfg.RespawnDelay, PlayerDeps{})
	r.Add(p)
	r.Add(p)
	if r.Len() != 1 {
		t.Errorf("duplicate Add: Len = %d, want 1", r.Len())
	}

	got, ok := r.Get(id)
	if !ok || got != Entity(p) {
		t.Error("Get did not return the registered player")
	}

	pos, ok := r.Locate(id)
	if !ok || pos != (physics.Vector2D{X: 400, Y: 300}) {
		t.Errorf("Locate = %+v, %v", pos, ok)
	}

	if _, ok := r.Locate(99); ok {
		t.Error("Locate of unknown ID should fail")
	}
}
