// pkg/render/engo/scene_test.go
package engo

import (
	"context"
	"image/color"
	"testing"

	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-starwave/pkg/config"
	"github.com/opd-ai/go-starwave/pkg/engine"
	"github.com/opd-ai/go-starwave/pkg/entity"
	"github.com/opd-ai/go-starwave/pkg/physics"
	"github.com/opd-ai/go-starwave/pkg/wave"
)

func newTestWorld(t *testing.T, input entity.InputSource) *engine.World {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Seed = 9
	w, err := engine.NewWorld(context.Background(), cfg, engine.Options{Input: input})
	if err != nil {
		t.Fatal(err)
	}
	return w
}

func TestNewGameScene(t *testing.T) {
	input := NewInputSystem()
	w := newTestWorld(t, input)
	scene := NewGameScene(w, input, 120, nil)

	if scene.world != w || scene.input != input || scene.logger == nil || scene.maxFrames != 120 {
		t.Errorf("scene not wired: %+v", scene)
	}
	if scene.Type() != "GameScene" {
		t.Errorf("Type() = %q", scene.Type())
	}
}

func TestInputSystem_Latch(t *testing.T) {
	tests := []struct {
		name                  string
		up, right, down, left bool
		want                  entity.Signal
	}{
		{"idle", false, false, false, false, 0},
		{"up_right", true, true, false, false, entity.Up | entity.Right},
		{"down_left", false, false, true, true, entity.Down | entity.Left},
	}

	is := NewInputSystem()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is.latch(tt.up, tt.right, tt.down, tt.left)
			if got := is.PollDirectional(); got != tt.want {
				t.Errorf("PollDirectional() = %04b, want %04b", got, tt.want)
			}
		})
	}
}

func TestEngoRenderer_Draw(t *testing.T) {
	r := NewEngoRenderer(nil)
	snap := engine.Snapshot{Sprites: []engine.Sprite{
		{ID: 1, Kind: engine.KindPlayer, Rect: physics.Rect{X: 400, Y: 300, Width: 48, Height: 48}, Visible: true, Heading: 90},
		{ID: 2, Kind: engine.KindEnemy, Rect: physics.Rect{X: 10, Y: 20, Width: 48, Height: 48}, Visible: true, State: entity.Chase},
		{ID: 3, Kind: engine.KindEnemy, Rect: physics.Rect{X: 800, Y: 600, Width: 48, Height: 48}, Visible: false, State: entity.Search},
	}}

	r.Draw(snap)
	if r.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", r.Len())
	}

	player := r.sprites[1]
	if player.SpaceComponent.Position.X != 400 || player.SpaceComponent.Position.Y != 300 || player.SpaceComponent.Width != 48 {
		t.Errorf("player space = %+v", player.SpaceComponent)
	}
	if player.SpaceComponent.Rotation != 270 {
		t.Errorf("player rotation = %v, want 270", player.SpaceComponent.Rotation)
	}
	if _, ok := player.RenderComponent.Drawable.(common.Triangle); !ok {
		t.Errorf("player drawable = %T, want triangle", player.RenderComponent.Drawable)
	}
	if r.sprites[2].RenderComponent.Color != enemyColors[entity.Chase] {
		t.Errorf("chasing enemy color = %v", r.sprites[2].RenderComponent.Color)
	}
	if !r.sprites[3].RenderComponent.Hidden {
		t.Error("invisible enemy should be hidden")
	}

	snap.Sprites[1].Rect.X = 50
	snap.Sprites[1].Visible = false
	r.Draw(snap)
	if r.Len() != 3 {
		t.Errorf("redraw created entities: Len() = %d", r.Len())
	}
	if e := r.sprites[2]; e.SpaceComponent.Position.X != 50 || !e.RenderComponent.Hidden {
		t.Errorf("enemy not updated: pos=%v hidden=%v", e.SpaceComponent.Position, e.RenderComponent.Hidden)
	}

	r.Remove(3)
	r.Remove(99)
	if r.Len() != 2 {
		t.Errorf("Len() after Remove = %d, want 2", r.Len())
	}
}

func TestColorFor_ExplosionFades(t *testing.T) {
	var last uint8 = 255
	for frame := 0; frame < 6; frame++ {
		c, ok := colorFor(engine.Sprite{Kind: engine.KindPlayer, Look: entity.LookExploding, Frame: frame}).(color.RGBA)
		if !ok {
			t.Fatal("explosion color is not RGBA")
		}
		if c.A > last {
			t.Errorf("frame %d alpha %d brighter than previous %d", frame, c.A, last)
		}
		last = c.A
	}
}

func TestHUD_Sync(t *testing.T) {
	h := NewHUD(nil)
	h.Sync(wave.Stats{Wave: 1, Quota: 3, Deaths: 1})

	if len(h.slots) != 3 {
		t.Fatalf("slots = %d, want 3", len(h.slots))
	}
	if h.slots[0].RenderComponent.Color != slotKilled || h.slots[1].RenderComponent.Color != slotEmpty {
		t.Error("kill slots not filled in order")
	}

	h.Sync(wave.Stats{Wave: 2, Quota: 6})
	if len(h.slots) != 6 {
		t.Fatalf("slots = %d after quota grew, want 6", len(h.slots))
	}
	for i, s := range h.slots {
		if s.RenderComponent.Hidden || s.RenderComponent.Color != slotEmpty {
			t.Errorf("slot %d after wave reset: hidden=%v color=%v", i, s.RenderComponent.Hidden, s.RenderComponent.Color)
		}
	}
	if h.waveBar.SpaceComponent.Width != 2*(slotSize+slotGap) {
		t.Errorf("wave bar width = %v", h.waveBar.SpaceComponent.Width)
	}
}

func TestFrameSystem_Update(t *testing.T) {
	input := NewInputSystem()
	w := newTestWorld(t, input)
	fs := NewFrameSystem(w, NewEngoRenderer(nil), NewHUD(nil))

	input.latch(false, true, false, false)
	for i := 0; i < 5; i++ {
		fs.Update(1.0 / 60)
	}

	if w.CurrentFrame != 5 {
		t.Errorf("CurrentFrame = %d, want 5", w.CurrentFrame)
	}
	if fs.renderer.Len() != 7 {
		t.Errorf("renderer mirrors %d entities, want 7", fs.renderer.Len())
	}
	if fs.renderer.sprites[w.Player.GetID()].SpaceComponent.Position.X <= 400 {
		t.Error("player did not move right")
	}
	if len(fs.hud.slots) != 3 {
		t.Errorf("HUD slots = %d, want 3", len(fs.hud.slots))
	}
}

func TestFrameSystem_StopAfter(t *testing.T) {
	tests := []struct {
		name       string
		limit      int
		wantFrames uint64
		wantExits  int
	}{
		{"limit_reached", 3, 3, 1},
		{"no_limit", 0, 6, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, nil)
			fs := NewFrameSystem(w, NewEngoRenderer(nil), NewHUD(nil))
			exits := 0
			fs.StopAfter(tt.limit, func() { exits++ })

			for i := 0; i < 6; i++ {
				fs.Update(1.0 / 60)
			}
			if w.CurrentFrame != tt.wantFrames {
				t.Errorf("CurrentFrame = %d, want %d", w.CurrentFrame, tt.wantFrames)
			}
			if exits != tt.wantExits {
				t.Errorf("exit called %d times, want %d", exits, tt.wantExits)
			}
		})
	}
}
