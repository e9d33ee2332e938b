// pkg/render/engo/hud.go
package engo

import (
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-starwave/pkg/wave"
)

const (
	slotSize         = 12
	slotGap          = 4
	hudMargin        = 8
	hudZLayer        = 10
	waveMarkerHeight = 4
)

var (
	slotEmpty  = color.RGBA{60, 60, 60, 200}
	slotKilled = color.RGBA{230, 40, 40, 230}
	waveColor  = color.RGBA{255, 255, 255, 200}
)

// HUD draws the wave progress in the top-left corner: one slot per enemy in
// the quota, filled as they die, and a bar under it that lengthens with
// each wave.
type HUD struct {
	renderSystem *common.RenderSystem
	slots        []*sprite
	waveBar      *sprite
	stats        wave.Stats
}

// NewHUD creates a HUD feeding rs. A nil rs keeps the entities to itself.
func NewHUD(rs *common.RenderSystem) *HUD {
	h := &HUD{renderSystem: rs}
	h.waveBar = h.newRect(hudMargin, hudMargin+slotSize+slotGap, 0, waveMarkerHeight, waveColor)
	return h
}

// Sync updates the HUD from stats, growing the slot row as the quota grows.
func (h *HUD) Sync(stats wave.Stats) {
	h.stats = stats

	for len(h.slots) < stats.Quota {
		x := float32(hudMargin + len(h.slots)*(slotSize+slotGap))
		h.slots = append(h.slots, h.newRect(x, hudMargin, slotSize, slotSize, slotEmpty))
	}

	for i, s := range h.slots {
		s.RenderComponent.Hidden = i >= stats.Quota
		if i < stats.Deaths {
			s.RenderComponent.Color = slotKilled
		} else {
			s.RenderComponent.Color = slotEmpty
		}
	}

	h.waveBar.SpaceComponent.Width = float32(stats.Wave * (slotSize + slotGap))
}

func (h *HUD) newRect(x, y, width, height float32, c color.Color) *sprite {
	e := &sprite{BasicEntity: ecs.NewBasic()}
	e.RenderComponent = common.RenderComponent{
		Drawable: common.Rectangle{},
		Color:    c,
	}
	e.RenderComponent.SetZIndex(hudZLayer)
	e.SpaceComponent = common.SpaceComponent{
		Position: engo.Point{X: x, Y: y},
		Width:    width,
		Height:   height,
	}
	if h.renderSystem != nil {
		h.renderSystem.Add(&e.BasicEntity, &e.RenderComponent, &e.SpaceComponent)
	}
	return e
}
