// pkg/render/engo/renderer.go
package engo

import (
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-starwave/pkg/engine"
	"github.com/opd-ai/go-starwave/pkg/entity"
)

var (
	playerColor   = color.RGBA{240, 240, 255, 255}
	blastColor    = color.RGBA{255, 160, 32, 255}
	asteroidColor = color.RGBA{140, 130, 120, 255}

	enemyColors = map[entity.BehaviorState]color.Color{
		entity.Search:    color.RGBA{64, 200, 64, 255},
		entity.Chase:     color.RGBA{230, 40, 40, 255},
		entity.LostChase: color.RGBA{64, 96, 230, 255},
	}
)

// sprite is one ecs entity drawn by common.RenderSystem.
type sprite struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent
}

// EngoRenderer mirrors engine snapshots into ecs entities. Entities are
// created on first sight and hidden, never removed, when their sprite is not
// visible.
type EngoRenderer struct {
	renderSystem *common.RenderSystem
	sprites      map[entity.ID]*sprite
}

// NewEngoRenderer creates a renderer feeding rs. A nil rs keeps the entities
// to itself.
func NewEngoRenderer(rs *common.RenderSystem) *EngoRenderer {
	return &EngoRenderer{
		renderSystem: rs,
		sprites:      make(map[entity.ID]*sprite),
	}
}

// Draw updates every entity from s.
func (r *EngoRenderer) Draw(s engine.Snapshot) {
	for _, sp := range s.Sprites {
		e, ok := r.sprites[sp.ID]
		if !ok {
			e = r.create(sp)
		}
		apply(e, sp)
	}
}

func (r *EngoRenderer) create(sp engine.Sprite) *sprite {
	e := &sprite{BasicEntity: ecs.NewBasic()}
	e.RenderComponent = common.RenderComponent{Drawable: drawableFor(sp.Kind)}
	apply(e, sp)

	r.sprites[sp.ID] = e
	if r.renderSystem != nil {
		r.renderSystem.Add(&e.BasicEntity, &e.RenderComponent, &e.SpaceComponent)
	}
	return e
}

func drawableFor(k engine.Kind) common.Drawable {
	if k == engine.KindPlayer {
		return common.Triangle{}
	}
	return common.Rectangle{}
}

func apply(e *sprite, sp engine.Sprite) {
	e.SpaceComponent.Position = engo.Point{X: float32(sp.Rect.X), Y: float32(sp.Rect.Y)}
	e.SpaceComponent.Width = float32(sp.Rect.Width)
	e.SpaceComponent.Height = float32(sp.Rect.Height)
	e.RenderComponent.Hidden = !sp.Visible
	e.RenderComponent.Color = colorFor(sp)

	if sp.Kind == engine.KindPlayer {
		// Headings run counter-clockwise; engo rotates clockwise.
		e.SpaceComponent.Rotation = float32(360 - sp.Heading)
	}
}

func colorFor(sp engine.Sprite) color.Color {
	switch sp.Kind {
	case engine.KindPlayer:
		if sp.Look == entity.LookExploding {
			return fade(blastColor, sp.Frame)
		}
		return playerColor
	case engine.KindEnemy:
		if c, ok := enemyColors[sp.State]; ok {
			return c
		}
		return enemyColors[entity.Search]
	default:
		return asteroidColor
	}
}

// fade dims c by a sixth per explosion frame.
func fade(c color.RGBA, frame int) color.RGBA {
	if frame > 5 {
		frame = 5
	}
	c.A = uint8(int(c.A) * (6 - frame) / 6)
	return c
}

// Len returns the number of mirrored entities.
func (r *EngoRenderer) Len() int {
	return len(r.sprites)
}

// Remove drops the entity mirroring id.
func (r *EngoRenderer) Remove(id entity.ID) {
	e, ok := r.sprites[id]
	if !ok {
		return
	}
	if r.renderSystem != nil {
		r.renderSystem.Remove(e.BasicEntity)
	}
	delete(r.sprites, id)
}
