// pkg/render/terminal.go
package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-starwave/pkg/engine"
	"github.com/opd-ai/go-starwave/pkg/entity"
	"github.com/opd-ai/go-starwave/pkg/physics"
)

type cell struct {
	ch    rune
	style tcell.Style
}

var (
	styleField    = tcell.StyleDefault
	stylePlayer   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleBlast    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleAsteroid = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)

	enemyStyles = map[entity.BehaviorState]tcell.Style{
		entity.Search:    tcell.StyleDefault.Foreground(tcell.ColorGreen),
		entity.Chase:     tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
		entity.LostChase: tcell.StyleDefault.Foreground(tcell.ColorBlue),
	}
	enemyGlyphs = map[entity.BehaviorState]rune{
		entity.Search:    'e',
		entity.Chase:     'E',
		entity.LostChase: '?',
	}

	// Indexed by heading / 45.
	headingGlyphs = []rune{'↑', '↖', '←', '↙', '↓', '↘', '→', '↗'}
	blastGlyphs   = []rune{'*', '#', '%', '+', ':', '.'}
)

// TerminalRenderer rasterises snapshots into a character grid. The bottom
// row is the status line; the rest shows the whole world scaled to fit.
type TerminalRenderer struct {
	width  int
	height int
	buffer [][]cell
	scaleX float64
	scaleY float64
	worldW float64
	worldH float64
}

// NewTerminalRenderer creates a renderer for a width x height terminal
// showing a world of worldW x worldH.
func NewTerminalRenderer(width, height int, worldW, worldH float64) *TerminalRenderer {
	r := &TerminalRenderer{worldW: worldW, worldH: worldH}
	r.Resize(width, height)
	return r
}

// Resize changes the grid size and recomputes the world scale.
func (r *TerminalRenderer) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 2 {
		height = 2
	}
	r.width = width
	r.height = height
	r.buffer = make([][]cell, height)
	for i := range r.buffer {
		r.buffer[i] = make([]cell, width)
	}
	r.scaleX = float64(width) / r.worldW
	r.scaleY = float64(height-1) / r.worldH
	r.Clear()
}

// Clear blanks the grid.
func (r *TerminalRenderer) Clear() {
	for y := range r.buffer {
		for x := range r.buffer[y] {
			r.buffer[y][x] = cell{ch: ' ', style: styleField}
		}
	}
}

// Draw implements Renderer.
func (r *TerminalRenderer) Draw(s engine.Snapshot) {
	r.Clear()

	// Player last so it stays on top.
	for i := len(s.Sprites) - 1; i >= 0; i-- {
		sp := s.Sprites[i]
		if !sp.Visible {
			continue
		}
		ch, style := glyph(sp)
		r.fill(sp.Rect, ch, style)
	}
	r.drawStatus(s)
}

func glyph(sp engine.Sprite) (rune, tcell.Style) {
	switch sp.Kind {
	case engine.KindPlayer:
		if sp.Look == entity.LookExploding {
			return blastGlyphs[sp.Frame%len(blastGlyphs)], styleBlast
		}
		idx := int(math.Round(sp.Heading/45)) % len(headingGlyphs)
		return headingGlyphs[idx], stylePlayer
	case engine.KindEnemy:
		ch, ok := enemyGlyphs[sp.State]
		if !ok {
			ch = 'e'
		}
		return ch, enemyStyles[sp.State]
	default:
		return '@', styleAsteroid
	}
}

// fill covers every cell the rectangle touches, clipped to the field.
func (r *TerminalRenderer) fill(rect physics.Rect, ch rune, style tcell.Style) {
	x0, y0 := r.worldToScreen(physics.Vector2D{X: rect.X, Y: rect.Y})
	x1 := int(math.Ceil((rect.X+rect.Width)*r.scaleX)) - 1
	y1 := int(math.Ceil((rect.Y+rect.Height)*r.scaleY)) - 1
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}

	for y := max(y0, 0); y <= min(y1, r.height-2); y++ {
		for x := max(x0, 0); x <= min(x1, r.width-1); x++ {
			r.buffer[y][x] = cell{ch: ch, style: style}
		}
	}
}

func (r *TerminalRenderer) worldToScreen(pos physics.Vector2D) (int, int) {
	return int(math.Floor(pos.X * r.scaleX)), int(math.Floor(pos.Y * r.scaleY))
}

func (r *TerminalRenderer) drawStatus(s engine.Snapshot) {
	status := fmt.Sprintf(" wave %d  score %d  kills %d/%d", s.Waves.Wave, s.Waves.Score, s.Waves.Deaths, s.Waves.Quota)
	if !s.PlayerAlive {
		status += "  [destroyed]"
	}
	row := r.buffer[r.height-1]
	for x := range row {
		row[x] = cell{ch: ' ', style: styleHUD}
	}
	for i, ch := range []rune(status) {
		if i >= len(row) {
			break
		}
		row[i] = cell{ch: ch, style: styleHUD}
	}
}

// Present copies the grid to screen and shows it.
func (r *TerminalRenderer) Present(screen tcell.Screen) {
	for y, row := range r.buffer {
		for x, c := range row {
			screen.SetContent(x, y, c.ch, nil, c.style)
		}
	}
	screen.Show()
}

// At returns the rune drawn at column x, row y.
func (r *TerminalRenderer) At(x, y int) rune {
	if y < 0 || y >= r.height || x < 0 || x >= r.width {
		return 0
	}
	return r.buffer[y][x].ch
}

// Row returns row y as a string.
func (r *TerminalRenderer) Row(y int) string {
	if y < 0 || y >= r.height {
		return ""
	}
	out := make([]rune, r.width)
	for x, c := range r.buffer[y] {
		out[x] = c.ch
	}
	return string(out)
}
