// pkg/entity/input.go
package entity

import "github.com/opd-ai/go-starwave/pkg/physics"

// Signal is the 4-bit directional input sampled each frame.
type Signal uint8

const (
	Up Signal = 1 << iota
	Right
	Down
	Left
)

// NewSignal packs the four directional flags.
func NewSignal(up, right, down, left bool) Signal {
	var s Signal
	if up {
		s |= Up
	}
	if right {
		s |= Right
	}
	if down {
		s |= Down
	}
	if left {
		s |= Left
	}
	return s
}

// Has reports whether every bit of d is set.
func (s Signal) Has(d Signal) bool {
	return s&d == d
}

func (s Signal) bit(d Signal) float64 {
	if s&d != 0 {
		return 1
	}
	return 0
}

// Direction returns (right-left, down-up). Diagonals are not normalized.
func (s Signal) Direction() physics.Vector2D {
	return physics.Vector2D{
		X: s.bit(Right) - s.bit(Left),
		Y: s.bit(Down) - s.bit(Up),
	}
}

// headings maps the eight recognised combinations to a facing in degrees,
// counter-clockwise from up.
var headings = map[Signal]float64{
	Up:           0,
	Up | Right:   315,
	Right:        270,
	Right | Down: 225,
	Down:         180,
	Down | Left:  135,
	Left:         90,
	Up | Left:    45,
}

// HeadingFor returns the facing for s. Combinations outside the table (no
// input, opposing directions, three or more keys) yield 0 and false.
func HeadingFor(s Signal) (float64, bool) {
	h, ok := headings[s]
	return h, ok
}

// InputSource is the boundary that samples the directional controls.
type InputSource interface {
	PollDirectional() Signal
}

// InputFunc adapts a function to InputSource.
type InputFunc func() Signal

func (f InputFunc) PollDirectional() Signal { return f() }
