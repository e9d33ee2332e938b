package entity

import (
	"fmt"
	"testing"
)

func TestHeadingFor_AllCombinations(t *testing.T) {
	mapped := map[Signal]float64{
		Up:           0,
		Up | Right:   315,
		Right:        270,
		Right | Down: 225,
		Down:         180,
		Down | Left:  135,
		Left:         90,
		Up | Left:    45,
	}

	for s := Signal(0); s < 16; s++ {
		t.Run(fmt.Sprintf("signal_%04b", s), func(t *testing.T) {
			got, ok := HeadingFor(s)
			want, wantOK := mapped[s]
			if ok != wantOK || got != want {
				t.Errorf("HeadingFor(%04b) = (%v, %v), want (%v, %v)", s, got, ok, want, wantOK)
			}
		})
	}
}

func TestSignal_Direction(t *testing.T) {
	tests := []struct {
		name   string
		signal Signal
		x, y   float64
	}{
		{"none", 0, 0, 0},
		{"up", Up, 0, -1},
		{"down_left", Down | Left, -1, 1},
		{"up_down_cancel", Up | Down, 0, 0},
		{"three_keys", Up | Right | Left, 0, -1},
		{"all_keys", Up | Right | Down | Left, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := tt.signal.Direction()
			if d.X != tt.x || d.Y != tt.y {
				t.Errorf("Direction() = (%v, %v), want (%v, %v)", d.X, d.Y, tt.x, tt.y)
			}
		})
	}
}

func TestNewSignal(t *testing.T) {
	s := NewSignal(true, false, false, true)
	if s != Up|Left {
		t.Errorf("NewSignal = %04b, want %04b", s, Up|Left)
	}
	if !s.Has(Up) || s.Has(Right) || !s.Has(Up|Left) {
		t.Errorf("Has reported wrong bits for %04b", s)
	}
}
