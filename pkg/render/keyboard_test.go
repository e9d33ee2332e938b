package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-starwave/pkg/entity"
)

func TestDirectionFor(t *testing.T) {
	tests := []struct {
		name   string
		ev     *tcell.EventKey
		want   entity.Signal
		wantOK bool
	}{
		{"arrow_up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), entity.Up, true},
		{"arrow_left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), entity.Left, true},
		{"w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), entity.Up, true},
		{"shift_d", tcell.NewEventKey(tcell.KeyRune, 'D', tcell.ModShift), entity.Right, true},
		{"s", tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), entity.Down, true},
		{"unmapped_rune", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), 0, false},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DirectionFor(tt.ev)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("DirectionFor() = (%04b, %v), want (%04b, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestKeyboardInput_HoldDecays(t *testing.T) {
	k := NewKeyboardInput(3)
	k.Press(entity.Up)

	want := []entity.Signal{entity.Up, entity.Up, entity.Up, 0}
	for i, w := range want {
		if got := k.PollDirectional(); got != w {
			t.Errorf("poll %d = %04b, want %04b", i+1, got, w)
		}
	}
}

func TestKeyboardInput_CombinesDirections(t *testing.T) {
	k := NewKeyboardInput(2)
	k.Press(entity.Up)
	k.PollDirectional()
	k.Press(entity.Right)

	if got := k.PollDirectional(); got != entity.Up|entity.Right {
		t.Errorf("poll = %04b, want up+right", got)
	}
	if got := k.PollDirectional(); got != entity.Right {
		t.Errorf("poll = %04b, want right only", got)
	}
}

func TestKeyboardInput_HandleKey(t *testing.T) {
	k := NewKeyboardInput(1)
	if !k.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone)) {
		t.Error("'a' should be a direction")
	}
	if k.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone)) {
		t.Error("'p' should not be a direction")
	}
	if got := k.PollDirectional(); got != entity.Left {
		t.Errorf("poll = %04b, want left", got)
	}
}
