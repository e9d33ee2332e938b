// pkg/render/frontend.go
package render

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-starwave/pkg/engine"
	"github.com/opd-ai/go-starwave/pkg/logging"
)

// FrameInterval is the terminal front end's frame period.
const FrameInterval = 16 * time.Millisecond

// Terminal runs a world in a tcell screen: keys are read on their own
// goroutine, while stepping and drawing happen on the caller's.
type Terminal struct {
	screen   tcell.Screen
	input    *KeyboardInput
	renderer *TerminalRenderer
	logger   *logging.Logger
	interval time.Duration
}

// NewTerminal wraps an initialised screen. input may be nil when the world
// is driven by another input source.
func NewTerminal(screen tcell.Screen, input *KeyboardInput, logger *logging.Logger) *Terminal {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Terminal{
		screen:   screen,
		input:    input,
		logger:   logger,
		interval: FrameInterval,
	}
}

// Run steps w every frame until ctx is done, the player quits (Esc, Ctrl-C
// or q), or frames steps have run. A non-positive frames means no limit.
func (t *Terminal) Run(ctx context.Context, w *engine.World, frames int) error {
	width, height := t.screen.Size()
	t.renderer = NewTerminalRenderer(width, height, w.Config.World.Width, w.Config.World.Height)
	t.screen.HideCursor()

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	if w.Status != engine.StatusActive {
		w.Start()
	}
	t.logger.Info(ctx, "terminal front end started", "width", width, "height", height)

	for n := 0; frames <= 0 || n < frames; {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !t.handleEvent(ev) {
				t.logger.Info(ctx, "quit requested", "frame", w.CurrentFrame)
				return nil
			}
		case <-ticker.C:
			w.Step()
			t.renderer.Draw(w.Snapshot())
			t.renderer.Present(t.screen)
			n++
		}
	}
	return nil
}

// handleEvent reports false when the player asked to quit.
func (t *Terminal) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')) {
			return false
		}
		if t.input != nil {
			t.input.HandleKey(ev)
		}
	case *tcell.EventResize:
		w, h := ev.Size()
		t.renderer.Resize(w, h)
		t.screen.Sync()
	}
	return true
}
