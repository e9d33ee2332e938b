// pkg/render/renderer.go

// Package render draws engine snapshots. The terminal front end lives here;
// the windowed one is in the engo subpackage.
package render

import (
	"context"

	"github.com/opd-ai/go-starwave/pkg/engine"
	"github.com/opd-ai/go-starwave/pkg/logging"
)

// Renderer draws one frame.
type Renderer interface {
	Draw(s engine.Snapshot)
}

// NullRenderer draws nothing and logs a frame summary at debug level. It
// backs headless runs.
type NullRenderer struct {
	logger *logging.Logger
	every  uint64
}

// NewNullRenderer creates a NullRenderer logging every n-th frame. n below 1
// logs every frame.
func NewNullRenderer(logger *logging.Logger, every uint64) *NullRenderer {
	if logger == nil {
		logger = logging.Discard()
	}
	if every < 1 {
		every = 1
	}
	return &NullRenderer{logger: logger, every: every}
}

// Draw implements Renderer.
func (d *NullRenderer) Draw(s engine.Snapshot) {
	if s.Frame%d.every != 0 {
		return
	}
	visible := 0
	for _, sp := range s.Sprites {
		if sp.Visible {
			visible++
		}
	}
	d.logger.Debug(context.Background(), "frame",
		"frame", s.Frame,
		"wave", s.Waves.Wave,
		"score", s.Waves.Score,
		"player_alive", s.PlayerAlive,
		"visible", visible,
	)
}
