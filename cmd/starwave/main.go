// cmd/starwave/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-starwave/pkg/audio/synth"
	"github.com/opd-ai/go-starwave/pkg/config"
	"github.com/opd-ai/go-starwave/pkg/engine"
	"github.com/opd-ai/go-starwave/pkg/event"
	"github.com/opd-ai/go-starwave/pkg/logging"
	"github.com/opd-ai/go-starwave/pkg/render"
	engorender "github.com/opd-ai/go-starwave/pkg/render/engo"
	"github.com/opd-ai/go-starwave/pkg/telemetry"
)

// headlessFrames is the run length when -renderer headless has no -frames.
const headlessFrames = 3600

// keyHoldFrames is how long a terminal key press counts as held.
const keyHoldFrames = 6

type options struct {
	configPath   string
	renderer     string
	frames       int
	telemetryDir string
	seed         uint64
}

func main() {
	var o options
	flag.StringVar(&o.configPath, "config", "", "Path to a YAML configuration file (defaults are built in)")
	flag.StringVar(&o.renderer, "renderer", "terminal", "Front end: 'terminal', 'engo' or 'headless'")
	flag.IntVar(&o.frames, "frames", 0, "Stop after this many frames (0 = until quit)")
	flag.StringVar(&o.telemetryDir, "telemetry", "", "Directory for waves.csv and config.yaml (overrides config)")
	flag.Uint64Var(&o.seed, "seed", 0, "Random seed (overrides config; 0 = keep)")
	flag.Parse()

	logger := logging.NewLogger()
	ctx := logging.WithSessionID(context.Background(), logging.GenerateSessionID())
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, o, logger); err != nil {
		logger.Error(ctx, "starwave failed", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, o options, logger *logging.Logger) (err error) {
	cfg, err := loadConfig(o)
	if err != nil {
		return err
	}

	rec, err := telemetry.NewRecorder(cfg.Telemetry.Dir)
	if err != nil {
		return err
	}
	defer closeInto(rec, &err)
	if err := rec.WriteConfig(cfg); err != nil {
		return logging.WrapError(err, "write telemetry config", "dir", cfg.Telemetry.Dir)
	}

	bus := event.NewEventBus()
	rec.Attach(bus)

	cues, closeAudio := setupAudio(ctx, cfg.Audio, logger)
	defer closeAudio()

	world, err := play(ctx, o, cfg, engine.Options{Audio: cues, Logger: logger, Bus: bus})
	if world != nil {
		world.Stop()
	}
	if err != nil && ctx.Err() == nil {
		return err
	}

	if rec != nil {
		s := rec.Summary()
		logger.Info(ctx, "session summary",
			"waves", s.Waves,
			"final_wave", s.FinalWave,
			"final_score", s.FinalScore,
			"mean_frames_per_wave", s.MeanFrames,
			"stddev_frames_per_wave", s.StdDevFrames,
		)
	}
	return rec.Err()
}

// closeInto closes c and stores its error in *err unless *err is already set.
func closeInto(c io.Closer, err *error) {
	if cerr := c.Close(); cerr != nil && *err == nil {
		*err = cerr
	}
}

func loadConfig(o options) (*config.GameConfig, error) {
	cfg, err := config.LoadConfig(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.seed != 0 {
		cfg.Seed = o.seed
	}
	if o.telemetryDir != "" {
		cfg.Telemetry.Dir = o.telemetryDir
	}
	return cfg, nil
}

// setupAudio returns nil cues when audio is disabled or the device cannot be
// opened; the world then plays silently.
func setupAudio(ctx context.Context, cfg config.AudioConfig, logger *logging.Logger) (engine.CueProvider, func()) {
	if !cfg.Enabled {
		return nil, func() {}
	}
	s := synth.NewSynth(cfg.SampleRate, logger)
	if err := s.Initialize(); err != nil {
		logger.Warn(ctx, "audio unavailable, continuing silently", "error", err)
		return nil, func() {}
	}
	return s, s.Close
}

// play builds the world for the selected front end and runs it.
func play(ctx context.Context, o options, cfg *config.GameConfig, opts engine.Options) (*engine.World, error) {
	switch o.renderer {
	case "headless":
		world, err := engine.NewWorld(ctx, cfg, opts)
		if err != nil {
			return nil, err
		}
		frames := o.frames
		if frames <= 0 {
			frames = headlessFrames
		}
		return world, runHeadless(ctx, world, frames, render.NewNullRenderer(opts.Logger, 60))

	case "terminal":
		input := render.NewKeyboardInput(keyHoldFrames)
		opts.Input = input
		world, err := engine.NewWorld(ctx, cfg, opts)
		if err != nil {
			return nil, err
		}
		screen, err := tcell.NewScreen()
		if err != nil {
			return world, fmt.Errorf("open terminal: %w", err)
		}
		if err := screen.Init(); err != nil {
			return world, fmt.Errorf("init terminal: %w", err)
		}
		defer screen.Fini()
		return world, render.NewTerminal(screen, input, opts.Logger).Run(ctx, world, o.frames)

	case "engo":
		input := engorender.NewInputSystem()
		opts.Input = input
		world, err := engine.NewWorld(ctx, cfg, opts)
		if err != nil {
			return nil, err
		}
		engorender.Run(world, input, o.frames, opts.Logger)
		return world, nil

	default:
		return nil, fmt.Errorf("unknown renderer %q (want terminal, engo or headless)", o.renderer)
	}
}

func runHeadless(ctx context.Context, world *engine.World, frames int, r render.Renderer) error {
	world.Start()
	for n := 0; n < frames; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		world.Step()
		r.Draw(world.Snapshot())
	}
	return nil
}
