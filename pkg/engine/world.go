// pkg/engine/world.go

// Package engine assembles the entities, the wave manager and the event bus
// into a World and advances it one frame at a time.
package engine

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/opd-ai/go-starwave/pkg/audio"
	"github.com/opd-ai/go-starwave/pkg/config"
	"github.com/opd-ai/go-starwave/pkg/entity"
	"github.com/opd-ai/go-starwave/pkg/event"
	"github.com/opd-ai/go-starwave/pkg/logging"
	"github.com/opd-ai/go-starwave/pkg/wave"
)

type Status int

const (
	StatusWaiting Status = iota
	StatusActive
	StatusEnded
)

func (s Status) String() string {
	switch s {
	case StatusWaiting:
		return "waiting"
	case StatusActive:
		return "active"
	case StatusEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// CueProvider hands out audio cues by kind. *synth.Synth implements it.
type CueProvider interface {
	Cue(kind audio.Kind) audio.Cue
}

// Options are the collaborators a World is built with. Every field is
// optional: no input means an idle player, no audio means silent cues, and
// no logger discards output.
type Options struct {
	Input  entity.InputSource
	Audio  CueProvider
	Logger *logging.Logger
	Bus    *event.Bus
}

// World owns every entity and runs the per-frame update in a fixed order:
// the player, then enemies and asteroids in registration order, then the
// wave manager. It is not safe for concurrent use; one goroutine drives
// Step.
type World struct {
	Config    *config.GameConfig
	Registry  *entity.Registry
	Player    *entity.Player
	Enemies   []*entity.Enemy
	Asteroids []*entity.Asteroid
	Waves     *wave.Manager
	EventBus  *event.Bus

	Status       Status
	CurrentFrame uint64
	Seed         uint64
	StartTime    time.Time
	EndTime      time.Time

	ctx    context.Context
	logger *logging.Logger
	subs   []*event.Subscription
}

// NewWorld validates cfg and builds a world from it. A zero cfg.Seed picks a
// random seed, recorded in World.Seed.
func NewWorld(ctx context.Context, cfg *config.GameConfig, opts Options) (*World, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: nil config", config.ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Bus == nil {
		opts.Bus = event.NewEventBus()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	w := &World{
		Config:   cfg,
		Registry: entity.NewRegistry(),
		EventBus: opts.Bus,
		Seed:     seed,
		ctx:      ctx,
		logger:   opts.Logger,
	}

	w.Waves = wave.NewManager(cfg.Wave, cue(opts.Audio, audio.NextWave), w.EventBus)
	w.registerEventHandlers()
	w.initPlayer(opts)
	w.initEnemies(rng)
	w.initAsteroids(rng)

	w.logger.Info(ctx, "world created",
		"seed", seed,
		"enemies", len(w.Enemies),
		"asteroids", len(w.Asteroids),
		"quota", w.Waves.Stats().Quota,
	)
	return w, nil
}

func cue(p CueProvider, kind audio.Kind) audio.Cue {
	if p == nil {
		return audio.Silent
	}
	return p.Cue(kind)
}

func (w *World) initPlayer(opts Options) {
	w.Player = entity.NewPlayer(w.Registry.NextID(), w.Config.Player, w.Config.RespawnDelay, entity.PlayerDeps{
		Input:     opts.Input,
		Explosion: cue(opts.Audio, audio.Explosion),
		Bus:       w.EventBus,
	})
	w.Registry.Add(w.Player)
}

// initEnemies creates the enemies. The first quota of them are admitted; the
// rest park in the wave manager's queue.
func (w *World) initEnemies(rng *rand.Rand) {
	for i := 0; i < w.Config.Enemy.Count; i++ {
		e := entity.NewEnemy(w.Registry.NextID(), w.Config.Enemy, w.Config.World, w.Config.RespawnDelay, entity.EnemyDeps{
			Target:  w.Player.GetID(),
			Locator: w.Registry,
			Gate:    w.Waves,
			Rand:    rng,
		})
		w.Registry.Add(e)
		w.Player.RegisterHazard(e)
		w.Enemies = append(w.Enemies, e)
	}
}

func (w *World) initAsteroids(rng *rand.Rand) {
	for i := 0; i < w.Config.Asteroid.Count; i++ {
		a := entity.NewAsteroid(w.Registry.NextID(), w.Config.Asteroid, w.Config.World, w.Config.RespawnDelay, rng, w.EventBus)
		w.Registry.Add(a)
		w.Player.RegisterHazard(a)
		w.Asteroids = append(w.Asteroids, a)
	}
}

func (w *World) registerEventHandlers() {
	w.subs = append(w.subs,
		w.EventBus.Subscribe(event.WaveAdvanced, func(e event.Event) {
			we, ok := e.(*event.WaveEvent)
			if !ok {
				return
			}
			w.logger.Info(w.ctx, "wave advanced",
				"wave", we.Wave,
				"quota", we.Quota,
				"score", we.Score,
				"frame", we.Frame,
			)
		}),
		w.EventBus.Subscribe(event.PlayerDestroyed, func(e event.Event) {
			w.logger.Debug(w.ctx, "player destroyed", "frame", w.CurrentFrame)
		}),
		w.EventBus.Subscribe(event.SpawnDeferred, func(e event.Event) {
			w.logger.Debug(w.ctx, "enemy spawn deferred", "frame", w.CurrentFrame, "waiting", w.Waves.Stats().Waiting)
		}),
	)
}

// Start marks the world active.
func (w *World) Start() {
	w.Status = StatusActive
	w.StartTime = time.Now()
	w.EventBus.Publish(&event.BaseEvent{EventType: event.GameStarted, Source: w})
}

// Stop ends the session and detaches the world's own event handlers.
func (w *World) Stop() {
	if w.Status == StatusEnded {
		return
	}
	w.Status = StatusEnded
	w.EndTime = time.Now()
	w.EventBus.Publish(&event.BaseEvent{EventType: event.GameEnded, Source: w})
	for _, s := range w.subs {
		s.Cancel()
	}
	w.subs = nil

	st := w.Waves.Stats()
	w.logger.Info(w.ctx, "world stopped",
		"frames", w.CurrentFrame,
		"wave", st.Wave,
		"score", st.Score,
	)
}

// Step advances the world by one frame.
func (w *World) Step() {
	w.Player.Update()
	for _, e := range w.Enemies {
		e.Update()
	}
	for _, a := range w.Asteroids {
		a.Update()
	}
	w.Waves.Update()
	w.CurrentFrame++
}

// Run steps the world until frames have elapsed or ctx is done. A
// non-positive frames runs until ctx is done.
func (w *World) Run(ctx context.Context, frames int) error {
	if w.Status != StatusActive {
		w.Start()
	}
	for n := 0; frames <= 0 || n < frames; n++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		w.Step()
	}
	return nil
}
