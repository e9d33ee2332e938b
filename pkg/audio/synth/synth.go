// pkg/audio/synth/synth.go

// Package synth plays audio cues through the speaker. The explosion and the
// wave fanfare are generated from noise and sine tones; no files are loaded.
package synth

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/opd-ai/go-starwave/pkg/audio"
	"github.com/opd-ai/go-starwave/pkg/logging"
)

const (
	explosionLength = 400 * time.Millisecond
	waveNoteLength  = 120 * time.Millisecond
)

// waveNotes is the rising arpeggio played on wave advance.
var waveNotes = []float64{523.25, 659.25, 783.99}

// Synth owns the speaker and turns cue kinds into streamers.
type Synth struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	logger      *logging.Logger
	initialized bool
}

// NewSynth creates a synthesizer for the given sample rate. Nothing is
// played until Initialize succeeds. A nil logger discards errors.
func NewSynth(sampleRate int, logger *logging.Logger) *Synth {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Synth{rate: beep.SampleRate(sampleRate), logger: logger}
}

// Initialize opens the audio device.
func (s *Synth) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(s.rate, s.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("initializing speaker: %w", err)
	}
	s.initialized = true
	return nil
}

// Close stops playback and releases the device.
func (s *Synth) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	s.initialized = false
}

// Cue returns a Cue that plays kind. Cues obtained before Initialize, or
// after Close, are silent.
func (s *Synth) Cue(kind audio.Kind) audio.Cue {
	return audio.CueFunc(func() { s.play(kind) })
}

func (s *Synth) play(kind audio.Kind) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	if streamer := s.stream(kind); streamer != nil {
		speaker.Play(streamer)
	}
}

// stream builds the streamer for kind, logging and returning nil on failure.
func (s *Synth) stream(kind audio.Kind) beep.Streamer {
	streamer, err := NewStreamer(kind, s.rate)
	if err != nil {
		s.logger.Warn(context.Background(), "cue dropped", "cue", kind.String(), "error", err)
		return nil
	}
	return streamer
}

// NewStreamer builds the finite streamer for kind.
func NewStreamer(kind audio.Kind, rate beep.SampleRate) (beep.Streamer, error) {
	switch kind {
	case audio.Explosion:
		return newExplosion(rate), nil
	case audio.NextWave:
		notes := make([]beep.Streamer, 0, len(waveNotes))
		for _, freq := range waveNotes {
			tone, err := generators.SineTone(rate, freq)
			if err != nil {
				return nil, fmt.Errorf("building %v note %.0fHz: %w", kind, freq, err)
			}
			notes = append(notes, beep.Take(rate.N(waveNoteLength), tone))
		}
		return &effects.Gain{Streamer: beep.Seq(notes...), Gain: -0.7}, nil
	default:
		return nil, fmt.Errorf("unknown cue kind %d", kind)
	}
}

// explosion is white noise under a quadratic decay envelope.
type explosion struct {
	pos   int
	total int
	rng   *rand.Rand
}

func newExplosion(rate beep.SampleRate) *explosion {
	return &explosion{
		total: rate.N(explosionLength),
		rng:   rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5eed)),
	}
}

func (e *explosion) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if e.pos >= e.total {
			return i, i > 0
		}
		remaining := 1 - float64(e.pos)/float64(e.total)
		v := (e.rng.Float64()*2 - 1) * 0.4 * math.Pow(remaining, 2)
		samples[i][0] = v
		samples[i][1] = v
		e.pos++
	}
	return len(samples), true
}

func (e *explosion) Err() error { return nil }
