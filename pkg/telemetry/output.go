// pkg/telemetry/output.go
package telemetry

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gocarina/gocsv"

	"github.com/opd-ai/go-starwave/pkg/config"
	"github.com/opd-ai/go-starwave/pkg/event"
)

// Recorder appends a row to waves.csv for every wave advance. A nil
// *Recorder is valid and records nothing, so callers need not check
// whether telemetry is enabled.
type Recorder struct {
	mu            sync.Mutex
	dir           string
	file          *os.File
	headerWritten bool

	records   []WaveRecord
	lastFrame uint64
	err       error
	sub       *event.Subscription
}

// NewRecorder creates dir and opens waves.csv in it.
// Returns nil if dir is empty (telemetry disabled).
func NewRecorder(dir string) (*Recorder, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating telemetry directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "waves.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating waves.csv: %w", err)
	}
	return &Recorder{dir: dir, file: f}, nil
}

// WriteConfig saves the effective configuration as config.yaml.
func (r *Recorder) WriteConfig(cfg *config.GameConfig) error {
	if r == nil {
		return nil
	}
	return config.SaveConfig(cfg, filepath.Join(r.dir, "config.yaml"))
}

// Attach subscribes the recorder to wave advances on bus. Write errors are
// kept and reported by Err.
func (r *Recorder) Attach(bus *event.Bus) {
	if r == nil {
		return
	}
	r.sub = bus.Subscribe(event.WaveAdvanced, func(e event.Event) {
		we, ok := e.(*event.WaveEvent)
		if !ok {
			return
		}
		rec := WaveRecord{
			Wave:  we.Wave,
			Quota: we.Quota,
			Score: we.Score,
			Frame: we.Frame,
		}
		if err := r.WriteWave(rec); err != nil {
			r.mu.Lock()
			if r.err == nil {
				r.err = err
			}
			r.mu.Unlock()
		}
	})
}

// WriteWave appends rec to waves.csv. Frames is filled in from the previous
// record's frame.
func (r *Recorder) WriteWave(rec WaveRecord) error {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	rec.Frames = rec.Frame - r.lastFrame
	r.lastFrame = rec.Frame

	records := []WaveRecord{rec}
	if !r.headerWritten {
		if err := gocsv.Marshal(records, r.file); err != nil {
			return fmt.Errorf("writing wave record: %w", err)
		}
		r.headerWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, r.file); err != nil {
			return fmt.Errorf("writing wave record: %w", err)
		}
	}

	r.records = append(r.records, rec)
	return nil
}

// Records returns a copy of the rows written so far.
func (r *Recorder) Records() []WaveRecord {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]WaveRecord(nil), r.records...)
}

// Summary summarises the rows written so far.
func (r *Recorder) Summary() Summary {
	return Summarize(r.Records())
}

// Err returns the first error hit while recording from the bus.
func (r *Recorder) Err() error {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// Close detaches from the bus and closes waves.csv.
func (r *Recorder) Close() error {
	if r == nil {
		return nil
	}
	if r.sub != nil {
		r.sub.Cancel()
		r.sub = nil
	}
	if err := r.file.Close(); err != nil {
		return fmt.Errorf("closing waves.csv: %w", err)
	}
	return nil
}
