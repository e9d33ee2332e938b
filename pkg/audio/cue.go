// pkg/audio/cue.go

// Package audio defines the fire-and-forget sound cues the simulation
// triggers: the explosion when the player dies and the fanfare when a wave
// advances. The speaker backend lives in the synth subpackage.
package audio

// Cue plays a sound effect. Play must not block the frame loop.
type Cue interface {
	Play()
}

// CueFunc adapts a function to Cue.
type CueFunc func()

func (f CueFunc) Play() { f() }

// Silent is a Cue that does nothing.
var Silent Cue = CueFunc(func() {})

// Kind selects one of the synthesized effects.
type Kind int

const (
	Explosion Kind = iota
	NextWave
)

func (k Kind) String() string {
	switch k {
	case Explosion:
		return "explosion"
	case NextWave:
		return "next_wave"
	default:
		return "unknown"
	}
}
