// pkg/entity/countdown.go
package entity

// Countdown is a frame counter gating an entity's return to play.
type Countdown struct {
	remaining int
}

// Start arms the countdown for frames updates. Non-positive values arm it
// for a single frame.
func (c *Countdown) Start(frames int) {
	if frames < 1 {
		frames = 1
	}
	c.remaining = frames
}

// Tick consumes one frame and reports whether the countdown expired on this
// tick. An idle countdown stays at zero and never reports expiry.
func (c *Countdown) Tick() bool {
	if c.remaining == 0 {
		return false
	}
	c.remaining--
	return c.remaining == 0
}

func (c *Countdown) Active() bool   { return c.remaining > 0 }
func (c *Countdown) Remaining() int { return c.remaining }
