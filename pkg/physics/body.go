// pkg/physics/body.go
package physics

// Axis selects which velocity components receive damping.
type Axis uint8

const (
	AxisX Axis = 1 << iota
	AxisY

	AxisNone Axis = 0
	AxisBoth      = AxisX | AxisY
)

// KinematicBody is the motion state owned by every entity.
type KinematicBody struct {
	Position     Vector2D
	Velocity     Vector2D
	Acceleration Vector2D

	// Damping is subtracted from each damped velocity component every frame,
	// toward zero.
	Damping float64
	// MaxSpeed clamps each velocity component to [-MaxSpeed, MaxSpeed].
	MaxSpeed float64
	// DampAxes selects the damped components.
	DampAxes Axis
}

// Integrate advances the body one frame: accelerate, damp, clamp, translate.
func (b *KinematicBody) Integrate() {
	b.Velocity = b.Velocity.Add(b.Acceleration)

	if b.DampAxes&AxisX != 0 {
		b.Velocity.X = damp(b.Velocity.X, b.Damping)
	}
	if b.DampAxes&AxisY != 0 {
		b.Velocity.Y = damp(b.Velocity.Y, b.Damping)
	}

	b.Velocity.X = clamp(b.Velocity.X, b.MaxSpeed)
	b.Velocity.Y = clamp(b.Velocity.Y, b.MaxSpeed)

	b.Position = b.Position.Add(b.Velocity)
}

// Stop zeroes velocity and acceleration.
func (b *KinematicBody) Stop() {
	b.Velocity = Vector2D{}
	b.Acceleration = Vector2D{}
}

// damp moves v toward zero by amount, snapping to zero instead of overshooting.
func damp(v, amount float64) float64 {
	switch {
	case v < -amount:
		return v + amount
	case v > amount:
		return v - amount
	default:
		return 0
	}
}

func clamp(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}
