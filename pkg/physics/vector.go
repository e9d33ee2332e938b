// pkg/physics/vector.go

// Package physics holds the kinematic primitives shared by every entity:
// a 2D vector, an axis-aligned rectangle and the per-frame integration step.
package physics

import "math"

// Vector2D is a 2D vector in screen space (y grows downward).
type Vector2D struct {
	X float64
	Y float64
}

// Add returns v + other.
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns v - other.
func (v Vector2D) Sub(other Vector2D) Vector2D {
	return Vector2D{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale multiplies both components by factor.
func (v Vector2D) Scale(factor float64) Vector2D {
	return Vector2D{X: v.X * factor, Y: v.Y * factor}
}

// Length returns the Euclidean magnitude.
func (v Vector2D) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns the unit vector in the same direction. The zero vector
// has no direction and normalizes to itself.
func (v Vector2D) Normalize() Vector2D {
	length := v.Length()
	if length == 0 {
		return Vector2D{}
	}
	return Vector2D{X: v.X / length, Y: v.Y / length}
}

// Distance returns the Euclidean distance between v and other.
func (v Vector2D) Distance(other Vector2D) float64 {
	return v.Sub(other).Length()
}

// IsZero reports whether both components are exactly zero.
func (v Vector2D) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
