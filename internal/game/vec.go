package game

import "math"

// Vec2 is a point or direction in world space (pixels, y grows downward).
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Length returns the magnitude of v.
func (v Vec2) Length() float64 { return math.Hypot(v.X, v.Y) }

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Normalize returns v scaled to unit length. The zero vector stays zero.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Angle returns the direction of v in radians.
func (v Vec2) Angle() float64 { return math.Atan2(v.Y, v.X) }
