package game

import (
	"image/color"
	"math"
)

// Planet is a body orbiting the system center. Its position is derived from
// the angle and never stored.
type Planet struct {
	Angle         float64 // radians, accumulates without wraparound
	OrbitalRadius float64
	OrbitalSpeed  float64 // radians per second, signed
	Radius        float64
	Color         color.RGBA
	Product       ProductKind
}

// Update advances the orbit by dt seconds.
func (p *Planet) Update(dt float64) {
	p.Angle += p.OrbitalSpeed * dt
}

// Position returns the planet's world position around center.
func (p *Planet) Position(center Vec2) Vec2 {
	return Vec2{
		X: center.X + p.OrbitalRadius*math.Cos(p.Angle),
		Y: center.Y + p.OrbitalRadius*math.Sin(p.Angle),
	}
}
