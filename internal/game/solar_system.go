package game

import (
	"image/color"
	"math"
	"math/rand/v2"
)

// Orbit generation bounds.
const (
	MinOrbitalRadius = 200.0
	MaxOrbitalRadius = 2000.0
	MinPlanetRadius  = 8.0
	MaxPlanetRadius  = 35.0
	// StarToPlanetRatio is how much larger the star must be than the largest planet.
	StarToPlanetRatio = 3.0
)

// SolarSystem owns a star and an ordered set of planets. Ships refer to
// planets by index, so the order never changes after generation.
type SolarSystem struct {
	Star    Star
	Planets []Planet
}

// NewSolarSystem generates planetCount planets around a star at center.
func NewSolarSystem(center Vec2, starType StarType, planetCount int, rng *rand.Rand) *SolarSystem {
	planets, maxRadius := generatePlanets(planetCount, rng)

	star := NewStar(center, starType)
	if minRadius := maxRadius * StarToPlanetRatio; star.Radius < minRadius {
		star.Radius = minRadius
	}

	return &SolarSystem{Star: star, Planets: planets}
}

func generatePlanets(count int, rng *rand.Rand) ([]Planet, float64) {
	if count <= 0 {
		return nil, 0
	}
	planets := make([]Planet, 0, count)
	maxRadius := 0.0

	spacing := (MaxOrbitalRadius - MinOrbitalRadius) / float64(count)

	for i := 0; i < count; i++ {
		// Jitter up to 20% of spacing either way
		base := MinOrbitalRadius + float64(i)*spacing
		orbit := math.Max(base+randRange(rng, -spacing*0.2, spacing*0.2), MinOrbitalRadius)

		// Outer planets are slower
		speed := 0.5 - float64(i)/float64(count)*0.35 + randRange(rng, -0.05, 0.05)

		radius := randRange(rng, MinPlanetRadius, MaxPlanetRadius)
		maxRadius = math.Max(maxRadius, radius)

		planets = append(planets, Planet{
			Angle:         randRange(rng, 0, 2*math.Pi),
			OrbitalRadius: orbit,
			OrbitalSpeed:  speed,
			Radius:        radius,
			Color: color.RGBA{
				R: uint8(randRange(rng, 0.3, 1.0) * 255),
				G: uint8(randRange(rng, 0.3, 1.0) * 255),
				B: uint8(randRange(rng, 0.3, 1.0) * 255),
				A: 255,
			},
			Product: ProductKind(rng.IntN(int(ProductKindCount))),
		})
	}
	return planets, maxRadius
}

func randRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// Update advances every planet by dt seconds.
func (s *SolarSystem) Update(dt float64) {
	for i := range s.Planets {
		s.Planets[i].Update(dt)
	}
}

// Center returns the star position, which all orbits share.
func (s *SolarSystem) Center() Vec2 { return s.Star.Position }

// PlanetPosition returns the world position of planet idx.
func (s *SolarSystem) PlanetPosition(idx int) (Vec2, bool) {
	if idx < 0 || idx >= len(s.Planets) {
		return Vec2{}, false
	}
	return s.Planets[idx].Position(s.Star.Position), true
}
