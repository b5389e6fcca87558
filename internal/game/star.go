package game

import "image/color"

// StarType determines a star's color, base radius and name.
type StarType uint8

const (
	StarYellowDwarf StarType = iota
	StarRedDwarf
	StarBlueGiant
	StarBlackHole
	StarTypeCount // sentinel
)

// starEntry holds static info about a star type.
type starEntry struct {
	Name   string
	Radius float64
	Color  color.RGBA
}

var starTable = [StarTypeCount]starEntry{
	StarYellowDwarf: {"Yellow Dwarf", 30, color.RGBA{253, 249, 0, 255}},
	StarRedDwarf:    {"Red Dwarf", 20, color.RGBA{204, 51, 25, 255}},
	StarBlueGiant:   {"Blue Giant", 50, color.RGBA{127, 178, 255, 255}},
	StarBlackHole:   {"Black Hole", 25, color.RGBA{25, 0, 51, 255}},
}

// AllStarTypes returns the selectable star types in menu order.
func AllStarTypes() []StarType {
	return []StarType{StarYellowDwarf, StarRedDwarf, StarBlueGiant, StarBlackHole}
}

// Name returns a human-readable name for a star type.
func (t StarType) Name() string {
	if t < StarTypeCount {
		return starTable[t].Name
	}
	return "Unknown"
}

// Radius returns the base visual radius for a star type.
func (t StarType) Radius() float64 {
	if t < StarTypeCount {
		return starTable[t].Radius
	}
	return 0
}

// Color returns the fill color for a star type.
func (t StarType) Color() color.RGBA {
	if t < StarTypeCount {
		return starTable[t].Color
	}
	return color.RGBA{255, 255, 255, 255}
}

// HasEventHorizon reports whether the star is drawn with a horizon ring.
func (t StarType) HasEventHorizon() bool { return t == StarBlackHole }

// Star sits at the center of a solar system.
type Star struct {
	Position Vec2
	Radius   float64
	Color    color.RGBA
	Type     StarType
}

// NewStar creates a star with its type's radius and color.
func NewStar(position Vec2, t StarType) Star {
	return Star{
		Position: position,
		Radius:   t.Radius(),
		Color:    t.Color(),
		Type:     t,
	}
}
