package game

// Position is the world position of an entity, in pixels.
type Position struct {
	X, Y float64
}

// PlayerControlled tags the entity the camera follows.
type PlayerControlled struct{}
