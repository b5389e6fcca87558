package game

import "math"

// StateTag names the phase a ship is in.
type StateTag uint8

const (
	StateFlying StateTag = iota
	StateLanding
	StateLanded
	StateTakingOff
)

func (t StateTag) String() string {
	switch t {
	case StateFlying:
		return "Flying"
	case StateLanding:
		return "Landing"
	case StateLanded:
		return "Landed"
	case StateTakingOff:
		return "Taking off"
	default:
		return "Unknown"
	}
}

// ShipState is one of Flying, Landing, Landed or TakingOff. Every state
// except Flying carries the index of the planet it is attached to.
type ShipState interface {
	Tag() StateTag
	shipState()
}

// Flying is free flight under player control.
type Flying struct{}

// Landing shrinks the ship onto Planet while Progress runs from 0 to 1.
type Landing struct {
	Planet   int
	Progress float64
}

// Landed rides along with Planet until the player takes off.
type Landed struct {
	Planet int
}

// TakingOff grows the ship back to full size while Progress runs from 0 to 1.
type TakingOff struct {
	Planet   int
	Progress float64
}

func (Flying) Tag() StateTag    { return StateFlying }
func (Landing) Tag() StateTag   { return StateLanding }
func (Landed) Tag() StateTag    { return StateLanded }
func (TakingOff) Tag() StateTag { return StateTakingOff }

func (Flying) shipState()    {}
func (Landing) shipState()   {}
func (Landed) shipState()    {}
func (TakingOff) shipState() {}

// Controls is the input sampled for one tick. Direction is raw key state
// (each axis -1, 0 or 1); Land and TakeOff are edge-triggered.
type Controls struct {
	Direction Vec2
	Land      bool
	TakeOff   bool
}

// TickReport lists what happened to the ship during one Update.
type TickReport struct {
	Touchdown bool // landing animation finished this tick
	Liftoff   bool // takeoff animation finished this tick
	Planet    int  // planet involved in Touchdown or Liftoff
	Earned    int  // money from the automatic sale at touchdown
	FoodEaten int
	FuelEmpty bool // fuel ran out this tick
}

// Spaceship is the player's ship. It owns its inventory and refers to
// planets only by index into the slice passed to each call.
type Spaceship struct {
	Position  Vec2
	Velocity  Vec2
	Rotation  float64
	Size      float64
	BaseSize  float64
	Speed     float64
	Inventory Inventory
	FoodTimer float64 // seconds since the last meal tick

	state   ShipState
	balance Balance
}

// NewSpaceship creates a flying ship at position with starting resources.
func NewSpaceship(position Vec2, b Balance) *Spaceship {
	return &Spaceship{
		Position:  position,
		Size:      b.ShipSize,
		BaseSize:  b.ShipSize,
		Speed:     b.ShipSpeed,
		Inventory: NewInventory(b),
		state:     Flying{},
		balance:   b,
	}
}

// State returns the current state value.
func (s *Spaceship) State() ShipState { return s.state }

// Tag returns the current state tag.
func (s *Spaceship) Tag() StateTag { return s.state.Tag() }

// LandedPlanet returns the attached planet index. ok is false while Flying.
func (s *Spaceship) LandedPlanet() (idx int, ok bool) {
	switch st := s.state.(type) {
	case Landing:
		return st.Planet, true
	case Landed:
		return st.Planet, true
	case TakingOff:
		return st.Planet, true
	}
	return 0, false
}

// AnimationProgress returns the landing/takeoff fraction in [0, 1].
func (s *Spaceship) AnimationProgress() float64 {
	switch st := s.state.(type) {
	case Landing:
		return st.Progress
	case TakingOff:
		return st.Progress
	case Landed:
		return 1
	}
	return 0
}

// HandleInput applies one tick of player commands. Commands that make no
// sense in the current state are ignored.
func (s *Spaceship) HandleInput(c Controls, planets []Planet, center Vec2) {
	switch st := s.state.(type) {
	case Flying:
		dir := c.Direction.Normalize()
		s.Velocity = dir.Scale(s.Speed)
		if !dir.IsZero() {
			s.Rotation = dir.Angle()
		}

		if c.Land {
			if idx, ok := s.FindNearbyPlanet(planets, center); ok {
				s.state = Landing{Planet: idx}
				s.Velocity = Vec2{}
			}
		}
	case Landed:
		if c.TakeOff {
			s.state = TakingOff{Planet: st.Planet}
		}
	}
}

// Update advances the ship by dt seconds.
func (s *Spaceship) Update(dt float64, planets []Planet, center Vec2) TickReport {
	var rep TickReport

	// Meals are only eaten in flight but the timer always runs
	s.FoodTimer += dt
	if s.FoodTimer >= s.balance.FoodInterval {
		s.FoodTimer = 0
		if s.Tag() == StateFlying {
			before := s.Inventory.Food
			s.Inventory.Food = max(s.Inventory.Food-s.balance.FoodPerInterval, 0)
			rep.FoodEaten = before - s.Inventory.Food
		}
	}

	switch st := s.state.(type) {
	case Flying:
		inv := &s.Inventory
		if inv.Fuel > 0 && !s.Velocity.IsZero() {
			s.Position = s.Position.Add(s.Velocity.Scale(dt))
			inv.Fuel = math.Max(inv.Fuel-s.balance.FuelPerSecond*dt, 0)
			rep.FuelEmpty = inv.Fuel == 0
		} else if inv.Fuel == 0 {
			s.Velocity = Vec2{}
		}

	case Landing:
		st.Progress += dt * s.balance.AnimationRate
		if st.Progress >= 1 {
			st.Progress = 1
			s.state = Landed{Planet: st.Planet}
			rep.Touchdown = true
			rep.Planet = st.Planet
			if st.Planet >= 0 && st.Planet < len(planets) {
				rep.Earned = s.Inventory.SellAllCargo(planets[st.Planet].Product)
			}
		} else {
			s.state = st
		}
		s.Size = s.BaseSize * (1 - st.Progress*(1-LandedSizeFraction))
		s.followPlanet(st.Planet, planets, center)

	case Landed:
		s.followPlanet(st.Planet, planets, center)

	case TakingOff:
		st.Progress += dt * s.balance.AnimationRate
		if st.Progress >= 1 {
			st.Progress = 1
			s.state = Flying{}
			rep.Liftoff = true
			rep.Planet = st.Planet
		} else {
			s.state = st
		}
		s.Size = s.BaseSize * (LandedSizeFraction + st.Progress*(1-LandedSizeFraction))
		s.followPlanet(st.Planet, planets, center)
	}

	return rep
}

func (s *Spaceship) followPlanet(idx int, planets []Planet, center Vec2) {
	if idx >= 0 && idx < len(planets) {
		s.Position = planets[idx].Position(center)
	}
}

// FindNearbyPlanet returns the first planet whose surface is within the
// landing proximity of the ship.
func (s *Spaceship) FindNearbyPlanet(planets []Planet, center Vec2) (int, bool) {
	for i := range planets {
		p := &planets[i]
		if s.Position.Sub(p.Position(center)).Length() < s.balance.LandingProximity+p.Radius {
			return i, true
		}
	}
	return 0, false
}

// IsNearPlanet reports whether a land command would succeed right now.
func (s *Spaceship) IsNearPlanet(planets []Planet, center Vec2) bool {
	if s.Tag() != StateFlying {
		return false
	}
	_, ok := s.FindNearbyPlanet(planets, center)
	return ok
}

// Starved reports whether the food supply has run out.
func (s *Spaceship) Starved() bool { return s.Inventory.Food == 0 }
