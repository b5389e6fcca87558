package game

import (
	"fmt"
	"math/rand/v2"

	"github.com/mlange-42/ark/ecs"
)

// warningInterval is how often resource warnings are checked, in ticks
// (every 5 sec at 60 TPS).
const warningInterval = 300

// Warning thresholds.
const (
	lowFuelThreshold = 10.0
	lowFoodThreshold = 5
)

// Screen is the top-level mode of the application.
type Screen uint8

const (
	ScreenMenu Screen = iota
	ScreenPlaying
)

// BuyCommand is a trade request issued while landed.
type BuyCommand uint8

const (
	BuyNothing BuyCommand = iota
	BuyProductCmd
	BuyFuelCmd
	BuyFoodCmd
)

// Input is everything the presentation layer sampled this tick.
type Input struct {
	Menu MenuKeys
	Ship Controls
	Buy  BuyCommand
	Quit bool // leave the session and return to the menu
}

// Settings configures every session the Sim starts.
type Settings struct {
	Balance      Balance
	Seed         uint64
	Start        Vec2 // ship spawn, relative to the star at the origin
	PlanetCounts []int
}

// DefaultSettings returns the stock session settings.
func DefaultSettings() Settings {
	return Settings{
		Balance:      DefaultBalance(),
		Seed:         1,
		Start:        Vec2{X: 300, Y: 0},
		PlanetCounts: []int{2, 3, 4, 5, 6, 7, 8, 9},
	}
}

// Sim is the application state. It owns the menu, the active solar system
// and ship, and advances them once per tick.
type Sim struct {
	ECS    *ecs.World
	Screen Screen
	Menu   *Menu
	System *SolarSystem
	Ship   *Spaceship
	Log    *MessageLog
	Time   float64 // seconds since startup
	Ticks  uint64

	settings Settings
	rng      *rand.Rand

	player ecs.Entity
	posMap *ecs.Map[Position]
}

// NewSim creates a simulation sitting on the start menu.
func NewSim(settings Settings) *Sim {
	w := ecs.NewWorld(16)
	posMap := ecs.NewMap[Position](w)

	player := ecs.NewMap2[Position, PlayerControlled](w).NewEntity(
		&Position{X: settings.Start.X, Y: settings.Start.Y},
		&PlayerControlled{},
	)

	seed := settings.Seed
	return &Sim{
		ECS:      w,
		Screen:   ScreenMenu,
		Menu:     NewMenu(settings.PlanetCounts),
		Log:      NewMessageLog(50),
		settings: settings,
		rng:      rand.New(rand.NewPCG(seed, seed>>16|1)),
		player:   player,
		posMap:   posMap,
	}
}

// Settings returns the settings the Sim was created with.
func (s *Sim) Settings() Settings { return s.settings }

// PlayerPos returns the position of the player-controlled entity.
func (s *Sim) PlayerPos() (float64, float64) {
	pos := s.posMap.Get(s.player)
	return pos.X, pos.Y
}

// StartSession builds a fresh solar system and ship from a menu selection.
func (s *Sim) StartSession(sel MenuSelection) {
	s.System = NewSolarSystem(Vec2{}, sel.StarType, sel.PlanetCount, s.rng)
	s.Ship = NewSpaceship(s.settings.Start, s.settings.Balance)
	s.Screen = ScreenPlaying
	s.syncPlayer()

	s.Log = NewMessageLog(50)
	s.Log.Add(fmt.Sprintf("Entering the %s system. %d planets on scope.",
		sel.StarType.Name(), sel.PlanetCount), MsgInfo)
	s.Log.Add("Land on a planet to sell cargo it does not produce.", MsgInfo)
}

// ReturnToMenu discards the session wholesale.
func (s *Sim) ReturnToMenu() {
	s.System = nil
	s.Ship = nil
	s.Menu = NewMenu(s.settings.PlanetCounts)
	s.Screen = ScreenMenu
}

// Update advances the simulation by dt seconds.
func (s *Sim) Update(dt float64, in Input) {
	s.Ticks++
	s.Time += dt

	switch s.Screen {
	case ScreenMenu:
		if sel, ok := s.Menu.HandleInput(in.Menu); ok {
			s.StartSession(sel)
		}
	case ScreenPlaying:
		if in.Quit {
			s.ReturnToMenu()
			return
		}
		s.tickPlaying(dt, in)
	}
}

func (s *Sim) tickPlaying(dt float64, in Input) {
	sys := s.System
	ship := s.Ship
	center := sys.Center()

	sys.Update(dt)
	ship.HandleInput(in.Ship, sys.Planets, center)
	if in.Buy != BuyNothing {
		s.trade(in.Buy)
	}

	rep := ship.Update(dt, sys.Planets, center)
	s.logReport(rep)
	s.syncPlayer()

	if s.Ticks%warningInterval == 0 {
		s.checkWarnings()
	}
}

func (s *Sim) syncPlayer() {
	pos := s.posMap.Get(s.player)
	pos.X = s.Ship.Position.X
	pos.Y = s.Ship.Position.Y
}

// trade runs a purchase against the planet the ship is landed on.
func (s *Sim) trade(cmd BuyCommand) {
	planet := s.LandedPlanet()
	if planet == nil || s.Ship.Tag() != StateLanded {
		return
	}
	inv := &s.Ship.Inventory
	b := s.settings.Balance

	var rc Receipt
	switch cmd {
	case BuyProductCmd:
		rc = BuyProduct(inv, b, planet.Product)
	case BuyFuelCmd:
		rc = BuyFuel(inv, b)
	case BuyFoodCmd:
		rc = BuyFood(inv, b)
	default:
		return
	}

	if rc.Result == TradeOK {
		s.Log.Add(rc.String(), MsgTrade)
	} else {
		s.Log.Add(rc.String(), MsgWarning)
	}
}

func (s *Sim) logReport(rep TickReport) {
	switch {
	case rep.Touchdown:
		name := s.PlanetName(rep.Planet)
		if rep.Earned > 0 {
			s.Log.Add(fmt.Sprintf("Landed on %s. Sold cargo for %d credits.", name, rep.Earned), MsgTrade)
		} else {
			s.Log.Add(fmt.Sprintf("Landed on %s. Nothing to sell here.", name), MsgInfo)
		}
	case rep.Liftoff:
		s.Log.Add(fmt.Sprintf("Lifted off from %s.", s.PlanetName(rep.Planet)), MsgInfo)
	}

	if rep.FuelEmpty {
		s.Log.Add("FUEL DEPLETED. Engines offline.", MsgCritical)
	}
	if rep.FoodEaten > 0 && s.Ship.Starved() {
		s.Log.Add("OUT OF FOOD. The crew is starving.", MsgCritical)
	}
}

func (s *Sim) checkWarnings() {
	inv := &s.Ship.Inventory

	if inv.Fuel > 0 && inv.Fuel <= lowFuelThreshold {
		s.Log.Add(fmt.Sprintf("Fuel low: %.1f. Land and refuel.", inv.Fuel), MsgWarning)
	}
	if inv.Food > 0 && inv.Food <= lowFoodThreshold {
		s.Log.Add(fmt.Sprintf("Food low: %d rations left.", inv.Food), MsgWarning)
	}
}

// CanLand reports whether a land command would succeed this tick.
func (s *Sim) CanLand() bool {
	if s.Screen != ScreenPlaying {
		return false
	}
	return s.Ship.IsNearPlanet(s.System.Planets, s.System.Center())
}

// LandedPlanet returns the planet the ship is attached to, or nil.
func (s *Sim) LandedPlanet() *Planet {
	if s.Ship == nil || s.System == nil {
		return nil
	}
	idx, ok := s.Ship.LandedPlanet()
	if !ok || idx >= len(s.System.Planets) {
		return nil
	}
	return &s.System.Planets[idx]
}

var romanNumerals = []string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X"}

// PlanetName returns the display name of planet idx, e.g. "Red Dwarf III".
func (s *Sim) PlanetName(idx int) string {
	star := "Planet"
	if s.System != nil {
		star = s.System.Star.Type.Name()
	}
	if idx >= 0 && idx < len(romanNumerals) {
		return star + " " + romanNumerals[idx]
	}
	return fmt.Sprintf("%s %d", star, idx+1)
}
