package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/solar-economy/solar_economy/internal/game"
)

// Window holds the display settings.
type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// Session holds the settings applied to every new game.
type Session struct {
	Seed         uint64 `yaml:"seed"` // 0 picks a seed from the clock
	Start        Point  `yaml:"start"`
	PlanetCounts []int  `yaml:"planet_counts"`
}

// Point is a world position.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Config is the full application configuration.
type Config struct {
	Window  Window       `yaml:"window"`
	Session Session      `yaml:"session"`
	Balance game.Balance `yaml:"balance"`
}

// Default returns the built-in configuration.
func Default() Config {
	settings := game.DefaultSettings()
	return Config{
		Window: Window{
			Width:  1280,
			Height: 720,
			Title:  "Solar Economy",
		},
		Session: Session{
			Seed:         0,
			Start:        Point{X: settings.Start.X, Y: settings.Start.Y},
			PlanetCounts: settings.PlanetCounts,
		},
		Balance: settings.Balance,
	}
}

// Parse overlays a YAML document onto the defaults. Keys missing from data
// keep their default values.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Load reads and parses the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Validate rejects values the simulation cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if len(c.Session.PlanetCounts) == 0 {
		errs = append(errs, errors.New("session.planet_counts is empty"))
	}
	for _, n := range c.Session.PlanetCounts {
		if n <= 0 {
			errs = append(errs, fmt.Errorf("planet count %d must be positive", n))
		}
	}

	b := &c.Balance
	if b.CargoCapacity <= 0 {
		errs = append(errs, fmt.Errorf("balance.cargo_capacity %d must be positive", b.CargoCapacity))
	}
	if b.FoodInterval <= 0 {
		errs = append(errs, fmt.Errorf("balance.food_interval %g must be positive", b.FoodInterval))
	}
	if b.AnimationRate <= 0 {
		errs = append(errs, fmt.Errorf("balance.animation_rate %g must be positive", b.AnimationRate))
	}
	if b.ShipSpeed <= 0 || b.ShipSize <= 0 {
		errs = append(errs, errors.New("balance.ship_speed and balance.ship_size must be positive"))
	}
	if b.StartingFuel < 0 || b.StartingFood < 0 {
		errs = append(errs, errors.New("starting fuel and food must not be negative"))
	}
	if b.FuelBuyAmount <= 0 || b.FoodBuyAmount <= 0 {
		errs = append(errs, errors.New("balance.fuel_buy_amount and balance.food_buy_amount must be positive"))
	}
	for _, f := range []struct {
		key string
		val float64
	}{
		{"buy_product_price", float64(b.BuyProductPrice)},
		{"sell_product_price", float64(b.SellProductPrice)},
		{"fuel_price", float64(b.FuelPrice)},
		{"food_price", float64(b.FoodPrice)},
		{"fuel_per_second", b.FuelPerSecond},
		{"food_per_interval", float64(b.FoodPerInterval)},
		{"landing_proximity", b.LandingProximity},
	} {
		if f.val < 0 {
			errs = append(errs, fmt.Errorf("balance.%s %g must not be negative", f.key, f.val))
		}
	}
	if start := int(math.Ceil(b.StartingFuel)) + b.StartingFood; start > b.CargoCapacity {
		errs = append(errs, fmt.Errorf("starting fuel and food (%d) exceed cargo capacity %d", start, b.CargoCapacity))
	}
	return errors.Join(errs...)
}

// Settings converts the config into session settings for the simulation.
func (c *Config) Settings() game.Settings {
	seed := c.Session.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return game.Settings{
		Balance:      c.Balance,
		Seed:         seed,
		Start:        game.Vec2{X: c.Session.Start.X, Y: c.Session.Start.Y},
		PlanetCounts: c.Session.PlanetCounts,
	}
}
