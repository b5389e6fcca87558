package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/solar-economy/solar_economy/assets"
	"github.com/solar-economy/solar_economy/internal/config"
	"github.com/solar-economy/solar_economy/internal/game"
	"github.com/solar-economy/solar_economy/internal/render"
)

const (
	cellWidth  = 16
	cellHeight = 16
)

// Game is the Ebitengine game struct. It owns rendering and input.
// All gameplay state lives in sim.
type Game struct {
	cfg      config.Config
	atlas    *render.FontAtlas
	renderer *render.GridRenderer
	buffer   *render.CellBuffer
	sim      *game.Sim
	cols     int
	rows     int
}

func NewGame(cfg config.Config) *Game {
	cols := cfg.Window.Width / cellWidth
	rows := cfg.Window.Height / cellHeight

	atlas := render.NewFontAtlas()
	g := &Game{
		cfg:      cfg,
		atlas:    atlas,
		renderer: render.NewGridRenderer(atlas, cellWidth, cellHeight),
		buffer:   render.NewCellBuffer(cols, rows),
		sim:      game.NewSim(cfg.Settings()),
		cols:     cols,
		rows:     rows,
	}
	g.drawScreen()
	return g
}

func (g *Game) Update() error {
	// ESC on the first menu page quits; everywhere else it steps back
	if g.sim.Screen == game.ScreenMenu && g.sim.Menu.Screen == game.MenuStarSelection &&
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	dt := 1.0 / float64(ebiten.TPS())
	g.sim.Update(dt, readInput())

	// Redraw every frame (planets and resources change over time)
	g.drawScreen()
	return nil
}

// readInput samples the keyboard into one tick of simulation input.
func readInput() game.Input {
	var in game.Input

	in.Menu = game.MenuKeys{
		Up:      inpututil.IsKeyJustPressed(ebiten.KeyArrowUp),
		Down:    inpututil.IsKeyJustPressed(ebiten.KeyArrowDown),
		Confirm: inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Back:    inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}

	// Movement is level-triggered: holding a key keeps thrusting
	var dir game.Vec2
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dir.Y -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dir.Y += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dir.X -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dir.X += 1
	}
	space := inpututil.IsKeyJustPressed(ebiten.KeySpace)
	in.Ship = game.Controls{Direction: dir, Land: space, TakeOff: space}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit1):
		in.Buy = game.BuyProductCmd
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit2):
		in.Buy = game.BuyFuelCmd
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit3):
		in.Buy = game.BuyFoodCmd
	}

	in.Quit = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	return in
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.sim.Screen {
	case game.ScreenMenu:
		g.drawMenuPreviews(screen)
	case game.ScreenPlaying:
		g.drawWorld(screen)
	}
	g.renderer.Draw(screen, g.buffer)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	data, err := assets.Config.ReadFile("config/solar.yaml")
	if err != nil {
		return config.Config{}, err
	}
	return config.Parse(data)
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the built-in configuration")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame(cfg)); err != nil {
		log.Fatal(err)
	}
}
