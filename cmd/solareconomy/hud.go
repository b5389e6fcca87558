package main

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solar-economy/solar_economy/internal/game"
	"github.com/solar-economy/solar_economy/internal/render"
)

// Fixed UI positions (grid cells)
const (
	commsMax   = 6  // visible comms lines
	gaugeWidth = 20 // resource bar width
	panelWidth = 32 // right-side hold panel
)

func (g *Game) drawScreen() {
	buf := g.buffer
	buf.Clear()

	switch g.sim.Screen {
	case game.ScreenMenu:
		g.drawMenu()
	case game.ScreenPlaying:
		g.drawHUD()
	}
}

// --- Menu ---

func (g *Game) menuRow(i int) int {
	return g.rows/2 - 4 + i*3
}

func (g *Game) drawMenu() {
	buf := g.buffer
	m := g.sim.Menu

	buf.WriteCentered(g.rows/4, "S O L A R   E C O N O M Y", render.ColorWhite, render.ColorBlack)

	switch m.Screen {
	case game.MenuStarSelection:
		buf.WriteCentered(g.rows/4+3, "Choose Your Star", render.ColorLightGray, render.ColorBlack)
		for i, st := range m.StarTypes {
			g.drawMenuOption(i, st.Name(), i == m.Selected)
		}
		buf.WriteCentered(g.rows-3, "UP/DOWN: Select  ENTER: Continue  ESC: Quit", render.ColorDarkGray, render.ColorBlack)

	case game.MenuPlanetCount:
		sub := fmt.Sprintf("%s - Choose Planet Count", m.ChosenStar().Name())
		buf.WriteCentered(g.rows/4+3, sub, render.ColorLightGray, render.ColorBlack)
		for i, n := range m.PlanetCounts {
			row := g.rows/2 - 6 + i*2
			label := fmt.Sprintf("%d Planets", n)
			clr := uint8(render.ColorDarkGray)
			if i == m.Selected {
				clr = render.ColorWhite
				buf.Set(g.cols/2-8, row, '>', render.ColorWhite, render.ColorBlack)
			}
			buf.WriteString(g.cols/2-6, row, label, clr, render.ColorBlack)
		}
		buf.WriteCentered(g.rows-3, "UP/DOWN: Select  ENTER: Start  ESC: Back", render.ColorDarkGray, render.ColorBlack)
	}
}

func (g *Game) drawMenuOption(i int, label string, selected bool) {
	row := g.menuRow(i)
	clr := uint8(render.ColorDarkGray)
	if selected {
		clr = render.ColorWhite
		g.buffer.Set(g.cols/2-12, row, '>', render.ColorWhite, render.ColorBlack)
	}
	g.buffer.WriteString(g.cols/2-10, row, label, clr, render.ColorBlack)
}

// drawMenuPreviews draws the star swatches next to the menu entries.
func (g *Game) drawMenuPreviews(screen *ebiten.Image) {
	m := g.sim.Menu
	if m.Screen != game.MenuStarSelection {
		return
	}
	var cam render.Camera
	for i, st := range m.StarTypes {
		x := float64((g.cols/2 + 8) * cellWidth)
		y := float64(g.menuRow(i)*cellHeight + cellHeight/2)
		r := 12.0
		if i == m.Selected {
			r = 16
		}
		render.FillCircle(screen, cam, x, y, r, st.Color())
		if st.HasEventHorizon() {
			render.StrokeCircle(screen, cam, x, y, r+3, 2, render.HorizonColor)
		}
	}
}

// --- Playing ---

func (g *Game) drawWorld(screen *ebiten.Image) {
	sys := g.sim.System
	ship := g.sim.Ship
	px, py := g.sim.PlayerPos()
	cam := render.CenterOn(px, py, g.cfg.Window.Width, g.cfg.Window.Height)

	center := sys.Center()
	star := sys.Star
	render.FillCircle(screen, cam, center.X, center.Y, star.Radius, star.Color)
	if star.Type.HasEventHorizon() {
		render.StrokeCircle(screen, cam, center.X, center.Y, star.Radius+5, 2, render.HorizonColor)
	}

	for i := range sys.Planets {
		p := &sys.Planets[i]
		pos := p.Position(center)
		render.StrokeCircle(screen, cam, center.X, center.Y, p.OrbitalRadius, 1, render.OrbitColor)
		render.FillCircle(screen, cam, pos.X, pos.Y, p.Radius, p.Color)
	}

	render.DrawShip(screen, cam, ship.Position.X, ship.Position.Y, ship.Size, ship.Rotation)
}

func (g *Game) drawHUD() {
	buf := g.buffer
	sim := g.sim
	ship := sim.Ship

	// Title bar
	title := fmt.Sprintf("Solar Economy - %s - %d Planets",
		sim.System.Star.Type.Name(), len(sim.System.Planets))
	buf.WriteString(1, 0, title, render.ColorWhite, render.ColorBlack)
	fps := fmt.Sprintf("FPS: %.0f  TPS: %.0f", ebiten.ActualFPS(), ebiten.ActualTPS())
	buf.WriteString(1, 1, fps, render.ColorDarkGray, render.ColorBlack)
	buf.WriteString(1, 2, "WASD/Arrows: Move  SPACE: Land/Take off  ESC: Menu", render.ColorDarkGray, render.ColorBlack)

	g.drawHold(g.cols-panelWidth, 4)

	// Prompts
	promptRow := g.rows - commsMax - 4
	switch {
	case sim.CanLand():
		// Blink on a sine wave
		if math.Sin(sim.Time*3) > -0.3 {
			buf.WriteCentered(promptRow, "Press SPACE to land", render.ColorYellow, render.ColorBlack)
		}
	case ship.Tag() == game.StateLanded:
		buf.WriteCentered(promptRow, "Press SPACE to take off", render.ColorLightGreen, render.ColorBlack)
		g.drawTrade(g.cols-panelWidth, 18)
	}

	if ship.Starved() {
		buf.WriteCentered(promptRow-2, "*** OUT OF FOOD ***", render.ColorLightRed, render.ColorBlack)
	}

	// Comms log
	commsRow := g.rows - commsMax - 1
	buf.WriteString(1, commsRow, "--- Comms ---", render.ColorLightCyan, render.ColorBlack)
	for i, msg := range sim.Log.Recent(commsMax) {
		buf.WriteString(1, commsRow+1+i, msg.Text, msgColor(msg.Priority), render.ColorBlack)
	}
}

// drawHold shows money, gauges and cargo.
func (g *Game) drawHold(x, y int) {
	buf := g.buffer
	ship := g.sim.Ship
	inv := ship.Inventory.Snapshot()

	buf.WriteString(x, y, "--- Hold ---", render.ColorLightCyan, render.ColorBlack)
	buf.WriteString(x, y+1, fmt.Sprintf("Credits %d", inv.Money), render.ColorYellow, render.ColorBlack)
	drawGauge(buf, x, y+2, "Fuel ", inv.Fuel, float64(inv.Capacity()), render.ColorLightMagenta)
	drawGauge(buf, x, y+3, "Food ", float64(inv.Food), float64(inv.Capacity()), render.ColorGreen)
	drawGauge(buf, x, y+4, "Space", float64(inv.AvailableSpace()), float64(inv.Capacity()), render.ColorLightGray)

	buf.WriteString(x, y+6, "Cargo:", render.ColorLightGray, render.ColorBlack)
	kinds := inv.Kinds()
	if len(kinds) == 0 {
		buf.WriteString(x+1, y+7, "(empty)", render.ColorDarkGray, render.ColorBlack)
	}
	for i, k := range kinds {
		buf.Set(x+1, y+7+i, 254, render.ColorBrown, render.ColorBlack) // ■
		buf.WriteString(x+3, y+7+i, fmt.Sprintf("%-10s %3d", k.Name(), inv.Cargo[k]), render.ColorWhite, render.ColorBlack)
	}

	buf.WriteString(x, y+11, "Status: "+ship.Tag().String(), render.ColorLightGray, render.ColorBlack)
}

// drawTrade shows the market of the planet the ship is landed on.
func (g *Game) drawTrade(x, y int) {
	buf := g.buffer
	planet := g.sim.LandedPlanet()
	if planet == nil {
		return
	}
	idx, _ := g.sim.Ship.LandedPlanet()
	b := g.sim.Settings().Balance

	buf.DrawBox(x-1, y, panelWidth, 7, render.ColorBrown)
	buf.WriteString(x+1, y+1, g.sim.PlanetName(idx), render.ColorWhite, render.ColorBlack)
	buf.WriteString(x+1, y+2, "Produces "+planet.Product.Name(), render.ColorLightGray, render.ColorBlack)
	buf.WriteString(x+1, y+3, fmt.Sprintf("1: %-12s %4dcr", planet.Product.Name(), b.BuyProductPrice), render.ColorLightGreen, render.ColorBlack)
	buf.WriteString(x+1, y+4, fmt.Sprintf("2: %-12s %4dcr", fmt.Sprintf("%g fuel", b.FuelBuyAmount),
		b.FuelBatchCost()), render.ColorLightGreen, render.ColorBlack)
	buf.WriteString(x+1, y+5, fmt.Sprintf("3: %-12s %4dcr", fmt.Sprintf("%d food", b.FoodBuyAmount),
		b.FoodBatchCost()), render.ColorLightGreen, render.ColorBlack)
}

func msgColor(p game.MsgPriority) uint8 {
	switch p {
	case game.MsgCritical:
		return render.ColorLightRed
	case game.MsgWarning:
		return render.ColorYellow
	case game.MsgTrade:
		return render.ColorLightGreen
	case game.MsgSocial:
		return render.ColorWhite
	default:
		return render.ColorCyan
	}
}

// drawGauge shows a resource level as a solid bar with a numeric readout.
func drawGauge(buf *render.CellBuffer, x, y int, label string, val, max float64, clr uint8) {
	if max <= 0 {
		max = 1
	}
	filled := int(float64(gaugeWidth) * val / max)

	labelClr := uint8(render.ColorLightGray)
	if pct := val * 100 / max; pct <= 5 {
		labelClr = render.ColorLightRed
	} else if pct <= 15 {
		labelClr = render.ColorYellow
	}
	buf.WriteString(x, y, label, labelClr, render.ColorBlack)

	for i := 0; i < gaugeWidth; i++ {
		if i < filled {
			buf.Set(x+6+i, y, 219, clr, render.ColorBlack) // █
		} else {
			buf.Set(x+6+i, y, 176, render.ColorDarkGray, render.ColorBlack) // ░
		}
	}
	buf.WriteString(x+7+gaugeWidth, y, fmt.Sprintf("%3.0f", math.Ceil(val)), labelClr, render.ColorBlack)
}
