package render

import "image/color"

// HUD color indices into Palette. The remaining CGA slots (blue, red,
// magenta, light blue) are valid cell colors but go unnamed.
const (
	ColorBlack        = 0
	ColorGreen        = 2
	ColorCyan         = 3
	ColorBrown        = 6
	ColorLightGray    = 7
	ColorDarkGray     = 8
	ColorLightGreen   = 10
	ColorLightCyan    = 11
	ColorLightRed     = 12
	ColorLightMagenta = 13
	ColorYellow       = 14
	ColorWhite        = 15
)

// Palette is the CGA 16-color palette a Cell indexes into.
var Palette = [16]color.RGBA{
	{0, 0, 0, 255},       // black
	{0, 0, 170, 255},     // blue
	{0, 170, 0, 255},     // green
	{0, 170, 170, 255},   // cyan
	{170, 0, 0, 255},     // red
	{170, 0, 170, 255},   // magenta
	{170, 85, 0, 255},    // brown
	{170, 170, 170, 255}, // light gray
	{85, 85, 85, 255},    // dark gray
	{85, 85, 255, 255},   // light blue
	{85, 255, 85, 255},   // light green
	{85, 255, 255, 255},  // light cyan
	{255, 85, 85, 255},   // light red
	{255, 85, 255, 255},  // light magenta
	{255, 255, 85, 255},  // yellow
	{255, 255, 255, 255}, // white
}

// PaletteColor returns the color for a cell color index. Indices past the
// palette wrap around instead of panicking mid-frame.
func PaletteColor(idx uint8) color.RGBA {
	return Palette[int(idx)%len(Palette)]
}

// World layer colors.
var (
	OrbitColor   = color.RGBA{77, 77, 77, 128}
	HorizonColor = color.RGBA{128, 0, 204, 204}
	ShipFill     = color.RGBA{255, 255, 255, 255}
	ShipOutline  = color.RGBA{102, 191, 255, 255}
)
