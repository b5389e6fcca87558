package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	GlyphWidth  = 16
	GlyphHeight = 16
	AtlasCols   = 16
	AtlasRows   = 16
)

// FontAtlas holds the CP437 glyph atlas and cached sub-images.
type FontAtlas struct {
	image  *ebiten.Image
	glyphs [256]*ebiten.Image
}

// NewFontAtlas generates the HUD font atlas at startup.
// Printable ASCII is rendered with basicfont.Face7x13; the CP437 box-drawing
// and shading codes used by panels and gauges are drawn by hand.
func NewFontAtlas() *FontAtlas {
	atlasW := AtlasCols * GlyphWidth  // 256
	atlasH := AtlasRows * GlyphHeight // 256

	img := image.NewNRGBA(image.Rect(0, 0, atlasW, atlasH))
	face := basicfont.Face7x13

	for code := 0; code < 256; code++ {
		col := code % AtlasCols
		row := code / AtlasCols
		cx := col * GlyphWidth
		cy := row * GlyphHeight

		if code >= 32 && code <= 126 {
			drawFontGlyph(img, face, cx, cy, rune(code))
			continue
		}

		// Box-drawing characters
		if bc, ok := boxChars[byte(code)]; ok {
			drawBoxGlyph(img, cx, cy, bc[0], bc[1], bc[2], bc[3])
			continue
		}

		// Block elements and shading
		drawBlockGlyph(img, cx, cy, byte(code))
	}

	eimg := ebiten.NewImageFromImage(img)
	a := &FontAtlas{image: eimg}

	// Cache sub-images for each glyph
	for code := 0; code < 256; code++ {
		col := code % AtlasCols
		row := code / AtlasCols
		x := col * GlyphWidth
		y := row * GlyphHeight
		rect := image.Rect(x, y, x+GlyphWidth, y+GlyphHeight)
		a.glyphs[code] = eimg.SubImage(rect).(*ebiten.Image)
	}

	return a
}

// Glyph returns the cached sub-image for a CP437 character code.
func (a *FontAtlas) Glyph(code byte) *ebiten.Image {
	return a.glyphs[code]
}

// drawFontGlyph renders a single ASCII character into the atlas.
// basicfont.Face7x13 glyphs are 7x13, centered in a 16x16 cell.
func drawFontGlyph(img *image.NRGBA, face font.Face, cellX, cellY int, r rune) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(cellX+4, cellY+13), // centered horizontally, baseline at y+13
	}
	d.DrawString(string(r))
}

// boxChars maps the CP437 panel border codes to line flags: {left, right, top, bottom}.
var boxChars = map[byte][4]bool{
	179: {false, false, true, true},  // │
	191: {true, false, false, true},  // ┐
	192: {false, true, true, false},  // └
	196: {true, true, false, false},  // ─
	217: {true, false, true, false},  // ┘
	218: {false, true, false, true},  // ┌
}

// drawBoxGlyph draws a single-line box-drawing character.
// Lines are 2 pixels wide, centered in the 16x16 cell.
func drawBoxGlyph(img *image.NRGBA, cellX, cellY int, left, right, top, bottom bool) {
	w := color.NRGBA{255, 255, 255, 255}
	cx := cellX + 7
	cy := cellY + 7

	if left {
		for x := cellX; x < cx+2; x++ {
			img.SetNRGBA(x, cy, w)
			img.SetNRGBA(x, cy+1, w)
		}
	}
	if right {
		for x := cx; x < cellX+GlyphWidth; x++ {
			img.SetNRGBA(x, cy, w)
			img.SetNRGBA(x, cy+1, w)
		}
	}
	if top {
		for y := cellY; y < cy+2; y++ {
			img.SetNRGBA(cx, y, w)
			img.SetNRGBA(cx+1, y, w)
		}
	}
	if bottom {
		for y := cy; y < cellY+GlyphHeight; y++ {
			img.SetNRGBA(cx, y, w)
			img.SetNRGBA(cx+1, y, w)
		}
	}
}

// drawBlockGlyph draws the gauge and bullet glyphs.
func drawBlockGlyph(img *image.NRGBA, cellX, cellY int, code byte) {
	w := color.NRGBA{255, 255, 255, 255}

	switch code {
	case 176: // ░ Light shade
		for y := 0; y < GlyphHeight; y++ {
			for x := 0; x < GlyphWidth; x++ {
				if (x+y)%4 == 0 {
					img.SetNRGBA(cellX+x, cellY+y, w)
				}
			}
		}
	case 178: // ▓ Dark shade
		for y := 0; y < GlyphHeight; y++ {
			for x := 0; x < GlyphWidth; x++ {
				if (x+y)%4 != 0 {
					img.SetNRGBA(cellX+x, cellY+y, w)
				}
			}
		}
	case 219: // █ Full block
		for y := 0; y < GlyphHeight; y++ {
			for x := 0; x < GlyphWidth; x++ {
				img.SetNRGBA(cellX+x, cellY+y, w)
			}
		}
	case 254: // ■ Small square
		for y := 4; y < 12; y++ {
			for x := 4; x < 12; x++ {
				img.SetNRGBA(cellX+x, cellY+y, w)
			}
		}
	}
}
