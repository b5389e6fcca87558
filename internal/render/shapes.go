package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// whiteSubImage is the 1x1 source texture for filled triangles, built on
// first use.
var whiteSubImage *ebiten.Image

func whiteTexture() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// Camera maps world coordinates to screen pixels. X and Y are the world
// position shown at the top-left corner of the screen.
type Camera struct {
	X, Y float64
}

// CenterOn returns a camera that puts (x, y) in the middle of a w x h screen.
func CenterOn(x, y float64, w, h int) Camera {
	return Camera{X: x - float64(w)/2, Y: y - float64(h)/2}
}

// ToScreen converts a world position to screen pixels.
func (c Camera) ToScreen(x, y float64) (float32, float32) {
	return float32(x - c.X), float32(y - c.Y)
}

// FillCircle draws a solid disc centered on a world position.
func FillCircle(dst *ebiten.Image, cam Camera, x, y, r float64, clr color.Color) {
	sx, sy := cam.ToScreen(x, y)
	vector.DrawFilledCircle(dst, sx, sy, float32(r), clr, true)
}

// StrokeCircle draws a ring centered on a world position.
func StrokeCircle(dst *ebiten.Image, cam Camera, x, y, r, width float64, clr color.Color) {
	sx, sy := cam.ToScreen(x, y)
	vector.StrokeCircle(dst, sx, sy, float32(r), float32(width), clr, true)
}

// ShipVertices returns the tip, left and right corners of a ship triangle of
// the given size facing angle, in world coordinates.
func ShipVertices(x, y, size, angle float64) [3][2]float64 {
	const wing = 2.5 // radians off the nose
	return [3][2]float64{
		{x + size*math.Cos(angle), y + size*math.Sin(angle)},
		{x + size*0.6*math.Cos(angle+wing), y + size*0.6*math.Sin(angle+wing)},
		{x + size*0.6*math.Cos(angle-wing), y + size*0.6*math.Sin(angle-wing)},
	}
}

// DrawShip draws the player ship as a filled, outlined triangle.
func DrawShip(dst *ebiten.Image, cam Camera, x, y, size, angle float64) {
	pts := ShipVertices(x, y, size, angle)

	var vs [3]ebiten.Vertex
	r, g, b, a := ShipFill.RGBA()
	for i, p := range pts {
		sx, sy := cam.ToScreen(p[0], p[1])
		vs[i] = ebiten.Vertex{
			DstX:   sx,
			DstY:   sy,
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(r) / 0xffff,
			ColorG: float32(g) / 0xffff,
			ColorB: float32(b) / 0xffff,
			ColorA: float32(a) / 0xffff,
		}
	}
	dst.DrawTriangles(vs[:], []uint16{0, 1, 2}, whiteTexture(), &ebiten.DrawTrianglesOptions{AntiAlias: true})

	for i := range vs {
		next := vs[(i+1)%len(vs)]
		vector.StrokeLine(dst, vs[i].DstX, vs[i].DstY, next.DstX, next.DstY, 2, ShipOutline, true)
	}
}
