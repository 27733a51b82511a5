package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/RodEsp/schotter/internal/config"
)

var (
	background = color.RGBA{R: 0xf5, G: 0xf5, B: 0xf5, A: 0xff} // whitesmoke
	stoneColor = color.RGBA{A: 0xff}                            // black
)

// screenPos maps a position in stone units (current position plus jitter) to
// window pixels. The grid is centered horizontally, shifted up by GridShiftY
// to clear the panel band, and row indices increase down the screen.
func screenPos(x, y float64) (float64, float64) {
	px := float64(config.WindowWidth)/2 + config.Size*(x-float64(config.Cols)/2+0.5)
	py := float64(config.WindowHeight)/2 + config.Size*(y-float64(config.Rows)/2+config.GridShiftY)
	return px, py
}

// corners returns the four corners of a stone's square, rotated about its
// center, in pixel coordinates.
func corners(cx, cy, rot float64) [4][2]float64 {
	half := float64(config.Size) / 2
	sin, cos := math.Sincos(rot)
	var out [4][2]float64
	for i, c := range [4][2]float64{{-half, -half}, {half, -half}, {half, half}, {-half, half}} {
		out[i] = [2]float64{
			cx + c[0]*cos - c[1]*sin,
			cy + c[0]*sin + c[1]*cos,
		}
	}
	return out
}

// drawField strokes every stone, row-major. Strokes overlap where squares
// collide; there is no fill, so draw order carries no z semantics.
func drawField(screen *ebiten.Image, f *Field) {
	width := float32(config.LineWidth * config.Size)
	for i := range f.Stones {
		s := &f.Stones[i]
		cx, cy := screenPos(s.X+s.XOffset, s.Y+s.YOffset)
		c := corners(cx, cy, s.Rotation)
		for j := range c {
			k := (j + 1) % len(c)
			vector.StrokeLine(screen,
				float32(c[j][0]), float32(c[j][1]),
				float32(c[k][0]), float32(c[k][1]),
				width, stoneColor, true)
		}
	}
}
