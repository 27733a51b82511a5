package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/RodEsp/schotter/internal/config"
)

// increase raises an adjustment factor by one step; there is no upper bound.
func increase(v float64) float64 {
	return v + config.AdjStep
}

// decrease lowers an adjustment factor by one step, but only when the value
// is strictly positive before the subtraction. The guard runs before the
// decrement, so the result can dip below zero by at most one step.
func decrease(v float64) float64 {
	if v > 0 {
		return v - config.AdjStep
	}
	return v
}

// handleKeys maps the keyboard shortcuts onto the field. Unlisted keys do
// nothing. While the seed field has focus the panel owns the keyboard and
// shortcuts are suppressed.
func (g *Game) handleKeys() {
	if g.panel.focused() {
		return
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.field.Reseed()
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.captureRequested = true
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		g.field.DispAdj = increase(g.field.DispAdj)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		g.field.DispAdj = decrease(g.field.DispAdj)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.field.RotAdj = increase(g.field.RotAdj)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.field.RotAdj = decrease(g.field.RotAdj)
	}
}
