// Package config holds the compile-time constants of the schotter window,
// grid and control panel. There is no runtime configuration: no flags, no
// files, no environment variables.
package config

import "math"

const (
	// Grid geometry.
	Cols      = 12
	Rows      = 22
	Size      = 30   // stone edge length in pixels
	Margin    = 35   // outer window margin in pixels
	LineWidth = 0.06 // stroke width in stone-edge units

	// PanelHeight is the band above the grid reserved for the controls.
	PanelHeight = 75

	WindowWidth  = Cols*Size + 2*Margin
	WindowHeight = Rows*Size + PanelHeight + 2*Margin

	// GridShiftY lifts the grid center in stone units so the panel band
	// fits above it.
	GridShiftY = 1.8

	// Randomization.
	SeedRange   = 1_000_000 // seeds are drawn from [0, SeedRange)
	MaxRotation = math.Pi / 4

	// Animation step sizes per frame. StepX is scaled by the grid aspect
	// ratio so stones walk the diagonal at a consistent apparent speed.
	StepX = 0.5 * Cols / Rows
	StepY = 0.5

	// Adjustment factors.
	AdjStep   = 0.1 // keyboard increment for either factor
	FactorMax = 5.0 // slider range upper bound; keyboard may exceed it

	// Panel layout.
	PanelX       = Margin
	PanelY       = 12
	PanelWidth   = WindowWidth - 2*Margin
	SliderWidth  = 210
	SliderHeight = 10
	PanelRowStep = 22 // vertical distance between panel rows
	ButtonWidth  = 82
	ButtonHeight = 18
	SeedWidth    = 74
)
