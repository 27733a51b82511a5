package game

import (
	"math/rand"

	"github.com/RodEsp/schotter/internal/config"
)

// Stone is one grid unit, rendered as an unfilled square. X and Y walk from
// the origin toward FinalX and FinalY during the build-up animation; the
// offsets and rotation are recomputed from scratch on every step.
type Stone struct {
	X, Y             float64
	XOffset, YOffset float64
	FinalX, FinalY   float64
	Rotation         float64
}

func newStone(finalX, finalY float64) Stone {
	return Stone{FinalX: finalX, FinalY: finalY}
}

// Field owns the stone grid and the user-adjustable parameters. All state is
// mutated on the game loop goroutine only.
type Field struct {
	Stones  []Stone
	DispAdj float64
	RotAdj  float64
	Seed    int64
}

// NewField creates the full grid in row-major order with a fresh seed and the
// build-up animation at its start.
func NewField() *Field {
	return &Field{
		Stones:  newStones(),
		DispAdj: 1.0,
		RotAdj:  1.0,
		Seed:    NewSeed(),
	}
}

func newStones() []Stone {
	stones := make([]Stone, 0, config.Rows*config.Cols)
	for y := 0; y < config.Rows; y++ {
		for x := 0; x < config.Cols; x++ {
			stones = append(stones, newStone(float64(x), float64(y)))
		}
	}
	return stones
}

// NewSeed draws a seed in [0, SeedRange).
func NewSeed() int64 {
	return rand.Int63n(config.SeedRange)
}

// Step advances the animation by one frame. The random stream is rebuilt from
// the current seed and consumed in a fixed order: stones are visited row-major
// (as laid out by newStones) and exactly three draws happen per stone, so the
// same seed always reproduces the same frame. Positions walk toward their
// target by fixed increments with no clamping.
func (f *Field) Step() {
	rng := rand.New(rand.NewSource(f.Seed))
	for i := range f.Stones {
		s := &f.Stones[i]
		depth := s.FinalY / config.Rows
		s.XOffset = depth * f.DispAdj * jitter(rng)
		s.YOffset = depth * f.DispAdj * jitter(rng)
		s.Rotation = depth * f.RotAdj * rotation(rng)
		if s.X < s.FinalX {
			s.X += config.StepX
		}
		if s.Y < s.FinalY {
			s.Y += config.StepY
		}
	}
}

// jitter draws a uniform value in [-0.5, 0.5).
func jitter(rng *rand.Rand) float64 {
	return rng.Float64() - 0.5
}

// rotation draws a uniform angle in [-MaxRotation, MaxRotation).
func rotation(rng *rand.Rand) float64 {
	return (rng.Float64() - 0.5) * 2 * config.MaxRotation
}

// Randomize replaces every stone with a fresh one at its grid slot and draws
// a new seed, restarting the build-up animation.
func (f *Field) Randomize() {
	f.Stones = newStones()
	f.Seed = NewSeed()
}

// Reseed draws a new seed without touching stone positions; only the jitter
// changes on the next step.
func (f *Field) Reseed() {
	f.Seed = NewSeed()
}
