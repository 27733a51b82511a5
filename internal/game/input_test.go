package game

import (
	"testing"

	"github.com/RodEsp/schotter/internal/config"
)

func TestIncrease(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "from zero", in: 0, want: config.AdjStep},
		{name: "from default", in: 1.0, want: 1.1},
		{name: "beyond slider max", in: config.FactorMax, want: config.FactorMax + config.AdjStep},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := increase(tt.in); got != tt.want {
				t.Errorf("increase(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDecrease(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "from default", in: 1.0, want: 0.9},
		{name: "at zero is a no-op", in: 0, want: 0},
		{name: "below zero is a no-op", in: -0.05, want: -0.05},
		{name: "just above zero still decrements", in: 0.05, want: 0.05 - config.AdjStep},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decrease(tt.in); got != tt.want {
				t.Errorf("decrease(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDecreaseFloorGuard(t *testing.T) {
	// Repeatedly pressing the key must never drive the value below zero by
	// more than one step, and once non-positive it must stop moving.
	v := 1.0
	for i := 0; i < 100; i++ {
		v = decrease(v)
		if v < -config.AdjStep {
			t.Fatalf("press %d drove value to %v, below -%v", i, v, config.AdjStep)
		}
	}
	if decrease(v) != v {
		t.Errorf("value kept moving after reaching the floor: %v", v)
	}
}
