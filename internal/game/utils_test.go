package game

import "testing"

func TestSliderValue(t *testing.T) {
	tests := []struct {
		name       string
		mx         int
		trackX     int
		trackWidth int
		want       float64
	}{
		{name: "left edge", mx: 100, trackX: 100, trackWidth: 200, want: 0},
		{name: "right edge", mx: 300, trackX: 100, trackWidth: 200, want: 5},
		{name: "middle", mx: 200, trackX: 100, trackWidth: 200, want: 2.5},
		{name: "clamped left", mx: 10, trackX: 100, trackWidth: 200, want: 0},
		{name: "clamped right", mx: 999, trackX: 100, trackWidth: 200, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sliderValue(tt.mx, tt.trackX, tt.trackWidth, 0, 5)
			if got != tt.want {
				t.Errorf("sliderValue(%d) = %v, want %v", tt.mx, got, tt.want)
			}
		})
	}
}

func TestInRect(t *testing.T) {
	tests := []struct {
		name   string
		mx, my int
		want   bool
	}{
		{name: "inside", mx: 15, my: 25, want: true},
		{name: "top-left corner", mx: 10, my: 20, want: true},
		{name: "bottom-right corner", mx: 40, my: 50, want: true},
		{name: "left of rect", mx: 9, my: 25, want: false},
		{name: "below rect", mx: 15, my: 51, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inRect(tt.mx, tt.my, 10, 20, 30, 30); got != tt.want {
				t.Errorf("inRect(%d, %d) = %v, want %v", tt.mx, tt.my, got, tt.want)
			}
		})
	}
}

func TestParseSeed(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		want  int64
		valid bool
	}{
		{name: "plain", in: "42", want: 42, valid: true},
		{name: "zero", in: "0", want: 0, valid: true},
		{name: "large", in: "999999", want: 999999, valid: true},
		{name: "empty", in: "", valid: false},
		{name: "overflow", in: "999999999999999999999", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseSeed(tt.in)
			if ok != tt.valid {
				t.Fatalf("parseSeed(%q) ok = %v, want %v", tt.in, ok, tt.valid)
			}
			if ok && got != tt.want {
				t.Errorf("parseSeed(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-1, 0},
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{2, 1},
	}

	for _, tt := range tests {
		if got := clamp01(tt.in); got != tt.want {
			t.Errorf("clamp01(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
