package game

import "strconv"

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// inRect reports whether the cursor at (mx, my) is inside the rectangle with
// top-left corner (x, y).
func inRect(mx, my, x, y, w, h int) bool {
	return mx >= x && mx <= x+w && my >= y && my <= y+h
}

// sliderValue maps a cursor x position on a track of the given width to a
// value in [min, max], clamped at both ends.
func sliderValue(mx, trackX, trackWidth int, min, max float64) float64 {
	frac := clamp01(float64(mx-trackX) / float64(trackWidth))
	return min + frac*(max-min)
}

// parseSeed parses the seed field's buffer. The buffer only ever holds
// digits, but an empty or overflowing entry still has to be rejected.
func parseSeed(s string) (int64, bool) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}
