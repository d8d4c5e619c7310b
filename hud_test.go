package diablo

import (
	"image/color"
	"testing"
)

func TestHealthBarColorThresholds(t *testing.T) {
	tests := []struct {
		pct  float64
		want color.RGBA
	}{
		{1.0, colorGreen},
		{0.51, colorGreen},
		{0.5, colorYellow},
		{0.26, colorYellow},
		{0.25, colorRed},
		{0.1, colorRed},
		{0.0, colorRed},
	}
	for _, tt := range tests {
		if got := healthBarColor(tt.pct); got != tt.want {
			t.Errorf("healthBarColor(%v) = %v, want %v", tt.pct, got, tt.want)
		}
	}
}
