package diablo

import (
	"image/color"
	"testing"
)

func TestTerrainForNoise(t *testing.T) {
	tests := []struct {
		v    float64
		want Terrain
	}{
		{-1.0, TerrainSnow},
		{-0.34, TerrainSnow},
		{-0.33, TerrainGrass}, // threshold itself is grass
		{0.0, TerrainGrass},
		{0.32, TerrainGrass},
		{0.33, TerrainDesert},
		{1.0, TerrainDesert},
	}
	for _, tt := range tests {
		if got := terrainForNoise(tt.v); got != tt.want {
			t.Errorf("terrainForNoise(%f) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestBlendedColorPlateaus(t *testing.T) {
	// Outside the transition zones the color is the biome's base color.
	if got := blendedColorForNoise(-0.9); got != TerrainSnow.BaseColor() {
		t.Errorf("deep snow color = %v, want base", got)
	}
	if got := blendedColorForNoise(0.0); got != TerrainGrass.BaseColor() {
		t.Errorf("mid grass color = %v, want base", got)
	}
	if got := blendedColorForNoise(0.9); got != TerrainDesert.BaseColor() {
		t.Errorf("deep desert color = %v, want base", got)
	}
}

func TestBlendedColorMidpoint(t *testing.T) {
	// At the exact threshold the blend should be the 50/50 mix.
	got := blendedColorForNoise(sandThreshold)
	want := lerpColor(TerrainGrass.BaseColor(), TerrainDesert.BaseColor(), 0.5)
	if got != want {
		t.Errorf("midpoint blend = %v, want %v", got, want)
	}
}

func TestBlendedColorIsMonotonic(t *testing.T) {
	// Sweeping the noise value through a transition zone never jumps more
	// than a couple of channel steps at a time.
	prev := blendedColorForNoise(sandThreshold - blendWidth - 0.01)
	for v := sandThreshold - blendWidth; v <= sandThreshold+blendWidth+0.01; v += 0.005 {
		cur := blendedColorForNoise(v)
		if absDiff(cur.R, prev.R) > 5 || absDiff(cur.G, prev.G) > 5 || absDiff(cur.B, prev.B) > 5 {
			t.Fatalf("color jumped from %v to %v at noise %f", prev, cur, v)
		}
		prev = cur
	}
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func TestLerpColorClamps(t *testing.T) {
	a := color.RGBA{0, 0, 0, 255}
	b := color.RGBA{100, 200, 50, 255}
	if got := lerpColor(a, b, -1); got != a {
		t.Errorf("lerpColor(t=-1) = %v, want %v", got, a)
	}
	if got := lerpColor(a, b, 2); got != b {
		t.Errorf("lerpColor(t=2) = %v, want %v", got, b)
	}
	mid := lerpColor(a, b, 0.5)
	if mid.R != 50 || mid.G != 100 || mid.B != 25 {
		t.Errorf("lerpColor(t=0.5) = %v, want {50 100 25 255}", mid)
	}
}

func TestWorldDeterministic(t *testing.T) {
	a := NewWorld(12345)
	b := NewWorld(12345)
	for y := -20; y <= 20; y += 5 {
		for x := -20; x <= 20; x += 5 {
			fx, fy := float64(x), float64(y)
			if a.TerrainAt(fx, fy) != b.TerrainAt(fx, fy) {
				t.Fatalf("terrain at (%d,%d) differs between identical seeds", x, y)
			}
			da, oka := a.DecorationAt(x, y)
			db, okb := b.DecorationAt(x, y)
			if oka != okb || da != db {
				t.Fatalf("decoration at (%d,%d) differs between identical seeds", x, y)
			}
		}
	}
}

func TestDecorationMatchesBiome(t *testing.T) {
	w := NewWorld(12345)
	grass := map[Decoration]bool{DecoRock: true, DecoTree: true}
	desert := map[Decoration]bool{DecoCactus: true, DecoBones: true}
	snow := map[Decoration]bool{DecoSnowyRock: true, DecoSnowyTree: true}

	found := 0
	for y := -200; y <= 200; y++ {
		for x := -200; x <= 200; x++ {
			deco, ok := w.DecorationAt(x, y)
			if !ok {
				continue
			}
			found++
			var allowed map[Decoration]bool
			switch w.TerrainAt(float64(x), float64(y)) {
			case TerrainGrass:
				allowed = grass
			case TerrainDesert:
				allowed = desert
			case TerrainSnow:
				allowed = snow
			}
			if !allowed[deco] {
				t.Fatalf("decoration %v at (%d,%d) doesn't belong to its biome", deco, x, y)
			}
		}
	}
	if found == 0 {
		t.Error("no decorations found in a 401x401 tile area")
	}
}
