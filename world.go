package diablo

import (
	"image/color"

	"github.com/aquilax/go-perlin"
	"github.com/hajimehoshi/ebiten/v2"
)

// Terrain identifies a biome.
type Terrain uint8

const (
	TerrainGrass Terrain = iota
	TerrainDesert
	TerrainSnow
)

// BaseColor returns the biome's flat tile color, before boundary blending.
func (t Terrain) BaseColor() color.RGBA {
	switch t {
	case TerrainDesert:
		return color.RGBA{210, 180, 140, 255}
	case TerrainSnow:
		return color.RGBA{240, 245, 255, 255}
	default:
		return color.RGBA{80, 160, 80, 255}
	}
}

func (t Terrain) String() string {
	switch t {
	case TerrainDesert:
		return "desert"
	case TerrainSnow:
		return "snow"
	default:
		return "grass"
	}
}

// Biome thresholds over the terrain noise field.
const (
	terrainScale  = 0.05  // controls biome size
	snowThreshold = -0.33 // below this: snow
	sandThreshold = 0.33  // above this: desert, between: grass
	blendWidth    = 0.15  // half-width of the color transition zone
)

// terrainForNoise classifies a terrain noise sample.
func terrainForNoise(v float64) Terrain {
	switch {
	case v < snowThreshold:
		return TerrainSnow
	case v < sandThreshold:
		return TerrainGrass
	default:
		return TerrainDesert
	}
}

// blendedColorForNoise returns the tile color for a noise sample, linearly
// blending neighbor biome colors inside the transition zones.
func blendedColorForNoise(v float64) color.RGBA {
	snow := TerrainSnow.BaseColor()
	grass := TerrainGrass.BaseColor()
	desert := TerrainDesert.BaseColor()

	switch {
	case v < snowThreshold-blendWidth:
		return snow
	case v < snowThreshold+blendWidth:
		t := (v - (snowThreshold - blendWidth)) / (2 * blendWidth)
		return lerpColor(snow, grass, t)
	case v < sandThreshold-blendWidth:
		return grass
	case v < sandThreshold+blendWidth:
		t := (v - (sandThreshold - blendWidth)) / (2 * blendWidth)
		return lerpColor(grass, desert, t)
	default:
		return desert
	}
}

// lerpColor linearly interpolates between two colors. t is clamped to [0, 1].
func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return color.RGBA{
		R: uint8(float64(a.R)*(1-t) + float64(b.R)*t),
		G: uint8(float64(a.G)*(1-t) + float64(b.G)*t),
		B: uint8(float64(a.B)*(1-t) + float64(b.B)*t),
		A: 255,
	}
}

// Decoration is a static prop occupying a tile.
type Decoration uint8

const (
	DecoRock Decoration = iota
	DecoTree
	DecoCactus
	DecoBones
	DecoSnowyRock
	DecoSnowyTree
)

// Draw renders the decoration with its base at the tile's screen position.
func (d Decoration) Draw(dst *ebiten.Image, x, y float64) {
	trunk := color.RGBA{101, 67, 33, 255}
	bone := color.RGBA{230, 230, 210, 255}
	switch d {
	case DecoRock:
		fillPoly(dst, x, y-5, 5, 8, 0, colorGray)
	case DecoTree:
		fillRect(dst, x-3, y-20, 6, 20, trunk)
		fillPoly(dst, x, y-35, 3, 15, 180, color.RGBA{34, 139, 34, 255})
	case DecoCactus:
		body := color.RGBA{60, 140, 60, 255}
		fillRect(dst, x-4, y-25, 8, 25, body)
		fillRect(dst, x-12, y-20, 8, 5, body)
		fillRect(dst, x+4, y-15, 8, 5, body)
	case DecoBones:
		strokeLine(dst, x-8, y-2, x+8, y-2, 3, bone)
		strokeLine(dst, x-5, y-6, x+5, y+2, 2, bone)
	case DecoSnowyRock:
		fillPoly(dst, x, y-5, 5, 8, 0, color.RGBA{180, 180, 190, 255})
		fillPoly(dst, x, y-8, 5, 5, 0, colorWhite)
	case DecoSnowyTree:
		fillRect(dst, x-3, y-20, 6, 20, trunk)
		fillPoly(dst, x, y-35, 3, 15, 180, color.RGBA{220, 240, 220, 255})
	}
}

// Perlin generator shape. The defaults from the library README give a well
// distributed field across the biome thresholds.
const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3

	decorationScale     = 0.5
	decorationThreshold = 0.7
)

// World procedurally generates unbounded terrain from a seed. Every query is
// a pure function of (seed, x, y); nothing is stored.
type World struct {
	seed       int64
	terrain    *perlin.Perlin
	decoration *perlin.Perlin
}

// NewWorld creates a world. The decoration field uses an offset seed so
// props don't correlate with biome boundaries.
func NewWorld(seed int64) *World {
	return &World{
		seed:       seed,
		terrain:    perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed),
		decoration: perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed+1000),
	}
}

// Seed returns the world's generation seed.
func (w *World) Seed() int64 {
	return w.seed
}

// TerrainAt returns the biome at a world position.
func (w *World) TerrainAt(x, y float64) Terrain {
	return terrainForNoise(w.terrain.Noise2D(x*terrainScale, y*terrainScale))
}

// TileColor returns the blended tile color at a world position.
func (w *World) TileColor(x, y float64) color.RGBA {
	return blendedColorForNoise(w.terrain.Noise2D(x*terrainScale, y*terrainScale))
}

// DecorationAt reports the prop occupying the given tile, if any.
func (w *World) DecorationAt(x, y int) (Decoration, bool) {
	v := w.decoration.Noise2D(float64(x)*decorationScale, float64(y)*decorationScale)
	if v < decorationThreshold {
		return 0, false
	}

	// Deterministic per-tile pick between the biome's two props.
	hash := uint32(int32(x)*374761393) ^ uint32(int32(y)*668265263)
	hash += uint32(w.seed)

	switch w.TerrainAt(float64(x), float64(y)) {
	case TerrainDesert:
		if hash%2 == 0 {
			return DecoCactus, true
		}
		return DecoBones, true
	case TerrainSnow:
		if hash%2 == 0 {
			return DecoSnowyRock, true
		}
		return DecoSnowyTree, true
	default:
		if hash%2 == 0 {
			return DecoRock, true
		}
		return DecoTree, true
	}
}

// Draw renders the visible terrain tiles. Decorations are queued separately
// so they depth-sort against entities.
func (w *World) Draw(dst *ebiten.Image, cam *Camera) {
	minX, minY, maxX, maxY := cam.VisibleTiles(2)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			sx, sy := cam.WorldToScreen(float64(x), float64(y))
			drawIsoTile(dst, sx, sy, w.TileColor(float64(x), float64(y)))
		}
	}
}

// QueueDecorations adds visible decorations to the render queue so entities
// can pass in front of or behind them.
func (w *World) QueueDecorations(q *RenderQueue, cam *Camera) {
	minX, minY, maxX, maxY := cam.VisibleTiles(3)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			deco, ok := w.DecorationAt(x, y)
			if !ok {
				continue
			}
			sx, sy := cam.WorldToScreen(float64(x), float64(y))
			q.Add(Depth(float64(x), float64(y)), func(dst *ebiten.Image) {
				deco.Draw(dst, sx, sy)
			})
		}
	}
}

// drawIsoTile draws one 2:1 ground diamond centered on (x, y) with faint
// grid lines on its upper edges.
func drawIsoTile(dst *ebiten.Image, x, y float64, clr color.RGBA) {
	hw := TileWidth / 2.0
	hh := TileHeight / 2.0

	fillTriangle(dst, x, y-hh, x-hw, y, x, y+hh, clr)
	fillTriangle(dst, x, y-hh, x+hw, y, x, y+hh, clr)

	line := color.RGBA{0, 0, 0, 20}
	strokeLine(dst, x, y-hh, x-hw, y, 1, line)
	strokeLine(dst, x, y-hh, x+hw, y, 1, line)
}
