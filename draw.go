package diablo

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// whitePixel is the shared 1x1 texture behind every untextured triangle.
var whitePixel *ebiten.Image

func init() {
	whitePixel = ebiten.NewImage(1, 1)
	whitePixel.Fill(color.White)
}

// Palette shared by the HUD and entity rendering.
var (
	colorWhite     = color.RGBA{255, 255, 255, 255}
	colorBlack     = color.RGBA{0, 0, 0, 255}
	colorGray      = color.RGBA{130, 130, 130, 255}
	colorLightGray = color.RGBA{200, 200, 200, 255}
	colorDarkGray  = color.RGBA{80, 80, 80, 255}
	colorGreen     = color.RGBA{0, 228, 48, 255}
	colorYellow    = color.RGBA{253, 249, 0, 255}
	colorRed       = color.RGBA{230, 41, 55, 255}
	colorOrange    = color.RGBA{255, 161, 0, 255}
	colorSkyBlue   = color.RGBA{102, 191, 255, 255}
)

// itemColor returns the accent color for an item: orange for weapons,
// sky blue for armor. Used by ground items, slots, and tooltips.
func itemColor(it Item) color.RGBA {
	if it.Kind == ItemWeapon {
		return colorOrange
	}
	return colorSkyBlue
}

// Scratch buffers reused across draw calls, grown to high-water mark.
// The game renders from a single goroutine.
var (
	vertsBuf []ebiten.Vertex
	indsBuf  []uint16
)

func straightRGBA(clr color.RGBA) (r, g, b, a float32) {
	return float32(clr.R) / 255, float32(clr.G) / 255, float32(clr.B) / 255, float32(clr.A) / 255
}

// submitTriangles draws the scratch buffers over the white pixel and retains
// their backing arrays for the next call.
func submitTriangles(dst *ebiten.Image, verts []ebiten.Vertex, inds []uint16) {
	var op ebiten.DrawTrianglesOptions
	dst.DrawTriangles(verts, inds, whitePixel, &op)
	vertsBuf = verts[:0]
	indsBuf = inds[:0]
}

// fillPoly draws a filled regular polygon, fan-triangulated from the first
// vertex. rotationDeg 45 with 4 sides yields the item/body diamond.
func fillPoly(dst *ebiten.Image, cx, cy float64, sides int, radius, rotationDeg float64, clr color.RGBA) {
	if sides < 3 {
		return
	}
	r, g, b, a := straightRGBA(clr)
	verts := vertsBuf[:0]
	inds := indsBuf[:0]
	for i := 0; i < sides; i++ {
		ang := (rotationDeg + float64(i)*360/float64(sides)) * math.Pi / 180
		verts = append(verts, ebiten.Vertex{
			DstX: float32(cx + math.Cos(ang)*radius),
			DstY: float32(cy + math.Sin(ang)*radius),
			SrcX: 0.5, SrcY: 0.5,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		})
	}
	for i := 0; i < sides-2; i++ {
		inds = append(inds, 0, uint16(i+1), uint16(i+2))
	}
	submitTriangles(dst, verts, inds)
}

// strokePoly draws the outline of a regular polygon as one quad per edge.
func strokePoly(dst *ebiten.Image, cx, cy float64, sides int, radius, rotationDeg, width float64, clr color.RGBA) {
	if sides < 3 {
		return
	}
	px := cx + math.Cos(rotationDeg*math.Pi/180)*radius
	py := cy + math.Sin(rotationDeg*math.Pi/180)*radius
	for i := 1; i <= sides; i++ {
		ang := (rotationDeg + float64(i)*360/float64(sides)) * math.Pi / 180
		nx := cx + math.Cos(ang)*radius
		ny := cy + math.Sin(ang)*radius
		strokeLine(dst, px, py, nx, ny, width, clr)
		px, py = nx, ny
	}
}

// strokeLine draws a line segment as a width-wide quad.
func strokeLine(dst *ebiten.Image, x0, y0, x1, y1, width float64, clr color.RGBA) {
	dx := x1 - x0
	dy := y1 - y0
	ln := math.Sqrt(dx*dx + dy*dy)
	if ln < 1e-10 {
		return
	}
	// Left-perpendicular scaled to half width.
	nx := -dy / ln * width / 2
	ny := dx / ln * width / 2

	r, g, b, a := straightRGBA(clr)
	verts := vertsBuf[:0]
	corners := [4][2]float64{
		{x0 + nx, y0 + ny},
		{x0 - nx, y0 - ny},
		{x1 + nx, y1 + ny},
		{x1 - nx, y1 - ny},
	}
	for _, c := range corners {
		verts = append(verts, ebiten.Vertex{
			DstX: float32(c[0]), DstY: float32(c[1]),
			SrcX: 0.5, SrcY: 0.5,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		})
	}
	inds := append(indsBuf[:0], 0, 1, 2, 1, 3, 2)
	submitTriangles(dst, verts, inds)
}

// fillRect draws a filled axis-aligned rectangle.
func fillRect(dst *ebiten.Image, x, y, w, h float64, clr color.RGBA) {
	r, g, b, a := straightRGBA(clr)
	verts := vertsBuf[:0]
	corners := [4][2]float64{{x, y}, {x + w, y}, {x, y + h}, {x + w, y + h}}
	for _, c := range corners {
		verts = append(verts, ebiten.Vertex{
			DstX: float32(c[0]), DstY: float32(c[1]),
			SrcX: 0.5, SrcY: 0.5,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		})
	}
	inds := append(indsBuf[:0], 0, 1, 2, 1, 3, 2)
	submitTriangles(dst, verts, inds)
}

// strokeRect draws a rectangle outline.
func strokeRect(dst *ebiten.Image, x, y, w, h, width float64, clr color.RGBA) {
	strokeLine(dst, x, y, x+w, y, width, clr)
	strokeLine(dst, x+w, y, x+w, y+h, width, clr)
	strokeLine(dst, x+w, y+h, x, y+h, width, clr)
	strokeLine(dst, x, y+h, x, y, width, clr)
}

// circleSegments is the tessellation level for circles. Plenty for the
// head/flash radii this game draws.
const circleSegments = 32

// fillCircle draws a filled circle.
func fillCircle(dst *ebiten.Image, cx, cy, radius float64, clr color.RGBA) {
	fillPoly(dst, cx, cy, circleSegments, radius, 0, clr)
}

// fillTriangle draws a single filled triangle.
func fillTriangle(dst *ebiten.Image, x0, y0, x1, y1, x2, y2 float64, clr color.RGBA) {
	r, g, b, a := straightRGBA(clr)
	verts := append(vertsBuf[:0],
		ebiten.Vertex{DstX: float32(x0), DstY: float32(y0), SrcX: 0.5, SrcY: 0.5, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
		ebiten.Vertex{DstX: float32(x1), DstY: float32(y1), SrcX: 0.5, SrcY: 0.5, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
		ebiten.Vertex{DstX: float32(x2), DstY: float32(y2), SrcX: 0.5, SrcY: 0.5, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
	)
	inds := append(indsBuf[:0], 0, 1, 2)
	submitTriangles(dst, verts, inds)
}
