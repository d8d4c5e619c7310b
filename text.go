package diablo

import (
	"bytes"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// fontSource backs every text face in the game. Using the embedded Go
// Regular face keeps text rendering free of asset files.
var fontSource *text.GoTextFaceSource

// faces caches one face per pixel size. The game is single-threaded.
var faces = map[float64]*text.GoTextFace{}

func init() {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("diablo: parse embedded font: %v", err)
	}
	fontSource = s
}

// face returns the cached GoTextFace for the given pixel size.
func face(size float64) *text.GoTextFace {
	if f, ok := faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: fontSource, Size: size}
	faces[size] = f
	return f
}

// drawText draws a single line of text with its baseline at y. All HUD
// layout constants are specified as baseline coordinates. clr carries
// straight (non-premultiplied) alpha.
func drawText(dst *ebiten.Image, s string, x, y, size float64, clr color.RGBA) {
	f := face(size)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-f.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(color.NRGBA(clr))
	text.Draw(dst, s, f, op)
}

// measureText returns the rendered width and height of a single line.
func measureText(s string, size float64) (w, h float64) {
	return text.Measure(s, face(size), 0)
}
