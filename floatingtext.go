package diablo

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	floatingTextLife = 1.0  // seconds
	floatingTextRise = 30.0 // pixels risen over a full lifetime
	floatingTextSize = 18.0
)

// FloatingText is a short-lived notice ("Picked up Axe!") that rises and
// fades above a world position.
type FloatingText struct {
	Text string
	X, Y float64

	rise    *gween.Tween
	fade    *gween.Tween
	offsetY float64
	alpha   uint8
	expired bool
}

// NewFloatingText starts a notice at the given world position.
func NewFloatingText(s string, x, y float64) *FloatingText {
	return &FloatingText{
		Text:  s,
		X:     x,
		Y:     y,
		rise:  gween.New(0, floatingTextRise, floatingTextLife, ease.Linear),
		fade:  gween.New(255, 0, floatingTextLife, ease.Linear),
		alpha: 255,
	}
}

// Update advances the rise and fade. Once the tweens finish the text is
// expired and should be dropped by the owner.
func (t *FloatingText) Update(dt float64) {
	off, done := t.rise.Update(float32(dt))
	t.offsetY = float64(off)
	a, _ := t.fade.Update(float32(dt))
	t.alpha = uint8(a)
	t.expired = done
}

// Expired reports whether the lifetime has run out.
func (t *FloatingText) Expired() bool {
	return t.expired
}

// Draw renders the text centered above its world position.
func (t *FloatingText) Draw(dst *ebiten.Image, cam *Camera) {
	sx, sy := cam.WorldToScreen(t.X, t.Y)
	w, _ := measureText(t.Text, floatingTextSize)
	clr := color.RGBA{255, 255, 100, t.alpha}
	drawText(dst, t.Text, sx-w/2, sy-50-t.offsetY, floatingTextSize, clr)
}
