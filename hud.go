package diablo

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// healthBarColor shifts green to yellow to red as health drops.
func healthBarColor(pct float64) color.RGBA {
	switch {
	case pct > 0.5:
		return colorGreen
	case pct > 0.25:
		return colorYellow
	default:
		return colorRed
	}
}

// DrawHealthBar renders the player health bar in the top-left corner.
func DrawHealthBar(dst *ebiten.Image, current, maxHealth int) {
	const (
		barX = 20.0
		barY = 20.0
		barW = 200.0
		barH = 25.0
	)

	fillRect(dst, barX, barY, barW, barH, colorDarkGray)

	pct := float64(current) / float64(maxHealth)
	fillRect(dst, barX, barY, barW*pct, barH, healthBarColor(pct))

	strokeRect(dst, barX, barY, barW, barH, 2, colorWhite)

	label := fmt.Sprintf("%d/%d", current, maxHealth)
	w, h := measureText(label, 20)
	drawText(dst, label, barX+barW/2-w/2, barY+barH/2+h/2-2, 20, colorWhite)
}

// DrawGameOverScreen covers the frame with a dark overlay and the
// restart prompt.
func DrawGameOverScreen(dst *ebiten.Image) {
	bounds := dst.Bounds()
	screenW := float64(bounds.Dx())
	screenH := float64(bounds.Dy())

	fillRect(dst, 0, 0, screenW, screenH, color.RGBA{0, 0, 0, 200})

	w, _ := measureText("GAME OVER", 64)
	drawText(dst, "GAME OVER", screenW/2-w/2, screenH/2, 64, colorRed)

	const hint = "Press SPACE or ENTER to restart"
	hw, _ := measureText(hint, 24)
	drawText(dst, hint, screenW/2-hw/2, screenH/2+50, 24, colorWhite)
}
