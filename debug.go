package diablo

import (
	"fmt"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// debugReport is the overlay's data, split from rendering so the
// formatting is testable without a frame.
type debugReport struct {
	fps, tps         float64
	state            GameState
	monsters         int
	groundItems      int
	texts            int
	chunksVisited    int
	playerX, playerY float64
	cameraX, cameraY float64
}

// chunkOf returns the chunk coordinates containing a world position.
func chunkOf(x, y float64) (cx, cy int) {
	return int(math.Floor(x / chunkSize)), int(math.Floor(y / chunkSize))
}

func (r debugReport) String() string {
	cx, cy := chunkOf(r.playerX, r.playerY)
	var b strings.Builder
	fmt.Fprintf(&b, "FPS: %.1f  TPS: %.1f\n", r.fps, r.tps)
	fmt.Fprintf(&b, "state: %s\n", r.state)
	fmt.Fprintf(&b, "monsters: %d  items: %d  texts: %d\n", r.monsters, r.groundItems, r.texts)
	fmt.Fprintf(&b, "player: (%.2f, %.2f)  chunk: (%d, %d)  visited: %d\n",
		r.playerX, r.playerY, cx, cy, r.chunksVisited)
	fmt.Fprintf(&b, "camera: (%.2f, %.2f)", r.cameraX, r.cameraY)
	return b.String()
}

func (g *Game) report() debugReport {
	return debugReport{
		fps:           ebiten.ActualFPS(),
		tps:           ebiten.ActualTPS(),
		state:         g.state,
		monsters:      len(g.monsters),
		groundItems:   len(g.groundItems),
		texts:         len(g.texts),
		chunksVisited: g.spawner.Visited(),
		playerX:       g.player.X,
		playerY:       g.player.Y,
		cameraX:       g.camera.X,
		cameraY:       g.camera.Y,
	}
}

// drawDebugOverlay prints the F3 diagnostics in the top-left, below the
// health bar.
func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, g.report().String(), 20, 60)
}
