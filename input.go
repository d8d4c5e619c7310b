package diablo

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is one frame's polled input. Poll fills it at the top of every
// tick so game logic reads a stable snapshot; tests construct values
// directly.
type Input struct {
	MoveX, MoveY     float64 // raw world-axis sums, not normalized
	CursorX, CursorY float64

	Clicked     bool // left button went down this frame
	AttackKey   bool // Space, swings without the mouse
	ToggleInv   bool // I
	CloseInv    bool // I or Escape
	Restart     bool // Space or Enter
	ToggleDebug bool // F3
	Screenshot  bool // F12
}

// moveAxes maps held movement keys to world-axis sums. WASD moves in
// screen space: W pulls toward the top of the screen, which is (-1, -1)
// in world tiles, A toward bottom-left, which is (-1, +1). Opposite
// keys cancel.
func moveAxes(up, down, left, right bool) (x, y float64) {
	if up {
		x--
		y--
	}
	if down {
		x++
		y++
	}
	if left {
		x--
		y++
	}
	if right {
		x++
		y--
	}
	return x, y
}

// Poll reads the keyboard and mouse.
func (in *Input) Poll() {
	in.MoveX, in.MoveY = moveAxes(
		ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
	)

	cx, cy := ebiten.CursorPosition()
	in.CursorX, in.CursorY = float64(cx), float64(cy)

	in.Clicked = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	in.AttackKey = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	in.ToggleInv = inpututil.IsKeyJustPressed(ebiten.KeyI)
	in.CloseInv = in.ToggleInv || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	in.Restart = inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	in.ToggleDebug = inpututil.IsKeyJustPressed(ebiten.KeyF3)
	in.Screenshot = inpututil.IsKeyJustPressed(ebiten.KeyF12)
}
