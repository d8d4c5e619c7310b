package diablo

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	attackRange = 1.0 // tiles, for both sides
	pickupRange = 0.5

	// Entities within this many tiles of the view edge still tick and
	// queue draws, so monsters walk on screen instead of popping.
	cullMargin = 2
)

// clearColor is the out-of-world background.
var clearColor = color.RGBA{30, 30, 40, 255}

// GameState selects which update/draw path runs each tick.
type GameState uint8

const (
	StatePlaying GameState = iota
	StateInventory
	StateGameOver
)

func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateInventory:
		return "inventory"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Game is the ebiten.Game root: it owns the world, the entities, and the
// per-frame tick and draw order.
type Game struct {
	cfg   Config
	state GameState

	world   *World
	player  *Player
	camera  *Camera
	spawner *Spawner

	monsters    []*Monster
	groundItems []*GroundItem
	texts       []*FloatingText

	queue   *RenderQueue
	sprites *SpriteSet
	input   Input
	rng     *rand.Rand

	showDebug      bool
	wantScreenshot bool
}

// NewGame starts a fresh run from the configuration. The rng drives
// damage rolls, loot, and species picks; the world itself is fixed by
// cfg.Seed.
func NewGame(cfg Config, rng *rand.Rand) *Game {
	w := NewWorld(cfg.Seed)
	g := &Game{
		cfg:       cfg,
		world:     w,
		player:    NewPlayer(0, 0),
		camera:    NewCamera(float64(cfg.WindowW), float64(cfg.WindowH)),
		spawner:   NewSpawner(w, rng),
		queue:     NewRenderQueue(),
		rng:       rng,
		showDebug: cfg.Debug,
	}
	g.camera.Jump(g.player.X, g.player.Y)
	g.monsters = g.spawner.SpawnAround(g.player.X, g.player.Y)
	return g
}

// SetSprites installs loaded sprite sheets. Entities without a sheet
// keep their shape rendition.
func (g *Game) SetSprites(set *SpriteSet) {
	g.sprites = set
}

// State returns the current game state.
func (g *Game) State() GameState {
	return g.state
}

// restart begins a new run over the same world seed, keeping the
// sprite set and the debug toggle.
func (g *Game) restart() {
	fresh := NewGame(g.cfg, g.rng)
	fresh.sprites = g.sprites
	fresh.showDebug = g.showDebug
	*g = *fresh
}

// Update runs one fixed-timestep tick.
func (g *Game) Update() error {
	g.input.Poll()
	dt := 1.0 / float64(ebiten.TPS())

	if g.input.ToggleDebug {
		g.showDebug = !g.showDebug
	}
	if g.input.Screenshot {
		g.wantScreenshot = true
	}

	g.step(g.input, dt)
	return nil
}

// step advances the state machine by one tick. Separated from Update so
// tests drive the game with constructed input and an exact dt.
func (g *Game) step(in Input, dt float64) {
	switch g.state {
	case StatePlaying:
		g.tickPlaying(in, dt)
	case StateInventory:
		g.tickInventory(in)
	case StateGameOver:
		if in.Restart {
			g.restart()
		}
	}
}

func (g *Game) tickPlaying(in Input, dt float64) {
	if in.ToggleInv {
		g.state = StateInventory
		return
	}

	g.player.Update(dt, in.MoveX, in.MoveY)
	g.camera.Follow(g.player.X, g.player.Y, dt)

	g.monsters = append(g.monsters, g.spawner.SpawnAround(g.player.X, g.player.Y)...)
	for _, m := range g.monsters {
		m.Update(dt, g.player.X, g.player.Y)
	}

	g.handleCombat(in.Clicked || in.AttackKey)
	g.checkPickup()

	alive := g.texts[:0]
	for _, t := range g.texts {
		t.Update(dt)
		if !t.Expired() {
			alive = append(alive, t)
		}
	}
	g.texts = alive

	if g.player.Health <= 0 {
		g.state = StateGameOver
	}
}

func (g *Game) tickInventory(in Input) {
	if in.CloseInv {
		g.state = StatePlaying
		return
	}
	if !in.Clicked {
		return
	}
	slot, ok := SlotAt(g.camera.ScreenW, g.camera.ScreenH, in.CursorX, in.CursorY)
	if !ok {
		return
	}
	it, ok := g.player.Inventory.RemoveAt(slot)
	if !ok {
		return
	}
	// The displaced item goes back into the slot the new one came from.
	if old, swapped := g.player.Equip(it); swapped {
		g.player.Inventory.Add(old)
	}
}

// handleCombat resolves the player's swing and then the monsters'.
// Dead monsters are removed immediately and may drop loot.
func (g *Game) handleCombat(attack bool) {
	if attack && g.player.CanAttack() {
		g.player.Attack()

		survivors := g.monsters[:0]
		for _, m := range g.monsters {
			if distance(m.X, m.Y, g.player.X, g.player.Y) <= attackRange {
				dmg := g.player.DamageRoll(g.rng)
				m.TakeDamage(dmg)
				g.addText(fmt.Sprintf("%d", dmg), m.X, m.Y)
			}
			if m.Health <= 0 {
				if it, ok := m.RollLoot(g.rng); ok {
					g.groundItems = append(g.groundItems, &GroundItem{X: m.X, Y: m.Y, Item: it})
				}
				continue
			}
			survivors = append(survivors, m)
		}
		g.monsters = survivors
	}

	for _, m := range g.monsters {
		if m.CanAttack() && distance(m.X, m.Y, g.player.X, g.player.Y) <= attackRange {
			m.Attack()
			applied := m.DamageAgainst(g.player.Armor)
			g.player.TakeDamage(m.Kind.BaseDamage())
			g.addText(fmt.Sprintf("-%d", applied), g.player.X, g.player.Y)
		}
	}
}

// checkPickup moves nearby ground items into the backpack. A full
// backpack leaves the item where it lies.
func (g *Game) checkPickup() {
	remaining := g.groundItems[:0]
	for _, gi := range g.groundItems {
		if distance(gi.X, gi.Y, g.player.X, g.player.Y) <= pickupRange && g.player.Inventory.Add(gi.Item) {
			g.addText(fmt.Sprintf("Picked up %s!", gi.Item.Name()), g.player.X, g.player.Y)
			continue
		}
		remaining = append(remaining, gi)
	}
	g.groundItems = remaining
}

func (g *Game) addText(s string, x, y float64) {
	g.texts = append(g.texts, NewFloatingText(s, x, y))
}

func distance(x0, y0, x1, y1 float64) float64 {
	return math.Hypot(x1-x0, y1-y0)
}

// Draw renders the frame: terrain, Y-sorted entities, floating texts,
// then screen-space UI.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(clearColor)

	g.drawWorld(screen)

	for _, t := range g.texts {
		t.Draw(screen, g.camera)
	}

	DrawHealthBar(screen, g.player.Health, g.player.MaxHealth)

	switch g.state {
	case StateInventory:
		DrawInventoryScreen(screen, g.player, g.input.CursorX, g.input.CursorY)
	case StateGameOver:
		DrawGameOverScreen(screen)
	}

	if g.showDebug {
		g.drawDebugOverlay(screen)
	}

	if g.wantScreenshot {
		g.wantScreenshot = false
		path, err := SaveScreenshot(screen, g.cfg.ScreenshotDir)
		if err != nil {
			log.Printf("diablo: screenshot: %v", err)
		} else {
			log.Printf("diablo: wrote %s", path)
		}
	}
}

// drawWorld draws the terrain in painter's order, then flushes every
// world entity through the depth-sorted queue.
func (g *Game) drawWorld(screen *ebiten.Image) {
	g.world.Draw(screen, g.camera)

	g.world.QueueDecorations(g.queue, g.camera)

	minX, minY, maxX, maxY := g.camera.VisibleTiles(cullMargin)
	onScreen := func(x, y float64) bool {
		return x >= float64(minX) && x <= float64(maxX) && y >= float64(minY) && y <= float64(maxY)
	}

	for _, gi := range g.groundItems {
		if !onScreen(gi.X, gi.Y) {
			continue
		}
		g.queue.Add(Depth(gi.X, gi.Y), func(dst *ebiten.Image) {
			gi.Draw(dst, g.camera)
		})
	}

	for _, m := range g.monsters {
		if !onScreen(m.X, m.Y) {
			continue
		}
		g.queue.Add(Depth(m.X, m.Y), func(dst *ebiten.Image) {
			g.drawMonster(dst, m)
		})
	}

	g.queue.Add(Depth(g.player.X, g.player.Y), func(dst *ebiten.Image) {
		g.drawPlayer(dst)
	})

	g.queue.Flush(screen)
}

func (g *Game) drawPlayer(dst *ebiten.Image) {
	sheet := g.sprites.Sheet("player")
	if sheet == nil {
		g.player.Draw(dst, g.camera)
		return
	}
	sx, sy := g.camera.WorldToScreen(g.player.X, g.player.Y)
	sheet.Draw(dst, sx, sy, g.player.Facing, g.player.AnimTime, g.player.Moving)
}

func (g *Game) drawMonster(dst *ebiten.Image, m *Monster) {
	sheet := g.sprites.Sheet(m.Kind.SpriteKey())
	if sheet == nil {
		m.Draw(dst, g.camera)
		return
	}
	sx, sy := g.camera.WorldToScreen(m.X, m.Y)
	sheet.Draw(dst, sx, sy, m.Facing, m.AnimTime, m.Moving)
	m.DrawHealthBar(dst, g.camera)
}

// Layout reports the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.WindowW, g.cfg.WindowH
}
