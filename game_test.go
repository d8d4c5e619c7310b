package diablo

import (
	"math/rand/v2"
	"testing"
)

const tickDt = 1.0 / 60

func newTestGame() *Game {
	cfg := DefaultConfig()
	return NewGame(cfg, rand.New(rand.NewPCG(7, 11)))
}

func TestNewGameStartsPlaying(t *testing.T) {
	g := newTestGame()
	if g.State() != StatePlaying {
		t.Errorf("new game state = %v, want %v", g.State(), StatePlaying)
	}
	if g.player.X != 0 || g.player.Y != 0 {
		t.Errorf("player starts at (%f,%f), want origin", g.player.X, g.player.Y)
	}
	if g.camera.X != 0 || g.camera.Y != 0 {
		t.Errorf("camera starts at (%f,%f), want origin", g.camera.X, g.camera.Y)
	}
}

func TestNewGameRollsSpawnWindow(t *testing.T) {
	g := newTestGame()
	// The full (2*spawnRange+1)^2 window around the origin chunk.
	want := (2*spawnRange + 1) * (2*spawnRange + 1)
	if got := g.spawner.Visited(); got != want {
		t.Errorf("visited chunks = %d, want %d", got, want)
	}
}

func TestToggleInventoryPausesWorld(t *testing.T) {
	g := newTestGame()
	m := NewMonster(3, 3, MonsterGoblin)
	g.monsters = append(g.monsters, m)

	g.step(Input{ToggleInv: true}, tickDt)
	if g.State() != StateInventory {
		t.Fatalf("state after toggle = %v, want %v", g.State(), StateInventory)
	}

	x, y := m.X, m.Y
	for i := 0; i < 60; i++ {
		g.step(Input{}, tickDt)
	}
	if m.X != x || m.Y != y {
		t.Errorf("monster moved to (%f,%f) while inventory open", m.X, m.Y)
	}
}

func TestCloseInventoryResumes(t *testing.T) {
	g := newTestGame()
	g.step(Input{ToggleInv: true}, tickDt)
	g.step(Input{CloseInv: true}, tickDt)
	if g.State() != StatePlaying {
		t.Errorf("state after close = %v, want %v", g.State(), StatePlaying)
	}
}

func TestPlayerDeathEntersGameOver(t *testing.T) {
	g := newTestGame()
	g.player.Health = 1
	g.monsters = append(g.monsters, NewMonster(0.5, 0, MonsterOgre))

	g.step(Input{}, tickDt)
	if g.player.Health != 0 {
		t.Errorf("player health = %d, want 0", g.player.Health)
	}
	if g.State() != StateGameOver {
		t.Errorf("state = %v, want %v", g.State(), StateGameOver)
	}
}

func TestRestartResetsRun(t *testing.T) {
	g := newTestGame()
	g.player.Health = 0
	g.state = StateGameOver
	g.monsters = nil

	g.step(Input{Restart: true}, tickDt)
	if g.State() != StatePlaying {
		t.Fatalf("state after restart = %v, want %v", g.State(), StatePlaying)
	}
	if g.player.Health != g.player.MaxHealth {
		t.Errorf("restarted player health = %d/%d", g.player.Health, g.player.MaxHealth)
	}
	if g.player.X != 0 || g.player.Y != 0 {
		t.Errorf("restarted player at (%f,%f), want origin", g.player.X, g.player.Y)
	}
}

func TestGameOverFreezesWorld(t *testing.T) {
	g := newTestGame()
	g.state = StateGameOver
	m := NewMonster(3, 3, MonsterGoblin)
	g.monsters = append(g.monsters, m)

	for i := 0; i < 60; i++ {
		g.step(Input{}, tickDt)
	}
	if m.X != 3 || m.Y != 3 {
		t.Errorf("monster moved to (%f,%f) after game over", m.X, m.Y)
	}
	if g.State() != StateGameOver {
		t.Errorf("state drifted to %v", g.State())
	}
}

func TestAttackHitsMonstersInRange(t *testing.T) {
	g := newTestGame()
	near := NewMonster(0.8, 0, MonsterWyrm)
	far := NewMonster(5, 5, MonsterWyrm)
	g.monsters = []*Monster{near, far}

	g.step(Input{Clicked: true}, tickDt)
	if near.Health == near.MaxHealth {
		t.Error("monster in range took no damage")
	}
	if far.Health != far.MaxHealth {
		t.Errorf("monster out of range took damage: %d/%d", far.Health, far.MaxHealth)
	}
	if len(g.texts) == 0 {
		t.Error("no damage number spawned")
	}
}

func TestAttackKeySwingsWithoutMouse(t *testing.T) {
	g := newTestGame()
	m := NewMonster(0.8, 0, MonsterWyrm)
	g.monsters = []*Monster{m}

	g.step(Input{AttackKey: true}, tickDt)
	if m.Health == m.MaxHealth {
		t.Error("key attack landed no damage")
	}
}

func TestAttackRespectsCooldown(t *testing.T) {
	g := newTestGame()
	m := NewMonster(0.8, 0, MonsterWyrm)
	g.monsters = []*Monster{m}

	g.step(Input{Clicked: true}, tickDt)
	after := m.Health
	// Second click lands one tick later, well inside the 0.3s cooldown.
	g.step(Input{Clicked: true}, tickDt)
	if m.Health != after {
		t.Errorf("second swing landed during cooldown: %d -> %d", after, m.Health)
	}
}

func TestKilledMonsterIsRemoved(t *testing.T) {
	g := newTestGame()
	m := NewMonster(0.5, 0, MonsterGoblin)
	m.Health = 1
	g.monsters = []*Monster{m}

	g.step(Input{Clicked: true}, tickDt)
	for _, got := range g.monsters {
		if got == m {
			t.Fatal("dead monster still in the world")
		}
	}
}

func TestPickupWithinRange(t *testing.T) {
	g := newTestGame()
	it := Item{Kind: ItemWeapon, Weapon: WeaponAxe}
	g.groundItems = []*GroundItem{{X: 0.2, Y: 0.2, Item: it}}

	g.step(Input{}, tickDt)
	if len(g.groundItems) != 0 {
		t.Error("item within pickup range was not collected")
	}
	if g.player.Inventory.Len() != 1 {
		t.Errorf("inventory len = %d, want 1", g.player.Inventory.Len())
	}
	found := false
	for _, txt := range g.texts {
		if txt.Text == "Picked up Axe!" {
			found = true
		}
	}
	if !found {
		t.Error("no pickup notice spawned")
	}
}

func TestPickupOutOfRangeStays(t *testing.T) {
	g := newTestGame()
	g.groundItems = []*GroundItem{{X: 2, Y: 2, Item: Item{Kind: ItemArmor, Armor: ArmorLeather}}}

	g.step(Input{}, tickDt)
	if len(g.groundItems) != 1 {
		t.Error("distant item was collected")
	}
}

func TestPickupFullInventoryLeavesItem(t *testing.T) {
	g := newTestGame()
	for i := 0; i < InventorySize; i++ {
		g.player.Inventory.Add(Item{Kind: ItemWeapon, Weapon: WeaponMace})
	}
	g.groundItems = []*GroundItem{{X: 0, Y: 0, Item: Item{Kind: ItemWeapon, Weapon: WeaponAxe}}}

	g.step(Input{}, tickDt)
	if len(g.groundItems) != 1 {
		t.Error("item vanished even though the backpack was full")
	}
}

func TestInventoryClickEquipsAndSwaps(t *testing.T) {
	g := newTestGame()
	g.state = StateInventory
	g.player.Inventory.Add(Item{Kind: ItemWeapon, Weapon: WeaponAxe})

	panelX, panelY := inventoryPanelOrigin(g.camera.ScreenW, g.camera.ScreenH)
	sx, sy := slotOrigin(panelX, panelY, 0)
	g.step(Input{Clicked: true, CursorX: sx + slotSize/2, CursorY: sy + slotSize/2}, tickDt)

	if g.player.Weapon != WeaponAxe {
		t.Errorf("equipped weapon = %v, want axe", g.player.Weapon)
	}
	// The starting sword comes back to the backpack.
	it, ok := g.player.Inventory.At(0)
	if !ok || it.Weapon != WeaponSword {
		t.Errorf("displaced sword not returned to slot 0: %+v ok=%v", it, ok)
	}
}

func TestInventoryClickEmptySlotIsNoop(t *testing.T) {
	g := newTestGame()
	g.state = StateInventory

	panelX, panelY := inventoryPanelOrigin(g.camera.ScreenW, g.camera.ScreenH)
	sx, sy := slotOrigin(panelX, panelY, 3)
	g.step(Input{Clicked: true, CursorX: sx + 1, CursorY: sy + 1}, tickDt)

	if g.player.Weapon != WeaponSword {
		t.Errorf("weapon changed to %v on empty-slot click", g.player.Weapon)
	}
}

func TestFloatingTextsExpireDuringPlay(t *testing.T) {
	g := newTestGame()
	g.monsters = nil // keep combat from minting new texts mid-test
	g.addText("hello", 0, 0)

	// 1.5 simulated seconds, past the 1.0s lifetime.
	for i := 0; i < 90; i++ {
		g.step(Input{}, tickDt)
	}
	if len(g.texts) != 0 {
		t.Errorf("%d floating texts survived past their lifetime", len(g.texts))
	}
}

func TestMonsterCooldownLimitsDamage(t *testing.T) {
	g := newTestGame()
	g.monsters = []*Monster{NewMonster(0.5, 0, MonsterGoblin)}

	g.step(Input{}, tickDt)
	afterFirst := g.player.Health
	g.step(Input{}, tickDt)
	if g.player.Health != afterFirst {
		t.Errorf("monster attacked twice inside its cooldown: %d -> %d", afterFirst, g.player.Health)
	}
}

func TestLayoutIsFixed(t *testing.T) {
	g := newTestGame()
	w, h := g.Layout(333, 444)
	if w != g.cfg.WindowW || h != g.cfg.WindowH {
		t.Errorf("Layout = (%d,%d), want (%d,%d)", w, h, g.cfg.WindowW, g.cfg.WindowH)
	}
}
