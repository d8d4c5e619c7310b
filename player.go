package diablo

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	playerSpeed          = 5.0 // tiles per second
	playerMaxHealth      = 50
	playerAttackCooldown = 0.3
	playerRegenInterval  = 1.0 // seconds per regenerated hit point

	// The attack flash is visible for the first part of the cooldown.
	attackFlashUntil = 0.2
)

// Player is the controllable hero. Position is in world tiles.
type Player struct {
	X, Y      float64
	Health    int
	MaxHealth int
	Weapon    WeaponType
	Armor     ArmorType
	Inventory *Inventory
	Facing    Direction

	// Moving and AnimTime drive the walk animation when a sprite
	// sheet is loaded. AnimTime resets whenever movement stops.
	Moving   bool
	AnimTime float64

	attackCooldown float64
	regenTimer     float64
}

// NewPlayer creates a player at the given world position with a sword,
// no armor, and an empty backpack.
func NewPlayer(x, y float64) *Player {
	return &Player{
		X:         x,
		Y:         y,
		Health:    playerMaxHealth,
		MaxHealth: playerMaxHealth,
		Weapon:    WeaponSword,
		Armor:     ArmorNone,
		Inventory: NewInventory(),
		Facing:    DirUpRight,
	}
}

// Update advances movement, the attack cooldown, and health regeneration.
// dx and dy are the raw movement intent (key axis sums); diagonals are
// normalized so the player never moves faster than playerSpeed.
func (p *Player) Update(dt, dx, dy float64) {
	if l := math.Hypot(dx, dy); l > 0 {
		dx /= l
		dy /= l
		p.Facing = DirectionFrom(dx, dy, p.Facing)
		p.Moving = true
		p.AnimTime += dt
	} else {
		p.Moving = false
		p.AnimTime = 0
	}
	p.X += dx * playerSpeed * dt
	p.Y += dy * playerSpeed * dt

	if p.attackCooldown > 0 {
		p.attackCooldown -= dt
	}

	// Regenerate 1 HP per second while hurt. The timer only runs while
	// below max health.
	if p.Health < p.MaxHealth {
		p.regenTimer += dt
		if p.regenTimer >= playerRegenInterval {
			p.regenTimer -= playerRegenInterval
			p.Health++
			if p.Health > p.MaxHealth {
				p.Health = p.MaxHealth
			}
		}
	}
}

// CanAttack reports whether the attack cooldown has elapsed.
func (p *Player) CanAttack() bool {
	return p.attackCooldown <= 0
}

// Attack starts the attack cooldown. The caller resolves damage.
func (p *Player) Attack() {
	p.attackCooldown = playerAttackCooldown
}

// DamageRoll rolls the equipped weapon's damage.
func (p *Player) DamageRoll(rng *rand.Rand) int {
	return p.Weapon.Roll(rng)
}

// TakeDamage applies an incoming hit, reduced by equipped armor.
// A hit always costs at least 1 HP; health never drops below zero.
func (p *Player) TakeDamage(raw int) {
	p.Health -= ResolveDamage(raw, p.Armor)
	if p.Health < 0 {
		p.Health = 0
	}
}

// Equip puts the item in the matching slot and returns what it displaced.
// Swapping a weapon always displaces the old one; equipping armor over
// bare skin displaces nothing.
func (p *Player) Equip(it Item) (Item, bool) {
	switch it.Kind {
	case ItemWeapon:
		old := Item{Kind: ItemWeapon, Weapon: p.Weapon}
		p.Weapon = it.Weapon
		return old, true
	case ItemArmor:
		if p.Armor == ArmorNone {
			p.Armor = it.Armor
			return Item{}, false
		}
		old := Item{Kind: ItemArmor, Armor: p.Armor}
		p.Armor = it.Armor
		return old, true
	}
	return Item{}, false
}

// --- shape rendering ---

// bodyColor is the fallback body tint, keyed off equipped armor.
func (p *Player) bodyColor() color.RGBA {
	switch p.Armor {
	case ArmorLeather:
		return color.RGBA{139, 90, 43, 255}
	case ArmorChainmail:
		return color.RGBA{150, 150, 160, 255}
	case ArmorPlatemail:
		return color.RGBA{100, 100, 120, 255}
	default:
		return color.RGBA{200, 150, 100, 255} // bare skin
	}
}

func (p *Player) weaponColor() color.RGBA {
	switch p.Weapon {
	case WeaponAxe:
		return color.RGBA{100, 80, 60, 255}
	case WeaponMace:
		return colorDarkGray
	default:
		return colorLightGray
	}
}

// weaponOffset is the weapon line's start relative to the anchor. The
// weapon always points up; the hand follows the horizontal facing.
func weaponOffset(d Direction) (x, y float64) {
	if d.IsLeft() {
		return -15, -20
	}
	return 15, -20
}

func weaponEndOffset(d Direction) (x, y float64) {
	if d.IsLeft() {
		return -30, -35
	}
	return 30, -35
}

func attackFlashOffset(d Direction) (x, y float64) {
	if d.IsLeft() {
		return -25, -30
	}
	return 25, -30
}

// Draw renders the player as shapes anchored at the feet: a diamond
// body tinted by armor, a head, the weapon line, and an attack flash
// while a swing is fresh.
func (p *Player) Draw(dst *ebiten.Image, cam *Camera) {
	sx, sy := cam.WorldToScreen(p.X, p.Y)

	fillPoly(dst, sx, sy-10, 4, 20, 45, p.bodyColor())
	fillCircle(dst, sx, sy-35, 10, color.RGBA{220, 180, 140, 255})

	wsx, wsy := weaponOffset(p.Facing)
	wex, wey := weaponEndOffset(p.Facing)
	strokeLine(dst, sx+wsx, sy+wsy, sx+wex, sy+wey, 3, p.weaponColor())

	if p.attackCooldown > attackFlashUntil {
		fx, fy := attackFlashOffset(p.Facing)
		fillCircle(dst, sx+fx, sy+fy, 8, color.RGBA{255, 255, 200, 150})
	}
}
