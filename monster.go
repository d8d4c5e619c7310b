package diablo

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	monsterSpeed          = 4.0 // slightly slower than the player
	monsterDetectRange    = 10.0
	monsterStopRange      = 0.5 // stop short of the player to avoid jitter
	monsterAttackCooldown = 0.5
	monsterLootChance     = 0.25
)

// MonsterKind identifies a monster species. Each biome spawns its own pair.
type MonsterKind int

const (
	MonsterGoblin MonsterKind = iota
	MonsterOgre
	MonsterOrc
	MonsterWyrm
	MonsterSnowGoblin
	MonsterSnowOgre
)

func (k MonsterKind) String() string {
	switch k {
	case MonsterGoblin:
		return "goblin"
	case MonsterOgre:
		return "ogre"
	case MonsterOrc:
		return "orc"
	case MonsterWyrm:
		return "wyrm"
	case MonsterSnowGoblin:
		return "snow goblin"
	case MonsterSnowOgre:
		return "snow ogre"
	}
	return "unknown"
}

// MaxHealth is the species' starting health.
func (k MonsterKind) MaxHealth() int {
	switch k {
	case MonsterOgre, MonsterSnowOgre:
		return 30
	case MonsterOrc:
		return 20
	case MonsterWyrm:
		return 50
	default:
		return 10 // goblins
	}
}

// BaseDamage is the species' damage per hit, before the target's armor.
func (k MonsterKind) BaseDamage() int {
	switch k {
	case MonsterOgre, MonsterSnowOgre:
		return 8
	case MonsterOrc:
		return 6
	case MonsterWyrm:
		return 10
	default:
		return 5 // goblins
	}
}

// Color is the species' body tint for shape rendering.
func (k MonsterKind) Color() color.RGBA {
	switch k {
	case MonsterGoblin:
		return color.RGBA{80, 180, 80, 255}
	case MonsterOgre:
		return color.RGBA{120, 80, 60, 255}
	case MonsterOrc:
		return color.RGBA{100, 140, 80, 255}
	case MonsterWyrm:
		return color.RGBA{180, 140, 60, 255}
	case MonsterSnowGoblin:
		return color.RGBA{150, 200, 220, 255}
	default:
		return color.RGBA{200, 200, 220, 255} // snow ogre
	}
}

// Size is the body radius in pixels for shape rendering.
func (k MonsterKind) Size() float64 {
	switch k {
	case MonsterOrc:
		return 16
	case MonsterOgre, MonsterSnowOgre:
		return 22
	case MonsterWyrm:
		return 25
	default:
		return 12 // goblins
	}
}

// KindsForTerrain returns the species pair native to a biome.
func KindsForTerrain(t Terrain) [2]MonsterKind {
	switch t {
	case TerrainDesert:
		return [2]MonsterKind{MonsterOrc, MonsterWyrm}
	case TerrainSnow:
		return [2]MonsterKind{MonsterSnowGoblin, MonsterSnowOgre}
	default:
		return [2]MonsterKind{MonsterGoblin, MonsterOgre}
	}
}

// RandomKindForTerrain picks one of the biome's species.
func RandomKindForTerrain(t Terrain, rng *rand.Rand) MonsterKind {
	kinds := KindsForTerrain(t)
	return kinds[rng.IntN(len(kinds))]
}

// Monster is a hostile creature. Position is in world tiles.
type Monster struct {
	X, Y      float64
	Health    int
	MaxHealth int
	Kind      MonsterKind
	Facing    Direction

	Moving   bool
	AnimTime float64

	attackCooldown float64
}

// NewMonster spawns a full-health monster of the given kind.
func NewMonster(x, y float64, kind MonsterKind) *Monster {
	hp := kind.MaxHealth()
	return &Monster{
		X:         x,
		Y:         y,
		Health:    hp,
		MaxHealth: hp,
		Kind:      kind,
	}
}

// Update ticks the attack cooldown and chases the player while it is
// inside detection range, stopping just short of overlapping.
func (m *Monster) Update(dt, playerX, playerY float64) {
	if m.attackCooldown > 0 {
		m.attackCooldown -= dt
	}

	dx := playerX - m.X
	dy := playerY - m.Y
	dist := math.Hypot(dx, dy)

	if dist <= monsterDetectRange && dist > monsterStopRange {
		nx := dx / dist
		ny := dy / dist
		m.X += nx * monsterSpeed * dt
		m.Y += ny * monsterSpeed * dt
		m.Facing = DirectionFrom(nx, ny, m.Facing)
		m.Moving = true
		m.AnimTime += dt
	} else {
		m.Moving = false
		m.AnimTime = 0
	}
}

// CanAttack reports whether the attack cooldown has elapsed.
func (m *Monster) CanAttack() bool {
	return m.attackCooldown <= 0
}

// Attack starts the attack cooldown. The caller resolves damage.
func (m *Monster) Attack() {
	m.attackCooldown = monsterAttackCooldown
}

// DamageAgainst is the damage this monster deals to a target wearing
// the given armor.
func (m *Monster) DamageAgainst(armor ArmorType) int {
	return ResolveDamage(m.Kind.BaseDamage(), armor)
}

// TakeDamage applies a resolved hit. Health never drops below zero.
func (m *Monster) TakeDamage(damage int) {
	m.Health -= damage
	if m.Health < 0 {
		m.Health = 0
	}
}

// RollLoot rolls the death drop: a quarter of kills leave a random item.
func (m *Monster) RollLoot(rng *rand.Rand) (Item, bool) {
	if rng.Float64() < monsterLootChance {
		return RandomItem(rng), true
	}
	return Item{}, false
}

// Draw renders the monster as a hexagon with an outline, plus a health
// bar once it has taken damage.
func (m *Monster) Draw(dst *ebiten.Image, cam *Camera) {
	sx, sy := cam.WorldToScreen(m.X, m.Y)

	size := m.Kind.Size()
	fillPoly(dst, sx, sy, 6, size, 0, m.Kind.Color())
	strokePoly(dst, sx, sy, 6, size, 0, 1.5, colorBlack)

	m.DrawHealthBar(dst, cam)
}

// DrawHealthBar renders the floating health bar once the monster has
// taken damage. Drawn over both shape and sprite renditions.
func (m *Monster) DrawHealthBar(dst *ebiten.Image, cam *Camera) {
	if m.Health >= m.MaxHealth {
		return
	}
	sx, sy := cam.WorldToScreen(m.X, m.Y)

	size := m.Kind.Size()
	barW := size * 2
	barH := 4.0
	barX := sx - barW/2
	barY := sy - size - 10

	fillRect(dst, barX, barY, barW, barH, colorDarkGray)
	pct := float64(m.Health) / float64(m.MaxHealth)
	fillRect(dst, barX, barY, barW*pct, barH, colorRed)
}
