package diablo

import "math/rand/v2"

// WeaponType identifies one of the melee weapons.
type WeaponType uint8

const (
	WeaponSword WeaponType = iota
	WeaponAxe
	WeaponMace
)

// Name returns the weapon's display name.
func (w WeaponType) Name() string {
	switch w {
	case WeaponSword:
		return "Sword"
	case WeaponAxe:
		return "Axe"
	case WeaponMace:
		return "Mace"
	default:
		return "Unknown"
	}
}

// Roll returns the damage for one swing. Swords roll 1-10, axes 5-8, maces
// always hit for 7.
func (w WeaponType) Roll(rng *rand.Rand) int {
	switch w {
	case WeaponSword:
		return 1 + rng.IntN(10)
	case WeaponAxe:
		return 5 + rng.IntN(4)
	default:
		return 7
	}
}

// ArmorType identifies worn armor. ArmorNone is the zero value, so an
// unequipped armor slot needs no special casing.
type ArmorType uint8

const (
	ArmorNone ArmorType = iota
	ArmorLeather
	ArmorChainmail
	ArmorPlatemail
)

// Name returns the armor's display name.
func (a ArmorType) Name() string {
	switch a {
	case ArmorLeather:
		return "Leather Armor"
	case ArmorChainmail:
		return "Chainmail"
	case ArmorPlatemail:
		return "Platemail"
	default:
		return "Unknown"
	}
}

// Reduction returns the flat damage reduction this armor grants.
func (a ArmorType) Reduction() int {
	switch a {
	case ArmorLeather:
		return 1
	case ArmorChainmail:
		return 2
	case ArmorPlatemail:
		return 4
	default:
		return 0
	}
}

// ResolveDamage applies armor reduction to a base damage roll.
// Armor can never reduce a hit below 1.
func ResolveDamage(base int, armor ArmorType) int {
	if d := base - armor.Reduction(); d > 1 {
		return d
	}
	return 1
}

// ItemKind distinguishes the two equipment slots.
type ItemKind uint8

const (
	ItemWeapon ItemKind = iota
	ItemArmor
)

// Item is a piece of equipment: either a weapon or an armor, tagged by Kind.
type Item struct {
	Kind   ItemKind
	Weapon WeaponType // valid when Kind == ItemWeapon
	Armor  ArmorType  // valid when Kind == ItemArmor
}

// Name returns the item's display name.
func (it Item) Name() string {
	if it.Kind == ItemWeapon {
		return it.Weapon.Name()
	}
	return it.Armor.Name()
}

// Description returns the tooltip line shown under the item's name.
func (it Item) Description() string {
	if it.Kind == ItemWeapon {
		switch it.Weapon {
		case WeaponSword:
			return "Damage: 1-10"
		case WeaponAxe:
			return "Damage: 5-8"
		default:
			return "Damage: 7"
		}
	}
	switch it.Armor {
	case ArmorLeather:
		return "Reduces damage by 1"
	case ArmorChainmail:
		return "Reduces damage by 2"
	default:
		return "Reduces damage by 4"
	}
}

// RandomItem rolls loot: a coin flip between weapon and armor, then a uniform
// pick among the three of that kind.
func RandomItem(rng *rand.Rand) Item {
	if rng.IntN(2) == 0 {
		return Item{Kind: ItemWeapon, Weapon: WeaponType(rng.IntN(3))}
	}
	return Item{Kind: ItemArmor, Armor: ArmorType(1 + rng.IntN(3))}
}
