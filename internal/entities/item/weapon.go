package item

// WeaponType classifies weapons
type WeaponType string

// Weapon types
const (
	WeaponTypeMelee     WeaponType = "melee"
	WeaponTypeRanged    WeaponType = "ranged"
	WeaponTypeExplosive WeaponType = "explosive"
)

// MaxDurability is the ceiling for weapon and armor durability
const MaxDurability = 100.0

// Weapon is an item that deals damage when it occupies the weapon slot
type Weapon struct {
	Base
	damage     float64
	durability float64
	weaponType WeaponType
}

// WeaponConfig describes a new weapon
type WeaponConfig struct {
	BaseConfig
	Damage     float64
	Durability float64
	Type       WeaponType
}

// NewWeapon creates a weapon
func NewWeapon(cfg WeaponConfig) *Weapon {
	return &Weapon{
		Base:       newBase(cfg.BaseConfig),
		damage:     cfg.Damage,
		durability: clampDurability(cfg.Durability),
		weaponType: cfg.Type,
	}
}

// Kind returns KindWeapon
func (w *Weapon) Kind() Kind { return KindWeapon }

// Damage returns the damage dealt per hit
func (w *Weapon) Damage() float64 { return w.damage }

// Durability returns the remaining durability
func (w *Weapon) Durability() float64 { return w.durability }

// Type returns the weapon type
func (w *Weapon) Type() WeaponType { return w.weaponType }

// Wear reduces durability, flooring at zero
func (w *Weapon) Wear(amount float64) {
	w.durability = clampDurability(w.durability - amount)
}

// Repair restores durability, capped at MaxDurability
func (w *Weapon) Repair(amount float64) {
	w.durability = clampDurability(w.durability + amount)
}

func clampDurability(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > MaxDurability:
		return MaxDurability
	default:
		return v
	}
}
