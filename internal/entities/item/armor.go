package item

// ArmorType names the body location an armor piece protects
type ArmorType string

// Armor types
const (
	ArmorTypeHead   ArmorType = "head"
	ArmorTypeChest  ArmorType = "chest"
	ArmorTypeLegs   ArmorType = "legs"
	ArmorTypeFeet   ArmorType = "feet"
	ArmorTypeShield ArmorType = "shield"
)

// Armor is a protective item
type Armor struct {
	Base
	defense    float64
	durability float64
	armorType  ArmorType
}

// ArmorConfig describes a new armor piece
type ArmorConfig struct {
	BaseConfig
	Defense    float64
	Durability float64
	Type       ArmorType
}

// NewArmor creates an armor piece
func NewArmor(cfg ArmorConfig) *Armor {
	return &Armor{
		Base:       newBase(cfg.BaseConfig),
		defense:    cfg.Defense,
		durability: clampDurability(cfg.Durability),
		armorType:  cfg.Type,
	}
}

// Kind returns KindArmor
func (a *Armor) Kind() Kind { return KindArmor }

// Defense returns the damage mitigation value
func (a *Armor) Defense() float64 { return a.defense }

// Durability returns the remaining durability
func (a *Armor) Durability() float64 { return a.durability }

// Type returns the armor type
func (a *Armor) Type() ArmorType { return a.armorType }

// Wear reduces durability, flooring at zero
func (a *Armor) Wear(amount float64) {
	a.durability = clampDurability(a.durability - amount)
}

// Repair restores durability, capped at MaxDurability
func (a *Armor) Repair(amount float64) {
	a.durability = clampDurability(a.durability + amount)
}
