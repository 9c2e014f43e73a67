// Package stats holds character attributes and the skill registry
package stats

import "github.com/KirkDiggler/rpg-adventure/internal/pkg/names"

// Attribute names accepted by Increase
const (
	AttributeStrength     = "strength"
	AttributeDexterity    = "dexterity"
	AttributeIntelligence = "intelligence"
	AttributeVitality     = "vitality"
	AttributeAgility      = "agility"
)

// DefaultAttribute is the starting value of every attribute
const DefaultAttribute = 10

// Stats is the five-attribute block
type Stats struct {
	Strength     int
	Dexterity    int
	Intelligence int
	Vitality     int
	Agility      int
}

// New returns a stats block at the default starting values
func New() Stats {
	return Stats{
		Strength:     DefaultAttribute,
		Dexterity:    DefaultAttribute,
		Intelligence: DefaultAttribute,
		Vitality:     DefaultAttribute,
		Agility:      DefaultAttribute,
	}
}

// Increase adds amount to the named attribute. Unknown names are ignored
// and reported by the false return.
func (s *Stats) Increase(attribute string, amount int) bool {
	switch names.Fold(attribute) {
	case AttributeStrength:
		s.Strength += amount
	case AttributeDexterity:
		s.Dexterity += amount
	case AttributeIntelligence:
		s.Intelligence += amount
	case AttributeVitality:
		s.Vitality += amount
	case AttributeAgility:
		s.Agility += amount
	default:
		return false
	}
	return true
}

// Plus returns the attribute-wise sum of two blocks
func (s Stats) Plus(other Stats) Stats {
	return Stats{
		Strength:     s.Strength + other.Strength,
		Dexterity:    s.Dexterity + other.Dexterity,
		Intelligence: s.Intelligence + other.Intelligence,
		Vitality:     s.Vitality + other.Vitality,
		Agility:      s.Agility + other.Agility,
	}
}
