package item

// Restores is the vital payload of a consumable
type Restores struct {
	Health  float64
	Stamina float64
	Hunger  float64
	Thirst  float64
}

// Consumable is used up to restore vitals
type Consumable struct {
	Base
	restores Restores
}

// NewConsumable creates a stackable consumable
func NewConsumable(name, description string, weight float64, value int, restores Restores) *Consumable {
	return &Consumable{
		Base: newBase(BaseConfig{
			Name:        name,
			Description: description,
			Weight:      weight,
			Value:       value,
			Stackable:   true,
		}),
		restores: restores,
	}
}

// Kind returns KindConsumable
func (c *Consumable) Kind() Kind { return KindConsumable }

// Restores returns how much of each vital the consumable restores
func (c *Consumable) Restores() Restores { return c.restores }
