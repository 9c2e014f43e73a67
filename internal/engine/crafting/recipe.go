// Package crafting holds the recipe book and the material check
package crafting

import (
	"github.com/KirkDiggler/rpg-adventure/internal/entities/item"
	"github.com/KirkDiggler/rpg-adventure/internal/entities/stats"
	"github.com/KirkDiggler/rpg-adventure/internal/errors"
	"github.com/KirkDiggler/rpg-adventure/internal/pkg/names"
)

// MinCraftingLevel is the Crafting level every recipe requires
const MinCraftingLevel = 2

// ExperiencePerCraft is the Crafting experience granted per success
const ExperiencePerCraft = 25

// Recipe turns one unit of each named material into a fresh result
type Recipe struct {
	Name      string
	Result    item.Factory
	Materials []string
	MinSkill  map[stats.Skill]int
}

// Book is the closed set of known recipes
type Book struct {
	recipes []Recipe
}

// DefaultBook returns the two standard recipes
func DefaultBook() *Book {
	skill := map[stats.Skill]int{stats.SkillCrafting: MinCraftingLevel}
	return &Book{recipes: []Recipe{
		{
			Name:      item.NameHealthPotion,
			Result:    item.HealthPotion,
			Materials: []string{item.NameHerb, item.NameWater},
			MinSkill:  skill,
		},
		{
			Name:      item.NameWoodenSword,
			Result:    item.WoodenSword,
			Materials: []string{item.NameWood, item.NameString},
			MinSkill:  skill,
		},
	}}
}

// Lookup finds a recipe by result name, ignoring case
func (b *Book) Lookup(name string) (Recipe, error) {
	for _, r := range b.recipes {
		if names.Equal(r.Name, name) {
			return r, nil
		}
	}
	return Recipe{}, errors.WithReasonf(errors.ReasonUnknownRecipe, "no recipe for %q", name)
}

// Recipes returns every known recipe
func (b *Book) Recipes() []Recipe {
	out := make([]Recipe, len(b.recipes))
	copy(out, b.recipes)
	return out
}

// SkillLevels reports the effective level of a skill
type SkillLevels func(stats.Skill) int

// MaterialCounter reports how many items of a name are held
type MaterialCounter interface {
	CountByName(name string) int
}

// Check verifies the skill gate first, then that at least one of each
// named material is held.
func (r Recipe) Check(levels SkillLevels, held MaterialCounter) error {
	for skill, required := range r.MinSkill {
		if have := levels(skill); have < required {
			return errors.WithReasonf(errors.ReasonInsufficientSkillLevel,
				"%s needs %s level %d, you have %d", r.Name, skill, required, have).
				WithMeta("skill", skill.String()).
				WithMeta("required", required)
		}
	}

	for _, material := range r.Materials {
		if held.CountByName(material) < 1 {
			return errors.WithReasonf(errors.ReasonMissingMaterial, "you need %s to craft %s", material, r.Name).
				WithMeta("material", material)
		}
	}

	return nil
}
