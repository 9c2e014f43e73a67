package character

import (
	"context"

	"github.com/KirkDiggler/rpg-adventure/internal/engine/crafting"
	"github.com/KirkDiggler/rpg-adventure/internal/entities/stats"
	"github.com/KirkDiggler/rpg-adventure/internal/errors"
)

// CraftResult is the outcome of crafting
type CraftResult struct {
	Item              ItemView
	MaterialsConsumed []string
	SkillLevelsGained int
}

// Craft turns one unit of each recipe material into the recipe result.
// The Crafting level gate is checked before the recipe is resolved.
func (c *Character) Craft(ctx context.Context, recipeName string) (*CraftResult, error) {
	if have := c.SkillLevel(stats.SkillCrafting); have < crafting.MinCraftingLevel {
		return nil, errors.WithReasonf(errors.ReasonInsufficientSkillLevel,
			"you need at least level %d in crafting, you have %d", crafting.MinCraftingLevel, have).
			WithMeta("skill", stats.SkillCrafting.String())
	}

	recipe, err := c.recipes.Lookup(recipeName)
	if err != nil {
		return nil, err
	}
	if err := recipe.Check(c.SkillLevel, c.inventory); err != nil {
		return nil, err
	}

	result := recipe.Result()
	if !c.fitsAfterCrafting(recipe, result.Weight()) {
		return nil, errors.CapacityExceeded("no room for the crafted item").
			WithMeta("item", result.Name())
	}

	consumed := make([]string, 0, len(recipe.Materials))
	for _, material := range recipe.Materials {
		removed, err := c.inventory.RemoveOneByName(material)
		if err != nil {
			return nil, errors.Wrap(err, "material disappeared while crafting")
		}
		consumed = append(consumed, removed.Name())
	}

	if err := c.inventory.Add(result); err != nil {
		return nil, errors.Wrap(err, "failed to store crafted item")
	}

	gained := c.AddSkillExperience(stats.SkillCrafting, crafting.ExperiencePerCraft)
	c.publish(ctx, EventItemCrafted, c)

	return &CraftResult{
		Item:              NewItemView(result),
		MaterialsConsumed: consumed,
		SkillLevelsGained: gained,
	}, nil
}

// fitsAfterCrafting reports whether the result fits once materials are gone
func (c *Character) fitsAfterCrafting(recipe crafting.Recipe, resultWeight float64) bool {
	freed := 0.0
	for _, material := range recipe.Materials {
		if held, ok := c.inventory.Find(material); ok {
			freed += held.Weight()
		}
	}
	return c.inventory.CurrentWeight()-freed+resultWeight <= c.inventory.MaxWeight()+1e-9
}
