package adventure

import (
	"context"

	"github.com/KirkDiggler/rpg-adventure/internal/engine/character"
	"github.com/KirkDiggler/rpg-adventure/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-adventure/internal/errors"
	"github.com/KirkDiggler/rpg-adventure/internal/services/adventure"
)

// World

// Move steps the character one tile
func (o *Orchestrator) Move(ctx context.Context, input *adventure.MoveInput) (*adventure.MoveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validatePlayerID(input.PlayerID); err != nil {
		return nil, err
	}

	out := &adventure.MoveOutput{}
	err := o.withPlayer(ctx, input.PlayerID, func(c *character.Character) error {
		result, err := c.Move(ctx, input.Direction)
		out.Result = result
		return err
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Look returns the current encounter set
func (o *Orchestrator) Look(ctx context.Context, input *adventure.LookInput) (*adventure.LookOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validatePlayerID(input.PlayerID); err != nil {
		return nil, err
	}

	out := &adventure.LookOutput{}
	err := o.withPlayer(ctx, input.PlayerID, func(c *character.Character) error {
		out.Encounter = c.LookAround()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Take picks up a nearby item
func (o *Orchestrator) Take(ctx context.Context, input *adventure.TakeInput) (*adventure.TakeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", input.PlayerID, vb)
	errors.ValidateRequired("item_name", input.ItemName, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out := &adventure.TakeOutput{}
	err := o.withPlayer(ctx, input.PlayerID, func(c *character.Character) error {
		result, err := c.TakeItem(ctx, input.ItemName)
		out.Result = result
		return err
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Attack strikes a nearby enemy
func (o *Orchestrator) Attack(ctx context.Context, input *adventure.AttackInput) (*adventure.AttackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", input.PlayerID, vb)
	errors.ValidateRequired("target_name", input.TargetName, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out := &adventure.AttackOutput{}
	err := o.withPlayer(ctx, input.PlayerID, func(c *character.Character) error {
		result, err := c.Attack(ctx, input.TargetName)
		out.Result = result
		return err
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Talk greets a nearby NPC
func (o *Orchestrator) Talk(ctx context.Context, input *adventure.TalkInput) (*adventure.TalkOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", input.PlayerID, vb)
	errors.ValidateRequired("npc_name", input.NPCName, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out := &adventure.TalkOutput{}
	err := o.withPlayer(ctx, input.PlayerID, func(c *character.Character) error {
		result, err := c.TalkTo(ctx, input.NPCName)
		out.Result = result
		return err
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Quests

// AcceptQuest draws a new quest
func (o *Orchestrator) AcceptQuest(ctx context.Context, input *adventure.AcceptQuestInput) (*adventure.AcceptQuestOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validatePlayerID(input.PlayerID); err != nil {
		return nil, err
	}

	out := &adventure.AcceptQuestOutput{}
	err := o.withPlayer(ctx, input.PlayerID, func(c *character.Character) error {
		view, err := c.AcceptQuest(ctx)
		out.Quest = view
		return err
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// ListQuests returns the quest log
func (o *Orchestrator) ListQuests(ctx context.Context, input *adventure.ListQuestsInput) (*adventure.ListQuestsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validatePlayerID(input.PlayerID); err != nil {
		return nil, err
	}

	out := &adventure.ListQuestsOutput{}
	err := o.withPlayer(ctx, input.PlayerID, func(c *character.Character) error {
		out.Quests = c.ShowQuests()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Inventory, skills and gear

// GetInventory returns carried and equipped items
func (o *Orchestrator) GetInventory(ctx context.Context, input *adventure.GetInventoryInput) (*adventure.GetInventoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validatePlayerID(input.PlayerID); err != nil {
		return nil, err
	}

	out := &adventure.GetInventoryOutput{}
	err := o.withPlayer(ctx, input.PlayerID, func(c *character.Character) error {
		out.Inventory = c.ShowInventory()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// GetSkills returns skill progress
func (o *Orchestrator) GetSkills(ctx context.Context, input *adventure.GetSkillsInput) (*adventure.GetSkillsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validatePlayerID(input.PlayerID); err != nil {
		return nil, err
	}

	out := &adventure.GetSkillsOutput{}
	err := o.withPlayer(ctx, input.PlayerID, func(c *character.Character) error {
		out.Skills = c.ShowSkills()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Craft crafts a recipe
func (o *Orchestrator) Craft(ctx context.Context, input *adventure.CraftInput) (*adventure.CraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", input.PlayerID, vb)
	errors.ValidateRequired("recipe", input.Recipe, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out := &adventure.CraftOutput{}
	err := o.withPlayer(ctx, input.PlayerID, func(c *character.Character) error {
		result, err := c.Craft(ctx, input.Recipe)
		out.Result = result
		return err
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// UseItem consumes an item
func (o *Orchestrator) UseItem(ctx context.Context, input *adventure.UseItemInput) (*adventure.UseItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", input.PlayerID, vb)
	errors.ValidateRequired("item_name", input.ItemName, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out := &adventure.UseItemOutput{}
	err := o.withPlayer(ctx, input.PlayerID, func(c *character.Character) error {
		result, err := c.UseItem(ctx, input.ItemName)
		out.Result = result
		return err
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Equip moves an item into its slot
func (o *Orchestrator) Equip(ctx context.Context, input *adventure.EquipInput) (*adventure.EquipOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", input.PlayerID, vb)
	errors.ValidateRequired("item_name", input.ItemName, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out := &adventure.EquipOutput{}
	err := o.withPlayer(ctx, input.PlayerID, func(c *character.Character) error {
		result, err := c.Equip(ctx, input.ItemName)
		out.Result = result
		return err
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Unequip clears a slot back into the inventory
func (o *Orchestrator) Unequip(ctx context.Context, input *adventure.UnequipInput) (*adventure.UnequipOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", input.PlayerID, vb)
	slot, ok := equipment.EquipmentSlotFromString(input.Slot)
	if !ok {
		vb.InvalidField("slot", "must be one of weapon, head, chest, legs, feet, shield")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out := &adventure.UnequipOutput{}
	err := o.withPlayer(ctx, input.PlayerID, func(c *character.Character) error {
		result, err := c.Unequip(ctx, slot)
		out.Result = result
		return err
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
