// Package v1alpha1 handles the adventure grpc service interface
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-adventure/internal/errors"
	"github.com/KirkDiggler/rpg-adventure/internal/services/adventure"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	AdventureService adventure.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.AdventureService == nil {
		return errors.InvalidArgument("adventure service is required")
	}
	return nil
}

// Handler implements the adventure gRPC service
type Handler struct {
	adventureService adventure.Service
}

var _ AdventureServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		adventureService: cfg.AdventureService,
	}, nil
}

// Start creates a character for the player unless one exists
func (h *Handler) Start(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := requireFields(req, fieldPlayerID); err != nil {
		return nil, err
	}

	output, err := h.adventureService.Start(ctx, &adventure.StartInput{
		PlayerID: stringField(req, fieldPlayerID),
		Name:     stringField(req, fieldName),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{
		"status":  statusMap(output.Status),
		"created": output.Created,
	})
}

// GetStatus returns the character sheet
func (h *Handler) GetStatus(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := requireFields(req, fieldPlayerID); err != nil {
		return nil, err
	}

	output, err := h.adventureService.GetStatus(ctx, &adventure.GetStatusInput{
		PlayerID: stringField(req, fieldPlayerID),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{"status": statusMap(output.Status)})
}

// Tick applies one survival tick to the character
func (h *Handler) Tick(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := requireFields(req, fieldPlayerID); err != nil {
		return nil, err
	}

	output, err := h.adventureService.Tick(ctx, &adventure.TickInput{
		PlayerID: stringField(req, fieldPlayerID),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{"vitals": vitalsMap(output.Vitals)})
}

// Move steps the character one tile
func (h *Handler) Move(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := requireFields(req, fieldPlayerID, fieldDirection); err != nil {
		return nil, err
	}

	output, err := h.adventureService.Move(ctx, &adventure.MoveInput{
		PlayerID:  stringField(req, fieldPlayerID),
		Direction: stringField(req, fieldDirection),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(moveMap(output.Result))
}

// Look reports the current encounter set
func (h *Handler) Look(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := requireFields(req, fieldPlayerID); err != nil {
		return nil, err
	}

	output, err := h.adventureService.Look(ctx, &adventure.LookInput{
		PlayerID: stringField(req, fieldPlayerID),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{"encounter": encounterMap(output.Encounter)})
}

// Take picks up a nearby item
func (h *Handler) Take(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := requireFields(req, fieldPlayerID, fieldItemName); err != nil {
		return nil, err
	}

	output, err := h.adventureService.Take(ctx, &adventure.TakeInput{
		PlayerID: stringField(req, fieldPlayerID),
		ItemName: stringField(req, fieldItemName),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(takeMap(output.Result))
}

// Attack strikes a nearby enemy
func (h *Handler) Attack(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := requireFields(req, fieldPlayerID, fieldTargetName); err != nil {
		return nil, err
	}

	output, err := h.adventureService.Attack(ctx, &adventure.AttackInput{
		PlayerID:   stringField(req, fieldPlayerID),
		TargetName: stringField(req, fieldTargetName),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(attackMap(output.Result))
}

// Talk greets a nearby NPC
func (h *Handler) Talk(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := requireFields(req, fieldPlayerID, fieldNPCName); err != nil {
		return nil, err
	}

	output, err := h.adventureService.Talk(ctx, &adventure.TalkInput{
		PlayerID: stringField(req, fieldPlayerID),
		NPCName:  stringField(req, fieldNPCName),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(talkMap(output.Result))
}

// AcceptQuest draws a new quest from the board
func (h *Handler) AcceptQuest(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := requireFields(req, fieldPlayerID); err != nil {
		return nil, err
	}

	output, err := h.adventureService.AcceptQuest(ctx, &adventure.AcceptQuestInput{
		PlayerID: stringField(req, fieldPlayerID),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{"quest": questMap(output.Quest)})
}

// ListQuests reports active and completed quests
func (h *Handler) ListQuests(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := requireFields(req, fieldPlayerID); err != nil {
		return nil, err
	}

	output, err := h.adventureService.ListQuests(ctx, &adventure.ListQuestsInput{
		PlayerID: stringField(req, fieldPlayerID),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{
		"active":    questList(output.Quests.Active),
		"completed": questList(output.Quests.Completed),
	})
}

// GetInventory reports carried and equipped items
func (h *Handler) GetInventory(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := requireFields(req, fieldPlayerID); err != nil {
		return nil, err
	}

	output, err := h.adventureService.GetInventory(ctx, &adventure.GetInventoryInput{
		PlayerID: stringField(req, fieldPlayerID),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(inventoryMap(output.Inventory))
}

// GetSkills reports skill progress
func (h *Handler) GetSkills(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := requireFields(req, fieldPlayerID); err != nil {
		return nil, err
	}

	output, err := h.adventureService.GetSkills(ctx, &adventure.GetSkillsInput{
		PlayerID: stringField(req, fieldPlayerID),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{"skills": skillList(output.Skills)})
}

// Craft turns materials into a recipe result
func (h *Handler) Craft(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := requireFields(req, fieldPlayerID, fieldRecipe); err != nil {
		return nil, err
	}

	output, err := h.adventureService.Craft(ctx, &adventure.CraftInput{
		PlayerID: stringField(req, fieldPlayerID),
		Recipe:   stringField(req, fieldRecipe),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(craftMap(output.Result))
}

// UseItem consumes an item from the inventory
func (h *Handler) UseItem(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := requireFields(req, fieldPlayerID, fieldItemName); err != nil {
		return nil, err
	}

	output, err := h.adventureService.UseItem(ctx, &adventure.UseItemInput{
		PlayerID: stringField(req, fieldPlayerID),
		ItemName: stringField(req, fieldItemName),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(useMap(output.Result))
}

// Equip moves an item into its slot
func (h *Handler) Equip(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := requireFields(req, fieldPlayerID, fieldItemName); err != nil {
		return nil, err
	}

	output, err := h.adventureService.Equip(ctx, &adventure.EquipInput{
		PlayerID: stringField(req, fieldPlayerID),
		ItemName: stringField(req, fieldItemName),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(equipMap(output.Result))
}

// Unequip returns a slot's item to the inventory
func (h *Handler) Unequip(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := requireFields(req, fieldPlayerID, fieldSlot); err != nil {
		return nil, err
	}

	output, err := h.adventureService.Unequip(ctx, &adventure.UnequipInput{
		PlayerID: stringField(req, fieldPlayerID),
		Slot:     stringField(req, fieldSlot),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(equipMap(output.Result))
}

// Buy purchases an item from a nearby merchant
func (h *Handler) Buy(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := requireFields(req, fieldPlayerID, fieldItemName, fieldMerchantName); err != nil {
		return nil, err
	}

	output, err := h.adventureService.Buy(ctx, &adventure.BuyInput{
		PlayerID:     stringField(req, fieldPlayerID),
		ItemName:     stringField(req, fieldItemName),
		MerchantName: stringField(req, fieldMerchantName),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(tradeMap(output.Result))
}

// Sell sells an item to a nearby merchant
func (h *Handler) Sell(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := requireFields(req, fieldPlayerID, fieldItemName, fieldMerchantName); err != nil {
		return nil, err
	}

	output, err := h.adventureService.Sell(ctx, &adventure.SellInput{
		PlayerID:     stringField(req, fieldPlayerID),
		ItemName:     stringField(req, fieldItemName),
		MerchantName: stringField(req, fieldMerchantName),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(tradeMap(output.Result))
}

// TradeWithPlayer moves an item between two players for gold
func (h *Handler) TradeWithPlayer(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := requireFields(req, fieldBuyerID, fieldSellerID, fieldItemName); err != nil {
		return nil, err
	}
	price, err := goldField(req, fieldPrice)
	if err != nil {
		return nil, err
	}

	output, err := h.adventureService.TradeWithPlayer(ctx, &adventure.TradeWithPlayerInput{
		BuyerID:  stringField(req, fieldBuyerID),
		SellerID: stringField(req, fieldSellerID),
		ItemName: stringField(req, fieldItemName),
		Price:    price,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(tradeMap(output.Result))
}
