// Package adventure defines the interface the command layer drives: one
// method per player action
package adventure

//go:generate mockgen -destination=mock/mock_service.go -package=adventuremock github.com/KirkDiggler/rpg-adventure/internal/services/adventure Service

import (
	"context"

	"github.com/KirkDiggler/rpg-adventure/internal/engine/character"
)

// Service defines the interface for adventure operations. Every action
// except Start and TradeWithPlayer creates the player's character on first
// use, named after the player ID.
type Service interface {
	// Lifecycle
	Start(ctx context.Context, input *StartInput) (*StartOutput, error)
	GetStatus(ctx context.Context, input *GetStatusInput) (*GetStatusOutput, error)
	Tick(ctx context.Context, input *TickInput) (*TickOutput, error)
	TickAll(ctx context.Context, input *TickAllInput) (*TickAllOutput, error)

	// World
	Move(ctx context.Context, input *MoveInput) (*MoveOutput, error)
	Look(ctx context.Context, input *LookInput) (*LookOutput, error)
	Take(ctx context.Context, input *TakeInput) (*TakeOutput, error)
	Attack(ctx context.Context, input *AttackInput) (*AttackOutput, error)
	Talk(ctx context.Context, input *TalkInput) (*TalkOutput, error)

	// Quests
	AcceptQuest(ctx context.Context, input *AcceptQuestInput) (*AcceptQuestOutput, error)
	ListQuests(ctx context.Context, input *ListQuestsInput) (*ListQuestsOutput, error)

	// Inventory, skills and gear
	GetInventory(ctx context.Context, input *GetInventoryInput) (*GetInventoryOutput, error)
	GetSkills(ctx context.Context, input *GetSkillsInput) (*GetSkillsOutput, error)
	Craft(ctx context.Context, input *CraftInput) (*CraftOutput, error)
	UseItem(ctx context.Context, input *UseItemInput) (*UseItemOutput, error)
	Equip(ctx context.Context, input *EquipInput) (*EquipOutput, error)
	Unequip(ctx context.Context, input *UnequipInput) (*UnequipOutput, error)

	// Trading
	Buy(ctx context.Context, input *BuyInput) (*BuyOutput, error)
	Sell(ctx context.Context, input *SellInput) (*SellOutput, error)
	TradeWithPlayer(ctx context.Context, input *TradeWithPlayerInput) (*TradeWithPlayerOutput, error)
}

// Lifecycle types

// StartInput defines the request for creating a character
type StartInput struct {
	PlayerID string
	Name     string // Optional, defaults to PlayerID
}

// StartOutput defines the response for creating a character
type StartOutput struct {
	Status  character.Status
	Created bool // false when the player already had a character
}

// GetStatusInput defines the request for the character sheet
type GetStatusInput struct {
	PlayerID string
}

// GetStatusOutput defines the response for the character sheet
type GetStatusOutput struct {
	Status character.Status
}

// TickInput defines the request for ticking one character
type TickInput struct {
	PlayerID string
}

// TickOutput defines the response for ticking one character
type TickOutput struct {
	Vitals character.Vitals
}

// TickAllInput defines the request for ticking every character
type TickAllInput struct{}

// TickAllOutput defines the response for ticking every character
type TickAllOutput struct {
	Ticked int
}

// World types

// MoveInput defines the request for moving one tile
type MoveInput struct {
	PlayerID  string
	Direction string
}

// MoveOutput defines the response for moving one tile
type MoveOutput struct {
	Result *character.MoveResult
}

// LookInput defines the request for the encounter set
type LookInput struct {
	PlayerID string
}

// LookOutput defines the response for the encounter set
type LookOutput struct {
	Encounter character.EncounterView
}

// TakeInput defines the request for picking up an item
type TakeInput struct {
	PlayerID string
	ItemName string
}

// TakeOutput defines the response for picking up an item
type TakeOutput struct {
	Result *character.TakeResult
}

// AttackInput defines the request for attacking an enemy
type AttackInput struct {
	PlayerID   string
	TargetName string
}

// AttackOutput defines the response for attacking an enemy
type AttackOutput struct {
	Result *character.AttackResult
}

// TalkInput defines the request for talking to an NPC
type TalkInput struct {
	PlayerID string
	NPCName  string
}

// TalkOutput defines the response for talking to an NPC
type TalkOutput struct {
	Result *character.TalkResult
}

// Quest types

// AcceptQuestInput defines the request for drawing a quest
type AcceptQuestInput struct {
	PlayerID string
}

// AcceptQuestOutput defines the response for drawing a quest
type AcceptQuestOutput struct {
	Quest character.QuestView
}

// ListQuestsInput defines the request for the quest log
type ListQuestsInput struct {
	PlayerID string
}

// ListQuestsOutput defines the response for the quest log
type ListQuestsOutput struct {
	Quests character.QuestLog
}

// Inventory, skill and gear types

// GetInventoryInput defines the request for the inventory
type GetInventoryInput struct {
	PlayerID string
}

// GetInventoryOutput defines the response for the inventory
type GetInventoryOutput struct {
	Inventory character.InventoryView
}

// GetSkillsInput defines the request for skill progress
type GetSkillsInput struct {
	PlayerID string
}

// GetSkillsOutput defines the response for skill progress
type GetSkillsOutput struct {
	Skills []character.SkillView
}

// CraftInput defines the request for crafting
type CraftInput struct {
	PlayerID string
	Recipe   string
}

// CraftOutput defines the response for crafting
type CraftOutput struct {
	Result *character.CraftResult
}

// UseItemInput defines the request for consuming an item
type UseItemInput struct {
	PlayerID string
	ItemName string
}

// UseItemOutput defines the response for consuming an item
type UseItemOutput struct {
	Result *character.UseResult
}

// EquipInput defines the request for equipping an item
type EquipInput struct {
	PlayerID string
	ItemName string
}

// EquipOutput defines the response for equipping an item
type EquipOutput struct {
	Result *character.EquipResult
}

// UnequipInput defines the request for clearing a slot
type UnequipInput struct {
	PlayerID string
	Slot     string
}

// UnequipOutput defines the response for clearing a slot
type UnequipOutput struct {
	Result *character.EquipResult
}

// Trading types

// BuyInput defines the request for buying from a nearby merchant
type BuyInput struct {
	PlayerID     string
	ItemName     string
	MerchantName string
}

// BuyOutput defines the response for buying from a nearby merchant
type BuyOutput struct {
	Result *character.TradeResult
}

// SellInput defines the request for selling to a nearby merchant
type SellInput struct {
	PlayerID     string
	ItemName     string
	MerchantName string
}

// SellOutput defines the response for selling to a nearby merchant
type SellOutput struct {
	Result *character.TradeResult
}

// TradeWithPlayerInput defines the request for a player-to-player trade.
// Both players must already exist.
type TradeWithPlayerInput struct {
	BuyerID  string
	SellerID string
	ItemName string
	Price    int
}

// TradeWithPlayerOutput defines the response for a player-to-player trade
type TradeWithPlayerOutput struct {
	Result *character.TradeResult
}
