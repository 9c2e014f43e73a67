package v1alpha1

import (
	"math"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-adventure/internal/engine/character"
	"github.com/KirkDiggler/rpg-adventure/internal/entities/stats"
	"github.com/KirkDiggler/rpg-adventure/internal/errors"
)

// Request field names
const (
	fieldPlayerID     = "player_id"
	fieldName         = "name"
	fieldDirection    = "direction"
	fieldItemName     = "item_name"
	fieldTargetName   = "target_name"
	fieldNPCName      = "npc_name"
	fieldRecipe       = "recipe"
	fieldMerchantName = "merchant_name"
	fieldSlot         = "slot"
	fieldBuyerID      = "buyer_id"
	fieldSellerID     = "seller_id"
	fieldPrice        = "price"
)

func stringField(req *structpb.Struct, name string) string {
	return req.GetFields()[name].GetStringValue()
}

// maxGold bounds gold amounts accepted from requests
const maxGold = math.MaxInt32

// goldField reads a required whole, non-negative gold amount. JSON numbers
// arrive as doubles, so fractions and values past maxGold are rejected
// instead of truncated.
func goldField(req *structpb.Struct, name string) (int, error) {
	vb := errors.NewValidationBuilder()
	v, ok := req.GetFields()[name]
	num, isNum := v.GetKind().(*structpb.Value_NumberValue)
	switch {
	case !ok:
		vb.RequiredField(name)
	case !isNum:
		vb.InvalidField(name, "must be a number")
	case math.IsNaN(num.NumberValue) || math.Trunc(num.NumberValue) != num.NumberValue:
		vb.InvalidField(name, "must be a whole number")
	case num.NumberValue < 0 || num.NumberValue > maxGold:
		vb.Fieldf(name, "must be between %d and %d", 0, maxGold)
	}
	if err := vb.Build(); err != nil {
		return 0, errors.ToGRPCError(err)
	}
	return int(num.NumberValue), nil
}

// requireFields fails with INVALID_ARGUMENT for each missing or blank string field
func requireFields(req *structpb.Struct, names ...string) error {
	vb := errors.NewValidationBuilder()
	for _, name := range names {
		errors.ValidateRequired(name, stringField(req, name), vb)
	}
	if err := vb.Build(); err != nil {
		return errors.ToGRPCError(err)
	}
	return nil
}

func respond(m map[string]any) (*structpb.Struct, error) {
	out, err := structpb.NewStruct(m)
	if err != nil {
		return nil, errors.ToGRPCError(errors.Wrap(err, "failed to encode response"))
	}
	return out, nil
}

func stringList(in []string) []any {
	out := make([]any, 0, len(in))
	for _, s := range in {
		out = append(out, s)
	}
	return out
}

func vitalsMap(v character.Vitals) map[string]any {
	return map[string]any{
		"health":  v.Health,
		"stamina": v.Stamina,
		"hunger":  v.Hunger,
		"thirst":  v.Thirst,
	}
}

func positionMap(p character.Position) map[string]any {
	return map[string]any{"x": p.X, "y": p.Y}
}

func statsMap(s stats.Stats) map[string]any {
	return map[string]any{
		"strength":     s.Strength,
		"dexterity":    s.Dexterity,
		"intelligence": s.Intelligence,
		"vitality":     s.Vitality,
		"agility":      s.Agility,
	}
}

func itemMap(it character.ItemView) map[string]any {
	return map[string]any{
		"name":        it.Name,
		"description": it.Description,
		"kind":        string(it.Kind),
		"weight":      it.Weight,
		"value":       it.Value,
	}
}

func itemList(items []character.ItemView) []any {
	out := make([]any, 0, len(items))
	for _, it := range items {
		out = append(out, itemMap(it))
	}
	return out
}

func npcList(npcs []character.NPCView) []any {
	out := make([]any, 0, len(npcs))
	for _, n := range npcs {
		out = append(out, map[string]any{"id": n.ID, "name": n.Name, "health": n.Health})
	}
	return out
}

func encounterMap(e character.EncounterView) map[string]any {
	return map[string]any{
		"position": positionMap(e.Position),
		"items":    itemList(e.Items),
		"npcs":     npcList(e.NPCs),
		"enemies":  npcList(e.Enemies),
	}
}

func questMap(q character.QuestView) map[string]any {
	return map[string]any{
		"id":                q.ID,
		"title":             q.Title,
		"description":       q.Description,
		"type":              q.Type.String(),
		"current":           q.Current,
		"target":            q.Target,
		"experience_reward": q.ExperienceReward,
		"completed":         q.Completed,
		"rewards":           stringList(q.Rewards),
	}
}

func questList(quests []character.QuestView) []any {
	out := make([]any, 0, len(quests))
	for _, q := range quests {
		out = append(out, questMap(q))
	}
	return out
}

func reportMap(r character.Report) map[string]any {
	completed := make([]any, 0, len(r.QuestsCompleted))
	for _, c := range r.QuestsCompleted {
		completed = append(completed, map[string]any{
			"quest":           questMap(c.Quest),
			"rewards_granted": stringList(c.RewardsGranted),
			"rewards_lost":    stringList(c.RewardsLost),
		})
	}

	return map[string]any{
		"experience_gained": r.ExperienceGained,
		"levels_gained":     r.LevelsGained,
		"quests_advanced":   questList(r.QuestsAdvanced),
		"quests_completed":  completed,
	}
}

func statusMap(s character.Status) map[string]any {
	return map[string]any{
		"id":                 s.ID,
		"name":               s.Name,
		"vitals":             vitalsMap(s.Vitals),
		"level":              s.Level,
		"experience":         s.Experience,
		"experience_to_next": s.ExperienceToNext,
		"gold":               s.Gold,
		"position":           positionMap(s.Position),
		"stats":              statsMap(s.Stats),
		"created_at":         s.CreatedAt.Unix(),
	}
}

func inventoryMap(inv character.InventoryView) map[string]any {
	equipped := make(map[string]any, len(inv.Equipped))
	for slot, name := range inv.Equipped {
		equipped[slot.String()] = name
	}

	return map[string]any{
		"items":      itemList(inv.Items),
		"weight":     inv.Weight,
		"max_weight": inv.MaxWeight,
		"gold":       inv.Gold,
		"equipped":   equipped,
	}
}

func skillList(skills []character.SkillView) []any {
	out := make([]any, 0, len(skills))
	for _, s := range skills {
		out = append(out, map[string]any{
			"skill":      s.Skill.String(),
			"level":      s.Level,
			"experience": s.Experience,
			"bonus":      s.Bonus,
		})
	}
	return out
}

func moveMap(r *character.MoveResult) map[string]any {
	return map[string]any{
		"position":      positionMap(r.Position),
		"stamina_spent": r.StaminaSpent,
		"encounter":     encounterMap(r.Encounter),
		"report":        reportMap(r.Report),
	}
}

func attackMap(r *character.AttackResult) map[string]any {
	return map[string]any{
		"target_id":         r.TargetID,
		"target_name":       r.TargetName,
		"damage":            r.Damage,
		"target_health":     r.TargetHealth,
		"defeated":          r.Defeated,
		"weapon_name":       r.WeaponName,
		"weapon_durability": r.WeaponDurability,
		"report":            reportMap(r.Report),
	}
}

func tradeMap(r *character.TradeResult) map[string]any {
	return map[string]any{
		"item":                itemMap(r.Item),
		"price":               r.Price,
		"gold":                r.Gold,
		"counterparty_id":     r.CounterpartyID,
		"skill_levels_gained": r.SkillLevelsGained,
	}
}

func equipMap(r *character.EquipResult) map[string]any {
	return map[string]any{
		"item": itemMap(r.Item),
		"slot": r.Slot.String(),
	}
}

func takeMap(r *character.TakeResult) map[string]any {
	return map[string]any{
		"item":   itemMap(r.Item),
		"report": reportMap(r.Report),
	}
}

func talkMap(r *character.TalkResult) map[string]any {
	return map[string]any{
		"npc_id":   r.NPCID,
		"npc_name": r.NPCName,
		"greeting": r.Greeting,
		"report":   reportMap(r.Report),
	}
}

func craftMap(r *character.CraftResult) map[string]any {
	return map[string]any{
		"item":                itemMap(r.Item),
		"materials_consumed":  stringList(r.MaterialsConsumed),
		"skill_levels_gained": r.SkillLevelsGained,
	}
}

func useMap(r *character.UseResult) map[string]any {
	return map[string]any{
		"item":   itemMap(r.Item),
		"vitals": vitalsMap(r.Vitals),
	}
}
