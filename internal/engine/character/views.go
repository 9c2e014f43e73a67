package character

import (
	"time"

	"github.com/KirkDiggler/rpg-adventure/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-adventure/internal/entities/item"
	"github.com/KirkDiggler/rpg-adventure/internal/entities/quest"
	"github.com/KirkDiggler/rpg-adventure/internal/entities/stats"
)

// ItemView is a display snapshot of an item
type ItemView struct {
	Name        string
	Description string
	Kind        item.Kind
	Weight      float64
	Value       int
}

// NewItemView snapshots an item
func NewItemView(it item.Item) ItemView {
	return ItemView{
		Name:        it.Name(),
		Description: it.Description(),
		Kind:        it.Kind(),
		Weight:      it.Weight(),
		Value:       it.Value(),
	}
}

func itemViews(items []item.Item) []ItemView {
	out := make([]ItemView, 0, len(items))
	for _, it := range items {
		out = append(out, NewItemView(it))
	}
	return out
}

// NPCView is a display snapshot of a nearby character
type NPCView struct {
	ID     string
	Name   string
	Health float64
}

func npcViews(chars []*Character) []NPCView {
	out := make([]NPCView, 0, len(chars))
	for _, ch := range chars {
		out = append(out, NPCView{ID: ch.id, Name: ch.name, Health: ch.vitals.Health})
	}
	return out
}

// EncounterView is what a character sees around it
type EncounterView struct {
	Position Position
	Items    []ItemView
	NPCs     []NPCView
	Enemies  []NPCView
}

// QuestView is a display snapshot of a quest
type QuestView struct {
	ID               string
	Title            string
	Description      string
	Type             quest.Type
	Current          int
	Target           int
	ExperienceReward int
	Completed        bool
	Rewards          []string
}

// NewQuestView snapshots a quest
func NewQuestView(q *quest.Quest) QuestView {
	rewards := make([]string, 0, len(q.ItemRewards()))
	for _, it := range q.ItemRewards() {
		rewards = append(rewards, it.Name())
	}
	return QuestView{
		ID:               q.GetID(),
		Title:            q.Title(),
		Description:      q.Description(),
		Type:             q.Type(),
		Current:          q.Current(),
		Target:           q.Target(),
		ExperienceReward: q.ExperienceReward(),
		Completed:        q.IsCompleted(),
		Rewards:          rewards,
	}
}

// QuestLog lists active and completed quests
type QuestLog struct {
	Active    []QuestView
	Completed []QuestView
}

// InventoryView lists carried and equipped items
type InventoryView struct {
	Items     []ItemView
	Weight    float64
	MaxWeight float64
	Gold      int
	Equipped  map[equipment.EquipmentSlot]string
}

// SkillView is the progress of one skill
type SkillView struct {
	Skill      stats.Skill
	Level      int
	Experience int
	Bonus      int
}

// Status is the character sheet
type Status struct {
	ID               string
	Name             string
	Vitals           Vitals
	Level            int
	Experience       int
	ExperienceToNext int
	Gold             int
	Position         Position
	Stats            stats.Stats
	CreatedAt        time.Time
}

// LookAround reports the current encounter set
func (c *Character) LookAround() EncounterView {
	return EncounterView{
		Position: c.position,
		Items:    itemViews(c.nearby.Items),
		NPCs:     npcViews(c.nearby.NPCs),
		Enemies:  npcViews(c.nearby.Enemies),
	}
}

// ShowQuests reports active and completed quests
func (c *Character) ShowQuests() QuestLog {
	log := QuestLog{
		Active:    make([]QuestView, 0, len(c.activeQuests)),
		Completed: make([]QuestView, 0, len(c.completedQuests)),
	}
	for _, q := range c.activeQuests {
		log.Active = append(log.Active, NewQuestView(q))
	}
	for _, q := range c.completedQuests {
		log.Completed = append(log.Completed, NewQuestView(q))
	}
	return log
}

// ShowInventory reports carried items, gold and equipped gear
func (c *Character) ShowInventory() InventoryView {
	equipped := make(map[equipment.EquipmentSlot]string)
	for slot, it := range c.equipment.All() {
		equipped[slot] = it.Name()
	}
	return InventoryView{
		Items:     itemViews(c.inventory.Items()),
		Weight:    c.inventory.CurrentWeight(),
		MaxWeight: c.inventory.MaxWeight(),
		Gold:      c.gold,
		Equipped:  equipped,
	}
}

// ShowSkills reports every skill in display order
func (c *Character) ShowSkills() []SkillView {
	bonuses := c.equipment.SkillBonuses()
	out := make([]SkillView, 0, len(stats.AllSkills()))
	for _, skill := range stats.AllSkills() {
		p := c.skills.Get(skill)
		out = append(out, SkillView{
			Skill:      skill,
			Level:      p.Level,
			Experience: p.Experience,
			Bonus:      bonuses[skill],
		})
	}
	return out
}

// Status reports the character sheet
func (c *Character) Status() Status {
	return Status{
		ID:               c.id,
		Name:             c.name,
		Vitals:           c.vitals,
		Level:            c.level,
		Experience:       c.experience,
		ExperienceToNext: stats.Threshold(c.level) - c.experience,
		Gold:             c.gold,
		Position:         c.position,
		Stats:            c.Stats(),
		CreatedAt:        c.createdAt,
	}
}
