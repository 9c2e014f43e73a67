package character

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-adventure/internal/entities/quest"
	"github.com/KirkDiggler/rpg-adventure/internal/entities/stats"
	"github.com/KirkDiggler/rpg-adventure/internal/errors"
)

// Report is the progression side effects of one action
type Report struct {
	ExperienceGained int
	LevelsGained     int
	QuestsAdvanced   []QuestView
	QuestsCompleted  []QuestCompletion
}

// QuestCompletion records a quest payout. Rewards that did not fit in the
// inventory are listed in RewardsLost and are not retried.
type QuestCompletion struct {
	Quest          QuestView
	RewardsGranted []string
	RewardsLost    []string
}

func (r *Report) merge(other Report) {
	r.ExperienceGained += other.ExperienceGained
	r.LevelsGained += other.LevelsGained
	r.QuestsAdvanced = append(r.QuestsAdvanced, other.QuestsAdvanced...)
	r.QuestsCompleted = append(r.QuestsCompleted, other.QuestsCompleted...)
}

// AddExperience grants experience and applies the leveling cascade. Every
// level gained resets health and stamina to full.
func (c *Character) AddExperience(ctx context.Context, amount int) Report {
	if amount <= 0 {
		return Report{}
	}

	gained := stats.Advance(&c.level, &c.experience, amount)
	if gained > 0 {
		c.vitals.Health = MaxVital
		c.vitals.Stamina = MaxVital
		for i := 0; i < gained; i++ {
			c.publish(ctx, EventLevelUp, c)
		}
	}

	return Report{ExperienceGained: amount, LevelsGained: gained}
}

// AddSkillExperience grants experience to one skill, cascading like
// character leveling. Returns the number of skill levels gained.
func (c *Character) AddSkillExperience(skill stats.Skill, amount int) int {
	return c.skills.AddExperience(skill, amount)
}

// AcceptQuest draws a new quest from the quest source. At most three quests
// may be active at once.
func (c *Character) AcceptQuest(_ context.Context) (QuestView, error) {
	if len(c.activeQuests) >= MaxActiveQuests {
		return QuestView{}, errors.WithReasonf(errors.ReasonQuestSlotsFull,
			"you can only have %d active quests", MaxActiveQuests)
	}
	if c.quests == nil {
		return QuestView{}, errors.FailedPrecondition("no quest giver available")
	}

	q, err := c.quests.Draw()
	if err != nil {
		return QuestView{}, errors.Wrap(err, "failed to draw quest")
	}

	c.activeQuests = append(c.activeQuests, q)
	return NewQuestView(q), nil
}

// advanceQuests adds one unit of progress to every active quest of the
// given type and pays out any that complete
func (c *Character) advanceQuests(ctx context.Context, questType quest.Type) Report {
	var report Report

	for _, q := range c.ActiveQuests() {
		if q.Type() != questType || q.IsCompleted() {
			continue
		}

		completedNow := q.UpdateProgress(1)
		report.QuestsAdvanced = append(report.QuestsAdvanced, NewQuestView(q))
		if completedNow {
			report.merge(c.completeQuest(ctx, q))
		}
	}

	return report
}

func (c *Character) completeQuest(ctx context.Context, q *quest.Quest) Report {
	for i, active := range c.activeQuests {
		if active == q {
			c.activeQuests = append(c.activeQuests[:i], c.activeQuests[i+1:]...)
			break
		}
	}
	c.completedQuests = append(c.completedQuests, q)

	report := c.AddExperience(ctx, q.ExperienceReward())

	completion := QuestCompletion{Quest: NewQuestView(q)}
	for _, reward := range q.ItemRewards() {
		if err := c.inventory.Add(reward); err != nil {
			completion.RewardsLost = append(completion.RewardsLost, reward.Name())
			slog.Warn("quest reward lost",
				"character_id", c.id,
				"quest_id", q.GetID(),
				"item", reward.Name(),
				"error", err)
			continue
		}
		completion.RewardsGranted = append(completion.RewardsGranted, reward.Name())
	}
	report.QuestsCompleted = append(report.QuestsCompleted, completion)

	c.publish(ctx, EventQuestCompleted, q)
	return report
}
