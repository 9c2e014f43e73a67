package quest

import "github.com/KirkDiggler/rpg-adventure/internal/entities/item"

// Status is the lifecycle state of an ObjectiveQuest
type Status string

// Objective quest states
const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Objective is one counted goal of an ObjectiveQuest
type Objective struct {
	Description string
	Required    int
	current     int
}

// NewObjective creates an objective with no progress
func NewObjective(description string, required int) *Objective {
	return &Objective{Description: description, Required: required}
}

// Current returns the progress so far
func (o *Objective) Current() int { return o.current }

// IsComplete reports whether the required amount is reached
func (o *Objective) IsComplete() bool { return o.current >= o.Required }

// UpdateProgress adds amount, capped at the required amount
func (o *Objective) UpdateProgress(amount int) {
	o.SetProgress(o.current + amount)
}

// SetProgress sets progress, clamped to [0, Required]
func (o *Objective) SetProgress(amount int) {
	switch {
	case amount < 0:
		o.current = 0
	case amount > o.Required:
		o.current = o.Required
	default:
		o.current = amount
	}
}

// ObjectiveQuest completes only when every objective is complete. It is a
// standalone model; characters track single-counter Quests.
type ObjectiveQuest struct {
	Name             string
	Description      string
	ExperienceReward int
	Repeatable       bool
	LevelRequirement int

	status     Status
	objectives []*Objective
	rewards    []item.Item
}

// NewObjectiveQuest creates a quest in the NotStarted state
func NewObjectiveQuest(name, description string, experienceReward int) *ObjectiveQuest {
	return &ObjectiveQuest{
		Name:             name,
		Description:      description,
		ExperienceReward: experienceReward,
		LevelRequirement: 1,
		status:           StatusNotStarted,
	}
}

// Status returns the lifecycle state
func (q *ObjectiveQuest) Status() Status { return q.status }

// AddObjective appends a goal
func (q *ObjectiveQuest) AddObjective(o *Objective) {
	q.objectives = append(q.objectives, o)
}

// Objectives returns the goals in order
func (q *ObjectiveQuest) Objectives() []*Objective {
	out := make([]*Objective, len(q.objectives))
	copy(out, q.objectives)
	return out
}

// AddReward attaches an item paid on completion
func (q *ObjectiveQuest) AddReward(it item.Item) {
	q.rewards = append(q.rewards, it)
}

// Rewards returns the items paid on completion
func (q *ObjectiveQuest) Rewards() []item.Item {
	out := make([]item.Item, len(q.rewards))
	copy(out, q.rewards)
	return out
}

// AllObjectivesComplete reports whether every goal is met
func (q *ObjectiveQuest) AllObjectivesComplete() bool {
	for _, o := range q.objectives {
		if !o.IsComplete() {
			return false
		}
	}
	return true
}

// Start moves NotStarted to InProgress
func (q *ObjectiveQuest) Start() bool {
	if q.status != StatusNotStarted {
		return false
	}
	q.status = StatusInProgress
	return true
}

// Complete moves InProgress to Completed when every objective is met
func (q *ObjectiveQuest) Complete() bool {
	if q.status != StatusInProgress || !q.AllObjectivesComplete() {
		return false
	}
	q.status = StatusCompleted
	return true
}

// Fail moves InProgress to Failed
func (q *ObjectiveQuest) Fail() bool {
	if q.status != StatusInProgress {
		return false
	}
	q.status = StatusFailed
	return true
}

// UpdateObjective advances one objective while the quest is in progress
// and completes the quest once all objectives are met. It returns true on
// the call that completes the quest.
func (q *ObjectiveQuest) UpdateObjective(index, amount int) bool {
	if q.status != StatusInProgress || index < 0 || index >= len(q.objectives) {
		return false
	}
	q.objectives[index].UpdateProgress(amount)
	return q.Complete()
}
