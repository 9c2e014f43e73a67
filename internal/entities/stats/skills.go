package stats

import "github.com/KirkDiggler/rpg-adventure/internal/pkg/names"

// Skill is one of the closed set of trainable skills
type Skill string

// Skills
const (
	SkillCombat   Skill = "combat"
	SkillStealth  Skill = "stealth"
	SkillMedicine Skill = "medicine"
	SkillCrafting Skill = "crafting"
	SkillTrading  Skill = "trading"
	SkillSurvival Skill = "survival"
)

// StartingSkillLevel is the level every skill begins at
const StartingSkillLevel = 1

// AllSkills returns the skills in display order
func AllSkills() []Skill {
	return []Skill{SkillCombat, SkillStealth, SkillMedicine, SkillCrafting, SkillTrading, SkillSurvival}
}

// String returns the string representation of the skill
func (s Skill) String() string {
	return string(s)
}

// IsValid checks if the skill is part of the closed set
func (s Skill) IsValid() bool {
	for _, known := range AllSkills() {
		if s == known {
			return true
		}
	}
	return false
}

// SkillFromString resolves a skill name case-insensitively
func SkillFromString(s string) (Skill, bool) {
	skill := Skill(names.Fold(s))
	if skill.IsValid() {
		return skill, true
	}
	return "", false
}

// Progress is the level and carried experience of one skill
type Progress struct {
	Level      int
	Experience int
}

// Skills is the single skill registry of a character
type Skills struct {
	progress map[Skill]*Progress
}

// NewSkills returns every skill at the starting level with no experience
func NewSkills() *Skills {
	s := &Skills{progress: make(map[Skill]*Progress, len(AllSkills()))}
	for _, skill := range AllSkills() {
		s.progress[skill] = &Progress{Level: StartingSkillLevel}
	}
	return s
}

// Level returns the trained level of a skill
func (s *Skills) Level(skill Skill) int {
	if p, ok := s.progress[skill]; ok {
		return p.Level
	}
	return 0
}

// Get returns a copy of a skill's progress
func (s *Skills) Get(skill Skill) Progress {
	if p, ok := s.progress[skill]; ok {
		return *p
	}
	return Progress{}
}

// AddExperience grants experience to a skill and applies level-ups.
// It returns the number of levels gained.
func (s *Skills) AddExperience(skill Skill, amount int) int {
	p, ok := s.progress[skill]
	if !ok || amount <= 0 {
		return 0
	}
	return Advance(&p.Level, &p.Experience, amount)
}

// Snapshot returns a copy of every skill's progress
func (s *Skills) Snapshot() map[Skill]Progress {
	out := make(map[Skill]Progress, len(s.progress))
	for skill, p := range s.progress {
		out[skill] = *p
	}
	return out
}

// Threshold is the experience needed to leave the given level
func Threshold(level int) int {
	return level * 100
}

// Advance adds amount to experience and applies the leveling cascade:
// while experience reaches level*100 the level increments and
// (newLevel-1)*100 is subtracted. Returns the number of levels gained.
// Characters and skills level identically through this function.
func Advance(level, experience *int, amount int) int {
	if amount > 0 {
		*experience += amount
	}

	gained := 0
	for *experience >= Threshold(*level) {
		*level++
		*experience -= Threshold(*level - 1)
		gained++
	}
	return gained
}
