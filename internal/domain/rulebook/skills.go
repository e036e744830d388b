package rulebook

import (
	"strings"

	"github.com/KirkDiggler/realm-forge/internal/domain/shared"
)

type Skill string

const (
	SkillAcrobatics     Skill = "Acrobatics"
	SkillAnimalHandling Skill = "Animal Handling"
	SkillAppraisal      Skill = "Appraisal"
	SkillArcana         Skill = "Arcana"
	SkillAthletics      Skill = "Athletics"
	SkillCrafting       Skill = "Crafting"
	SkillDeception      Skill = "Deception"
	SkillDiplomacy      Skill = "Diplomacy"
	SkillHistory        Skill = "History"
	SkillInsight        Skill = "Insight"
	SkillIntimidation   Skill = "Intimidation"
	SkillInvestigation  Skill = "Investigation"
	SkillMedicine       Skill = "Medicine"
	SkillNature         Skill = "Nature"
	SkillPerception     Skill = "Perception"
	SkillPerformance    Skill = "Performance"
	SkillPersuasion     Skill = "Persuasion"
	SkillSleightOfHand  Skill = "Sleight of Hand"
	SkillStealth        Skill = "Stealth"
	SkillStreetwise     Skill = "Streetwise"
	SkillSurvival       Skill = "Survival"
)

// Skills lists every skill in sheet order.
var Skills = []Skill{
	SkillAcrobatics,
	SkillAnimalHandling,
	SkillAppraisal,
	SkillArcana,
	SkillAthletics,
	SkillCrafting,
	SkillDeception,
	SkillDiplomacy,
	SkillHistory,
	SkillInsight,
	SkillIntimidation,
	SkillInvestigation,
	SkillMedicine,
	SkillNature,
	SkillPerception,
	SkillPerformance,
	SkillPersuasion,
	SkillSleightOfHand,
	SkillStealth,
	SkillStreetwise,
	SkillSurvival,
}

// skillAttributes maps each skill to the attribute its checks use.
var skillAttributes = map[Skill]shared.Attribute{
	SkillAcrobatics:     shared.AttributeAgility,
	SkillAnimalHandling: shared.AttributeWisdom,
	SkillAppraisal:      shared.AttributeIntellect,
	SkillArcana:         shared.AttributeIntellect,
	SkillAthletics:      shared.AttributeMight,
	SkillCrafting:       shared.AttributeIntellect,
	SkillDeception:      shared.AttributeCharisma,
	SkillDiplomacy:      shared.AttributeCharisma,
	SkillHistory:        shared.AttributeIntellect,
	SkillInsight:        shared.AttributeWisdom,
	SkillIntimidation:   shared.AttributeCharisma,
	SkillInvestigation:  shared.AttributeIntellect,
	SkillMedicine:       shared.AttributeWisdom,
	SkillNature:         shared.AttributeIntellect,
	SkillPerception:     shared.AttributeWisdom,
	SkillPerformance:    shared.AttributeCharisma,
	SkillPersuasion:     shared.AttributeCharisma,
	SkillSleightOfHand:  shared.AttributeAgility,
	SkillStealth:        shared.AttributeAgility,
	SkillStreetwise:     shared.AttributeCharisma,
	SkillSurvival:       shared.AttributeWisdom,
}

// Attribute returns the attribute the skill's checks use.
func (s Skill) Attribute() shared.Attribute {
	return skillAttributes[s]
}

// IsValid reports whether the skill is one of the known skills.
func (s Skill) IsValid() bool {
	_, ok := skillAttributes[s]
	return ok
}

// ParseSkill matches a name to a skill, ignoring case.
// Returns "" if the name is not a known skill.
func ParseSkill(name string) Skill {
	for _, skill := range Skills {
		if strings.EqualFold(string(skill), name) {
			return skill
		}
	}
	return ""
}

// SkillNames returns every skill name, for choice option lists.
func SkillNames() []string {
	names := make([]string, len(Skills))
	for i, skill := range Skills {
		names[i] = string(skill)
	}
	return names
}
