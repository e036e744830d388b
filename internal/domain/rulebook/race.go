package rulebook

import "github.com/KirkDiggler/realm-forge/internal/domain/shared"

// FlexibleAdjustmentHumanCore marks the human two-stage ability adjustment:
// the player first picks a mode (+1 to one, or +2 to one and -1 to another),
// then the attribute(s).
const FlexibleAdjustmentHumanCore = "human_core"

// FlexibleAbilityAdjustment describes a player-chosen ability bonus a race grants.
// Type "human_core" queues a mode choice before the attribute choice; any other
// type queues a single +1 attribute pick.
type FlexibleAbilityAdjustment struct {
	Type        string `json:"type" toml:"type"`
	Description string `json:"description" toml:"description"`
}

// Race is a playable race.
type Race struct {
	Key         string `json:"key" toml:"key"`
	Name        string `json:"name" toml:"name"`
	Description string `json:"description" toml:"description"`

	CreatureType string      `json:"creature_type" toml:"creature_type"`
	Size         shared.Size `json:"size" toml:"size"`
	Speed        int         `json:"speed" toml:"speed"`

	Languages            []string `json:"languages" toml:"languages"`
	BonusLanguageChoices int      `json:"bonus_language_choices" toml:"bonus_language_choices"`

	// Darkvision range in feet, 0 for none.
	Darkvision int `json:"darkvision" toml:"darkvision"`

	// AbilityModifiers are fixed adjustments applied to the race component
	// of an ability score, e.g. {Agility: 2, Wisdom: 1}.
	AbilityModifiers map[shared.Attribute]int `json:"ability_modifiers" toml:"ability_modifiers"`

	FlexibleAbilityAdjustment *FlexibleAbilityAdjustment `json:"flexible_ability_adjustment,omitempty" toml:"flexible_ability_adjustment"`

	// SkillProficiencies are trained automatically at rank 1.
	SkillProficiencies []Skill `json:"skill_proficiencies" toml:"skill_proficiencies"`

	// SkillBonuses go to the skill's misc modifier without training it.
	SkillBonuses map[Skill]int `json:"skill_bonuses" toml:"skill_bonuses"`

	SkillChoices *ChoiceSpec `json:"skill_choices,omitempty" toml:"skill_choices"`

	Features []Feature `json:"features" toml:"features"`

	// Ancestries lists the ancestry keys valid for this race.
	Ancestries []string `json:"ancestries" toml:"ancestries"`
}

// Ancestry is a regional lineage within a race.
type Ancestry struct {
	Key         string `json:"key" toml:"key"`
	Name        string `json:"name" toml:"name"`
	Description string `json:"description" toml:"description"`

	// RaceKey is the race this ancestry belongs to.
	RaceKey string `json:"race_key" toml:"race_key"`
	Region  string `json:"region" toml:"region"`

	// AbilityModifiers stack on the race component, like the race's own.
	AbilityModifiers map[shared.Attribute]int `json:"ability_modifiers" toml:"ability_modifiers"`

	Languages       []string    `json:"languages" toml:"languages"`
	LanguageChoices *ChoiceSpec `json:"language_choices,omitempty" toml:"language_choices"`

	SkillProficiencies []Skill       `json:"skill_proficiencies" toml:"skill_proficiencies"`
	SkillBonuses       map[Skill]int `json:"skill_bonuses" toml:"skill_bonuses"`

	ToolProficiencies []string `json:"tool_proficiencies" toml:"tool_proficiencies"`

	Features []Feature `json:"features" toml:"features"`

	ReputationModifier *ReputationModifier `json:"reputation_modifier,omitempty" toml:"reputation_modifier"`

	// Suggested personality text for this ancestry's people.
	Personality string `json:"personality" toml:"personality"`
}
