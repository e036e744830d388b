package rulebook

// Feature is a narrative ability with a name and description text.
type Feature struct {
	Name        string `json:"name" toml:"name"`
	Description string `json:"description" toml:"description"`
}

// SkillBonus is a flat bonus to a specific skill.
type SkillBonus struct {
	Skill Skill `json:"skill" toml:"skill"`
	Bonus int   `json:"bonus" toml:"bonus"`
}

// ReputationModifier is a regional reputation adjustment.
type ReputationModifier struct {
	Region string `json:"region" toml:"region"`
	Value  int    `json:"value" toml:"value"`
}

// ChoiceSpec describes a pick-N-from-options selection an entity grants.
// A nil Options slice on a skill choice means any skill may be picked.
type ChoiceSpec struct {
	Count   int      `json:"count" toml:"count"`
	Options []string `json:"options" toml:"options"`
}
