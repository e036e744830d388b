package rulebook

// Duty is a specialization within a profession. A profession that defines
// duties requires one to be picked at selection time.
type Duty struct {
	Key         string `json:"key" toml:"key"`
	Name        string `json:"name" toml:"name"`
	Description string `json:"description" toml:"description"`

	SuggestedPaths []string `json:"suggested_paths" toml:"suggested_paths"`

	ArmorProficiencies  []string `json:"armor_proficiencies" toml:"armor_proficiencies"`
	WeaponProficiencies []string `json:"weapon_proficiencies" toml:"weapon_proficiencies"`

	ToolChoices  *ChoiceSpec `json:"tool_choices,omitempty" toml:"tool_choices"`
	SkillChoices *ChoiceSpec `json:"skill_choices,omitempty" toml:"skill_choices"`

	EquipmentPack   string `json:"equipment_pack" toml:"equipment_pack"`
	GoldAlternative int    `json:"gold_alternative" toml:"gold_alternative"`
}

// Profession is a character's trade, the main source of starting hit points
// and proficiencies.
type Profession struct {
	Key         string `json:"key" toml:"key"`
	Name        string `json:"name" toml:"name"`
	Description string `json:"description" toml:"description"`

	// BaseHP plus the Endurance modifier is the level 1 maximum HP.
	BaseHP int `json:"base_hp" toml:"base_hp"`

	Feature *Feature `json:"feature,omitempty" toml:"feature"`

	ArmorProficiencies  []string `json:"armor_proficiencies" toml:"armor_proficiencies"`
	WeaponProficiencies []string `json:"weapon_proficiencies" toml:"weapon_proficiencies"`
	ToolProficiencies   []string `json:"tool_proficiencies" toml:"tool_proficiencies"`

	ToolChoices  *ChoiceSpec `json:"tool_choices,omitempty" toml:"tool_choices"`
	SkillChoices *ChoiceSpec `json:"skill_choices,omitempty" toml:"skill_choices"`

	SuggestedPaths []string `json:"suggested_paths" toml:"suggested_paths"`

	Duties []Duty `json:"duties" toml:"duties"`

	EquipmentPack   string `json:"equipment_pack" toml:"equipment_pack"`
	GoldAlternative int    `json:"gold_alternative" toml:"gold_alternative"`
}

// Duty returns the named duty, or nil if the profession does not define it.
func (p *Profession) Duty(key string) *Duty {
	for i := range p.Duties {
		if p.Duties[i].Key == key {
			return &p.Duties[i]
		}
	}
	return nil
}

// DutyKeys returns the keys of every duty the profession defines.
func (p *Profession) DutyKeys() []string {
	keys := make([]string, len(p.Duties))
	for i, d := range p.Duties {
		keys[i] = d.Key
	}
	return keys
}

// RequiresDuty reports whether a duty must be chosen with this profession.
func (p *Profession) RequiresDuty() bool {
	return len(p.Duties) > 0
}
