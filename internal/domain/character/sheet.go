package character

// AbilityScore is one attribute line on the sheet. Total is always
// Roll + Race + Misc; Mod and SavingThrow derive from Total.
type AbilityScore struct {
	Roll        int `json:"roll"`
	Race        int `json:"race"`
	Misc        int `json:"misc"`
	Total       int `json:"total"`
	Mod         int `json:"mod"`
	SavingThrow int `json:"saving_throw"`
}

// Recalculate rederives the total and its dependent values.
func (a *AbilityScore) Recalculate() {
	a.Total = a.Roll + a.Race + a.Misc
	a.Mod = AbilityModifier(a.Total)
	a.SavingThrow = a.Mod
}

// AbilityModifier converts an ability total to its modifier,
// (total - 10) / 2 rounded down.
func AbilityModifier(total int) int {
	diff := total - 10
	if diff < 0 && diff%2 != 0 {
		return diff/2 - 1
	}
	return diff / 2
}

// DefenseBase is the flat base every character's defense starts from.
const DefenseBase = 9

// Defense is the armor line: base + agility mod + shield + misc.
type Defense struct {
	Base    int `json:"base"`
	Agility int `json:"agility"`
	Shield  int `json:"shield"`
	Misc    int `json:"misc"`
	Total   int `json:"total"`
}

// Health tracks hit points and lasting wounds.
type Health struct {
	Max     int `json:"max"`
	Current int `json:"current"`
	Wounds  int `json:"wounds"`
}

// Resource is a simple max/current pool, used for armor HP, life
// points, focus, and casting points.
type Resource struct {
	Max     int `json:"max"`
	Current int `json:"current"`
}

// PassiveBase is the flat base for passive perception and insight.
const PassiveBase = 10

// PassiveStat is a passive sense: base + skill total + misc.
type PassiveStat struct {
	Base  int `json:"base"`
	Skill int `json:"skill"`
	Misc  int `json:"misc"`
	Total int `json:"total"`
}

// AttackMod is a melee or ranged attack line: attribute mod + misc.
type AttackMod struct {
	Attr  int `json:"attr"`
	Misc  int `json:"misc"`
	Total int `json:"total"`
}

// SkillEntry is one skill line. Total is Mod + Rank + Misc; Mod comes
// from the skill's linked attribute.
type SkillEntry struct {
	Trained bool `json:"trained"`
	Mod     int  `json:"mod"`
	Rank    int  `json:"rank"`
	Misc    int  `json:"misc"`
	Total   int  `json:"total"`
}

// Attack is one entry in the attacks table.
type Attack struct {
	Name   string `json:"name"`
	Bonus  int    `json:"bonus"`
	Damage string `json:"damage"`
	Type   string `json:"type"`
	Range  string `json:"range"`
}

// KnownTalent is a talent the character owns, at its current rank.
// ChoiceData carries sub-selections like a fighting style or focused skill.
type KnownTalent struct {
	Key        string            `json:"key"`
	Name       string            `json:"name"`
	Rank       int               `json:"rank"`
	PathKey    string            `json:"path_key"`
	ChoiceData map[string]string `json:"choice_data,omitempty"`
}

// Spell is a crafted spell and its casting point cost.
type Spell struct {
	Name    string `json:"name"`
	CP      int    `json:"cp"`
	Details string `json:"details"`
}

// Spellcrafting is the casting block, populated only for spellcasting paths.
type Spellcrafting struct {
	SaveDC            int      `json:"save_dc"`
	AttackBonus       int      `json:"attack_bonus"`
	CraftingPointsMax int      `json:"crafting_points_max"`
	CastingPoints     Resource `json:"casting_points"`
	Spells            []Spell  `json:"spells,omitempty"`
}

// Inventory is carried gear.
type Inventory struct {
	Items       []string `json:"items"`
	TotalWeight string   `json:"total_weight"`
}

// PhysicalTraits is the appearance block.
type PhysicalTraits struct {
	Height       string `json:"height"`
	Weight       string `json:"weight"`
	Size         string `json:"size"`
	Age          string `json:"age"`
	CreatureType string `json:"creature_type"`
	Eyes         string `json:"eyes"`
	Skin         string `json:"skin"`
	Hair         string `json:"hair"`
}

// Personality is the roleplay block, filled from background tables.
type Personality struct {
	Traits string `json:"traits"`
	Ideal  string `json:"ideal"`
	Bond   string `json:"bond"`
	Flaw   string `json:"flaw"`
}

// Alignment is a descriptor plus the running modifier personality
// choices push around.
type Alignment struct {
	Value string `json:"value"`
	Mod   int    `json:"mod"`
}

// Reputation works like Alignment for the character's standing.
type Reputation struct {
	Value string `json:"value"`
	Mod   int    `json:"mod"`
}
