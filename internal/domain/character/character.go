package character

import (
	"time"

	"github.com/KirkDiggler/realm-forge/internal/domain/rulebook"
	"github.com/KirkDiggler/realm-forge/internal/domain/shared"
)

// Character is the full sheet for a Realm of Warriors character.
// Mutation happens through the Builder during creation and the
// advancement engine afterwards; Recalculate rederives every
// computed column from the primitive ones.
type Character struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`
	Name    string `json:"name"`
	Player  string `json:"player"`

	RaceKey       string   `json:"race"`
	AncestryKey   string   `json:"ancestry"`
	ProfessionKey string   `json:"profession"`
	DutyKey       string   `json:"duty,omitempty"`
	BackgroundKey string   `json:"background"`
	PrimaryPath   string   `json:"primary_path"`
	Paths         []string `json:"paths"`

	Level           int    `json:"level"`
	TotalExperience int    `json:"total_experience"`
	StoredAdvance   string `json:"stored_advance,omitempty"`

	AbilityScores map[shared.Attribute]*AbilityScore `json:"ability_scores"`

	Defense    Defense `json:"defense"`
	Speed      int     `json:"speed"`
	Initiative int     `json:"initiative"`

	Health     Health   `json:"health"`
	ArmorHP    Resource `json:"armor_hp"`
	LifePoints Resource `json:"life_points"`
	Focus      Resource `json:"focus"`

	PassivePerception PassiveStat `json:"passive_perception"`
	PassiveInsight    PassiveStat `json:"passive_insight"`

	AttackModsMelee  AttackMod `json:"attack_mods_melee"`
	AttackModsRanged AttackMod `json:"attack_mods_ranged"`

	Skills map[rulebook.Skill]*SkillEntry `json:"skills"`

	Proficiencies []string `json:"proficiencies"`
	Languages     []string `json:"languages"`

	Attacks  []Attack           `json:"attacks,omitempty"`
	Talents  []*KnownTalent     `json:"talents"`
	Features []rulebook.Feature `json:"features"`

	Spellcrafting Spellcrafting `json:"spellcrafting"`

	Gold      int       `json:"gold"`
	Inventory Inventory `json:"inventory"`

	Notes          string         `json:"notes,omitempty"`
	PhysicalTraits PhysicalTraits `json:"physical_traits"`
	Personality    Personality    `json:"personality"`
	Alignment      Alignment      `json:"alignment"`
	Reputation     Reputation     `json:"reputation"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCharacter returns a level 1 character with every sheet row
// present and zeroed.
func NewCharacter(id string) *Character {
	c := &Character{
		ID:            id,
		Level:         1,
		AbilityScores: make(map[shared.Attribute]*AbilityScore, len(shared.Attributes)),
		Skills:        make(map[rulebook.Skill]*SkillEntry, len(rulebook.Skills)),
		Defense:       Defense{Base: DefenseBase},
		PassivePerception: PassiveStat{
			Base: PassiveBase,
		},
		PassiveInsight: PassiveStat{
			Base: PassiveBase,
		},
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	for _, attr := range shared.Attributes {
		c.AbilityScores[attr] = &AbilityScore{Roll: 10, Total: 10}
	}
	for _, skill := range rulebook.Skills {
		c.Skills[skill] = &SkillEntry{}
	}
	return c
}

// Ability returns the score line for an attribute, creating the row if
// a stored sheet is missing it.
func (c *Character) Ability(attr shared.Attribute) *AbilityScore {
	if c.AbilityScores == nil {
		c.AbilityScores = make(map[shared.Attribute]*AbilityScore, len(shared.Attributes))
	}
	score, ok := c.AbilityScores[attr]
	if !ok {
		score = &AbilityScore{Roll: 10, Total: 10}
		c.AbilityScores[attr] = score
	}
	return score
}

// Skill returns the entry for a skill, creating the row if a stored
// sheet is missing it.
func (c *Character) Skill(skill rulebook.Skill) *SkillEntry {
	if c.Skills == nil {
		c.Skills = make(map[rulebook.Skill]*SkillEntry, len(rulebook.Skills))
	}
	entry, ok := c.Skills[skill]
	if !ok {
		entry = &SkillEntry{}
		c.Skills[skill] = entry
	}
	return entry
}

// AbilityTotals returns each attribute's current total.
func (c *Character) AbilityTotals() map[shared.Attribute]int {
	totals := make(map[shared.Attribute]int, len(shared.Attributes))
	for _, attr := range shared.Attributes {
		totals[attr] = c.Ability(attr).Total
	}
	return totals
}

// AbilityMods returns each attribute's current modifier.
func (c *Character) AbilityMods() map[shared.Attribute]int {
	mods := make(map[shared.Attribute]int, len(shared.Attributes))
	for _, attr := range shared.Attributes {
		mods[attr] = c.Ability(attr).Mod
	}
	return mods
}

// TrainedSkills returns the trained skills in sheet order.
func (c *Character) TrainedSkills() []rulebook.Skill {
	var out []rulebook.Skill
	for _, skill := range rulebook.Skills {
		if entry, ok := c.Skills[skill]; ok && entry.Trained {
			out = append(out, skill)
		}
	}
	return out
}

// Talent returns the owned talent with the given key, or nil.
func (c *Character) Talent(key string) *KnownTalent {
	for _, talent := range c.Talents {
		if talent.Key == key {
			return talent
		}
	}
	return nil
}

// TalentRanks maps each owned talent key to its current rank.
func (c *Character) TalentRanks() map[string]int {
	ranks := make(map[string]int, len(c.Talents))
	for _, talent := range c.Talents {
		ranks[talent.Key] = talent.Rank
	}
	return ranks
}

// HasLanguage reports whether the character already knows the language.
func (c *Character) HasLanguage(language string) bool {
	for _, known := range c.Languages {
		if known == language {
			return true
		}
	}
	return false
}

// AddLanguage records a language, ignoring duplicates.
func (c *Character) AddLanguage(language string) {
	if language == "" || c.HasLanguage(language) {
		return
	}
	c.Languages = append(c.Languages, language)
}

// HasProficiency reports whether the character already has the proficiency.
func (c *Character) HasProficiency(proficiency string) bool {
	for _, known := range c.Proficiencies {
		if known == proficiency {
			return true
		}
	}
	return false
}

// AddProficiency records a proficiency, ignoring duplicates.
func (c *Character) AddProficiency(proficiency string) {
	if proficiency == "" || c.HasProficiency(proficiency) {
		return
	}
	c.Proficiencies = append(c.Proficiencies, proficiency)
}

// HasPath reports whether the character has joined the path.
func (c *Character) HasPath(pathKey string) bool {
	for _, key := range c.Paths {
		if key == pathKey {
			return true
		}
	}
	return false
}

// AddExperience adds earned XP and returns the new total. Levels are
// claimed separately through the advancement engine.
func (c *Character) AddExperience(xp int) int {
	if xp > 0 {
		c.TotalExperience += xp
	}
	return c.TotalExperience
}

// PendingLevels is how many level-ups the character's XP entitles but
// has not yet taken.
func (c *Character) PendingLevels() int {
	earned := rulebook.LevelForXP(c.TotalExperience)
	if earned <= c.Level {
		return 0
	}
	return earned - c.Level
}

// NextLevelAt returns the total XP needed for the character's next level.
func (c *Character) NextLevelAt() int {
	return rulebook.XPForLevel(c.Level + 1)
}

// AddFeature appends a feature line to the sheet.
func (c *Character) AddFeature(name, text string) {
	c.Features = append(c.Features, rulebook.Feature{Name: name, Description: text})
}
