package rulebook

import "github.com/KirkDiggler/realm-forge/internal/domain/shared"

// Role describes what a path contributes to a party.
type Role string

const (
	RoleStriker    Role = "striker"
	RoleDefender   Role = "defender"
	RoleHealer     Role = "healer"
	RoleSpecialist Role = "specialist"
	RoleInfluencer Role = "influencer"
)

// Default prerequisite thresholds for taking a path as primary.
const (
	DefaultPrimaryMinimum   = 15
	DefaultSecondaryMinimum = 13
)

// PathPrerequisite expresses the ability scores needed to take a path.
// The primary attribute minimum always applies; the secondary check
// (at least one listed attribute at its minimum) applies only when the
// path is taken as the character's primary path.
type PathPrerequisite struct {
	PrimaryAttribute shared.Attribute `json:"primary_attribute" toml:"primary_attribute"`
	PrimaryMinimum   int              `json:"primary_minimum" toml:"primary_minimum"`

	SecondaryAttributes []shared.Attribute `json:"secondary_attributes" toml:"secondary_attributes"`
	SecondaryMinimum    int                `json:"secondary_minimum" toml:"secondary_minimum"`
}

// Check reports whether the ability totals meet the prerequisite.
// asPrimary=false relaxes the check to the primary attribute only.
func (p *PathPrerequisite) Check(totals map[shared.Attribute]int, asPrimary bool) bool {
	if totals[p.PrimaryAttribute] < p.PrimaryMinimum {
		return false
	}
	if !asPrimary {
		return true
	}
	for _, attr := range p.SecondaryAttributes {
		if totals[attr] >= p.SecondaryMinimum {
			return true
		}
	}
	return false
}

// Path is a heroic calling, the main axis of advancement.
type Path struct {
	Key         string `json:"key" toml:"key"`
	Name        string `json:"name" toml:"name"`
	Description string `json:"description" toml:"description"`

	Prerequisites *PathPrerequisite `json:"prerequisites,omitempty" toml:"prerequisites"`

	// PrimaryBonus is applied to the misc component of ability scores,
	// only when this path is the character's primary path.
	PrimaryBonus map[shared.Attribute]int `json:"primary_bonus" toml:"primary_bonus"`

	// TalentPointsAttribute drives talent points per level (modifier + 5).
	TalentPointsAttribute shared.Attribute `json:"talent_points_attribute" toml:"talent_points_attribute"`

	AttackBonusMelee  int `json:"attack_bonus_melee" toml:"attack_bonus_melee"`
	AttackBonusRanged int `json:"attack_bonus_ranged" toml:"attack_bonus_ranged"`

	Role Role `json:"role" toml:"role"`

	// Spellcasting marks paths that grant spellcrafting points on level up.
	Spellcasting bool `json:"spellcasting" toml:"spellcasting"`

	Features []Feature `json:"features" toml:"features"`

	// Talents lists the talent keys members of this path may buy.
	Talents []string `json:"talents" toml:"talents"`
}

// CheckPrerequisites reports whether the ability totals qualify for the path.
func (p *Path) CheckPrerequisites(totals map[shared.Attribute]int, asPrimary bool) bool {
	if p.Prerequisites == nil {
		return true
	}
	return p.Prerequisites.Check(totals, asPrimary)
}

// TalentPointsPerLevel is the talent points gained each level:
// the talent-points attribute's modifier + 5, or 5 when unset.
func (p *Path) TalentPointsPerLevel(modifiers map[shared.Attribute]int) int {
	if p.TalentPointsAttribute == shared.AttributeNone {
		return 5
	}
	return modifiers[p.TalentPointsAttribute] + 5
}
