package rulebook

import (
	"fmt"
	"sort"
	"strings"

	"github.com/KirkDiggler/realm-forge/internal/domain/shared"
)

// TalentCategory separates general talents from path-scoped ones.
type TalentCategory string

const (
	TalentCategoryGeneral TalentCategory = "general"
	TalentCategoryPath    TalentCategory = "path"
)

// PrereqLogic controls how multiple ability requirements combine.
type PrereqLogic string

const (
	PrereqAll PrereqLogic = "and"
	PrereqAny PrereqLogic = "or"
)

// DefaultMaxRank is the rank cap for talents that do not override it.
const DefaultMaxRank = 3

// TalentPrerequisites expresses what a character needs before buying a talent rank.
type TalentPrerequisites struct {
	// Abilities maps attributes to minimum totals.
	Abilities map[shared.Attribute]int `json:"abilities" toml:"abilities"`

	// Logic is how the ability minimums combine, all required or any one.
	Logic PrereqLogic `json:"logic" toml:"logic"`

	// LevelByRank maps a target rank to the character level it requires.
	LevelByRank map[int]int `json:"level_by_rank" toml:"level_by_rank"`

	// RequiredTalents must already be owned at any rank.
	RequiredTalents []string `json:"required_talents" toml:"required_talents"`

	// AllPathTalents marks a capstone: every other talent of the path must
	// be owned first. Enforced by the advancement engine, which has the
	// full path roster.
	AllPathTalents bool `json:"all_path_talents" toml:"all_path_talents"`
}

// Check reports whether the prerequisites are met for buying targetRank,
// with the failure reasons when they are not.
func (p *TalentPrerequisites) Check(totals map[shared.Attribute]int, level int, owned map[string]int, targetRank int) (bool, []string) {
	var failures []string

	if len(p.Abilities) > 0 {
		if p.Logic == PrereqAny {
			met := false
			for attr, minimum := range p.Abilities {
				if totals[attr] >= minimum {
					met = true
					break
				}
			}
			if !met {
				failures = append(failures, fmt.Sprintf("Need one of: %s", p.describeAbilities()))
			}
		} else {
			for _, attr := range shared.Attributes {
				minimum, ok := p.Abilities[attr]
				if !ok {
					continue
				}
				if totals[attr] < minimum {
					failures = append(failures, fmt.Sprintf("Need %s %d+, have %d", attr, minimum, totals[attr]))
				}
			}
		}
	}

	if required, ok := p.LevelByRank[targetRank]; ok && level < required {
		failures = append(failures, fmt.Sprintf("Rank %d requires level %d", targetRank, required))
	}

	for _, key := range p.RequiredTalents {
		if _, ok := owned[key]; !ok {
			failures = append(failures, fmt.Sprintf("Requires talent: %s", key))
		}
	}

	return len(failures) == 0, failures
}

func (p *TalentPrerequisites) describeAbilities() string {
	parts := make([]string, 0, len(p.Abilities))
	for _, attr := range shared.Attributes {
		if minimum, ok := p.Abilities[attr]; ok {
			parts = append(parts, fmt.Sprintf("%s %d+", attr, minimum))
		}
	}
	sort.Strings(parts)
	return strings.Join(parts, ", ")
}

// Talent is a specialized ability bought with talent points, one rank at a time.
type Talent struct {
	Key         string `json:"key" toml:"key"`
	Name        string `json:"name" toml:"name"`
	Description string `json:"description" toml:"description"`

	MaxRank int `json:"max_rank" toml:"max_rank"`

	// Ranks maps rank number to that rank's effect text, dense from 1..MaxRank.
	Ranks map[int]string `json:"ranks" toml:"ranks"`

	Prerequisites *TalentPrerequisites `json:"prerequisites,omitempty" toml:"prerequisites"`

	Category TalentCategory `json:"category" toml:"category"`
	PathKey  string         `json:"path_key" toml:"path_key"`

	// IsPrimary marks the main scaling talent of a path.
	IsPrimary bool `json:"is_primary" toml:"is_primary"`
	// IsCapstone marks the path's ultimate talent.
	IsCapstone bool `json:"is_capstone" toml:"is_capstone"`

	// RequiresChoice talents need a sub-selection when first bought,
	// e.g. picking a fighting style.
	RequiresChoice bool     `json:"requires_choice" toml:"requires_choice"`
	ChoiceType     string   `json:"choice_type" toml:"choice_type"`
	ChoiceOptions  []string `json:"choice_options" toml:"choice_options"`

	WeaponRequirement string `json:"weapon_requirement" toml:"weapon_requirement"`
}

// RankDescription returns the effect text for a specific rank.
func (t *Talent) RankDescription(rank int) string {
	return t.Ranks[rank]
}

// CumulativeDescription joins every rank's effect text up to and including the rank.
func (t *Talent) CumulativeDescription(upToRank int) string {
	var lines []string
	for r := 1; r <= upToRank; r++ {
		if desc, ok := t.Ranks[r]; ok {
			lines = append(lines, fmt.Sprintf("Rank %d: %s", r, desc))
		}
	}
	return strings.Join(lines, "\n")
}

// CanAcquire reports whether a character can buy the talent at targetRank,
// with the failure reasons when they cannot. owned maps talent keys to
// current ranks.
func (t *Talent) CanAcquire(totals map[shared.Attribute]int, level int, owned map[string]int, targetRank int) (bool, []string) {
	var failures []string

	currentRank := owned[t.Key]
	if targetRank > t.MaxRank {
		failures = append(failures, fmt.Sprintf("Max rank is %d", t.MaxRank))
	}
	if targetRank <= currentRank {
		failures = append(failures, fmt.Sprintf("Already at rank %d", currentRank))
	}

	if t.Prerequisites != nil {
		met, prereqFailures := t.Prerequisites.Check(totals, level, owned, targetRank)
		if !met {
			failures = append(failures, prereqFailures...)
		}
	}

	return len(failures) == 0, failures
}

// Cost returns the talent points needed to go from one rank to another.
// Each rank costs points equal to its number.
func (t *Talent) Cost(fromRank, toRank int) int {
	if toRank <= fromRank {
		return 0
	}
	total := 0
	for r := fromRank + 1; r <= toRank; r++ {
		total += TalentRankCost(r)
	}
	return total
}
