package validator

import (
	"sort"

	"github.com/KirkDiggler/realm-forge/internal/domain/character"
	"github.com/KirkDiggler/realm-forge/internal/domain/rulebook"
	"github.com/KirkDiggler/realm-forge/internal/domain/shared"
)

// TalentSpend is the talent point cost of one purchase, tagged with the
// path the talent belongs to. General talents carry an empty path key.
type TalentSpend struct {
	PathKey string
	Points  int
}

// ValidateTalentAllocation checks a level's talent spending against the
// available points and the primary path minimum.
func (v *Validator) ValidateTalentAllocation(spends []TalentSpend, availableTP, minPrimary int, primaryPathKey string) *Result {
	result := NewResult()

	totalSpent := 0
	primarySpent := 0
	for _, spend := range spends {
		totalSpent += spend.Points
		if primaryPathKey != "" && spend.PathKey == primaryPathKey {
			primarySpent += spend.Points
		}
	}

	if totalSpent > availableTP {
		result.AddErrorf("Spent %d TP but only have %d", totalSpent, availableTP)
	}
	if primarySpent < minPrimary {
		result.AddErrorf("Must spend at least %d TP in primary path (spent %d)", minPrimary, primarySpent)
	}

	return result
}

// ValidateTalentChoice checks a single talent purchase's rank progression
// against the catalog.
func (v *Validator) ValidateTalentChoice(talentKey string, newRank, currentRank int) *Result {
	result := NewResult()

	if talentKey == "" {
		result.AddError("Talent ID is required")
		return result
	}
	talent, err := v.catalog.Talent(talentKey)
	if err != nil {
		result.AddErrorf("Unknown talent: %s", talentKey)
		return result
	}

	if newRank <= currentRank {
		result.AddErrorf("New rank (%d) must be higher than current (%d)", newRank, currentRank)
	}
	if newRank < 1 {
		result.AddErrorf("Rank must be at least 1 (got %d)", newRank)
	}
	if newRank > talent.MaxRank {
		result.AddErrorf("Talent %s max rank is %d (got %d)", talentKey, talent.MaxRank, newRank)
	}

	return result
}

var advancementLabels = map[rulebook.AdvancementType]string{
	rulebook.AdvancementSkillRank:   "Skill rank",
	rulebook.AdvancementTrainSkill:  "Training skill",
	rulebook.AdvancementProficiency: "Proficiency",
	rulebook.AdvancementLanguage:    "Language",
	rulebook.AdvancementInheritGold: "Inheriting gold",
}

// ValidateAdvancementChoice checks a single advancement point purchase
// against the character's current skills, languages, and proficiencies.
func (v *Validator) ValidateAdvancementChoice(choiceType rulebook.AdvancementType, target string, pointsSpent int, c *character.Character) *Result {
	result := NewResult()

	if !choiceType.IsValid() {
		result.AddErrorf("Unknown advancement type: %s", choiceType)
		return result
	}
	if cost := rulebook.AdvancementCost(choiceType); pointsSpent != cost {
		result.AddErrorf("%s costs %d AP (spent %d)", advancementLabels[choiceType], cost, pointsSpent)
	}

	switch choiceType {
	case rulebook.AdvancementSkillRank:
		skill := rulebook.ParseSkill(target)
		if skill == "" || !c.Skill(skill).Trained {
			result.AddErrorf("Cannot increase rank of untrained skill: %s", target)
		}
	case rulebook.AdvancementTrainSkill:
		skill := rulebook.ParseSkill(target)
		if skill == "" {
			result.AddErrorf("Unknown skill: %s", target)
		} else if c.Skill(skill).Trained {
			result.AddErrorf("Already trained in %s", target)
		}
	case rulebook.AdvancementProficiency:
		if c.HasProficiency(target) {
			result.AddWarningf("Already have proficiency: %s", target)
		}
	case rulebook.AdvancementLanguage:
		if c.HasLanguage(target) {
			result.AddErrorf("Already know language: %s", target)
		}
		if !rulebook.IsKnownLanguage(target) {
			result.AddWarningf("Unknown language: %s (may be valid)", target)
		}
	}

	return result
}

// ValidateAbilityIncrease checks the shape of a milestone ability
// increase: +2 to one attribute, or +1 to two distinct attributes, only
// at the levels that grant one.
func (v *Validator) ValidateAbilityIncrease(increases map[shared.Attribute]int, level int) *Result {
	result := NewResult()

	if !rulebook.GrantsAbilityIncrease(level) {
		if len(increases) > 0 {
			result.AddErrorf("Level %d does not grant ability increase", level)
		}
		return result
	}
	if len(increases) == 0 {
		result.AddErrorf("Level %d requires an ability increase choice", level)
		return result
	}

	total := 0
	for _, amount := range increases {
		total += amount
	}
	if total != 2 {
		result.AddErrorf("Ability increase must total +2 (got %d)", total)
	}

	switch len(increases) {
	case 1:
		for _, amount := range increases {
			if amount != 2 {
				result.AddError("Single ability increase must be +2")
			}
		}
	case 2:
		for _, amount := range increases {
			if amount != 1 {
				result.AddError("Two ability increases must each be +1")
				break
			}
		}
	default:
		result.AddErrorf("Can increase 1 or 2 abilities, not %d", len(increases))
	}

	var unknown []string
	for attr := range increases {
		if !attr.IsValid() {
			unknown = append(unknown, string(attr))
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		result.AddErrorf("Unknown ability: %s", name)
	}

	return result
}
