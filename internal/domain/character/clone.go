package character

import (
	"github.com/KirkDiggler/realm-forge/internal/domain/rulebook"
	"github.com/KirkDiggler/realm-forge/internal/domain/shared"
)

// Clone returns a deep copy of the character. The advancement engine
// applies a level up to a clone so the caller's snapshot is never left
// half modified.
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}
	out := *c

	out.AbilityScores = make(map[shared.Attribute]*AbilityScore, len(c.AbilityScores))
	for attr, score := range c.AbilityScores {
		copied := *score
		out.AbilityScores[attr] = &copied
	}

	out.Skills = make(map[rulebook.Skill]*SkillEntry, len(c.Skills))
	for skill, entry := range c.Skills {
		copied := *entry
		out.Skills[skill] = &copied
	}

	out.Paths = append([]string(nil), c.Paths...)
	out.Proficiencies = append([]string(nil), c.Proficiencies...)
	out.Languages = append([]string(nil), c.Languages...)
	out.Attacks = append([]Attack(nil), c.Attacks...)
	out.Features = append([]rulebook.Feature(nil), c.Features...)

	out.Talents = make([]*KnownTalent, len(c.Talents))
	for i, talent := range c.Talents {
		copied := *talent
		if talent.ChoiceData != nil {
			copied.ChoiceData = make(map[string]string, len(talent.ChoiceData))
			for k, v := range talent.ChoiceData {
				copied.ChoiceData[k] = v
			}
		}
		out.Talents[i] = &copied
	}

	out.Spellcrafting.Spells = append([]Spell(nil), c.Spellcrafting.Spells...)
	out.Inventory.Items = append([]string(nil), c.Inventory.Items...)

	return &out
}

// Clone returns a deep copy of the draft, including the character under
// construction and the queued choices.
func (d *Draft) Clone() *Draft {
	if d == nil {
		return nil
	}
	out := *d
	out.Character = d.Character.Clone()

	out.PendingChoices = make([]*PendingChoice, len(d.PendingChoices))
	for i, choice := range d.PendingChoices {
		copied := *choice
		copied.Options = append([]string(nil), choice.Options...)
		out.PendingChoices[i] = &copied
	}

	return &out
}
