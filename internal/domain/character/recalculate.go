package character

import (
	"github.com/KirkDiggler/realm-forge/internal/domain/rulebook"
	"github.com/KirkDiggler/realm-forge/internal/domain/shared"
)

// Recalculate rederives every computed column on the sheet from the
// primitive ones. It is idempotent; running it twice changes nothing.
//
// Max HP is rederived from the profession only at level 1. Past that
// it is cumulative, grown by level-ups, and only current HP is kept
// in bounds here.
func (c *Character) Recalculate(catalog *rulebook.Catalog) {
	for _, attr := range shared.Attributes {
		c.Ability(attr).Recalculate()
	}

	if c.Level <= 1 && c.ProfessionKey != "" && catalog != nil {
		if profession, err := catalog.Profession(c.ProfessionKey); err == nil {
			c.Health.Max = profession.BaseHP + c.Ability(shared.AttributeEndurance).Mod
		}
	}
	if c.Health.Current > c.Health.Max || c.Health.Current <= 0 {
		c.Health.Current = c.Health.Max
	}

	for _, skill := range rulebook.Skills {
		entry := c.Skill(skill)
		entry.Mod = c.Ability(skill.Attribute()).Mod
		entry.Total = entry.Mod + entry.Rank + entry.Misc
	}

	c.AttackModsMelee.Attr = c.Ability(shared.AttributeMight).Mod
	c.AttackModsMelee.Total = c.AttackModsMelee.Attr + c.AttackModsMelee.Misc
	c.AttackModsRanged.Attr = c.Ability(shared.AttributeAgility).Mod
	c.AttackModsRanged.Total = c.AttackModsRanged.Attr + c.AttackModsRanged.Misc

	c.Defense.Agility = c.Ability(shared.AttributeAgility).Mod
	c.Defense.Total = c.Defense.Base + c.Defense.Agility + c.Defense.Shield + c.Defense.Misc

	c.Initiative = c.Ability(shared.AttributeAgility).Mod

	c.PassivePerception.Skill = c.Skill(rulebook.SkillPerception).Total
	c.PassivePerception.Total = c.PassivePerception.Base + c.PassivePerception.Skill + c.PassivePerception.Misc
	c.PassiveInsight.Skill = c.Skill(rulebook.SkillInsight).Total
	c.PassiveInsight.Total = c.PassiveInsight.Base + c.PassiveInsight.Skill + c.PassiveInsight.Misc

	// Life points track Endurance, rounded down to an even number.
	endTotal := c.Ability(shared.AttributeEndurance).Total
	c.LifePoints.Max = max(1, (endTotal/2)*2)
	c.LifePoints.Current = c.LifePoints.Max

	c.recalculateSpellcrafting(catalog)
}

func (c *Character) recalculateSpellcrafting(catalog *rulebook.Catalog) {
	if c.PrimaryPath == "" || catalog == nil {
		return
	}
	path, err := catalog.Path(c.PrimaryPath)
	if err != nil || !path.Spellcasting {
		return
	}
	mod := c.Ability(path.TalentPointsAttribute).Mod
	c.Spellcrafting.SaveDC = 8 + mod
	c.Spellcrafting.AttackBonus = mod
	if c.Spellcrafting.CastingPoints.Current > c.Spellcrafting.CastingPoints.Max {
		c.Spellcrafting.CastingPoints.Current = c.Spellcrafting.CastingPoints.Max
	}
}
