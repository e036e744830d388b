package testutils

import (
	"github.com/KirkDiggler/realm-forge/internal/domain/character"
	"github.com/KirkDiggler/realm-forge/internal/domain/rulebook"
	"github.com/KirkDiggler/realm-forge/internal/domain/shared"
)

// CreateTestCharacter builds a finalized level 3 mystic with hand-set
// scores, suitable for repository and service tests.
func CreateTestCharacter(id, ownerID string) *character.Character {
	c := character.NewCharacter(id)
	c.OwnerID = ownerID
	c.Name = "Seren"
	c.RaceKey = "elf"
	c.AncestryKey = "sylari"
	c.ProfessionKey = "scholar"
	c.BackgroundKey = "scholar"
	c.PrimaryPath = shared.PathKeyMystic
	c.Paths = []string{shared.PathKeyMystic}
	c.Level = 3
	c.AbilityScores[shared.AttributeIntellect] = &character.AbilityScore{Roll: 13, Misc: 2}
	c.AbilityScores[shared.AttributeEndurance] = &character.AbilityScore{Roll: 12}
	c.Skills[rulebook.SkillArcana] = &character.SkillEntry{Trained: true, Rank: 1}
	c.AddLanguage("Common")
	c.Health.Max = 20
	c.Health.Current = 20
	c.Recalculate(nil)
	return c
}

// CreateTestDraft builds a draft that has taken the ability score step
// and nothing else.
func CreateTestDraft(id, ownerID string) *character.Draft {
	d := character.NewDraft(id, ownerID)
	d.Character.Name = "Unnamed"
	for _, attr := range shared.Attributes {
		d.Character.AbilityScores[attr] = &character.AbilityScore{Roll: 10}
	}
	d.Character.AbilityScores[shared.AttributeIntellect] = &character.AbilityScore{Roll: 15}
	d.CurrentStep = character.StepRace
	return d
}
