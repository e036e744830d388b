package character

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/realm-forge/internal/domain/rulebook"
	"github.com/KirkDiggler/realm-forge/internal/domain/shared"
	"github.com/KirkDiggler/realm-forge/internal/errors"
)

func testCatalog(t *testing.T) *rulebook.Catalog {
	t.Helper()
	catalog := rulebook.DefaultCatalog()
	require.NoError(t, catalog.Validate())
	return catalog
}

func newTestBuilder(t *testing.T) *Builder {
	t.Helper()
	return NewBuilder(NewDraft("draft-1", "player-1"), testCatalog(t))
}

// resolveAllPending answers every queued choice with its first offered
// options, including follow-up choices queued by earlier resolutions.
func resolveAllPending(t *testing.T, b *Builder) {
	t.Helper()
	for len(b.PendingChoices()) > 0 {
		choice := b.PendingChoices()[0]
		require.GreaterOrEqual(t, len(choice.Options), choice.Count, "choice %s from %s has too few options", choice.Type, choice.Source)
		selections := append([]string(nil), choice.Options[:choice.Count]...)
		require.NoError(t, b.ResolveChoice(choice.Type, choice.Source, selections))
	}
}

func TestBuilder_ElfMysticScholar(t *testing.T) {
	b := newTestBuilder(t)

	err := b.SetAbilityScores(map[shared.Attribute]int{
		shared.AttributeMight:     10,
		shared.AttributeAgility:   14,
		shared.AttributeEndurance: 13,
		shared.AttributeIntellect: 15,
		shared.AttributeWisdom:    12,
		shared.AttributeCharisma:  8,
	})
	require.NoError(t, err)

	require.NoError(t, b.SetRace("elf"))
	char := b.Character()
	assert.Equal(t, 16, char.Ability(shared.AttributeAgility).Total)
	assert.Equal(t, 13, char.Ability(shared.AttributeWisdom).Total)
	assert.True(t, char.Skill(rulebook.SkillPerception).Trained)
	assert.True(t, char.HasLanguage("Common"))
	assert.True(t, char.HasLanguage("Elvish"))

	require.NoError(t, b.SetAncestry("sylari"))
	assert.True(t, char.HasLanguage("Sylvan"))
	assert.Equal(t, 1, char.Skill(rulebook.SkillArcana).Misc)

	require.NoError(t, b.SetProfession("scholar", ""))
	assert.Equal(t, 9, char.Health.Max, "base 8 plus Endurance modifier")

	// Wisdom 13 meets the secondary requirement thanks to the elf bonus.
	require.NoError(t, b.SetPath("mystic", false))
	assert.Equal(t, 17, char.Ability(shared.AttributeIntellect).Total, "primary path bonus lands on misc")
	assert.Equal(t, "mystic", char.PrimaryPath)
	assert.Equal(t, []string{"mystic"}, char.Paths)

	require.NoError(t, b.SetBackground("scholar"))
	assert.False(t, b.IsComplete(), "choices still pending")

	require.NoError(t, b.ResolveChoice(ChoiceSkill, "Scholar Profession", []string{"Arcana", "History"}))
	assert.True(t, char.Skill(rulebook.SkillArcana).Trained)
	assert.True(t, char.Skill(rulebook.SkillHistory).Trained)
	assert.Equal(t, 1, char.Skill(rulebook.SkillHistory).Rank)

	resolveAllPending(t, b)
	require.True(t, b.IsComplete())

	final := b.Build()
	assert.Equal(t, "mystic", final.PrimaryPath)
	assert.GreaterOrEqual(t, final.Ability(shared.AttributeIntellect).Total, 15)
	assert.Equal(t, 3, final.Ability(shared.AttributeIntellect).Mod)
	assert.Equal(t, 12, final.Defense.Total, "9 base plus Agility modifier")
	assert.Equal(t, 3, final.Initiative)
	assert.Equal(t, 12, final.LifePoints.Max, "Endurance 13 rounded down to the nearest even total")
	assert.Equal(t, 11, final.Spellcrafting.SaveDC)
	assert.Equal(t, 3, final.Spellcrafting.AttackBonus)
	assert.NotEmpty(t, final.Personality.Traits)
	assert.Equal(t, 40, final.Gold)

	// Resolving the background language with "Common" must not duplicate it.
	count := 0
	for _, lang := range final.Languages {
		if lang == "Common" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestBuilder_PathPrerequisiteFailure(t *testing.T) {
	b := newTestBuilder(t)

	err := b.SetAbilityScores(map[shared.Attribute]int{
		shared.AttributeMight:     14,
		shared.AttributeAgility:   10,
		shared.AttributeEndurance: 12,
		shared.AttributeIntellect: 10,
		shared.AttributeWisdom:    13,
		shared.AttributeCharisma:  10,
	})
	require.NoError(t, err)
	require.NoError(t, b.SetRace("human"))
	require.NoError(t, b.SetAncestry("valeborn"))
	require.NoError(t, b.SetProfession("warrior", "fighter"))

	err = b.SetPath("defense", false)
	require.Error(t, err)
	assert.True(t, errors.IsPrerequisiteNotMet(err))
	assert.Contains(t, err.Error(), "Endurance 15+")
	assert.Empty(t, b.Character().PrimaryPath)

	// The same pick goes through when prerequisites are waived.
	require.NoError(t, b.SetPath("defense", true))
	assert.Equal(t, "defense", b.Character().PrimaryPath)
}

func TestBuilder_HumanAbilityAdjustment(t *testing.T) {
	t.Run("plus two with penalty", func(t *testing.T) {
		b := newTestBuilder(t)
		require.NoError(t, b.SetAbilityScores(map[shared.Attribute]int{shared.AttributeMight: 12}))
		require.NoError(t, b.SetRace("human"))

		require.NoError(t, b.ResolveChoice(ChoiceHumanAbilityMode, "", []string{AbilityModeTradeoff}))
		assert.GreaterOrEqual(t, b.Draft().FindChoice(ChoiceAbilityBonusPlus2, "Human Race - +2 Bonus"), 0)
		assert.GreaterOrEqual(t, b.Draft().FindChoice(ChoiceAbilityPenalty, "Human Race - -1 Penalty"), 0)

		require.NoError(t, b.ResolveChoice(ChoiceAbilityBonusPlus2, "", []string{"Might"}))
		require.NoError(t, b.ResolveChoice(ChoiceAbilityPenalty, "", []string{"Charisma"}))

		char := b.Character()
		assert.Equal(t, 14, char.Ability(shared.AttributeMight).Total)
		assert.Equal(t, 2, char.Ability(shared.AttributeMight).Misc)
		assert.Equal(t, 9, char.Ability(shared.AttributeCharisma).Total)
	})

	t.Run("plus one", func(t *testing.T) {
		b := newTestBuilder(t)
		require.NoError(t, b.SetAbilityScores(map[shared.Attribute]int{shared.AttributeWisdom: 13}))
		require.NoError(t, b.SetRace("human"))

		require.NoError(t, b.ResolveChoice(ChoiceHumanAbilityMode, "", []string{AbilityModePlusOne}))
		require.NoError(t, b.ResolveChoice(ChoiceAbilityBonus, "Human Race - +1 Bonus", []string{"Wisdom"}))

		assert.Equal(t, 14, b.Character().Ability(shared.AttributeWisdom).Total)
	})
}

func TestBuilder_ProfessionDuty(t *testing.T) {
	setup := func(t *testing.T) *Builder {
		b := newTestBuilder(t)
		require.NoError(t, b.SetAbilityScores(map[shared.Attribute]int{shared.AttributeMight: 15}))
		require.NoError(t, b.SetRace("dwarf"))
		require.NoError(t, b.SetAncestry("ironvein"))
		return b
	}

	t.Run("duty required", func(t *testing.T) {
		b := setup(t)
		err := b.SetProfession("warrior", "")
		require.Error(t, err)
		assert.True(t, errors.IsDutyRequired(err))
		assert.Contains(t, err.Error(), "fighter")
		assert.Contains(t, err.Error(), "ranger")
	})

	t.Run("unknown duty", func(t *testing.T) {
		b := setup(t)
		err := b.SetProfession("warrior", "paladin")
		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("duty grants and choices", func(t *testing.T) {
		b := setup(t)
		require.NoError(t, b.SetProfession("warrior", "ranger"))

		char := b.Character()
		assert.Equal(t, "ranger", char.DutyKey)
		assert.True(t, char.HasProficiency("Longbow"))
		assert.GreaterOrEqual(t, b.Draft().FindChoice(ChoiceSkill, "Ranger Duty"), 0)
	})
}

func TestBuilder_AncestryRaceMismatch(t *testing.T) {
	b := newTestBuilder(t)
	require.NoError(t, b.SetAbilityScores(map[shared.Attribute]int{shared.AttributeAgility: 14}))
	require.NoError(t, b.SetRace("elf"))

	err := b.SetAncestry("ironvein")
	require.Error(t, err)
	assert.True(t, errors.IsRaceMismatch(err))
	assert.Contains(t, err.Error(), "not valid for race Elf")
	assert.Empty(t, b.Character().AncestryKey)
}

func TestBuilder_StepOrder(t *testing.T) {
	b := newTestBuilder(t)

	err := b.SetRace("elf")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	err = b.SetPath("mystic", false)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	require.NoError(t, b.SetAbilityScores(map[shared.Attribute]int{shared.AttributeIntellect: 15}))
	require.NoError(t, b.SetRace("elf"))
	assert.Equal(t, StepAncestry, b.Draft().CurrentStep)

	// Revisiting an earlier step rewinds the flow without rolling back
	// what it already granted.
	require.NoError(t, b.SetRace("elf"))
	assert.Equal(t, StepAncestry, b.Draft().CurrentStep)
	assert.Equal(t, 4, b.Character().Ability(shared.AttributeAgility).Race, "revisited race stacks its modifiers")
}

func TestBuilder_SetAbilityScores_UnknownAbility(t *testing.T) {
	b := newTestBuilder(t)

	err := b.SetAbilityScores(map[shared.Attribute]int{shared.Attribute("Luck"): 18})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "Luck")
}

func TestBuilder_ResolveChoice_Errors(t *testing.T) {
	b := newTestBuilder(t)
	require.NoError(t, b.SetAbilityScores(map[shared.Attribute]int{shared.AttributeIntellect: 15}))
	require.NoError(t, b.SetRace("elf"))
	require.NoError(t, b.SetAncestry("sylari"))
	require.NoError(t, b.SetProfession("scholar", ""))

	err := b.ResolveChoice(ChoiceTool, "", []string{"Smith's Tools"})
	require.Error(t, err)
	assert.True(t, errors.IsNoPendingChoice(err))

	err = b.ResolveChoice(ChoiceSkill, "", []string{"Arcana"})
	require.Error(t, err)
	assert.True(t, errors.IsWrongCount(err))
	assert.Contains(t, err.Error(), "expected 2 selections, got 1")

	err = b.ResolveChoice(ChoiceSkill, "", []string{"Arcana", "Stealth"})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidOption(err))
	require.Len(t, b.PendingChoices(), 1, "failed resolution leaves the choice queued")

	require.NoError(t, b.ResolveChoice(ChoiceSkill, "", []string{"Arcana", "History"}))
	assert.Empty(t, b.PendingChoices())
}

func TestBuilder_ResolveChoice_BySource(t *testing.T) {
	b := newTestBuilder(t)
	require.NoError(t, b.SetAbilityScores(map[shared.Attribute]int{shared.AttributeCharisma: 13}))
	require.NoError(t, b.SetRace("human"))
	require.NoError(t, b.SetAncestry("valeborn"))

	// Human grants a bonus language pick and Valeborn another; the source
	// label tells them apart.
	require.GreaterOrEqual(t, b.Draft().FindChoice(ChoiceLanguage, "Human Race"), 0)
	require.GreaterOrEqual(t, b.Draft().FindChoice(ChoiceLanguage, "Valeborn Ancestry"), 0)

	require.NoError(t, b.ResolveChoice(ChoiceLanguage, "Valeborn Ancestry", []string{"Elvish"}))
	assert.True(t, b.Character().HasLanguage("Elvish"))
	assert.Equal(t, -1, b.Draft().FindChoice(ChoiceLanguage, "Valeborn Ancestry"))
	assert.GreaterOrEqual(t, b.Draft().FindChoice(ChoiceLanguage, "Human Race"), 0)
}

func TestBuilder_AvailablePaths(t *testing.T) {
	b := newTestBuilder(t)
	require.NoError(t, b.SetAbilityScores(map[shared.Attribute]int{
		shared.AttributeMight:     10,
		shared.AttributeAgility:   14,
		shared.AttributeEndurance: 13,
		shared.AttributeIntellect: 15,
		shared.AttributeWisdom:    12,
		shared.AttributeCharisma:  8,
	}))
	require.NoError(t, b.SetRace("elf"))

	options := b.AvailablePaths()
	require.Len(t, options, 7)

	met := map[string]bool{}
	for _, opt := range options {
		met[opt.Path.Key] = opt.PrerequisitesMet
	}
	assert.True(t, met["mystic"], "Intellect 15 and Wisdom 13")
	assert.False(t, met["defense"], "Endurance 13 misses the 15 floor")
	assert.False(t, met["martial"], "Might 10 misses the 15 floor")
}

func TestBuilder_PersonalityChoice(t *testing.T) {
	b := newTestBuilder(t)
	require.NoError(t, b.SetAbilityScores(map[shared.Attribute]int{shared.AttributeIntellect: 15, shared.AttributeWisdom: 13}))
	require.NoError(t, b.SetRace("elf"))
	require.NoError(t, b.SetAncestry("sylari"))
	require.NoError(t, b.SetProfession("scholar", ""))
	require.NoError(t, b.SetPath("mystic", false))
	require.NoError(t, b.SetBackground("scholar"))

	idx := b.Draft().FindChoice(ChoicePersonalityTrait, "")
	require.GreaterOrEqual(t, idx, 0)
	choice := b.PendingChoices()[idx]
	require.NotEmpty(t, choice.Options)

	alignmentBefore := b.Character().Alignment.Mod
	reputationBefore := b.Character().Reputation.Mod
	require.NoError(t, b.ResolveChoice(ChoicePersonalityTrait, "", []string{choice.Options[0]}))

	char := b.Character()
	assert.NotEmpty(t, char.Personality.Traits)
	catalog := testCatalog(t)
	background, err := catalog.Background("scholar")
	require.NoError(t, err)
	entry := background.PersonalityTables.Traits[0]
	assert.Equal(t, entry.Text, char.Personality.Traits)
	assert.Equal(t, alignmentBefore+entry.Morality, char.Alignment.Mod)
	assert.Equal(t, reputationBefore+entry.Reputation, char.Reputation.Mod)
}
