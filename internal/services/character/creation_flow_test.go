package character_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/realm-forge/internal/advancement"
	character2 "github.com/KirkDiggler/realm-forge/internal/domain/character"
	"github.com/KirkDiggler/realm-forge/internal/domain/rulebook"
	"github.com/KirkDiggler/realm-forge/internal/domain/shared"
	"github.com/KirkDiggler/realm-forge/internal/errors"
	"github.com/KirkDiggler/realm-forge/internal/repositories/characters"
	"github.com/KirkDiggler/realm-forge/internal/repositories/drafts"
	"github.com/KirkDiggler/realm-forge/internal/services/character"
)

// newFlowService wires the service against real in-memory repositories so
// a draft can travel the whole creation flow.
func newFlowService(t *testing.T) character.Service {
	t.Helper()
	return character.NewService(&character.ServiceConfig{
		Catalog:             rulebook.DefaultCatalog(),
		CharacterRepository: characters.NewInMemoryRepository(),
		DraftRepository:     drafts.NewInMemoryRepository(nil),
	})
}

// scholarScores meets the mystic path gates once elf racial bonuses land:
// Intellect 15 and Wisdom 12+1.
func scholarScores() map[shared.Attribute]int {
	return map[shared.Attribute]int{
		shared.AttributeMight:     10,
		shared.AttributeAgility:   12,
		shared.AttributeEndurance: 13,
		shared.AttributeWisdom:    12,
		shared.AttributeIntellect: 15,
		shared.AttributeCharisma:  11,
	}
}

func TestCreationFlow_ScholarMystic(t *testing.T) {
	svc := newFlowService(t)
	ctx := context.Background()

	started, err := svc.StartDraft(ctx, &character.StartDraftInput{OwnerID: "player-1", Name: "Seren"})
	require.NoError(t, err)
	draftID := started.Draft.ID
	require.NotEmpty(t, draftID)
	assert.Equal(t, character2.StepAbilityScores, started.Draft.CurrentStep)

	_, err = svc.SetAbilityScores(ctx, &character.SetAbilityScoresInput{
		DraftID: draftID,
		Scores:  scholarScores(),
		Method:  "manual",
	})
	require.NoError(t, err)

	raced, err := svc.SetRace(ctx, &character.SetRaceInput{DraftID: draftID, RaceKey: "elf"})
	require.NoError(t, err)
	assert.Equal(t, 14, raced.Draft.Character.Ability(shared.AttributeAgility).Total, "12 rolled +2 elf")
	assert.Equal(t, 13, raced.Draft.Character.Ability(shared.AttributeWisdom).Total, "12 rolled +1 elf")
	assert.Contains(t, raced.Draft.Character.Languages, "Elvish")
	assert.True(t, raced.Draft.Character.Skills[rulebook.SkillPerception].Trained)
	assert.Empty(t, raced.Draft.PendingChoices, "elves owe no creation choices")

	ancestried, err := svc.SetAncestry(ctx, &character.SetAncestryInput{DraftID: draftID, AncestryKey: "sylari"})
	require.NoError(t, err)
	assert.Contains(t, ancestried.Draft.Character.Languages, "Sylvan")
	assert.Equal(t, 1, ancestried.Draft.Character.Skills[rulebook.SkillArcana].Misc)

	professed, err := svc.SetProfession(ctx, &character.SetProfessionInput{DraftID: draftID, ProfessionKey: "scholar"})
	require.NoError(t, err)
	assert.Equal(t, 9, professed.Draft.Character.Health.Max, "base 8 plus Endurance mod 1")
	require.Len(t, professed.Draft.PendingChoices, 1)
	assert.Equal(t, character2.ChoiceSkill, professed.Draft.PendingChoices[0].Type)
	assert.Equal(t, 2, professed.Draft.PendingChoices[0].Count)

	paths, err := svc.GetAvailablePaths(ctx, &character.GetAvailablePathsInput{DraftID: draftID})
	require.NoError(t, err)
	require.Len(t, paths.Paths, 7)
	for _, option := range paths.Paths {
		if option.Path.Key == shared.PathKeyMystic {
			assert.True(t, option.PrerequisitesMet)
		}
	}

	pathed, err := svc.SetPath(ctx, &character.SetPathInput{DraftID: draftID, PathKey: "mystic"})
	require.NoError(t, err)
	assert.Equal(t, 17, pathed.Draft.Character.Ability(shared.AttributeIntellect).Total, "15 rolled +2 primary path")

	backgrounded, err := svc.SetBackground(ctx, &character.SetBackgroundInput{DraftID: draftID, BackgroundKey: "scholar"})
	require.NoError(t, err)
	assert.Equal(t, character2.StepComplete, backgrounded.Draft.CurrentStep)
	assert.True(t, backgrounded.Draft.Character.Skills[rulebook.SkillHistory].Trained)

	// Finalizing now must fail: the skill, language, and personality
	// choices are still owed.
	_, err = svc.FinalizeDraft(ctx, &character.FinalizeDraftInput{DraftID: draftID})
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))

	resolutions := []*character.ResolveChoiceInput{
		{DraftID: draftID, ChoiceType: character2.ChoiceSkill, Selections: []string{"Arcana", "Medicine"}},
		{DraftID: draftID, ChoiceType: character2.ChoiceLanguage, Selections: []string{"Dwarvish"}},
		{DraftID: draftID, ChoiceType: character2.ChoicePersonalityTrait, Selections: []string{"2: Every problem is a puzzle with a missing page."}},
		{DraftID: draftID, ChoiceType: character2.ChoicePersonalityIdeal, Selections: []string{"1: Knowledge belongs to everyone."}},
		{DraftID: draftID, ChoiceType: character2.ChoicePersonalityBond, Selections: []string{"1: My old mentor's unfinished work must be completed."}},
		{DraftID: draftID, ChoiceType: character2.ChoicePersonalityFlaw, Selections: []string{"1: I cannot resist an unopened book or an unopened door."}},
	}
	for _, input := range resolutions {
		_, err = svc.ResolveChoice(ctx, input)
		require.NoError(t, err, "resolving %s", input.ChoiceType)
	}

	finalized, err := svc.FinalizeDraft(ctx, &character.FinalizeDraftInput{DraftID: draftID})
	require.NoError(t, err)
	char := finalized.Character
	assert.Equal(t, "Seren", char.Name)
	assert.Equal(t, "player-1", char.OwnerID)
	assert.Equal(t, 1, char.Level)
	assert.Equal(t, "elf", char.RaceKey)
	assert.Equal(t, "sylari", char.AncestryKey)
	assert.Equal(t, "scholar", char.ProfessionKey)
	assert.Equal(t, shared.PathKeyMystic, char.PrimaryPath)
	assert.Equal(t, "scholar", char.BackgroundKey)
	assert.True(t, char.Skills[rulebook.SkillArcana].Trained)
	assert.True(t, char.Skills[rulebook.SkillMedicine].Trained)
	assert.Contains(t, char.Languages, "Dwarvish")
	assert.Equal(t, "Every problem is a puzzle with a missing page.", char.Personality.Traits)
	assert.Equal(t, 11, char.Spellcrafting.SaveDC, "8 plus Intellect mod 3")

	// The draft is gone once the character exists.
	_, err = svc.GetDraft(ctx, &character.GetDraftInput{DraftID: draftID})
	assert.True(t, errors.IsNotFound(err))

	fetched, err := svc.GetCharacter(ctx, &character.GetCharacterInput{CharacterID: char.ID})
	require.NoError(t, err)
	assert.Equal(t, char.ID, fetched.Character.ID)

	validated, err := svc.ValidateCharacter(ctx, &character.ValidateCharacterInput{CharacterID: char.ID})
	require.NoError(t, err)
	assert.True(t, validated.Result.Valid, "errors: %v", validated.Result.Errors)
}

func TestCreationFlow_AdvancementAfterFinalize(t *testing.T) {
	svc := newFlowService(t)
	ctx := context.Background()

	charID := buildScholarMystic(ctx, t, svc, "player-1")

	awarded, err := svc.AwardExperience(ctx, &character.AwardExperienceInput{CharacterID: charID, XP: 300})
	require.NoError(t, err)
	assert.Equal(t, 300, awarded.Character.TotalExperience)
	assert.Equal(t, 1, awarded.Summary.PendingLevels)

	options, err := svc.GetLevelUpOptions(ctx, &character.GetLevelUpOptionsInput{CharacterID: charID})
	require.NoError(t, err)
	assert.Equal(t, 2, options.Options.TargetLevel)
	assert.Equal(t, 8, options.Options.TalentPoints)

	leveled, err := svc.LevelUp(ctx, &character.LevelUpInput{
		CharacterID: charID,
		Request:     &advancement.LevelUpInput{HPRoll: 4},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, leveled.Result.Level)
	assert.Equal(t, 5, leveled.Result.HPGain)
	assert.Equal(t, 5, leveled.Result.SpellcraftingGain)

	// The level up is persisted, not just returned.
	fetched, err := svc.GetCharacter(ctx, &character.GetCharacterInput{CharacterID: charID})
	require.NoError(t, err)
	assert.Equal(t, 2, fetched.Character.Level)
	assert.Equal(t, 14, fetched.Character.Health.Max)

	summary, err := svc.GetLevelSummary(ctx, &character.GetLevelSummaryInput{CharacterID: charID})
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Summary.Level)
	assert.Equal(t, 600, summary.Summary.XPNeeded, "900 for level 3 minus the 300 held")
}

func TestCreationFlow_WarriorDuty(t *testing.T) {
	svc := newFlowService(t)
	ctx := context.Background()

	started, err := svc.StartDraft(ctx, &character.StartDraftInput{OwnerID: "player-2", Name: "Brakka"})
	require.NoError(t, err)
	draftID := started.Draft.ID

	_, err = svc.SetAbilityScores(ctx, &character.SetAbilityScoresInput{
		DraftID: draftID,
		Scores: map[shared.Attribute]int{
			shared.AttributeMight:     14,
			shared.AttributeAgility:   13,
			shared.AttributeEndurance: 14,
			shared.AttributeWisdom:    13,
			shared.AttributeIntellect: 10,
			shared.AttributeCharisma:  10,
		},
		Method: "manual",
	})
	require.NoError(t, err)
	_, err = svc.SetRace(ctx, &character.SetRaceInput{DraftID: draftID, RaceKey: "dwarf"})
	require.NoError(t, err)
	_, err = svc.SetAncestry(ctx, &character.SetAncestryInput{DraftID: draftID, AncestryKey: "ironvein"})
	require.NoError(t, err)

	// Warriors cannot skip the duty choice.
	_, err = svc.SetProfession(ctx, &character.SetProfessionInput{DraftID: draftID, ProfessionKey: "warrior"})
	require.Error(t, err)
	assert.True(t, errors.IsDutyRequired(err))

	professed, err := svc.SetProfession(ctx, &character.SetProfessionInput{
		DraftID:       draftID,
		ProfessionKey: "warrior",
		DutyKey:       "ranger",
	})
	require.NoError(t, err)
	char := professed.Draft.Character
	assert.Equal(t, "warrior", char.ProfessionKey)
	assert.Equal(t, "ranger", char.DutyKey)
	assert.Contains(t, char.Proficiencies, "Longbow")
	assert.Equal(t, 80, char.Gold, "the ranger duty overrides the warrior gold alternative")

	// One skill choice from the profession, one from the duty.
	require.Len(t, professed.Draft.PendingChoices, 2)
	assert.Equal(t, "Warrior Profession", professed.Draft.PendingChoices[0].Source)
	assert.Equal(t, "Ranger Duty", professed.Draft.PendingChoices[1].Source)

	// Source disambiguates same-typed choices.
	resolved, err := svc.ResolveChoice(ctx, &character.ResolveChoiceInput{
		DraftID:    draftID,
		ChoiceType: character2.ChoiceSkill,
		Source:     "Ranger Duty",
		Selections: []string{"Stealth"},
	})
	require.NoError(t, err)
	require.Len(t, resolved.Draft.PendingChoices, 1)
	assert.Equal(t, "Warrior Profession", resolved.Draft.PendingChoices[0].Source)
	assert.True(t, resolved.Draft.Character.Skills[rulebook.SkillStealth].Trained)
}

func TestCreationFlow_PathPrerequisites(t *testing.T) {
	svc := newFlowService(t)
	ctx := context.Background()

	started, err := svc.StartDraft(ctx, &character.StartDraftInput{OwnerID: "player-3"})
	require.NoError(t, err)
	draftID := started.Draft.ID

	_, err = svc.SetAbilityScores(ctx, &character.SetAbilityScoresInput{
		DraftID: draftID,
		Scores: map[shared.Attribute]int{
			shared.AttributeMight:     10,
			shared.AttributeAgility:   10,
			shared.AttributeEndurance: 12,
			shared.AttributeWisdom:    10,
			shared.AttributeIntellect: 11,
			shared.AttributeCharisma:  10,
		},
		Method: "manual",
	})
	require.NoError(t, err)
	_, err = svc.SetRace(ctx, &character.SetRaceInput{DraftID: draftID, RaceKey: "dwarf"})
	require.NoError(t, err)
	_, err = svc.SetAncestry(ctx, &character.SetAncestryInput{DraftID: draftID, AncestryKey: "stonehearth"})
	require.NoError(t, err)
	_, err = svc.SetProfession(ctx, &character.SetProfessionInput{DraftID: draftID, ProfessionKey: "acolyte"})
	require.NoError(t, err)

	_, err = svc.SetPath(ctx, &character.SetPathInput{DraftID: draftID, PathKey: "mystic"})
	require.Error(t, err)
	assert.True(t, errors.IsPrerequisiteNotMet(err))

	// A game master override takes the path anyway.
	pathed, err := svc.SetPath(ctx, &character.SetPathInput{
		DraftID:             draftID,
		PathKey:             "mystic",
		IgnorePrerequisites: true,
	})
	require.NoError(t, err)
	assert.Equal(t, shared.PathKeyMystic, pathed.Draft.Character.PrimaryPath)
}

func TestCreationFlow_HumanAbilityAdjustment(t *testing.T) {
	svc := newFlowService(t)
	ctx := context.Background()

	started, err := svc.StartDraft(ctx, &character.StartDraftInput{OwnerID: "player-4", Name: "Edda"})
	require.NoError(t, err)
	draftID := started.Draft.ID

	_, err = svc.SetAbilityScores(ctx, &character.SetAbilityScoresInput{
		DraftID: draftID,
		Scores:  scholarScores(),
		Method:  "manual",
	})
	require.NoError(t, err)

	raced, err := svc.SetRace(ctx, &character.SetRaceInput{DraftID: draftID, RaceKey: "human"})
	require.NoError(t, err)

	// Humans owe a skill, a bonus language, and the core ability mode.
	types := make([]character2.ChoiceType, 0, len(raced.Draft.PendingChoices))
	for _, choice := range raced.Draft.PendingChoices {
		types = append(types, choice.Type)
	}
	assert.ElementsMatch(t, []character2.ChoiceType{
		character2.ChoiceSkill,
		character2.ChoiceLanguage,
		character2.ChoiceHumanAbilityMode,
	}, types)

	// Picking the tradeoff mode queues the +2 and -1 follow-ups.
	resolved, err := svc.ResolveChoice(ctx, &character.ResolveChoiceInput{
		DraftID:    draftID,
		ChoiceType: character2.ChoiceHumanAbilityMode,
		Selections: []string{character2.AbilityModeTradeoff},
	})
	require.NoError(t, err)
	assert.Len(t, resolved.Draft.PendingChoices, 4, "skill, language, +2 bonus, -1 penalty")

	_, err = svc.ResolveChoice(ctx, &character.ResolveChoiceInput{
		DraftID:    draftID,
		ChoiceType: character2.ChoiceAbilityBonusPlus2,
		Selections: []string{"Intellect"},
	})
	require.NoError(t, err)
	penalized, err := svc.ResolveChoice(ctx, &character.ResolveChoiceInput{
		DraftID:    draftID,
		ChoiceType: character2.ChoiceAbilityPenalty,
		Selections: []string{"Charisma"},
	})
	require.NoError(t, err)

	char := penalized.Draft.Character
	assert.Equal(t, 17, char.Ability(shared.AttributeIntellect).Total, "15 rolled +2 chosen")
	assert.Equal(t, 10, char.Ability(shared.AttributeCharisma).Total, "11 rolled -1 chosen")
}

// buildScholarMystic drives a draft through every step and choice and
// returns the finalized character's ID.
func buildScholarMystic(ctx context.Context, t *testing.T, svc character.Service, ownerID string) string {
	t.Helper()

	started, err := svc.StartDraft(ctx, &character.StartDraftInput{OwnerID: ownerID, Name: "Seren"})
	require.NoError(t, err)
	draftID := started.Draft.ID

	_, err = svc.SetAbilityScores(ctx, &character.SetAbilityScoresInput{
		DraftID: draftID,
		Scores:  scholarScores(),
		Method:  "manual",
	})
	require.NoError(t, err)
	_, err = svc.SetRace(ctx, &character.SetRaceInput{DraftID: draftID, RaceKey: "elf"})
	require.NoError(t, err)
	_, err = svc.SetAncestry(ctx, &character.SetAncestryInput{DraftID: draftID, AncestryKey: "sylari"})
	require.NoError(t, err)
	_, err = svc.SetProfession(ctx, &character.SetProfessionInput{DraftID: draftID, ProfessionKey: "scholar"})
	require.NoError(t, err)
	_, err = svc.SetPath(ctx, &character.SetPathInput{DraftID: draftID, PathKey: "mystic"})
	require.NoError(t, err)
	_, err = svc.SetBackground(ctx, &character.SetBackgroundInput{DraftID: draftID, BackgroundKey: "scholar"})
	require.NoError(t, err)

	resolutions := []*character.ResolveChoiceInput{
		{DraftID: draftID, ChoiceType: character2.ChoiceSkill, Selections: []string{"Arcana", "Medicine"}},
		{DraftID: draftID, ChoiceType: character2.ChoiceLanguage, Selections: []string{"Dwarvish"}},
		{DraftID: draftID, ChoiceType: character2.ChoicePersonalityTrait, Selections: []string{"2: Every problem is a puzzle with a missing page."}},
		{DraftID: draftID, ChoiceType: character2.ChoicePersonalityIdeal, Selections: []string{"1: Knowledge belongs to everyone."}},
		{DraftID: draftID, ChoiceType: character2.ChoicePersonalityBond, Selections: []string{"1: My old mentor's unfinished work must be completed."}},
		{DraftID: draftID, ChoiceType: character2.ChoicePersonalityFlaw, Selections: []string{"1: I cannot resist an unopened book or an unopened door."}},
	}
	for _, input := range resolutions {
		_, err = svc.ResolveChoice(ctx, input)
		require.NoError(t, err)
	}

	finalized, err := svc.FinalizeDraft(ctx, &character.FinalizeDraftInput{DraftID: draftID})
	require.NoError(t, err)
	return finalized.Character.ID
}
