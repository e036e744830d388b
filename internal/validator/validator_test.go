package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/realm-forge/internal/domain/rulebook"
	"github.com/KirkDiggler/realm-forge/internal/domain/shared"
)

func newTestValidator(t *testing.T) *Validator {
	t.Helper()
	catalog := rulebook.DefaultCatalog()
	require.NoError(t, catalog.Validate())
	return New(catalog)
}

func fullScores(might, agility, endurance, intellect, wisdom, charisma int) map[shared.Attribute]int {
	return map[shared.Attribute]int{
		shared.AttributeMight:     might,
		shared.AttributeAgility:   agility,
		shared.AttributeEndurance: endurance,
		shared.AttributeIntellect: intellect,
		shared.AttributeWisdom:    wisdom,
		shared.AttributeCharisma:  charisma,
	}
}

func TestParseMethod(t *testing.T) {
	assert.Equal(t, MethodPointBuy, ParseMethod("point_buy"))
	assert.Equal(t, MethodPointBuy, ParseMethod("point_draw"), "legacy spelling")
	assert.Equal(t, MethodStandardArray, ParseMethod("STANDARD_ARRAY"))
	assert.Equal(t, MethodManual, ParseMethod(""))
	assert.Equal(t, Method(""), ParseMethod("tarot"))
}

func TestValidateAbilityScores_Shape(t *testing.T) {
	v := newTestValidator(t)

	result := v.ValidateAbilityScores(map[shared.Attribute]int{
		shared.AttributeMight: 12,
	}, MethodManual)
	require.False(t, result.Valid)
	assert.Contains(t, result.Errors[0], "Missing ability scores:")
	assert.Contains(t, result.Errors[0], "Agility")

	result = v.ValidateAbilityScores(map[shared.Attribute]int{
		shared.AttributeMight:     12,
		shared.AttributeAgility:   12,
		shared.AttributeEndurance: 12,
		shared.AttributeIntellect: 12,
		shared.AttributeWisdom:    12,
		shared.AttributeCharisma:  12,
		shared.Attribute("Luck"):  12,
	}, MethodManual)
	require.False(t, result.Valid)
	assert.Contains(t, result.Errors[0], "Unknown ability scores: Luck")
}

func TestValidateAbilityScores_Range(t *testing.T) {
	v := newTestValidator(t)

	result := v.ValidateAbilityScores(fullScores(0, 21, 2, 12, 12, 12), MethodManual)
	require.False(t, result.Valid)
	assert.Contains(t, result.Errors, "Might cannot be less than 1 (got 0)")
	assert.Contains(t, result.Errors, "Agility cannot exceed 20 (got 21)")
	assert.Contains(t, result.Warnings, "Endurance is unusually low (2)")
}

func TestValidateAbilityScores_PointBuyOverspend(t *testing.T) {
	v := newTestValidator(t)

	// 11+11+11 = 33, three over the 30-point budget.
	result := v.ValidateAbilityScores(fullScores(16, 16, 16, 8, 8, 8), MethodPointBuy)

	require.False(t, result.Valid)
	assert.Contains(t, result.Errors, "Point buy: spent 33 points (max 30)")
}

func TestValidateAbilityScores_PointBuyBounds(t *testing.T) {
	v := newTestValidator(t)

	result := v.ValidateAbilityScores(fullScores(7, 17, 8, 8, 8, 8), MethodPointBuy)
	require.False(t, result.Valid)
	assert.Contains(t, result.Errors, "Point buy: Might cannot be below 8 (got 7)")
	assert.Contains(t, result.Errors, "Point buy: Agility cannot exceed 16 (got 17)")
}

func TestValidateAbilityScores_PointBuyUnderspendWarns(t *testing.T) {
	v := newTestValidator(t)

	// 9+7+5+0+0+0 = 21 of 30 spent. Legal but probably a mistake.
	result := v.ValidateAbilityScores(fullScores(15, 14, 13, 8, 8, 8), MethodPointBuy)

	assert.True(t, result.Valid)
	assert.Contains(t, result.Warnings, "Point buy: only spent 21 of 30 points")
}

func TestValidateAbilityScores_StandardArray(t *testing.T) {
	v := newTestValidator(t)

	result := v.ValidateAbilityScores(fullScores(15, 14, 13, 12, 11, 10), MethodStandardArray)
	assert.True(t, result.Valid)

	// Skipping 12 and 11 in favor of the spare 8 is fine too.
	result = v.ValidateAbilityScores(fullScores(15, 14, 13, 8, 11, 10), MethodStandardArray)
	assert.True(t, result.Valid)

	// 15 appears twice.
	result = v.ValidateAbilityScores(fullScores(15, 15, 13, 12, 11, 10), MethodStandardArray)
	require.False(t, result.Valid)
	assert.Contains(t, result.Errors[0], "without reuse")
}

func TestValidateRace(t *testing.T) {
	v := newTestValidator(t)

	assert.True(t, v.ValidateRace("elf").Valid)

	result := v.ValidateRace("gnome")
	require.False(t, result.Valid)
	assert.Contains(t, result.Errors, "Unknown race: gnome")
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], "Valid races:")

	assert.False(t, v.ValidateRace("").Valid)
}

func TestValidateAncestry(t *testing.T) {
	v := newTestValidator(t)

	assert.True(t, v.ValidateAncestry("sylari", "elf").Valid)
	assert.True(t, v.ValidateAncestry("sylari", "").Valid, "race unknown, parentage unchecked")

	result := v.ValidateAncestry("sylari", "dwarf")
	require.False(t, result.Valid)
	assert.Contains(t, result.Errors, "Ancestry Sylari is not valid for race dwarf")

	assert.False(t, v.ValidateAncestry("missing", "elf").Valid)
}

func TestValidateProfession(t *testing.T) {
	v := newTestValidator(t)

	assert.True(t, v.ValidateProfession("scholar", "").Valid)
	assert.True(t, v.ValidateProfession("warrior", "ranger").Valid)

	result := v.ValidateProfession("warrior", "")
	require.False(t, result.Valid)
	assert.Contains(t, result.Errors[0], "requires a duty choice")

	result = v.ValidateProfession("warrior", "paladin")
	require.False(t, result.Valid)
	assert.Contains(t, result.Errors, "Unknown duty: paladin")

	result = v.ValidateProfession("scholar", "fighter")
	assert.True(t, result.Valid)
	assert.NotEmpty(t, result.Warnings, "duty on a dutiless profession warns")
}

func TestValidatePath(t *testing.T) {
	v := newTestValidator(t)

	totals := map[shared.Attribute]int{
		shared.AttributeEndurance: 12,
		shared.AttributeWisdom:    13,
	}

	result := v.ValidatePath("defense", totals, true)
	require.False(t, result.Valid)
	assert.Contains(t, result.Errors, "Path Defense requires Endurance 15+, you have 12")

	totals[shared.AttributeEndurance] = 15
	assert.True(t, v.ValidatePath("defense", totals, true).Valid)

	totals[shared.AttributeWisdom] = 10
	result = v.ValidatePath("defense", totals, true)
	require.False(t, result.Valid)
	assert.Contains(t, result.Errors[0], "13+ in one of:")

	// As an additional path only the primary gate applies.
	totals[shared.AttributeEndurance] = 15
	totals[shared.AttributeWisdom] = 10
	assert.True(t, v.ValidatePath("defense", totals, false).Valid)
	totals[shared.AttributeEndurance] = 10
	assert.False(t, v.ValidatePath("defense", totals, false).Valid)

	assert.False(t, v.ValidatePath("void", totals, true).Valid)
	assert.True(t, v.ValidatePath("defense", nil, true).Valid, "no totals, no prerequisite check")
}

func TestValidateSkillChoices(t *testing.T) {
	v := newTestValidator(t)
	options := []string{"Arcana", "History", "Investigation", "Medicine", "Nature"}

	assert.True(t, v.ValidateSkillChoices([]string{"Arcana", "History"}, options, 2, nil).Valid)

	result := v.ValidateSkillChoices([]string{"Arcana"}, options, 2, nil)
	require.False(t, result.Valid)
	assert.Contains(t, result.Errors, "Must choose exactly 2 skills, got 1")

	result = v.ValidateSkillChoices([]string{"Arcana", "Arcana"}, options, 2, nil)
	require.False(t, result.Valid)
	assert.Contains(t, result.Errors, "Cannot choose the same skill twice")

	result = v.ValidateSkillChoices([]string{"Arcana", "Stealth"}, options, 2, nil)
	require.False(t, result.Valid)
	assert.Contains(t, result.Errors[0], "'Stealth' is not a valid option")

	result = v.ValidateSkillChoices([]string{"Arcana", "History"}, options, 2, []rulebook.Skill{rulebook.SkillHistory})
	require.False(t, result.Valid)
	assert.Contains(t, result.Errors, "'History' is already trained")
}

func TestValidateLanguageChoices(t *testing.T) {
	v := newTestValidator(t)

	assert.True(t, v.ValidateLanguageChoices([]string{"Elvish"}, 1, []string{"Common"}).Valid)

	result := v.ValidateLanguageChoices([]string{"Common"}, 1, []string{"Common"})
	require.False(t, result.Valid)
	assert.Contains(t, result.Errors, "Already know Common")

	result = v.ValidateLanguageChoices([]string{"Klingon"}, 1, nil)
	assert.True(t, result.Valid)
	assert.Contains(t, result.Warnings, "Unknown language: Klingon (may be valid)")
}

func TestResult_Merge(t *testing.T) {
	a := NewResult()
	a.AddWarning("minor")

	b := NewResult()
	b.AddError("fatal")

	a.Merge(b)
	assert.False(t, a.Valid)
	assert.Equal(t, []string{"fatal"}, a.Errors)
	assert.Equal(t, []string{"minor"}, a.Warnings)

	a.Merge(nil)
	assert.Len(t, a.Errors, 1)
}
