package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/realm-forge/internal/domain/character"
	"github.com/KirkDiggler/realm-forge/internal/domain/rulebook"
	"github.com/KirkDiggler/realm-forge/internal/domain/shared"
)

func TestValidateTalentAllocation(t *testing.T) {
	v := newTestValidator(t)

	t.Run("within budget", func(t *testing.T) {
		result := v.ValidateTalentAllocation([]TalentSpend{
			{PathKey: "mystic", Points: 4},
			{PathKey: "", Points: 2},
		}, 7, 4, "mystic")
		assert.True(t, result.Valid)
	})

	t.Run("overspend", func(t *testing.T) {
		result := v.ValidateTalentAllocation([]TalentSpend{
			{PathKey: "mystic", Points: 5},
			{PathKey: "", Points: 4},
		}, 7, 4, "mystic")
		require.False(t, result.Valid)
		assert.Contains(t, result.Errors, "Spent 9 TP but only have 7")
	})

	t.Run("primary path minimum", func(t *testing.T) {
		result := v.ValidateTalentAllocation([]TalentSpend{
			{PathKey: "martial", Points: 3},
		}, 7, 4, "mystic")
		require.False(t, result.Valid)
		assert.Contains(t, result.Errors, "Must spend at least 4 TP in primary path (spent 0)")
	})
}

func TestValidateTalentChoice(t *testing.T) {
	v := newTestValidator(t)

	assert.True(t, v.ValidateTalentChoice("toughness", 1, 0).Valid)

	result := v.ValidateTalentChoice("", 1, 0)
	require.False(t, result.Valid)
	assert.Contains(t, result.Errors, "Talent ID is required")

	result = v.ValidateTalentChoice("time_stop", 1, 0)
	require.False(t, result.Valid)
	assert.Contains(t, result.Errors, "Unknown talent: time_stop")

	result = v.ValidateTalentChoice("toughness", 1, 1)
	require.False(t, result.Valid)
	assert.Contains(t, result.Errors, "New rank (1) must be higher than current (1)")

	result = v.ValidateTalentChoice("toughness", 4, 3)
	require.False(t, result.Valid)
	assert.Contains(t, result.Errors, "Talent toughness max rank is 3 (got 4)")
}

func TestValidateAdvancementChoice(t *testing.T) {
	v := newTestValidator(t)

	c := character.NewCharacter("char-1")
	c.Skill(rulebook.SkillArcana).Trained = true
	c.Skill(rulebook.SkillArcana).Rank = 1
	c.AddLanguage("Common")
	c.AddProficiency("Light Armor")

	t.Run("skill rank on trained skill", func(t *testing.T) {
		result := v.ValidateAdvancementChoice(rulebook.AdvancementSkillRank, "Arcana", 1, c)
		assert.True(t, result.Valid)
	})

	t.Run("skill rank on untrained skill", func(t *testing.T) {
		result := v.ValidateAdvancementChoice(rulebook.AdvancementSkillRank, "Stealth", 1, c)
		require.False(t, result.Valid)
		assert.Contains(t, result.Errors, "Cannot increase rank of untrained skill: Stealth")
	})

	t.Run("train already trained skill", func(t *testing.T) {
		result := v.ValidateAdvancementChoice(rulebook.AdvancementTrainSkill, "Arcana", 4, c)
		require.False(t, result.Valid)
		assert.Contains(t, result.Errors, "Already trained in Arcana")
	})

	t.Run("wrong cost", func(t *testing.T) {
		result := v.ValidateAdvancementChoice(rulebook.AdvancementTrainSkill, "Stealth", 1, c)
		require.False(t, result.Valid)
		assert.Contains(t, result.Errors, "Training skill costs 4 AP (spent 1)")
	})

	t.Run("known language", func(t *testing.T) {
		result := v.ValidateAdvancementChoice(rulebook.AdvancementLanguage, "Common", 10, c)
		require.False(t, result.Valid)
		assert.Contains(t, result.Errors, "Already know language: Common")
	})

	t.Run("duplicate proficiency warns", func(t *testing.T) {
		result := v.ValidateAdvancementChoice(rulebook.AdvancementProficiency, "Light Armor", 10, c)
		assert.True(t, result.Valid)
		assert.Contains(t, result.Warnings, "Already have proficiency: Light Armor")
	})

	t.Run("unknown type", func(t *testing.T) {
		result := v.ValidateAdvancementChoice(rulebook.AdvancementType("buy_castle"), "keep", 1, c)
		require.False(t, result.Valid)
		assert.Contains(t, result.Errors, "Unknown advancement type: buy_castle")
	})
}

func TestValidateAbilityIncrease(t *testing.T) {
	v := newTestValidator(t)

	t.Run("plus two to one", func(t *testing.T) {
		result := v.ValidateAbilityIncrease(map[shared.Attribute]int{shared.AttributeMight: 2}, 4)
		assert.True(t, result.Valid)
	})

	t.Run("plus one to two", func(t *testing.T) {
		result := v.ValidateAbilityIncrease(map[shared.Attribute]int{
			shared.AttributeMight:  1,
			shared.AttributeWisdom: 1,
		}, 8)
		assert.True(t, result.Valid)
	})

	t.Run("missing at milestone level", func(t *testing.T) {
		result := v.ValidateAbilityIncrease(nil, 4)
		require.False(t, result.Valid)
		assert.Contains(t, result.Errors, "Level 4 requires an ability increase choice")
	})

	t.Run("not a milestone level", func(t *testing.T) {
		assert.True(t, v.ValidateAbilityIncrease(nil, 5).Valid)

		result := v.ValidateAbilityIncrease(map[shared.Attribute]int{shared.AttributeMight: 2}, 5)
		require.False(t, result.Valid)
		assert.Contains(t, result.Errors, "Level 5 does not grant ability increase")
	})

	t.Run("bad shapes", func(t *testing.T) {
		result := v.ValidateAbilityIncrease(map[shared.Attribute]int{shared.AttributeMight: 3}, 4)
		require.False(t, result.Valid)
		assert.Contains(t, result.Errors, "Ability increase must total +2 (got 3)")

		result = v.ValidateAbilityIncrease(map[shared.Attribute]int{
			shared.AttributeMight:   2,
			shared.AttributeAgility: 0,
		}, 4)
		require.False(t, result.Valid)
		assert.Contains(t, result.Errors, "Two ability increases must each be +1")

		result = v.ValidateAbilityIncrease(map[shared.Attribute]int{
			shared.AttributeMight:     1,
			shared.AttributeAgility:   1,
			shared.AttributeEndurance: 1,
		}, 4)
		require.False(t, result.Valid)
		assert.Contains(t, result.Errors, "Can increase 1 or 2 abilities, not 3")

		result = v.ValidateAbilityIncrease(map[shared.Attribute]int{shared.Attribute("Luck"): 2}, 4)
		require.False(t, result.Valid)
		assert.Contains(t, result.Errors, "Unknown ability: Luck")
	})
}

func TestValidateCharacter(t *testing.T) {
	v := newTestValidator(t)

	t.Run("complete character passes", func(t *testing.T) {
		c := character.NewCharacter("char-1")
		c.RaceKey = "elf"
		c.AncestryKey = "sylari"
		c.ProfessionKey = "scholar"
		c.PrimaryPath = "mystic"
		c.BackgroundKey = "scholar"
		c.Ability(shared.AttributeIntellect).Roll = 15
		c.Ability(shared.AttributeIntellect).Misc = 2
		c.Ability(shared.AttributeWisdom).Roll = 12
		c.Ability(shared.AttributeWisdom).Race = 1
		c.Recalculate(nil)
		c.Health.Max = 9
		c.Health.Current = 9

		result := v.ValidateCharacter(c)
		assert.True(t, result.Valid, "errors: %v", result.Errors)
		assert.Empty(t, result.Errors)
	})

	t.Run("missing selections", func(t *testing.T) {
		c := character.NewCharacter("char-2")
		c.Health.Max = 5

		result := v.ValidateCharacter(c)
		require.False(t, result.Valid)
		assert.Contains(t, result.Errors, "Missing required field: race")
		assert.Contains(t, result.Errors, "Missing required field: primary_path")
	})

	t.Run("prerequisites rechecked", func(t *testing.T) {
		c := character.NewCharacter("char-3")
		c.RaceKey = "human"
		c.AncestryKey = "valeborn"
		c.ProfessionKey = "warrior"
		c.DutyKey = "fighter"
		c.PrimaryPath = "defense"
		c.BackgroundKey = "soldier"
		c.Health.Max = 12

		result := v.ValidateCharacter(c)
		require.False(t, result.Valid)
		assert.Contains(t, result.Errors, "Path Defense requires Endurance 15+, you have 10")
	})

	t.Run("hp floor", func(t *testing.T) {
		c := character.NewCharacter("char-4")
		c.RaceKey = "elf"
		c.AncestryKey = "sylari"
		c.ProfessionKey = "scholar"
		c.PrimaryPath = "mystic"
		c.BackgroundKey = "scholar"
		c.Ability(shared.AttributeIntellect).Roll = 17
		c.Ability(shared.AttributeWisdom).Roll = 13
		c.Recalculate(nil)

		result := v.ValidateCharacter(c)
		require.False(t, result.Valid)
		assert.Contains(t, result.Errors, "Max HP must be at least 1 (got 0)")
	})
}
