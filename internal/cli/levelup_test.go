package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/realm-forge/internal/advancement"
	"github.com/KirkDiggler/realm-forge/internal/domain/rulebook"
	"github.com/KirkDiggler/realm-forge/internal/domain/shared"
)

func TestParseTalentFlags(t *testing.T) {
	purchases, err := parseTalentFlags([]string{"arcane_bolt=2", "iron_skin"})
	require.NoError(t, err)

	require.Len(t, purchases, 2)
	assert.Equal(t, advancement.TalentPurchase{TalentKey: "arcane_bolt", NewRank: 2}, purchases[0])
	assert.Equal(t, advancement.TalentPurchase{TalentKey: "iron_skin", NewRank: 1}, purchases[1])
}

func TestParseTalentFlags_BadRank(t *testing.T) {
	_, err := parseTalentFlags([]string{"arcane_bolt=two"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rank must be a number")
}

func TestParseAdvanceFlags(t *testing.T) {
	purchases, err := parseAdvanceFlags([]string{"skill_rank=Arcana", "inherit_gold"})
	require.NoError(t, err)

	require.Len(t, purchases, 2)
	assert.Equal(t, advancement.Purchase{Type: rulebook.AdvancementSkillRank, Target: "Arcana"}, purchases[0])
	assert.Equal(t, advancement.Purchase{Type: rulebook.AdvancementInheritGold}, purchases[1])
}

func TestParseAdvanceFlags_UnknownType(t *testing.T) {
	_, err := parseAdvanceFlags([]string{"buy_castle=keep"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown type")
}

func TestParseIncreaseFlags(t *testing.T) {
	increase, err := parseIncreaseFlags([]string{"might=1", "Agility=1"})
	require.NoError(t, err)

	assert.Equal(t, map[shared.Attribute]int{
		shared.AttributeMight:   1,
		shared.AttributeAgility: 1,
	}, increase)
}

func TestParseIncreaseFlags_Empty(t *testing.T) {
	increase, err := parseIncreaseFlags(nil)
	require.NoError(t, err)
	assert.Nil(t, increase)
}

func TestParseIncreaseFlags_UnknownAttribute(t *testing.T) {
	_, err := parseIncreaseFlags([]string{"luck=2"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown attribute")
}
