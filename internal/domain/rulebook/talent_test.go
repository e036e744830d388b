package rulebook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/realm-forge/internal/domain/shared"
)

func TestTalentPrerequisites_Check_Abilities(t *testing.T) {
	prereqs := &TalentPrerequisites{
		Abilities: map[shared.Attribute]int{shared.AttributeAgility: 13},
	}

	ok, failures := prereqs.Check(map[shared.Attribute]int{shared.AttributeAgility: 14}, 1, nil, 1)
	assert.True(t, ok)
	assert.Empty(t, failures)

	ok, failures = prereqs.Check(map[shared.Attribute]int{shared.AttributeAgility: 12}, 1, nil, 1)
	assert.False(t, ok)
	require.Len(t, failures, 1)
	assert.Equal(t, "Need Agility 13+, have 12", failures[0])
}

func TestTalentPrerequisites_Check_AnyLogic(t *testing.T) {
	prereqs := &TalentPrerequisites{
		Abilities: map[shared.Attribute]int{
			shared.AttributeMight:   13,
			shared.AttributeAgility: 13,
		},
		Logic: PrereqAny,
	}

	// One of the two is enough.
	ok, _ := prereqs.Check(map[shared.Attribute]int{
		shared.AttributeMight:   10,
		shared.AttributeAgility: 13,
	}, 1, nil, 1)
	assert.True(t, ok)

	ok, failures := prereqs.Check(map[shared.Attribute]int{
		shared.AttributeMight:   10,
		shared.AttributeAgility: 10,
	}, 1, nil, 1)
	assert.False(t, ok)
	require.Len(t, failures, 1)
	assert.Equal(t, "Need one of: Agility 13+, Might 13+", failures[0])
}

func TestTalentPrerequisites_Check_LevelByRank(t *testing.T) {
	prereqs := &TalentPrerequisites{
		LevelByRank: map[int]int{2: 5, 3: 10},
	}

	// Rank 1 has no level gate.
	ok, _ := prereqs.Check(nil, 1, nil, 1)
	assert.True(t, ok)

	ok, failures := prereqs.Check(nil, 4, nil, 2)
	assert.False(t, ok)
	require.Len(t, failures, 1)
	assert.Equal(t, "Rank 2 requires level 5", failures[0])

	ok, _ = prereqs.Check(nil, 5, nil, 2)
	assert.True(t, ok)
}

func TestTalentPrerequisites_Check_RequiredTalents(t *testing.T) {
	prereqs := &TalentPrerequisites{
		RequiredTalents: []string{shared.TalentKeyShieldWall},
	}

	ok, failures := prereqs.Check(nil, 1, map[string]int{}, 1)
	assert.False(t, ok)
	require.Len(t, failures, 1)
	assert.Equal(t, "Requires talent: shield_wall", failures[0])

	ok, _ = prereqs.Check(nil, 1, map[string]int{shared.TalentKeyShieldWall: 1}, 1)
	assert.True(t, ok)
}

func TestTalent_CanAcquire(t *testing.T) {
	talent := Talent{
		Key:     "lucky",
		MaxRank: 3,
		Ranks:   map[int]string{1: "one", 2: "two", 3: "three"},
	}

	ok, _ := talent.CanAcquire(nil, 1, map[string]int{}, 1)
	assert.True(t, ok)

	ok, failures := talent.CanAcquire(nil, 1, map[string]int{"lucky": 3}, 4)
	assert.False(t, ok)
	assert.Contains(t, failures, "Max rank is 3")

	ok, failures = talent.CanAcquire(nil, 1, map[string]int{"lucky": 2}, 2)
	assert.False(t, ok)
	assert.Contains(t, failures, "Already at rank 2")
}

func TestTalent_Cost(t *testing.T) {
	talent := Talent{Key: "lucky", MaxRank: 3}

	// Rank N costs N points, so 0 to 3 costs 1+2+3.
	assert.Equal(t, 1, talent.Cost(0, 1))
	assert.Equal(t, 2, talent.Cost(1, 2))
	assert.Equal(t, 5, talent.Cost(1, 3))
	assert.Equal(t, 6, talent.Cost(0, 3))
	assert.Equal(t, 0, talent.Cost(2, 2))
}

func TestTalent_CumulativeDescription(t *testing.T) {
	talent := Talent{
		Key:     "toughness",
		MaxRank: 3,
		Ranks:   map[int]string{1: "+3 hp", 2: "+6 hp", 3: "+9 hp"},
	}

	assert.Equal(t, "Rank 1: +3 hp\nRank 2: +6 hp", talent.CumulativeDescription(2))
	assert.Equal(t, "+6 hp", talent.RankDescription(2))
}

func TestDefaultTalents_FightingStyleChoice(t *testing.T) {
	catalog := DefaultCatalog()

	style, err := catalog.Talent(shared.TalentKeyFightingStyle)
	require.NoError(t, err)
	assert.True(t, style.RequiresChoice)
	assert.Equal(t, "fighting_style", style.ChoiceType)
	assert.Contains(t, style.ChoiceOptions, "Dueling")
	assert.Contains(t, style.ChoiceOptions, "Two-Weapon Fighting")
}
