package rulebook

// AdvancementType identifies what an advancement point purchase buys.
type AdvancementType string

const (
	AdvancementSkillRank   AdvancementType = "skill_rank"
	AdvancementTrainSkill  AdvancementType = "train_skill"
	AdvancementInheritGold AdvancementType = "inherit_gold"
	AdvancementProficiency AdvancementType = "proficiency"
	AdvancementLanguage    AdvancementType = "language"
)

// AdvancementTypes lists every purchasable advancement in cost order.
var AdvancementTypes = []AdvancementType{
	AdvancementSkillRank,
	AdvancementTrainSkill,
	AdvancementInheritGold,
	AdvancementProficiency,
	AdvancementLanguage,
}

// advancementCosts maps each advancement type to its point cost.
var advancementCosts = map[AdvancementType]int{
	AdvancementSkillRank:   1,
	AdvancementTrainSkill:  4,
	AdvancementInheritGold: 5,
	AdvancementProficiency: 10,
	AdvancementLanguage:    10,
}

// AdvancementCost returns the point cost for an advancement type,
// or 0 if the type is unknown.
func AdvancementCost(t AdvancementType) int {
	return advancementCosts[t]
}

// IsValid reports whether the advancement type is purchasable.
func (t AdvancementType) IsValid() bool {
	_, ok := advancementCosts[t]
	return ok
}

// GoldPerInheritance is the gold granted by one inherit_gold purchase.
const GoldPerInheritance = 50

// MinPrimaryPathPoints is the talent point floor that must be spent on
// primary path talents each level, capped by the points available.
const MinPrimaryPathPoints = 4

// MinAdvancementPoints is the floor for advancement points gained per level.
const MinAdvancementPoints = 2

// abilityIncreaseLevels are the levels that grant an ability score increase.
var abilityIncreaseLevels = map[int]bool{4: true, 8: true, 12: true, 16: true}

// extraAttackLevels are the levels that grant an extra attack feature.
var extraAttackLevels = map[int]bool{3: true, 9: true}

// GrantsAbilityIncrease reports whether reaching the level grants an
// ability score increase (+2 to one attribute or +1 to two).
func GrantsAbilityIncrease(level int) bool {
	return abilityIncreaseLevels[level]
}

// GrantsExtraAttack reports whether reaching the level grants an extra attack.
func GrantsExtraAttack(level int) bool {
	return extraAttackLevels[level]
}

// TalentRankCost returns the talent points needed to buy the given rank.
// Rank N costs N points, so going from rank 0 to rank R costs R(R+1)/2 total.
func TalentRankCost(rank int) int {
	if rank < 1 {
		return 0
	}
	return rank
}
