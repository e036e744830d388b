package advancement

import (
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/realm-forge/internal/domain/character"
	"github.com/KirkDiggler/realm-forge/internal/domain/rulebook"
	"github.com/KirkDiggler/realm-forge/internal/domain/shared"
	"github.com/KirkDiggler/realm-forge/internal/errors"
	"github.com/KirkDiggler/realm-forge/internal/validator"
)

// TalentPurchase buys one rank of a talent. NewRank must be exactly one
// above the character's current rank, counting earlier purchases in the
// same batch.
type TalentPurchase struct {
	TalentKey string `json:"talent_key"`
	NewRank   int    `json:"new_rank"`

	// ChoiceData carries the sub-selection for talents that require
	// one on first purchase, keyed by the talent's choice type.
	ChoiceData map[string]string `json:"choice_data,omitempty"`
}

// Purchase spends advancement points on a skill rank, new skill,
// proficiency, language, or inheritance.
type Purchase struct {
	Type   rulebook.AdvancementType `json:"type"`
	Target string                   `json:"target,omitempty"`
}

// LevelUpInput carries every choice for one level up.
type LevelUpInput struct {
	// TargetLevel defaults to the character's level + 1. Levels are
	// taken one at a time.
	TargetLevel int `json:"target_level,omitempty"`

	Talents      []TalentPurchase `json:"talents,omitempty"`
	Advancements []Purchase       `json:"advancements,omitempty"`

	// AbilityIncrease is required at the levels that grant one:
	// +2 to a single attribute or +1 to two distinct ones.
	AbilityIncrease map[shared.Attribute]int `json:"ability_increase,omitempty"`

	// HPRoll is the hit die result. Zero rolls the die when the engine
	// has a roller, otherwise the flat average is used.
	HPRoll int `json:"hp_roll,omitempty"`
}

// LevelUpResult reports an applied level up. Character is a new
// snapshot; the input character is never modified.
type LevelUpResult struct {
	Character *character.Character `json:"character"`

	Level  int `json:"level"`
	HPRoll int `json:"hp_roll"`
	HPGain int `json:"hp_gain"`

	TalentPointsSpent      int `json:"talent_points_spent"`
	AdvancementPointsSpent int `json:"advancement_points_spent"`

	SpellcraftingGain int  `json:"spellcrafting_gain,omitempty"`
	ExtraAttack       bool `json:"extra_attack"`
}

// rejection accumulates every reason a level up cannot proceed. The
// first failure's code becomes the returned error's code.
type rejection struct {
	code    errors.Code
	reasons []string
}

func (r *rejection) add(code errors.Code, reasons ...string) {
	if len(reasons) == 0 {
		return
	}
	if len(r.reasons) == 0 {
		r.code = code
	}
	r.reasons = append(r.reasons, reasons...)
}

func (r *rejection) err() error {
	if len(r.reasons) == 0 {
		return nil
	}
	return errors.New(r.code, "level up rejected: "+strings.Join(r.reasons, "; ")).
		WithMeta("reasons", r.reasons)
}

// LevelUp validates the whole batch of choices and, only if every check
// passes, applies them to a clone of the character. On failure the
// returned error carries the full reason list under the "reasons" meta
// key and the input character is untouched.
func (e *Engine) LevelUp(c *character.Character, input *LevelUpInput) (*LevelUpResult, error) {
	if c == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	if input == nil {
		input = &LevelUpInput{}
	}

	target := input.TargetLevel
	if target == 0 {
		target = c.Level + 1
	}
	if target <= c.Level {
		return nil, errors.InvalidArgumentf("Target level (%d) must exceed current (%d)", target, c.Level)
	}
	if target != c.Level+1 {
		return nil, errors.InvalidArgumentf("Levels are taken one at a time (current %d, target %d)", c.Level, target)
	}

	opts, err := e.Options(c, target)
	if err != nil {
		return nil, err
	}

	next := c.Clone()

	rej := &rejection{}
	tpSpent := e.validateTalents(next, opts, input.Talents, rej)
	apSpent := e.validateAdvancements(next, opts, input.Advancements, rej)
	if sub := e.validator.ValidateAbilityIncrease(input.AbilityIncrease, target); !sub.Valid {
		rej.add(errors.CodeInvalidArgument, sub.Errors...)
	}
	if err := rej.err(); err != nil {
		return nil, err
	}

	hpRoll, err := e.rollHitDie(input.HPRoll)
	if err != nil {
		return nil, err
	}

	next.Level = target

	for attr, bonus := range input.AbilityIncrease {
		score := next.Ability(attr)
		score.Misc += bonus
		score.Recalculate()
	}

	e.applyTalents(next, input.Talents)
	e.applyAdvancements(next, input.Advancements)

	hpGain := hpRoll + next.Ability(shared.AttributeEndurance).Mod
	if hpGain < 1 {
		hpGain = 1
	}
	next.Health.Max += hpGain
	next.Health.Current = next.Health.Max

	if opts.SpellcraftingGain > 0 {
		next.Spellcrafting.CraftingPointsMax += opts.SpellcraftingGain
		next.Spellcrafting.CastingPoints.Max += opts.CastingPointsGain
		next.Spellcrafting.CastingPoints.Current = next.Spellcrafting.CastingPoints.Max
	}

	if opts.GrantsExtraAttack {
		next.AddFeature(
			fmt.Sprintf("Extra Attack (%d)", target),
			fmt.Sprintf("You can attack twice when you take the Attack action (gained at level %d).", target),
		)
	}

	recordUnspent(next, opts, tpSpent, apSpent)

	next.Recalculate(e.catalog)
	next.UpdatedAt = time.Now().UTC()

	return &LevelUpResult{
		Character:              next,
		Level:                  target,
		HPRoll:                 hpRoll,
		HPGain:                 hpGain,
		TalentPointsSpent:      tpSpent,
		AdvancementPointsSpent: apSpent,
		SpellcraftingGain:      opts.SpellcraftingGain,
		ExtraAttack:            opts.GrantsExtraAttack,
	}, nil
}

// validateTalents checks the purchase batch in order, simulating rank
// accumulation so a talent may climb several ranks in one level up as
// long as each step is sequential and affordable. Returns the talent
// points the batch costs.
func (e *Engine) validateTalents(c *character.Character, opts *LevelUpOptions, purchases []TalentPurchase, rej *rejection) int {
	if len(purchases) == 0 {
		return 0
	}

	owned := c.TalentRanks()
	totals := c.AbilityTotals()
	spends := make([]validator.TalentSpend, 0, len(purchases))
	spent := 0

	for _, purchase := range purchases {
		talent, err := e.catalog.Talent(purchase.TalentKey)
		if err != nil {
			rej.add(errors.CodeNotFound, fmt.Sprintf("Unknown talent: %s", purchase.TalentKey))
			continue
		}

		cost := rulebook.TalentRankCost(purchase.NewRank)
		spent += cost
		spends = append(spends, validator.TalentSpend{
			PathKey: talent.PathKey,
			Points:  cost,
		})

		current := owned[talent.Key]
		if purchase.NewRank != current+1 {
			rej.add(errors.CodePrerequisiteNotMet,
				fmt.Sprintf("Talent %s next rank is %d (got %d)", talent.Key, current+1, purchase.NewRank))
			continue
		}

		if ok, failures := talent.CanAcquire(totals, opts.TargetLevel, owned, purchase.NewRank); !ok {
			for _, failure := range failures {
				rej.add(errors.CodePrerequisiteNotMet, fmt.Sprintf("%s: %s", talent.Key, failure))
			}
			continue
		}

		if talent.Prerequisites != nil && talent.Prerequisites.AllPathTalents {
			missing := e.missingPathTalents(talent, owned)
			if len(missing) > 0 {
				for _, key := range missing {
					rej.add(errors.CodePrerequisiteNotMet, fmt.Sprintf("%s: Requires talent: %s", talent.Key, key))
				}
				continue
			}
		}

		if current == 0 && talent.RequiresChoice {
			if reason := checkTalentChoice(talent, purchase.ChoiceData); reason != "" {
				rej.add(errors.CodeInvalidArgument, reason)
				continue
			}
		}

		owned[talent.Key] = purchase.NewRank
	}

	minPrimary := opts.MinPrimaryPathPoints
	if c.PrimaryPath == "" {
		minPrimary = 0
	}
	if allocation := e.validator.ValidateTalentAllocation(spends, opts.TalentPoints, minPrimary, c.PrimaryPath); !allocation.Valid {
		rej.add(errors.CodeBudgetExceeded, allocation.Errors...)
	}

	return spent
}

// missingPathTalents lists the path roster a capstone still needs.
func (e *Engine) missingPathTalents(capstone *rulebook.Talent, owned map[string]int) []string {
	var missing []string
	for _, other := range e.catalog.TalentsForPath(capstone.PathKey) {
		if other.Key == capstone.Key {
			continue
		}
		if owned[other.Key] == 0 {
			missing = append(missing, other.Key)
		}
	}
	return missing
}

// checkTalentChoice enforces the sub-selection a requires-choice talent
// needs on first purchase. Returns the failure reason, or "".
func checkTalentChoice(talent *rulebook.Talent, choiceData map[string]string) string {
	if talent.ChoiceType == "" {
		if len(choiceData) == 0 {
			return fmt.Sprintf("Talent %s requires a choice", talent.Key)
		}
		return ""
	}

	value := choiceData[talent.ChoiceType]
	if value == "" {
		return fmt.Sprintf("Talent %s requires a %s choice", talent.Key, talent.ChoiceType)
	}
	if len(talent.ChoiceOptions) == 0 {
		return ""
	}
	for _, option := range talent.ChoiceOptions {
		if option == value {
			return ""
		}
	}
	return fmt.Sprintf("Invalid %s for talent %s: %q", talent.ChoiceType, talent.Key, value)
}

// validateAdvancements checks the advancement purchases against the
// character's current sheet and the level's point budget. Returns the
// advancement points the batch costs.
func (e *Engine) validateAdvancements(c *character.Character, opts *LevelUpOptions, purchases []Purchase, rej *rejection) int {
	if len(purchases) == 0 {
		return 0
	}

	spent := 0
	seen := make(map[string]bool, len(purchases))

	for _, purchase := range purchases {
		if !purchase.Type.IsValid() {
			rej.add(errors.CodeInvalidArgument, fmt.Sprintf("Unknown advancement type: %s", purchase.Type))
			continue
		}
		spent += rulebook.AdvancementCost(purchase.Type)

		if purchase.Type != rulebook.AdvancementInheritGold {
			key := string(purchase.Type) + "/" + purchase.Target
			if seen[key] {
				rej.add(errors.CodeAlreadyPossessed, fmt.Sprintf("Duplicate advancement target: %s", purchase.Target))
				continue
			}
			seen[key] = true
		}

		switch purchase.Type {
		case rulebook.AdvancementSkillRank:
			skill := rulebook.ParseSkill(purchase.Target)
			if skill == "" {
				rej.add(errors.CodeNotFound, fmt.Sprintf("Unknown skill: %s", purchase.Target))
			} else if entry, ok := c.Skills[skill]; !ok || !entry.Trained {
				rej.add(errors.CodeInvalidArgument, fmt.Sprintf("Cannot increase rank of untrained skill: %s", purchase.Target))
			}
		case rulebook.AdvancementTrainSkill:
			skill := rulebook.ParseSkill(purchase.Target)
			if skill == "" {
				rej.add(errors.CodeNotFound, fmt.Sprintf("Unknown skill: %s", purchase.Target))
			} else if entry, ok := c.Skills[skill]; ok && entry.Trained {
				rej.add(errors.CodeAlreadyPossessed, fmt.Sprintf("Already trained in %s", purchase.Target))
			}
		case rulebook.AdvancementLanguage:
			if c.HasLanguage(purchase.Target) {
				rej.add(errors.CodeAlreadyPossessed, fmt.Sprintf("Already know language: %s", purchase.Target))
			}
		}
	}

	if spent > opts.AdvancementPoints {
		rej.add(errors.CodeBudgetExceeded, fmt.Sprintf("Spent %d AP but only have %d", spent, opts.AdvancementPoints))
	}

	return spent
}

func (e *Engine) applyTalents(c *character.Character, purchases []TalentPurchase) {
	for _, purchase := range purchases {
		known := c.Talent(purchase.TalentKey)
		if known != nil {
			known.Rank = purchase.NewRank
			for k, v := range purchase.ChoiceData {
				if known.ChoiceData == nil {
					known.ChoiceData = make(map[string]string)
				}
				known.ChoiceData[k] = v
			}
			continue
		}

		talent, err := e.catalog.Talent(purchase.TalentKey)
		if err != nil {
			continue
		}
		c.Talents = append(c.Talents, &character.KnownTalent{
			Key:        talent.Key,
			Name:       talent.Name,
			Rank:       purchase.NewRank,
			PathKey:    talent.PathKey,
			ChoiceData: purchase.ChoiceData,
		})
	}
}

func (e *Engine) applyAdvancements(c *character.Character, purchases []Purchase) {
	for _, purchase := range purchases {
		switch purchase.Type {
		case rulebook.AdvancementSkillRank:
			entry := c.Skill(rulebook.ParseSkill(purchase.Target))
			entry.Rank++
			entry.Total = entry.Mod + entry.Rank + entry.Misc
		case rulebook.AdvancementTrainSkill:
			entry := c.Skill(rulebook.ParseSkill(purchase.Target))
			entry.Trained = true
			if entry.Rank == 0 {
				entry.Rank = 1
			}
			entry.Total = entry.Mod + entry.Rank + entry.Misc
		case rulebook.AdvancementProficiency:
			c.AddProficiency(purchase.Target)
		case rulebook.AdvancementLanguage:
			c.AddLanguage(purchase.Target)
		case rulebook.AdvancementInheritGold:
			c.Gold += rulebook.GoldPerInheritance
		}
	}
}

func (e *Engine) rollHitDie(provided int) (int, error) {
	if provided > 0 {
		return provided, nil
	}
	if e.roller == nil {
		return averageHitRoll, nil
	}
	result, err := e.roller.Roll(1, hitDieSides, 0)
	if err != nil {
		return 0, errors.Wrap(err, "rolling hit die")
	}
	return result.Total, nil
}

// recordUnspent notes leftover points on the sheet so they are not
// silently lost between sessions.
func recordUnspent(c *character.Character, opts *LevelUpOptions, tpSpent, apSpent int) {
	tpLeft := opts.TalentPoints - tpSpent
	apLeft := opts.AdvancementPoints - apSpent
	if tpLeft <= 0 && apLeft <= 0 {
		return
	}

	note := fmt.Sprintf("Level %d: %d TP, %d AP unspent", opts.TargetLevel, max(tpLeft, 0), max(apLeft, 0))
	if c.StoredAdvance == "" {
		c.StoredAdvance = note
		return
	}
	c.StoredAdvance += "; " + note
}
