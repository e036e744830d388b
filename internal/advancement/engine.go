// Package advancement applies level ups. The engine computes the point
// budgets a level grants, validates a batch of talent and advancement
// purchases against them, and applies everything at once or not at all.
package advancement

import (
	"github.com/KirkDiggler/realm-forge/internal/dice"
	"github.com/KirkDiggler/realm-forge/internal/domain/character"
	"github.com/KirkDiggler/realm-forge/internal/domain/rulebook"
	"github.com/KirkDiggler/realm-forge/internal/domain/shared"
	"github.com/KirkDiggler/realm-forge/internal/errors"
	"github.com/KirkDiggler/realm-forge/internal/validator"
)

// Hit die rolled per level; the flat average stands in when no roller
// is configured and no roll is supplied.
const (
	hitDieSides    = 8
	averageHitRoll = 5
)

// Engine advances characters through levels against a loaded catalog.
type Engine struct {
	catalog   *rulebook.Catalog
	validator *validator.Validator
	roller    dice.Roller
}

// EngineConfig holds the engine's dependencies.
type EngineConfig struct {
	Catalog *rulebook.Catalog

	// Roller rolls hit dice when a level up does not supply a roll.
	// Leave nil to take the flat average instead.
	Roller dice.Roller
}

// NewEngine creates an advancement engine.
func NewEngine(cfg *EngineConfig) (*Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if cfg.Catalog == nil {
		return nil, errors.InvalidArgument("catalog is required")
	}

	return &Engine{
		catalog:   cfg.Catalog,
		validator: validator.New(cfg.Catalog),
		roller:    cfg.Roller,
	}, nil
}

// LevelUpOptions describes the budgets and grants available when
// advancing to a level.
type LevelUpOptions struct {
	CurrentLevel int `json:"current_level"`
	TargetLevel  int `json:"target_level"`

	// TalentPoints is the primary path's talent attribute modifier + 5.
	TalentPoints int `json:"talent_points"`

	// MinPrimaryPathPoints must be spent on primary path talents,
	// capped by the points available.
	MinPrimaryPathPoints int `json:"min_primary_path_points"`

	// AdvancementPoints is the Intellect modifier, floored at 2.
	AdvancementPoints int `json:"advancement_points"`

	GrantsAbilityIncrease bool `json:"grants_ability_increase"`
	GrantsExtraAttack     bool `json:"grants_extra_attack"`

	// SpellcraftingGain and CastingPointsGain apply only when the
	// primary path grants spellcasting.
	SpellcraftingGain int `json:"spellcrafting_gain"`
	CastingPointsGain int `json:"casting_points_gain"`

	AvailableTalents []*rulebook.Talent `json:"available_talents"`
	CurrentTalents   map[string]int     `json:"current_talents"`
	TrainedSkills    []rulebook.Skill   `json:"trained_skills"`
}

// Options reports what a character has to work with at the target
// level. Zero targetLevel means the next level. Does not mutate the
// character.
func (e *Engine) Options(c *character.Character, targetLevel int) (*LevelUpOptions, error) {
	if c == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	if targetLevel == 0 {
		targetLevel = c.Level + 1
	}
	if targetLevel <= c.Level {
		return nil, errors.InvalidArgumentf("Target level (%d) must exceed current (%d)", targetLevel, c.Level)
	}

	tp := e.talentPoints(c)

	opts := &LevelUpOptions{
		CurrentLevel:          c.Level,
		TargetLevel:           targetLevel,
		TalentPoints:          tp,
		MinPrimaryPathPoints:  min(rulebook.MinPrimaryPathPoints, tp),
		AdvancementPoints:     e.advancementPoints(c),
		GrantsAbilityIncrease: rulebook.GrantsAbilityIncrease(targetLevel),
		GrantsExtraAttack:     rulebook.GrantsExtraAttack(targetLevel),
		AvailableTalents:      e.availableTalents(c),
		CurrentTalents:        c.TalentRanks(),
		TrainedSkills:         c.TrainedSkills(),
	}

	if path, err := e.catalog.Path(c.PrimaryPath); err == nil && path.Spellcasting {
		gain := c.Ability(shared.AttributeIntellect).Mod + targetLevel
		opts.SpellcraftingGain = gain
		opts.CastingPointsGain = gain
	}

	return opts, nil
}

// talentPoints is the per-level talent point budget, driven by the
// primary path's talent attribute. Characters without a recognized
// primary path fall back to the flat 5.
func (e *Engine) talentPoints(c *character.Character) int {
	path, err := e.catalog.Path(c.PrimaryPath)
	if err != nil {
		return 5
	}
	return path.TalentPointsPerLevel(c.AbilityMods())
}

func (e *Engine) advancementPoints(c *character.Character) int {
	mod := c.Ability(shared.AttributeIntellect).Mod
	if mod < rulebook.MinAdvancementPoints {
		return rulebook.MinAdvancementPoints
	}
	return mod
}

// availableTalents lists what the character may buy: talents of every
// joined path plus the general pool, in catalog order.
func (e *Engine) availableTalents(c *character.Character) []*rulebook.Talent {
	var out []*rulebook.Talent
	seen := make(map[string]bool)

	add := func(talents []*rulebook.Talent) {
		for _, talent := range talents {
			if seen[talent.Key] {
				continue
			}
			seen[talent.Key] = true
			out = append(out, talent)
		}
	}

	if c.PrimaryPath != "" {
		add(e.catalog.TalentsForPath(c.PrimaryPath))
	}
	for _, pathKey := range c.Paths {
		add(e.catalog.TalentsForPath(pathKey))
	}
	add(e.catalog.GeneralTalents())

	return out
}
