package character

import (
	"context"

	"github.com/KirkDiggler/realm-forge/internal/advancement"
	"github.com/KirkDiggler/realm-forge/internal/domain/character"
	"github.com/KirkDiggler/realm-forge/internal/errors"
)

// GetLevelUpOptionsInput identifies a character and an optional target
// level. Zero targets the next level.
type GetLevelUpOptionsInput struct {
	CharacterID string
	TargetLevel int
}

// GetLevelUpOptionsOutput carries the budgets and grants for the level
type GetLevelUpOptionsOutput struct {
	Options *advancement.LevelUpOptions
}

// GetLevelUpOptions reports the budgets and grants for the next level
func (s *service) GetLevelUpOptions(ctx context.Context, input *GetLevelUpOptionsInput) (*GetLevelUpOptionsOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	char, err := s.characters.Get(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	opts, err := s.engine.Options(char, input.TargetLevel)
	if err != nil {
		return nil, err
	}
	return &GetLevelUpOptionsOutput{Options: opts}, nil
}

// LevelUpInput carries the character and the full batch of level-up
// choices. A nil request takes the next level with no purchases.
type LevelUpInput struct {
	CharacterID string
	Request     *advancement.LevelUpInput
}

// LevelUpOutput carries the applied result, including the advanced
// character as persisted
type LevelUpOutput struct {
	Result *advancement.LevelUpResult
}

// LevelUp applies a level up and persists the advanced character
func (s *service) LevelUp(ctx context.Context, input *LevelUpInput) (*LevelUpOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	char, err := s.characters.Get(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	result, err := s.engine.LevelUp(char, input.Request)
	if err != nil {
		return nil, err
	}

	if err := s.characters.Update(ctx, result.Character); err != nil {
		return nil, err
	}
	return &LevelUpOutput{Result: result}, nil
}

// GetLevelSummaryInput identifies a character
type GetLevelSummaryInput struct {
	CharacterID string
}

// GetLevelSummaryOutput carries the XP track standing
type GetLevelSummaryOutput struct {
	Summary *advancement.LevelSummary
}

// GetLevelSummary reports a character's standing on the XP track
func (s *service) GetLevelSummary(ctx context.Context, input *GetLevelSummaryInput) (*GetLevelSummaryOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	char, err := s.characters.Get(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	summary, err := s.engine.Summary(char)
	if err != nil {
		return nil, err
	}
	return &GetLevelSummaryOutput{Summary: summary}, nil
}

// AwardExperienceInput adds XP to a character
type AwardExperienceInput struct {
	CharacterID string
	XP          int
}

// AwardExperienceOutput carries the updated character and its new XP
// standing, so callers see how many level ups are now pending
type AwardExperienceOutput struct {
	Character *character.Character
	Summary   *advancement.LevelSummary
}

// AwardExperience adds XP and reports any levels now pending
func (s *service) AwardExperience(ctx context.Context, input *AwardExperienceInput) (*AwardExperienceOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}
	if input.XP <= 0 {
		return nil, errors.InvalidArgument("XP award must be positive")
	}

	char, err := s.characters.Get(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	char.AddExperience(input.XP)
	if err := s.characters.Update(ctx, char); err != nil {
		return nil, err
	}

	summary, err := s.engine.Summary(char)
	if err != nil {
		return nil, err
	}
	return &AwardExperienceOutput{Character: char, Summary: summary}, nil
}
