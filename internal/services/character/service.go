// Package character exposes the creation and advancement flows as a
// single service: drafts move through the builder's steps, finalize
// into stored characters, and stored characters level up through the
// advancement engine. All persistence goes through the repositories.
package character

import (
	"context"

	"github.com/KirkDiggler/realm-forge/internal/advancement"
	"github.com/KirkDiggler/realm-forge/internal/dice"
	"github.com/KirkDiggler/realm-forge/internal/domain/character"
	"github.com/KirkDiggler/realm-forge/internal/domain/rulebook"
	"github.com/KirkDiggler/realm-forge/internal/errors"
	characterRepo "github.com/KirkDiggler/realm-forge/internal/repositories/characters"
	draftRepo "github.com/KirkDiggler/realm-forge/internal/repositories/drafts"
	"github.com/KirkDiggler/realm-forge/internal/uuid"
	"github.com/KirkDiggler/realm-forge/internal/validator"
)

//go:generate mockgen -destination=mock/mock.go -package=mockcharacters -source=service.go

// Service defines the character service interface
type Service interface {
	// StartDraft opens a new draft for an owner
	StartDraft(ctx context.Context, input *StartDraftInput) (*StartDraftOutput, error)

	// GetDraft retrieves a draft by ID
	GetDraft(ctx context.Context, input *GetDraftInput) (*GetDraftOutput, error)

	// ListDrafts lists an owner's live drafts
	ListDrafts(ctx context.Context, input *ListDraftsInput) (*ListDraftsOutput, error)

	// DeleteDraft abandons a draft
	DeleteDraft(ctx context.Context, input *DeleteDraftInput) (*DeleteDraftOutput, error)

	// SetAbilityScores validates and stores rolled ability scores
	SetAbilityScores(ctx context.Context, input *SetAbilityScoresInput) (*SetAbilityScoresOutput, error)

	// SetRace applies a race to the draft
	SetRace(ctx context.Context, input *SetRaceInput) (*SetRaceOutput, error)

	// SetAncestry applies an ancestry of the chosen race
	SetAncestry(ctx context.Context, input *SetAncestryInput) (*SetAncestryOutput, error)

	// SetProfession applies a profession, and its duty when one is required
	SetProfession(ctx context.Context, input *SetProfessionInput) (*SetProfessionOutput, error)

	// GetAvailablePaths reports every path and whether its prerequisites are met
	GetAvailablePaths(ctx context.Context, input *GetAvailablePathsInput) (*GetAvailablePathsOutput, error)

	// SetPath applies the primary path
	SetPath(ctx context.Context, input *SetPathInput) (*SetPathOutput, error)

	// SetBackground applies a background
	SetBackground(ctx context.Context, input *SetBackgroundInput) (*SetBackgroundOutput, error)

	// ResolveChoice answers a pending choice on the draft
	ResolveChoice(ctx context.Context, input *ResolveChoiceInput) (*ResolveChoiceOutput, error)

	// FinalizeDraft validates a complete draft and stores the finished character
	FinalizeDraft(ctx context.Context, input *FinalizeDraftInput) (*FinalizeDraftOutput, error)

	// GetCharacter retrieves a stored character by ID
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)

	// ListCharacters lists an owner's stored characters
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)

	// DeleteCharacter removes a stored character
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)

	// ValidateCharacter runs the full rules validation over a stored character
	ValidateCharacter(ctx context.Context, input *ValidateCharacterInput) (*ValidateCharacterOutput, error)

	// GetLevelUpOptions reports the budgets and grants for the next level
	GetLevelUpOptions(ctx context.Context, input *GetLevelUpOptionsInput) (*GetLevelUpOptionsOutput, error)

	// LevelUp applies a level up and persists the advanced character
	LevelUp(ctx context.Context, input *LevelUpInput) (*LevelUpOutput, error)

	// GetLevelSummary reports a character's standing on the XP track
	GetLevelSummary(ctx context.Context, input *GetLevelSummaryInput) (*GetLevelSummaryOutput, error)

	// AwardExperience adds XP and reports any levels now pending
	AwardExperience(ctx context.Context, input *AwardExperienceInput) (*AwardExperienceOutput, error)
}

// service implements the Service interface
type service struct {
	catalog     *rulebook.Catalog
	validator   *validator.Validator
	engine      *advancement.Engine
	characters  characterRepo.Repository
	drafts      draftRepo.Repository
	idGenerator uuid.Generator
}

// ServiceConfig holds configuration for the service. Catalog and both
// repositories are required.
type ServiceConfig struct {
	Catalog             *rulebook.Catalog
	CharacterRepository characterRepo.Repository
	DraftRepository     draftRepo.Repository

	// Engine is built from the catalog and roller when nil.
	Engine *advancement.Engine

	// Roller feeds hit die rolls to a default-built engine.
	Roller dice.Roller

	// IDGenerator defaults to ULIDs so IDs sort by creation time.
	IDGenerator uuid.Generator
}

// NewService creates a new character service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("service config is required")
	}
	if cfg.Catalog == nil {
		panic("catalog is required")
	}
	if cfg.CharacterRepository == nil {
		panic("character repository is required")
	}
	if cfg.DraftRepository == nil {
		panic("draft repository is required")
	}

	engine := cfg.Engine
	if engine == nil {
		var err error
		engine, err = advancement.NewEngine(&advancement.EngineConfig{
			Catalog: cfg.Catalog,
			Roller:  cfg.Roller,
		})
		if err != nil {
			panic("failed to build advancement engine: " + err.Error())
		}
	}

	idGen := cfg.IDGenerator
	if idGen == nil {
		idGen = uuid.NewULIDGenerator()
	}

	return &service{
		catalog:     cfg.Catalog,
		validator:   validator.New(cfg.Catalog),
		engine:      engine,
		characters:  cfg.CharacterRepository,
		drafts:      cfg.DraftRepository,
		idGenerator: idGen,
	}
}

// validationError converts a failed validation result into a typed
// error carrying every reason under the "reasons" meta key.
func validationError(result *validator.Result) error {
	if result == nil || result.Valid {
		return nil
	}
	return errors.New(errors.CodeValidation, result.Errors[0]).
		WithMeta("reasons", result.Errors)
}

// GetCharacterInput identifies a stored character
type GetCharacterInput struct {
	CharacterID string
}

// GetCharacterOutput contains the character
type GetCharacterOutput struct {
	Character *character.Character
}

// GetCharacter retrieves a stored character by ID
func (s *service) GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}
	char, err := s.characters.Get(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	return &GetCharacterOutput{Character: char}, nil
}

// ListCharactersInput identifies an owner
type ListCharactersInput struct {
	OwnerID string
}

// ListCharactersOutput contains the owner's characters sorted by ID
type ListCharactersOutput struct {
	Characters []*character.Character
}

// ListCharacters lists an owner's stored characters
func (s *service) ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.InvalidArgument("owner ID is required")
	}
	chars, err := s.characters.GetByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	return &ListCharactersOutput{Characters: chars}, nil
}

// DeleteCharacterInput identifies a stored character
type DeleteCharacterInput struct {
	CharacterID string
}

// DeleteCharacterOutput is empty; deletion either succeeds or errors
type DeleteCharacterOutput struct{}

// DeleteCharacter removes a stored character
func (s *service) DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}
	if err := s.characters.Delete(ctx, input.CharacterID); err != nil {
		return nil, err
	}
	return &DeleteCharacterOutput{}, nil
}

// ValidateCharacterInput identifies a stored character
type ValidateCharacterInput struct {
	CharacterID string
}

// ValidateCharacterOutput carries the full validation result, warnings
// included
type ValidateCharacterOutput struct {
	Result *validator.Result
}

// ValidateCharacter runs the full rules validation over a stored character
func (s *service) ValidateCharacter(ctx context.Context, input *ValidateCharacterInput) (*ValidateCharacterOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}
	char, err := s.characters.Get(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	return &ValidateCharacterOutput{Result: s.validator.ValidateCharacter(char)}, nil
}
