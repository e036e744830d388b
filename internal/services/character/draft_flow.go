package character

import (
	"context"

	"github.com/KirkDiggler/realm-forge/internal/domain/character"
	"github.com/KirkDiggler/realm-forge/internal/domain/shared"
	"github.com/KirkDiggler/realm-forge/internal/errors"
	"github.com/KirkDiggler/realm-forge/internal/validator"
)

// StartDraftInput opens a draft for an owner. Name is optional and can
// be set any time before finalizing.
type StartDraftInput struct {
	OwnerID string
	Name    string
}

// StartDraftOutput contains the new draft
type StartDraftOutput struct {
	Draft *character.Draft
}

// StartDraft opens a new draft for an owner
func (s *service) StartDraft(ctx context.Context, input *StartDraftInput) (*StartDraftOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.InvalidArgument("owner ID is required")
	}

	draft := character.NewDraft(s.idGenerator.New(), input.OwnerID)
	if input.Name != "" {
		draft.Character.Name = input.Name
	}

	if err := s.drafts.Create(ctx, draft); err != nil {
		return nil, err
	}
	return &StartDraftOutput{Draft: draft}, nil
}

// GetDraftInput identifies a draft
type GetDraftInput struct {
	DraftID string
}

// GetDraftOutput contains the draft
type GetDraftOutput struct {
	Draft *character.Draft
}

// GetDraft retrieves a draft by ID
func (s *service) GetDraft(ctx context.Context, input *GetDraftInput) (*GetDraftOutput, error) {
	if input == nil || input.DraftID == "" {
		return nil, errors.InvalidArgument("draft ID is required")
	}
	draft, err := s.drafts.Get(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}
	return &GetDraftOutput{Draft: draft}, nil
}

// ListDraftsInput identifies an owner
type ListDraftsInput struct {
	OwnerID string
}

// ListDraftsOutput contains the owner's live drafts sorted by ID
type ListDraftsOutput struct {
	Drafts []*character.Draft
}

// ListDrafts lists an owner's live drafts
func (s *service) ListDrafts(ctx context.Context, input *ListDraftsInput) (*ListDraftsOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.InvalidArgument("owner ID is required")
	}
	result, err := s.drafts.GetByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	return &ListDraftsOutput{Drafts: result}, nil
}

// DeleteDraftInput identifies a draft
type DeleteDraftInput struct {
	DraftID string
}

// DeleteDraftOutput is empty; deletion either succeeds or errors
type DeleteDraftOutput struct{}

// DeleteDraft abandons a draft
func (s *service) DeleteDraft(ctx context.Context, input *DeleteDraftInput) (*DeleteDraftOutput, error) {
	if input == nil || input.DraftID == "" {
		return nil, errors.InvalidArgument("draft ID is required")
	}
	if err := s.drafts.Delete(ctx, input.DraftID); err != nil {
		return nil, err
	}
	return &DeleteDraftOutput{}, nil
}

// withDraft loads a draft, runs a builder step against it, and persists
// the result. The saved draft is returned.
func (s *service) withDraft(ctx context.Context, draftID string, fn func(b *character.Builder) error) (*character.Draft, error) {
	if draftID == "" {
		return nil, errors.InvalidArgument("draft ID is required")
	}

	draft, err := s.drafts.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}

	builder := character.NewBuilder(draft, s.catalog)
	if err := fn(builder); err != nil {
		return nil, err
	}

	if err := s.drafts.Update(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// SetAbilityScoresInput carries the six rolled scores and the method
// that produced them, so point buy and standard array can be enforced.
type SetAbilityScoresInput struct {
	DraftID string
	Scores  map[shared.Attribute]int

	// Method names how the scores were generated: point_buy,
	// standard_array, roll, or manual. Empty means manual.
	Method string
}

// SetAbilityScoresOutput contains the updated draft
type SetAbilityScoresOutput struct {
	Draft *character.Draft
}

// SetAbilityScores validates and stores rolled ability scores
func (s *service) SetAbilityScores(ctx context.Context, input *SetAbilityScoresInput) (*SetAbilityScoresOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	method := validator.ParseMethod(input.Method)
	if method == "" {
		return nil, errors.InvalidArgumentf("Unknown ability score method: %s", input.Method)
	}
	if err := validationError(s.validator.ValidateAbilityScores(input.Scores, method)); err != nil {
		return nil, err
	}

	draft, err := s.withDraft(ctx, input.DraftID, func(b *character.Builder) error {
		return b.SetAbilityScores(input.Scores)
	})
	if err != nil {
		return nil, err
	}
	return &SetAbilityScoresOutput{Draft: draft}, nil
}

// SetRaceInput picks a race for the draft
type SetRaceInput struct {
	DraftID string
	RaceKey string
}

// SetRaceOutput contains the updated draft
type SetRaceOutput struct {
	Draft *character.Draft
}

// SetRace applies a race to the draft
func (s *service) SetRace(ctx context.Context, input *SetRaceInput) (*SetRaceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	draft, err := s.withDraft(ctx, input.DraftID, func(b *character.Builder) error {
		return b.SetRace(input.RaceKey)
	})
	if err != nil {
		return nil, err
	}
	return &SetRaceOutput{Draft: draft}, nil
}

// SetAncestryInput picks an ancestry of the chosen race
type SetAncestryInput struct {
	DraftID     string
	AncestryKey string
}

// SetAncestryOutput contains the updated draft
type SetAncestryOutput struct {
	Draft *character.Draft
}

// SetAncestry applies an ancestry of the chosen race
func (s *service) SetAncestry(ctx context.Context, input *SetAncestryInput) (*SetAncestryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	draft, err := s.withDraft(ctx, input.DraftID, func(b *character.Builder) error {
		return b.SetAncestry(input.AncestryKey)
	})
	if err != nil {
		return nil, err
	}
	return &SetAncestryOutput{Draft: draft}, nil
}

// SetProfessionInput picks a profession. DutyKey is required when the
// profession defines duties.
type SetProfessionInput struct {
	DraftID       string
	ProfessionKey string
	DutyKey       string
}

// SetProfessionOutput contains the updated draft
type SetProfessionOutput struct {
	Draft *character.Draft
}

// SetProfession applies a profession, and its duty when one is required
func (s *service) SetProfession(ctx context.Context, input *SetProfessionInput) (*SetProfessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	draft, err := s.withDraft(ctx, input.DraftID, func(b *character.Builder) error {
		return b.SetProfession(input.ProfessionKey, input.DutyKey)
	})
	if err != nil {
		return nil, err
	}
	return &SetProfessionOutput{Draft: draft}, nil
}

// GetAvailablePathsInput identifies a draft
type GetAvailablePathsInput struct {
	DraftID string
}

// GetAvailablePathsOutput lists every path with whether the draft
// character meets its primary prerequisites
type GetAvailablePathsOutput struct {
	Paths []character.PathOption
}

// GetAvailablePaths reports every path and whether its prerequisites are met
func (s *service) GetAvailablePaths(ctx context.Context, input *GetAvailablePathsInput) (*GetAvailablePathsOutput, error) {
	if input == nil || input.DraftID == "" {
		return nil, errors.InvalidArgument("draft ID is required")
	}

	draft, err := s.drafts.Get(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	builder := character.NewBuilder(draft, s.catalog)
	return &GetAvailablePathsOutput{Paths: builder.AvailablePaths()}, nil
}

// SetPathInput picks the primary path. IgnorePrerequisites lets a game
// master override the attribute gates.
type SetPathInput struct {
	DraftID             string
	PathKey             string
	IgnorePrerequisites bool
}

// SetPathOutput contains the updated draft
type SetPathOutput struct {
	Draft *character.Draft
}

// SetPath applies the primary path
func (s *service) SetPath(ctx context.Context, input *SetPathInput) (*SetPathOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	draft, err := s.withDraft(ctx, input.DraftID, func(b *character.Builder) error {
		return b.SetPath(input.PathKey, input.IgnorePrerequisites)
	})
	if err != nil {
		return nil, err
	}
	return &SetPathOutput{Draft: draft}, nil
}

// SetBackgroundInput picks a background
type SetBackgroundInput struct {
	DraftID       string
	BackgroundKey string
}

// SetBackgroundOutput contains the updated draft
type SetBackgroundOutput struct {
	Draft *character.Draft
}

// SetBackground applies a background
func (s *service) SetBackground(ctx context.Context, input *SetBackgroundInput) (*SetBackgroundOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	draft, err := s.withDraft(ctx, input.DraftID, func(b *character.Builder) error {
		return b.SetBackground(input.BackgroundKey)
	})
	if err != nil {
		return nil, err
	}
	return &SetBackgroundOutput{Draft: draft}, nil
}

// ResolveChoiceInput answers one pending choice. Source disambiguates
// when several choices share a type.
type ResolveChoiceInput struct {
	DraftID    string
	ChoiceType character.ChoiceType
	Source     string
	Selections []string
}

// ResolveChoiceOutput contains the updated draft
type ResolveChoiceOutput struct {
	Draft *character.Draft
}

// ResolveChoice answers a pending choice on the draft
func (s *service) ResolveChoice(ctx context.Context, input *ResolveChoiceInput) (*ResolveChoiceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	draft, err := s.withDraft(ctx, input.DraftID, func(b *character.Builder) error {
		return b.ResolveChoice(input.ChoiceType, input.Source, input.Selections)
	})
	if err != nil {
		return nil, err
	}
	return &ResolveChoiceOutput{Draft: draft}, nil
}

// FinalizeDraftInput identifies a draft
type FinalizeDraftInput struct {
	DraftID string
}

// FinalizeDraftOutput contains the stored character
type FinalizeDraftOutput struct {
	Character *character.Character
}

// FinalizeDraft validates a complete draft and stores the finished
// character. The draft itself is removed; if removal fails the TTL
// reaps it.
func (s *service) FinalizeDraft(ctx context.Context, input *FinalizeDraftInput) (*FinalizeDraftOutput, error) {
	if input == nil || input.DraftID == "" {
		return nil, errors.InvalidArgument("draft ID is required")
	}

	draft, err := s.drafts.Get(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	builder := character.NewBuilder(draft, s.catalog)
	if !builder.IsComplete() {
		return nil, errors.Validationf("draft is not complete: at step %s with %d pending choices",
			draft.CurrentStep, len(draft.PendingChoices)).
			WithMeta("current_step", string(draft.CurrentStep)).
			WithMeta("pending_choices", len(draft.PendingChoices))
	}

	char := builder.Build()
	if err := validationError(s.validator.ValidateCharacter(char)); err != nil {
		return nil, err
	}

	if err := s.characters.Create(ctx, char); err != nil {
		return nil, err
	}
	_ = s.drafts.Delete(ctx, draft.ID)

	return &FinalizeDraftOutput{Character: char}, nil
}
