package drafts

//go:generate mockgen -destination=mock/mock.go -package=mockdrafts -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/realm-forge/internal/domain/character"
)

// Repository defines the interface for character draft storage. Drafts
// are working copies of characters mid-creation and expire after a
// configurable TTL.
type Repository interface {
	// Create stores a new draft
	Create(ctx context.Context, draft *character.Draft) error

	// Get retrieves a draft by ID
	Get(ctx context.Context, id string) (*character.Draft, error)

	// GetByOwner retrieves all live drafts for a specific owner
	GetByOwner(ctx context.Context, ownerID string) ([]*character.Draft, error)

	// Update updates an existing draft and refreshes its expiry
	Update(ctx context.Context, draft *character.Draft) error

	// Delete removes a draft
	Delete(ctx context.Context, id string) error
}
