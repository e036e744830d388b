package drafts

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/KirkDiggler/realm-forge/internal/domain/character"
	"github.com/KirkDiggler/realm-forge/internal/errors"
)

type memoryEntry struct {
	draft     *character.Draft
	expiresAt time.Time
}

// InMemoryRepository is a thread-safe in-memory draft store for tests
// and single-process setups. It honors the same TTL semantics as the
// Redis implementation, expiring drafts lazily on read.
type InMemoryRepository struct {
	mu           sync.RWMutex
	entries      map[string]*memoryEntry
	timeProvider TimeProvider
	ttl          time.Duration
}

// InMemoryRepoConfig holds optional configuration for the in-memory
// repository. A nil config uses the real clock and the default TTL.
type InMemoryRepoConfig struct {
	TimeProvider TimeProvider
	TTL          time.Duration
}

// NewInMemoryRepository creates an empty in-memory draft repository
func NewInMemoryRepository(cfg *InMemoryRepoConfig) *InMemoryRepository {
	if cfg == nil {
		cfg = &InMemoryRepoConfig{}
	}
	tp := cfg.TimeProvider
	if tp == nil {
		tp = &RealTimeProvider{}
	}
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultDraftTTL
	}

	return &InMemoryRepository{
		entries:      make(map[string]*memoryEntry),
		timeProvider: tp,
		ttl:          ttl,
	}
}

// live returns the entry for id if it exists and has not expired,
// deleting it when expired. Callers must hold the write lock.
func (r *InMemoryRepository) live(id string) *memoryEntry {
	entry, ok := r.entries[id]
	if !ok {
		return nil
	}
	if !r.timeProvider.Now().Before(entry.expiresAt) {
		delete(r.entries, id)
		return nil
	}
	return entry
}

// Create stores a deep copy of the draft
func (r *InMemoryRepository) Create(_ context.Context, draft *character.Draft) error {
	if draft == nil {
		return errors.InvalidArgument("draft cannot be nil")
	}
	if draft.ID == "" {
		return errors.InvalidArgument("draft ID is required")
	}
	if draft.OwnerID == "" {
		return errors.InvalidArgument("draft owner ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.live(draft.ID) != nil {
		return errors.AlreadyExistsf("draft with ID '%s' already exists", draft.ID).
			WithMeta("draft_id", draft.ID)
	}

	now := r.timeProvider.Now()
	draft.CreatedAt = now
	draft.UpdatedAt = now

	r.entries[draft.ID] = &memoryEntry{
		draft:     draft.Clone(),
		expiresAt: now.Add(r.ttl),
	}
	return nil
}

// Get retrieves a draft by ID, refreshing its expiry
func (r *InMemoryRepository) Get(_ context.Context, id string) (*character.Draft, error) {
	if id == "" {
		return nil, errors.InvalidArgument("draft ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entry := r.live(id)
	if entry == nil {
		return nil, errors.NotFoundf("draft with ID '%s' not found", id).
			WithMeta("draft_id", id)
	}

	entry.expiresAt = r.timeProvider.Now().Add(r.ttl)
	return entry.draft.Clone(), nil
}

// GetByOwner retrieves all live drafts for an owner, sorted by ID.
// Listing does not refresh expiries.
func (r *InMemoryRepository) GetByOwner(_ context.Context, ownerID string) ([]*character.Draft, error) {
	if ownerID == "" {
		return nil, errors.InvalidArgument("owner ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.timeProvider.Now()
	result := make([]*character.Draft, 0)
	for id, entry := range r.entries {
		if !now.Before(entry.expiresAt) {
			delete(r.entries, id)
			continue
		}
		if entry.draft.OwnerID == ownerID {
			result = append(result, entry.draft.Clone())
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// Update replaces a stored draft and resets its expiry
func (r *InMemoryRepository) Update(_ context.Context, draft *character.Draft) error {
	if draft == nil {
		return errors.InvalidArgument("draft cannot be nil")
	}
	if draft.ID == "" {
		return errors.InvalidArgument("draft ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.live(draft.ID) == nil {
		return errors.NotFoundf("draft with ID '%s' not found", draft.ID).
			WithMeta("draft_id", draft.ID)
	}

	now := r.timeProvider.Now()
	draft.UpdatedAt = now

	r.entries[draft.ID] = &memoryEntry{
		draft:     draft.Clone(),
		expiresAt: now.Add(r.ttl),
	}
	return nil
}

// Delete removes a draft
func (r *InMemoryRepository) Delete(_ context.Context, id string) error {
	if id == "" {
		return errors.InvalidArgument("draft ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.live(id) == nil {
		return errors.NotFoundf("draft with ID '%s' not found", id).
			WithMeta("draft_id", id)
	}

	delete(r.entries, id)
	return nil
}
