package drafts

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/realm-forge/internal/domain/character"
	"github.com/KirkDiggler/realm-forge/internal/errors"
)

// Drafts that see no activity for this long are dropped.
const defaultDraftTTL = 24 * time.Hour

// redisRepo implements Repository using Redis. Each draft is a JSON blob
// under draft:<id> with a TTL, plus a set per owner for listing. Set
// members outlive expired drafts and are pruned lazily during listing.
type redisRepo struct {
	client       redis.UniversalClient
	timeProvider TimeProvider
	ttl          time.Duration
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client       redis.UniversalClient
	TimeProvider TimeProvider

	// TTL is how long an idle draft survives. Zero means the default
	// of 24 hours.
	TTL time.Duration
}

// NewRedisRepository creates a new Redis-backed draft repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}
	if cfg.TimeProvider == nil {
		cfg.TimeProvider = &RealTimeProvider{}
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultDraftTTL
	}

	return &redisRepo{
		client:       cfg.Client,
		timeProvider: cfg.TimeProvider,
		ttl:          ttl,
	}
}

// key generates the Redis key for a draft
func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("draft:%s", id)
}

// ownerKey generates the Redis key for an owner's draft set
func (r *redisRepo) ownerKey(ownerID string) string {
	return fmt.Sprintf("owner:%s:drafts", ownerID)
}

// Create stores a new draft with the configured TTL
func (r *redisRepo) Create(ctx context.Context, draft *character.Draft) error {
	if draft == nil {
		return errors.InvalidArgument("draft cannot be nil")
	}
	if draft.ID == "" {
		return errors.InvalidArgument("draft ID is required")
	}
	if draft.OwnerID == "" {
		return errors.InvalidArgument("draft owner ID is required")
	}

	exists, err := r.client.Exists(ctx, r.key(draft.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check draft existence: %w", err)
	}
	if exists > 0 {
		return errors.AlreadyExistsf("draft with ID '%s' already exists", draft.ID).
			WithMeta("draft_id", draft.ID)
	}

	now := r.timeProvider.Now()
	draft.CreatedAt = now
	draft.UpdatedAt = now

	jsonData, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(draft.ID), string(jsonData), r.ttl)
	pipe.SAdd(ctx, r.ownerKey(draft.OwnerID), draft.ID)
	if _, err = pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create draft: %w", err)
	}

	return nil
}

// Get retrieves a draft by ID and refreshes its TTL, so an active
// creation flow keeps its draft alive.
func (r *redisRepo) Get(ctx context.Context, id string) (*character.Draft, error) {
	if id == "" {
		return nil, errors.InvalidArgument("draft ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(id)).Result()
	if err == redis.Nil {
		return nil, errors.NotFoundf("draft with ID '%s' not found", id).
			WithMeta("draft_id", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get draft: %w", err)
	}

	var draft character.Draft
	if err := json.Unmarshal([]byte(jsonData), &draft); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft: %w", err)
	}

	r.client.Expire(ctx, r.key(id), r.ttl)

	return &draft, nil
}

// GetByOwner retrieves all live drafts for an owner, sorted by ID.
// Listing does not refresh TTLs. IDs whose drafts have expired are
// pruned from the owner set.
func (r *redisRepo) GetByOwner(ctx context.Context, ownerID string) ([]*character.Draft, error) {
	if ownerID == "" {
		return nil, errors.InvalidArgument("owner ID is required")
	}

	ids, err := r.client.SMembers(ctx, r.ownerKey(ownerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list draft IDs: %w", err)
	}
	if len(ids) == 0 {
		return []*character.Draft{}, nil
	}
	sort.Strings(ids)

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.key(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get drafts: %w", err)
	}

	result := make([]*character.Draft, 0, len(ids))
	var stale []interface{}
	for i, val := range values {
		if val == nil {
			stale = append(stale, ids[i])
			continue
		}
		data, ok := val.(string)
		if !ok {
			continue
		}
		var draft character.Draft
		if err := json.Unmarshal([]byte(data), &draft); err != nil {
			return nil, fmt.Errorf("failed to unmarshal draft %s: %w", ids[i], err)
		}
		result = append(result, &draft)
	}

	if len(stale) > 0 {
		r.client.SRem(ctx, r.ownerKey(ownerID), stale...)
	}

	return result, nil
}

// Update updates an existing draft and resets its TTL
func (r *redisRepo) Update(ctx context.Context, draft *character.Draft) error {
	if draft == nil {
		return errors.InvalidArgument("draft cannot be nil")
	}
	if draft.ID == "" {
		return errors.InvalidArgument("draft ID is required")
	}

	exists, err := r.client.Exists(ctx, r.key(draft.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check draft existence: %w", err)
	}
	if exists == 0 {
		return errors.NotFoundf("draft with ID '%s' not found", draft.ID).
			WithMeta("draft_id", draft.ID)
	}

	draft.UpdatedAt = r.timeProvider.Now()

	jsonData, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(draft.ID), string(jsonData), r.ttl)
	pipe.SAdd(ctx, r.ownerKey(draft.OwnerID), draft.ID)
	if _, err = pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update draft: %w", err)
	}

	return nil
}

// Delete removes a draft and its owner index entry
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.InvalidArgument("draft ID is required")
	}

	draft, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.key(id))
	pipe.SRem(ctx, r.ownerKey(draft.OwnerID), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}

	return nil
}
