package drafts

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/KirkDiggler/realm-forge/internal/domain/character"
	"github.com/KirkDiggler/realm-forge/internal/errors"
)

// sqliteRepo implements Repository on SQLite. The full draft lives in a
// JSON document column; id, owner and step are split out for querying.
// Expiry is lazy: reads filter on expires_at and expired rows are
// purged when the repository is opened. expires_at uses RFC3339 at
// second precision so string comparison orders chronologically.
type sqliteRepo struct {
	db           *sql.DB
	timeProvider TimeProvider
	ttl          time.Duration
}

// SQLiteRepoConfig holds configuration for the SQLite repository
type SQLiteRepoConfig struct {
	DB           *sql.DB
	TimeProvider TimeProvider

	// TTL is how long an idle draft survives. Zero means the default
	// of 24 hours.
	TTL time.Duration
}

// NewSQLiteRepository creates a SQLite-backed draft repository, running
// its schema migration and purging already-expired drafts.
func NewSQLiteRepository(cfg *SQLiteRepoConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("SQLiteRepoConfig cannot be nil")
	}
	if cfg.DB == nil {
		return nil, errors.InvalidArgument("database handle cannot be nil")
	}
	if cfg.TimeProvider == nil {
		cfg.TimeProvider = &RealTimeProvider{}
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultDraftTTL
	}

	repo := &sqliteRepo{
		db:           cfg.DB,
		timeProvider: cfg.TimeProvider,
		ttl:          ttl,
	}
	if err := repo.migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate drafts schema: %w", err)
	}
	if err := repo.purgeExpired(); err != nil {
		return nil, fmt.Errorf("failed to purge expired drafts: %w", err)
	}
	return repo, nil
}

func (r *sqliteRepo) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS drafts (
		id           TEXT PRIMARY KEY,
		owner_id     TEXT NOT NULL,
		current_step TEXT NOT NULL,
		data         TEXT NOT NULL,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL,
		expires_at   TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_drafts_owner ON drafts(owner_id);
	CREATE INDEX IF NOT EXISTS idx_drafts_expires ON drafts(expires_at);
	`
	_, err := r.db.Exec(schema)
	return err
}

func (r *sqliteRepo) purgeExpired() error {
	now := r.timeProvider.Now().UTC().Format(time.RFC3339)
	_, err := r.db.Exec(`DELETE FROM drafts WHERE expires_at <= ?`, now)
	return err
}

func (r *sqliteRepo) nowStrings() (now time.Time, nowStr, expiresStr string) {
	now = r.timeProvider.Now()
	nowStr = now.UTC().Format(time.RFC3339)
	expiresStr = now.Add(r.ttl).UTC().Format(time.RFC3339)
	return now, nowStr, expiresStr
}

// Create stores a new draft. A row left behind by an expired draft with
// the same ID is overwritten.
func (r *sqliteRepo) Create(ctx context.Context, draft *character.Draft) error {
	if draft == nil {
		return errors.InvalidArgument("draft cannot be nil")
	}
	if draft.ID == "" {
		return errors.InvalidArgument("draft ID is required")
	}
	if draft.OwnerID == "" {
		return errors.InvalidArgument("draft owner ID is required")
	}

	now, nowStr, expiresStr := r.nowStrings()
	draft.CreatedAt = now
	draft.UpdatedAt = now

	jsonData, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var one int
	err = tx.QueryRowContext(ctx,
		`SELECT 1 FROM drafts WHERE id = ? AND expires_at > ?`,
		draft.ID, nowStr,
	).Scan(&one)
	if err == nil {
		return errors.AlreadyExistsf("draft with ID '%s' already exists", draft.ID).
			WithMeta("draft_id", draft.ID)
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("failed to check draft existence: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT OR REPLACE INTO drafts (id, owner_id, current_step, data, created_at, updated_at, expires_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		draft.ID, draft.OwnerID, string(draft.CurrentStep), string(jsonData),
		draft.CreatedAt.Format(time.RFC3339Nano), draft.UpdatedAt.Format(time.RFC3339Nano), expiresStr,
	)
	if err != nil {
		return fmt.Errorf("failed to insert draft: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit draft: %w", err)
	}
	return nil
}

// Get retrieves a live draft by ID and refreshes its expiry
func (r *sqliteRepo) Get(ctx context.Context, id string) (*character.Draft, error) {
	if id == "" {
		return nil, errors.InvalidArgument("draft ID is required")
	}

	_, nowStr, expiresStr := r.nowStrings()

	var jsonData string
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM drafts WHERE id = ? AND expires_at > ?`,
		id, nowStr,
	).Scan(&jsonData)
	if err == sql.ErrNoRows {
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

	if _, err := r.db.ExecContext(ctx,
		`UPDATE drafts SET expires_at = ? WHERE id = ?`, expiresStr, id,
	); err != nil {
		return nil, fmt.Errorf("failed to refresh draft expiry: %w", err)
	}

	return &draft, nil
}

// GetByOwner retrieves all live drafts for an owner, sorted by ID.
// Listing does not refresh expiries.
func (r *sqliteRepo) GetByOwner(ctx context.Context, ownerID string) ([]*character.Draft, error) {
	if ownerID == "" {
		return nil, errors.InvalidArgument("owner ID is required")
	}

	_, nowStr, _ := r.nowStrings()

	rows, err := r.db.QueryContext(ctx,
		`SELECT data FROM drafts WHERE owner_id = ? AND expires_at > ? ORDER BY id`,
		ownerID, nowStr,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := make([]*character.Draft, 0)
	for rows.Next() {
		var jsonData string
		if err := rows.Scan(&jsonData); err != nil {
			return nil, fmt.Errorf("failed to scan draft: %w", err)
		}
		var draft character.Draft
		if err := json.Unmarshal([]byte(jsonData), &draft); err != nil {
			return nil, fmt.Errorf("failed to unmarshal draft: %w", err)
		}
		result = append(result, &draft)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate drafts: %w", err)
	}
	return result, nil
}

// Update replaces a live draft and resets its expiry
func (r *sqliteRepo) Update(ctx context.Context, draft *character.Draft) error {
	if draft == nil {
		return errors.InvalidArgument("draft cannot be nil")
	}
	if draft.ID == "" {
		return errors.InvalidArgument("draft ID is required")
	}

	now, nowStr, expiresStr := r.nowStrings()
	draft.UpdatedAt = now

	jsonData, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE drafts
		 SET owner_id = ?, current_step = ?, data = ?, updated_at = ?, expires_at = ?
		 WHERE id = ? AND expires_at > ?`,
		draft.OwnerID, string(draft.CurrentStep), string(jsonData),
		draft.UpdatedAt.Format(time.RFC3339Nano), expiresStr,
		draft.ID, nowStr,
	)
	if err != nil {
		return fmt.Errorf("failed to update draft: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return errors.NotFoundf("draft with ID '%s' not found", draft.ID).
			WithMeta("draft_id", draft.ID)
	}
	return nil
}

// Delete removes a live draft
func (r *sqliteRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.InvalidArgument("draft ID is required")
	}

	_, nowStr, _ := r.nowStrings()

	res, err := r.db.ExecContext(ctx,
		`DELETE FROM drafts WHERE id = ? AND expires_at > ?`, id, nowStr,
	)
	if err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return errors.NotFoundf("draft with ID '%s' not found", id).
			WithMeta("draft_id", id)
	}
	return nil
}
