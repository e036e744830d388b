package characters

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/KirkDiggler/realm-forge/internal/domain/character"
	"github.com/KirkDiggler/realm-forge/internal/errors"
)

// sqliteRepo implements Repository using SQLite. The full sheet lives
// in a JSON document column; id, owner, name, and level are broken out
// for indexing and listing.
type sqliteRepo struct {
	db           *sql.DB
	timeProvider TimeProvider
}

// SQLiteRepoConfig holds configuration for the SQLite repository
type SQLiteRepoConfig struct {
	DB           *sql.DB
	TimeProvider TimeProvider
}

// NewSQLiteRepository creates a SQLite-backed character repository and
// migrates its tables.
func NewSQLiteRepository(cfg *SQLiteRepoConfig) (Repository, error) {
	if cfg == nil || cfg.DB == nil {
		return nil, errors.InvalidArgument("sqlite DB is required")
	}
	if cfg.TimeProvider == nil {
		cfg.TimeProvider = &RealTimeProvider{}
	}

	r := &sqliteRepo{
		db:           cfg.DB,
		timeProvider: cfg.TimeProvider,
	}
	if err := r.migrate(); err != nil {
		return nil, fmt.Errorf("migrate characters: %w", err)
	}
	return r, nil
}

func (r *sqliteRepo) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS characters (
		id         TEXT PRIMARY KEY,
		owner_id   TEXT NOT NULL,
		name       TEXT NOT NULL,
		level      INTEGER NOT NULL,
		data       TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_characters_owner ON characters(owner_id);
	`
	_, err := r.db.Exec(schema)
	return err
}

// Create stores a new character
func (r *sqliteRepo) Create(ctx context.Context, char *character.Character) error {
	if char == nil {
		return errors.InvalidArgument("character cannot be nil")
	}
	if char.ID == "" {
		return errors.InvalidArgument("character ID is required")
	}
	if char.OwnerID == "" {
		return errors.InvalidArgument("character owner ID is required")
	}

	now := r.timeProvider.Now()
	char.CreatedAt = now
	char.UpdatedAt = now

	jsonData, err := json.Marshal(char)
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var one int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM characters WHERE id = ?`, char.ID).Scan(&one)
	if err == nil {
		return errors.AlreadyExistsf("character with ID '%s' already exists", char.ID).
			WithMeta("character_id", char.ID)
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("failed to check character existence: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO characters (id, owner_id, name, level, data, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		char.ID, char.OwnerID, char.Name, char.Level, string(jsonData),
		now.Format(time.RFC3339Nano), now.Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to insert character: %w", err)
	}

	return tx.Commit()
}

// Get retrieves a character by ID
func (r *sqliteRepo) Get(ctx context.Context, id string) (*character.Character, error) {
	if id == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	var jsonData string
	err := r.db.QueryRowContext(ctx, `SELECT data FROM characters WHERE id = ?`, id).Scan(&jsonData)
	if err == sql.ErrNoRows {
		return nil, errors.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get character: %w", err)
	}

	var char character.Character
	if err := json.Unmarshal([]byte(jsonData), &char); err != nil {
		return nil, fmt.Errorf("failed to unmarshal character: %w", err)
	}
	return &char, nil
}

// GetByOwner retrieves all characters for a specific owner, sorted by ID
func (r *sqliteRepo) GetByOwner(ctx context.Context, ownerID string) ([]*character.Character, error) {
	if ownerID == "" {
		return nil, errors.InvalidArgument("owner ID is required")
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT data FROM characters WHERE owner_id = ? ORDER BY id`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list characters: %w", err)
	}
	defer rows.Close()

	var chars []*character.Character
	for rows.Next() {
		var jsonData string
		if err := rows.Scan(&jsonData); err != nil {
			return nil, fmt.Errorf("failed to scan character: %w", err)
		}
		var char character.Character
		if err := json.Unmarshal([]byte(jsonData), &char); err != nil {
			return nil, fmt.Errorf("failed to unmarshal character: %w", err)
		}
		chars = append(chars, &char)
	}

	return chars, rows.Err()
}

// Update updates an existing character
func (r *sqliteRepo) Update(ctx context.Context, char *character.Character) error {
	if char == nil {
		return errors.InvalidArgument("character cannot be nil")
	}
	if char.ID == "" {
		return errors.InvalidArgument("character ID is required")
	}

	char.UpdatedAt = r.timeProvider.Now()

	jsonData, err := json.Marshal(char)
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE characters SET owner_id = ?, name = ?, level = ?, data = ?, updated_at = ?
		 WHERE id = ?`,
		char.OwnerID, char.Name, char.Level, string(jsonData),
		char.UpdatedAt.Format(time.RFC3339Nano), char.ID)
	if err != nil {
		return fmt.Errorf("failed to update character: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return errors.NotFoundf("character with ID '%s' not found", char.ID).
			WithMeta("character_id", char.ID)
	}

	return nil
}

// Delete removes a character
func (r *sqliteRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.InvalidArgument("character ID is required")
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM characters WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return errors.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}

	return nil
}
