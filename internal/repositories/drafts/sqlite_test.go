package drafts

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/realm-forge/internal/domain/character"
	"github.com/KirkDiggler/realm-forge/internal/errors"
	"github.com/KirkDiggler/realm-forge/internal/repositories"
)

func newTestSQLiteRepo(t *testing.T) (Repository, *sql.DB, *fakeClock) {
	t.Helper()

	db, err := repositories.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	clock := &fakeClock{now: time.Now().UTC().Truncate(time.Second)}
	repo, err := NewSQLiteRepository(&SQLiteRepoConfig{
		DB:           db,
		TimeProvider: clock,
		TTL:          time.Hour,
	})
	require.NoError(t, err)
	return repo, db, clock
}

func sqliteTestDraft(id, ownerID string) *character.Draft {
	d := character.NewDraft(id, ownerID)
	d.Character.Name = "Unnamed"
	d.CurrentStep = character.StepRace
	return d
}

func TestSQLiteRepository_CreateAndGet(t *testing.T) {
	repo, _, clock := newTestSQLiteRepo(t)
	ctx := context.Background()

	draft := sqliteTestDraft("draft-1", "owner-1")
	require.NoError(t, repo.Create(ctx, draft))
	assert.Equal(t, clock.now, draft.CreatedAt)

	got, err := repo.Get(ctx, "draft-1")
	require.NoError(t, err)
	assert.Equal(t, "draft-1", got.ID)
	assert.Equal(t, "owner-1", got.OwnerID)
	assert.Equal(t, "Unnamed", got.Character.Name)
	assert.Equal(t, character.StepRace, got.CurrentStep)

	err = repo.Create(ctx, sqliteTestDraft("draft-1", "owner-1"))
	require.Error(t, err)
	assert.True(t, errors.IsAlreadyExists(err))
}

func TestSQLiteRepository_GetNotFound(t *testing.T) {
	repo, _, _ := newTestSQLiteRepo(t)

	_, err := repo.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestSQLiteRepository_GetByOwner(t *testing.T) {
	repo, _, _ := newTestSQLiteRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, sqliteTestDraft("draft-2", "owner-1")))
	require.NoError(t, repo.Create(ctx, sqliteTestDraft("draft-1", "owner-1")))
	require.NoError(t, repo.Create(ctx, sqliteTestDraft("draft-3", "owner-2")))

	result, err := repo.GetByOwner(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "draft-1", result[0].ID)
	assert.Equal(t, "draft-2", result[1].ID)

	result, err = repo.GetByOwner(ctx, "owner-3")
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestSQLiteRepository_Update(t *testing.T) {
	repo, _, clock := newTestSQLiteRepo(t)
	ctx := context.Background()

	draft := sqliteTestDraft("draft-1", "owner-1")
	require.NoError(t, repo.Create(ctx, draft))
	created := draft.CreatedAt

	clock.Advance(10 * time.Minute)
	draft.CurrentStep = character.StepPath
	draft.Character.Name = "Seren"
	require.NoError(t, repo.Update(ctx, draft))

	got, err := repo.Get(ctx, "draft-1")
	require.NoError(t, err)
	assert.Equal(t, character.StepPath, got.CurrentStep)
	assert.Equal(t, "Seren", got.Character.Name)
	assert.Equal(t, created, got.CreatedAt)
	assert.Equal(t, clock.now, got.UpdatedAt)

	err = repo.Update(ctx, sqliteTestDraft("missing", "owner-1"))
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestSQLiteRepository_Delete(t *testing.T) {
	repo, _, _ := newTestSQLiteRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, sqliteTestDraft("draft-1", "owner-1")))
	require.NoError(t, repo.Delete(ctx, "draft-1"))

	_, err := repo.Get(ctx, "draft-1")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	err = repo.Delete(ctx, "draft-1")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestSQLiteRepository_Expiry(t *testing.T) {
	repo, _, clock := newTestSQLiteRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, sqliteTestDraft("draft-1", "owner-1")))

	clock.Advance(2 * time.Hour)

	_, err := repo.Get(ctx, "draft-1")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	err = repo.Update(ctx, sqliteTestDraft("draft-1", "owner-1"))
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	err = repo.Delete(ctx, "draft-1")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	result, err := repo.GetByOwner(ctx, "owner-1")
	require.NoError(t, err)
	assert.Empty(t, result)

	// The expired row does not block reuse of the ID.
	require.NoError(t, repo.Create(ctx, sqliteTestDraft("draft-1", "owner-1")))
}

func TestSQLiteRepository_ExpiryRefreshedByGet(t *testing.T) {
	repo, _, clock := newTestSQLiteRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, sqliteTestDraft("draft-1", "owner-1")))

	clock.Advance(45 * time.Minute)
	_, err := repo.Get(ctx, "draft-1")
	require.NoError(t, err)

	clock.Advance(30 * time.Minute)
	_, err = repo.Get(ctx, "draft-1")
	require.NoError(t, err)
}

func TestSQLiteRepository_PurgeOnOpen(t *testing.T) {
	db, err := repositories.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	clock := &fakeClock{now: time.Now().UTC().Truncate(time.Second)}
	repo, err := NewSQLiteRepository(&SQLiteRepoConfig{DB: db, TimeProvider: clock, TTL: time.Hour})
	require.NoError(t, err)

	require.NoError(t, repo.Create(context.Background(), sqliteTestDraft("draft-1", "owner-1")))

	clock.Advance(2 * time.Hour)
	_, err = NewSQLiteRepository(&SQLiteRepoConfig{DB: db, TimeProvider: clock, TTL: time.Hour})
	require.NoError(t, err)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM drafts`).Scan(&count))
	assert.Equal(t, 0, count)
}

func TestNewSQLiteRepository_Validation(t *testing.T) {
	_, err := NewSQLiteRepository(nil)
	require.Error(t, err)

	_, err = NewSQLiteRepository(&SQLiteRepoConfig{})
	require.Error(t, err)
}
