package characters

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/realm-forge/internal/domain/character"
	"github.com/KirkDiggler/realm-forge/internal/domain/rulebook"
	"github.com/KirkDiggler/realm-forge/internal/domain/shared"
	"github.com/KirkDiggler/realm-forge/internal/errors"
	"github.com/KirkDiggler/realm-forge/internal/repositories"
)

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }

func newTestSQLiteRepo(t *testing.T) (Repository, *sql.DB, *fixedTime) {
	t.Helper()

	db, err := repositories.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	clock := &fixedTime{now: time.Now().UTC().Truncate(time.Millisecond)}
	repo, err := NewSQLiteRepository(&SQLiteRepoConfig{DB: db, TimeProvider: clock})
	require.NoError(t, err)
	return repo, db, clock
}

func sqliteTestCharacter(id, ownerID string) *character.Character {
	c := character.NewCharacter(id)
	c.OwnerID = ownerID
	c.Name = "Seren"
	c.RaceKey = "elf"
	c.AncestryKey = "sylari"
	c.ProfessionKey = "scholar"
	c.PrimaryPath = shared.PathKeyMystic
	c.Paths = []string{shared.PathKeyMystic}
	c.Level = 3
	c.Health.Max = 20
	c.Health.Current = 17
	c.AddLanguage("Common")
	return c
}

func TestSQLiteRepository_CreateAndGet(t *testing.T) {
	repo, _, clock := newTestSQLiteRepo(t)
	ctx := context.Background()

	char := sqliteTestCharacter("char-1", "owner-1")
	require.NoError(t, repo.Create(ctx, char))
	assert.Equal(t, clock.now, char.CreatedAt)
	assert.Equal(t, clock.now, char.UpdatedAt)

	got, err := repo.Get(ctx, "char-1")
	require.NoError(t, err)
	assert.Equal(t, "char-1", got.ID)
	assert.Equal(t, "owner-1", got.OwnerID)
	assert.Equal(t, "Seren", got.Name)
	assert.Equal(t, 3, got.Level)
	assert.Equal(t, 17, got.Health.Current)
	assert.Equal(t, []string{"Common"}, got.Languages)

	err = repo.Create(ctx, sqliteTestCharacter("char-1", "owner-1"))
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

	require.NoError(t, repo.Create(ctx, sqliteTestCharacter("char-2", "owner-1")))
	require.NoError(t, repo.Create(ctx, sqliteTestCharacter("char-1", "owner-1")))
	require.NoError(t, repo.Create(ctx, sqliteTestCharacter("char-3", "owner-2")))

	chars, err := repo.GetByOwner(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, chars, 2)
	assert.Equal(t, "char-1", chars[0].ID)
	assert.Equal(t, "char-2", chars[1].ID)

	chars, err = repo.GetByOwner(ctx, "owner-3")
	require.NoError(t, err)
	assert.Empty(t, chars)
}

func TestSQLiteRepository_Update(t *testing.T) {
	repo, _, clock := newTestSQLiteRepo(t)
	ctx := context.Background()

	char := sqliteTestCharacter("char-1", "owner-1")
	require.NoError(t, repo.Create(ctx, char))
	created := char.CreatedAt

	clock.now = clock.now.Add(time.Hour)
	char.Level = 4
	char.Health.Current = 27
	require.NoError(t, repo.Update(ctx, char))

	got, err := repo.Get(ctx, "char-1")
	require.NoError(t, err)
	assert.Equal(t, 4, got.Level)
	assert.Equal(t, 27, got.Health.Current)
	assert.Equal(t, created, got.CreatedAt)
	assert.Equal(t, clock.now, got.UpdatedAt)

	err = repo.Update(ctx, sqliteTestCharacter("missing", "owner-1"))
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestSQLiteRepository_Delete(t *testing.T) {
	repo, _, _ := newTestSQLiteRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, sqliteTestCharacter("char-1", "owner-1")))
	require.NoError(t, repo.Delete(ctx, "char-1"))

	_, err := repo.Get(ctx, "char-1")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	err = repo.Delete(ctx, "char-1")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestSQLiteRepository_DocumentFidelity(t *testing.T) {
	repo, _, _ := newTestSQLiteRepo(t)
	ctx := context.Background()

	char := sqliteTestCharacter("char-1", "owner-1")
	char.AbilityScores[shared.AttributeIntellect] = &character.AbilityScore{Roll: 13, Misc: 2}
	char.Skills[rulebook.SkillArcana] = &character.SkillEntry{Trained: true, Rank: 1}
	char.Talents = append(char.Talents, &character.KnownTalent{
		Key:     shared.TalentKeyArcaneFocus,
		Name:    "Arcane Focus",
		Rank:    1,
		PathKey: shared.PathKeyMystic,
	})
	require.NoError(t, repo.Create(ctx, char))

	got, err := repo.Get(ctx, "char-1")
	require.NoError(t, err)
	require.NotNil(t, got.AbilityScores[shared.AttributeIntellect])
	assert.Equal(t, 13, got.AbilityScores[shared.AttributeIntellect].Roll)
	assert.Equal(t, 2, got.AbilityScores[shared.AttributeIntellect].Misc)
	require.NotNil(t, got.Skills[rulebook.SkillArcana])
	assert.True(t, got.Skills[rulebook.SkillArcana].Trained)
	require.Len(t, got.Talents, 1)
	assert.Equal(t, shared.TalentKeyArcaneFocus, got.Talents[0].Key)
	assert.Equal(t, 1, got.Talents[0].Rank)
}

func TestNewSQLiteRepository_Validation(t *testing.T) {
	_, err := NewSQLiteRepository(nil)
	require.Error(t, err)

	_, err = NewSQLiteRepository(&SQLiteRepoConfig{})
	require.Error(t, err)
}
