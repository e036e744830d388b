package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StorageMemory, cfg.Storage)
	assert.Equal(t, IDFormatULID, cfg.IDFormat)
	assert.Equal(t, 24, cfg.DraftTTLHours)
	assert.Equal(t, 24*time.Hour, cfg.DraftTTL())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("STORAGE", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/realm.db")
	t.Setenv("DRAFT_TTL_HOURS", "48")
	t.Setenv("ID_FORMAT", "uuid")
	t.Setenv("CONTENT_DIR", "/srv/packs")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StorageSQLite, cfg.Storage)
	assert.Equal(t, "/tmp/realm.db", cfg.SQLitePath)
	assert.Equal(t, 48*time.Hour, cfg.DraftTTL())
	assert.Equal(t, IDFormatUUID, cfg.IDFormat)
	assert.Equal(t, "/srv/packs", cfg.ContentDir)
}

func TestLoadRejectsUnknownStorage(t *testing.T) {
	t.Setenv("STORAGE", "mongodb")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORAGE must be")
}

func TestLoadRejectsUnknownIDFormat(t *testing.T) {
	t.Setenv("ID_FORMAT", "snowflake")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ID_FORMAT must be")
}

func TestLoadRejectsNonPositiveTTL(t *testing.T) {
	t.Setenv("DRAFT_TTL_HOURS", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DRAFT_TTL_HOURS")
}

func TestLoadRejectsMalformedTTL(t *testing.T) {
	t.Setenv("DRAFT_TTL_HOURS", "soon")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}
