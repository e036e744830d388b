// Package cli implements the forge CLI commands.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/realm-forge/internal/config"
	"github.com/KirkDiggler/realm-forge/internal/dice"
	"github.com/KirkDiggler/realm-forge/internal/domain/rulebook"
	"github.com/KirkDiggler/realm-forge/internal/repositories"
	"github.com/KirkDiggler/realm-forge/internal/repositories/characters"
	"github.com/KirkDiggler/realm-forge/internal/repositories/drafts"
	"github.com/KirkDiggler/realm-forge/internal/services"
	"github.com/KirkDiggler/realm-forge/internal/uuid"
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "forge",
	Short: "Create and advance Realm of Warriors characters",
	Long: "forge walks a character draft through ability scores, race, ancestry,\n" +
		"profession, path, and background, resolves the pending choices each step\n" +
		"opens, and finalizes the draft into a stored character that can earn XP\n" +
		"and level up. Storage is selected through the environment (STORAGE).",
}

// openProvider builds the service layer from the environment: catalog
// (built-in content plus CONTENT_DIR packs) and repositories on the
// configured storage backend. The returned cleanup closes whatever
// connection the backend opened.
func openProvider() (*services.Provider, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	catalog, err := rulebook.LoadCatalog(cfg.ContentDir)
	if err != nil {
		return nil, nil, err
	}

	providerCfg := &services.ProviderConfig{
		Catalog:     catalog,
		Roller:      dice.NewRandomRoller(),
		IDGenerator: idGenerator(cfg),
	}
	cleanup := func() {}

	switch cfg.Storage {
	case config.StorageRedis:
		opts, parseErr := redis.ParseURL(cfg.RedisURL)
		if parseErr != nil {
			return nil, nil, fmt.Errorf("parse REDIS_URL: %w", parseErr)
		}
		client := redis.NewClient(opts)
		providerCfg.CharacterRepository = characters.NewRedisRepository(&characters.RedisRepoConfig{
			Client: client,
		})
		providerCfg.DraftRepository = drafts.NewRedisRepository(&drafts.RedisRepoConfig{
			Client: client,
			TTL:    cfg.DraftTTL(),
		})
		cleanup = func() { _ = client.Close() }

	case config.StorageSQLite:
		db, openErr := repositories.OpenSQLite(cfg.SQLitePath)
		if openErr != nil {
			return nil, nil, openErr
		}
		charRepo, repoErr := characters.NewSQLiteRepository(&characters.SQLiteRepoConfig{DB: db})
		if repoErr != nil {
			_ = db.Close()
			return nil, nil, repoErr
		}
		draftRepo, repoErr := drafts.NewSQLiteRepository(&drafts.SQLiteRepoConfig{
			DB:  db,
			TTL: cfg.DraftTTL(),
		})
		if repoErr != nil {
			_ = db.Close()
			return nil, nil, repoErr
		}
		providerCfg.CharacterRepository = charRepo
		providerCfg.DraftRepository = draftRepo
		cleanup = func() { _ = db.Close() }
	}
	// StorageMemory falls through: the provider defaults to in-memory
	// stores, which live only as long as the command.

	return services.NewProvider(providerCfg), cleanup, nil
}

func idGenerator(cfg *config.Config) uuid.Generator {
	if cfg.IDFormat == config.IDFormatUUID {
		return uuid.NewGoogleUUIDGenerator()
	}
	return uuid.NewULIDGenerator()
}

func printJSON(v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
