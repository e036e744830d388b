// Package services wires the service layer together for commands and
// tests.
package services

import (
	"github.com/KirkDiggler/realm-forge/internal/dice"
	"github.com/KirkDiggler/realm-forge/internal/domain/rulebook"
	"github.com/KirkDiggler/realm-forge/internal/repositories/characters"
	"github.com/KirkDiggler/realm-forge/internal/repositories/drafts"
	characterService "github.com/KirkDiggler/realm-forge/internal/services/character"
	"github.com/KirkDiggler/realm-forge/internal/uuid"
)

// Provider holds all service instances
type Provider struct {
	CharacterService characterService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	Catalog             *rulebook.Catalog
	CharacterRepository characters.Repository
	DraftRepository     drafts.Repository
	Roller              dice.Roller
	IDGenerator         uuid.Generator
}

// NewProvider creates a new service provider with all services
// initialized. Missing repositories fall back to in-memory stores and a
// missing catalog falls back to the built-in content.
func NewProvider(cfg *ProviderConfig) *Provider {
	catalog := cfg.Catalog
	if catalog == nil {
		catalog = rulebook.DefaultCatalog()
	}

	charRepo := cfg.CharacterRepository
	if charRepo == nil {
		charRepo = characters.NewInMemoryRepository()
	}

	draftRepo := cfg.DraftRepository
	if draftRepo == nil {
		draftRepo = drafts.NewInMemoryRepository(nil)
	}

	charService := characterService.NewService(&characterService.ServiceConfig{
		Catalog:             catalog,
		CharacterRepository: charRepo,
		DraftRepository:     draftRepo,
		Roller:              cfg.Roller,
		IDGenerator:         cfg.IDGenerator,
	})

	return &Provider{
		CharacterService: charService,
	}
}
