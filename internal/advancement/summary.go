package advancement

import (
	"github.com/KirkDiggler/realm-forge/internal/domain/character"
	"github.com/KirkDiggler/realm-forge/internal/domain/rulebook"
	"github.com/KirkDiggler/realm-forge/internal/errors"
)

// LevelSummary reports where a character stands against the XP table.
type LevelSummary struct {
	Level int `json:"level"`
	XP    int `json:"xp"`

	XPForCurrentLevel int `json:"xp_for_current_level"`
	XPForNextLevel    int `json:"xp_for_next_level"`

	// XPNeeded is how much more XP the next level takes, floored at 0.
	XPNeeded int `json:"xp_needed"`

	// XPProgress and XPRequired describe progress within the current
	// level's band.
	XPProgress int `json:"xp_progress"`
	XPRequired int `json:"xp_required"`

	// PendingLevels counts level ups earned by XP but not yet taken.
	PendingLevels int `json:"pending_levels"`

	TalentPointsPerLevel int    `json:"talent_points_per_level"`
	PrimaryPath          string `json:"primary_path"`
}

// Summary describes the character's current standing on the XP track.
func (e *Engine) Summary(c *character.Character) (*LevelSummary, error) {
	if c == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	forCurrent := rulebook.XPForLevel(c.Level)
	forNext := rulebook.XPForLevel(c.Level + 1)

	needed := forNext - c.TotalExperience
	if needed < 0 {
		needed = 0
	}

	return &LevelSummary{
		Level:                c.Level,
		XP:                   c.TotalExperience,
		XPForCurrentLevel:    forCurrent,
		XPForNextLevel:       forNext,
		XPNeeded:             needed,
		XPProgress:           c.TotalExperience - forCurrent,
		XPRequired:           forNext - forCurrent,
		PendingLevels:        c.PendingLevels(),
		TalentPointsPerLevel: e.talentPoints(c),
		PrimaryPath:          c.PrimaryPath,
	}, nil
}
