package rulebook

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/KirkDiggler/realm-forge/internal/domain/shared"
	"github.com/KirkDiggler/realm-forge/internal/errors"
)

// ContentPack is the decoded form of a content pack file. Packs layer on
// top of the built-in content; an entry whose key matches a built-in (or
// an earlier pack's) entry replaces it.
type ContentPack struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`

	Races       []Race       `toml:"races"`
	Ancestries  []Ancestry   `toml:"ancestries"`
	Professions []Profession `toml:"professions"`
	Paths       []Path       `toml:"paths"`
	Backgrounds []Background `toml:"backgrounds"`
	Talents     []packTalent `toml:"talents"`
}

// packTalent mirrors Talent with string-keyed rank maps. TOML table keys
// are strings, so int-keyed maps are converted after decoding.
type packTalent struct {
	Key               string            `toml:"key"`
	Name              string            `toml:"name"`
	Description       string            `toml:"description"`
	MaxRank           int               `toml:"max_rank"`
	Ranks             map[string]string `toml:"ranks"`
	Prerequisites     *packPrereqs      `toml:"prerequisites"`
	Category          TalentCategory    `toml:"category"`
	PathKey           string            `toml:"path_key"`
	IsPrimary         bool              `toml:"is_primary"`
	IsCapstone        bool              `toml:"is_capstone"`
	RequiresChoice    bool              `toml:"requires_choice"`
	ChoiceType        string            `toml:"choice_type"`
	ChoiceOptions     []string          `toml:"choice_options"`
	WeaponRequirement string            `toml:"weapon_requirement"`
}

type packPrereqs struct {
	Abilities       map[string]int `toml:"abilities"`
	Logic           PrereqLogic    `toml:"logic"`
	LevelByRank     map[string]int `toml:"level_by_rank"`
	RequiredTalents []string       `toml:"required_talents"`
	AllPathTalents  bool           `toml:"all_path_talents"`
}

func (t *packTalent) toTalent() (Talent, error) {
	out := Talent{
		Key:               t.Key,
		Name:              t.Name,
		Description:       t.Description,
		MaxRank:           t.MaxRank,
		Category:          t.Category,
		PathKey:           t.PathKey,
		IsPrimary:         t.IsPrimary,
		IsCapstone:        t.IsCapstone,
		RequiresChoice:    t.RequiresChoice,
		ChoiceType:        t.ChoiceType,
		ChoiceOptions:     t.ChoiceOptions,
		WeaponRequirement: t.WeaponRequirement,
	}
	if out.Category == "" {
		out.Category = TalentCategoryGeneral
		if out.PathKey != "" {
			out.Category = TalentCategoryPath
		}
	}
	if len(t.Ranks) > 0 {
		out.Ranks = make(map[int]string, len(t.Ranks))
		for key, text := range t.Ranks {
			rank, err := strconv.Atoi(key)
			if err != nil {
				return Talent{}, errors.InvalidArgumentf("talent %s: rank key %q is not a number", t.Key, key)
			}
			out.Ranks[rank] = text
		}
	}
	if t.Prerequisites != nil {
		prereqs := &TalentPrerequisites{
			Logic:           t.Prerequisites.Logic,
			RequiredTalents: t.Prerequisites.RequiredTalents,
			AllPathTalents:  t.Prerequisites.AllPathTalents,
		}
		if len(t.Prerequisites.Abilities) > 0 {
			prereqs.Abilities = make(map[shared.Attribute]int, len(t.Prerequisites.Abilities))
			for key, min := range t.Prerequisites.Abilities {
				attr := shared.ParseAttribute(key)
				if attr == shared.AttributeNone {
					return Talent{}, errors.InvalidArgumentf("talent %s: unknown attribute %q", t.Key, key)
				}
				prereqs.Abilities[attr] = min
			}
		}
		if len(t.Prerequisites.LevelByRank) > 0 {
			prereqs.LevelByRank = make(map[int]int, len(t.Prerequisites.LevelByRank))
			for key, level := range t.Prerequisites.LevelByRank {
				rank, err := strconv.Atoi(key)
				if err != nil {
					return Talent{}, errors.InvalidArgumentf("talent %s: level requirement key %q is not a number", t.Key, key)
				}
				prereqs.LevelByRank[rank] = level
			}
		}
		out.Prerequisites = prereqs
	}
	return out, nil
}

// ParsePack parses content pack TOML from bytes.
func ParsePack(data []byte) (*ContentPack, error) {
	var pack ContentPack
	if _, err := toml.Decode(string(data), &pack); err != nil {
		return nil, errors.Wrapf(err, "parsing content pack")
	}
	return &pack, nil
}

// ParsePackFile reads and parses a single content pack file.
func ParsePackFile(path string) (*ContentPack, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from the configured content directory
	if err != nil {
		return nil, errors.Wrapf(err, "reading content pack %s", path)
	}
	pack, err := ParsePack(data)
	if err != nil {
		return nil, errors.Wrapf(err, "content pack %s", filepath.Base(path))
	}
	return pack, nil
}

func (p *ContentPack) apply(cfg *CatalogConfig) error {
	cfg.Races = append(cfg.Races, p.Races...)
	cfg.Ancestries = append(cfg.Ancestries, p.Ancestries...)
	cfg.Professions = append(cfg.Professions, p.Professions...)
	cfg.Paths = append(cfg.Paths, p.Paths...)
	cfg.Backgrounds = append(cfg.Backgrounds, p.Backgrounds...)
	for i := range p.Talents {
		talent, err := p.Talents[i].toTalent()
		if err != nil {
			return err
		}
		cfg.Talents = append(cfg.Talents, talent)
	}
	return nil
}

// LoadCatalog builds a catalog from the built-in content plus every
// *.toml pack under dir, applied in filename order. An empty dir yields
// the built-in content alone. The result is validated before return.
func LoadCatalog(dir string) (*Catalog, error) {
	cfg := &CatalogConfig{
		Races:       DefaultRaces(),
		Ancestries:  DefaultAncestries(),
		Professions: DefaultProfessions(),
		Paths:       DefaultPaths(),
		Backgrounds: DefaultBackgrounds(),
		Talents:     DefaultTalents(),
	}

	if dir != "" {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, errors.Wrapf(err, "reading content directory %s", dir)
		}
		// os.ReadDir sorts by filename, which fixes the layering order.
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
				continue
			}
			pack, err := ParsePackFile(filepath.Join(dir, entry.Name()))
			if err != nil {
				return nil, err
			}
			if err := pack.apply(cfg); err != nil {
				return nil, errors.Wrapf(err, "content pack %s", entry.Name())
			}
		}
	}

	catalog := NewCatalog(cfg)
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return catalog, nil
}
