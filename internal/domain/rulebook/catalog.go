package rulebook

import (
	"fmt"

	"github.com/KirkDiggler/realm-forge/internal/errors"
)

// Catalog is the immutable rules content a builder or advancement engine
// works against. Lookups are by key; list methods return entries in load
// order, defaults first, then content packs.
type Catalog struct {
	races        map[string]*Race
	ancestries   map[string]*Ancestry
	professions  map[string]*Profession
	paths        map[string]*Path
	backgrounds  map[string]*Background
	talents      map[string]*Talent
	raceKeys     []string
	ancestryKeys []string
	professKeys  []string
	pathKeys     []string
	backgrdKeys  []string
	talentKeys   []string
}

// CatalogConfig carries the content a catalog is built from.
type CatalogConfig struct {
	Races       []Race
	Ancestries  []Ancestry
	Professions []Profession
	Paths       []Path
	Backgrounds []Background
	Talents     []Talent
}

// NewCatalog builds a catalog from content lists. Later entries with the
// same key replace earlier ones, which is how content packs override
// default content.
func NewCatalog(cfg *CatalogConfig) *Catalog {
	c := &Catalog{
		races:       make(map[string]*Race),
		ancestries:  make(map[string]*Ancestry),
		professions: make(map[string]*Profession),
		paths:       make(map[string]*Path),
		backgrounds: make(map[string]*Background),
		talents:     make(map[string]*Talent),
	}
	if cfg == nil {
		return c
	}

	for i := range cfg.Races {
		race := cfg.Races[i]
		if _, ok := c.races[race.Key]; !ok {
			c.raceKeys = append(c.raceKeys, race.Key)
		}
		c.races[race.Key] = &race
	}
	for i := range cfg.Ancestries {
		ancestry := cfg.Ancestries[i]
		if _, ok := c.ancestries[ancestry.Key]; !ok {
			c.ancestryKeys = append(c.ancestryKeys, ancestry.Key)
		}
		c.ancestries[ancestry.Key] = &ancestry
	}
	for i := range cfg.Professions {
		profession := cfg.Professions[i]
		if _, ok := c.professions[profession.Key]; !ok {
			c.professKeys = append(c.professKeys, profession.Key)
		}
		c.professions[profession.Key] = &profession
	}
	for i := range cfg.Paths {
		path := cfg.Paths[i]
		if _, ok := c.paths[path.Key]; !ok {
			c.pathKeys = append(c.pathKeys, path.Key)
		}
		c.paths[path.Key] = &path
	}
	for i := range cfg.Backgrounds {
		background := cfg.Backgrounds[i]
		if _, ok := c.backgrounds[background.Key]; !ok {
			c.backgrdKeys = append(c.backgrdKeys, background.Key)
		}
		c.backgrounds[background.Key] = &background
	}
	for i := range cfg.Talents {
		talent := cfg.Talents[i]
		if _, ok := c.talents[talent.Key]; !ok {
			c.talentKeys = append(c.talentKeys, talent.Key)
		}
		c.talents[talent.Key] = &talent
	}

	return c
}

// Race returns the race with the given key.
func (c *Catalog) Race(key string) (*Race, error) {
	race, ok := c.races[key]
	if !ok {
		return nil, errors.NotFoundf("unknown race: %s", key)
	}
	return race, nil
}

// Races returns every race in load order.
func (c *Catalog) Races() []*Race {
	out := make([]*Race, 0, len(c.raceKeys))
	for _, key := range c.raceKeys {
		out = append(out, c.races[key])
	}
	return out
}

// Ancestry returns the ancestry with the given key.
func (c *Catalog) Ancestry(key string) (*Ancestry, error) {
	ancestry, ok := c.ancestries[key]
	if !ok {
		return nil, errors.NotFoundf("unknown ancestry: %s", key)
	}
	return ancestry, nil
}

// Ancestries returns every ancestry in load order.
func (c *Catalog) Ancestries() []*Ancestry {
	out := make([]*Ancestry, 0, len(c.ancestryKeys))
	for _, key := range c.ancestryKeys {
		out = append(out, c.ancestries[key])
	}
	return out
}

// AncestriesForRace returns the ancestries belonging to a race, in load order.
func (c *Catalog) AncestriesForRace(raceKey string) []*Ancestry {
	var out []*Ancestry
	for _, key := range c.ancestryKeys {
		if c.ancestries[key].RaceKey == raceKey {
			out = append(out, c.ancestries[key])
		}
	}
	return out
}

// Profession returns the profession with the given key.
func (c *Catalog) Profession(key string) (*Profession, error) {
	profession, ok := c.professions[key]
	if !ok {
		return nil, errors.NotFoundf("unknown profession: %s", key)
	}
	return profession, nil
}

// Professions returns every profession in load order.
func (c *Catalog) Professions() []*Profession {
	out := make([]*Profession, 0, len(c.professKeys))
	for _, key := range c.professKeys {
		out = append(out, c.professions[key])
	}
	return out
}

// Path returns the path with the given key.
func (c *Catalog) Path(key string) (*Path, error) {
	path, ok := c.paths[key]
	if !ok {
		return nil, errors.NotFoundf("unknown path: %s", key)
	}
	return path, nil
}

// Paths returns every path in load order.
func (c *Catalog) Paths() []*Path {
	out := make([]*Path, 0, len(c.pathKeys))
	for _, key := range c.pathKeys {
		out = append(out, c.paths[key])
	}
	return out
}

// Background returns the background with the given key.
func (c *Catalog) Background(key string) (*Background, error) {
	background, ok := c.backgrounds[key]
	if !ok {
		return nil, errors.NotFoundf("unknown background: %s", key)
	}
	return background, nil
}

// Backgrounds returns every background in load order.
func (c *Catalog) Backgrounds() []*Background {
	out := make([]*Background, 0, len(c.backgrdKeys))
	for _, key := range c.backgrdKeys {
		out = append(out, c.backgrounds[key])
	}
	return out
}

// Talent returns the talent with the given key.
func (c *Catalog) Talent(key string) (*Talent, error) {
	talent, ok := c.talents[key]
	if !ok {
		return nil, errors.NotFoundf("unknown talent: %s", key)
	}
	return talent, nil
}

// Talents returns every talent in load order.
func (c *Catalog) Talents() []*Talent {
	out := make([]*Talent, 0, len(c.talentKeys))
	for _, key := range c.talentKeys {
		out = append(out, c.talents[key])
	}
	return out
}

// TalentsForPath returns a path's talents in load order.
func (c *Catalog) TalentsForPath(pathKey string) []*Talent {
	var out []*Talent
	for _, key := range c.talentKeys {
		talent := c.talents[key]
		if talent.Category == TalentCategoryPath && talent.PathKey == pathKey {
			out = append(out, talent)
		}
	}
	return out
}

// GeneralTalents returns every general-category talent in load order.
func (c *Catalog) GeneralTalents() []*Talent {
	var out []*Talent
	for _, key := range c.talentKeys {
		if c.talents[key].Category == TalentCategoryGeneral {
			out = append(out, c.talents[key])
		}
	}
	return out
}

// Validate checks the catalog's internal consistency: cross references
// resolve and every talent's rank map is dense from 1 to its max rank.
func (c *Catalog) Validate() error {
	for _, key := range c.ancestryKeys {
		ancestry := c.ancestries[key]
		if _, ok := c.races[ancestry.RaceKey]; !ok {
			return errors.InvalidArgumentf("ancestry %s references unknown race %s", key, ancestry.RaceKey)
		}
	}

	for _, key := range c.pathKeys {
		path := c.paths[key]
		for _, talentKey := range path.Talents {
			if _, ok := c.talents[talentKey]; !ok {
				return errors.InvalidArgumentf("path %s references unknown talent %s", key, talentKey)
			}
		}
	}

	for _, key := range c.talentKeys {
		talent := c.talents[key]
		if talent.MaxRank < 1 {
			return errors.InvalidArgumentf("talent %s has max rank %d", key, talent.MaxRank)
		}
		for rank := 1; rank <= talent.MaxRank; rank++ {
			if _, ok := talent.Ranks[rank]; !ok {
				return errors.InvalidArgumentf("talent %s is missing rank %d of %d", key, rank, talent.MaxRank)
			}
		}
		if talent.Category == TalentCategoryPath {
			if _, ok := c.paths[talent.PathKey]; !ok {
				return errors.InvalidArgumentf("talent %s references unknown path %s", key, talent.PathKey)
			}
		}
		if prereqs := talent.Prerequisites; prereqs != nil {
			for _, requiredKey := range prereqs.RequiredTalents {
				if _, ok := c.talents[requiredKey]; !ok {
					return errors.InvalidArgumentf("talent %s requires unknown talent %s", key, requiredKey)
				}
			}
		}
	}

	for _, key := range c.professKeys {
		profession := c.professions[key]
		seen := make(map[string]bool)
		for _, duty := range profession.Duties {
			if seen[duty.Key] {
				return errors.InvalidArgumentf("profession %s has duplicate duty %s", key, duty.Key)
			}
			seen[duty.Key] = true
		}
	}

	return nil
}

// String summarizes the catalog's contents.
func (c *Catalog) String() string {
	return fmt.Sprintf("catalog: %d races, %d ancestries, %d professions, %d paths, %d backgrounds, %d talents",
		len(c.races), len(c.ancestries), len(c.professions), len(c.paths), len(c.backgrounds), len(c.talents))
}
