package validator

import (
	"sort"
	"strings"

	"github.com/KirkDiggler/realm-forge/internal/domain/character"
	"github.com/KirkDiggler/realm-forge/internal/domain/rulebook"
	"github.com/KirkDiggler/realm-forge/internal/domain/shared"
)

// Method is how a set of ability scores was generated.
type Method string

const (
	MethodPointBuy      Method = "point_buy"
	MethodStandardArray Method = "standard_array"
	MethodRoll          Method = "roll"
	MethodManual        Method = "manual"
)

// ParseMethod matches a name to a generation method. The older
// "point_draw" spelling maps to point buy; an empty name means manual.
func ParseMethod(name string) Method {
	switch strings.ToLower(name) {
	case "point_buy", "point_draw":
		return MethodPointBuy
	case "standard_array":
		return MethodStandardArray
	case "roll":
		return MethodRoll
	case "manual", "":
		return MethodManual
	}
	return ""
}

// PointBuyBudget is the points available under the point buy method.
const PointBuyBudget = 30

// PointBuyCosts maps a score to its point buy cost. Scores outside the
// map are not purchasable.
var PointBuyCosts = map[int]int{
	8:  0,
	9:  1,
	10: 2,
	11: 3,
	12: 4,
	13: 5,
	14: 7,
	15: 9,
	16: 11,
}

// StandardArray lists the seven scores the standard array offers; any
// six may be assigned, none twice.
var StandardArray = []int{15, 14, 13, 12, 11, 10, 8}

// Validator checks inputs against the catalog. It holds no per-character
// state and is safe for concurrent use.
type Validator struct {
	catalog *rulebook.Catalog
}

// New returns a validator backed by the given catalog.
func New(catalog *rulebook.Catalog) *Validator {
	return &Validator{catalog: catalog}
}

// ValidateAbilityScores checks the six scores for shape and range, plus
// the budget rules of the generation method.
func (v *Validator) ValidateAbilityScores(scores map[shared.Attribute]int, method Method) *Result {
	result := NewResult()

	var missing []string
	for _, attr := range shared.Attributes {
		if _, ok := scores[attr]; !ok {
			missing = append(missing, string(attr))
		}
	}
	if len(missing) > 0 {
		result.AddErrorf("Missing ability scores: %s", strings.Join(missing, ", "))
	}

	var unknown []string
	for attr := range scores {
		if !attr.IsValid() {
			unknown = append(unknown, string(attr))
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		result.AddErrorf("Unknown ability scores: %s", strings.Join(unknown, ", "))
	}

	for _, attr := range shared.Attributes {
		value, ok := scores[attr]
		if !ok {
			continue
		}
		switch {
		case value < 1:
			result.AddErrorf("%s cannot be less than 1 (got %d)", attr, value)
		case value > 20:
			result.AddErrorf("%s cannot exceed 20 (got %d)", attr, value)
		case value < 3:
			result.AddWarningf("%s is unusually low (%d)", attr, value)
		}
	}

	switch method {
	case MethodPointBuy:
		result.Merge(v.validatePointBuy(scores))
	case MethodStandardArray:
		result.Merge(v.validateStandardArray(scores))
	}

	return result
}

func (v *Validator) validatePointBuy(scores map[shared.Attribute]int) *Result {
	result := NewResult()

	totalCost := 0
	for _, attr := range shared.Attributes {
		value, ok := scores[attr]
		if !ok {
			continue
		}
		switch {
		case value < 8:
			result.AddErrorf("Point buy: %s cannot be below 8 (got %d)", attr, value)
		case value > 16:
			result.AddErrorf("Point buy: %s cannot exceed 16 (got %d)", attr, value)
		default:
			totalCost += PointBuyCosts[value]
		}
	}

	if totalCost > PointBuyBudget {
		result.AddErrorf("Point buy: spent %d points (max %d)", totalCost, PointBuyBudget)
	} else if totalCost < PointBuyBudget {
		result.AddWarningf("Point buy: only spent %d of %d points", totalCost, PointBuyBudget)
	}

	return result
}

func (v *Validator) validateStandardArray(scores map[shared.Attribute]int) *Result {
	result := NewResult()

	if len(scores) != len(shared.Attributes) {
		result.AddErrorf("Standard array must assign exactly %d scores, got %d", len(shared.Attributes), len(scores))
		return result
	}

	remaining := append([]int(nil), StandardArray...)
	for _, attr := range shared.Attributes {
		value := scores[attr]
		found := false
		for i, allowed := range remaining {
			if allowed == value {
				remaining = append(remaining[:i], remaining[i+1:]...)
				found = true
				break
			}
		}
		if !found {
			result.AddErrorf("Standard array values must be chosen from %v without reuse", StandardArray)
			return result
		}
	}

	return result
}

// ValidateRace checks that the race exists.
func (v *Validator) ValidateRace(raceKey string) *Result {
	result := NewResult()
	if raceKey == "" {
		result.AddError("Race is required")
		return result
	}
	if _, err := v.catalog.Race(raceKey); err != nil {
		result.AddErrorf("Unknown race: %s", raceKey)
		result.AddWarningf("Valid races: %s", strings.Join(v.raceKeys(), ", "))
	}
	return result
}

// ValidateAncestry checks that the ancestry exists and, when a race is
// given, that it belongs to that race.
func (v *Validator) ValidateAncestry(ancestryKey, raceKey string) *Result {
	result := NewResult()
	if ancestryKey == "" {
		result.AddError("Ancestry is required")
		return result
	}
	ancestry, err := v.catalog.Ancestry(ancestryKey)
	if err != nil {
		result.AddErrorf("Unknown ancestry: %s", ancestryKey)
		return result
	}
	if raceKey != "" && ancestry.RaceKey != raceKey {
		result.AddErrorf("Ancestry %s is not valid for race %s", ancestry.Name, raceKey)
	}
	return result
}

// ValidateProfession checks that the profession exists and that its duty
// requirement is satisfied.
func (v *Validator) ValidateProfession(professionKey, dutyKey string) *Result {
	result := NewResult()
	if professionKey == "" {
		result.AddError("Profession is required")
		return result
	}
	profession, err := v.catalog.Profession(professionKey)
	if err != nil {
		result.AddErrorf("Unknown profession: %s", professionKey)
		return result
	}
	if profession.RequiresDuty() {
		if dutyKey == "" {
			result.AddErrorf("Profession %s requires a duty choice: %s", profession.Name, strings.Join(profession.DutyKeys(), ", "))
		} else if profession.Duty(dutyKey) == nil {
			result.AddErrorf("Unknown duty: %s", dutyKey)
		}
	} else if dutyKey != "" {
		result.AddWarningf("Profession %s has no duties; ignoring %s", profession.Name, dutyKey)
	}
	return result
}

// ValidatePath checks that the path exists and, when ability totals are
// given, that its prerequisites are met.
func (v *Validator) ValidatePath(pathKey string, totals map[shared.Attribute]int, asPrimary bool) *Result {
	result := NewResult()
	if pathKey == "" {
		result.AddError("Path is required")
		return result
	}
	path, err := v.catalog.Path(pathKey)
	if err != nil {
		result.AddErrorf("Unknown path: %s", pathKey)
		return result
	}
	if totals == nil || path.Prerequisites == nil {
		return result
	}

	prereq := path.Prerequisites
	if prereq.PrimaryAttribute != shared.AttributeNone {
		score := totals[prereq.PrimaryAttribute]
		if score < prereq.PrimaryMinimum {
			result.AddErrorf("Path %s requires %s %d+, you have %d", path.Name, prereq.PrimaryAttribute, prereq.PrimaryMinimum, score)
		}
	}
	// The secondary gate only applies when taking the path as primary.
	if asPrimary && len(prereq.SecondaryAttributes) > 0 {
		met := false
		names := make([]string, len(prereq.SecondaryAttributes))
		for i, attr := range prereq.SecondaryAttributes {
			names[i] = string(attr)
			if totals[attr] >= prereq.SecondaryMinimum {
				met = true
			}
		}
		if !met {
			result.AddErrorf("Path %s requires %d+ in one of: %s", path.Name, prereq.SecondaryMinimum, strings.Join(names, ", "))
		}
	}
	return result
}

// ValidateBackground checks that the background exists.
func (v *Validator) ValidateBackground(backgroundKey string) *Result {
	result := NewResult()
	if backgroundKey == "" {
		result.AddError("Background is required")
		return result
	}
	if _, err := v.catalog.Background(backgroundKey); err != nil {
		result.AddErrorf("Unknown background: %s", backgroundKey)
	}
	return result
}

// ValidateSkillChoices checks a skill selection against its offered
// options: exact count, no repeats, nothing already trained.
func (v *Validator) ValidateSkillChoices(chosen, options []string, count int, trained []rulebook.Skill) *Result {
	result := NewResult()

	if len(chosen) != count {
		result.AddErrorf("Must choose exactly %d skills, got %d", count, len(chosen))
	}
	if hasDuplicate(chosen) {
		result.AddError("Cannot choose the same skill twice")
	}

	trainedSet := make(map[string]bool, len(trained))
	for _, skill := range trained {
		trainedSet[string(skill)] = true
	}
	for _, skill := range chosen {
		if !containsString(options, skill) {
			result.AddErrorf("'%s' is not a valid option (choose from: %s)", skill, strings.Join(options, ", "))
		} else if trainedSet[skill] {
			result.AddErrorf("'%s' is already trained", skill)
		}
	}

	return result
}

// ValidateLanguageChoices checks a language selection: exact count, no
// repeats, nothing already known. Languages outside the standard list
// only warn, since packs may add their own.
func (v *Validator) ValidateLanguageChoices(chosen []string, count int, known []string) *Result {
	result := NewResult()

	if len(chosen) != count {
		result.AddErrorf("Must choose exactly %d languages, got %d", count, len(chosen))
	}
	if hasDuplicate(chosen) {
		result.AddError("Cannot choose the same language twice")
	}
	for _, lang := range chosen {
		if containsString(known, lang) {
			result.AddErrorf("Already know %s", lang)
		}
		if !rulebook.IsKnownLanguage(lang) {
			result.AddWarningf("Unknown language: %s (may be valid)", lang)
		}
	}

	return result
}

// ValidateCharacter checks a finished character for completeness: every
// core selection made, scores in range, prerequisites still met.
func (v *Validator) ValidateCharacter(c *character.Character) *Result {
	result := NewResult()

	required := []struct {
		name  string
		value string
	}{
		{"race", c.RaceKey},
		{"ancestry", c.AncestryKey},
		{"profession", c.ProfessionKey},
		{"primary_path", c.PrimaryPath},
		{"background", c.BackgroundKey},
	}
	for _, field := range required {
		if field.value == "" {
			result.AddErrorf("Missing required field: %s", field.name)
		}
	}

	totals := c.AbilityTotals()
	result.Merge(v.ValidateAbilityScores(totals, MethodManual))

	if c.RaceKey != "" {
		result.Merge(v.ValidateRace(c.RaceKey))
	}
	if c.AncestryKey != "" {
		result.Merge(v.ValidateAncestry(c.AncestryKey, c.RaceKey))
	}
	if c.ProfessionKey != "" {
		result.Merge(v.ValidateProfession(c.ProfessionKey, c.DutyKey))
	}
	if c.PrimaryPath != "" {
		result.Merge(v.ValidatePath(c.PrimaryPath, totals, true))
	}
	if c.BackgroundKey != "" {
		result.Merge(v.ValidateBackground(c.BackgroundKey))
	}

	if c.Level < 1 {
		result.AddErrorf("Invalid level: %d", c.Level)
	} else if c.Level > 20 {
		result.AddWarningf("Level %d is above standard max (20)", c.Level)
	}
	if c.Health.Max < 1 {
		result.AddErrorf("Max HP must be at least 1 (got %d)", c.Health.Max)
	}

	return result
}

func (v *Validator) raceKeys() []string {
	races := v.catalog.Races()
	keys := make([]string, len(races))
	for i, race := range races {
		keys[i] = race.Key
	}
	return keys
}

func hasDuplicate(values []string) bool {
	seen := make(map[string]bool, len(values))
	for _, value := range values {
		if seen[value] {
			return true
		}
		seen[value] = true
	}
	return false
}

func containsString(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
