package character

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/realm-forge/internal/domain/rulebook"
	"github.com/KirkDiggler/realm-forge/internal/domain/shared"
	"github.com/KirkDiggler/realm-forge/internal/errors"
)

// Builder walks a draft through the creation steps in order: ability
// scores, race, ancestry, profession, path, background. Each step applies
// its grants to the draft character immediately and queues any choices
// the player still owes. Revisiting an earlier step reapplies its effects
// on top of what is already there; nothing is rolled back.
type Builder struct {
	draft   *Draft
	catalog *rulebook.Catalog
}

// NewBuilder wraps a draft with the catalog it builds against.
func NewBuilder(draft *Draft, catalog *rulebook.Catalog) *Builder {
	if draft.Character == nil {
		draft.Character = NewCharacter(draft.ID)
	}
	return &Builder{draft: draft, catalog: catalog}
}

// Draft returns the underlying draft.
func (b *Builder) Draft() *Draft {
	return b.draft
}

// Character returns the draft character as it stands. Derived stats may
// be stale until Build is called.
func (b *Builder) Character() *Character {
	return b.draft.Character
}

// PendingChoices returns the choices still owed.
func (b *Builder) PendingChoices() []*PendingChoice {
	return b.draft.PendingChoices
}

// IsComplete reports whether every step is done and no choices remain.
func (b *Builder) IsComplete() bool {
	return b.draft.IsComplete()
}

// SetAbilityScores stores the rolled scores. Race and misc components
// are untouched, so scores can be set before or after racial bonuses land.
func (b *Builder) SetAbilityScores(scores map[shared.Attribute]int) error {
	for attr := range scores {
		if !attr.IsValid() {
			return errors.InvalidArgumentf("unknown ability: %s", attr)
		}
	}
	char := b.draft.Character
	for attr, value := range scores {
		score := char.Ability(attr)
		score.Roll = value
		score.Recalculate()
	}
	b.draft.CurrentStep = StepRace
	b.touch()
	return nil
}

// SetRace applies the race's grants and queues its choices.
func (b *Builder) SetRace(key string) error {
	if err := b.requireStep(StepRace); err != nil {
		return err
	}
	race, err := b.catalog.Race(key)
	if err != nil {
		return err
	}
	char := b.draft.Character

	char.PhysicalTraits.CreatureType = race.CreatureType
	char.PhysicalTraits.Size = string(race.Size)
	char.Speed = race.Speed
	for _, lang := range race.Languages {
		char.AddLanguage(lang)
	}
	for _, attr := range shared.Attributes {
		if mod, ok := race.AbilityModifiers[attr]; ok {
			score := char.Ability(attr)
			score.Race += mod
			score.Recalculate()
		}
	}
	for _, skill := range race.SkillProficiencies {
		trainSkill(char.Skill(skill))
	}
	for skill, bonus := range race.SkillBonuses {
		char.Skill(skill).Misc += bonus
	}
	char.Features = append(char.Features, race.Features...)
	char.RaceKey = race.Key

	if race.SkillChoices != nil {
		options := race.SkillChoices.Options
		if len(options) == 0 {
			options = rulebook.SkillNames()
		}
		b.draft.queueChoice(&PendingChoice{
			Type:    ChoiceSkill,
			Count:   choiceCount(race.SkillChoices),
			Options: options,
			Source:  race.Name + " Race",
		})
	}
	if race.BonusLanguageChoices > 0 {
		b.draft.queueChoice(&PendingChoice{
			Type:    ChoiceLanguage,
			Count:   race.BonusLanguageChoices,
			Options: rulebook.Languages,
			Source:  race.Name + " Race",
		})
	}
	if adj := race.FlexibleAbilityAdjustment; adj != nil {
		if adj.Type == rulebook.FlexibleAdjustmentHumanCore {
			b.draft.queueChoice(&PendingChoice{
				Type:    ChoiceHumanAbilityMode,
				Count:   1,
				Options: []string{AbilityModePlusOne, AbilityModeTradeoff},
				Source:  race.Name + " Race - Core Ability Adjustment",
			})
		} else {
			b.draft.queueChoice(&PendingChoice{
				Type:    ChoiceAbilityBonus,
				Count:   1,
				Options: attributeNames(),
				Source:  race.Name + " Race - Ability Adjustment",
			})
		}
	}

	b.draft.CurrentStep = StepAncestry
	b.touch()
	return nil
}

// AvailableAncestries lists the ancestries valid for the chosen race.
func (b *Builder) AvailableAncestries() []*rulebook.Ancestry {
	if b.draft.Character.RaceKey == "" {
		return nil
	}
	return b.catalog.AncestriesForRace(b.draft.Character.RaceKey)
}

// SetAncestry applies the ancestry's grants. The ancestry must belong to
// the chosen race.
func (b *Builder) SetAncestry(key string) error {
	if err := b.requireStep(StepAncestry); err != nil {
		return err
	}
	ancestry, err := b.catalog.Ancestry(key)
	if err != nil {
		return err
	}
	char := b.draft.Character
	if char.RaceKey != "" && ancestry.RaceKey != char.RaceKey {
		return errors.RaceMismatchf("ancestry %s is not valid for race %s", ancestry.Name, b.raceName())
	}

	for _, attr := range shared.Attributes {
		if mod, ok := ancestry.AbilityModifiers[attr]; ok {
			score := char.Ability(attr)
			score.Race += mod
			score.Recalculate()
		}
	}
	for _, lang := range ancestry.Languages {
		char.AddLanguage(lang)
	}
	for _, skill := range ancestry.SkillProficiencies {
		trainSkill(char.Skill(skill))
	}
	for skill, bonus := range ancestry.SkillBonuses {
		char.Skill(skill).Misc += bonus
	}
	for _, tool := range ancestry.ToolProficiencies {
		char.AddProficiency(tool)
	}
	char.Features = append(char.Features, ancestry.Features...)
	if ancestry.ReputationModifier != nil {
		char.Reputation.Mod += ancestry.ReputationModifier.Value
	}
	char.AncestryKey = ancestry.Key

	if ancestry.LanguageChoices != nil {
		options := ancestry.LanguageChoices.Options
		if len(options) == 0 {
			options = rulebook.Languages
		}
		b.draft.queueChoice(&PendingChoice{
			Type:    ChoiceLanguage,
			Count:   choiceCount(ancestry.LanguageChoices),
			Options: options,
			Source:  ancestry.Name + " Ancestry",
		})
	}

	b.draft.CurrentStep = StepProfession
	b.touch()
	return nil
}

// SetProfession applies the profession's grants. Professions that define
// duties require one; the duty's own grants and choices are applied too.
func (b *Builder) SetProfession(key, dutyKey string) error {
	if err := b.requireStep(StepProfession); err != nil {
		return err
	}
	profession, err := b.catalog.Profession(key)
	if err != nil {
		return err
	}
	var duty *rulebook.Duty
	if profession.RequiresDuty() {
		if dutyKey == "" {
			return errors.DutyRequiredf("profession %s requires a duty choice: %s",
				profession.Name, strings.Join(profession.DutyKeys(), ", "))
		}
		duty = profession.Duty(dutyKey)
		if duty == nil {
			return errors.NotFoundf("unknown duty: %s", dutyKey)
		}
	}
	char := b.draft.Character

	// Level 1 hit points. Recomputed again at build time once every
	// ability adjustment has landed.
	char.Health.Max = profession.BaseHP + char.Ability(shared.AttributeEndurance).Mod
	char.Health.Current = char.Health.Max

	if profession.Feature != nil {
		char.Features = append(char.Features, *profession.Feature)
	}
	for _, prof := range profession.ArmorProficiencies {
		char.AddProficiency(prof)
	}
	for _, prof := range profession.WeaponProficiencies {
		char.AddProficiency(prof)
	}
	for _, prof := range profession.ToolProficiencies {
		char.AddProficiency(prof)
	}
	if duty != nil {
		for _, prof := range duty.ArmorProficiencies {
			char.AddProficiency(prof)
		}
		for _, prof := range duty.WeaponProficiencies {
			char.AddProficiency(prof)
		}
	}
	char.ProfessionKey = profession.Key
	if duty != nil {
		char.DutyKey = duty.Key
	}

	gold := profession.GoldAlternative
	pack := profession.EquipmentPack
	if duty != nil {
		if duty.GoldAlternative > 0 {
			gold = duty.GoldAlternative
		}
		if duty.EquipmentPack != "" {
			pack = duty.EquipmentPack
		}
	}
	char.Gold += gold
	if pack != "" {
		char.Inventory.Items = append(char.Inventory.Items, pack)
	}

	if profession.SkillChoices != nil {
		b.draft.queueChoice(&PendingChoice{
			Type:    ChoiceSkill,
			Count:   choiceCount(profession.SkillChoices),
			Options: profession.SkillChoices.Options,
			Source:  profession.Name + " Profession",
		})
	}
	if profession.ToolChoices != nil {
		b.draft.queueChoice(&PendingChoice{
			Type:    ChoiceTool,
			Count:   choiceCount(profession.ToolChoices),
			Options: profession.ToolChoices.Options,
			Source:  profession.Name + " Profession",
		})
	}
	if duty != nil {
		if duty.SkillChoices != nil {
			b.draft.queueChoice(&PendingChoice{
				Type:    ChoiceSkill,
				Count:   choiceCount(duty.SkillChoices),
				Options: duty.SkillChoices.Options,
				Source:  duty.Name + " Duty",
			})
		}
		if duty.ToolChoices != nil {
			b.draft.queueChoice(&PendingChoice{
				Type:    ChoiceTool,
				Count:   choiceCount(duty.ToolChoices),
				Options: duty.ToolChoices.Options,
				Source:  duty.Name + " Duty",
			})
		}
	}

	b.draft.CurrentStep = StepPath
	b.touch()
	return nil
}

// PathOption pairs a path with whether the draft character currently
// meets its prerequisites as a primary path.
type PathOption struct {
	Path             *rulebook.Path
	PrerequisitesMet bool
}

// AvailablePaths evaluates every path's prerequisites against the current
// ability totals. Does not mutate the draft.
func (b *Builder) AvailablePaths() []PathOption {
	totals := b.draft.Character.AbilityTotals()
	paths := b.catalog.Paths()
	out := make([]PathOption, 0, len(paths))
	for _, p := range paths {
		out = append(out, PathOption{Path: p, PrerequisitesMet: p.CheckPrerequisites(totals, true)})
	}
	return out
}

// SetPath applies the path as the character's primary path. Prerequisites
// are enforced unless ignorePrerequisites is set.
func (b *Builder) SetPath(key string, ignorePrerequisites bool) error {
	if err := b.requireStep(StepPath); err != nil {
		return err
	}
	path, err := b.catalog.Path(key)
	if err != nil {
		return err
	}
	char := b.draft.Character

	if !ignorePrerequisites && !path.CheckPrerequisites(char.AbilityTotals(), true) {
		p := path.Prerequisites
		secondaries := make([]string, len(p.SecondaryAttributes))
		for i, attr := range p.SecondaryAttributes {
			secondaries[i] = string(attr)
		}
		return errors.PrerequisiteNotMetf("prerequisites not met for %s: need %s %d+ and one of %s %d+",
			path.Name, p.PrimaryAttribute, p.PrimaryMinimum, strings.Join(secondaries, ", "), p.SecondaryMinimum)
	}

	// Primary path bonus lands on misc, not race.
	for _, attr := range shared.Attributes {
		if bonus, ok := path.PrimaryBonus[attr]; ok {
			score := char.Ability(attr)
			score.Misc += bonus
			score.Recalculate()
		}
	}
	char.AttackModsMelee.Misc += path.AttackBonusMelee
	char.AttackModsMelee.Total = char.AttackModsMelee.Attr + char.AttackModsMelee.Misc
	char.AttackModsRanged.Misc += path.AttackBonusRanged
	char.AttackModsRanged.Total = char.AttackModsRanged.Attr + char.AttackModsRanged.Misc
	char.Features = append(char.Features, path.Features...)

	char.PrimaryPath = path.Key
	if !char.HasPath(path.Key) {
		char.Paths = append(char.Paths, path.Key)
	}

	b.draft.CurrentStep = StepBackground
	b.touch()
	return nil
}

// SetBackground applies the background and queues its language and
// personality choices.
func (b *Builder) SetBackground(key string) error {
	if err := b.requireStep(StepBackground); err != nil {
		return err
	}
	background, err := b.catalog.Background(key)
	if err != nil {
		return err
	}
	char := b.draft.Character

	// Background training never overrides an existing rank.
	for _, skill := range background.SkillProficiencies {
		entry := char.Skill(skill)
		if !entry.Trained {
			entry.Trained = true
			entry.Rank = 1
		}
	}
	for _, tool := range background.ToolProficiencies {
		char.AddProficiency(tool)
	}
	if background.Feature != nil {
		char.Features = append(char.Features, *background.Feature)
	}
	char.Inventory.Items = append(char.Inventory.Items, background.Equipment...)
	char.BackgroundKey = background.Key

	if background.LanguagesGranted > 0 {
		b.draft.queueChoice(&PendingChoice{
			Type:    ChoiceLanguage,
			Count:   background.LanguagesGranted,
			Options: rulebook.Languages,
			Source:  background.Name + " Background",
		})
	}
	if tables := background.PersonalityTables; tables != nil {
		b.queuePersonality(ChoicePersonalityTrait, tables.Traits, background.Name)
		b.queuePersonality(ChoicePersonalityIdeal, tables.Ideals, background.Name)
		b.queuePersonality(ChoicePersonalityBond, tables.Bonds, background.Name)
		b.queuePersonality(ChoicePersonalityFlaw, tables.Flaws, background.Name)
	}

	b.draft.CurrentStep = StepComplete
	b.touch()
	return nil
}

// ResolveChoice answers the first pending choice of the given type, or of
// the type and source when a source is given. Selections must match the
// choice's count and come from its options.
func (b *Builder) ResolveChoice(choiceType ChoiceType, source string, selections []string) error {
	idx := b.draft.FindChoice(choiceType, source)
	if idx < 0 {
		return errors.NoPendingChoicef("no pending choice of type %q", choiceType)
	}
	choice := b.draft.PendingChoices[idx]
	if len(selections) != choice.Count {
		return errors.WrongCountf("expected %d selections, got %d", choice.Count, len(selections))
	}
	for _, sel := range selections {
		if !choice.Offers(sel) {
			return errors.InvalidOptionf("invalid selection %q, options: %s", sel, strings.Join(choice.Options, ", "))
		}
	}
	if err := b.applyChoice(choice, selections); err != nil {
		return err
	}
	b.draft.removeChoice(idx)
	b.touch()
	return nil
}

// Build recalculates every derived stat and returns the character.
func (b *Builder) Build() *Character {
	b.draft.Character.Recalculate(b.catalog)
	return b.draft.Character
}

func (b *Builder) applyChoice(choice *PendingChoice, selections []string) error {
	char := b.draft.Character
	switch choice.Type {
	case ChoiceSkill:
		for _, sel := range selections {
			skill := rulebook.ParseSkill(sel)
			if skill == "" {
				return errors.InvalidOptionf("unknown skill: %s", sel)
			}
			trainSkill(char.Skill(skill))
		}
	case ChoiceLanguage:
		for _, sel := range selections {
			char.AddLanguage(sel)
		}
	case ChoiceTool:
		for _, sel := range selections {
			char.AddProficiency(sel)
		}
	case ChoiceAbilityBonus:
		return b.adjustAbility(selections[0], 1)
	case ChoiceAbilityBonusPlus2:
		return b.adjustAbility(selections[0], 2)
	case ChoiceAbilityPenalty:
		return b.adjustAbility(selections[0], -1)
	case ChoiceHumanAbilityMode:
		b.queueAbilityAdjustment(selections[0])
	case ChoicePersonalityTrait, ChoicePersonalityIdeal, ChoicePersonalityBond, ChoicePersonalityFlaw:
		return b.applyPersonality(choice.Type, selections[0])
	default:
		return errors.InvalidArgumentf("unhandled choice type: %s", choice.Type)
	}
	return nil
}

func (b *Builder) adjustAbility(name string, delta int) error {
	attr := shared.ParseAttribute(name)
	if attr == shared.AttributeNone {
		return errors.InvalidOptionf("unknown ability: %s", name)
	}
	score := b.draft.Character.Ability(attr)
	score.Misc += delta
	score.Recalculate()
	return nil
}

// queueAbilityAdjustment turns a resolved human_ability_mode selection
// into the follow-up attribute choices.
func (b *Builder) queueAbilityAdjustment(mode string) {
	options := attributeNames()
	if strings.Contains(mode, "+2") {
		b.draft.queueChoice(&PendingChoice{
			Type:    ChoiceAbilityBonusPlus2,
			Count:   1,
			Options: options,
			Source:  "Human Race - +2 Bonus",
		})
		b.draft.queueChoice(&PendingChoice{
			Type:    ChoiceAbilityPenalty,
			Count:   1,
			Options: options,
			Source:  "Human Race - -1 Penalty",
		})
		return
	}
	b.draft.queueChoice(&PendingChoice{
		Type:    ChoiceAbilityBonus,
		Count:   1,
		Options: options,
		Source:  "Human Race - +1 Bonus",
	})
}

func (b *Builder) applyPersonality(choiceType ChoiceType, selection string) error {
	char := b.draft.Character
	background, err := b.catalog.Background(char.BackgroundKey)
	if err != nil {
		return err
	}
	tables := background.PersonalityTables
	if tables == nil {
		return nil
	}

	// Options are formatted "N: text", keyed by the table roll.
	prefix, _, _ := strings.Cut(selection, ":")
	roll, err := strconv.Atoi(strings.TrimSpace(prefix))
	if err != nil {
		return errors.InvalidOptionf("selection %q does not start with a roll number", selection)
	}

	var entry *rulebook.PersonalityEntry
	switch choiceType {
	case ChoicePersonalityTrait:
		if entry = rulebook.EntryForRoll(tables.Traits, roll); entry != nil {
			char.Personality.Traits = entry.Text
		}
	case ChoicePersonalityIdeal:
		if entry = rulebook.EntryForRoll(tables.Ideals, roll); entry != nil {
			char.Personality.Ideal = entry.Text
		}
	case ChoicePersonalityBond:
		if entry = rulebook.EntryForRoll(tables.Bonds, roll); entry != nil {
			char.Personality.Bond = entry.Text
		}
	case ChoicePersonalityFlaw:
		if entry = rulebook.EntryForRoll(tables.Flaws, roll); entry != nil {
			char.Personality.Flaw = entry.Text
		}
	}
	if entry != nil {
		char.Alignment.Mod += entry.Morality
		char.Reputation.Mod += entry.Reputation
	}
	return nil
}

func (b *Builder) queuePersonality(choiceType ChoiceType, entries []rulebook.PersonalityEntry, backgroundName string) {
	if len(entries) == 0 {
		return
	}
	options := make([]string, len(entries))
	for i, e := range entries {
		options[i] = fmt.Sprintf("%d: %s", e.Roll, e.Text)
	}
	b.draft.queueChoice(&PendingChoice{
		Type:    choiceType,
		Count:   1,
		Options: options,
		Source:  backgroundName + " Background",
	})
}

// requireStep rejects a step whose predecessors have not completed yet.
func (b *Builder) requireStep(step CreationStep) error {
	if step.After(b.draft.CurrentStep) {
		return errors.InvalidArgumentf("step %s is not available yet, current step is %s", step, b.draft.CurrentStep)
	}
	return nil
}

func (b *Builder) raceName() string {
	race, err := b.catalog.Race(b.draft.Character.RaceKey)
	if err != nil {
		return b.draft.Character.RaceKey
	}
	return race.Name
}

func (b *Builder) touch() {
	now := time.Now().UTC()
	b.draft.UpdatedAt = now
	b.draft.Character.UpdatedAt = now
}

func trainSkill(entry *SkillEntry) {
	entry.Trained = true
	if entry.Rank == 0 {
		entry.Rank = 1
	}
}

func choiceCount(spec *rulebook.ChoiceSpec) int {
	if spec.Count <= 0 {
		return 1
	}
	return spec.Count
}

func attributeNames() []string {
	names := make([]string, len(shared.Attributes))
	for i, attr := range shared.Attributes {
		names[i] = string(attr)
	}
	return names
}
