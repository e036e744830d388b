package character

// ChoiceType identifies what kind of selection a pending choice asks for.
type ChoiceType string

// Choice types queued during creation. The ability adjustment types are
// chained: resolving a human_ability_mode choice queues either a single
// ability_bonus choice or an ability_bonus_plus2/ability_penalty pair.
const (
	ChoiceSkill             ChoiceType = "skill"
	ChoiceLanguage          ChoiceType = "language"
	ChoiceTool              ChoiceType = "tool"
	ChoiceAbilityBonus      ChoiceType = "ability_bonus"
	ChoiceHumanAbilityMode  ChoiceType = "human_ability_mode"
	ChoiceAbilityBonusPlus2 ChoiceType = "ability_bonus_plus2"
	ChoiceAbilityPenalty    ChoiceType = "ability_penalty"
	ChoicePersonalityTrait  ChoiceType = "personality_trait"
	ChoicePersonalityIdeal  ChoiceType = "personality_ideal"
	ChoicePersonalityBond   ChoiceType = "personality_bond"
	ChoicePersonalityFlaw   ChoiceType = "personality_flaw"
)

// Mode options offered by a human-style flexible ability adjustment.
const (
	AbilityModePlusOne  = "+1 to one ability"
	AbilityModeTradeoff = "+2 to one ability and -1 to another"
)

// PendingChoice is a selection the player still owes before the character
// is complete. Source labels where the choice came from ("Elf Race",
// "Scholar Profession") so same-typed choices stay distinguishable.
type PendingChoice struct {
	Type    ChoiceType `json:"type"`
	Count   int        `json:"count"`
	Options []string   `json:"options"`
	Source  string     `json:"source"`
}

// Offers reports whether the option is one of the choice's valid selections.
func (p *PendingChoice) Offers(option string) bool {
	for _, o := range p.Options {
		if o == option {
			return true
		}
	}
	return false
}
