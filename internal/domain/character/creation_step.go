package character

// CreationStep is a stage of the character creation flow. Steps run in
// a fixed order; earlier steps can be revisited, which reapplies their
// effects and requeues their choices.
type CreationStep string

const (
	StepAbilityScores CreationStep = "ability_scores"
	StepRace          CreationStep = "race"
	StepAncestry      CreationStep = "ancestry"
	StepProfession    CreationStep = "profession"
	StepPath          CreationStep = "path"
	StepBackground    CreationStep = "background"
	StepComplete      CreationStep = "complete"
)

// CreationSteps lists the flow in order.
var CreationSteps = []CreationStep{
	StepAbilityScores,
	StepRace,
	StepAncestry,
	StepProfession,
	StepPath,
	StepBackground,
	StepComplete,
}

func (s CreationStep) index() int {
	for i, step := range CreationSteps {
		if step == s {
			return i
		}
	}
	return -1
}

// Next returns the step after this one. Complete is terminal.
func (s CreationStep) Next() CreationStep {
	i := s.index()
	if i < 0 || i >= len(CreationSteps)-1 {
		return StepComplete
	}
	return CreationSteps[i+1]
}

// After reports whether this step comes after the other in the flow.
func (s CreationStep) After(other CreationStep) bool {
	return s.index() > other.index()
}
