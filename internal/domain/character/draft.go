package character

import (
	"time"
)

// Draft is an in-progress character build. It carries the partially
// assembled character plus the creation step reached and any choices
// still owed, so a build survives being persisted mid-flow.
type Draft struct {
	ID             string           `json:"id"`
	OwnerID        string           `json:"owner_id"`
	Character      *Character       `json:"character"`
	CurrentStep    CreationStep     `json:"current_step"`
	PendingChoices []*PendingChoice `json:"pending_choices,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// NewDraft starts an empty draft at the ability score step.
func NewDraft(id, ownerID string) *Draft {
	now := time.Now().UTC()
	c := NewCharacter(id)
	c.OwnerID = ownerID
	return &Draft{
		ID:          id,
		OwnerID:     ownerID,
		Character:   c,
		CurrentStep: StepAbilityScores,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsComplete reports whether every creation step has been taken and no
// pending choices remain.
func (d *Draft) IsComplete() bool {
	return d.CurrentStep == StepComplete && len(d.PendingChoices) == 0
}

// FindChoice returns the index of the first pending choice matching the
// type, and the source when one is given. Returns -1 when nothing matches.
func (d *Draft) FindChoice(choiceType ChoiceType, source string) int {
	for i, c := range d.PendingChoices {
		if c.Type != choiceType {
			continue
		}
		if source != "" && c.Source != source {
			continue
		}
		return i
	}
	return -1
}

func (d *Draft) queueChoice(c *PendingChoice) {
	d.PendingChoices = append(d.PendingChoices, c)
}

func (d *Draft) removeChoice(idx int) {
	d.PendingChoices = append(d.PendingChoices[:idx], d.PendingChoices[idx+1:]...)
}
