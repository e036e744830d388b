package rulebook

// PersonalityEntry is a single row in a personality table.
type PersonalityEntry struct {
	Roll int    `json:"roll" toml:"roll"`
	Text string `json:"text" toml:"text"`

	// Morality shifts alignment, -1 to +1.
	Morality int `json:"morality" toml:"morality"`
	// Reputation shifts standing, -2 to +2.
	Reputation int `json:"reputation" toml:"reputation"`
}

// PersonalityTables holds the trait, ideal, bond, and flaw rolls for a background.
type PersonalityTables struct {
	Traits []PersonalityEntry `json:"traits" toml:"traits"`
	Ideals []PersonalityEntry `json:"ideals" toml:"ideals"`
	Bonds  []PersonalityEntry `json:"bonds" toml:"bonds"`
	Flaws  []PersonalityEntry `json:"flaws" toml:"flaws"`
}

// EntryForRoll finds the entry with the given roll number in a table.
func EntryForRoll(entries []PersonalityEntry, roll int) *PersonalityEntry {
	for i := range entries {
		if entries[i].Roll == roll {
			return &entries[i]
		}
	}
	return nil
}

// Background is a character's life before adventuring.
type Background struct {
	Key         string `json:"key" toml:"key"`
	Name        string `json:"name" toml:"name"`
	Description string `json:"description" toml:"description"`

	SkillProficiencies []Skill  `json:"skill_proficiencies" toml:"skill_proficiencies"`
	ToolProficiencies  []string `json:"tool_proficiencies" toml:"tool_proficiencies"`

	// LanguagesGranted is how many languages the player picks.
	LanguagesGranted int `json:"languages_granted" toml:"languages_granted"`

	Equipment []string `json:"equipment" toml:"equipment"`

	Feature *Feature `json:"feature,omitempty" toml:"feature"`

	PersonalityTables *PersonalityTables `json:"personality_tables,omitempty" toml:"personality_tables"`
}
