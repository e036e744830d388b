package rulebook

// Languages lists every language a character can learn.
var Languages = []string{
	"Common",
	"Elvish",
	"Dwarvish",
	"Ancient Dwarvish",
	"Orcish",
	"Goblin",
	"Halffolk",
	"Draconic",
	"Celestial",
	"Infernal",
	"Sylvan",
	"Aquan",
	"Tauric",
	"Simarru",
	"Velkarran",
}

// IsKnownLanguage reports whether the name is in the language list.
func IsKnownLanguage(name string) bool {
	for _, lang := range Languages {
		if lang == name {
			return true
		}
	}
	return false
}
