package rulebook

import "github.com/KirkDiggler/realm-forge/internal/domain/shared"

// DefaultCatalog returns the built-in Realm of Warriors content.
// Content packs loaded on top of it may override entries by key.
func DefaultCatalog() *Catalog {
	return NewCatalog(&CatalogConfig{
		Races:       DefaultRaces(),
		Ancestries:  DefaultAncestries(),
		Professions: DefaultProfessions(),
		Paths:       DefaultPaths(),
		Backgrounds: DefaultBackgrounds(),
		Talents:     DefaultTalents(),
	})
}

// DefaultRaces returns the built-in playable races.
func DefaultRaces() []Race {
	return []Race{
		{
			Key:          "human",
			Name:         "Human",
			Description:  "Adaptable and ambitious, humans are found in every corner of the realm.",
			CreatureType: "Humanoid",
			Size:         shared.SizeMedium,
			Speed:        30,
			Languages:    []string{"Common"},
			FlexibleAbilityAdjustment: &FlexibleAbilityAdjustment{
				Type:        FlexibleAdjustmentHumanCore,
				Description: "Choose +1 to one ability, or +2 to one ability and -1 to another.",
			},
			BonusLanguageChoices: 1,
			SkillChoices:         &ChoiceSpec{Count: 1},
			Features: []Feature{
				{Name: "Versatile", Description: "Humans pick up new trades and customs faster than any other folk."},
			},
			Ancestries: []string{"valeborn", "norvan"},
		},
		{
			Key:          "elf",
			Name:         "Elf",
			Description:  "Graceful, long-lived people with an instinctive bond to the old forests.",
			CreatureType: "Humanoid",
			Size:         shared.SizeMedium,
			Speed:        30,
			Languages:    []string{"Common", "Elvish"},
			Darkvision:   60,
			AbilityModifiers: map[shared.Attribute]int{
				shared.AttributeAgility: 2,
				shared.AttributeWisdom:  1,
			},
			SkillProficiencies: []Skill{SkillPerception},
			Features: []Feature{
				{Name: "Keen Senses", Description: "You notice what others miss among leaf and shadow."},
				{Name: "Trance", Description: "You do not sleep; four hours of meditation restore you fully."},
			},
			Ancestries: []string{"sylari", "velari"},
		},
		{
			Key:          "dwarf",
			Name:         "Dwarf",
			Description:  "Stout mountain folk whose memory runs as deep as their mines.",
			CreatureType: "Humanoid",
			Size:         shared.SizeMedium,
			Speed:        25,
			Languages:    []string{"Common", "Dwarvish"},
			Darkvision:   60,
			AbilityModifiers: map[shared.Attribute]int{
				shared.AttributeEndurance: 2,
				shared.AttributeMight:     1,
			},
			Features: []Feature{
				{Name: "Stonecunning", Description: "You read worked stone the way scholars read books."},
				{Name: "Deep Constitution", Description: "Poisons and toxins find little purchase in you."},
			},
			Ancestries: []string{"ironvein", "stonehearth"},
		},
		{
			Key:          "halffolk",
			Name:         "Halffolk",
			Description:  "Small, cheerful wanderers with an uncanny knack for staying out of trouble.",
			CreatureType: "Humanoid",
			Size:         shared.SizeSmall,
			Speed:        25,
			Languages:    []string{"Common", "Halffolk"},
			AbilityModifiers: map[shared.Attribute]int{
				shared.AttributeAgility:  2,
				shared.AttributeCharisma: 1,
			},
			SkillBonuses: map[Skill]int{
				SkillStealth: 1,
			},
			Features: []Feature{
				{Name: "Lucky Footwork", Description: "Once per day you may reroll a stumble, slip, or fall."},
				{Name: "Underfoot", Description: "You can move through the space of any larger creature."},
			},
			Ancestries: []string{"meadowkin"},
		},
	}
}

// DefaultAncestries returns the built-in regional lineages.
func DefaultAncestries() []Ancestry {
	return []Ancestry{
		{
			Key:         "valeborn",
			Name:        "Valeborn",
			Description: "Humans of the central vales, raised among market towns and river trade.",
			RaceKey:     "human",
			Region:      "The Heartvale",
			LanguageChoices: &ChoiceSpec{
				Count:   1,
				Options: []string{"Elvish", "Dwarvish", "Halffolk"},
			},
			SkillBonuses: map[Skill]int{
				SkillDiplomacy: 1,
			},
			Features: []Feature{
				{Name: "Crossroads Upbringing", Description: "You know the customs of every folk that trades in the vales."},
			},
			Personality: "Valeborn prize a fair deal and a well-kept promise.",
		},
		{
			Key:         "norvan",
			Name:        "Norvan",
			Description: "Humans of the frozen north, hardened by long winters and longer feuds.",
			RaceKey:     "human",
			Region:      "Northreach",
			AbilityModifiers: map[shared.Attribute]int{
				shared.AttributeEndurance: 1,
			},
			SkillProficiencies: []Skill{SkillSurvival},
			ReputationModifier: &ReputationModifier{Region: "Northreach", Value: 1},
			Features: []Feature{
				{Name: "Winterborn", Description: "Cold weather and thin rations slow you less than most."},
			},
			Personality: "Norvans speak plainly and settle debts, both kinds.",
		},
		{
			Key:         "sylari",
			Name:        "Sylari",
			Description: "Elves of the deep forest courts, keepers of the oldest songs.",
			RaceKey:     "elf",
			Region:      "The Sylvan Reaches",
			Languages:   []string{"Sylvan"},
			SkillBonuses: map[Skill]int{
				SkillArcana: 1,
			},
			ReputationModifier: &ReputationModifier{Region: "The Sylvan Reaches", Value: 1},
			Features: []Feature{
				{Name: "Starlight Sight", Description: "Moonless nights are as bright to you as dusk."},
			},
			Personality: "Sylari measure time in seasons and grudges in centuries.",
		},
		{
			Key:         "velari",
			Name:        "Velari",
			Description: "Coastal elves who traded the forest canopy for the open sea.",
			RaceKey:     "elf",
			Region:      "The Velkarran Coast",
			Languages:   []string{"Aquan"},
			AbilityModifiers: map[shared.Attribute]int{
				shared.AttributeCharisma: 1,
			},
			ToolProficiencies: []string{"Navigator's Tools"},
			Features: []Feature{
				{Name: "Tidereader", Description: "You can predict weather and current a day ahead near the sea."},
			},
			Personality: "Velari collect harbors and acquaintances in equal measure.",
		},
		{
			Key:         "ironvein",
			Name:        "Ironvein",
			Description: "Dwarves of the forge-cities, born to smoke and hammer-song.",
			RaceKey:     "dwarf",
			Region:      "The Ember Deeps",
			Languages:   []string{"Ancient Dwarvish"},
			AbilityModifiers: map[shared.Attribute]int{
				shared.AttributeMight: 1,
			},
			ToolProficiencies: []string{"Smith's Tools"},
			Features: []Feature{
				{Name: "Forgeblood", Description: "Heat and flame trouble you less than they should."},
			},
			Personality: "An Ironvein's word is tempered steel; bending it is breaking it.",
		},
		{
			Key:         "stonehearth",
			Name:        "Stonehearth",
			Description: "Dwarves of the surface holds, farmers and brewers under open sky.",
			RaceKey:     "dwarf",
			Region:      "The Stonehearth Holds",
			SkillProficiencies: []Skill{SkillHistory},
			SkillBonuses: map[Skill]int{
				SkillInsight: 1,
			},
			Features: []Feature{
				{Name: "Hearth Tales", Description: "You know a story, and usually a relative, for every hold in the hills."},
			},
			Personality: "Stonehearth dwarves feed guests first and question them after.",
		},
		{
			Key:         "meadowkin",
			Name:        "Meadowkin",
			Description: "Halffolk of the river shires, unhurried and unbothered.",
			RaceKey:     "halffolk",
			Region:      "The Green Shires",
			SkillProficiencies: []Skill{SkillAnimalHandling},
			LanguageChoices: &ChoiceSpec{
				Count:   1,
				Options: []string{"Elvish", "Dwarvish", "Sylvan"},
			},
			Features: []Feature{
				{Name: "Shirecraft", Description: "Give you an afternoon and you can cook, mend, or barter your way out of most problems."},
			},
			Personality: "Meadowkin believe most quarrels dissolve over a shared meal.",
		},
	}
}

// DefaultProfessions returns the built-in professions.
func DefaultProfessions() []Profession {
	return []Profession{
		{
			Key:         "scholar",
			Name:        "Scholar",
			Description: "A life spent in libraries, laboratories, and lecture halls.",
			BaseHP:      8,
			Feature: &Feature{
				Name:        "Researcher",
				Description: "When you do not know a piece of lore, you know where and from whom to learn it.",
			},
			WeaponProficiencies: []string{"Simple Weapons"},
			ToolProficiencies:   []string{"Calligrapher's Supplies"},
			SkillChoices: &ChoiceSpec{
				Count:   2,
				Options: []string{"Arcana", "History", "Investigation", "Medicine", "Nature"},
			},
			SuggestedPaths: []string{"mystic", "divine"},
			EquipmentPack:  "Scholar's Pack",
			GoldAlternative: 40,
		},
		{
			Key:         "warrior",
			Name:        "Warrior",
			Description: "A trade of drills, marches, and battle lines, learned the hard way.",
			BaseHP:      10,
			Feature: &Feature{
				Name:        "Drilled",
				Description: "You can ready yourself and your gear for battle in half the usual time.",
			},
			ArmorProficiencies:  []string{"Light Armor", "Medium Armor", "Heavy Armor", "Shields"},
			WeaponProficiencies: []string{"Simple Weapons", "Martial Weapons"},
			SkillChoices: &ChoiceSpec{
				Count:   2,
				Options: []string{"Athletics", "Intimidation", "Perception", "Insight", "Survival"},
			},
			SuggestedPaths: []string{"martial", "power", "defense"},
			Duties: []Duty{
				{
					Key:             "fighter",
					Name:            "Fighter",
					Description:     "Line infantry and duelists, masters of the close press.",
					SuggestedPaths:  []string{"martial", "power"},
					EquipmentPack:   "Dungeoneer's Pack",
					GoldAlternative: 100,
				},
				{
					Key:            "ranger",
					Name:           "Ranger",
					Description:    "Scouts and skirmishers who fight from woodline and ridge.",
					SuggestedPaths: []string{"survival", "exploitation"},
					WeaponProficiencies: []string{"Longbow"},
					SkillChoices: &ChoiceSpec{
						Count:   1,
						Options: []string{"Animal Handling", "Nature", "Stealth"},
					},
					EquipmentPack:   "Explorer's Pack",
					GoldAlternative: 80,
				},
			},
			EquipmentPack:   "Soldier's Kit",
			GoldAlternative: 90,
		},
		{
			Key:         "acolyte",
			Name:        "Acolyte",
			Description: "Years of temple service, rites learned by candlelight.",
			BaseHP:      8,
			Feature: &Feature{
				Name:        "Liturgist",
				Description: "You know the rites, feast days, and hierarchies of every major faith.",
			},
			WeaponProficiencies: []string{"Simple Weapons"},
			SkillChoices: &ChoiceSpec{
				Count:   2,
				Options: []string{"Insight", "Medicine", "Diplomacy", "History"},
			},
			SuggestedPaths:  []string{"divine"},
			EquipmentPack:   "Priest's Pack",
			GoldAlternative: 30,
		},
		{
			Key:         "artisan",
			Name:        "Artisan",
			Description: "A guild trade, from apprentice sweepings to a master's mark.",
			BaseHP:      8,
			Feature: &Feature{
				Name:        "Guild Standing",
				Description: "Guildhalls offer you lodging, and guild members vouch for your work.",
			},
			WeaponProficiencies: []string{"Simple Weapons"},
			ToolChoices: &ChoiceSpec{
				Count:   1,
				Options: []string{"Smith's Tools", "Carpenter's Tools", "Weaver's Tools", "Alchemist's Supplies"},
			},
			SkillChoices: &ChoiceSpec{
				Count:   2,
				Options: []string{"Crafting", "Appraisal", "Persuasion", "Investigation"},
			},
			SuggestedPaths:  []string{"exploitation", "survival"},
			EquipmentPack:   "Artisan's Kit",
			GoldAlternative: 60,
		},
	}
}

// DefaultPaths returns the seven paths.
func DefaultPaths() []Path {
	return []Path{
		{
			Key:         shared.PathKeyDefense,
			Name:        "Defense",
			Description: "The wall that holds. Defenders master armor, shield, and the discipline of standing fast.",
			Prerequisites: &PathPrerequisite{
				PrimaryAttribute:    shared.AttributeEndurance,
				PrimaryMinimum:      DefaultPrimaryMinimum,
				SecondaryAttributes: []shared.Attribute{shared.AttributeWisdom},
				SecondaryMinimum:    DefaultSecondaryMinimum,
			},
			PrimaryBonus: map[shared.Attribute]int{
				shared.AttributeEndurance: 2,
			},
			TalentPointsAttribute: shared.AttributeEndurance,
			AttackBonusMelee:      1,
			Role:                  RoleDefender,
			Features: []Feature{
				{Name: "Hold the Line", Description: "Allies adjacent to you gain +1 defense while you are conscious."},
			},
			Talents: []string{shared.TalentKeyShieldWall, shared.TalentKeyBulwark, shared.TalentKeyLivingFortress},
		},
		{
			Key:         shared.PathKeyDivine,
			Name:        "Divine",
			Description: "A conduit for powers beyond the realm, mending flesh and judging the wicked.",
			Prerequisites: &PathPrerequisite{
				PrimaryAttribute:    shared.AttributeWisdom,
				PrimaryMinimum:      DefaultPrimaryMinimum,
				SecondaryAttributes: []shared.Attribute{shared.AttributeCharisma},
				SecondaryMinimum:    DefaultSecondaryMinimum,
			},
			PrimaryBonus: map[shared.Attribute]int{
				shared.AttributeWisdom: 2,
			},
			TalentPointsAttribute: shared.AttributeWisdom,
			Role:                  RoleHealer,
			Features: []Feature{
				{Name: "Benediction", Description: "Once per day, grant an ally a blessing die to add to one roll."},
			},
			Talents: []string{shared.TalentKeySacredLight, shared.TalentKeyHealingHands, shared.TalentKeyAvatarOfMercy},
		},
		{
			Key:         shared.PathKeyExploitation,
			Name:        "Exploitation",
			Description: "Every lock has a key and every foe a weakness; exploiters find both.",
			Prerequisites: &PathPrerequisite{
				PrimaryAttribute:    shared.AttributeAgility,
				PrimaryMinimum:      DefaultPrimaryMinimum,
				SecondaryAttributes: []shared.Attribute{shared.AttributeIntellect},
				SecondaryMinimum:    DefaultSecondaryMinimum,
			},
			PrimaryBonus: map[shared.Attribute]int{
				shared.AttributeAgility: 2,
			},
			TalentPointsAttribute: shared.AttributeAgility,
			AttackBonusRanged:     1,
			Role:                  RoleStriker,
			Features: []Feature{
				{Name: "Opportunist", Description: "Your attacks against distracted or flanked foes strike true."},
			},
			Talents: []string{shared.TalentKeyDirtyFighting, shared.TalentKeyShadowstep, shared.TalentKeyPerfectAmbush},
		},
		{
			Key:         shared.PathKeyMartial,
			Name:        "Martial",
			Description: "The disciplined study of war, where technique beats fury.",
			Prerequisites: &PathPrerequisite{
				PrimaryAttribute:    shared.AttributeMight,
				PrimaryMinimum:      DefaultPrimaryMinimum,
				SecondaryAttributes: []shared.Attribute{shared.AttributeWisdom},
				SecondaryMinimum:    DefaultSecondaryMinimum,
			},
			PrimaryBonus: map[shared.Attribute]int{
				shared.AttributeMight: 2,
			},
			TalentPointsAttribute: shared.AttributeMight,
			AttackBonusMelee:      1,
			Role:                  RoleStriker,
			Features: []Feature{
				{Name: "Measured Strike", Description: "Once per battle, turn a miss with a weapon into a graze."},
			},
			Talents: []string{shared.TalentKeyWeaponDiscipline, shared.TalentKeyBattleInstinct, shared.TalentKeyMasterAtArms},
		},
		{
			Key:         shared.PathKeyMystic,
			Name:        "Mystic",
			Description: "Scholars of the unseen who bend raw magic through will and formula.",
			Prerequisites: &PathPrerequisite{
				PrimaryAttribute:    shared.AttributeIntellect,
				PrimaryMinimum:      DefaultPrimaryMinimum,
				SecondaryAttributes: []shared.Attribute{shared.AttributeWisdom},
				SecondaryMinimum:    DefaultSecondaryMinimum,
			},
			PrimaryBonus: map[shared.Attribute]int{
				shared.AttributeIntellect: 2,
			},
			TalentPointsAttribute: shared.AttributeIntellect,
			Role:                  RoleSpecialist,
			Spellcasting:          true,
			Features: []Feature{
				{Name: "Spellcraft", Description: "You craft and cast spells using crafting and casting points."},
			},
			Talents: []string{shared.TalentKeyArcaneFocus, shared.TalentKeySpellshaper, shared.TalentKeyArchmageSecret},
		},
		{
			Key:         shared.PathKeyPower,
			Name:        "Power",
			Description: "Strength as an argument. Power adherents end fights by overwhelming them.",
			Prerequisites: &PathPrerequisite{
				PrimaryAttribute:    shared.AttributeMight,
				PrimaryMinimum:      DefaultPrimaryMinimum,
				SecondaryAttributes: []shared.Attribute{shared.AttributeEndurance},
				SecondaryMinimum:    DefaultSecondaryMinimum,
			},
			PrimaryBonus: map[shared.Attribute]int{
				shared.AttributeMight: 2,
			},
			TalentPointsAttribute: shared.AttributeMight,
			AttackBonusMelee:      1,
			Role:                  RoleStriker,
			Features: []Feature{
				{Name: "Brute Force", Description: "You may shove, grapple, or break objects as part of any melee attack."},
			},
			Talents: []string{shared.TalentKeyCrushingBlows, shared.TalentKeyUnstoppable, shared.TalentKeyTitansWrath},
		},
		{
			Key:         shared.PathKeySurvival,
			Name:        "Survival",
			Description: "Reading wind, track, and sky; thriving where the realm is wildest.",
			Prerequisites: &PathPrerequisite{
				PrimaryAttribute:    shared.AttributeWisdom,
				PrimaryMinimum:      DefaultPrimaryMinimum,
				SecondaryAttributes: []shared.Attribute{shared.AttributeAgility},
				SecondaryMinimum:    DefaultSecondaryMinimum,
			},
			PrimaryBonus: map[shared.Attribute]int{
				shared.AttributeWisdom: 2,
			},
			TalentPointsAttribute: shared.AttributeWisdom,
			AttackBonusRanged:     1,
			Role:                  RoleSpecialist,
			Features: []Feature{
				{Name: "Pathfinder", Description: "Your party travels through wilderness without slowing or straying."},
			},
			Talents: []string{shared.TalentKeyWildernessLore, shared.TalentKeyBeastBond, shared.TalentKeyApexPredator},
		},
	}
}

// DefaultBackgrounds returns the built-in backgrounds.
func DefaultBackgrounds() []Background {
	return []Background{
		{
			Key:                "scholar",
			Name:               "Scholar",
			Description:        "You grew up among stacks and scriptoria before your trade found you.",
			SkillProficiencies: []Skill{SkillHistory, SkillInvestigation},
			ToolProficiencies:  []string{"Calligrapher's Supplies"},
			LanguagesGranted:   1,
			Equipment:          []string{"A bottle of ink", "A quill", "A small knife", "A letter from a dead colleague", "Common clothes", "10 gold"},
			Feature: &Feature{
				Name:        "Library Access",
				Description: "Universities and archives open their doors to you, and their librarians answer your letters.",
			},
			PersonalityTables: &PersonalityTables{
				Traits: []PersonalityEntry{
					{Roll: 1, Text: "I quote books nobody else has read.", Morality: 0, Reputation: 0},
					{Roll: 2, Text: "Every problem is a puzzle with a missing page.", Morality: 0, Reputation: 1},
					{Roll: 3, Text: "I correct people. Constantly. It does not help.", Morality: 0, Reputation: -1},
				},
				Ideals: []PersonalityEntry{
					{Roll: 1, Text: "Knowledge belongs to everyone.", Morality: 1, Reputation: 1},
					{Roll: 2, Text: "Some knowledge must be kept from the unready.", Morality: 0, Reputation: 0},
					{Roll: 3, Text: "Knowledge is leverage, and I collect it.", Morality: -1, Reputation: 0},
				},
				Bonds: []PersonalityEntry{
					{Roll: 1, Text: "My old mentor's unfinished work must be completed.", Morality: 0, Reputation: 0},
					{Roll: 2, Text: "I owe the archive that raised me everything.", Morality: 1, Reputation: 0},
					{Roll: 3, Text: "A rival stole my research, and I will have it back.", Morality: -1, Reputation: 0},
				},
				Flaws: []PersonalityEntry{
					{Roll: 1, Text: "I cannot resist an unopened book or an unopened door.", Morality: 0, Reputation: 0},
					{Roll: 2, Text: "I freeze when theory runs out.", Morality: 0, Reputation: -1},
					{Roll: 3, Text: "I would trade a friend's secret for a rare manuscript.", Morality: -1, Reputation: -1},
				},
			},
		},
		{
			Key:                "soldier",
			Name:               "Soldier",
			Description:        "You marched under a banner and carry its habits still.",
			SkillProficiencies: []Skill{SkillAthletics, SkillIntimidation},
			ToolProficiencies:  []string{"Gaming Set"},
			Equipment:          []string{"An insignia of rank", "A trophy from a fallen enemy", "A set of dice", "Common clothes", "10 gold"},
			Feature: &Feature{
				Name:        "Military Rank",
				Description: "Soldiers of your old army still recognize your rank and render small courtesies.",
			},
			PersonalityTables: &PersonalityTables{
				Traits: []PersonalityEntry{
					{Roll: 1, Text: "I face problems head-on. Walls are for besieging.", Morality: 0, Reputation: 0},
					{Roll: 2, Text: "I keep my kit clean and my word cleaner.", Morality: 1, Reputation: 1},
					{Roll: 3, Text: "I have a gallows joke for every occasion.", Morality: 0, Reputation: -1},
				},
				Ideals: []PersonalityEntry{
					{Roll: 1, Text: "Nobody gets left behind.", Morality: 1, Reputation: 1},
					{Roll: 2, Text: "Orders exist so that fewer people die.", Morality: 0, Reputation: 0},
					{Roll: 3, Text: "Strength decides. Everything else is noise.", Morality: -1, Reputation: 0},
				},
				Bonds: []PersonalityEntry{
					{Roll: 1, Text: "My old squad would still die for me, and I for them.", Morality: 1, Reputation: 0},
					{Roll: 2, Text: "I carry a letter I never delivered.", Morality: 0, Reputation: 0},
					{Roll: 3, Text: "The commander who abandoned us owes a debt I mean to collect.", Morality: -1, Reputation: 0},
				},
				Flaws: []PersonalityEntry{
					{Roll: 1, Text: "I obey orders even when I should not.", Morality: 0, Reputation: 0},
					{Roll: 2, Text: "The war never really ended for me.", Morality: 0, Reputation: -1},
					{Roll: 3, Text: "I drink to forget, and remember anyway.", Morality: 0, Reputation: -1},
				},
			},
		},
		{
			Key:                "devotee",
			Name:               "Devotee",
			Description:        "A shrine, an order, or a quiet god shaped your years.",
			SkillProficiencies: []Skill{SkillInsight, SkillMedicine},
			LanguagesGranted:   2,
			Equipment:          []string{"A holy symbol", "A prayer book", "Incense sticks", "Vestments", "5 gold"},
			Feature: &Feature{
				Name:        "Temple Shelter",
				Description: "Shrines of your faith offer you and your companions food and lodging.",
			},
			PersonalityTables: &PersonalityTables{
				Traits: []PersonalityEntry{
					{Roll: 1, Text: "I see omens in everything. Everything.", Morality: 0, Reputation: 0},
					{Roll: 2, Text: "I share food with anyone who sits beside me.", Morality: 1, Reputation: 1},
					{Roll: 3, Text: "I judge quickly and repent slowly.", Morality: -1, Reputation: 0},
				},
				Ideals: []PersonalityEntry{
					{Roll: 1, Text: "Mercy first, always.", Morality: 1, Reputation: 1},
					{Roll: 2, Text: "Tradition keeps the dark at bay.", Morality: 0, Reputation: 0},
					{Roll: 3, Text: "The faithless deserve what finds them.", Morality: -1, Reputation: -1},
				},
				Bonds: []PersonalityEntry{
					{Roll: 1, Text: "My shrine burned, and I will see it rebuilt.", Morality: 0, Reputation: 0},
					{Roll: 2, Text: "An elder of my order still guides my letters and my conscience.", Morality: 1, Reputation: 0},
					{Roll: 3, Text: "I fled my vows, and they have not fled me.", Morality: 0, Reputation: -1},
				},
				Flaws: []PersonalityEntry{
					{Roll: 1, Text: "I trust anyone who quotes scripture correctly.", Morality: 0, Reputation: 0},
					{Roll: 2, Text: "Doubt gnaws me worse than any wound.", Morality: 0, Reputation: 0},
					{Roll: 3, Text: "I mistake my own wishes for my god's will.", Morality: -1, Reputation: 0},
				},
			},
		},
		{
			Key:                "urchin",
			Name:               "Urchin",
			Description:        "The streets raised you, and they taught a hard curriculum.",
			SkillProficiencies: []Skill{SkillStealth, SkillStreetwise},
			Equipment:          []string{"A small knife", "A map of your home city", "A pet mouse", "A token of your parents", "10 gold"},
			Feature: &Feature{
				Name:        "City Secrets",
				Description: "You know the back ways; you can cross any city twice as fast as those who keep to streets.",
			},
			PersonalityTables: &PersonalityTables{
				Traits: []PersonalityEntry{
					{Roll: 1, Text: "I hide food in my pockets. Old habit.", Morality: 0, Reputation: 0},
					{Roll: 2, Text: "I talk fast when I'm cornered, and I'm always cornered.", Morality: 0, Reputation: 0},
					{Roll: 3, Text: "I trust animals more than people.", Morality: 0, Reputation: 0},
				},
				Ideals: []PersonalityEntry{
					{Roll: 1, Text: "Nobody should starve in a city full of bread.", Morality: 1, Reputation: 1},
					{Roll: 2, Text: "You keep what you can hold.", Morality: -1, Reputation: 0},
					{Roll: 3, Text: "The people at the bottom look out for each other.", Morality: 1, Reputation: 0},
				},
				Bonds: []PersonalityEntry{
					{Roll: 1, Text: "The gang of kids I ran with still runs, and still needs me.", Morality: 1, Reputation: 0},
					{Roll: 2, Text: "Someone in a fine coat ruined my family. I remember the coat.", Morality: 0, Reputation: 0},
					{Roll: 3, Text: "An old fence saved my life; her debts are mine.", Morality: 0, Reputation: -1},
				},
				Flaws: []PersonalityEntry{
					{Roll: 1, Text: "If it isn't nailed down, it's negotiable.", Morality: -1, Reputation: -1},
					{Roll: 2, Text: "I run first and feel bad about it later.", Morality: 0, Reputation: 0},
					{Roll: 3, Text: "Kindness makes me suspicious.", Morality: 0, Reputation: 0},
				},
			},
		},
	}
}
