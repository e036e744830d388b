package rulebook

import "github.com/KirkDiggler/realm-forge/internal/domain/shared"

// DefaultTalents returns the built-in talent roster, general talents
// first and then each path's talents in path key order.
func DefaultTalents() []Talent {
	return append(generalTalents(), pathTalents()...)
}

func generalTalents() []Talent {
	return []Talent{
		{
			Key:         shared.TalentKeyAlertness,
			Name:        "Alertness",
			Description: "You sleep lightly and notice trouble before it notices you.",
			MaxRank:     1,
			Ranks: map[int]string{
				1: "You cannot be surprised while conscious, and you gain +2 initiative.",
			},
			Category: TalentCategoryGeneral,
		},
		{
			Key:         shared.TalentKeyArcheryFocus,
			Name:        "Archery Focus",
			Description: "Long practice at the butts steadies your draw.",
			MaxRank:     2,
			Ranks: map[int]string{
				1: "+1 to ranged attack rolls with bows and crossbows.",
				2: "+2 to ranged attack rolls with bows and crossbows, and you ignore light cover.",
			},
			Prerequisites: &TalentPrerequisites{
				Abilities: map[shared.Attribute]int{shared.AttributeAgility: 13},
			},
			Category: TalentCategoryGeneral,
		},
		{
			Key:         shared.TalentKeyArmorTraining,
			Name:        "Armor Training",
			Description: "Drill until the weight of armor disappears.",
			MaxRank:     3,
			Ranks: map[int]string{
				1: "You are proficient with light armor.",
				2: "You are proficient with medium armor.",
				3: "You are proficient with heavy armor and shields.",
			},
			Category: TalentCategoryGeneral,
		},
		{
			Key:         shared.TalentKeyAthlete,
			Name:        "Athlete",
			Description: "You climb, swim, and leap like it is your trade.",
			MaxRank:     1,
			Ranks: map[int]string{
				1: "Climbing and swimming do not cost extra movement, and your running jumps need no run-up.",
			},
			Category: TalentCategoryGeneral,
		},
		{
			Key:         shared.TalentKeyBooksmart,
			Name:        "Booksmart",
			Description: "You read everything, and most of it stuck.",
			MaxRank:     1,
			Ranks: map[int]string{
				1: "+1 to Arcana, History, and Nature checks.",
			},
			Prerequisites: &TalentPrerequisites{
				Abilities: map[shared.Attribute]int{shared.AttributeIntellect: 13},
			},
			Category: TalentCategoryGeneral,
		},
		{
			Key:         shared.TalentKeyCommonsense,
			Name:        "Common Sense",
			Description: "You have a knack for spotting the obvious mistake before making it.",
			MaxRank:     1,
			Ranks: map[int]string{
				1: "Once per day, the game master must warn you before you act on a badly wrong assumption.",
			},
			Category: TalentCategoryGeneral,
		},
		{
			Key:         shared.TalentKeyDefensiveTraining,
			Name:        "Defensive Training",
			Description: "You fight with your guard up and your feet under you.",
			MaxRank:     2,
			Ranks: map[int]string{
				1: "+1 defense while wearing armor.",
				2: "+1 defense while wearing armor, and attacks of opportunity against you suffer -2.",
			},
			Category: TalentCategoryGeneral,
		},
		{
			Key:         shared.TalentKeyDualWielding,
			Name:        "Dual Wielding",
			Description: "A blade in each hand, and work for both.",
			MaxRank:     2,
			Ranks: map[int]string{
				1: "You may fight with two light weapons without penalty.",
				2: "Your off-hand weapon may be any one-handed weapon, and off-hand strikes add your attack modifier.",
			},
			Prerequisites: &TalentPrerequisites{
				Abilities: map[shared.Attribute]int{shared.AttributeAgility: 13},
			},
			Category: TalentCategoryGeneral,
		},
		{
			Key:         shared.TalentKeyExperienced,
			Name:        "Experienced",
			Description: "You have been around, and it shows.",
			MaxRank:     1,
			Ranks: map[int]string{
				1: "Add half your level, rounded down, to skill checks with untrained skills.",
			},
			Category: TalentCategoryGeneral,
		},
		{
			Key:         shared.TalentKeyFightingStyle,
			Name:        "Fighting Style",
			Description: "You adopt a particular style of fighting as your specialty.",
			MaxRank:     1,
			Ranks: map[int]string{
				1: "Choose one fighting style; its benefit applies whenever you fight in that manner.",
			},
			Category:       TalentCategoryGeneral,
			RequiresChoice: true,
			ChoiceType:     "fighting_style",
			ChoiceOptions: []string{
				"Archery",
				"Defense",
				"Dueling",
				"Great Weapon Fighting",
				"Protection",
				"Two-Weapon Fighting",
			},
		},
		{
			Key:         shared.TalentKeyLucky,
			Name:        "Lucky",
			Description: "The dice like you. Nobody knows why.",
			MaxRank:     3,
			Ranks: map[int]string{
				1: "Once per day, reroll any one die you rolled and take the better result.",
				2: "Twice per day, reroll any one die you rolled and take the better result.",
				3: "Three times per day, reroll any one die you rolled and take the better result.",
			},
			Category: TalentCategoryGeneral,
		},
		{
			Key:         shared.TalentKeyMobile,
			Name:        "Mobile",
			Description: "You are hard to pin down and harder to catch.",
			MaxRank:     2,
			Ranks: map[int]string{
				1: "Your speed increases by 5 feet.",
				2: "Your speed increases by 10 feet, and difficult terrain does not slow your dashes.",
			},
			Category: TalentCategoryGeneral,
		},
		{
			Key:         shared.TalentKeyNaturalLeader,
			Name:        "Natural Leader",
			Description: "People look to you when things go wrong.",
			MaxRank:     1,
			Ranks: map[int]string{
				1: "Once per battle, grant an ally within earshot an immediate move or attack.",
			},
			Prerequisites: &TalentPrerequisites{
				Abilities: map[shared.Attribute]int{shared.AttributeCharisma: 13},
			},
			Category: TalentCategoryGeneral,
		},
		{
			Key:         shared.TalentKeyObservant,
			Name:        "Observant",
			Description: "Little escapes you, even at a glance.",
			MaxRank:     1,
			Ranks: map[int]string{
				1: "+2 to passive perception and passive investigation.",
			},
			Category: TalentCategoryGeneral,
		},
		{
			Key:         shared.TalentKeyPersuasive,
			Name:        "Persuasive",
			Description: "You could sell a dwarf his own beard.",
			MaxRank:     1,
			Ranks: map[int]string{
				1: "+2 to Persuasion and Diplomacy checks made in good faith.",
			},
			Prerequisites: &TalentPrerequisites{
				Abilities: map[shared.Attribute]int{shared.AttributeCharisma: 13},
			},
			Category: TalentCategoryGeneral,
		},
		{
			Key:         shared.TalentKeyQuickLearner,
			Name:        "Quick Learner",
			Description: "Show you once and you have it.",
			MaxRank:     1,
			Ranks: map[int]string{
				1: "Training time for new tools, languages, and skills is halved.",
			},
			Prerequisites: &TalentPrerequisites{
				Abilities: map[shared.Attribute]int{shared.AttributeIntellect: 13},
			},
			Category: TalentCategoryGeneral,
		},
		{
			Key:         shared.TalentKeyQuickness,
			Name:        "Quickness",
			Description: "You move before others finish deciding to.",
			MaxRank:     2,
			Ranks: map[int]string{
				1: "+1 initiative.",
				2: "+2 initiative, and you win initiative ties.",
			},
			Prerequisites: &TalentPrerequisites{
				LevelByRank: map[int]int{2: 5},
			},
			Category: TalentCategoryGeneral,
		},
		{
			Key:         shared.TalentKeyResilient,
			Name:        "Resilient",
			Description: "You shake off what should put you down.",
			MaxRank:     1,
			Ranks: map[int]string{
				1: "+1 to all saving throws.",
			},
			Category: TalentCategoryGeneral,
		},
		{
			Key:         shared.TalentKeyResourceful,
			Name:        "Resourceful",
			Description: "Rope, a knife, and nerve solve most problems.",
			MaxRank:     1,
			Ranks: map[int]string{
				1: "Once per day, produce a mundane item worth 1 gold or less that you could plausibly be carrying.",
			},
			Category: TalentCategoryGeneral,
		},
		{
			Key:         shared.TalentKeySkillFocus,
			Name:        "Skill Focus",
			Description: "One craft, polished past all your others.",
			MaxRank:     3,
			Ranks: map[int]string{
				1: "+1 to the chosen skill.",
				2: "+2 to the chosen skill.",
				3: "+3 to the chosen skill.",
			},
			Category:       TalentCategoryGeneral,
			RequiresChoice: true,
			ChoiceType:     "skill",
		},
		{
			Key:         shared.TalentKeyTinkerer,
			Name:        "Tinkerer",
			Description: "Broken things come to you to be fixed.",
			MaxRank:     1,
			Ranks: map[int]string{
				1: "Given tools and an hour, you can repair any mundane object or jury-rig a one-use replacement.",
			},
			Category: TalentCategoryGeneral,
		},
		{
			Key:         shared.TalentKeyToughness,
			Name:        "Toughness",
			Description: "Harder to kill than you have any right to be.",
			MaxRank:     3,
			Ranks: map[int]string{
				1: "+3 maximum hit points.",
				2: "+6 maximum hit points.",
				3: "+9 maximum hit points.",
			},
			Category: TalentCategoryGeneral,
		},
		{
			Key:         shared.TalentKeyWeaponMastery,
			Name:        "Weapon Mastery",
			Description: "One weapon, ten thousand repetitions.",
			MaxRank:     2,
			Ranks: map[int]string{
				1: "+1 to attack rolls with your mastered weapon.",
				2: "+1 to attack and damage rolls with your mastered weapon.",
			},
			Prerequisites: &TalentPrerequisites{
				Abilities: map[shared.Attribute]int{
					shared.AttributeMight:   13,
					shared.AttributeAgility: 13,
				},
				Logic:           PrereqAny,
				RequiredTalents: []string{shared.TalentKeyFightingStyle},
			},
			Category:          TalentCategoryGeneral,
			WeaponRequirement: "Any martial weapon",
		},
	}
}

func pathTalents() []Talent {
	return []Talent{
		// Defense
		{
			Key:         shared.TalentKeyShieldWall,
			Name:        "Shield Wall",
			Description: "Your shield shelters more than just you.",
			MaxRank:     3,
			Ranks: map[int]string{
				1: "While you wield a shield, one adjacent ally gains +1 defense.",
				2: "While you wield a shield, all adjacent allies gain +1 defense.",
				3: "While you wield a shield, all adjacent allies gain +2 defense and share your cover.",
			},
			Prerequisites: &TalentPrerequisites{
				LevelByRank: map[int]int{2: 5, 3: 10},
			},
			Category:  TalentCategoryPath,
			PathKey:   shared.PathKeyDefense,
			IsPrimary: true,
		},
		{
			Key:         shared.TalentKeyBulwark,
			Name:        "Bulwark",
			Description: "Blows that would fell an ox glance off you.",
			MaxRank:     2,
			Ranks: map[int]string{
				1: "Reduce all weapon damage you take by 1.",
				2: "Reduce all weapon damage you take by 2.",
			},
			Prerequisites: &TalentPrerequisites{
				RequiredTalents: []string{shared.TalentKeyShieldWall},
			},
			Category: TalentCategoryPath,
			PathKey:  shared.PathKeyDefense,
		},
		{
			Key:         shared.TalentKeyLivingFortress,
			Name:        "Living Fortress",
			Description: "Armies break on you like waves on a cliff.",
			MaxRank:     1,
			Ranks: map[int]string{
				1: "Once per battle, become immovable and unhittable until your next turn; attacks against adjacent allies are redirected to you.",
			},
			Prerequisites: &TalentPrerequisites{
				LevelByRank:    map[int]int{1: 15},
				AllPathTalents: true,
			},
			Category:   TalentCategoryPath,
			PathKey:    shared.PathKeyDefense,
			IsCapstone: true,
		},
		// Divine
		{
			Key:         shared.TalentKeySacredLight,
			Name:        "Sacred Light",
			Description: "A radiance answers when you call.",
			MaxRank:     3,
			Ranks: map[int]string{
				1: "You may invoke a searing light that harms the profane and comforts the faithful.",
				2: "Your light reaches further and burns brighter, and undead flinch from it.",
				3: "Your light can fill a hall, revealing the hidden and scouring the unholy.",
			},
			Prerequisites: &TalentPrerequisites{
				LevelByRank: map[int]int{2: 5, 3: 10},
			},
			Category:  TalentCategoryPath,
			PathKey:   shared.PathKeyDivine,
			IsPrimary: true,
		},
		{
			Key:         shared.TalentKeyHealingHands,
			Name:        "Healing Hands",
			Description: "Wounds close beneath your touch.",
			MaxRank:     2,
			Ranks: map[int]string{
				1: "Once per day per level, restore hit points with a touch.",
				2: "Your healing touch also mends one wound or cures one affliction.",
			},
			Prerequisites: &TalentPrerequisites{
				RequiredTalents: []string{shared.TalentKeySacredLight},
			},
			Category: TalentCategoryPath,
			PathKey:  shared.PathKeyDivine,
		},
		{
			Key:         shared.TalentKeyAvatarOfMercy,
			Name:        "Avatar of Mercy",
			Description: "For a moment, something greater looks out through your eyes.",
			MaxRank:     1,
			Ranks: map[int]string{
				1: "Once per day, an aura of grace surrounds you; allies within it cannot fall below 1 hit point until your next rest.",
			},
			Prerequisites: &TalentPrerequisites{
				LevelByRank:    map[int]int{1: 15},
				AllPathTalents: true,
			},
			Category:   TalentCategoryPath,
			PathKey:    shared.PathKeyDivine,
			IsCapstone: true,
		},
		// Exploitation
		{
			Key:         shared.TalentKeyDirtyFighting,
			Name:        "Dirty Fighting",
			Description: "There are no rules, only openings.",
			MaxRank:     3,
			Ranks: map[int]string{
				1: "Your attacks against distracted foes deal +2 damage.",
				2: "Your attacks against distracted foes deal +4 damage and may blind or hobble.",
				3: "Your attacks against distracted foes deal +6 damage and may drop them outright.",
			},
			Prerequisites: &TalentPrerequisites{
				LevelByRank: map[int]int{2: 5, 3: 10},
			},
			Category:  TalentCategoryPath,
			PathKey:   shared.PathKeyExploitation,
			IsPrimary: true,
		},
		{
			Key:         shared.TalentKeyShadowstep,
			Name:        "Shadowstep",
			Description: "You were there. Now you are not.",
			MaxRank:     2,
			Ranks: map[int]string{
				1: "Once per battle, move between patches of shadow without crossing the space between.",
				2: "Twice per battle, and you may bring one willing creature with you.",
			},
			Prerequisites: &TalentPrerequisites{
				RequiredTalents: []string{shared.TalentKeyDirtyFighting},
			},
			Category: TalentCategoryPath,
			PathKey:  shared.PathKeyExploitation,
		},
		{
			Key:         shared.TalentKeyPerfectAmbush,
			Name:        "Perfect Ambush",
			Description: "The fight is decided before anyone knows it started.",
			MaxRank:     1,
			Ranks: map[int]string{
				1: "Once per day, declare an ambush; you and your allies act twice before the enemy acts at all.",
			},
			Prerequisites: &TalentPrerequisites{
				LevelByRank:    map[int]int{1: 15},
				AllPathTalents: true,
			},
			Category:   TalentCategoryPath,
			PathKey:    shared.PathKeyExploitation,
			IsCapstone: true,
		},
		// Martial
		{
			Key:         shared.TalentKeyWeaponDiscipline,
			Name:        "Weapon Discipline",
			Description: "Form before fury. Always.",
			MaxRank:     3,
			Ranks: map[int]string{
				1: "+1 to melee attack rolls.",
				2: "+1 to melee attack and damage rolls.",
				3: "+2 to melee attack rolls and +1 to damage rolls.",
			},
			Prerequisites: &TalentPrerequisites{
				LevelByRank: map[int]int{2: 5, 3: 10},
			},
			Category:  TalentCategoryPath,
			PathKey:   shared.PathKeyMartial,
			IsPrimary: true,
		},
		{
			Key:         shared.TalentKeyBattleInstinct,
			Name:        "Battle Instinct",
			Description: "You read a melee the way sailors read weather.",
			MaxRank:     2,
			Ranks: map[int]string{
				1: "You may not be flanked, and feints do not fool you.",
				2: "Once per round, impose -2 on one attack made against an ally you can see.",
			},
			Prerequisites: &TalentPrerequisites{
				Abilities: map[shared.Attribute]int{shared.AttributeWisdom: 13},
			},
			Category: TalentCategoryPath,
			PathKey:  shared.PathKeyMartial,
		},
		{
			Key:         shared.TalentKeyMasterAtArms,
			Name:        "Master at Arms",
			Description: "Any weapon. Any foe. Any time.",
			MaxRank:     1,
			Ranks: map[int]string{
				1: "Once per battle, make one extra attack with every weapon you wield and treat every weapon as mastered.",
			},
			Prerequisites: &TalentPrerequisites{
				LevelByRank:    map[int]int{1: 15},
				AllPathTalents: true,
			},
			Category:   TalentCategoryPath,
			PathKey:    shared.PathKeyMartial,
			IsCapstone: true,
		},
		// Mystic
		{
			Key:         shared.TalentKeyArcaneFocus,
			Name:        "Arcane Focus",
			Description: "Your formulas grow sharper with every casting.",
			MaxRank:     3,
			Ranks: map[int]string{
				1: "+1 to your spell save difficulty.",
				2: "+1 to your spell save difficulty and spell attack rolls.",
				3: "+2 to your spell save difficulty and +1 to spell attack rolls.",
			},
			Prerequisites: &TalentPrerequisites{
				LevelByRank: map[int]int{2: 5, 3: 10},
			},
			Category:  TalentCategoryPath,
			PathKey:   shared.PathKeyMystic,
			IsPrimary: true,
		},
		{
			Key:         shared.TalentKeySpellshaper,
			Name:        "Spellshaper",
			Description: "Spells bend around your allies like water around stones.",
			MaxRank:     2,
			Ranks: map[int]string{
				1: "Your area spells spare up to two allies caught within them.",
				2: "Your area spells spare any allies within them, and you may reshape their edges.",
			},
			Prerequisites: &TalentPrerequisites{
				RequiredTalents: []string{shared.TalentKeyArcaneFocus},
			},
			Category: TalentCategoryPath,
			PathKey:  shared.PathKeyMystic,
		},
		{
			Key:         shared.TalentKeyArchmageSecret,
			Name:        "Archmage's Secret",
			Description: "One of the old truths of magic is yours alone.",
			MaxRank:     1,
			Ranks: map[int]string{
				1: "Once per day, cast any spell you have crafted without spending casting points.",
			},
			Prerequisites: &TalentPrerequisites{
				LevelByRank:    map[int]int{1: 15},
				AllPathTalents: true,
			},
			Category:   TalentCategoryPath,
			PathKey:    shared.PathKeyMystic,
			IsCapstone: true,
		},
		// Power
		{
			Key:         shared.TalentKeyCrushingBlows,
			Name:        "Crushing Blows",
			Description: "You do not cut so much as demolish.",
			MaxRank:     3,
			Ranks: map[int]string{
				1: "+2 damage with two-handed weapons.",
				2: "+4 damage with two-handed weapons, and your hits stagger.",
				3: "+6 damage with two-handed weapons, and your hits can fell a foe's footing.",
			},
			Prerequisites: &TalentPrerequisites{
				LevelByRank: map[int]int{2: 5, 3: 10},
			},
			Category:  TalentCategoryPath,
			PathKey:   shared.PathKeyPower,
			IsPrimary: true,
		},
		{
			Key:         shared.TalentKeyUnstoppable,
			Name:        "Unstoppable",
			Description: "You go where you mean to go.",
			MaxRank:     2,
			Ranks: map[int]string{
				1: "You cannot be slowed, and you shove through any creature your size or smaller.",
				2: "You cannot be restrained or knocked prone while conscious.",
			},
			Prerequisites: &TalentPrerequisites{
				RequiredTalents: []string{shared.TalentKeyCrushingBlows},
			},
			Category: TalentCategoryPath,
			PathKey:  shared.PathKeyPower,
		},
		{
			Key:         shared.TalentKeyTitansWrath,
			Name:        "Titan's Wrath",
			Description: "For one breath, you hit like a siege engine.",
			MaxRank:     1,
			Ranks: map[int]string{
				1: "Once per battle, one melee attack deals maximum damage and hurls its target away from you.",
			},
			Prerequisites: &TalentPrerequisites{
				LevelByRank:    map[int]int{1: 15},
				AllPathTalents: true,
			},
			Category:   TalentCategoryPath,
			PathKey:    shared.PathKeyPower,
			IsCapstone: true,
		},
		// Survival
		{
			Key:         shared.TalentKeyWildernessLore,
			Name:        "Wilderness Lore",
			Description: "The wild keeps no secrets from you.",
			MaxRank:     3,
			Ranks: map[int]string{
				1: "+1 to Survival and Nature checks, and you always know true north.",
				2: "+2 to Survival and Nature checks, and you can forage for a full party.",
				3: "+3 to Survival and Nature checks, and weather and terrain never slow your travel.",
			},
			Prerequisites: &TalentPrerequisites{
				LevelByRank: map[int]int{2: 5, 3: 10},
			},
			Category:  TalentCategoryPath,
			PathKey:   shared.PathKeySurvival,
			IsPrimary: true,
		},
		{
			Key:         shared.TalentKeyBeastBond,
			Name:        "Beast Bond",
			Description: "An animal companion walks beside you.",
			MaxRank:     2,
			Ranks: map[int]string{
				1: "A loyal beast of your region accompanies you and obeys simple commands.",
				2: "Your companion grows fierce, and you may see through its eyes once per day.",
			},
			Prerequisites: &TalentPrerequisites{
				RequiredTalents: []string{shared.TalentKeyWildernessLore},
			},
			Category: TalentCategoryPath,
			PathKey:  shared.PathKeySurvival,
		},
		{
			Key:         shared.TalentKeyApexPredator,
			Name:        "Apex Predator",
			Description: "In the wild, everything else is prey.",
			MaxRank:     1,
			Ranks: map[int]string{
				1: "Once per day, mark a quarry; you know its direction, your attacks against it strike true, and it cannot flee you.",
			},
			Prerequisites: &TalentPrerequisites{
				LevelByRank:    map[int]int{1: 15},
				AllPathTalents: true,
			},
			Category:   TalentCategoryPath,
			PathKey:    shared.PathKeySurvival,
			IsCapstone: true,
		},
	}
}
