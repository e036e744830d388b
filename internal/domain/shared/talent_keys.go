package shared

// Talent key constants to ensure consistency across the codebase
const (
	// General talents
	TalentKeyAlertness         = "alertness"
	TalentKeyArcheryFocus      = "archery_focus"
	TalentKeyArmorTraining     = "armor_training"
	TalentKeyAthlete           = "athlete"
	TalentKeyBooksmart         = "booksmart"
	TalentKeyCommonsense       = "commonsense"
	TalentKeyDefensiveTraining = "defensive_training"
	TalentKeyDualWielding      = "dual_wielding"
	TalentKeyExperienced       = "experienced"
	TalentKeyFightingStyle     = "fighting_style"
	TalentKeyLucky             = "lucky"
	TalentKeyMobile            = "mobile"
	TalentKeyNaturalLeader     = "natural_leader"
	TalentKeyObservant         = "observant"
	TalentKeyPersuasive        = "persuasive"
	TalentKeyQuickLearner      = "quick_learner"
	TalentKeyQuickness         = "quickness"
	TalentKeyResilient         = "resilient"
	TalentKeyResourceful       = "resourceful"
	TalentKeySkillFocus        = "skill_focus"
	TalentKeyTinkerer          = "tinkerer"
	TalentKeyToughness         = "toughness"
	TalentKeyWeaponMastery     = "weapon_mastery"

	// Defense path talents
	TalentKeyShieldWall     = "shield_wall"
	TalentKeyBulwark        = "bulwark"
	TalentKeyLivingFortress = "living_fortress"

	// Divine path talents
	TalentKeySacredLight   = "sacred_light"
	TalentKeyHealingHands  = "healing_hands"
	TalentKeyAvatarOfMercy = "avatar_of_mercy"

	// Exploitation path talents
	TalentKeyDirtyFighting = "dirty_fighting"
	TalentKeyShadowstep    = "shadowstep"
	TalentKeyPerfectAmbush = "perfect_ambush"

	// Martial path talents
	TalentKeyWeaponDiscipline = "weapon_discipline"
	TalentKeyBattleInstinct   = "battle_instinct"
	TalentKeyMasterAtArms     = "master_at_arms"

	// Mystic path talents
	TalentKeyArcaneFocus    = "arcane_focus"
	TalentKeySpellshaper    = "spellshaper"
	TalentKeyArchmageSecret = "archmage_secret"

	// Power path talents
	TalentKeyCrushingBlows = "crushing_blows"
	TalentKeyUnstoppable   = "unstoppable"
	TalentKeyTitansWrath   = "titans_wrath"

	// Survival path talents
	TalentKeyWildernessLore = "wilderness_lore"
	TalentKeyBeastBond      = "beast_bond"
	TalentKeyApexPredator   = "apex_predator"
)

// Path key constants
const (
	PathKeyDefense      = "defense"
	PathKeyDivine       = "divine"
	PathKeyExploitation = "exploitation"
	PathKeyMartial      = "martial"
	PathKeyMystic       = "mystic"
	PathKeyPower        = "power"
	PathKeySurvival     = "survival"
)
