package rulebook

// MaxTableLevel is the highest level the experience table covers.
// Levels past it cost XPPerEpicLevel apiece.
const MaxTableLevel = 20

// XPPerEpicLevel is the XP needed for each level beyond MaxTableLevel.
const XPPerEpicLevel = 43000

// xpTable maps level to the total XP required to reach it.
var xpTable = map[int]int{
	1:  0,
	2:  300,
	3:  900,
	4:  3000,
	5:  7000,
	6:  13000,
	7:  22000,
	8:  34000,
	9:  49000,
	10: 67000,
	11: 88000,
	12: 112000,
	13: 139000,
	14: 169000,
	15: 202000,
	16: 238000,
	17: 277000,
	18: 317000,
	19: 358000,
	20: 400000,
}

// XPForLevel returns the total XP required to reach the given level.
func XPForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	if level <= MaxTableLevel {
		return xpTable[level]
	}
	return xpTable[MaxTableLevel] + (level-MaxTableLevel)*XPPerEpicLevel
}

// XPToNext returns the XP needed to go from the given level to the next.
func XPToNext(level int) int {
	if level < 1 {
		level = 1
	}
	return XPForLevel(level+1) - XPForLevel(level)
}

// LevelForXP returns the level a character with the given total XP has earned.
func LevelForXP(xp int) int {
	if xp < 0 {
		return 1
	}
	level := 1
	for XPForLevel(level+1) <= xp {
		level++
	}
	return level
}
