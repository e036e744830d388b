package shared

// AbilityScoreMethod identifies how a character's base ability scores were produced.
type AbilityScoreMethod string

const (
	MethodRoll          AbilityScoreMethod = "roll"
	MethodPointBuy      AbilityScoreMethod = "point_buy"
	MethodStandardArray AbilityScoreMethod = "standard_array"
)

var AbilityScoreMethods = []AbilityScoreMethod{MethodRoll, MethodPointBuy, MethodStandardArray}
