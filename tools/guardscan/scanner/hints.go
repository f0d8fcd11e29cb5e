package scanner

import "github.com/guardkit/guardkit-go/numeral"

// GuardFuncInfo describes one guard function the scanner recognizes.
type GuardFuncInfo struct {
	TargetFunc string
	Relation   numeral.Relation
	HasOutput  bool // carrier-threading form: operands shift right by one
}

type GuardHints map[string]*GuardFuncInfo

// SetupHintMap registers the ordering guard family. The predicate and
// equivalence guards are enforced by the compiler itself and need no
// static verdict here.
func SetupHintMap() GuardHints {
	hintMap := make(GuardHints)

	hintMap["IfLess"] = &GuardFuncInfo{
		TargetFunc: "IfLess",
		Relation:   numeral.Less,
	}
	hintMap["IfLessOutput"] = &GuardFuncInfo{
		TargetFunc: "IfLessOutput",
		Relation:   numeral.Less,
		HasOutput:  true,
	}
	hintMap["IfLessOrEqual"] = &GuardFuncInfo{
		TargetFunc: "IfLessOrEqual",
		Relation:   numeral.LessOrEqual,
	}
	hintMap["IfLessOrEqualOutput"] = &GuardFuncInfo{
		TargetFunc: "IfLessOrEqualOutput",
		Relation:   numeral.LessOrEqual,
		HasOutput:  true,
	}
	hintMap["IfGreater"] = &GuardFuncInfo{
		TargetFunc: "IfGreater",
		Relation:   numeral.Greater,
	}
	hintMap["IfGreaterOutput"] = &GuardFuncInfo{
		TargetFunc: "IfGreaterOutput",
		Relation:   numeral.Greater,
		HasOutput:  true,
	}
	hintMap["IfGreaterOrEqual"] = &GuardFuncInfo{
		TargetFunc: "IfGreaterOrEqual",
		Relation:   numeral.GreaterOrEqual,
	}
	hintMap["IfGreaterOrEqualOutput"] = &GuardFuncInfo{
		TargetFunc: "IfGreaterOrEqualOutput",
		Relation:   numeral.GreaterOrEqual,
		HasOutput:  true,
	}
	hintMap["IfEqual"] = &GuardFuncInfo{
		TargetFunc: "IfEqual",
		Relation:   numeral.Equal,
	}
	hintMap["IfEqualOutput"] = &GuardFuncInfo{
		TargetFunc: "IfEqualOutput",
		Relation:   numeral.Equal,
		HasOutput:  true,
	}

	return hintMap
}

func (m GuardHints) HintsForName(name string) *GuardFuncInfo {
	if v, ok := m[name]; ok {
		return v
	}
	return nil
}
