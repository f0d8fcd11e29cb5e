package guard

import "github.com/guardkit/guardkit-go/numeral"

// Every ordering guard is the same three-step composition: derive the
// Ordering of the pair, collapse it to a Boolean fact for the requested
// relation, and route the fact through the single predicate collapse.
// No relation carries its own comparison.

type unit = struct{}

// IfLess asserts lhs < rhs.
func IfLess[N numeral.Number](lhs, rhs N) {
	orderingGuard(unit{}, numeral.Less, "IfLess", lhs, rhs)
}

// IfLessOutput asserts lhs < rhs and threads output through on success.
func IfLessOutput[Output any, N numeral.Number](output Output, lhs, rhs N) Output {
	return orderingGuard(output, numeral.Less, "IfLessOutput", lhs, rhs)
}

// IfLessOrEqual asserts lhs <= rhs.
func IfLessOrEqual[N numeral.Number](lhs, rhs N) {
	orderingGuard(unit{}, numeral.LessOrEqual, "IfLessOrEqual", lhs, rhs)
}

// IfLessOrEqualOutput asserts lhs <= rhs and threads output through on
// success.
func IfLessOrEqualOutput[Output any, N numeral.Number](output Output, lhs, rhs N) Output {
	return orderingGuard(output, numeral.LessOrEqual, "IfLessOrEqualOutput", lhs, rhs)
}

// IfGreater asserts lhs > rhs.
func IfGreater[N numeral.Number](lhs, rhs N) {
	orderingGuard(unit{}, numeral.Greater, "IfGreater", lhs, rhs)
}

// IfGreaterOutput asserts lhs > rhs and threads output through on success.
func IfGreaterOutput[Output any, N numeral.Number](output Output, lhs, rhs N) Output {
	return orderingGuard(output, numeral.Greater, "IfGreaterOutput", lhs, rhs)
}

// IfGreaterOrEqual asserts lhs >= rhs.
func IfGreaterOrEqual[N numeral.Number](lhs, rhs N) {
	orderingGuard(unit{}, numeral.GreaterOrEqual, "IfGreaterOrEqual", lhs, rhs)
}

// IfGreaterOrEqualOutput asserts lhs >= rhs and threads output through on
// success.
func IfGreaterOrEqualOutput[Output any, N numeral.Number](output Output, lhs, rhs N) Output {
	return orderingGuard(output, numeral.GreaterOrEqual, "IfGreaterOrEqualOutput", lhs, rhs)
}

// IfEqual asserts lhs == rhs.
func IfEqual[N numeral.Number](lhs, rhs N) {
	orderingGuard(unit{}, numeral.Equal, "IfEqual", lhs, rhs)
}

// IfEqualOutput asserts lhs == rhs and threads output through on success.
func IfEqualOutput[Output any, N numeral.Number](output Output, lhs, rhs N) Output {
	return orderingGuard(output, numeral.Equal, "IfEqualOutput", lhs, rhs)
}

func orderingGuard[Output any, N numeral.Number](output Output, rel numeral.Relation, guardName string, lhs, rhs N) Output {
	loc := newLocationInfo(offsetAPICallersCaller)
	ord := numeral.Compare(lhs, rhs)
	cond := rel.Holds(ord)
	return ifPredicate(output, cond, guardName, rel.Symbol(), NewOperands(lhs, rhs), loc)
}

// ifPredicate is the single collapse point for every value-condition
// guard: a true fact returns output, a false fact has no success path.
// Funneling all relations through one implementation keeps the guard
// family mutually exclusive.
func ifPredicate[Output any](output Output, cond bool, guardName, symbol string, opnds operands, loc *locationInfo) Output {
	key := makeKey(loc)
	markEvaluated(key)

	gi := &guardInfo{
		GuardName: guardName,
		Condition: cond,
		Operands:  opnds,
		Id:        key,
		Location:  loc,
	}
	guardTracker.getTrackerEntry(key).emit(gi)

	if !cond {
		detail := ""
		if opnds != nil {
			detail = opnds.describe(symbol)
		}
		panic(&Violation{Guard: guardName, Detail: detail, File: loc.Filename, Line: loc.Line})
	}
	return output
}
