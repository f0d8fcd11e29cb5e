// Package guard provides construction, equivalence, predicate and ordering
// guards: operators that thread an Output value through unchanged when a
// condition holds, and reject the program when it does not.
//
// Each guard rejects at the earliest boundary Go can express:
//
//   - IfPredicate, IfNotPredicate and IfSame reject at compile time. Their
//     conditions are type parameters, and no instantiation exists for a
//     violating argument.
//   - Ordering guards over constant operands reject at build time when the
//     target module is checked with the guardscan tool (see tools/guardscan).
//   - Ordering guards over runtime operands reject at first evaluation by
//     panicking with a *Violation. There is no recovery path and no
//     fallback value; a violated guard has no success result.
//
// The alias forms (IfPredicateOutput, IfLessOutput, ...) return the Output
// carrier directly and suit standalone assertions; the bare forms (IfLess,
// ...) suit guard statements at the top of a function.
//
// Guards that pass or fail are reported once per call site as structured
// JSON records when the GUARDKIT_LOCAL_OUTPUT environment variable names an
// output file.
package guard

import "github.com/guardkit/guardkit-go/boolean"

// IfOutput returns output after forcing cond to be constructed. A cond
// expression that cannot be named or typed fails to compile; any
// well-formed cond is accepted regardless of its value.
func IfOutput[Output, Cond any](output Output, cond Cond) Output {
	_ = cond
	return output
}

// IfSame asserts that lhs and rhs have the identical type. A single type
// parameter occupies both operand positions, so a call with two distinct
// defined types does not compile. Equivalence is type identity, not
// assignability.
func IfSame[T any](lhs, rhs T) T {
	_ = rhs
	return lhs
}

// IfSameOutput is the carrier-threading form of IfSame: it returns output
// when lhs and rhs have the identical type.
func IfSameOutput[Output, T any](output Output, lhs, rhs T) Output {
	_, _ = lhs, rhs
	return output
}

// IfPredicate resolves only when Cond is boolean.True. Instantiating it
// with boolean.False does not compile; there is no False arm.
func IfPredicate[Cond boolean.True, Output any](output Output) Output {
	return output
}

// IfNotPredicate is the mirror of IfPredicate: it resolves only when Cond
// is boolean.False.
func IfNotPredicate[Cond boolean.False, Output any](output Output) Output {
	return output
}

// IfElsePredicate is the expression-style dispatch: it is total over both
// truth markers, returning trueOutput when Cond is boolean.True and
// falseOutput when Cond is boolean.False.
func IfElsePredicate[Cond boolean.Boolean, Output any](trueOutput, falseOutput Output) Output {
	if boolean.ValueOf[Cond]() {
		return trueOutput
	}
	return falseOutput
}

// IfPredicateOutput is the value-condition form of IfPredicate: it returns
// output when cond holds and rejects with a *Violation when it does not.
func IfPredicateOutput[Output any](output Output, cond bool) Output {
	loc := newLocationInfo(offsetAPICaller)
	return ifPredicate(output, cond, "IfPredicateOutput", "", nil, loc)
}

// IfNotPredicateOutput returns output when cond does not hold and rejects
// with a *Violation when it does.
func IfNotPredicateOutput[Output any](output Output, cond bool) Output {
	loc := newLocationInfo(offsetAPICaller)
	return ifPredicate(output, !cond, "IfNotPredicateOutput", "", nil, loc)
}

// IfElsePredicateOutput is the value-condition form of IfElsePredicate. It
// never rejects.
func IfElsePredicateOutput[Output any](trueOutput, falseOutput Output, cond bool) Output {
	if cond {
		return trueOutput
	}
	return falseOutput
}
